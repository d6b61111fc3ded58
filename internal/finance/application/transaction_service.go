package application

import (
	"time"

	"github.com/finflowhq/finflow/internal/finance/domain"
	financeErrors "github.com/finflowhq/finflow/internal/finance/errors"
	"github.com/google/uuid"
)

// SavingTargetProvider resolves the saving target of a user for the
// dashboard summary. Implemented by the user service.
type SavingTargetProvider interface {
	GetSavingTarget(userID string) (float64, error)
}

type TransactionService struct {
	repo          domain.TransactionRepository
	savingTargets SavingTargetProvider
}

func NewTransactionService(repo domain.TransactionRepository, savingTargets SavingTargetProvider) *TransactionService {
	return &TransactionService{repo: repo, savingTargets: savingTargets}
}

func (s *TransactionService) CreateTransaction(transaction *domain.Transaction) error {
	transaction.ID = uuid.NewString()
	transaction.CreatedAt = time.Now().UTC()
	if transaction.Date.IsZero() {
		transaction.Date = time.Now().UTC()
	}
	transaction.RoundToTwoDecimalPlaces()
	if err := transaction.Validate(); err != nil {
		return err
	}
	return s.repo.Save(*transaction)
}

func (s *TransactionService) GetUserTransactions(userID string, filter domain.QueryFilter) ([]domain.Transaction, error) {
	if err := filter.Validate(); err != nil {
		return nil, err
	}
	return s.repo.FindByUser(userID, filter)
}

// UpdateTransaction applies the update only when the transaction belongs
// to the caller. A foreign transaction is reported as not found.
func (s *TransactionService) UpdateTransaction(userID string, transaction domain.Transaction) error {
	existing, err := s.repo.FindByID(transaction.ID)
	if err != nil {
		return err
	}
	if existing.UserID != userID {
		return financeErrors.ErrTransactionNotFound
	}

	transaction.UserID = existing.UserID
	transaction.CreatedAt = existing.CreatedAt
	if transaction.Date.IsZero() {
		transaction.Date = existing.Date
	}
	transaction.RoundToTwoDecimalPlaces()
	if err := transaction.Validate(); err != nil {
		return err
	}
	return s.repo.Update(transaction)
}

func (s *TransactionService) DeleteTransaction(userID, transactionID string) error {
	existing, err := s.repo.FindByID(transactionID)
	if err != nil {
		return err
	}
	if existing.UserID != userID {
		return financeErrors.ErrTransactionNotFound
	}
	return s.repo.Delete(transactionID)
}

type DashboardSummary struct {
	TotalIncome  float64 `json:"totalIncome"`
	TotalExpense float64 `json:"totalExpense"`
	Balance      float64 `json:"balance"`
	SavingTarget float64 `json:"savingTarget"`
}

// GetDashboardSummary totals the requested month, defaulting to the
// current one.
func (s *TransactionService) GetDashboardSummary(userID string, month, year int) (*DashboardSummary, error) {
	if month == 0 || year == 0 {
		now := time.Now().UTC()
		month = int(now.Month())
		year = now.Year()
	}

	transactions, err := s.repo.FindByUser(userID, domain.QueryFilter{Month: month, Year: year})
	if err != nil {
		return nil, err
	}

	window := domain.MonthRange(time.Month(month), year, time.UTC)
	summary := &DashboardSummary{
		TotalIncome:  domain.Aggregate(transactions, domain.AggregateFilter{Range: window, Type: domain.TypeIncome}).Total,
		TotalExpense: domain.Aggregate(transactions, domain.AggregateFilter{Range: window, Type: domain.TypeExpense}).Total,
	}
	summary.Balance = summary.TotalIncome - summary.TotalExpense

	if s.savingTargets != nil {
		target, err := s.savingTargets.GetSavingTarget(userID)
		if err != nil {
			return nil, err
		}
		summary.SavingTarget = target
	}
	return summary, nil
}
