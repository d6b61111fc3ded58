package application

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/finflowhq/finflow/internal/finance/domain"
	financeErrors "github.com/finflowhq/finflow/internal/finance/errors"
	"github.com/finflowhq/finflow/internal/finance/infrastructure"
)

type stubSavingTargets struct {
	target float64
	err    error
}

func (s *stubSavingTargets) GetSavingTarget(userID string) (float64, error) {
	return s.target, s.err
}

func TestCreateTransaction_AssignsIDRoundsAndDefaultsDate(t *testing.T) {
	repo := &infrastructure.MockTransactionRepository{}
	service := NewTransactionService(repo, nil)

	transaction := domain.Transaction{
		UserID:      "user-1",
		Description: "Coffee",
		Amount:      4.999,
		Type:        domain.TypeExpense,
		Category:    "Food",
	}

	err := service.CreateTransaction(&transaction)
	assert.NoError(t, err)
	assert.NotEmpty(t, transaction.ID)
	assert.Equal(t, 5.0, transaction.Amount)
	assert.False(t, transaction.Date.IsZero())
	assert.False(t, transaction.CreatedAt.IsZero())
	assert.Len(t, repo.Transactions, 1)
}

func TestCreateTransaction_RejectsInvalid(t *testing.T) {
	repo := &infrastructure.MockTransactionRepository{}
	service := NewTransactionService(repo, nil)

	transaction := domain.Transaction{UserID: "user-1", Description: "Bad", Amount: -10, Type: domain.TypeExpense, Category: "Food"}

	err := service.CreateTransaction(&transaction)
	assert.True(t, financeErrors.IsValidationError(err))
	assert.Empty(t, repo.Transactions)
}

func TestGetUserTransactions_RejectsConflictingFilters(t *testing.T) {
	repo := &infrastructure.MockTransactionRepository{}
	service := NewTransactionService(repo, nil)

	filter := domain.QueryFilter{
		Month:    3,
		Year:     2024,
		DateFrom: time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC),
		DateTo:   time.Date(2024, time.March, 31, 0, 0, 0, 0, time.UTC),
	}

	_, err := service.GetUserTransactions("user-1", filter)
	assert.True(t, financeErrors.IsValidationError(err))
}

func TestGetUserTransactions_AppliesFilter(t *testing.T) {
	repo := &infrastructure.MockTransactionRepository{
		Transactions: []domain.Transaction{
			{ID: "t1", UserID: "user-1", Type: domain.TypeExpense, Category: "Food", Date: time.Date(2024, time.March, 5, 0, 0, 0, 0, time.UTC)},
			{ID: "t2", UserID: "user-1", Type: domain.TypeIncome, Category: "Salary", Date: time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC)},
			{ID: "t3", UserID: "user-1", Type: domain.TypeExpense, Category: "Food", Date: time.Date(2024, time.April, 5, 0, 0, 0, 0, time.UTC)},
			{ID: "t4", UserID: "user-2", Type: domain.TypeExpense, Category: "Food", Date: time.Date(2024, time.March, 6, 0, 0, 0, 0, time.UTC)},
		},
	}
	service := NewTransactionService(repo, nil)

	transactions, err := service.GetUserTransactions("user-1", domain.QueryFilter{Month: 3, Year: 2024, Type: domain.TypeExpense})
	assert.NoError(t, err)
	assert.Len(t, transactions, 1)
	assert.Equal(t, "t1", transactions[0].ID)
}

func TestUpdateTransaction_ForeignTransactionReportsNotFound(t *testing.T) {
	repo := &infrastructure.MockTransactionRepository{
		Transactions: []domain.Transaction{
			{ID: "t1", UserID: "owner", Description: "Rent", Amount: 900, Type: domain.TypeExpense, Category: "Housing", Date: time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC)},
		},
	}
	service := NewTransactionService(repo, nil)

	update := domain.Transaction{ID: "t1", Description: "Hijacked", Amount: 1, Type: domain.TypeExpense, Category: "Housing"}
	err := service.UpdateTransaction("intruder", update)
	assert.ErrorIs(t, err, financeErrors.ErrTransactionNotFound)
	assert.Equal(t, "Rent", repo.Transactions[0].Description)
}

func TestUpdateTransaction_PreservesOwnerAndCreatedAt(t *testing.T) {
	created := time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)
	repo := &infrastructure.MockTransactionRepository{
		Transactions: []domain.Transaction{
			{ID: "t1", UserID: "owner", Description: "Rent", Amount: 900, Type: domain.TypeExpense, Category: "Housing", Date: created, CreatedAt: created},
		},
	}
	service := NewTransactionService(repo, nil)

	update := domain.Transaction{ID: "t1", UserID: "someone-else", Description: "Rent March", Amount: 950.005, Type: domain.TypeExpense, Category: "Housing"}
	err := service.UpdateTransaction("owner", update)
	assert.NoError(t, err)

	assert.Equal(t, "owner", repo.Transactions[0].UserID)
	assert.Equal(t, created, repo.Transactions[0].CreatedAt)
	assert.Equal(t, created, repo.Transactions[0].Date)
	assert.Equal(t, 950.01, repo.Transactions[0].Amount)
	assert.Equal(t, "Rent March", repo.Transactions[0].Description)
}

func TestDeleteTransaction_OwnershipEnforced(t *testing.T) {
	repo := &infrastructure.MockTransactionRepository{
		Transactions: []domain.Transaction{
			{ID: "t1", UserID: "owner", Description: "Rent", Amount: 900, Type: domain.TypeExpense, Category: "Housing"},
		},
	}
	service := NewTransactionService(repo, nil)

	err := service.DeleteTransaction("intruder", "t1")
	assert.ErrorIs(t, err, financeErrors.ErrTransactionNotFound)
	assert.Len(t, repo.Transactions, 1)

	err = service.DeleteTransaction("owner", "t1")
	assert.NoError(t, err)
	assert.Empty(t, repo.Transactions)
}

func TestGetDashboardSummary(t *testing.T) {
	repo := &infrastructure.MockTransactionRepository{
		Transactions: []domain.Transaction{
			{ID: "t1", UserID: "user-1", Type: domain.TypeIncome, Category: "Salary", Amount: 2000, Date: time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC)},
			{ID: "t2", UserID: "user-1", Type: domain.TypeExpense, Category: "Food", Amount: 300, Date: time.Date(2024, time.March, 10, 0, 0, 0, 0, time.UTC)},
			{ID: "t3", UserID: "user-1", Type: domain.TypeExpense, Category: "Food", Amount: 700, Date: time.Date(2024, time.February, 10, 0, 0, 0, 0, time.UTC)},
		},
	}
	service := NewTransactionService(repo, &stubSavingTargets{target: 500})

	summary, err := service.GetDashboardSummary("user-1", 3, 2024)
	assert.NoError(t, err)
	assert.Equal(t, 2000.0, summary.TotalIncome)
	assert.Equal(t, 300.0, summary.TotalExpense)
	assert.Equal(t, 1700.0, summary.Balance)
	assert.Equal(t, 500.0, summary.SavingTarget)
}

func TestGetDashboardSummary_NoSavingTargetProvider(t *testing.T) {
	repo := &infrastructure.MockTransactionRepository{}
	service := NewTransactionService(repo, nil)

	summary, err := service.GetDashboardSummary("user-1", 3, 2024)
	assert.NoError(t, err)
	assert.Equal(t, 0.0, summary.SavingTarget)
	assert.Equal(t, 0.0, summary.Balance)
}
