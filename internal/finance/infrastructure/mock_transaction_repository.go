package infrastructure

import (
	"sort"
	"time"

	"github.com/finflowhq/finflow/internal/finance/domain"
	financeErrors "github.com/finflowhq/finflow/internal/finance/errors"
)

// MockTransactionRepository keeps transactions in memory for service and
// handler tests.
type MockTransactionRepository struct {
	Transactions []domain.Transaction
	SaveErr      error
}

func (m *MockTransactionRepository) Save(transaction domain.Transaction) error {
	if m.SaveErr != nil {
		return m.SaveErr
	}
	m.Transactions = append(m.Transactions, transaction)
	return nil
}

func (m *MockTransactionRepository) FindByUser(userID string, filter domain.QueryFilter) ([]domain.Transaction, error) {
	var window *domain.Range
	if filter.HasMonthYear() {
		r := domain.MonthRange(time.Month(filter.Month), filter.Year, time.UTC)
		window = &r
	} else if filter.HasDateRange() {
		window = &domain.Range{Start: filter.DateFrom, End: filter.DateTo}
	}

	var filtered []domain.Transaction
	for _, transaction := range m.Transactions {
		if transaction.UserID != userID {
			continue
		}
		if window != nil && !window.Contains(transaction.Date) {
			continue
		}
		if filter.Type != "" && transaction.Type != filter.Type {
			continue
		}
		if filter.Category != "" && transaction.Category != filter.Category {
			continue
		}
		filtered = append(filtered, transaction)
	}
	sort.SliceStable(filtered, func(i, j int) bool {
		return filtered[i].Date.After(filtered[j].Date)
	})
	return filtered, nil
}

func (m *MockTransactionRepository) FindByID(transactionID string) (*domain.Transaction, error) {
	for i := range m.Transactions {
		if m.Transactions[i].ID == transactionID {
			transaction := m.Transactions[i]
			return &transaction, nil
		}
	}
	return nil, financeErrors.ErrTransactionNotFound
}

func (m *MockTransactionRepository) Update(transaction domain.Transaction) error {
	for i := range m.Transactions {
		if m.Transactions[i].ID == transaction.ID {
			m.Transactions[i] = transaction
			return nil
		}
	}
	return financeErrors.ErrTransactionNotFound
}

func (m *MockTransactionRepository) Delete(transactionID string) error {
	for i := range m.Transactions {
		if m.Transactions[i].ID == transactionID {
			m.Transactions = append(m.Transactions[:i], m.Transactions[i+1:]...)
			return nil
		}
	}
	return financeErrors.ErrTransactionNotFound
}
