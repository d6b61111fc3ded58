package interfaces

import (
	"github.com/finflowhq/finflow/internal/finance/application"
	"github.com/finflowhq/finflow/internal/finance/domain"
)

// MockTransactionService validates like the real service and records
// calls, without a repository behind it.
type MockTransactionService struct {
	Transactions []domain.Transaction
	Summary      *application.DashboardSummary
	Err          error

	Created []domain.Transaction
	Updated []domain.Transaction
	Deleted []string
}

func (m *MockTransactionService) CreateTransaction(transaction *domain.Transaction) error {
	if m.Err != nil {
		return m.Err
	}
	if err := transaction.Validate(); err != nil {
		return err
	}
	m.Created = append(m.Created, *transaction)
	return nil
}

func (m *MockTransactionService) GetUserTransactions(userID string, filter domain.QueryFilter) ([]domain.Transaction, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	if err := filter.Validate(); err != nil {
		return nil, err
	}
	return m.Transactions, nil
}

func (m *MockTransactionService) UpdateTransaction(userID string, transaction domain.Transaction) error {
	if m.Err != nil {
		return m.Err
	}
	m.Updated = append(m.Updated, transaction)
	return nil
}

func (m *MockTransactionService) DeleteTransaction(userID, transactionID string) error {
	if m.Err != nil {
		return m.Err
	}
	m.Deleted = append(m.Deleted, transactionID)
	return nil
}

func (m *MockTransactionService) GetDashboardSummary(userID string, month, year int) (*application.DashboardSummary, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	if m.Summary != nil {
		return m.Summary, nil
	}
	return &application.DashboardSummary{}, nil
}
