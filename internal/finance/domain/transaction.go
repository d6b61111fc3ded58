package domain

import (
	"math"
	"time"

	"github.com/finflowhq/finflow/internal/finance/errors"
)

const (
	TypeIncome  = "income"
	TypeExpense = "expense"
)

type TransactionRepository interface {
	Save(transaction Transaction) error
	FindByUser(userID string, filter QueryFilter) ([]Transaction, error)
	FindByID(transactionID string) (*Transaction, error)
	Update(transaction Transaction) error
	Delete(transactionID string) error
}

type Transaction struct {
	ID          string    `json:"id"`
	UserID      string    `json:"userId"`
	Description string    `json:"description"`
	Amount      float64   `json:"amount"`
	Type        string    `json:"type"` // "income" or "expense"
	Category    string    `json:"category"`
	Date        time.Time `json:"date"`
	CreatedAt   time.Time `json:"createdAt"`
}

// QueryFilter narrows a user's transaction listing. Either Month+Year or
// DateFrom+DateTo may be set, never both.
type QueryFilter struct {
	Month    int
	Year     int
	DateFrom time.Time
	DateTo   time.Time
	Type     string
	Category string
}

func (f QueryFilter) HasMonthYear() bool {
	return f.Month != 0 && f.Year != 0
}

func (f QueryFilter) HasDateRange() bool {
	return !f.DateFrom.IsZero() && !f.DateTo.IsZero()
}

func (f QueryFilter) Validate() error {
	if f.HasMonthYear() && f.HasDateRange() {
		return errors.NewValidationError("Provide month/year or dateFrom/dateTo, not both")
	}
	if f.HasMonthYear() && (f.Month < 1 || f.Month > 12) {
		return errors.NewValidationError("Month must be between 1 and 12")
	}
	if !f.DateFrom.IsZero() != !f.DateTo.IsZero() {
		return errors.NewValidationError("Both dateFrom and dateTo are required")
	}
	if f.Type != "" && !IsValidTransactionType(f.Type) {
		return errors.NewValidationError("Type must be 'income' or 'expense'")
	}
	return nil
}

func IsValidTransactionType(transactionType string) bool {
	return transactionType == TypeIncome || transactionType == TypeExpense
}

func (t *Transaction) Validate() error {
	if t.Description == "" {
		return errors.NewValidationError("Description is required")
	}
	if t.Amount <= 0 {
		return errors.NewValidationError("Amount must be greater than zero")
	}
	if !IsValidTransactionType(t.Type) {
		return errors.NewValidationError("Type must be 'income' or 'expense'")
	}
	if t.Category == "" {
		return errors.NewValidationError("Category is required")
	}
	if len(t.Description) > 200 {
		return errors.NewValidationError("Description must be of length less than 200")
	}
	return nil
}

func (t *Transaction) RoundToTwoDecimalPlaces() {
	t.Amount = math.Round(t.Amount*100) / 100
}
