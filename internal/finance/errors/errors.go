package errors

import (
	"errors"
)

type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string {
	return e.Msg
}

func NewValidationError(msg string) error {
	return &ValidationError{Msg: msg}
}

func IsValidationError(err error) bool {
	var validationError *ValidationError
	ok := errors.As(err, &validationError)
	return ok
}

var (
	ErrTransactionNotFound  = errors.New("transaction not found")
	ErrGoalNotFound         = errors.New("goal not found")
	ErrSubscriptionNotFound = errors.New("subscription not found")
	ErrNoTransactions       = errors.New("no transactions for this month")
)
