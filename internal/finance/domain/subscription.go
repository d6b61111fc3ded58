package domain

import (
	"time"

	"github.com/finflowhq/finflow/internal/finance/errors"
)

const (
	FrequencyMonthly = "monthly"
	FrequencyYearly  = "yearly"
	FrequencyWeekly  = "weekly"
	FrequencyCustom  = "custom"

	SubscriptionActive    = "active"
	SubscriptionCancelled = "cancelled"
)

type SubscriptionRepository interface {
	Save(subscription Subscription) error
	FindByUser(userID string) ([]Subscription, error)
	FindByID(subscriptionID string) (*Subscription, error)
	FindDue(before time.Time) ([]Subscription, error)
	Update(subscription Subscription) error
	Delete(subscriptionID string) error
}

type Subscription struct {
	ID          string    `json:"id"`
	UserID      string    `json:"userId"`
	Name        string    `json:"name"`
	Amount      float64   `json:"amount"`
	BillingDate time.Time `json:"billingDate"`
	Frequency   string    `json:"frequency"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func IsValidFrequency(frequency string) bool {
	switch frequency {
	case FrequencyMonthly, FrequencyYearly, FrequencyWeekly, FrequencyCustom:
		return true
	}
	return false
}

func (s *Subscription) Validate() error {
	if s.Name == "" {
		return errors.NewValidationError("Name is required")
	}
	if s.Amount <= 0 {
		return errors.NewValidationError("Amount must be greater than zero")
	}
	if s.BillingDate.IsZero() {
		return errors.NewValidationError("Billing date is required")
	}
	if !IsValidFrequency(s.Frequency) {
		return errors.NewValidationError("Frequency must be 'monthly', 'yearly', 'weekly' or 'custom'")
	}
	if s.Status != SubscriptionActive && s.Status != SubscriptionCancelled {
		return errors.NewValidationError("Status must be 'active' or 'cancelled'")
	}
	return nil
}

// NextBillingDate advances the billing date by one interval. Custom
// frequencies have no derivable interval and are returned unchanged.
func (s *Subscription) NextBillingDate() time.Time {
	switch s.Frequency {
	case FrequencyWeekly:
		return s.BillingDate.AddDate(0, 0, 7)
	case FrequencyMonthly:
		return s.BillingDate.AddDate(0, 1, 0)
	case FrequencyYearly:
		return s.BillingDate.AddDate(1, 0, 0)
	}
	return s.BillingDate
}
