package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	financeErrors "github.com/finflowhq/finflow/internal/finance/errors"
)

func validSubscription() Subscription {
	return Subscription{
		ID:          "sub-1",
		UserID:      "user-1",
		Name:        "Netflix",
		Amount:      15.99,
		BillingDate: time.Date(2024, time.March, 10, 0, 0, 0, 0, time.UTC),
		Frequency:   FrequencyMonthly,
		Status:      SubscriptionActive,
	}
}

func TestSubscriptionValidate(t *testing.T) {
	sub := validSubscription()
	assert.NoError(t, sub.Validate())

	sub = validSubscription()
	sub.Name = ""
	assert.True(t, financeErrors.IsValidationError(sub.Validate()))

	sub = validSubscription()
	sub.Amount = 0
	assert.True(t, financeErrors.IsValidationError(sub.Validate()))

	sub = validSubscription()
	sub.BillingDate = time.Time{}
	assert.True(t, financeErrors.IsValidationError(sub.Validate()))

	sub = validSubscription()
	sub.Frequency = "quarterly"
	assert.True(t, financeErrors.IsValidationError(sub.Validate()))

	sub = validSubscription()
	sub.Status = "paused"
	assert.True(t, financeErrors.IsValidationError(sub.Validate()))
}

func TestNextBillingDate(t *testing.T) {
	sub := validSubscription()

	sub.Frequency = FrequencyWeekly
	assert.Equal(t, time.Date(2024, time.March, 17, 0, 0, 0, 0, time.UTC), sub.NextBillingDate())

	sub.Frequency = FrequencyMonthly
	assert.Equal(t, time.Date(2024, time.April, 10, 0, 0, 0, 0, time.UTC), sub.NextBillingDate())

	sub.Frequency = FrequencyYearly
	assert.Equal(t, time.Date(2025, time.March, 10, 0, 0, 0, 0, time.UTC), sub.NextBillingDate())

	sub.Frequency = FrequencyCustom
	assert.Equal(t, sub.BillingDate, sub.NextBillingDate())
}

func TestIsValidFrequency(t *testing.T) {
	assert.True(t, IsValidFrequency(FrequencyMonthly))
	assert.True(t, IsValidFrequency(FrequencyCustom))
	assert.False(t, IsValidFrequency("daily"))
}
