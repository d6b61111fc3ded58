package infrastructure

import (
	"sort"
	"time"

	"github.com/finflowhq/finflow/internal/finance/domain"
	financeErrors "github.com/finflowhq/finflow/internal/finance/errors"
)

type MockSubscriptionRepository struct {
	Subscriptions []domain.Subscription
}

func (m *MockSubscriptionRepository) Save(subscription domain.Subscription) error {
	m.Subscriptions = append(m.Subscriptions, subscription)
	return nil
}

func (m *MockSubscriptionRepository) FindByUser(userID string) ([]domain.Subscription, error) {
	var subscriptions []domain.Subscription
	for _, subscription := range m.Subscriptions {
		if subscription.UserID == userID {
			subscriptions = append(subscriptions, subscription)
		}
	}
	sort.SliceStable(subscriptions, func(i, j int) bool {
		return subscriptions[i].BillingDate.Before(subscriptions[j].BillingDate)
	})
	return subscriptions, nil
}

func (m *MockSubscriptionRepository) FindDue(before time.Time) ([]domain.Subscription, error) {
	var due []domain.Subscription
	for _, subscription := range m.Subscriptions {
		if subscription.Status == domain.SubscriptionActive && subscription.BillingDate.Before(before) {
			due = append(due, subscription)
		}
	}
	return due, nil
}

func (m *MockSubscriptionRepository) FindByID(subscriptionID string) (*domain.Subscription, error) {
	for i := range m.Subscriptions {
		if m.Subscriptions[i].ID == subscriptionID {
			subscription := m.Subscriptions[i]
			return &subscription, nil
		}
	}
	return nil, financeErrors.ErrSubscriptionNotFound
}

func (m *MockSubscriptionRepository) Update(subscription domain.Subscription) error {
	for i := range m.Subscriptions {
		if m.Subscriptions[i].ID == subscription.ID {
			m.Subscriptions[i] = subscription
			return nil
		}
	}
	return financeErrors.ErrSubscriptionNotFound
}

func (m *MockSubscriptionRepository) Delete(subscriptionID string) error {
	for i := range m.Subscriptions {
		if m.Subscriptions[i].ID == subscriptionID {
			m.Subscriptions = append(m.Subscriptions[:i], m.Subscriptions[i+1:]...)
			return nil
		}
	}
	return financeErrors.ErrSubscriptionNotFound
}
