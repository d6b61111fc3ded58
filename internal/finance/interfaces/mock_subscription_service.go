package interfaces

import (
	"github.com/finflowhq/finflow/internal/finance/domain"
	financeErrors "github.com/finflowhq/finflow/internal/finance/errors"
)

type MockSubscriptionService struct {
	Subscriptions []domain.Subscription
	Err           error

	Created []domain.Subscription
	Deleted []string
}

func (m *MockSubscriptionService) CreateSubscription(subscription *domain.Subscription) error {
	if m.Err != nil {
		return m.Err
	}
	if subscription.Frequency == "" {
		subscription.Frequency = domain.FrequencyMonthly
	}
	if subscription.Status == "" {
		subscription.Status = domain.SubscriptionActive
	}
	if err := subscription.Validate(); err != nil {
		return err
	}
	m.Created = append(m.Created, *subscription)
	return nil
}

func (m *MockSubscriptionService) ListSubscriptions(userID string) ([]domain.Subscription, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	return m.Subscriptions, nil
}

func (m *MockSubscriptionService) GetSubscription(userID, subscriptionID string) (*domain.Subscription, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	for i := range m.Subscriptions {
		if m.Subscriptions[i].ID == subscriptionID {
			return &m.Subscriptions[i], nil
		}
	}
	return nil, financeErrors.ErrSubscriptionNotFound
}

func (m *MockSubscriptionService) UpdateSubscription(userID string, subscription domain.Subscription) error {
	if m.Err != nil {
		return m.Err
	}
	for i := range m.Subscriptions {
		if m.Subscriptions[i].ID == subscription.ID {
			m.Subscriptions[i] = subscription
			return nil
		}
	}
	return financeErrors.ErrSubscriptionNotFound
}

func (m *MockSubscriptionService) DeleteSubscription(userID, subscriptionID string) error {
	if m.Err != nil {
		return m.Err
	}
	for i := range m.Subscriptions {
		if m.Subscriptions[i].ID == subscriptionID {
			m.Subscriptions = append(m.Subscriptions[:i], m.Subscriptions[i+1:]...)
			m.Deleted = append(m.Deleted, subscriptionID)
			return nil
		}
	}
	return financeErrors.ErrSubscriptionNotFound
}
