package application

import (
	"time"

	"github.com/finflowhq/finflow/internal/finance/domain"
	financeErrors "github.com/finflowhq/finflow/internal/finance/errors"
	"github.com/google/uuid"
)

type SubscriptionService struct {
	repo domain.SubscriptionRepository
}

func NewSubscriptionService(repo domain.SubscriptionRepository) *SubscriptionService {
	return &SubscriptionService{repo: repo}
}

func (s *SubscriptionService) CreateSubscription(subscription *domain.Subscription) error {
	subscription.ID = uuid.NewString()
	now := time.Now().UTC()
	subscription.CreatedAt = now
	subscription.UpdatedAt = now
	if subscription.Frequency == "" {
		subscription.Frequency = domain.FrequencyMonthly
	}
	if subscription.Status == "" {
		subscription.Status = domain.SubscriptionActive
	}
	if err := subscription.Validate(); err != nil {
		return err
	}
	return s.repo.Save(*subscription)
}

func (s *SubscriptionService) ListSubscriptions(userID string) ([]domain.Subscription, error) {
	return s.repo.FindByUser(userID)
}

func (s *SubscriptionService) GetSubscription(userID, subscriptionID string) (*domain.Subscription, error) {
	return s.ownedSubscription(userID, subscriptionID)
}

func (s *SubscriptionService) UpdateSubscription(userID string, subscription domain.Subscription) error {
	existing, err := s.ownedSubscription(userID, subscription.ID)
	if err != nil {
		return err
	}
	subscription.UserID = existing.UserID
	subscription.CreatedAt = existing.CreatedAt
	subscription.UpdatedAt = time.Now().UTC()
	if subscription.Frequency == "" {
		subscription.Frequency = existing.Frequency
	}
	if subscription.Status == "" {
		subscription.Status = existing.Status
	}
	if err := subscription.Validate(); err != nil {
		return err
	}
	return s.repo.Update(subscription)
}

func (s *SubscriptionService) DeleteSubscription(userID, subscriptionID string) error {
	if _, err := s.ownedSubscription(userID, subscriptionID); err != nil {
		return err
	}
	return s.repo.Delete(subscriptionID)
}

// AdvanceDueBillingDates moves past-due billing dates of active
// subscriptions forward to the next occurrence after now. Custom
// frequencies have no derivable interval and are skipped. Returns the
// number of subscriptions updated.
func (s *SubscriptionService) AdvanceDueBillingDates(now time.Time) (int, error) {
	due, err := s.repo.FindDue(now)
	if err != nil {
		return 0, err
	}

	updated := 0
	for _, subscription := range due {
		if subscription.Frequency == domain.FrequencyCustom {
			continue
		}
		for subscription.BillingDate.Before(now) {
			subscription.BillingDate = subscription.NextBillingDate()
		}
		subscription.UpdatedAt = now
		if err := s.repo.Update(subscription); err != nil {
			return updated, err
		}
		updated++
	}
	return updated, nil
}

func (s *SubscriptionService) ownedSubscription(userID, subscriptionID string) (*domain.Subscription, error) {
	subscription, err := s.repo.FindByID(subscriptionID)
	if err != nil {
		return nil, err
	}
	if subscription.UserID != userID {
		return nil, financeErrors.ErrSubscriptionNotFound
	}
	return subscription, nil
}
