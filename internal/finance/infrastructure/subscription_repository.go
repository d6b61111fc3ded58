package infrastructure

import (
	"database/sql"
	"errors"
	"time"

	"github.com/finflowhq/finflow/internal/finance/domain"
	financeErrors "github.com/finflowhq/finflow/internal/finance/errors"
)

type SubscriptionRepository struct {
	db *sql.DB
}

func NewSubscriptionRepository(db *sql.DB) *SubscriptionRepository {
	return &SubscriptionRepository{db: db}
}

func (r *SubscriptionRepository) Save(subscription domain.Subscription) error {
	_, err := r.db.Exec(
		`INSERT INTO subscriptions (id, user_id, name, amount, billing_date, frequency, status, created_at, updated_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		subscription.ID, subscription.UserID, subscription.Name, subscription.Amount,
		subscription.BillingDate, subscription.Frequency, subscription.Status,
		subscription.CreatedAt, subscription.UpdatedAt,
	)
	return err
}

func (r *SubscriptionRepository) FindByUser(userID string) ([]domain.Subscription, error) {
	rows, err := r.db.Query(
		`SELECT id, user_id, name, amount, billing_date, frequency, status, created_at, updated_at
        FROM subscriptions WHERE user_id = $1 ORDER BY billing_date`,
		userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanSubscriptions(rows)
}

// FindDue returns active subscriptions whose billing date already passed,
// for the background billing-date advance job.
func (r *SubscriptionRepository) FindDue(before time.Time) ([]domain.Subscription, error) {
	rows, err := r.db.Query(
		`SELECT id, user_id, name, amount, billing_date, frequency, status, created_at, updated_at
        FROM subscriptions WHERE status = $1 AND billing_date < $2`,
		domain.SubscriptionActive, before,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanSubscriptions(rows)
}

func (r *SubscriptionRepository) FindByID(subscriptionID string) (*domain.Subscription, error) {
	var subscription domain.Subscription
	err := r.db.QueryRow(
		`SELECT id, user_id, name, amount, billing_date, frequency, status, created_at, updated_at
        FROM subscriptions WHERE id = $1`,
		subscriptionID,
	).Scan(&subscription.ID, &subscription.UserID, &subscription.Name, &subscription.Amount,
		&subscription.BillingDate, &subscription.Frequency, &subscription.Status,
		&subscription.CreatedAt, &subscription.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, financeErrors.ErrSubscriptionNotFound
		}
		return nil, err
	}
	return &subscription, nil
}

func (r *SubscriptionRepository) Update(subscription domain.Subscription) error {
	result, err := r.db.Exec(
		`UPDATE subscriptions SET name = $1, amount = $2, billing_date = $3, frequency = $4, status = $5, updated_at = $6
        WHERE id = $7`,
		subscription.Name, subscription.Amount, subscription.BillingDate, subscription.Frequency,
		subscription.Status, subscription.UpdatedAt, subscription.ID,
	)
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return financeErrors.ErrSubscriptionNotFound
	}
	return nil
}

func (r *SubscriptionRepository) Delete(subscriptionID string) error {
	result, err := r.db.Exec(`DELETE FROM subscriptions WHERE id = $1`, subscriptionID)
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return financeErrors.ErrSubscriptionNotFound
	}
	return nil
}

func scanSubscriptions(rows *sql.Rows) ([]domain.Subscription, error) {
	var subscriptions []domain.Subscription
	for rows.Next() {
		var subscription domain.Subscription
		if err := rows.Scan(&subscription.ID, &subscription.UserID, &subscription.Name, &subscription.Amount,
			&subscription.BillingDate, &subscription.Frequency, &subscription.Status,
			&subscription.CreatedAt, &subscription.UpdatedAt); err != nil {
			return nil, err
		}
		subscriptions = append(subscriptions, subscription)
	}
	return subscriptions, rows.Err()
}
