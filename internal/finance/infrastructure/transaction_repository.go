package infrastructure

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/finflowhq/finflow/internal/finance/domain"
	financeErrors "github.com/finflowhq/finflow/internal/finance/errors"
)

type TransactionRepository struct {
	db *sql.DB
}

func NewTransactionRepository(db *sql.DB) *TransactionRepository {
	return &TransactionRepository{db: db}
}

func (r *TransactionRepository) Save(transaction domain.Transaction) error {
	_, err := r.db.Exec(
		`INSERT INTO transactions (id, user_id, description, amount, type, category, date, created_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		transaction.ID, transaction.UserID, transaction.Description, transaction.Amount,
		transaction.Type, transaction.Category, transaction.Date, transaction.CreatedAt,
	)
	return err
}

func (r *TransactionRepository) FindByUser(userID string, filter domain.QueryFilter) ([]domain.Transaction, error) {
	query := `SELECT id, user_id, description, amount, type, category, date, created_at FROM transactions WHERE user_id = $1`
	args := []interface{}{userID}

	var window *domain.Range
	if filter.HasMonthYear() {
		r := domain.MonthRange(time.Month(filter.Month), filter.Year, time.UTC)
		window = &r
	} else if filter.HasDateRange() {
		window = &domain.Range{Start: filter.DateFrom, End: filter.DateTo}
	}
	if window != nil {
		query += fmt.Sprintf(" AND date >= $%d AND date <= $%d", len(args)+1, len(args)+2)
		args = append(args, window.Start, window.End)
	}
	if filter.Type != "" {
		query += fmt.Sprintf(" AND type = $%d", len(args)+1)
		args = append(args, filter.Type)
	}
	if filter.Category != "" {
		query += fmt.Sprintf(" AND category = $%d", len(args)+1)
		args = append(args, filter.Category)
	}
	query += " ORDER BY date DESC"

	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var transactions []domain.Transaction
	for rows.Next() {
		var transaction domain.Transaction
		if err := rows.Scan(&transaction.ID, &transaction.UserID, &transaction.Description, &transaction.Amount,
			&transaction.Type, &transaction.Category, &transaction.Date, &transaction.CreatedAt); err != nil {
			return nil, err
		}
		transactions = append(transactions, transaction)
	}
	return transactions, rows.Err()
}

func (r *TransactionRepository) FindByID(transactionID string) (*domain.Transaction, error) {
	var transaction domain.Transaction
	err := r.db.QueryRow(
		`SELECT id, user_id, description, amount, type, category, date, created_at FROM transactions WHERE id = $1`,
		transactionID,
	).Scan(&transaction.ID, &transaction.UserID, &transaction.Description, &transaction.Amount,
		&transaction.Type, &transaction.Category, &transaction.Date, &transaction.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, financeErrors.ErrTransactionNotFound
		}
		return nil, err
	}
	return &transaction, nil
}

func (r *TransactionRepository) Update(transaction domain.Transaction) error {
	result, err := r.db.Exec(
		`UPDATE transactions SET description = $1, amount = $2, type = $3, category = $4, date = $5 WHERE id = $6`,
		transaction.Description, transaction.Amount, transaction.Type, transaction.Category, transaction.Date, transaction.ID,
	)
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return financeErrors.ErrTransactionNotFound
	}
	return nil
}

func (r *TransactionRepository) Delete(transactionID string) error {
	result, err := r.db.Exec(`DELETE FROM transactions WHERE id = $1`, transactionID)
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return financeErrors.ErrTransactionNotFound
	}
	return nil
}
