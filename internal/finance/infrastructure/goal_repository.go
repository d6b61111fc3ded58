package infrastructure

import (
	"database/sql"
	"errors"

	"github.com/finflowhq/finflow/internal/finance/domain"
	financeErrors "github.com/finflowhq/finflow/internal/finance/errors"
)

type GoalRepository struct {
	db *sql.DB
}

func NewGoalRepository(db *sql.DB) *GoalRepository {
	return &GoalRepository{db: db}
}

func (r *GoalRepository) Save(goal domain.Goal) error {
	_, err := r.db.Exec(
		`INSERT INTO goals (id, user_id, title, target_amount, start_date, end_date, priority, notes, image, created_at, updated_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`,
		goal.ID, goal.UserID, goal.Title, goal.TargetAmount, goal.StartDate, goal.EndDate,
		goal.Priority, goal.Notes, goal.Image, goal.CreatedAt, goal.UpdatedAt,
	)
	return err
}

func (r *GoalRepository) FindByUser(userID string) ([]domain.Goal, error) {
	rows, err := r.db.Query(
		`SELECT id, user_id, title, target_amount, start_date, end_date, priority, notes, image, created_at, updated_at
        FROM goals WHERE user_id = $1 ORDER BY created_at`,
		userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var goals []domain.Goal
	for rows.Next() {
		var goal domain.Goal
		if err := rows.Scan(&goal.ID, &goal.UserID, &goal.Title, &goal.TargetAmount, &goal.StartDate,
			&goal.EndDate, &goal.Priority, &goal.Notes, &goal.Image, &goal.CreatedAt, &goal.UpdatedAt); err != nil {
			return nil, err
		}
		goals = append(goals, goal)
	}
	return goals, rows.Err()
}

func (r *GoalRepository) FindByID(goalID string) (*domain.Goal, error) {
	var goal domain.Goal
	err := r.db.QueryRow(
		`SELECT id, user_id, title, target_amount, start_date, end_date, priority, notes, image, created_at, updated_at
        FROM goals WHERE id = $1`,
		goalID,
	).Scan(&goal.ID, &goal.UserID, &goal.Title, &goal.TargetAmount, &goal.StartDate,
		&goal.EndDate, &goal.Priority, &goal.Notes, &goal.Image, &goal.CreatedAt, &goal.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, financeErrors.ErrGoalNotFound
		}
		return nil, err
	}
	return &goal, nil
}

func (r *GoalRepository) Update(goal domain.Goal) error {
	result, err := r.db.Exec(
		`UPDATE goals SET title = $1, target_amount = $2, start_date = $3, end_date = $4, priority = $5, notes = $6, image = $7, updated_at = $8
        WHERE id = $9`,
		goal.Title, goal.TargetAmount, goal.StartDate, goal.EndDate, goal.Priority, goal.Notes, goal.Image, goal.UpdatedAt, goal.ID,
	)
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return financeErrors.ErrGoalNotFound
	}
	return nil
}

func (r *GoalRepository) Delete(goalID string) error {
	result, err := r.db.Exec(`DELETE FROM goals WHERE id = $1`, goalID)
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return financeErrors.ErrGoalNotFound
	}
	return nil
}
