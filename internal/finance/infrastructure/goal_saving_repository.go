package infrastructure

import (
	"database/sql"

	"github.com/finflowhq/finflow/internal/finance/domain"
)

type GoalSavingRepository struct {
	db *sql.DB
}

func NewGoalSavingRepository(db *sql.DB) *GoalSavingRepository {
	return &GoalSavingRepository{db: db}
}

func (r *GoalSavingRepository) Save(saving domain.GoalSaving) error {
	_, err := r.db.Exec(
		`INSERT INTO goal_savings (id, goal_id, user_id, amount, date, note, created_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		saving.ID, saving.GoalID, saving.UserID, saving.Amount, saving.Date, saving.Note, saving.CreatedAt,
	)
	return err
}

func (r *GoalSavingRepository) FindByGoal(goalID string) ([]domain.GoalSaving, error) {
	rows, err := r.db.Query(
		`SELECT id, goal_id, user_id, amount, date, note, created_at FROM goal_savings WHERE goal_id = $1 ORDER BY date`,
		goalID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanSavings(rows)
}

func (r *GoalSavingRepository) FindByUser(userID string) ([]domain.GoalSaving, error) {
	rows, err := r.db.Query(
		`SELECT id, goal_id, user_id, amount, date, note, created_at FROM goal_savings WHERE user_id = $1 ORDER BY date`,
		userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanSavings(rows)
}

// TotalsByGoal sums savings per goal in a single aggregation query, the
// same rollup the goal listing attaches to every goal.
func (r *GoalSavingRepository) TotalsByGoal(goalIDs []string) (map[string]float64, error) {
	totals := make(map[string]float64)
	if len(goalIDs) == 0 {
		return totals, nil
	}

	rows, err := r.db.Query(
		`SELECT goal_id, SUM(amount) FROM goal_savings WHERE goal_id = ANY($1) GROUP BY goal_id`,
		goalIDs,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var goalID string
		var total float64
		if err := rows.Scan(&goalID, &total); err != nil {
			return nil, err
		}
		totals[goalID] = total
	}
	return totals, rows.Err()
}

func (r *GoalSavingRepository) DeleteByGoal(goalID string) error {
	_, err := r.db.Exec(`DELETE FROM goal_savings WHERE goal_id = $1`, goalID)
	return err
}

func scanSavings(rows *sql.Rows) ([]domain.GoalSaving, error) {
	var savings []domain.GoalSaving
	for rows.Next() {
		var saving domain.GoalSaving
		if err := rows.Scan(&saving.ID, &saving.GoalID, &saving.UserID, &saving.Amount,
			&saving.Date, &saving.Note, &saving.CreatedAt); err != nil {
			return nil, err
		}
		savings = append(savings, saving)
	}
	return savings, rows.Err()
}
