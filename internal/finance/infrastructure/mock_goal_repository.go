package infrastructure

import (
	"github.com/finflowhq/finflow/internal/finance/domain"
	financeErrors "github.com/finflowhq/finflow/internal/finance/errors"
)

type MockGoalRepository struct {
	Goals []domain.Goal
}

func (m *MockGoalRepository) Save(goal domain.Goal) error {
	m.Goals = append(m.Goals, goal)
	return nil
}

func (m *MockGoalRepository) FindByUser(userID string) ([]domain.Goal, error) {
	var goals []domain.Goal
	for _, goal := range m.Goals {
		if goal.UserID == userID {
			goals = append(goals, goal)
		}
	}
	return goals, nil
}

func (m *MockGoalRepository) FindByID(goalID string) (*domain.Goal, error) {
	for i := range m.Goals {
		if m.Goals[i].ID == goalID {
			goal := m.Goals[i]
			return &goal, nil
		}
	}
	return nil, financeErrors.ErrGoalNotFound
}

func (m *MockGoalRepository) Update(goal domain.Goal) error {
	for i := range m.Goals {
		if m.Goals[i].ID == goal.ID {
			m.Goals[i] = goal
			return nil
		}
	}
	return financeErrors.ErrGoalNotFound
}

func (m *MockGoalRepository) Delete(goalID string) error {
	for i := range m.Goals {
		if m.Goals[i].ID == goalID {
			m.Goals = append(m.Goals[:i], m.Goals[i+1:]...)
			return nil
		}
	}
	return financeErrors.ErrGoalNotFound
}

type MockGoalSavingRepository struct {
	Savings []domain.GoalSaving
}

func (m *MockGoalSavingRepository) Save(saving domain.GoalSaving) error {
	m.Savings = append(m.Savings, saving)
	return nil
}

func (m *MockGoalSavingRepository) FindByGoal(goalID string) ([]domain.GoalSaving, error) {
	var savings []domain.GoalSaving
	for _, saving := range m.Savings {
		if saving.GoalID == goalID {
			savings = append(savings, saving)
		}
	}
	return savings, nil
}

func (m *MockGoalSavingRepository) FindByUser(userID string) ([]domain.GoalSaving, error) {
	var savings []domain.GoalSaving
	for _, saving := range m.Savings {
		if saving.UserID == userID {
			savings = append(savings, saving)
		}
	}
	return savings, nil
}

func (m *MockGoalSavingRepository) TotalsByGoal(goalIDs []string) (map[string]float64, error) {
	wanted := make(map[string]struct{}, len(goalIDs))
	for _, id := range goalIDs {
		wanted[id] = struct{}{}
	}
	totals := make(map[string]float64)
	for _, saving := range m.Savings {
		if _, ok := wanted[saving.GoalID]; ok {
			totals[saving.GoalID] += saving.Amount
		}
	}
	return totals, nil
}

func (m *MockGoalSavingRepository) DeleteByGoal(goalID string) error {
	var remaining []domain.GoalSaving
	for _, saving := range m.Savings {
		if saving.GoalID != goalID {
			remaining = append(remaining, saving)
		}
	}
	m.Savings = remaining
	return nil
}
