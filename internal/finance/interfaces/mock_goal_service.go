package interfaces

import (
	"github.com/finflowhq/finflow/internal/finance/application"
	"github.com/finflowhq/finflow/internal/finance/domain"
	financeErrors "github.com/finflowhq/finflow/internal/finance/errors"
)

type MockGoalService struct {
	Goals   []domain.GoalProgress
	Savings []domain.GoalSaving
	Summary *application.GoalsSummary
	Err     error

	Created []domain.Goal
	Deleted []string
}

func (m *MockGoalService) CreateGoal(goal *domain.Goal) error {
	if m.Err != nil {
		return m.Err
	}
	if err := goal.Validate(); err != nil {
		return err
	}
	m.Created = append(m.Created, *goal)
	return nil
}

func (m *MockGoalService) ListGoals(userID string, filter domain.GoalListFilter) ([]domain.GoalProgress, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	return m.Goals, nil
}

func (m *MockGoalService) GetGoal(userID, goalID string) (*domain.GoalProgress, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	for i := range m.Goals {
		if m.Goals[i].ID == goalID {
			return &m.Goals[i], nil
		}
	}
	return nil, financeErrors.ErrGoalNotFound
}

func (m *MockGoalService) UpdateGoal(userID string, goal domain.Goal) error {
	if m.Err != nil {
		return m.Err
	}
	for i := range m.Goals {
		if m.Goals[i].ID == goal.ID {
			m.Goals[i].Goal = goal
			return nil
		}
	}
	return financeErrors.ErrGoalNotFound
}

func (m *MockGoalService) DeleteGoal(userID, goalID string) error {
	if m.Err != nil {
		return m.Err
	}
	for i := range m.Goals {
		if m.Goals[i].ID == goalID {
			m.Goals = append(m.Goals[:i], m.Goals[i+1:]...)
			m.Deleted = append(m.Deleted, goalID)
			return nil
		}
	}
	return financeErrors.ErrGoalNotFound
}

func (m *MockGoalService) AddSaving(userID, goalID string, saving *domain.GoalSaving) error {
	if m.Err != nil {
		return m.Err
	}
	if _, err := m.GetGoal(userID, goalID); err != nil {
		return err
	}
	if err := saving.Validate(); err != nil {
		return err
	}
	saving.GoalID = goalID
	m.Savings = append(m.Savings, *saving)
	return nil
}

func (m *MockGoalService) GetSavings(userID, goalID string) ([]domain.GoalSaving, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	if _, err := m.GetGoal(userID, goalID); err != nil {
		return nil, err
	}
	var savings []domain.GoalSaving
	for _, saving := range m.Savings {
		if saving.GoalID == goalID {
			savings = append(savings, saving)
		}
	}
	return savings, nil
}

func (m *MockGoalService) GetSummary(userID string) (*application.GoalsSummary, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	if m.Summary != nil {
		return m.Summary, nil
	}
	return &application.GoalsSummary{}, nil
}
