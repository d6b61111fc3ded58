package application

import (
	"log"
	"time"

	"github.com/finflowhq/finflow/internal/finance/domain"
	financeErrors "github.com/finflowhq/finflow/internal/finance/errors"
	"github.com/google/uuid"
)

type GoalService struct {
	goals   domain.GoalRepository
	savings domain.GoalSavingRepository
}

func NewGoalService(goals domain.GoalRepository, savings domain.GoalSavingRepository) *GoalService {
	return &GoalService{goals: goals, savings: savings}
}

func (s *GoalService) CreateGoal(goal *domain.Goal) error {
	goal.ID = uuid.NewString()
	now := time.Now().UTC()
	goal.CreatedAt = now
	goal.UpdatedAt = now
	if goal.Priority == "" {
		goal.Priority = domain.PriorityMedium
	}
	if err := goal.Validate(); err != nil {
		return err
	}
	return s.goals.Save(*goal)
}

// ListGoals rolls savings totals into each goal, then applies the list
// filters and sort.
func (s *GoalService) ListGoals(userID string, filter domain.GoalListFilter) ([]domain.GoalProgress, error) {
	goals, err := s.goals.FindByUser(userID)
	if err != nil {
		return nil, err
	}

	ids := make([]string, len(goals))
	for i, goal := range goals {
		ids[i] = goal.ID
	}
	totals, err := s.savings.TotalsByGoal(ids)
	if err != nil {
		return nil, err
	}

	progress := make([]domain.GoalProgress, len(goals))
	for i, goal := range goals {
		progress[i] = domain.NewGoalProgress(goal, totals[goal.ID])
	}

	progress = domain.FilterGoals(progress, filter)
	domain.SortGoals(progress, filter.SortBy)
	return progress, nil
}

func (s *GoalService) GetGoal(userID, goalID string) (*domain.GoalProgress, error) {
	goal, err := s.ownedGoal(userID, goalID)
	if err != nil {
		return nil, err
	}
	totals, err := s.savings.TotalsByGoal([]string{goal.ID})
	if err != nil {
		return nil, err
	}
	progress := domain.NewGoalProgress(*goal, totals[goal.ID])
	return &progress, nil
}

func (s *GoalService) UpdateGoal(userID string, goal domain.Goal) error {
	existing, err := s.ownedGoal(userID, goal.ID)
	if err != nil {
		return err
	}
	goal.UserID = existing.UserID
	goal.CreatedAt = existing.CreatedAt
	goal.UpdatedAt = time.Now().UTC()
	if goal.Priority == "" {
		goal.Priority = existing.Priority
	}
	if err := goal.Validate(); err != nil {
		return err
	}
	return s.goals.Update(goal)
}

// DeleteGoal removes the goal and then its savings. The two deletes are
// best-effort sequential, not atomic.
func (s *GoalService) DeleteGoal(userID, goalID string) error {
	if _, err := s.ownedGoal(userID, goalID); err != nil {
		return err
	}
	if err := s.goals.Delete(goalID); err != nil {
		return err
	}
	if err := s.savings.DeleteByGoal(goalID); err != nil {
		log.Printf("Could not cascade goal savings for goal %s: %v", goalID, err)
		return err
	}
	return nil
}

func (s *GoalService) AddSaving(userID, goalID string, saving *domain.GoalSaving) error {
	if _, err := s.ownedGoal(userID, goalID); err != nil {
		return err
	}
	saving.ID = uuid.NewString()
	saving.GoalID = goalID
	saving.UserID = userID
	saving.CreatedAt = time.Now().UTC()
	if err := saving.Validate(); err != nil {
		return err
	}
	return s.savings.Save(*saving)
}

func (s *GoalService) GetSavings(userID, goalID string) ([]domain.GoalSaving, error) {
	if _, err := s.ownedGoal(userID, goalID); err != nil {
		return nil, err
	}
	return s.savings.FindByGoal(goalID)
}

type GoalsSummary struct {
	TotalSavings   float64 `json:"totalSavings"`
	ActiveGoals    int     `json:"activeGoals"`
	CompletedGoals int     `json:"completedGoals"`
}

func (s *GoalService) GetSummary(userID string) (*GoalsSummary, error) {
	goals, err := s.goals.FindByUser(userID)
	if err != nil {
		return nil, err
	}
	savings, err := s.savings.FindByUser(userID)
	if err != nil {
		return nil, err
	}

	summary := &GoalsSummary{}
	totals := make(map[string]float64)
	for _, saving := range savings {
		summary.TotalSavings += saving.Amount
		totals[saving.GoalID] += saving.Amount
	}
	for _, goal := range goals {
		if totals[goal.ID] >= goal.TargetAmount {
			summary.CompletedGoals++
		} else {
			summary.ActiveGoals++
		}
	}
	return summary, nil
}

func (s *GoalService) ownedGoal(userID, goalID string) (*domain.Goal, error) {
	goal, err := s.goals.FindByID(goalID)
	if err != nil {
		return nil, err
	}
	if goal.UserID != userID {
		return nil, financeErrors.ErrGoalNotFound
	}
	return goal, nil
}
