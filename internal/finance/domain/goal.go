package domain

import (
	"math"
	"sort"
	"time"

	"github.com/finflowhq/finflow/internal/finance/errors"
)

const (
	PriorityLow    = "Low"
	PriorityMedium = "Medium"
	PriorityHigh   = "High"
)

type GoalRepository interface {
	Save(goal Goal) error
	FindByUser(userID string) ([]Goal, error)
	FindByID(goalID string) (*Goal, error)
	Update(goal Goal) error
	Delete(goalID string) error
}

type GoalSavingRepository interface {
	Save(saving GoalSaving) error
	FindByGoal(goalID string) ([]GoalSaving, error)
	FindByUser(userID string) ([]GoalSaving, error)
	TotalsByGoal(goalIDs []string) (map[string]float64, error)
	DeleteByGoal(goalID string) error
}

type Goal struct {
	ID           string     `json:"id"`
	UserID       string     `json:"userId"`
	Title        string     `json:"title"`
	TargetAmount float64    `json:"targetAmount"`
	StartDate    time.Time  `json:"startDate"`
	EndDate      *time.Time `json:"endDate,omitempty"`
	Priority     string     `json:"priority"`
	Notes        string     `json:"notes,omitempty"`
	Image        string     `json:"image,omitempty"`
	CreatedAt    time.Time  `json:"createdAt"`
	UpdatedAt    time.Time  `json:"updatedAt"`
}

// GoalSaving is an append-only contribution towards a goal.
type GoalSaving struct {
	ID        string    `json:"id"`
	GoalID    string    `json:"goalId"`
	UserID    string    `json:"userId"`
	Amount    float64   `json:"amount"`
	Date      time.Time `json:"date"`
	Note      string    `json:"note,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

func (g *Goal) Validate() error {
	if g.Title == "" {
		return errors.NewValidationError("Title is required")
	}
	if g.TargetAmount <= 0 {
		return errors.NewValidationError("Target amount must be greater than zero")
	}
	if g.StartDate.IsZero() {
		return errors.NewValidationError("Start date is required")
	}
	if g.Priority != PriorityLow && g.Priority != PriorityMedium && g.Priority != PriorityHigh {
		return errors.NewValidationError("Priority must be 'Low', 'Medium' or 'High'")
	}
	return nil
}

func (s *GoalSaving) Validate() error {
	if s.Amount <= 0 {
		return errors.NewValidationError("Amount must be greater than zero")
	}
	if s.Date.IsZero() {
		return errors.NewValidationError("Date is required")
	}
	return nil
}

// GoalProgress is the ledger view of a goal: its savings rolled up against
// the target.
type GoalProgress struct {
	Goal
	SavingsTotal    float64 `json:"savingsTotal"`
	Remaining       float64 `json:"remaining"`
	Completed       bool    `json:"completed"`
	ProgressPercent int     `json:"progressPercent"`
}

func NewGoalProgress(goal Goal, savingsTotal float64) GoalProgress {
	progress := GoalProgress{
		Goal:         goal,
		SavingsTotal: savingsTotal,
		Remaining:    math.Max(0, goal.TargetAmount-savingsTotal),
		Completed:    savingsTotal >= goal.TargetAmount,
	}
	if goal.TargetAmount > 0 {
		progress.ProgressPercent = int(math.Round(math.Min(100, savingsTotal/goal.TargetAmount*100)))
	}
	return progress
}

const (
	GoalStatusActive    = "active"
	GoalStatusCompleted = "completed"

	GoalSortDeadline        = "deadline"
	GoalSortAmountRemaining = "amountRemaining"
)

type GoalListFilter struct {
	Status    string
	Priority  string
	MinAmount float64
	MaxAmount float64
	SortBy    string
}

// FilterGoals applies the list filters over already-rolled-up goals.
func FilterGoals(goals []GoalProgress, filter GoalListFilter) []GoalProgress {
	filtered := make([]GoalProgress, 0, len(goals))
	for _, g := range goals {
		if filter.Priority != "" && g.Priority != filter.Priority {
			continue
		}
		if filter.MinAmount > 0 && g.TargetAmount < filter.MinAmount {
			continue
		}
		if filter.MaxAmount > 0 && g.TargetAmount > filter.MaxAmount {
			continue
		}
		if filter.Status == GoalStatusActive && g.Completed {
			continue
		}
		if filter.Status == GoalStatusCompleted && !g.Completed {
			continue
		}
		filtered = append(filtered, g)
	}
	return filtered
}

// SortGoals orders goals in place. "deadline" sorts by end date ascending
// with open-ended goals last. "amountRemaining" sorts by the raw target
// amount, matching the stored sort key rather than the computed remaining
// balance.
func SortGoals(goals []GoalProgress, sortBy string) {
	switch sortBy {
	case GoalSortDeadline:
		sort.SliceStable(goals, func(i, j int) bool {
			if goals[i].EndDate == nil {
				return false
			}
			if goals[j].EndDate == nil {
				return true
			}
			return goals[i].EndDate.Before(*goals[j].EndDate)
		})
	case GoalSortAmountRemaining:
		sort.SliceStable(goals, func(i, j int) bool {
			return goals[i].TargetAmount < goals[j].TargetAmount
		})
	}
}
