package domain

import (
	"math"
	"time"
)

// Budget is client-owned configuration, never persisted server-side.
// Rollover is informational only; no carry-forward arithmetic exists.
type Budget struct {
	Category string  `json:"category"`
	Amount   float64 `json:"amount"`
	Period   string  `json:"period"` // "monthly" or "weekly"
	Note     string  `json:"note,omitempty"`
	Rollover bool    `json:"rollover,omitempty"`
}

const (
	TierExceeded     = "exceeded"
	TierOverBudget   = "over budget"
	TierNearingLimit = "nearing limit"
	TierHalfUsed     = "half used"
	TierNone         = ""
)

type BudgetEvaluation struct {
	Category    string  `json:"category"`
	Spent       float64 `json:"spent"`
	PercentUsed int     `json:"percentUsed"`
	Tier        string  `json:"tier,omitempty"`
}

// EvaluateBudget aggregates the current period's expenses for the budget's
// category and buckets the spend-to-budget ratio into an advisory tier.
func EvaluateBudget(budget Budget, transactions []Transaction, now time.Time) BudgetEvaluation {
	window := ResolvePeriod(budget.Period, now)
	spent := Aggregate(transactions, AggregateFilter{
		Range:    window,
		Type:     TypeExpense,
		Category: budget.Category,
	}).Total

	evaluation := BudgetEvaluation{Category: budget.Category, Spent: spent}
	if budget.Amount <= 0 {
		// unreachable for well-formed budgets, but never crash on amount=0
		return evaluation
	}

	ratio := spent / budget.Amount
	evaluation.PercentUsed = int(math.Round(math.Min(100, ratio*100)))

	switch {
	case ratio > 1.10:
		evaluation.Tier = TierExceeded
	case ratio > 1.00:
		evaluation.Tier = TierOverBudget
	case ratio > 0.80:
		evaluation.Tier = TierNearingLimit
	case ratio > 0.50:
		evaluation.Tier = TierHalfUsed
	}
	return evaluation
}
