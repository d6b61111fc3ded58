package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func expenseOn(day int, category string, amount float64) Transaction {
	return Transaction{
		Date:     time.Date(2024, time.March, day, 12, 0, 0, 0, time.UTC),
		Type:     TypeExpense,
		Category: category,
		Amount:   amount,
	}
}

func TestEvaluateBudget_OverspentCapsPercentAtHundred(t *testing.T) {
	budget := Budget{Category: "Food", Amount: 400, Period: PeriodMonthly}
	transactions := []Transaction{
		expenseOn(3, "Food", 200),
		expenseOn(10, "Food", 300),
	}
	now := time.Date(2024, time.March, 15, 0, 0, 0, 0, time.UTC)

	evaluation := EvaluateBudget(budget, transactions, now)

	assert.Equal(t, 500.0, evaluation.Spent)
	assert.Equal(t, 100, evaluation.PercentUsed)
	assert.Equal(t, TierExceeded, evaluation.Tier)
}

func TestEvaluateBudget_TierBoundaries(t *testing.T) {
	now := time.Date(2024, time.March, 15, 0, 0, 0, 0, time.UTC)
	budget := Budget{Category: "Food", Amount: 100, Period: PeriodMonthly}

	cases := []struct {
		spent float64
		tier  string
	}{
		{0, TierNone},
		{50, TierNone},
		{50.01, TierHalfUsed},
		{80, TierHalfUsed},
		{80.01, TierNearingLimit},
		{100, TierNearingLimit},
		{100.01, TierOverBudget},
		{110, TierOverBudget},
		{110.01, TierExceeded},
	}

	for _, c := range cases {
		transactions := []Transaction{}
		if c.spent > 0 {
			transactions = append(transactions, expenseOn(5, "Food", c.spent))
		}
		evaluation := EvaluateBudget(budget, transactions, now)
		assert.Equal(t, c.tier, evaluation.Tier, "spent %v", c.spent)
	}
}

func TestEvaluateBudget_IgnoresOtherCategoriesIncomeAndOtherPeriods(t *testing.T) {
	budget := Budget{Category: "Food", Amount: 200, Period: PeriodMonthly}
	now := time.Date(2024, time.March, 20, 0, 0, 0, 0, time.UTC)
	transactions := []Transaction{
		expenseOn(5, "Food", 60),
		expenseOn(6, "Travel", 500),
		{Date: time.Date(2024, time.March, 7, 0, 0, 0, 0, time.UTC), Type: TypeIncome, Category: "Food", Amount: 300},
		{Date: time.Date(2024, time.February, 7, 0, 0, 0, 0, time.UTC), Type: TypeExpense, Category: "Food", Amount: 999},
	}

	evaluation := EvaluateBudget(budget, transactions, now)

	assert.Equal(t, 60.0, evaluation.Spent)
	assert.Equal(t, 30, evaluation.PercentUsed)
	assert.Equal(t, TierNone, evaluation.Tier)
}

func TestEvaluateBudget_WeeklyPeriodUsesCurrentWeek(t *testing.T) {
	budget := Budget{Category: "Food", Amount: 100, Period: PeriodWeekly}
	// Thursday 2024-03-14; its week is Mon 11th through Sun 17th.
	now := time.Date(2024, time.March, 14, 9, 0, 0, 0, time.UTC)
	transactions := []Transaction{
		expenseOn(11, "Food", 40),
		expenseOn(17, "Food", 20),
		expenseOn(10, "Food", 500), // previous week
	}

	evaluation := EvaluateBudget(budget, transactions, now)

	assert.Equal(t, 60.0, evaluation.Spent)
	assert.Equal(t, 60, evaluation.PercentUsed)
	assert.Equal(t, TierHalfUsed, evaluation.Tier)
}

func TestEvaluateBudget_ZeroAmountNeverCrashes(t *testing.T) {
	budget := Budget{Category: "Food", Amount: 0, Period: PeriodMonthly}
	now := time.Date(2024, time.March, 15, 0, 0, 0, 0, time.UTC)
	transactions := []Transaction{expenseOn(5, "Food", 50)}

	evaluation := EvaluateBudget(budget, transactions, now)

	assert.Equal(t, 50.0, evaluation.Spent)
	assert.Equal(t, 0, evaluation.PercentUsed)
	assert.Equal(t, TierNone, evaluation.Tier)
}

func TestEvaluateBudget_PercentRounds(t *testing.T) {
	budget := Budget{Category: "Food", Amount: 300, Period: PeriodMonthly}
	now := time.Date(2024, time.March, 15, 0, 0, 0, 0, time.UTC)
	transactions := []Transaction{expenseOn(5, "Food", 100)}

	evaluation := EvaluateBudget(budget, transactions, now)

	// 100/300 = 33.33..., rounds to 33
	assert.Equal(t, 33, evaluation.PercentUsed)
}
