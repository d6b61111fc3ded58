package domain

import (
	"sort"
)

type AggregateFilter struct {
	Range    Range
	Type     string // optional, "income" or "expense"
	Category string // optional
}

type CategoryTotal struct {
	Category string  `json:"category"`
	Amount   float64 `json:"amount"`
}

type AggregateResult struct {
	Total      float64
	ByCategory []CategoryTotal
}

// Aggregate sums the transactions matching the filter in a single pass.
// Category buckets appear in discovery order; categories with no matching
// transaction are absent entirely.
func Aggregate(transactions []Transaction, filter AggregateFilter) AggregateResult {
	result := AggregateResult{}
	index := make(map[string]int)

	for _, t := range transactions {
		if !filter.Range.Contains(t.Date) {
			continue
		}
		if filter.Type != "" && t.Type != filter.Type {
			continue
		}
		if filter.Category != "" && t.Category != filter.Category {
			continue
		}
		result.Total += t.Amount
		if i, ok := index[t.Category]; ok {
			result.ByCategory[i].Amount += t.Amount
		} else {
			index[t.Category] = len(result.ByCategory)
			result.ByCategory = append(result.ByCategory, CategoryTotal{Category: t.Category, Amount: t.Amount})
		}
	}
	return result
}

// SortByAmount orders category totals descending by amount. Ties keep
// their discovery order.
func SortByAmount(totals []CategoryTotal) {
	sort.SliceStable(totals, func(i, j int) bool {
		return totals[i].Amount > totals[j].Amount
	})
}
