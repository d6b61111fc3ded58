package application

import (
	"context"
	"fmt"
	"log"
	"sort"
	"strings"
	"time"

	"github.com/finflowhq/finflow/internal/finance/domain"
	financeErrors "github.com/finflowhq/finflow/internal/finance/errors"
)

// Summarizer produces a natural-language summary for a monthly report
// prompt. Implementations carry their own timeout and retry policy.
type Summarizer interface {
	Summarize(ctx context.Context, prompt string) (*Summary, error)
}

type Summary struct {
	MonthlySummary   string   `json:"monthlySummary"`
	ActionableAdvice []string `json:"actionableAdvice"`
}

type MonthlyReport struct {
	Income                float64                `json:"income"`
	Expense               float64                `json:"expense"`
	Savings               float64                `json:"savings"`
	TopSpendingCategories []domain.CategoryTotal `json:"topSpendingCategories"`
	MonthlySummary        string                 `json:"monthlySummary"`
	ActionableAdvice      []string               `json:"actionableAdvice"`
}

type ReportService struct {
	repo       domain.TransactionRepository
	summarizer Summarizer // nil when no AI credential is configured
}

func NewReportService(repo domain.TransactionRepository, summarizer Summarizer) *ReportService {
	return &ReportService{repo: repo, summarizer: summarizer}
}

// GenerateMonthlyReport builds the report for one calendar month. The
// summarizer is strictly optional: any failure there degrades to an empty
// summary and never fails the report.
func (s *ReportService) GenerateMonthlyReport(ctx context.Context, userID string, month, year int) (*MonthlyReport, []domain.Transaction, error) {
	if month < 1 || month > 12 {
		return nil, nil, financeErrors.NewValidationError("Month must be between 1 and 12")
	}

	transactions, err := s.repo.FindByUser(userID, domain.QueryFilter{Month: month, Year: year})
	if err != nil {
		return nil, nil, err
	}
	if len(transactions) == 0 {
		return nil, nil, financeErrors.ErrNoTransactions
	}

	sort.SliceStable(transactions, func(i, j int) bool {
		return transactions[i].Date.Before(transactions[j].Date)
	})

	window := domain.MonthRange(time.Month(month), year, time.UTC)
	income := domain.Aggregate(transactions, domain.AggregateFilter{Range: window, Type: domain.TypeIncome}).Total
	expense := domain.Aggregate(transactions, domain.AggregateFilter{Range: window, Type: domain.TypeExpense}).Total

	byCategory := domain.Aggregate(transactions, domain.AggregateFilter{Range: window}).ByCategory
	domain.SortByAmount(byCategory)

	report := &MonthlyReport{
		Income:                income,
		Expense:               expense,
		Savings:               income - expense,
		TopSpendingCategories: byCategory,
		MonthlySummary:        "",
		ActionableAdvice:      []string{},
	}

	if s.summarizer != nil {
		summary, err := s.summarizer.Summarize(ctx, buildPrompt(window.Start, transactions))
		if err != nil {
			log.Printf("Summarizer error, continuing without AI summary: %v", err)
		} else if summary != nil {
			report.MonthlySummary = summary.MonthlySummary
			if summary.ActionableAdvice != nil {
				report.ActionableAdvice = summary.ActionableAdvice
			}
		}
	}
	return report, transactions, nil
}

func buildPrompt(monthStart time.Time, transactions []domain.Transaction) string {
	var lines strings.Builder
	for i, t := range transactions {
		verb := "spent"
		if t.Type == domain.TypeIncome {
			verb = "earned"
		}
		if i > 0 {
			lines.WriteString("\n")
		}
		fmt.Fprintf(&lines, "- On %s, you %s ₹%g for %q (Category: %s)",
			t.Date.Format("2/1/2006"), verb, t.Amount, t.Description, t.Category)
	}

	return fmt.Sprintf(`Generate a monthly financial summary and saving advice in JSON using this format:
{
  "monthlySummary": "one-liner summary",
  "actionableAdvice": ["tip1", "tip2"]
}

Data:
Month: %s
Transactions:
%s`, monthStart.Format("January 2006"), lines.String())
}
