package budget

import (
	"encoding/json"
	"errors"
	"time"

	"github.com/finflowhq/finflow/internal/finance/domain"
	financeErrors "github.com/finflowhq/finflow/internal/finance/errors"
)

// Service manages client-local budget state over an injected Storage
// backend: one budget per category, a free-form category list, and a
// per-category evaluation history.
type Service struct {
	storage Storage
}

func NewService(storage Storage) *Service {
	return &Service{storage: storage}
}

// Budgets are stored as one JSON object keyed by category.
type storedBudget struct {
	Amount   float64 `json:"amount"`
	Period   string  `json:"period"`
	Note     string  `json:"note,omitempty"`
	Rollover bool    `json:"rollover,omitempty"`
}

type HistoryEntry struct {
	Period string  `json:"period"`
	Month  string  `json:"month"`
	Spent  float64 `json:"spent"`
	Budget float64 `json:"budget"`
}

func (s *Service) GetBudgets() (map[string]domain.Budget, error) {
	stored, err := s.readBudgets()
	if err != nil {
		return nil, err
	}
	budgets := make(map[string]domain.Budget, len(stored))
	for category, b := range stored {
		budgets[category] = domain.Budget{
			Category: category,
			Amount:   b.Amount,
			Period:   b.Period,
			Note:     b.Note,
			Rollover: b.Rollover,
		}
	}
	return budgets, nil
}

func (s *Service) SetBudget(budget domain.Budget) error {
	if budget.Category == "" {
		return financeErrors.NewValidationError("Category is required")
	}
	if budget.Amount <= 0 {
		return financeErrors.NewValidationError("Amount must be greater than zero")
	}
	if !domain.IsValidPeriod(budget.Period) {
		return financeErrors.NewValidationError("Period must be 'monthly' or 'weekly'")
	}

	budgets, err := s.readBudgets()
	if err != nil {
		return err
	}
	budgets[budget.Category] = storedBudget{
		Amount:   budget.Amount,
		Period:   budget.Period,
		Note:     budget.Note,
		Rollover: budget.Rollover,
	}
	return s.writeJSON(KeyBudgets, budgets)
}

func (s *Service) RemoveBudget(category string) error {
	budgets, err := s.readBudgets()
	if err != nil {
		return err
	}
	delete(budgets, category)
	return s.writeJSON(KeyBudgets, budgets)
}

func (s *Service) ResetBudgets() error {
	return s.storage.Remove(KeyBudgets)
}

// ExportBudgets serializes the budgets blob for download.
func (s *Service) ExportBudgets() ([]byte, error) {
	budgets, err := s.readBudgets()
	if err != nil {
		return nil, err
	}
	return json.MarshalIndent(budgets, "", "  ")
}

// ImportBudgets replaces the budgets blob wholesale. Malformed JSON is
// rejected without touching the stored state.
func (s *Service) ImportBudgets(data []byte) error {
	var budgets map[string]storedBudget
	if err := json.Unmarshal(data, &budgets); err != nil {
		return financeErrors.NewValidationError("Invalid file")
	}
	return s.writeJSON(KeyBudgets, budgets)
}

// Evaluate runs the budget for a category against a transaction set.
func (s *Service) Evaluate(category string, transactions []domain.Transaction, now time.Time) (*domain.BudgetEvaluation, error) {
	budgets, err := s.GetBudgets()
	if err != nil {
		return nil, err
	}
	budget, ok := budgets[category]
	if !ok {
		return nil, financeErrors.NewValidationError("No budget for category")
	}
	evaluation := domain.EvaluateBudget(budget, transactions, now)
	return &evaluation, nil
}

func (s *Service) GetCategories() ([]string, error) {
	var categories []string
	if err := s.readJSON(KeyCustomCategories, &categories); err != nil {
		return nil, err
	}
	if categories == nil {
		categories = []string{}
	}
	return categories, nil
}

// AddCategory is idempotent: an existing category is left alone.
func (s *Service) AddCategory(category string) error {
	categories, err := s.GetCategories()
	if err != nil {
		return err
	}
	for _, existing := range categories {
		if existing == category {
			return nil
		}
	}
	return s.writeJSON(KeyCustomCategories, append(categories, category))
}

func (s *Service) RemoveCategory(category string) error {
	categories, err := s.GetCategories()
	if err != nil {
		return err
	}
	remaining := make([]string, 0, len(categories))
	for _, existing := range categories {
		if existing != category {
			remaining = append(remaining, existing)
		}
	}
	return s.writeJSON(KeyCustomCategories, remaining)
}

func (s *Service) GetHistory() (map[string][]HistoryEntry, error) {
	history := make(map[string][]HistoryEntry)
	if err := s.readJSON(KeyBudgetHistory, &history); err != nil {
		return nil, err
	}
	return history, nil
}

func (s *Service) AddHistory(category string, entry HistoryEntry) error {
	history, err := s.GetHistory()
	if err != nil {
		return err
	}
	history[category] = append(history[category], entry)
	return s.writeJSON(KeyBudgetHistory, history)
}

func (s *Service) ClearHistory() error {
	return s.storage.Remove(KeyBudgetHistory)
}

func (s *Service) readBudgets() (map[string]storedBudget, error) {
	budgets := make(map[string]storedBudget)
	if err := s.readJSON(KeyBudgets, &budgets); err != nil {
		return nil, err
	}
	return budgets, nil
}

func (s *Service) readJSON(key string, target interface{}) error {
	data, err := s.storage.Get(key)
	if err != nil {
		if errors.Is(err, ErrKeyNotFound) {
			return nil
		}
		return err
	}
	return json.Unmarshal(data, target)
}

func (s *Service) writeJSON(key string, value interface{}) error {
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return s.storage.Set(key, data)
}
