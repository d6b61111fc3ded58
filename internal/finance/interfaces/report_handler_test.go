package interfaces

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/finflowhq/finflow/internal/finance/application"
	"github.com/finflowhq/finflow/internal/finance/domain"
	financeErrors "github.com/finflowhq/finflow/internal/finance/errors"
)

func TestGenerateMonthlyReportHandler(t *testing.T) {
	service := &MockReportService{
		Report: &application.MonthlyReport{
			Income:  2000,
			Expense: 500,
			Savings: 1500,
			TopSpendingCategories: []domain.CategoryTotal{
				{Category: "Salary", Amount: 2000},
				{Category: "Food", Amount: 500},
			},
			MonthlySummary:   "A good month.",
			ActionableAdvice: []string{"Save more"},
		},
		Transactions: []domain.Transaction{
			{ID: "t1", Description: "Salary", Amount: 2000, Type: domain.TypeIncome, Category: "Salary", Date: time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC)},
		},
	}
	handler := NewReportHandler(service, respondJSON, respondError)

	body, _ := json.Marshal(map[string]int{"month": 3, "year": 2024})
	req := authenticatedRequest(http.MethodPost, "/api/protected/reports/monthly", body)
	w := httptest.NewRecorder()

	handler.GenerateMonthlyReport(w, req)

	res := w.Result()
	defer res.Body.Close()
	assert.Equal(t, http.StatusOK, res.StatusCode)

	var response struct {
		Status string `json:"status"`
		Data   struct {
			Report       application.MonthlyReport `json:"report"`
			Transactions []domain.Transaction      `json:"transactions"`
		} `json:"data"`
	}
	err := json.NewDecoder(res.Body).Decode(&response)
	assert.NoError(t, err)
	assert.Equal(t, "success", response.Status)
	assert.Equal(t, 1500.0, response.Data.Report.Savings)
	assert.Equal(t, "A good month.", response.Data.Report.MonthlySummary)
	assert.Len(t, response.Data.Transactions, 1)
}

func TestGenerateMonthlyReportHandler_MissingMonthAndYear(t *testing.T) {
	service := &MockReportService{}
	handler := NewReportHandler(service, respondJSON, respondError)

	body, _ := json.Marshal(map[string]int{})
	req := authenticatedRequest(http.MethodPost, "/api/protected/reports/monthly", body)
	w := httptest.NewRecorder()

	handler.GenerateMonthlyReport(w, req)

	res := w.Result()
	defer res.Body.Close()
	assert.Equal(t, http.StatusBadRequest, res.StatusCode)

	var response map[string]interface{}
	err := json.NewDecoder(res.Body).Decode(&response)
	assert.NoError(t, err)
	assert.Equal(t, "Month and year are required.", response["message"])
}

func TestGenerateMonthlyReportHandler_NoTransactions(t *testing.T) {
	service := &MockReportService{Err: financeErrors.ErrNoTransactions}
	handler := NewReportHandler(service, respondJSON, respondError)

	body, _ := json.Marshal(map[string]int{"month": 3, "year": 2024})
	req := authenticatedRequest(http.MethodPost, "/api/protected/reports/monthly", body)
	w := httptest.NewRecorder()

	handler.GenerateMonthlyReport(w, req)

	res := w.Result()
	defer res.Body.Close()
	assert.Equal(t, http.StatusNotFound, res.StatusCode)

	var response map[string]interface{}
	err := json.NewDecoder(res.Body).Decode(&response)
	assert.NoError(t, err)
	assert.Equal(t, "No transactions for this month.", response["message"])
}

func TestGenerateMonthlyReportHandler_InvalidMonth(t *testing.T) {
	service := &MockReportService{Err: financeErrors.NewValidationError("Month must be between 1 and 12")}
	handler := NewReportHandler(service, respondJSON, respondError)

	body, _ := json.Marshal(map[string]int{"month": 13, "year": 2024})
	req := authenticatedRequest(http.MethodPost, "/api/protected/reports/monthly", body)
	w := httptest.NewRecorder()

	handler.GenerateMonthlyReport(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Result().StatusCode)
}

func TestGenerateMonthlyReportHandler_Unauthorized(t *testing.T) {
	service := &MockReportService{}
	handler := NewReportHandler(service, respondJSON, respondError)

	req := httptest.NewRequest(http.MethodPost, "/api/protected/reports/monthly", nil)
	w := httptest.NewRecorder()

	handler.GenerateMonthlyReport(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Result().StatusCode)
}
