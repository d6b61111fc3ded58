package interfaces

import (
	"bytes"
	"context"
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

func authenticatedRequest(method, target string, body []byte) *http.Request {
	var req *http.Request
	if body != nil {
		req = httptest.NewRequest(method, target, bytes.NewBuffer(body))
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	req.Header.Set("Content-Type", "application/json")
	return req.WithContext(context.WithValue(req.Context(), "userID", "user-1"))
}

func TestCreateTransaction(t *testing.T) {
	service := &MockTransactionService{}
	handler := NewTransactionHandler(service, respondJSON, respondError)

	body, _ := json.Marshal(domain.Transaction{
		Description: "Groceries",
		Amount:      42.50,
		Type:        domain.TypeExpense,
		Category:    "Food",
		Date:        time.Date(2024, time.March, 5, 0, 0, 0, 0, time.UTC),
	})
	req := authenticatedRequest(http.MethodPost, "/api/protected/transactions", body)
	w := httptest.NewRecorder()

	handler.CreateTransaction(w, req)

	res := w.Result()
	defer res.Body.Close()
	assert.Equal(t, http.StatusCreated, res.StatusCode)

	var response map[string]interface{}
	err := json.NewDecoder(res.Body).Decode(&response)
	assert.NoError(t, err)
	assert.Equal(t, "success", response["status"])
	assert.Equal(t, "Transaction added successfully", response["message"])

	assert.Len(t, service.Created, 1)
	assert.Equal(t, "user-1", service.Created[0].UserID)
}

func TestCreateTransaction_ValidationError(t *testing.T) {
	service := &MockTransactionService{}
	handler := NewTransactionHandler(service, respondJSON, respondError)

	body, _ := json.Marshal(domain.Transaction{Description: "Bad", Amount: -5, Type: domain.TypeExpense, Category: "Food"})
	req := authenticatedRequest(http.MethodPost, "/api/protected/transactions", body)
	w := httptest.NewRecorder()

	handler.CreateTransaction(w, req)

	res := w.Result()
	defer res.Body.Close()
	assert.Equal(t, http.StatusBadRequest, res.StatusCode)

	var response map[string]interface{}
	err := json.NewDecoder(res.Body).Decode(&response)
	assert.NoError(t, err)
	assert.Equal(t, "error", response["status"])
	assert.Equal(t, "Amount must be greater than zero", response["message"])
	assert.Equal(t, float64(http.StatusBadRequest), response["code"])
	assert.Empty(t, service.Created)
}

func TestCreateTransaction_Unauthorized(t *testing.T) {
	service := &MockTransactionService{}
	handler := NewTransactionHandler(service, respondJSON, respondError)

	req := httptest.NewRequest(http.MethodPost, "/api/protected/transactions", bytes.NewBufferString("{}"))
	w := httptest.NewRecorder()

	handler.CreateTransaction(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Result().StatusCode)
}

func TestCreateTransaction_InvalidBody(t *testing.T) {
	service := &MockTransactionService{}
	handler := NewTransactionHandler(service, respondJSON, respondError)

	req := authenticatedRequest(http.MethodPost, "/api/protected/transactions", []byte("not json"))
	w := httptest.NewRecorder()

	handler.CreateTransaction(w, req)

	res := w.Result()
	defer res.Body.Close()
	assert.Equal(t, http.StatusBadRequest, res.StatusCode)

	var response map[string]interface{}
	err := json.NewDecoder(res.Body).Decode(&response)
	assert.NoError(t, err)
	assert.Equal(t, "Invalid request body", response["message"])
}

func TestGetUserTransactions_EmptyListIsJSONArray(t *testing.T) {
	service := &MockTransactionService{}
	handler := NewTransactionHandler(service, respondJSON, respondError)

	req := authenticatedRequest(http.MethodGet, "/api/protected/transactions", nil)
	w := httptest.NewRecorder()

	handler.GetUserTransactions(w, req)

	res := w.Result()
	defer res.Body.Close()
	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Contains(t, w.Body.String(), `"data":[]`)
}

func TestGetUserTransactions_ConflictingFilters(t *testing.T) {
	service := &MockTransactionService{}
	handler := NewTransactionHandler(service, respondJSON, respondError)

	req := authenticatedRequest(http.MethodGet, "/api/protected/transactions?month=3&year=2024&dateFrom=2024-03-01&dateTo=2024-03-31", nil)
	w := httptest.NewRecorder()

	handler.GetUserTransactions(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Result().StatusCode)
}

func TestGetUserTransactions_InvalidMonthParam(t *testing.T) {
	service := &MockTransactionService{}
	handler := NewTransactionHandler(service, respondJSON, respondError)

	req := authenticatedRequest(http.MethodGet, "/api/protected/transactions?month=abc", nil)
	w := httptest.NewRecorder()

	handler.GetUserTransactions(w, req)

	res := w.Result()
	defer res.Body.Close()
	assert.Equal(t, http.StatusBadRequest, res.StatusCode)

	var response map[string]interface{}
	err := json.NewDecoder(res.Body).Decode(&response)
	assert.NoError(t, err)
	assert.Equal(t, "Invalid month value", response["message"])
}

func TestUpdateTransaction_NotFound(t *testing.T) {
	service := &MockTransactionService{Err: financeErrors.ErrTransactionNotFound}
	handler := NewTransactionHandler(service, respondJSON, respondError)

	body, _ := json.Marshal(domain.Transaction{Description: "X", Amount: 1, Type: domain.TypeExpense, Category: "Food"})
	req := authenticatedRequest(http.MethodPut, "/api/protected/transactions/missing", body)
	req.SetPathValue("id", "missing")
	w := httptest.NewRecorder()

	handler.UpdateTransaction(w, req)

	res := w.Result()
	defer res.Body.Close()
	assert.Equal(t, http.StatusNotFound, res.StatusCode)

	var response map[string]interface{}
	err := json.NewDecoder(res.Body).Decode(&response)
	assert.NoError(t, err)
	assert.Equal(t, "Transaction not found", response["message"])
}

func TestUpdateTransaction_UsesPathID(t *testing.T) {
	service := &MockTransactionService{}
	handler := NewTransactionHandler(service, respondJSON, respondError)

	body, _ := json.Marshal(domain.Transaction{ID: "spoofed", Description: "Rent", Amount: 900, Type: domain.TypeExpense, Category: "Housing"})
	req := authenticatedRequest(http.MethodPut, "/api/protected/transactions/t1", body)
	req.SetPathValue("id", "t1")
	w := httptest.NewRecorder()

	handler.UpdateTransaction(w, req)

	assert.Equal(t, http.StatusOK, w.Result().StatusCode)
	assert.Len(t, service.Updated, 1)
	assert.Equal(t, "t1", service.Updated[0].ID)
}

func TestDeleteTransaction(t *testing.T) {
	service := &MockTransactionService{}
	handler := NewTransactionHandler(service, respondJSON, respondError)

	req := authenticatedRequest(http.MethodDelete, "/api/protected/transactions/t1", nil)
	req.SetPathValue("id", "t1")
	w := httptest.NewRecorder()

	handler.DeleteTransaction(w, req)

	res := w.Result()
	defer res.Body.Close()
	assert.Equal(t, http.StatusOK, res.StatusCode)

	var response map[string]interface{}
	err := json.NewDecoder(res.Body).Decode(&response)
	assert.NoError(t, err)
	assert.Equal(t, "Transaction deleted successfully", response["message"])
	assert.Equal(t, []string{"t1"}, service.Deleted)
}

func TestGetDashboardSummary(t *testing.T) {
	service := &MockTransactionService{Summary: &application.DashboardSummary{
		TotalIncome:  2000,
		TotalExpense: 500,
		Balance:      1500,
		SavingTarget: 300,
	}}
	handler := NewTransactionHandler(service, respondJSON, respondError)

	req := authenticatedRequest(http.MethodGet, "/api/protected/transactions/dashboard/summary?month=3&year=2024", nil)
	w := httptest.NewRecorder()

	handler.GetDashboardSummary(w, req)

	res := w.Result()
	defer res.Body.Close()
	assert.Equal(t, http.StatusOK, res.StatusCode)

	var response struct {
		Status string                       `json:"status"`
		Data   application.DashboardSummary `json:"data"`
	}
	err := json.NewDecoder(res.Body).Decode(&response)
	assert.NoError(t, err)
	assert.Equal(t, "success", response.Status)
	assert.Equal(t, 1500.0, response.Data.Balance)
	assert.Equal(t, 300.0, response.Data.SavingTarget)
}
