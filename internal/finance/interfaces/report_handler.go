package interfaces

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/finflowhq/finflow/internal/finance/application"
	"github.com/finflowhq/finflow/internal/finance/domain"
	financeErrors "github.com/finflowhq/finflow/internal/finance/errors"
)

type ReportServiceInterface interface {
	GenerateMonthlyReport(ctx context.Context, userID string, month, year int) (*application.MonthlyReport, []domain.Transaction, error)
}

type ReportHandler struct {
	service      ReportServiceInterface
	respondJSON  func(w http.ResponseWriter, status int, payload interface{})
	respondError func(w http.ResponseWriter, status int, message string)
}

func NewReportHandler(
	service ReportServiceInterface,
	respondJSON func(w http.ResponseWriter, status int, payload interface{}),
	respondError func(w http.ResponseWriter, status int, message string),
) *ReportHandler {
	return &ReportHandler{
		service:      service,
		respondJSON:  respondJSON,
		respondError: respondError,
	}
}

func (h *ReportHandler) GenerateMonthlyReport(w http.ResponseWriter, r *http.Request) {
	userID, ok := r.Context().Value("userID").(string)
	if !ok {
		h.respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var req struct {
		Month int `json:"month"`
		Year  int `json:"year"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Month == 0 || req.Year == 0 {
		h.respondError(w, http.StatusBadRequest, "Month and year are required.")
		return
	}

	report, transactions, err := h.service.GenerateMonthlyReport(r.Context(), userID, req.Month, req.Year)
	if err != nil {
		if errors.Is(err, financeErrors.ErrNoTransactions) {
			h.respondError(w, http.StatusNotFound, "No transactions for this month.")
			return
		}
		if financeErrors.IsValidationError(err) {
			h.respondError(w, http.StatusBadRequest, err.Error())
			return
		}
		log.Println("Report error:", err.Error())
		h.respondError(w, http.StatusInternalServerError, "Failed to generate report")
		return
	}

	h.respondJSON(w, http.StatusOK, map[string]interface{}{
		"status": "success",
		"data": map[string]interface{}{
			"report":       report,
			"transactions": transactions,
		},
	})
}
