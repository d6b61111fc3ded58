package interfaces

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/finflowhq/finflow/internal/finance/application"
	"github.com/finflowhq/finflow/internal/finance/domain"
	financeErrors "github.com/finflowhq/finflow/internal/finance/errors"
)

type GoalServiceInterface interface {
	CreateGoal(goal *domain.Goal) error
	ListGoals(userID string, filter domain.GoalListFilter) ([]domain.GoalProgress, error)
	GetGoal(userID, goalID string) (*domain.GoalProgress, error)
	UpdateGoal(userID string, goal domain.Goal) error
	DeleteGoal(userID, goalID string) error
	AddSaving(userID, goalID string, saving *domain.GoalSaving) error
	GetSavings(userID, goalID string) ([]domain.GoalSaving, error)
	GetSummary(userID string) (*application.GoalsSummary, error)
}

type GoalHandler struct {
	service      GoalServiceInterface
	respondJSON  func(w http.ResponseWriter, status int, payload interface{})
	respondError func(w http.ResponseWriter, status int, message string)
}

func NewGoalHandler(
	service GoalServiceInterface,
	respondJSON func(w http.ResponseWriter, status int, payload interface{}),
	respondError func(w http.ResponseWriter, status int, message string),
) *GoalHandler {
	return &GoalHandler{
		service:      service,
		respondJSON:  respondJSON,
		respondError: respondError,
	}
}

func (h *GoalHandler) CreateGoal(w http.ResponseWriter, r *http.Request) {
	userID, ok := r.Context().Value("userID").(string)
	if !ok {
		h.respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var goal domain.Goal
	if err := json.NewDecoder(r.Body).Decode(&goal); err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	goal.UserID = userID
	if err := h.service.CreateGoal(&goal); err != nil {
		if financeErrors.IsValidationError(err) {
			h.respondError(w, http.StatusBadRequest, err.Error())
			return
		}
		h.respondError(w, http.StatusInternalServerError, "Failed to create goal")
		return
	}

	h.respondJSON(w, http.StatusCreated, map[string]interface{}{
		"status": "success",
		"data":   goal,
	})
}

func (h *GoalHandler) ListGoals(w http.ResponseWriter, r *http.Request) {
	userID, ok := r.Context().Value("userID").(string)
	if !ok {
		h.respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	query := r.URL.Query()
	filter := domain.GoalListFilter{
		Status:   query.Get("status"),
		Priority: query.Get("priority"),
		SortBy:   query.Get("sortBy"),
	}
	var err error
	if filter.MinAmount, err = parseFloatParam(r, "minAmount"); err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid minAmount value")
		return
	}
	if filter.MaxAmount, err = parseFloatParam(r, "maxAmount"); err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid maxAmount value")
		return
	}

	goals, err := h.service.ListGoals(userID, filter)
	if err != nil {
		h.respondError(w, http.StatusInternalServerError, "Failed to fetch goals")
		return
	}
	if goals == nil {
		goals = []domain.GoalProgress{}
	}

	h.respondJSON(w, http.StatusOK, map[string]interface{}{
		"status": "success",
		"data":   goals,
	})
}

func (h *GoalHandler) GetGoal(w http.ResponseWriter, r *http.Request) {
	userID, ok := r.Context().Value("userID").(string)
	if !ok {
		h.respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	goal, err := h.service.GetGoal(userID, r.PathValue("id"))
	if err != nil {
		if errors.Is(err, financeErrors.ErrGoalNotFound) {
			h.respondError(w, http.StatusNotFound, "Goal not found")
			return
		}
		h.respondError(w, http.StatusInternalServerError, "Failed to fetch goal")
		return
	}

	h.respondJSON(w, http.StatusOK, map[string]interface{}{
		"status": "success",
		"data":   goal,
	})
}

func (h *GoalHandler) UpdateGoal(w http.ResponseWriter, r *http.Request) {
	userID, ok := r.Context().Value("userID").(string)
	if !ok {
		h.respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var goal domain.Goal
	if err := json.NewDecoder(r.Body).Decode(&goal); err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	goal.ID = r.PathValue("id")

	if err := h.service.UpdateGoal(userID, goal); err != nil {
		if errors.Is(err, financeErrors.ErrGoalNotFound) {
			h.respondError(w, http.StatusNotFound, "Goal not found")
			return
		}
		if financeErrors.IsValidationError(err) {
			h.respondError(w, http.StatusBadRequest, err.Error())
			return
		}
		h.respondError(w, http.StatusInternalServerError, "Failed to update goal")
		return
	}

	h.respondJSON(w, http.StatusOK, map[string]interface{}{
		"status": "success",
		"data":   goal,
	})
}

func (h *GoalHandler) DeleteGoal(w http.ResponseWriter, r *http.Request) {
	userID, ok := r.Context().Value("userID").(string)
	if !ok {
		h.respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	if err := h.service.DeleteGoal(userID, r.PathValue("id")); err != nil {
		if errors.Is(err, financeErrors.ErrGoalNotFound) {
			h.respondError(w, http.StatusNotFound, "Goal not found")
			return
		}
		h.respondError(w, http.StatusInternalServerError, "Failed to delete goal")
		return
	}

	h.respondJSON(w, http.StatusOK, map[string]interface{}{
		"status":  "success",
		"message": "Goal deleted",
	})
}

func (h *GoalHandler) AddSaving(w http.ResponseWriter, r *http.Request) {
	userID, ok := r.Context().Value("userID").(string)
	if !ok {
		h.respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var saving domain.GoalSaving
	if err := json.NewDecoder(r.Body).Decode(&saving); err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := h.service.AddSaving(userID, r.PathValue("goalID"), &saving); err != nil {
		if errors.Is(err, financeErrors.ErrGoalNotFound) {
			h.respondError(w, http.StatusNotFound, "Goal not found")
			return
		}
		if financeErrors.IsValidationError(err) {
			h.respondError(w, http.StatusBadRequest, err.Error())
			return
		}
		h.respondError(w, http.StatusInternalServerError, "Failed to add saving")
		return
	}

	h.respondJSON(w, http.StatusCreated, map[string]interface{}{
		"status": "success",
		"data":   saving,
	})
}

func (h *GoalHandler) GetSavings(w http.ResponseWriter, r *http.Request) {
	userID, ok := r.Context().Value("userID").(string)
	if !ok {
		h.respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	savings, err := h.service.GetSavings(userID, r.PathValue("goalID"))
	if err != nil {
		if errors.Is(err, financeErrors.ErrGoalNotFound) {
			h.respondError(w, http.StatusNotFound, "Goal not found")
			return
		}
		h.respondError(w, http.StatusInternalServerError, "Failed to fetch savings")
		return
	}
	if savings == nil {
		savings = []domain.GoalSaving{}
	}

	h.respondJSON(w, http.StatusOK, map[string]interface{}{
		"status": "success",
		"data":   savings,
	})
}

func (h *GoalHandler) GetSummary(w http.ResponseWriter, r *http.Request) {
	userID, ok := r.Context().Value("userID").(string)
	if !ok {
		h.respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	summary, err := h.service.GetSummary(userID)
	if err != nil {
		h.respondError(w, http.StatusInternalServerError, "Failed to compute goals summary")
		return
	}

	h.respondJSON(w, http.StatusOK, map[string]interface{}{
		"status": "success",
		"data":   summary,
	})
}

func parseFloatParam(r *http.Request, name string) (float64, error) {
	value := r.URL.Query().Get(name)
	if value == "" {
		return 0, nil
	}
	return strconv.ParseFloat(value, 64)
}
