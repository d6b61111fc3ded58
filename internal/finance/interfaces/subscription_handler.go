package interfaces

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/finflowhq/finflow/internal/finance/domain"
	financeErrors "github.com/finflowhq/finflow/internal/finance/errors"
)

type SubscriptionServiceInterface interface {
	CreateSubscription(subscription *domain.Subscription) error
	ListSubscriptions(userID string) ([]domain.Subscription, error)
	GetSubscription(userID, subscriptionID string) (*domain.Subscription, error)
	UpdateSubscription(userID string, subscription domain.Subscription) error
	DeleteSubscription(userID, subscriptionID string) error
}

type SubscriptionHandler struct {
	service      SubscriptionServiceInterface
	respondJSON  func(w http.ResponseWriter, status int, payload interface{})
	respondError func(w http.ResponseWriter, status int, message string)
}

func NewSubscriptionHandler(
	service SubscriptionServiceInterface,
	respondJSON func(w http.ResponseWriter, status int, payload interface{}),
	respondError func(w http.ResponseWriter, status int, message string),
) *SubscriptionHandler {
	return &SubscriptionHandler{
		service:      service,
		respondJSON:  respondJSON,
		respondError: respondError,
	}
}

func (h *SubscriptionHandler) CreateSubscription(w http.ResponseWriter, r *http.Request) {
	userID, ok := r.Context().Value("userID").(string)
	if !ok {
		h.respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var subscription domain.Subscription
	if err := json.NewDecoder(r.Body).Decode(&subscription); err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	subscription.UserID = userID
	if err := h.service.CreateSubscription(&subscription); err != nil {
		if financeErrors.IsValidationError(err) {
			h.respondError(w, http.StatusBadRequest, err.Error())
			return
		}
		h.respondError(w, http.StatusInternalServerError, "Failed to create subscription")
		return
	}

	h.respondJSON(w, http.StatusCreated, map[string]interface{}{
		"status": "success",
		"data":   subscription,
	})
}

func (h *SubscriptionHandler) ListSubscriptions(w http.ResponseWriter, r *http.Request) {
	userID, ok := r.Context().Value("userID").(string)
	if !ok {
		h.respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	subscriptions, err := h.service.ListSubscriptions(userID)
	if err != nil {
		h.respondError(w, http.StatusInternalServerError, "Failed to fetch subscriptions")
		return
	}
	if subscriptions == nil {
		subscriptions = []domain.Subscription{}
	}

	h.respondJSON(w, http.StatusOK, map[string]interface{}{
		"status": "success",
		"data":   subscriptions,
	})
}

func (h *SubscriptionHandler) GetSubscription(w http.ResponseWriter, r *http.Request) {
	userID, ok := r.Context().Value("userID").(string)
	if !ok {
		h.respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	subscription, err := h.service.GetSubscription(userID, r.PathValue("id"))
	if err != nil {
		if errors.Is(err, financeErrors.ErrSubscriptionNotFound) {
			h.respondError(w, http.StatusNotFound, "Subscription not found")
			return
		}
		h.respondError(w, http.StatusInternalServerError, "Failed to fetch subscription")
		return
	}

	h.respondJSON(w, http.StatusOK, map[string]interface{}{
		"status": "success",
		"data":   subscription,
	})
}

func (h *SubscriptionHandler) UpdateSubscription(w http.ResponseWriter, r *http.Request) {
	userID, ok := r.Context().Value("userID").(string)
	if !ok {
		h.respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var subscription domain.Subscription
	if err := json.NewDecoder(r.Body).Decode(&subscription); err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	subscription.ID = r.PathValue("id")

	if err := h.service.UpdateSubscription(userID, subscription); err != nil {
		if errors.Is(err, financeErrors.ErrSubscriptionNotFound) {
			h.respondError(w, http.StatusNotFound, "Subscription not found")
			return
		}
		if financeErrors.IsValidationError(err) {
			h.respondError(w, http.StatusBadRequest, err.Error())
			return
		}
		h.respondError(w, http.StatusInternalServerError, "Failed to update subscription")
		return
	}

	h.respondJSON(w, http.StatusOK, map[string]interface{}{
		"status": "success",
		"data":   subscription,
	})
}

// DeleteSubscription replies 204 with an empty body, unlike the other
// delete endpoints which return a confirmation payload.
func (h *SubscriptionHandler) DeleteSubscription(w http.ResponseWriter, r *http.Request) {
	userID, ok := r.Context().Value("userID").(string)
	if !ok {
		h.respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	if err := h.service.DeleteSubscription(userID, r.PathValue("id")); err != nil {
		if errors.Is(err, financeErrors.ErrSubscriptionNotFound) {
			h.respondError(w, http.StatusNotFound, "Subscription not found")
			return
		}
		h.respondError(w, http.StatusInternalServerError, "Failed to delete subscription")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
