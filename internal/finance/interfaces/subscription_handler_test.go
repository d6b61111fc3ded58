package interfaces

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/finflowhq/finflow/internal/finance/domain"
)

func storedSub(id string) domain.Subscription {
	return domain.Subscription{
		ID:          id,
		UserID:      "user-1",
		Name:        "Netflix",
		Amount:      15.99,
		BillingDate: time.Date(2024, time.April, 10, 0, 0, 0, 0, time.UTC),
		Frequency:   domain.FrequencyMonthly,
		Status:      domain.SubscriptionActive,
	}
}

func TestCreateSubscription(t *testing.T) {
	service := &MockSubscriptionService{}
	handler := NewSubscriptionHandler(service, respondJSON, respondError)

	body, _ := json.Marshal(domain.Subscription{
		Name:        "Spotify",
		Amount:      10.99,
		BillingDate: time.Date(2024, time.April, 1, 0, 0, 0, 0, time.UTC),
	})
	req := authenticatedRequest(http.MethodPost, "/api/protected/subscriptions", body)
	w := httptest.NewRecorder()

	handler.CreateSubscription(w, req)

	assert.Equal(t, http.StatusCreated, w.Result().StatusCode)
	assert.Len(t, service.Created, 1)
	assert.Equal(t, "user-1", service.Created[0].UserID)
	assert.Equal(t, domain.FrequencyMonthly, service.Created[0].Frequency)
}

func TestCreateSubscription_ValidationError(t *testing.T) {
	service := &MockSubscriptionService{}
	handler := NewSubscriptionHandler(service, respondJSON, respondError)

	body, _ := json.Marshal(domain.Subscription{Name: "Spotify", Amount: 0})
	req := authenticatedRequest(http.MethodPost, "/api/protected/subscriptions", body)
	w := httptest.NewRecorder()

	handler.CreateSubscription(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Result().StatusCode)
	assert.Empty(t, service.Created)
}

func TestListSubscriptions_EmptyListIsJSONArray(t *testing.T) {
	service := &MockSubscriptionService{}
	handler := NewSubscriptionHandler(service, respondJSON, respondError)

	req := authenticatedRequest(http.MethodGet, "/api/protected/subscriptions", nil)
	w := httptest.NewRecorder()

	handler.ListSubscriptions(w, req)

	assert.Equal(t, http.StatusOK, w.Result().StatusCode)
	assert.Contains(t, w.Body.String(), `"data":[]`)
}

func TestGetSubscription_NotFound(t *testing.T) {
	service := &MockSubscriptionService{}
	handler := NewSubscriptionHandler(service, respondJSON, respondError)

	req := authenticatedRequest(http.MethodGet, "/api/protected/subscriptions/missing", nil)
	req.SetPathValue("id", "missing")
	w := httptest.NewRecorder()

	handler.GetSubscription(w, req)

	res := w.Result()
	defer res.Body.Close()
	assert.Equal(t, http.StatusNotFound, res.StatusCode)

	var response map[string]interface{}
	err := json.NewDecoder(res.Body).Decode(&response)
	assert.NoError(t, err)
	assert.Equal(t, "Subscription not found", response["message"])
}

func TestUpdateSubscription(t *testing.T) {
	service := &MockSubscriptionService{Subscriptions: []domain.Subscription{storedSub("sub-1")}}
	handler := NewSubscriptionHandler(service, respondJSON, respondError)

	update := storedSub("sub-1")
	update.Status = domain.SubscriptionCancelled
	body, _ := json.Marshal(update)
	req := authenticatedRequest(http.MethodPut, "/api/protected/subscriptions/sub-1", body)
	req.SetPathValue("id", "sub-1")
	w := httptest.NewRecorder()

	handler.UpdateSubscription(w, req)

	assert.Equal(t, http.StatusOK, w.Result().StatusCode)
	assert.Equal(t, domain.SubscriptionCancelled, service.Subscriptions[0].Status)
}

func TestDeleteSubscription_NoContent(t *testing.T) {
	service := &MockSubscriptionService{Subscriptions: []domain.Subscription{storedSub("sub-1")}}
	handler := NewSubscriptionHandler(service, respondJSON, respondError)

	req := authenticatedRequest(http.MethodDelete, "/api/protected/subscriptions/sub-1", nil)
	req.SetPathValue("id", "sub-1")
	w := httptest.NewRecorder()

	handler.DeleteSubscription(w, req)

	res := w.Result()
	defer res.Body.Close()
	assert.Equal(t, http.StatusNoContent, res.StatusCode)
	assert.Empty(t, w.Body.String())
	assert.Equal(t, []string{"sub-1"}, service.Deleted)
}

func TestDeleteSubscription_NotFound(t *testing.T) {
	service := &MockSubscriptionService{}
	handler := NewSubscriptionHandler(service, respondJSON, respondError)

	req := authenticatedRequest(http.MethodDelete, "/api/protected/subscriptions/missing", nil)
	req.SetPathValue("id", "missing")
	w := httptest.NewRecorder()

	handler.DeleteSubscription(w, req)

	assert.Equal(t, http.StatusNotFound, w.Result().StatusCode)
}
