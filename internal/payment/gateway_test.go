package payment

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"bus-booking/pkg/utils"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

func TestCreateSession(t *testing.T) {
	var gotAuth string
	var gotPayload map[string]any

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/checkout/sessions" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		gotAuth = r.Header.Get("Authorization")
		json.NewDecoder(r.Body).Decode(&gotPayload)

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(map[string]string{
			"id":  "sess_123",
			"url": "https://pay.example/sess_123",
		})
	}))
	defer server.Close()

	client := NewClient(utils.PaymentConfig{
		BaseURL: server.URL,
		APIKey:  "sk_test",
	}, zap.NewNop())

	session, err := client.CreateSession(context.Background(), SessionInput{
		Amount:      decimal.RequireFromString("1000.00"),
		Currency:    "mxn",
		Description: "Bus ticket PT-abc, 2 seat(s)",
		Code:        "PT-abc-def-1770000000",
		SuccessURL:  "https://shop.example/success",
		CancelURL:   "https://shop.example/cancel",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if session.ID != "sess_123" {
		t.Errorf("unexpected session id: %s", session.ID)
	}
	if session.RedirectURL != "https://pay.example/sess_123" {
		t.Errorf("unexpected redirect url: %s", session.RedirectURL)
	}
	if gotAuth != "Bearer sk_test" {
		t.Errorf("unexpected auth header: %s", gotAuth)
	}
	if gotPayload["amount"] != "1000.00" {
		t.Errorf("expected amount 1000.00, got %v", gotPayload["amount"])
	}
	if gotPayload["correlation_code"] != "PT-abc-def-1770000000" {
		t.Errorf("unexpected correlation code: %v", gotPayload["correlation_code"])
	}
}

func TestCreateSession_ProviderRejects(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
	}))
	defer server.Close()

	client := NewClient(utils.PaymentConfig{BaseURL: server.URL, APIKey: "sk_test"}, zap.NewNop())

	_, err := client.CreateSession(context.Background(), SessionInput{
		Amount:   decimal.RequireFromString("100.00"),
		Currency: "mxn",
		Code:     "PT-abc",
	})
	if err == nil {
		t.Fatal("expected error when provider rejects the session")
	}
}

func TestCreateSession_IncompleteResponse(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{"id": "sess_123"})
	}))
	defer server.Close()

	client := NewClient(utils.PaymentConfig{BaseURL: server.URL, APIKey: "sk_test"}, zap.NewNop())

	_, err := client.CreateSession(context.Background(), SessionInput{
		Amount:   decimal.RequireFromString("100.00"),
		Currency: "mxn",
		Code:     "PT-abc",
	})
	if err == nil {
		t.Fatal("expected error for response without redirect url")
	}
}
