// Package payment wraps the external checkout provider. The core only
// sees the Gateway interface: create a session before commit, verify and
// decode the completion notification on the webhook.
package payment

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"bus-booking/pkg/utils"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// Session is the provider-side checkout session for one reservation.
type Session struct {
	ID          string `json:"id"`
	RedirectURL string `json:"url"`
}

// SessionInput carries everything the provider needs to collect the
// payment. Code is the reservation code, echoed back on completion.
type SessionInput struct {
	Amount      decimal.Decimal
	Currency    string
	Description string
	Code        string
	SuccessURL  string
	CancelURL   string
}

// Notification is the decoded payment-completed event.
type Notification struct {
	Code       string          `json:"correlation_code"`
	AmountPaid decimal.Decimal `json:"amount_paid"`
}

type Gateway interface {
	CreateSession(ctx context.Context, in SessionInput) (*Session, error)
}

type Client struct {
	http *http.Client
	cfg  utils.PaymentConfig
	log  *zap.Logger
}

func NewClient(cfg utils.PaymentConfig, log *zap.Logger) *Client {
	return &Client{
		http: &http.Client{Timeout: 10 * time.Second},
		cfg:  cfg,
		log:  log.With(zap.String("client", "payment")),
	}
}

func (c *Client) CreateSession(ctx context.Context, in SessionInput) (*Session, error) {
	payload := map[string]any{
		"amount":           in.Amount.StringFixed(2),
		"currency":         in.Currency,
		"description":      in.Description,
		"correlation_code": in.Code,
		"success_url":      in.SuccessURL,
		"cancel_url":       in.CancelURL,
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("marshal session payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.cfg.BaseURL+"/v1/checkout/sessions", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("build session request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.cfg.APIKey)

	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Error("Payment session request failed",
			zap.Error(err),
			zap.String("code", in.Code),
		)
		return nil, fmt.Errorf("create payment session for %s: %w", in.Code, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		c.log.Error("Payment provider rejected session",
			zap.Int("status", resp.StatusCode),
			zap.String("code", in.Code),
			zap.ByteString("body", raw),
		)
		return nil, fmt.Errorf("create payment session for %s: provider status %d", in.Code, resp.StatusCode)
	}

	var session Session
	if err := json.NewDecoder(resp.Body).Decode(&session); err != nil {
		return nil, fmt.Errorf("decode payment session for %s: %w", in.Code, err)
	}
	if session.ID == "" || session.RedirectURL == "" {
		return nil, fmt.Errorf("create payment session for %s: incomplete provider response", in.Code)
	}

	c.log.Info("Payment session created",
		zap.String("code", in.Code),
		zap.String("session_id", session.ID),
	)

	return &session, nil
}
