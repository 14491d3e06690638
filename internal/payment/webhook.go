package payment

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
)

// ErrBadSignature marks an unverifiable completion notification. The
// webhook handler answers 401 and never touches the reservation.
var ErrBadSignature = errors.New("invalid webhook signature")

// VerifyNotification checks the provider signature (hex HMAC-SHA256 of
// the raw body) and decodes the event. Verification happens before any
// parsing of attacker-controlled content.
func VerifyNotification(body []byte, signature, secret string) (*Notification, error) {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(body)
	expected := hex.EncodeToString(mac.Sum(nil))

	if !hmac.Equal([]byte(expected), []byte(signature)) {
		return nil, ErrBadSignature
	}

	var event Notification
	if err := json.Unmarshal(body, &event); err != nil {
		return nil, fmt.Errorf("decode payment notification: %w", err)
	}
	if event.Code == "" {
		return nil, fmt.Errorf("payment notification missing correlation code")
	}

	return &event, nil
}
