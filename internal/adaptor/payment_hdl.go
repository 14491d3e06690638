package adaptor

import (
	"errors"
	"io"
	"net/http"

	"bus-booking/internal/payment"
	"bus-booking/internal/usecase"
	"bus-booking/pkg/utils"

	"go.uber.org/zap"
)

type PaymentHandler struct {
	service       usecase.PaymentService
	webhookSecret string
	log           *zap.Logger
}

func NewPaymentHandler(service usecase.PaymentService, config *utils.Config, log *zap.Logger) *PaymentHandler {
	return &PaymentHandler{
		service:       service,
		webhookSecret: config.Payment.WebhookSecret,
		log:           log.With(zap.String("handler", "payment")),
	}
}

// Webhook handles POST /api/payments/webhook. The provider retries
// until it sees 200, so every verified notification is acknowledged
// even when it changes nothing.
func (h *PaymentHandler) Webhook(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(io.LimitReader(r.Body, 1<<20))
	if err != nil {
		utils.ResponseBadRequest(w, "Failed to read request body", nil)
		return
	}

	notification, err := payment.VerifyNotification(body, r.Header.Get("X-Signature"), h.webhookSecret)
	if err != nil {
		if errors.Is(err, payment.ErrBadSignature) {
			h.log.Warn("Webhook rejected - bad signature")
			utils.ResponseJSON(w, http.StatusUnauthorized, false, "Invalid signature", nil, nil)
			return
		}
		h.log.Warn("Webhook rejected - malformed payload", zap.Error(err))
		utils.ResponseBadRequest(w, "Malformed notification", nil)
		return
	}

	if err := h.service.ConfirmPayment(r.Context(), notification.Code, notification.AmountPaid); err != nil {
		handleServiceError(w, h.log, err, "confirm payment")
		return
	}

	utils.ResponseSuccess(w, "success", nil)
}
