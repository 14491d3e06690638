package wire

import (
	"bus-booking/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wirePayment(r chi.Router, paymentHandler *adaptor.PaymentHandler) {
	// POST /api/payments/webhook - Signed provider notification
	r.Post("/api/payments/webhook", paymentHandler.Webhook)
}
