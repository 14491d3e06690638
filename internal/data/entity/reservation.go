package entity

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type PaymentStatus string

const (
	PaymentStatusPending   PaymentStatus = "pending"
	PaymentStatusPaid      PaymentStatus = "paid"
	PaymentStatusCancelled PaymentStatus = "cancelled"
)

// Reservation covers one or more seats on a departure. Code is the
// public ticket key and the correlation key for the payment session.
// TotalAmount is fixed at creation; the provider-reported amount
// overwrites it on confirmation.
type Reservation struct {
	BaseSimple
	Code             string          `db:"code"`
	DepartureID      uuid.UUID       `db:"departure_id"`
	CustomerID       uuid.UUID       `db:"customer_id"`
	PaymentStatus    PaymentStatus   `db:"payment_status"`
	TotalAmount      decimal.Decimal `db:"total_amount"`
	PaymentSessionID *string         `db:"payment_session_id"`
}
