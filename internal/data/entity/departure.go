package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Departure is one scheduled run of a route. Price is the fare per seat
// at booking time; reservations snapshot it, so later price changes do
// not touch existing bookings.
type Departure struct {
	Base
	RouteID   uuid.UUID       `db:"route_id"`
	DepartsAt time.Time       `db:"departs_at"`
	Price     decimal.Decimal `db:"price"`
	Capacity  int             `db:"capacity"`
}
