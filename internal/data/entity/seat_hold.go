package entity

import (
	"time"

	"github.com/google/uuid"
)

// SeatHold is a short-lived exclusive claim on one seat of a departure,
// taken while a customer fills in passenger data. Holds are never
// mutated; they go inert when expires_at passes and are purged lazily.
type SeatHold struct {
	BaseSimple
	DepartureID uuid.UUID `db:"departure_id"`
	SeatNumber  int       `db:"seat_number"`
	ExpiresAt   time.Time `db:"expires_at"`
}

// Live reports whether the hold still blocks the seat at instant now.
func (h *SeatHold) Live(now time.Time) bool {
	return h.ExpiresAt.After(now)
}
