package response

import (
	"time"

	"bus-booking/internal/data/entity"

	"github.com/shopspring/decimal"
)

// SeatMapResponse is the availability view of one departure: a seat is
// occupied when it is confirmed-booked or under a live hold.
type SeatMapResponse struct {
	Capacity      int   `json:"capacity"`
	OccupiedSeats []int `json:"occupied_seats"`
}

type HoldResponse struct {
	DepartureID string    `json:"departure_id"`
	Seats       []int     `json:"seats"`
	ExpiresAt   time.Time `json:"expires_at"`
}

type ReservationResponse struct {
	ReservationID    string          `json:"reservation_id"`
	Code             string          `json:"code"`
	TotalAmount      decimal.Decimal `json:"total_amount"`
	PaymentSessionID string          `json:"payment_session_id"`
	RedirectURL      string          `json:"redirect_url"`
}

type ReservationStatusResponse struct {
	Code          string               `json:"code"`
	PaymentStatus entity.PaymentStatus `json:"payment_status"`
}

type TicketPassenger struct {
	Seat int    `json:"seat"`
	Name string `json:"name"`
}

// TicketResponse backs the ticket lookup by reservation code, the data
// a boarding agent needs to validate a purchase.
type TicketResponse struct {
	Code          string               `json:"code"`
	Origin        string               `json:"origin"`
	Destination   string               `json:"destination"`
	DepartsAt     time.Time            `json:"departs_at"`
	PaymentStatus entity.PaymentStatus `json:"payment_status"`
	TotalAmount   decimal.Decimal      `json:"total_amount"`
	Passengers    []TicketPassenger    `json:"passengers"`
}
