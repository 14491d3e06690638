package wire

import (
	"bus-booking/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireBooking(r chi.Router, seatHandler *adaptor.SeatHandler, reservationHandler *adaptor.ReservationHandler) {
	// GET /api/seats?departure_id= - Seat map with occupied seats
	r.Get("/api/seats", seatHandler.GetSeatMap)

	// POST /api/holds - Hold seats for one checkout window
	r.Post("/api/holds", seatHandler.PlaceHold)

	// POST /api/reservations - Create reservation and open payment session
	r.Post("/api/reservations", reservationHandler.CreateReservation)

	// GET /api/reservations/status?session_id= - Post-checkout status poll
	r.Get("/api/reservations/status", reservationHandler.GetStatus)

	// GET /api/tickets/{code} - Public ticket lookup
	r.Get("/api/tickets/{code}", reservationHandler.GetTicket)
}
