// Sentinel and typed errors shared by the repositories and the services
// on top of them. Handlers translate these into structured responses;
// anything else is a server failure.
package repository

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
)

// ErrNotFound is returned when a referenced row does not exist.
var ErrNotFound = errors.New("not found")

// ErrDuplicateSeatHold marks a unique violation on
// seat_holds(departure_id, seat_number). The hold service turns it into
// a SeatConflictError.
var ErrDuplicateSeatHold = errors.New("duplicate seat hold")

type SeatConflictKind string

const (
	// seat already belongs to a confirmed assignment, hold flow
	SeatConflictBooked SeatConflictKind = "seat_already_booked"
	// seat has a live hold from someone else
	SeatConflictHeld SeatConflictKind = "seat_already_held"
	// seat got booked between hold and reservation
	SeatConflictUnavailable SeatConflictKind = "seats_unavailable"
)

// SeatConflictError reports which seats blocked an operation. Expected
// during normal operation, recovered into a 409 and never logged as a
// failure.
type SeatConflictError struct {
	Kind  SeatConflictKind
	Seats []int
}

func (e *SeatConflictError) Error() string {
	return fmt.Sprintf("%s: seats %v", e.Kind, e.Seats)
}

// AsSeatConflict unwraps err into a SeatConflictError if it is one.
func AsSeatConflict(err error) (*SeatConflictError, bool) {
	var conflict *SeatConflictError
	if errors.As(err, &conflict) {
		return conflict, true
	}
	return nil, false
}

// isUniqueViolation reports whether err is a Postgres 23505.
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
