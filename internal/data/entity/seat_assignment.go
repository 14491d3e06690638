package entity

import "github.com/google/uuid"

// SeatAssignment binds one passenger to one seat within a reservation.
// Created atomically with its reservation, immutable afterward.
type SeatAssignment struct {
	BaseSimple
	ReservationID  uuid.UUID `db:"reservation_id"`
	SeatNumber     int       `db:"seat_number"`
	PassengerName  string    `db:"passenger_name"`
	PassengerPhone *string   `db:"passenger_phone"`
}
