package repository

import (
	"context"

	"bus-booking/pkg/database"

	"go.uber.org/zap"
)

type Repository struct {
	Route          RouteRepository
	Departure      DepartureRepository
	Customer       CustomerRepository
	Reservation    ReservationRepository
	SeatAssignment SeatAssignmentRepository
	SeatHold       SeatHoldRepository

	db database.PgxIface
}

func NewRepository(db database.PgxIface, log *zap.Logger) *Repository {
	return &Repository{
		Route:          NewRouteRepository(db, log),
		Departure:      NewDepartureRepository(db, log),
		Customer:       NewCustomerRepository(db, log),
		Reservation:    NewReservationRepository(db, log),
		SeatAssignment: NewSeatAssignmentRepository(db, log),
		SeatHold:       NewSeatHoldRepository(db, log),
		db:             db,
	}
}

// WithTx runs fn in one transaction. Repository methods called with the
// ctx passed to fn execute on that transaction, so either every write in
// fn lands or none do.
func (r *Repository) WithTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return database.WithTx(ctx, r.db, fn)
}
