package repository

import (
	"context"
	"fmt"

	"bus-booking/internal/data/entity"
	"bus-booking/pkg/database"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type SeatAssignmentRepository interface {
	CreateBatch(ctx context.Context, assignments []*entity.SeatAssignment) error
	FindByReservationID(ctx context.Context, reservationID uuid.UUID) ([]*entity.SeatAssignment, error)

	// FindBookedSeats returns the seat numbers confirmed for a departure
	// across all non-cancelled reservations.
	FindBookedSeats(ctx context.Context, departureID uuid.UUID) ([]int, error)
}

type seatAssignmentRepository struct {
	db  database.Querier
	log *zap.Logger
}

func NewSeatAssignmentRepository(db database.Querier, log *zap.Logger) SeatAssignmentRepository {
	return &seatAssignmentRepository{
		db:  db,
		log: log.With(zap.String("repository", "seat_assignment")),
	}
}

func (r *seatAssignmentRepository) CreateBatch(ctx context.Context, assignments []*entity.SeatAssignment) error {
	if len(assignments) == 0 {
		return nil
	}

	query := `
		INSERT INTO seat_assignments (id, reservation_id, seat_number, passenger_name, passenger_phone, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	q := database.QuerierFrom(ctx, r.db)
	for _, assignment := range assignments {
		_, err := q.Exec(ctx, query,
			assignment.ID,
			assignment.ReservationID,
			assignment.SeatNumber,
			assignment.PassengerName,
			assignment.PassengerPhone,
			assignment.CreatedAt,
		)
		if err != nil {
			r.log.Error("Failed to create seat assignment",
				zap.Error(err),
				zap.String("reservation_id", assignment.ReservationID.String()),
				zap.Int("seat_number", assignment.SeatNumber),
			)
			return fmt.Errorf("create seat assignment for reservation %s seat %d: %w",
				assignment.ReservationID.String(), assignment.SeatNumber, err)
		}
	}

	return nil
}

func (r *seatAssignmentRepository) FindByReservationID(ctx context.Context, reservationID uuid.UUID) ([]*entity.SeatAssignment, error) {
	query := `
		SELECT id, reservation_id, seat_number, passenger_name, passenger_phone, created_at
		FROM seat_assignments
		WHERE reservation_id = $1
		ORDER BY seat_number
	`

	rows, err := database.QuerierFrom(ctx, r.db).Query(ctx, query, reservationID)
	if err != nil {
		r.log.Error("Failed to find seat assignments by reservation ID",
			zap.Error(err),
			zap.String("reservation_id", reservationID.String()),
		)
		return nil, fmt.Errorf("find seat assignments by reservation ID %s: %w", reservationID.String(), err)
	}
	defer rows.Close()

	var assignments []*entity.SeatAssignment
	for rows.Next() {
		var assignment entity.SeatAssignment
		err := rows.Scan(
			&assignment.ID,
			&assignment.ReservationID,
			&assignment.SeatNumber,
			&assignment.PassengerName,
			&assignment.PassengerPhone,
			&assignment.CreatedAt,
		)
		if err != nil {
			r.log.Error("Failed to scan seat assignment row", zap.Error(err))
			return nil, fmt.Errorf("scan seat assignment row: %w", err)
		}
		assignments = append(assignments, &assignment)
	}

	return assignments, nil
}

func (r *seatAssignmentRepository) FindBookedSeats(ctx context.Context, departureID uuid.UUID) ([]int, error) {
	query := `
		SELECT DISTINCT sa.seat_number
		FROM seat_assignments sa
		INNER JOIN reservations res ON sa.reservation_id = res.id
		WHERE res.departure_id = $1 AND res.payment_status != $2
	`

	rows, err := database.QuerierFrom(ctx, r.db).Query(ctx, query, departureID, entity.PaymentStatusCancelled)
	if err != nil {
		r.log.Error("Failed to find booked seats by departure",
			zap.Error(err),
			zap.String("departure_id", departureID.String()),
		)
		return nil, fmt.Errorf("find booked seats for departure %s: %w", departureID.String(), err)
	}
	defer rows.Close()

	var seats []int
	for rows.Next() {
		var seat int
		if err := rows.Scan(&seat); err != nil {
			r.log.Error("Failed to scan seat number row", zap.Error(err))
			return nil, fmt.Errorf("scan seat number row: %w", err)
		}
		seats = append(seats, seat)
	}

	return seats, nil
}
