package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"bus-booking/internal/data/entity"
	"bus-booking/pkg/database"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type SeatHoldRepository interface {
	// CreateBatch inserts all holds or none. The unique constraint on
	// (departure_id, seat_number) is the real guard against two
	// customers holding the same seat; a violation comes back as
	// IsDuplicateHold(err) == true.
	CreateBatch(ctx context.Context, holds []*entity.SeatHold) error

	// FindLiveSeats returns seat numbers with a hold that has not
	// expired at instant now.
	FindLiveSeats(ctx context.Context, departureID uuid.UUID, now time.Time) ([]int, error)

	// PurgeExpired deletes inert holds for a departure. Lazy hygiene,
	// run inside the hold transaction so a freed seat can be re-held
	// without waiting for a sweeper.
	PurgeExpired(ctx context.Context, departureID uuid.UUID, now time.Time) error
}

type seatHoldRepository struct {
	db  database.Querier
	log *zap.Logger
}

func NewSeatHoldRepository(db database.Querier, log *zap.Logger) SeatHoldRepository {
	return &seatHoldRepository{
		db:  db,
		log: log.With(zap.String("repository", "seat_hold")),
	}
}

func (r *seatHoldRepository) CreateBatch(ctx context.Context, holds []*entity.SeatHold) error {
	if len(holds) == 0 {
		return nil
	}

	query := `
		INSERT INTO seat_holds (id, departure_id, seat_number, expires_at, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`

	q := database.QuerierFrom(ctx, r.db)
	for _, hold := range holds {
		_, err := q.Exec(ctx, query,
			hold.ID,
			hold.DepartureID,
			hold.SeatNumber,
			hold.ExpiresAt,
			hold.CreatedAt,
		)
		if err != nil {
			if isUniqueViolation(err) {
				return fmt.Errorf("seat %d on departure %s: %w",
					hold.SeatNumber, hold.DepartureID.String(), ErrDuplicateSeatHold)
			}
			r.log.Error("Failed to create seat hold",
				zap.Error(err),
				zap.String("departure_id", hold.DepartureID.String()),
				zap.Int("seat_number", hold.SeatNumber),
			)
			return fmt.Errorf("create seat hold for departure %s seat %d: %w",
				hold.DepartureID.String(), hold.SeatNumber, err)
		}
	}

	return nil
}

func (r *seatHoldRepository) FindLiveSeats(ctx context.Context, departureID uuid.UUID, now time.Time) ([]int, error) {
	query := `
		SELECT seat_number
		FROM seat_holds
		WHERE departure_id = $1 AND expires_at > $2
	`

	rows, err := database.QuerierFrom(ctx, r.db).Query(ctx, query, departureID, now)
	if err != nil {
		r.log.Error("Failed to find live seat holds",
			zap.Error(err),
			zap.String("departure_id", departureID.String()),
		)
		return nil, fmt.Errorf("find live seat holds for departure %s: %w", departureID.String(), err)
	}
	defer rows.Close()

	var seats []int
	for rows.Next() {
		var seat int
		if err := rows.Scan(&seat); err != nil {
			r.log.Error("Failed to scan seat hold row", zap.Error(err))
			return nil, fmt.Errorf("scan seat hold row: %w", err)
		}
		seats = append(seats, seat)
	}

	return seats, nil
}

func (r *seatHoldRepository) PurgeExpired(ctx context.Context, departureID uuid.UUID, now time.Time) error {
	query := `DELETE FROM seat_holds WHERE departure_id = $1 AND expires_at <= $2`

	_, err := database.QuerierFrom(ctx, r.db).Exec(ctx, query, departureID, now)
	if err != nil {
		r.log.Error("Failed to purge expired seat holds",
			zap.Error(err),
			zap.String("departure_id", departureID.String()),
		)
		return fmt.Errorf("purge expired seat holds for departure %s: %w", departureID.String(), err)
	}

	return nil
}

// IsDuplicateHold reports whether err came from the seat_holds unique
// constraint.
func IsDuplicateHold(err error) bool {
	return errors.Is(err, ErrDuplicateSeatHold)
}
