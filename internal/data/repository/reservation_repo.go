package repository

import (
	"context"
	"fmt"

	"bus-booking/internal/data/entity"
	"bus-booking/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

type ReservationRepository interface {
	Create(ctx context.Context, reservation *entity.Reservation) error
	FindByCode(ctx context.Context, code string) (*entity.Reservation, error)
	FindBySessionID(ctx context.Context, sessionID string) (*entity.Reservation, error)
	UpdatePaymentSession(ctx context.Context, id uuid.UUID, sessionID string) error
	// MarkPaid flips a pending reservation to paid and records the
	// amount the provider reported. Returns false when the row was not
	// pending anymore, which makes redelivered confirmations no-ops.
	MarkPaid(ctx context.Context, id uuid.UUID, amountPaid decimal.Decimal) (bool, error)
}

type reservationRepository struct {
	db  database.Querier
	log *zap.Logger
}

func NewReservationRepository(db database.Querier, log *zap.Logger) ReservationRepository {
	return &reservationRepository{
		db:  db,
		log: log.With(zap.String("repository", "reservation")),
	}
}

const reservationColumns = `id, code, departure_id, customer_id, payment_status, total_amount, payment_session_id, created_at`

func (r *reservationRepository) Create(ctx context.Context, reservation *entity.Reservation) error {
	query := `
		INSERT INTO reservations (` + reservationColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`

	_, err := database.QuerierFrom(ctx, r.db).Exec(ctx, query,
		reservation.ID,
		reservation.Code,
		reservation.DepartureID,
		reservation.CustomerID,
		reservation.PaymentStatus,
		reservation.TotalAmount,
		reservation.PaymentSessionID,
		reservation.CreatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create reservation",
			zap.Error(err),
			zap.String("code", reservation.Code),
			zap.String("departure_id", reservation.DepartureID.String()),
		)
		return fmt.Errorf("create reservation %s: %w", reservation.Code, err)
	}

	return nil
}

func (r *reservationRepository) FindByCode(ctx context.Context, code string) (*entity.Reservation, error) {
	query := `
		SELECT ` + reservationColumns + `
		FROM reservations
		WHERE code = $1
	`

	return r.scanOne(ctx, query, code)
}

func (r *reservationRepository) FindBySessionID(ctx context.Context, sessionID string) (*entity.Reservation, error) {
	query := `
		SELECT ` + reservationColumns + `
		FROM reservations
		WHERE payment_session_id = $1
	`

	return r.scanOne(ctx, query, sessionID)
}

func (r *reservationRepository) scanOne(ctx context.Context, query string, arg any) (*entity.Reservation, error) {
	var reservation entity.Reservation
	err := database.QuerierFrom(ctx, r.db).QueryRow(ctx, query, arg).Scan(
		&reservation.ID,
		&reservation.Code,
		&reservation.DepartureID,
		&reservation.CustomerID,
		&reservation.PaymentStatus,
		&reservation.TotalAmount,
		&reservation.PaymentSessionID,
		&reservation.CreatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find reservation", zap.Error(err))
		return nil, fmt.Errorf("find reservation: %w", err)
	}

	return &reservation, nil
}

func (r *reservationRepository) UpdatePaymentSession(ctx context.Context, id uuid.UUID, sessionID string) error {
	query := `UPDATE reservations SET payment_session_id = $2 WHERE id = $1`

	result, err := database.QuerierFrom(ctx, r.db).Exec(ctx, query, id, sessionID)
	if err != nil {
		r.log.Error("Failed to update payment session",
			zap.Error(err),
			zap.String("reservation_id", id.String()),
		)
		return fmt.Errorf("update payment session for reservation %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("reservation %s: %w", id.String(), ErrNotFound)
	}

	return nil
}

func (r *reservationRepository) MarkPaid(ctx context.Context, id uuid.UUID, amountPaid decimal.Decimal) (bool, error) {
	// The payment_status guard makes this a compare-and-set: a second
	// delivery of the same confirmation matches zero rows.
	query := `
		UPDATE reservations
		SET payment_status = $2, total_amount = $3
		WHERE id = $1 AND payment_status = $4
	`

	result, err := database.QuerierFrom(ctx, r.db).Exec(ctx, query,
		id,
		entity.PaymentStatusPaid,
		amountPaid,
		entity.PaymentStatusPending,
	)

	if err != nil {
		r.log.Error("Failed to mark reservation paid",
			zap.Error(err),
			zap.String("reservation_id", id.String()),
		)
		return false, fmt.Errorf("mark reservation %s paid: %w", id.String(), err)
	}

	return result.RowsAffected() > 0, nil
}
