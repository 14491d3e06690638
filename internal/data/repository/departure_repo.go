package repository

import (
	"context"
	"fmt"
	"time"

	"bus-booking/internal/data/entity"
	"bus-booking/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type DepartureRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Departure, error)
	// FindByIDForUpdate locks the departure row for the rest of the
	// transaction, serializing reservation creation per departure.
	FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*entity.Departure, error)
	FindByRouteAndWindow(ctx context.Context, routeID uuid.UUID, from, to time.Time) ([]*entity.Departure, error)
}

type departureRepository struct {
	db  database.Querier
	log *zap.Logger
}

func NewDepartureRepository(db database.Querier, log *zap.Logger) DepartureRepository {
	return &departureRepository{
		db:  db,
		log: log.With(zap.String("repository", "departure")),
	}
}

const departureColumns = `id, route_id, departs_at, price, capacity, created_at, updated_at`

func (r *departureRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Departure, error) {
	query := `
		SELECT ` + departureColumns + `
		FROM departures
		WHERE id = $1
	`

	return r.scanOne(ctx, query, id)
}

func (r *departureRepository) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*entity.Departure, error) {
	query := `
		SELECT ` + departureColumns + `
		FROM departures
		WHERE id = $1
		FOR UPDATE
	`

	return r.scanOne(ctx, query, id)
}

func (r *departureRepository) scanOne(ctx context.Context, query string, id uuid.UUID) (*entity.Departure, error) {
	var departure entity.Departure
	err := database.QuerierFrom(ctx, r.db).QueryRow(ctx, query, id).Scan(
		&departure.ID,
		&departure.RouteID,
		&departure.DepartsAt,
		&departure.Price,
		&departure.Capacity,
		&departure.CreatedAt,
		&departure.UpdatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find departure by ID",
			zap.Error(err),
			zap.String("departure_id", id.String()),
		)
		return nil, fmt.Errorf("find departure by ID %s: %w", id.String(), err)
	}

	return &departure, nil
}

func (r *departureRepository) FindByRouteAndWindow(ctx context.Context, routeID uuid.UUID, from, to time.Time) ([]*entity.Departure, error) {
	query := `
		SELECT ` + departureColumns + `
		FROM departures
		WHERE route_id = $1 AND departs_at >= $2 AND departs_at < $3
		ORDER BY departs_at
	`

	rows, err := database.QuerierFrom(ctx, r.db).Query(ctx, query, routeID, from, to)
	if err != nil {
		r.log.Error("Failed to find departures by route",
			zap.Error(err),
			zap.String("route_id", routeID.String()),
			zap.Time("from", from),
			zap.Time("to", to),
		)
		return nil, fmt.Errorf("find departures for route %s: %w", routeID.String(), err)
	}
	defer rows.Close()

	var departures []*entity.Departure
	for rows.Next() {
		var departure entity.Departure
		err := rows.Scan(
			&departure.ID,
			&departure.RouteID,
			&departure.DepartsAt,
			&departure.Price,
			&departure.Capacity,
			&departure.CreatedAt,
			&departure.UpdatedAt,
		)
		if err != nil {
			r.log.Error("Failed to scan departure row", zap.Error(err))
			return nil, fmt.Errorf("scan departure row: %w", err)
		}
		departures = append(departures, &departure)
	}

	return departures, nil
}
