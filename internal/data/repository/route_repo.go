package repository

import (
	"context"
	"fmt"

	"bus-booking/internal/data/entity"
	"bus-booking/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type RouteRepository interface {
	FindAll(ctx context.Context) ([]*entity.Route, error)
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Route, error)
}

type routeRepository struct {
	db  database.Querier
	log *zap.Logger
}

func NewRouteRepository(db database.Querier, log *zap.Logger) RouteRepository {
	return &routeRepository{
		db:  db,
		log: log.With(zap.String("repository", "route")),
	}
}

func (r *routeRepository) FindAll(ctx context.Context) ([]*entity.Route, error) {
	query := `
		SELECT id, origin, destination, duration_min, created_at, updated_at
		FROM routes
		ORDER BY origin, destination
	`

	rows, err := database.QuerierFrom(ctx, r.db).Query(ctx, query)
	if err != nil {
		r.log.Error("Failed to find routes", zap.Error(err))
		return nil, fmt.Errorf("find routes: %w", err)
	}
	defer rows.Close()

	var routes []*entity.Route
	for rows.Next() {
		var route entity.Route
		err := rows.Scan(
			&route.ID,
			&route.Origin,
			&route.Destination,
			&route.DurationMin,
			&route.CreatedAt,
			&route.UpdatedAt,
		)
		if err != nil {
			r.log.Error("Failed to scan route row", zap.Error(err))
			return nil, fmt.Errorf("scan route row: %w", err)
		}
		routes = append(routes, &route)
	}

	return routes, nil
}

func (r *routeRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Route, error) {
	query := `
		SELECT id, origin, destination, duration_min, created_at, updated_at
		FROM routes
		WHERE id = $1
	`

	var route entity.Route
	err := database.QuerierFrom(ctx, r.db).QueryRow(ctx, query, id).Scan(
		&route.ID,
		&route.Origin,
		&route.Destination,
		&route.DurationMin,
		&route.CreatedAt,
		&route.UpdatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find route by ID",
			zap.Error(err),
			zap.String("route_id", id.String()),
		)
		return nil, fmt.Errorf("find route by ID %s: %w", id.String(), err)
	}

	return &route, nil
}
