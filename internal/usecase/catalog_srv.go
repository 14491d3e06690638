package usecase

import (
	"context"
	"fmt"
	"time"

	"bus-booking/internal/data/repository"
	"bus-booking/internal/dto/response"
	"bus-booking/pkg/utils"

	"go.uber.org/zap"
)

type CatalogService interface {
	ListRoutes(ctx context.Context) ([]response.RouteResponse, error)
	// ListDepartures returns the departures of a route on one calendar
	// day (UTC). Date is "2006-01-02".
	ListDepartures(ctx context.Context, routeID, date string) ([]response.DepartureResponse, error)
}

type catalogService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewCatalogService(repo *repository.Repository, log *zap.Logger) CatalogService {
	return &catalogService{
		repo: repo,
		log:  log.With(zap.String("service", "catalog")),
	}
}

func (s *catalogService) ListRoutes(ctx context.Context) ([]response.RouteResponse, error) {
	routes, err := s.repo.Route.FindAll(ctx)
	if err != nil {
		s.log.Error("Failed to list routes", zap.Error(err))
		return nil, fmt.Errorf("list routes: %w", err)
	}

	responses := make([]response.RouteResponse, 0, len(routes))
	for _, route := range routes {
		responses = append(responses, response.RouteToResponse(route))
	}

	return responses, nil
}

func (s *catalogService) ListDepartures(ctx context.Context, routeID, date string) ([]response.DepartureResponse, error) {
	id, err := utils.ParseUUID(routeID)
	if err != nil {
		return nil, fmt.Errorf("invalid route ID format %s: %w", routeID, err)
	}

	day, err := time.ParseInLocation("2006-01-02", date, time.UTC)
	if err != nil {
		return nil, fmt.Errorf("invalid date format %s, expected YYYY-MM-DD: %w", date, err)
	}

	route, err := s.repo.Route.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("load route: %w", err)
	}
	if route == nil {
		return nil, fmt.Errorf("route %s: %w", routeID, repository.ErrNotFound)
	}

	departures, err := s.repo.Departure.FindByRouteAndWindow(ctx, id, day, day.AddDate(0, 0, 1))
	if err != nil {
		s.log.Error("Failed to list departures",
			zap.Error(err),
			zap.String("route_id", routeID),
			zap.String("date", date),
		)
		return nil, fmt.Errorf("list departures: %w", err)
	}

	responses := make([]response.DepartureResponse, 0, len(departures))
	for _, departure := range departures {
		responses = append(responses, response.DepartureToResponse(departure))
	}

	return responses, nil
}
