package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"bus-booking/internal/data/entity"
	"bus-booking/internal/data/repository"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

func TestListDepartures_DayWindow(t *testing.T) {
	routeID := uuid.New()

	var gotFrom, gotTo time.Time

	repo := newTestRepository()
	repo.Route = &mockRouteRepo{
		findByIDFunc: func(ctx context.Context, id uuid.UUID) (*entity.Route, error) {
			return &entity.Route{Base: entity.Base{ID: id}, Origin: "Oaxaca", Destination: "Huatulco"}, nil
		},
	}
	repo.Departure = &mockDepartureRepo{
		findByRouteFunc: func(ctx context.Context, id uuid.UUID, from, to time.Time) ([]*entity.Departure, error) {
			gotFrom, gotTo = from, to
			return []*entity.Departure{testDeparture(uuid.New(), 19, "500.00")}, nil
		},
	}

	service := NewCatalogService(repo, zap.NewNop())

	departures, err := service.ListDepartures(context.Background(), routeID.String(), "2026-03-15")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(departures) != 1 {
		t.Fatalf("expected 1 departure, got %d", len(departures))
	}

	wantFrom := time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC)
	if !gotFrom.Equal(wantFrom) || !gotTo.Equal(wantFrom.AddDate(0, 0, 1)) {
		t.Errorf("expected window [%v, %v), got [%v, %v)", wantFrom, wantFrom.AddDate(0, 0, 1), gotFrom, gotTo)
	}
}

func TestListDepartures_BadDate(t *testing.T) {
	repo := newTestRepository()
	service := NewCatalogService(repo, zap.NewNop())

	_, err := service.ListDepartures(context.Background(), uuid.NewString(), "15/03/2026")
	if err == nil {
		t.Fatal("expected error for malformed date")
	}
}

func TestListDepartures_RouteNotFound(t *testing.T) {
	repo := newTestRepository()
	repo.Route = &mockRouteRepo{}

	service := NewCatalogService(repo, zap.NewNop())

	_, err := service.ListDepartures(context.Background(), uuid.NewString(), "2026-03-15")
	if !errors.Is(err, repository.ErrNotFound) {
		t.Fatalf("expected not-found error, got %v", err)
	}
}

func TestListRoutes(t *testing.T) {
	repo := newTestRepository()
	repo.Route = &mockRouteRepo{
		findAllFunc: func(ctx context.Context) ([]*entity.Route, error) {
			return []*entity.Route{
				{Base: entity.Base{ID: uuid.New()}, Origin: "Oaxaca", Destination: "Puerto Escondido"},
				{Base: entity.Base{ID: uuid.New()}, Origin: "Oaxaca", Destination: "Huatulco"},
			}, nil
		},
	}

	service := NewCatalogService(repo, zap.NewNop())

	routes, err := service.ListRoutes(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(routes) != 2 {
		t.Fatalf("expected 2 routes, got %d", len(routes))
	}
	if routes[0].Origin != "Oaxaca" {
		t.Errorf("unexpected origin: %s", routes[0].Origin)
	}
}
