package response

import (
	"time"

	"bus-booking/internal/data/entity"

	"github.com/shopspring/decimal"
)

type RouteResponse struct {
	ID          string `json:"id"`
	Origin      string `json:"origin"`
	Destination string `json:"destination"`
	DurationMin *int   `json:"duration_min,omitempty"`
}

type DepartureResponse struct {
	ID        string          `json:"id"`
	RouteID   string          `json:"route_id"`
	DepartsAt time.Time       `json:"departs_at"`
	Price     decimal.Decimal `json:"price"`
	Capacity  int             `json:"capacity"`
}

// Helper converters
func RouteToResponse(route *entity.Route) RouteResponse {
	return RouteResponse{
		ID:          route.ID.String(),
		Origin:      route.Origin,
		Destination: route.Destination,
		DurationMin: route.DurationMin,
	}
}

func DepartureToResponse(departure *entity.Departure) DepartureResponse {
	return DepartureResponse{
		ID:        departure.ID.String(),
		RouteID:   departure.RouteID.String(),
		DepartsAt: departure.DepartsAt,
		Price:     departure.Price,
		Capacity:  departure.Capacity,
	}
}
