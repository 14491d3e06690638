package wire

import (
	"bus-booking/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireCatalog(r chi.Router, catalogHandler *adaptor.CatalogHandler) {
	// GET /api/routes - List all routes
	r.Get("/api/routes", catalogHandler.ListRoutes)

	// GET /api/departures?route_id=&date= - List departures for a route on a day
	r.Get("/api/departures", catalogHandler.ListDepartures)
}
