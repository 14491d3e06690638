package adaptor

import (
	"net/http"

	"bus-booking/internal/usecase"
	"bus-booking/pkg/utils"

	"go.uber.org/zap"
)

type CatalogHandler struct {
	service usecase.CatalogService
	log     *zap.Logger
}

func NewCatalogHandler(service usecase.CatalogService, log *zap.Logger) *CatalogHandler {
	return &CatalogHandler{
		service: service,
		log:     log.With(zap.String("handler", "catalog")),
	}
}

// ListRoutes handles GET /api/routes (public)
func (h *CatalogHandler) ListRoutes(w http.ResponseWriter, r *http.Request) {
	routes, err := h.service.ListRoutes(r.Context())
	if err != nil {
		handleServiceError(w, h.log, err, "list routes")
		return
	}

	utils.ResponseSuccess(w, "success", routes)
}

// ListDepartures handles GET /api/departures?route_id=&date= (public)
func (h *CatalogHandler) ListDepartures(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	routeID := query.Get("route_id")
	date := query.Get("date")

	if routeID == "" || date == "" {
		utils.ResponseBadRequest(w, "route_id and date query parameters are required", nil)
		return
	}

	departures, err := h.service.ListDepartures(r.Context(), routeID, date)
	if err != nil {
		handleServiceError(w, h.log, err, "list departures")
		return
	}

	utils.ResponseSuccess(w, "success", departures)
}
