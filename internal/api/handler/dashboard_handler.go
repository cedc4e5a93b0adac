package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/khadamat/marketplace-api/internal/api/metrics"
	"github.com/khadamat/marketplace-api/internal/core/domain"
	"github.com/khadamat/marketplace-api/internal/core/ports"
)

// DashboardHandler serves the authenticated dashboard view.
type DashboardHandler struct {
	service ports.DashboardService
}

func NewDashboardHandler(service ports.DashboardService) *DashboardHandler {
	return &DashboardHandler{service: service}
}

// Get handles GET /v1/dashboard, the composite ownership-scoped snapshot.
//
// @Summary      Fetch the current user's dashboard
// @Tags         dashboard
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  dashboardResponse
// @Failure      401  {object}  errorResponse
// @Router       /v1/dashboard [get]
func (h *DashboardHandler) Get(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	start := time.Now()
	snapshot, err := h.service.FetchAll(c.Request().Context(), userID)
	if err != nil {
		return err
	}
	metrics.DashboardFetchDuration.Observe(time.Since(start).Seconds())

	return c.JSON(http.StatusOK, toDashboardResponse(snapshot))
}

// Delete handles DELETE /v1/dashboard/:collection/:id. It removes one
// owned record and returns the refetched snapshot.
//
// @Summary      Delete an owned record and resync
// @Tags         dashboard
// @Produce      json
// @Security     BearerAuth
// @Param        collection  path      string  true  "stores, properties, or vehicles"
// @Param        id          path      string  true  "Record id"
// @Success      200         {object}  dashboardResponse
// @Failure      400         {object}  errorResponse
// @Failure      401         {object}  errorResponse
// @Failure      404         {object}  errorResponse
// @Router       /v1/dashboard/{collection}/{id} [delete]
func (h *DashboardHandler) Delete(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	collection := ports.Collection(c.Param("collection"))
	if !collection.Valid() {
		return echo.NewHTTPError(http.StatusBadRequest, "unknown collection")
	}
	id := c.Param("id")

	snapshot, err := h.service.Delete(c.Request().Context(), userID, collection, id)
	if err != nil {
		metrics.DashboardDeletesTotal.WithLabelValues(string(collection), deleteOutcome(err)).Inc()
		return err
	}
	metrics.DashboardDeletesTotal.WithLabelValues(string(collection), "ok").Inc()

	return c.JSON(http.StatusOK, toDashboardResponse(snapshot))
}

func deleteOutcome(err error) string {
	switch {
	case errors.Is(err, domain.ErrStoreNotFound),
		errors.Is(err, domain.ErrPropertyNotFound),
		errors.Is(err, domain.ErrVehicleNotFound):
		return "not_found"
	default:
		return "error"
	}
}
