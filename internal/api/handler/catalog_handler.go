package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/khadamat/marketplace-api/internal/api/metrics"
	"github.com/khadamat/marketplace-api/internal/core/ports"
	"github.com/khadamat/marketplace-api/internal/core/service"
)

// CatalogHandler serves the public storefront.
type CatalogHandler struct {
	service ports.CatalogService
}

func NewCatalogHandler(svc ports.CatalogService) *CatalogHandler {
	return &CatalogHandler{service: svc}
}

// Get handles GET /v1/catalog. The optional q and category parameters are
// applied with the same pure filter the front-end uses over its fetched
// list; no re-query happens on filter change.
//
// @Summary      Fetch the public delivery catalog
// @Tags         catalog
// @Produce      json
// @Param        q         query     string  false  "Search query matched against store name and description"
// @Param        category  query     string  false  "Category id to filter by"
// @Success      200       {object}  catalogResponse
// @Router       /v1/catalog [get]
func (h *CatalogHandler) Get(c echo.Context) error {
	catalog, err := h.service.FetchCatalog(c.Request().Context())
	if err != nil {
		return err
	}

	outcome := "ok"
	if catalog.Degraded {
		outcome = "degraded"
	}
	metrics.CatalogFetchesTotal.WithLabelValues(outcome).Inc()

	stores := service.FilterStores(catalog.Stores, c.QueryParam("q"), c.QueryParam("category"))
	return c.JSON(http.StatusOK, toCatalogResponse(catalog, stores))
}
