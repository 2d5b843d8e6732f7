package handler

import (
	"net/http"

	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
)

// /regions の公開API
type RegionHandler struct {
	uc *usecase.RegionUsecase
}

// DI
func NewRegionHandler(uc *usecase.RegionUsecase) *RegionHandler {
	return &RegionHandler{uc: uc}
}

func (h *RegionHandler) RegisterRoutes(e *echo.Echo) {
	e.GET("/regions", h.list)
}

func (h *RegionHandler) list(c echo.Context) error {
	out, err := h.uc.ListRegions(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, out)
}
