package http

import (
	"net/http"

	"golang-stock-registry/internal/registry/dto"
	"golang-stock-registry/internal/registry/service"
	"golang-stock-registry/pkg/logger"

	"github.com/labstack/echo/v4"
)

// BearerHandler handles HTTP requests for bearers.
type BearerHandler struct {
	bearerService service.BearerService
	logger        *logger.Logger
}

// NewBearerHandler creates a new BearerHandler.
func NewBearerHandler(bearerService service.BearerService, logger *logger.Logger) *BearerHandler {
	return &BearerHandler{bearerService: bearerService, logger: logger}
}

// RegisterRoutes registers the bearer routes to the Echo group mounted at /bearers.
func (h *BearerHandler) RegisterRoutes(g *echo.Group) {
	g.GET("", h.ListBearers)
}

// ListBearers godoc
// @Summary List bearers
// @Description List every bearer
// @Tags bearers
// @Produce  json
// @Success 200 {array} dto.BearerResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /bearers [get]
func (h *BearerHandler) ListBearers(c echo.Context) error {
	bearers, err := h.bearerService.ListBearers(c.Request().Context())
	if err != nil {
		h.logger.ErrorContext(c.Request().Context(), "Failed to get all bearers", logger.ErrorField(err))
		return c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "Failed to get bearers"})
	}
	return c.JSON(http.StatusOK, bearers)
}
