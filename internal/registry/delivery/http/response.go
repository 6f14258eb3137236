package http

import (
	"net/http"
	"strconv"

	"golang-stock-registry/internal/registry/dto"
	"golang-stock-registry/internal/registry/service"
	"golang-stock-registry/pkg/logger"

	"github.com/labstack/echo/v4"
)

// parseID reads a numeric path parameter. An id that does not parse cannot name
// any record, so callers answer it like a missing one.
func parseID(c echo.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || id == 0 {
		return 0, false
	}
	return uint(id), true
}

func parseStockPath(c echo.Context) (bearerID, id uint, ok bool) {
	if bearerID, ok = parseID(c, "bearer_id"); !ok {
		return 0, 0, false
	}
	if id, ok = parseID(c, "id"); !ok {
		return 0, 0, false
	}
	return bearerID, id, true
}

// respondError translates service errors: not found is a bare 404, rejected writes
// are 422 with their reasons, anything else is a 500.
func (h *StockHandler) respondError(c echo.Context, err error, msg string) error {
	if service.IsNotFound(err) {
		return c.NoContent(http.StatusNotFound)
	}
	if reasons, ok := service.Reasons(err); ok {
		return c.JSON(http.StatusUnprocessableEntity, dto.ValidationErrorResponse{Errors: reasons})
	}

	h.logger.ErrorContext(c.Request().Context(), msg, logger.ErrorField(err))
	return c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: msg})
}
