package http

import (
	"net/http"

	"golang-stock-registry/internal/registry/dto"
	"golang-stock-registry/internal/registry/service"
	"golang-stock-registry/pkg/logger"

	"github.com/labstack/echo/v4"
)

// StockHandler handles HTTP requests for the stocks of a bearer.
type StockHandler struct {
	stockService service.StockService
	logger       *logger.Logger
}

// NewStockHandler creates a new StockHandler.
func NewStockHandler(stockService service.StockService, logger *logger.Logger) *StockHandler {
	return &StockHandler{stockService: stockService, logger: logger}
}

// RegisterRoutes registers the stock routes to the Echo group mounted at /bearers.
func (h *StockHandler) RegisterRoutes(g *echo.Group) {
	g.GET("/:bearer_id/stocks", h.ListStocks)
	g.POST("/:bearer_id/stocks", h.CreateStock)
	g.GET("/:bearer_id/stocks/:id", h.GetStock)
	g.PUT("/:bearer_id/stocks/:id", h.UpdateStock)
	g.PATCH("/:bearer_id/stocks/:id", h.UpdateStock)
	g.DELETE("/:bearer_id/stocks/:id", h.DeleteStock)
}

// Clients may nest attributes under "stock" or send them flat; both shapes are accepted.
type createStockPayload struct {
	dto.CreateStockRequest
	Stock *dto.CreateStockRequest `json:"stock"`
}

type updateStockPayload struct {
	dto.UpdateStockRequest
	Stock *dto.UpdateStockRequest `json:"stock"`
}

// ListStocks godoc
// @Summary List the stocks of a bearer
// @Description List the active stocks owned by a bearer
// @Tags stocks
// @Produce  json
// @Param   bearer_id  path    int true    "Bearer ID"
// @Success 200 {array} dto.StockSummary
// @Failure 404 {object} nil
// @Failure 500 {object} dto.ErrorResponse
// @Router /bearers/{bearer_id}/stocks [get]
func (h *StockHandler) ListStocks(c echo.Context) error {
	bearerID, ok := parseID(c, "bearer_id")
	if !ok {
		return c.NoContent(http.StatusNotFound)
	}

	stocks, err := h.stockService.ListStocks(c.Request().Context(), bearerID)
	if err != nil {
		return h.respondError(c, err, "Failed to get stocks")
	}
	return c.JSON(http.StatusOK, stocks)
}

// GetStock godoc
// @Summary Get a stock
// @Description Get an active stock within a bearer's scope
// @Tags stocks
// @Produce  json
// @Param   bearer_id  path    int true    "Bearer ID"
// @Param   id         path    int true    "Stock ID"
// @Success 200 {object} dto.StockResponse
// @Failure 404 {object} nil
// @Failure 500 {object} dto.ErrorResponse
// @Router /bearers/{bearer_id}/stocks/{id} [get]
func (h *StockHandler) GetStock(c echo.Context) error {
	bearerID, id, ok := parseStockPath(c)
	if !ok {
		return c.NoContent(http.StatusNotFound)
	}

	stock, err := h.stockService.GetStock(c.Request().Context(), bearerID, id)
	if err != nil {
		return h.respondError(c, err, "Failed to get stock")
	}
	return c.JSON(http.StatusOK, stock)
}

// CreateStock godoc
// @Summary Create a stock
// @Description Create a stock owned by the bearer in the path
// @Tags stocks
// @Accept  json
// @Produce  json
// @Param   bearer_id  path    int true    "Bearer ID"
// @Param   stock  body    dto.CreateStockRequest   true    "Stock to create"
// @Success 201 {object} dto.StockResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} nil
// @Failure 422 {object} dto.ValidationErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /bearers/{bearer_id}/stocks [post]
func (h *StockHandler) CreateStock(c echo.Context) error {
	bearerID, ok := parseID(c, "bearer_id")
	if !ok {
		return c.NoContent(http.StatusNotFound)
	}

	var payload createStockPayload
	if err := c.Bind(&payload); err != nil {
		return c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid request payload"})
	}
	req := payload.CreateStockRequest
	if payload.Stock != nil {
		req = *payload.Stock
	}

	stock, err := h.stockService.CreateStock(c.Request().Context(), bearerID, &req)
	if err != nil {
		return h.respondError(c, err, "Failed to create stock")
	}
	return c.JSON(http.StatusCreated, stock)
}

// UpdateStock godoc
// @Summary Update a stock
// @Description Rename a stock and optionally move it to the bearer named bearer_name, creating that bearer when needed.
// @Description When the stock ends up owned by another bearer than the one in the path the response body is empty.
// @Tags stocks
// @Accept  json
// @Produce  json
// @Param   bearer_id  path    int true    "Bearer ID"
// @Param   id         path    int true    "Stock ID"
// @Param   stock  body    dto.UpdateStockRequest   true    "Changes to apply"
// @Success 200 {object} dto.StockResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} nil
// @Failure 422 {object} dto.ValidationErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /bearers/{bearer_id}/stocks/{id} [put]
func (h *StockHandler) UpdateStock(c echo.Context) error {
	bearerID, id, ok := parseStockPath(c)
	if !ok {
		return c.NoContent(http.StatusNotFound)
	}

	var payload updateStockPayload
	if err := c.Bind(&payload); err != nil {
		return c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid request payload"})
	}
	req := payload.UpdateStockRequest
	if payload.Stock != nil {
		req = *payload.Stock
	}

	result, err := h.stockService.UpdateStock(c.Request().Context(), bearerID, id, &req)
	if err != nil {
		return h.respondError(c, err, "Failed to update stock")
	}

	if result.Moved {
		return c.NoContent(http.StatusOK)
	}
	return c.JSON(http.StatusOK, result.Stock)
}

// DeleteStock godoc
// @Summary Delete a stock
// @Description Soft-delete a stock; its name becomes available again
// @Tags stocks
// @Param   bearer_id  path    int true    "Bearer ID"
// @Param   id         path    int true    "Stock ID"
// @Success 200 {object} nil
// @Failure 404 {object} nil
// @Failure 422 {object} dto.ValidationErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /bearers/{bearer_id}/stocks/{id} [delete]
func (h *StockHandler) DeleteStock(c echo.Context) error {
	bearerID, id, ok := parseStockPath(c)
	if !ok {
		return c.NoContent(http.StatusNotFound)
	}

	if err := h.stockService.DeleteStock(c.Request().Context(), bearerID, id); err != nil {
		return h.respondError(c, err, "Failed to delete stock")
	}
	return c.NoContent(http.StatusOK)
}
