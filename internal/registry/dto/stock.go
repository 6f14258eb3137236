package dto

// CreateStockRequest is the DTO for creating a stock under a bearer.
type CreateStockRequest struct {
	Name string `json:"name"`
}

// UpdateStockRequest is the DTO for updating a stock. Nil fields are left unchanged.
// A non-blank BearerName moves the stock to that bearer, creating it when needed.
type UpdateStockRequest struct {
	Name       *string `json:"name"`
	BearerName *string `json:"bearer_name"`
}

// StockSummary is the list representation of a stock.
type StockSummary struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

// StockResponse is the full representation of a stock.
type StockResponse struct {
	ID         uint   `json:"id"`
	Name       string `json:"name"`
	BearerName string `json:"bearer_name"`
}

// UpdateStockResult is the outcome of an update. When Moved is true the stock no
// longer belongs to the bearer the request was addressed to and Stock is nil.
type UpdateStockResult struct {
	Stock *StockResponse
	Moved bool
}
