package dto

// BearerResponse is the representation of a bearer.
type BearerResponse struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}
