package model

import "time"

// Product statuses. A product is visible on the public site only while active.
const (
	ProductInactive = 0
	ProductActive   = 1
)

// Specification is one label/value pair of a product's spec sheet.
// The ordered list is stored serialized in a single column.
type Specification struct {
	Label string `json:"label" binding:"required,max=100"`
	Value string `json:"value" binding:"required,max=255"`
}

// Product represents a catalog entry. Image holds the path of the product
// picture relative to the public assets root (e.g. "assets/img/products/x.jpg").
type Product struct {
	ID             int             `json:"id"`
	Name           string          `json:"name"`
	Image          string          `json:"image"`
	Summary        string          `json:"summary"`
	Description    *string         `json:"description"`
	Specifications []Specification `json:"specifications"`
	Status         int             `json:"status"`
	CreatedAt      time.Time       `json:"created_at"`
}

// ToggleProductStatusRequest is the payload for PATCH .../status.
// Status is a pointer so that a literal 0 survives required-field binding.
type ToggleProductStatusRequest struct {
	Status *int `json:"status" binding:"required"`
}
