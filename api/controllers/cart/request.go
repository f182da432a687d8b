package cart

import "github.com/google/uuid"

type addItemRequest struct {
	ProductID uuid.UUID `json:"product_id" validate:"required"`
	Quantity  int64     `json:"quantity,omitempty"`
}

// Quantity deliberately has no validation tag: zero and negative values are
// accepted and clamped to one by the service.
type updateQuantityRequest struct {
	Quantity int64 `json:"quantity"`
}

type directSaleRequest struct {
	DirectSale bool `json:"direct_sale"`
}
