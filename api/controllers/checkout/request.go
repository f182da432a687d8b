package checkout

import "github.com/google/uuid"

type startRequest struct {
	CartID uuid.UUID `json:"cart_id" validate:"required"`
}

type addressRequest struct {
	Name       string `json:"name"`
	Phone      string `json:"phone"`
	Street     string `json:"street"`
	City       string `json:"city"`
	Province   string `json:"province"`
	PostalCode string `json:"postal_code"`
}

type shippingRequest struct {
	ShippingOptionID string `json:"shipping_option_id" validate:"required"`
}

type paymentRequest struct {
	Method string `json:"method" validate:"required"`
}
