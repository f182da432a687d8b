package types

// OrderTotals is the derived money breakdown for a cart. All amounts are in
// whole rupiah (the smallest unit in circulation); GoldSavingsValue alone may
// carry a fractional part because it is a notional balance, not a charge.
type OrderTotals struct {
	Subtotal         int64   `json:"subtotal"`
	ShippingCost     int64   `json:"shipping_cost"`
	PlatformFee      int64   `json:"platform_fee"`
	PromotionFee     int64   `json:"promotion_fee"`
	Total            int64   `json:"total"`
	EarnedPoints     int64   `json:"earned_points"`
	GoldSavingsValue float64 `json:"gold_savings_value"`
}

// ShippingOption is one entry of the fixed courier catalog.
type ShippingOption struct {
	ID                string `json:"id"`
	Name              string `json:"name"`
	Price             int64  `json:"price"`
	EstimatedDelivery string `json:"estimated_delivery"`
}
