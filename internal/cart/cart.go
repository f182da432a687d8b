package cart

import (
	"time"

	"github.com/google/uuid"

	"github.com/rifqipratama/warungkita-backend/internal/pricing"
)

// Item is one cart line. Price is copied from the catalog at add time so the
// cart stays stable if the listing changes underneath it.
type Item struct {
	ID        uuid.UUID `json:"id"`
	ProductID uuid.UUID `json:"product_id"`
	SellerID  uuid.UUID `json:"seller_id"`
	Name      string    `json:"name"`
	Price     int64     `json:"price"`
	Quantity  int64     `json:"quantity"`
}

// Cart is the session's item collection. DirectSale toggles the extra 10%
// promotion fee used to exercise fee variability.
type Cart struct {
	ID         uuid.UUID `json:"id"`
	DirectSale bool      `json:"direct_sale"`
	Items      []Item    `json:"items"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// PricingLines maps the cart items into calculator input.
func (c *Cart) PricingLines() []pricing.Line {
	lines := make([]pricing.Line, 0, len(c.Items))
	for _, item := range c.Items {
		lines = append(lines, pricing.Line{Price: item.Price, Quantity: item.Quantity})
	}
	return lines
}

// SellerIDs returns the distinct sellers represented in the cart, in first
// appearance order.
func (c *Cart) SellerIDs() []uuid.UUID {
	seen := map[uuid.UUID]struct{}{}
	ids := make([]uuid.UUID, 0, len(c.Items))
	for _, item := range c.Items {
		if _, ok := seen[item.SellerID]; ok {
			continue
		}
		seen[item.SellerID] = struct{}{}
		ids = append(ids, item.SellerID)
	}
	return ids
}

func (c *Cart) clone() *Cart {
	dup := *c
	dup.Items = make([]Item, len(c.Items))
	copy(dup.Items, c.Items)
	return &dup
}
