package cart

import (
	cartsvc "github.com/rifqipratama/warungkita-backend/internal/cart"
	"github.com/rifqipratama/warungkita-backend/internal/pricing"
	"github.com/rifqipratama/warungkita-backend/pkg/types"
)

// cartResponse is the cart snapshot plus totals derived from it. Totals use
// zero shipping; the real shipping cost only exists once checkout picks a
// courier.
type cartResponse struct {
	Cart   *cartsvc.Cart     `json:"cart"`
	Totals types.OrderTotals `json:"totals"`
}

// removalResponse carries the UI animation hint alongside the committed
// snapshot. The removal itself has already happened.
type removalResponse struct {
	Cart           *cartsvc.Cart     `json:"cart"`
	Totals         types.OrderTotals `json:"totals"`
	RemovalGraceMS int               `json:"removal_grace_ms"`
}

func newCartResponse(record *cartsvc.Cart) cartResponse {
	return cartResponse{
		Cart:   record,
		Totals: pricing.ComputeOrderTotals(record.PricingLines(), 0, record.DirectSale),
	}
}

func newRemovalResponse(record *cartsvc.Cart, graceMS int) removalResponse {
	base := newCartResponse(record)
	return removalResponse{
		Cart:           base.Cart,
		Totals:         base.Totals,
		RemovalGraceMS: graceMS,
	}
}
