package pricing

import (
	"github.com/shopspring/decimal"

	"github.com/rifqipratama/warungkita-backend/pkg/types"
)

var (
	platformFeeRate  = decimal.NewFromInt(5).Div(decimal.NewFromInt(100))
	promotionFeeRate = decimal.NewFromInt(10).Div(decimal.NewFromInt(100))
	loyaltySplit     = decimal.NewFromInt(1).Div(decimal.NewFromInt(2))
)

// Line is one cart line as seen by the calculator.
type Line struct {
	Price    int64
	Quantity int64
}

// ComputeOrderTotals derives the full money breakdown for a cart.
//
// Fees are percentages of the item subtotal only; shipping never compounds
// into the fee or loyalty base. Fee amounts round half-up to the nearest
// rupiah. Loyalty points floor so the buyer is never over-credited; the gold
// savings value keeps its fractional part. The loyalty base is the 5% market
// margin regardless of the direct-sale promotion fee.
func ComputeOrderTotals(items []Line, shippingCost int64, isDirectSale bool) types.OrderTotals {
	var subtotal int64
	for _, item := range items {
		subtotal += item.Price * item.Quantity
	}

	subtotalDec := decimal.NewFromInt(subtotal)

	platformFee := subtotalDec.Mul(platformFeeRate).Round(0).IntPart()

	var promotionFee int64
	if isDirectSale {
		promotionFee = subtotalDec.Mul(promotionFeeRate).Round(0).IntPart()
	}

	margin := subtotalDec.Mul(platformFeeRate)
	loyaltyShare := margin.Mul(loyaltySplit)

	return types.OrderTotals{
		Subtotal:         subtotal,
		ShippingCost:     shippingCost,
		PlatformFee:      platformFee,
		PromotionFee:     promotionFee,
		Total:            subtotal + shippingCost + platformFee + promotionFee,
		EarnedPoints:     loyaltyShare.Floor().IntPart(),
		GoldSavingsValue: loyaltyShare.InexactFloat64(),
	}
}
