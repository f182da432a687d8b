package payments

import "github.com/rifqipratama/warungkita-backend/pkg/types"

// ResolveAvailableOptions computes the payment methods mutually available to
// a buyer whose cart spans the given sellers. A method survives only when
// every seller has it enabled. A single-seller list resolves to that seller's
// record unchanged; an empty list resolves to everything disabled.
func ResolveAvailableOptions(sellerOptions []types.PaymentOptions) types.PaymentOptions {
	if len(sellerOptions) == 0 {
		return types.PaymentOptions{}
	}

	resolved := sellerOptions[0]
	for _, opts := range sellerOptions[1:] {
		resolved = resolved.Intersect(opts)
	}
	return resolved
}
