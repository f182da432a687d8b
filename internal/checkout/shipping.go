package checkout

import (
	pkgerrors "github.com/rifqipratama/warungkita-backend/pkg/errors"
	"github.com/rifqipratama/warungkita-backend/pkg/types"
)

// shippingCatalog is the fixed courier selection offered at the shipping
// step. Prices are whole rupiah.
var shippingCatalog = []types.ShippingOption{
	{ID: "economy", Name: "Kargo Ekonomis", Price: 10000, EstimatedDelivery: "5-7 hari"},
	{ID: "regular", Name: "Reguler (JNE/J&T)", Price: 15000, EstimatedDelivery: "3-5 hari"},
	{ID: "express", Name: "Express Same-Province", Price: 30000, EstimatedDelivery: "1-2 hari"},
}

// ShippingOptions returns the fixed courier catalog.
func ShippingOptions() []types.ShippingOption {
	options := make([]types.ShippingOption, len(shippingCatalog))
	copy(options, shippingCatalog)
	return options
}

func shippingOptionByID(id string) (types.ShippingOption, error) {
	for _, option := range shippingCatalog {
		if option.ID == id {
			return option, nil
		}
	}
	return types.ShippingOption{}, pkgerrors.New(pkgerrors.CodeValidation, "unknown shipping option").
		WithDetails(map[string]string{"shipping_option_id": "must be one of the offered couriers"})
}
