package pricing

import "testing"

func TestComputeOrderTotalsRegularSale(t *testing.T) {
	t.Parallel()

	totals := ComputeOrderTotals([]Line{{Price: 75000, Quantity: 1}}, 15000, false)

	if totals.Subtotal != 75000 {
		t.Fatalf("subtotal = %d, want 75000", totals.Subtotal)
	}
	if totals.PlatformFee != 3750 {
		t.Fatalf("platform fee = %d, want 3750", totals.PlatformFee)
	}
	if totals.PromotionFee != 0 {
		t.Fatalf("promotion fee = %d, want exactly 0", totals.PromotionFee)
	}
	if totals.Total != 93750 {
		t.Fatalf("total = %d, want 93750", totals.Total)
	}
	if totals.EarnedPoints != 1875 {
		t.Fatalf("earned points = %d, want 1875", totals.EarnedPoints)
	}
	if totals.GoldSavingsValue != 1875.0 {
		t.Fatalf("gold savings = %f, want 1875.0", totals.GoldSavingsValue)
	}
}

func TestComputeOrderTotalsDirectSale(t *testing.T) {
	t.Parallel()

	totals := ComputeOrderTotals([]Line{{Price: 75000, Quantity: 1}}, 15000, true)

	if totals.PromotionFee != 7500 {
		t.Fatalf("promotion fee = %d, want 7500", totals.PromotionFee)
	}
	if totals.Total != 101250 {
		t.Fatalf("total = %d, want 101250", totals.Total)
	}
	// Loyalty accrual tracks the 5% margin only and must not move with the
	// promotion fee.
	if totals.EarnedPoints != 1875 {
		t.Fatalf("earned points = %d, want 1875", totals.EarnedPoints)
	}
	if totals.GoldSavingsValue != 1875.0 {
		t.Fatalf("gold savings = %f, want 1875.0", totals.GoldSavingsValue)
	}
}

func TestComputeOrderTotalsEmptyCart(t *testing.T) {
	t.Parallel()

	totals := ComputeOrderTotals(nil, 12000, true)

	if totals.Subtotal != 0 || totals.PlatformFee != 0 || totals.PromotionFee != 0 {
		t.Fatalf("empty cart must derive zero fees, got %+v", totals)
	}
	if totals.Total != 12000 {
		t.Fatalf("total = %d, want shipping passthrough 12000", totals.Total)
	}
	if totals.EarnedPoints != 0 || totals.GoldSavingsValue != 0 {
		t.Fatalf("empty cart must not accrue loyalty, got %+v", totals)
	}
}

func TestComputeOrderTotalsFeesRoundHalfUp(t *testing.T) {
	t.Parallel()

	// subtotal 30: 5% = 1.5 rounds to 2, 10% = 3 exactly.
	totals := ComputeOrderTotals([]Line{{Price: 30, Quantity: 1}}, 0, true)
	if totals.PlatformFee != 2 {
		t.Fatalf("platform fee = %d, want half-up 2", totals.PlatformFee)
	}
	if totals.PromotionFee != 3 {
		t.Fatalf("promotion fee = %d, want 3", totals.PromotionFee)
	}

	// subtotal 49: 5% = 2.45 rounds to 2, 10% = 4.9 rounds to 5.
	totals = ComputeOrderTotals([]Line{{Price: 49, Quantity: 1}}, 0, true)
	if totals.PlatformFee != 2 {
		t.Fatalf("platform fee = %d, want 2", totals.PlatformFee)
	}
	if totals.PromotionFee != 5 {
		t.Fatalf("promotion fee = %d, want 5", totals.PromotionFee)
	}
}

func TestComputeOrderTotalsPointsFloorNeverRoundUp(t *testing.T) {
	t.Parallel()

	// subtotal 70: margin 3.5, split 1.75 -> 1 point, gold 1.75.
	totals := ComputeOrderTotals([]Line{{Price: 70, Quantity: 1}}, 0, false)
	if totals.EarnedPoints != 1 {
		t.Fatalf("earned points = %d, want floored 1", totals.EarnedPoints)
	}
	if totals.GoldSavingsValue != 1.75 {
		t.Fatalf("gold savings = %f, want 1.75", totals.GoldSavingsValue)
	}

	if totals.EarnedPoints < 0 {
		t.Fatal("points must never be negative")
	}
}

func TestComputeOrderTotalsMultiLineSubtotal(t *testing.T) {
	t.Parallel()

	totals := ComputeOrderTotals([]Line{
		{Price: 25000, Quantity: 2},
		{Price: 10000, Quantity: 3},
	}, 15000, false)

	if totals.Subtotal != 80000 {
		t.Fatalf("subtotal = %d, want 80000", totals.Subtotal)
	}
	if totals.PlatformFee != 4000 {
		t.Fatalf("platform fee = %d, want 4000", totals.PlatformFee)
	}
	if totals.Total != 80000+15000+4000 {
		t.Fatalf("total = %d, want %d", totals.Total, 80000+15000+4000)
	}
}
