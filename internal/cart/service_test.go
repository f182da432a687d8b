package cart

import (
	"context"
	"testing"

	"github.com/google/uuid"

	"github.com/rifqipratama/warungkita-backend/internal/pricing"
	"github.com/rifqipratama/warungkita-backend/pkg/db/models"
	"github.com/rifqipratama/warungkita-backend/pkg/enums"
	pkgerrors "github.com/rifqipratama/warungkita-backend/pkg/errors"
)

type stubProductLoader struct {
	products map[uuid.UUID]*models.Product
}

func (s *stubProductLoader) FindProductByID(_ context.Context, id uuid.UUID) (*models.Product, error) {
	product, ok := s.products[id]
	if !ok {
		return nil, pkgerrors.New(pkgerrors.CodeNotFound, "product not found")
	}
	return product, nil
}

func newTestService(t *testing.T, products ...*models.Product) Service {
	t.Helper()
	loader := &stubProductLoader{products: map[uuid.UUID]*models.Product{}}
	for _, product := range products {
		loader.products[product.ID] = product
	}
	svc, err := NewService(NewStore(), loader)
	if err != nil {
		t.Fatalf("new service: %v", err)
	}
	return svc
}

func testProduct(price int64) *models.Product {
	return &models.Product{
		ID:       uuid.New(),
		SellerID: uuid.New(),
		Name:     "Kopi Gayo 250g",
		Category: enums.ProductCategoryFood,
		Price:    price,
		IsActive: true,
	}
}

func TestAddItemCopiesCatalogPrice(t *testing.T) {
	t.Parallel()

	product := testProduct(75000)
	svc := newTestService(t, product)

	record, err := svc.Create(context.Background())
	if err != nil {
		t.Fatalf("create cart: %v", err)
	}

	record, err = svc.AddItem(context.Background(), record.ID, AddItemInput{ProductID: product.ID, Quantity: 2})
	if err != nil {
		t.Fatalf("add item: %v", err)
	}

	if len(record.Items) != 1 {
		t.Fatalf("expected one line, got %d", len(record.Items))
	}
	if record.Items[0].Price != 75000 || record.Items[0].Quantity != 2 {
		t.Fatalf("unexpected line %+v", record.Items[0])
	}
	if record.Items[0].SellerID != product.SellerID {
		t.Fatal("seller id must be carried for payment resolution")
	}
}

func TestAddSameProductMergesLines(t *testing.T) {
	t.Parallel()

	product := testProduct(10000)
	svc := newTestService(t, product)
	record, _ := svc.Create(context.Background())

	if _, err := svc.AddItem(context.Background(), record.ID, AddItemInput{ProductID: product.ID, Quantity: 1}); err != nil {
		t.Fatalf("first add: %v", err)
	}
	record, err := svc.AddItem(context.Background(), record.ID, AddItemInput{ProductID: product.ID, Quantity: 3})
	if err != nil {
		t.Fatalf("second add: %v", err)
	}

	if len(record.Items) != 1 || record.Items[0].Quantity != 4 {
		t.Fatalf("expected merged line with qty 4, got %+v", record.Items)
	}
}

func TestUpdateQuantityClampsToOne(t *testing.T) {
	t.Parallel()

	product := testProduct(25000)
	svc := newTestService(t, product)
	record, _ := svc.Create(context.Background())
	record, _ = svc.AddItem(context.Background(), record.ID, AddItemInput{ProductID: product.ID, Quantity: 2})
	itemID := record.Items[0].ID

	record, err := svc.UpdateQuantity(context.Background(), record.ID, itemID, 0)
	if err != nil {
		t.Fatalf("update quantity: %v", err)
	}

	if len(record.Items) != 1 {
		t.Fatal("decrement to zero must not remove the line")
	}
	if record.Items[0].Quantity != 1 {
		t.Fatalf("quantity = %d, want clamped 1", record.Items[0].Quantity)
	}
}

func TestRemoveItemIsImmediateForTotals(t *testing.T) {
	t.Parallel()

	keep := testProduct(30000)
	drop := testProduct(50000)
	svc := newTestService(t, keep, drop)
	record, _ := svc.Create(context.Background())
	record, _ = svc.AddItem(context.Background(), record.ID, AddItemInput{ProductID: keep.ID, Quantity: 1})
	record, _ = svc.AddItem(context.Background(), record.ID, AddItemInput{ProductID: drop.ID, Quantity: 1})

	var dropItemID uuid.UUID
	for _, item := range record.Items {
		if item.ProductID == drop.ID {
			dropItemID = item.ID
		}
	}

	record, err := svc.RemoveItem(context.Background(), record.ID, dropItemID)
	if err != nil {
		t.Fatalf("remove item: %v", err)
	}

	// The snapshot returned by the removal already excludes the line, so a
	// checkout triggered immediately afterwards cannot double-charge.
	totals := pricing.ComputeOrderTotals(record.PricingLines(), 0, false)
	if totals.Subtotal != 30000 {
		t.Fatalf("subtotal = %d, want 30000 straight after removal", totals.Subtotal)
	}
}

func TestRemoveMissingItemNotFound(t *testing.T) {
	t.Parallel()

	svc := newTestService(t)
	record, _ := svc.Create(context.Background())

	_, err := svc.RemoveItem(context.Background(), record.ID, uuid.New())
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeNotFound {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestSetDirectSaleTogglesFlag(t *testing.T) {
	t.Parallel()

	svc := newTestService(t)
	record, _ := svc.Create(context.Background())

	record, err := svc.SetDirectSale(context.Background(), record.ID, true)
	if err != nil {
		t.Fatalf("set direct sale: %v", err)
	}
	if !record.DirectSale {
		t.Fatal("direct sale flag should be set")
	}
}

func TestSellerIDsDeduplicates(t *testing.T) {
	t.Parallel()

	sellerID := uuid.New()
	record := &Cart{Items: []Item{
		{SellerID: sellerID},
		{SellerID: sellerID},
		{SellerID: uuid.New()},
	}}

	if got := len(record.SellerIDs()); got != 2 {
		t.Fatalf("expected 2 distinct sellers, got %d", got)
	}
}
