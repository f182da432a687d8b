package cart

import (
	"context"

	"github.com/google/uuid"

	"github.com/rifqipratama/warungkita-backend/pkg/db/models"
	pkgerrors "github.com/rifqipratama/warungkita-backend/pkg/errors"
)

// Service exposes the cart mutation engine. Totals are never stored on the
// cart; they are derived on read via the pricing calculator.
type Service interface {
	Create(ctx context.Context) (*Cart, error)
	Get(ctx context.Context, cartID uuid.UUID) (*Cart, error)
	SetDirectSale(ctx context.Context, cartID uuid.UUID, directSale bool) (*Cart, error)
	AddItem(ctx context.Context, cartID uuid.UUID, input AddItemInput) (*Cart, error)
	UpdateQuantity(ctx context.Context, cartID, itemID uuid.UUID, quantity int64) (*Cart, error)
	RemoveItem(ctx context.Context, cartID, itemID uuid.UUID) (*Cart, error)
}

// AddItemInput captures the payload for adding a product to a cart.
type AddItemInput struct {
	ProductID uuid.UUID
	Quantity  int64
}

type productLoader interface {
	FindProductByID(ctx context.Context, id uuid.UUID) (*models.Product, error)
}

type service struct {
	store    *Store
	products productLoader
}

// NewService builds the cart service.
func NewService(store *Store, products productLoader) (Service, error) {
	if store == nil {
		return nil, pkgerrors.New(pkgerrors.CodeInternal, "cart store required")
	}
	if products == nil {
		return nil, pkgerrors.New(pkgerrors.CodeInternal, "product loader required")
	}
	return &service{store: store, products: products}, nil
}

func (s *service) Create(ctx context.Context) (*Cart, error) {
	return s.store.create(), nil
}

func (s *service) Get(ctx context.Context, cartID uuid.UUID) (*Cart, error) {
	if cartID == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "cart id required")
	}
	return s.store.get(cartID)
}

func (s *service) SetDirectSale(ctx context.Context, cartID uuid.UUID, directSale bool) (*Cart, error) {
	if cartID == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "cart id required")
	}
	return s.store.mutate(cartID, func(record *Cart) error {
		record.DirectSale = directSale
		return nil
	})
}

func (s *service) AddItem(ctx context.Context, cartID uuid.UUID, input AddItemInput) (*Cart, error) {
	if cartID == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "cart id required")
	}
	if input.ProductID == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "product id required")
	}

	quantity := input.Quantity
	if quantity < 1 {
		quantity = 1
	}

	product, err := s.products.FindProductByID(ctx, input.ProductID)
	if err != nil {
		return nil, err
	}
	if !product.IsActive {
		return nil, pkgerrors.New(pkgerrors.CodeConflict, "product is no longer available")
	}

	return s.store.mutate(cartID, func(record *Cart) error {
		for i := range record.Items {
			if record.Items[i].ProductID == product.ID {
				record.Items[i].Quantity += quantity
				return nil
			}
		}
		record.Items = append(record.Items, Item{
			ID:        uuid.New(),
			ProductID: product.ID,
			SellerID:  product.SellerID,
			Name:      product.Name,
			Price:     product.Price,
			Quantity:  quantity,
		})
		return nil
	})
}

// UpdateQuantity clamps quantities below one to one. Dropping to zero never
// removes the line; removal is its own explicit action.
func (s *service) UpdateQuantity(ctx context.Context, cartID, itemID uuid.UUID, quantity int64) (*Cart, error) {
	if cartID == uuid.Nil || itemID == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "cart id and item id required")
	}
	if quantity < 1 {
		quantity = 1
	}

	return s.store.mutate(cartID, func(record *Cart) error {
		for i := range record.Items {
			if record.Items[i].ID == itemID {
				record.Items[i].Quantity = quantity
				return nil
			}
		}
		return pkgerrors.New(pkgerrors.CodeNotFound, "cart item not found")
	})
}

// RemoveItem commits the removal synchronously. Any removal animation is a
// rendering affordance in the client; totals computed from the returned
// snapshot already exclude the item.
func (s *service) RemoveItem(ctx context.Context, cartID, itemID uuid.UUID) (*Cart, error) {
	if cartID == uuid.Nil || itemID == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "cart id and item id required")
	}

	return s.store.mutate(cartID, func(record *Cart) error {
		for i := range record.Items {
			if record.Items[i].ID == itemID {
				record.Items = append(record.Items[:i], record.Items[i+1:]...)
				return nil
			}
		}
		return pkgerrors.New(pkgerrors.CodeNotFound, "cart item not found")
	})
}
