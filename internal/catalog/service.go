package catalog

import (
	"context"
	stdErrors "errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/rifqipratama/warungkita-backend/pkg/db/models"
	pkgerrors "github.com/rifqipratama/warungkita-backend/pkg/errors"
)

// Service exposes the read-only product and seller catalog.
type Service interface {
	ListProducts(ctx context.Context, filter ListFilter) ([]models.Product, error)
	FindProductByID(ctx context.Context, id uuid.UUID) (*models.Product, error)
	ListSellers(ctx context.Context) ([]models.Seller, error)
	FindSellerByID(ctx context.Context, id uuid.UUID) (*models.Seller, error)
	FindSellersByIDs(ctx context.Context, ids []uuid.UUID) ([]models.Seller, error)
}

type service struct {
	repo *Repository
}

// NewService builds the catalog service.
func NewService(repo *Repository) (Service, error) {
	if repo == nil {
		return nil, pkgerrors.New(pkgerrors.CodeInternal, "catalog repository required")
	}
	return &service{repo: repo}, nil
}

func (s *service) ListProducts(ctx context.Context, filter ListFilter) ([]models.Product, error) {
	products, err := s.repo.ListProducts(ctx, filter)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "listing products")
	}
	return products, nil
}

func (s *service) FindProductByID(ctx context.Context, id uuid.UUID) (*models.Product, error) {
	if id == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "product id required")
	}
	product, err := s.repo.FindProductByID(ctx, id)
	if err != nil {
		if stdErrors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "product not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "finding product")
	}
	return product, nil
}

func (s *service) ListSellers(ctx context.Context) ([]models.Seller, error) {
	sellers, err := s.repo.ListSellers(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "listing sellers")
	}
	return sellers, nil
}

func (s *service) FindSellerByID(ctx context.Context, id uuid.UUID) (*models.Seller, error) {
	if id == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "seller id required")
	}
	seller, err := s.repo.FindSellerByID(ctx, id)
	if err != nil {
		if stdErrors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "seller not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "finding seller")
	}
	return seller, nil
}

func (s *service) FindSellersByIDs(ctx context.Context, ids []uuid.UUID) ([]models.Seller, error) {
	sellers, err := s.repo.FindSellersByIDs(ctx, ids)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "finding sellers")
	}
	return sellers, nil
}
