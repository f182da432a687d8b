package catalog

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/rifqipratama/warungkita-backend/pkg/db/models"
	"github.com/rifqipratama/warungkita-backend/pkg/enums"
)

// Repository is the GORM-backed access layer for the seeded catalog.
type Repository struct {
	conn *gorm.DB
}

// NewRepository builds the catalog repository on the shared connection.
func NewRepository(conn *gorm.DB) *Repository {
	return &Repository{conn: conn}
}

// ListFilter narrows product listings.
type ListFilter struct {
	Category enums.ProductCategory
	SellerID uuid.UUID
}

func (r *Repository) ListProducts(ctx context.Context, filter ListFilter) ([]models.Product, error) {
	query := r.conn.WithContext(ctx).Where("is_active = ?", true)
	if filter.Category != "" {
		query = query.Where("category = ?", filter.Category)
	}
	if filter.SellerID != uuid.Nil {
		query = query.Where("seller_id = ?", filter.SellerID)
	}

	var products []models.Product
	if err := query.Order("name asc").Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

func (r *Repository) FindProductByID(ctx context.Context, id uuid.UUID) (*models.Product, error) {
	var product models.Product
	if err := r.conn.WithContext(ctx).First(&product, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &product, nil
}

func (r *Repository) ListSellers(ctx context.Context) ([]models.Seller, error) {
	var sellers []models.Seller
	if err := r.conn.WithContext(ctx).Order("name asc").Find(&sellers).Error; err != nil {
		return nil, err
	}
	return sellers, nil
}

func (r *Repository) FindSellerByID(ctx context.Context, id uuid.UUID) (*models.Seller, error) {
	var seller models.Seller
	if err := r.conn.WithContext(ctx).First(&seller, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &seller, nil
}

func (r *Repository) FindSellersByIDs(ctx context.Context, ids []uuid.UUID) ([]models.Seller, error) {
	if len(ids) == 0 {
		return []models.Seller{}, nil
	}
	var sellers []models.Seller
	if err := r.conn.WithContext(ctx).Where("id IN ?", ids).Find(&sellers).Error; err != nil {
		return nil, err
	}
	return sellers, nil
}
