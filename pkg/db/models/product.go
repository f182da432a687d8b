package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/rifqipratama/warungkita-backend/pkg/enums"
)

// Product is one storefront listing. Prices are whole rupiah.
type Product struct {
	ID          uuid.UUID             `gorm:"column:id;type:uuid;primaryKey"`
	SellerID    uuid.UUID             `gorm:"column:seller_id;type:uuid;not null;index"`
	Name        string                `gorm:"column:name;not null"`
	Description string                `gorm:"column:description"`
	Category    enums.ProductCategory `gorm:"column:category;not null"`
	Price       int64                 `gorm:"column:price;not null"`
	ImageURL    *string               `gorm:"column:image_url"`
	IsActive    bool                  `gorm:"column:is_active;not null;default:true"`
	CreatedAt   time.Time             `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt   time.Time             `gorm:"column:updated_at;autoUpdateTime"`
}
