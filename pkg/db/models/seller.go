package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/rifqipratama/warungkita-backend/pkg/types"
)

// Seller is a merchant storefront. PaymentOptions is the seller-configured
// capability record consulted when a multi-seller cart reaches the payment
// step.
type Seller struct {
	ID             uuid.UUID            `gorm:"column:id;type:uuid;primaryKey"`
	Name           string               `gorm:"column:name;not null"`
	City           string               `gorm:"column:city;not null"`
	Rating         float64              `gorm:"column:rating;not null;default:0"`
	PaymentOptions types.PaymentOptions `gorm:"column:payment_options;type:text"`
	CreatedAt      time.Time            `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt      time.Time            `gorm:"column:updated_at;autoUpdateTime"`
}
