package models

import (
	"time"

	"github.com/google/uuid"
)

// Store is a physical branch. Sellable stock is always computed against the
// single store flagged MainBranch.
type Store struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Name       string    `gorm:"size:255;not null" json:"name"`
	Address    string    `gorm:"type:text" json:"address"`
	MainBranch bool      `gorm:"not null;default:false;index" json:"main_branch"`
	IsActive   bool      `gorm:"not null;default:true" json:"is_active"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// Purchase records stock bought into a store. VariantID is uuid.Nil for
// simple products.
type Purchase struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	StoreID   uuid.UUID `gorm:"type:uuid;not null;index" json:"store_id"`
	ProductID uuid.UUID `gorm:"type:uuid;not null;index" json:"product_id"`
	VariantID uuid.UUID `gorm:"type:uuid;not null;default:'00000000-0000-0000-0000-000000000000';index" json:"variant_id"`
	Quantity  int       `gorm:"not null" json:"quantity"`
	UnitCost  float64   `json:"unit_cost"`
	CreatedAt time.Time `json:"created_at"`
}

// Sale records stock sold out of a store; mirrors Purchase.
type Sale struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	StoreID   uuid.UUID `gorm:"type:uuid;not null;index" json:"store_id"`
	ProductID uuid.UUID `gorm:"type:uuid;not null;index" json:"product_id"`
	VariantID uuid.UUID `gorm:"type:uuid;not null;default:'00000000-0000-0000-0000-000000000000';index" json:"variant_id"`
	Quantity  int       `gorm:"not null" json:"quantity"`
	UnitPrice float64   `json:"unit_price"`
	CreatedAt time.Time `json:"created_at"`
}
