package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// CartItem is one row per distinct (user, product, variant). Re-adding the
// same product increments Quantity via an ON CONFLICT upsert rather than
// inserting a duplicate row. VariantID is uuid.Nil for simple products so
// the unique index stays total.
type CartItem struct {
	ID        uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	UserID    uuid.UUID      `gorm:"type:uuid;not null;uniqueIndex:idx_cart_identity" json:"user_id"`
	ProductID uuid.UUID      `gorm:"type:uuid;not null;uniqueIndex:idx_cart_identity" json:"product_id"`
	VariantID uuid.UUID      `gorm:"type:uuid;not null;default:'00000000-0000-0000-0000-000000000000';uniqueIndex:idx_cart_identity" json:"variant_id"`
	Quantity  int            `gorm:"not null" json:"quantity"`
	Snapshot  datatypes.JSON `gorm:"type:jsonb" json:"snapshot"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
}

// PreorderCartItem mirrors CartItem for the preorder flow, which keeps its
// own cart so regular checkout never drains preorder lines.
type PreorderCartItem struct {
	ID        uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	UserID    uuid.UUID      `gorm:"type:uuid;not null;uniqueIndex:idx_preorder_cart_identity" json:"user_id"`
	ProductID uuid.UUID      `gorm:"type:uuid;not null;uniqueIndex:idx_preorder_cart_identity" json:"product_id"`
	VariantID uuid.UUID      `gorm:"type:uuid;not null;default:'00000000-0000-0000-0000-000000000000';uniqueIndex:idx_preorder_cart_identity" json:"variant_id"`
	Quantity  int            `gorm:"not null" json:"quantity"`
	Snapshot  datatypes.JSON `gorm:"type:jsonb" json:"snapshot"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
}
