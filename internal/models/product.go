package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type Brand struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Name      string    `gorm:"size:255;not null;uniqueIndex" json:"name"`
	Slug      string    `gorm:"size:255;index" json:"slug"`
	ImageURL  string    `gorm:"size:500" json:"image_url"`
	IsActive  bool      `gorm:"not null;default:true" json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Group is a top-level catalog group (e.g. Men, Women); Category nests
// beneath it.
type Group struct {
	ID         uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	GroupName  string     `gorm:"size:255;not null" json:"group_name"`
	Slug       string     `gorm:"size:255;index" json:"slug"`
	MenuName   string     `gorm:"size:100;index" json:"menu_name"`
	IsActive   bool       `gorm:"not null;default:true" json:"is_active"`
	Categories []Category `json:"categories,omitempty"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`
}

type Category struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	GroupID   uuid.UUID `gorm:"type:uuid;not null;index" json:"group_id"`
	CatName   string    `gorm:"size:255;not null" json:"cat_name"`
	Slug      string    `gorm:"size:255;index" json:"slug"`
	IsActive  bool      `gorm:"not null;default:true" json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type Tag struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Name      string    `gorm:"size:100;not null;uniqueIndex" json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

type Product struct {
	ID               uuid.UUID        `gorm:"type:uuid;primaryKey" json:"id"`
	Slug             string           `gorm:"size:255;uniqueIndex" json:"slug"`
	ProductName      string           `gorm:"size:255;not null;index" json:"product_name"`
	Model            string           `gorm:"size:255" json:"model"`
	BriefDescription string           `gorm:"type:text" json:"brief_description"`
	Description      string           `gorm:"type:text" json:"description"`
	ProductImage     string           `gorm:"size:500" json:"product_image"`
	Keywords         string           `gorm:"type:text" json:"keywords"`
	SellingPrice     float64          `gorm:"not null" json:"selling_price"`
	Discount         float64          `gorm:"not null;default:0" json:"discount"`
	BrandID          *uuid.UUID       `gorm:"type:uuid;index" json:"brand_id"`
	GroupID          *uuid.UUID       `gorm:"type:uuid;index" json:"group_id"`
	CategoryID       *uuid.UUID       `gorm:"type:uuid;index" json:"category_id"`
	IsNew            bool             `gorm:"not null;default:false" json:"is_new"`
	IsFeatured       bool             `gorm:"not null;default:false" json:"is_featured"`
	IsPreorder       bool             `gorm:"not null;default:false" json:"is_preorder"`
	IsAvailable      bool             `gorm:"not null;default:true" json:"is_available"`
	IsArchived       bool             `gorm:"not null;default:false" json:"is_archived"`
	Brand            *Brand           `json:"brand,omitempty"`
	Group            *Group           `json:"group,omitempty"`
	Category         *Category        `json:"category,omitempty"`
	Variants         []ProductVariant `json:"variants,omitempty"`
	Images           []ProductImage   `json:"images,omitempty"`
	Tags             []Tag            `gorm:"many2many:product_tags" json:"tags,omitempty"`
	CreatedAt        time.Time        `json:"created_at"`
	UpdatedAt        time.Time        `json:"updated_at"`
	DeletedAt        gorm.DeletedAt   `gorm:"index" json:"-"`
}

// ProductVariant is a sellable variation (size/colour) of a Product.
// Attributes holds the variation axes as a JSON object, e.g.
// {"size":"M","color":"Navy"}.
type ProductVariant struct {
	ID         uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	ProductID  uuid.UUID      `gorm:"type:uuid;not null;index" json:"product_id"`
	SKU        string         `gorm:"size:100;uniqueIndex" json:"sku"`
	Attributes datatypes.JSON `gorm:"type:jsonb" json:"attributes"`
	PriceDelta float64        `gorm:"not null;default:0" json:"price_delta"`
	IsActive   bool           `gorm:"not null;default:true" json:"is_active"`
	CreatedAt  time.Time      `json:"created_at"`
	UpdatedAt  time.Time      `json:"updated_at"`
}

type ProductImage struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	ProductID uuid.UUID `gorm:"type:uuid;not null;index" json:"product_id"`
	ImageURL  string    `gorm:"size:500;not null" json:"image_url"`
	SortOrder int       `gorm:"not null;default:0" json:"sort_order"`
	CreatedAt time.Time `json:"created_at"`
}
