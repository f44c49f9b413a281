package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Setting is the storefront settings singleton (logo, contact info, social
// links and so on), stored as one row of free-form JSON.
type Setting struct {
	ID        uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	Data      datatypes.JSON `gorm:"type:jsonb" json:"data"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
}

// Page is an informational/policy page addressed by route name
// (e.g. "privacy-policy").
type Page struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	RouteName string    `gorm:"size:100;not null;uniqueIndex" json:"route_name"`
	Title     string    `gorm:"size:255;not null" json:"title"`
	Body      string    `gorm:"type:text" json:"body"`
	IsActive  bool      `gorm:"not null;default:true" json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type Faq struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Question  string    `gorm:"type:text;not null" json:"question"`
	Answer    string    `gorm:"type:text" json:"answer"`
	SortOrder int       `gorm:"not null;default:0" json:"sort_order"`
	IsActive  bool      `gorm:"not null;default:true" json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
}

const (
	SliderKindFront       = "front"
	SliderKindPromotional = "promotional"
)

type Slider struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Kind      string    `gorm:"size:20;not null;index" json:"kind"`
	MenuName  string    `gorm:"size:100;index" json:"menu_name"`
	Title     string    `gorm:"size:255" json:"title"`
	ImageURL  string    `gorm:"size:500;not null" json:"image_url"`
	LinkURL   string    `gorm:"size:500" json:"link_url"`
	SortOrder int       `gorm:"not null;default:0" json:"sort_order"`
	IsActive  bool      `gorm:"not null;default:true" json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
}

type Menu struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Name      string    `gorm:"size:100;not null;uniqueIndex" json:"name"`
	SortOrder int       `gorm:"not null;default:0" json:"sort_order"`
	IsActive  bool      `gorm:"not null;default:true" json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
}

type ContactMessage struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Name      string    `gorm:"size:255;not null" json:"name"`
	Contact   string    `gorm:"size:20" json:"contact"`
	Email     string    `gorm:"size:255" json:"email"`
	Subject   string    `gorm:"size:255" json:"subject"`
	Message   string    `gorm:"type:text;not null" json:"message"`
	CreatedAt time.Time `json:"created_at"`
}

// DamageReport is a customer complaint about a delivered order.
type DamageReport struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index" json:"user_id"`
	OrderNo   string    `gorm:"size:40" json:"order_no"`
	Subject   string    `gorm:"size:255" json:"subject"`
	Details   string    `gorm:"type:text;not null" json:"details"`
	ImageURL  string    `gorm:"size:500" json:"image_url"`
	Status    string    `gorm:"size:20;not null;default:'Open'" json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
