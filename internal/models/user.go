package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	UserTypeCustomer = "Customer"
	UserTypeAdmin    = "Admin"
)

type User struct {
	ID        uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	Name      string         `gorm:"size:255" json:"name"`
	Contact   string         `gorm:"size:20;not null;uniqueIndex" json:"contact"`
	Email     string         `gorm:"size:255" json:"email"`
	Password  string         `gorm:"not null" json:"-"`
	UserType  string         `gorm:"size:20;default:'Customer';index" json:"user_type"`
	Role      string         `gorm:"size:20;default:'user'" json:"-"`
	OtpCount  int            `gorm:"not null;default:0" json:"-"`
	IsActive  bool           `gorm:"not null;default:false" json:"is_active"`
	Customer  *Customer      `json:"customer,omitempty"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

// Customer is the profile attached to a User, created lazily on first
// registration or login if absent.
type Customer struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	UserID       uuid.UUID `gorm:"type:uuid;not null;uniqueIndex" json:"user_id"`
	CustomerName string    `gorm:"size:255" json:"customer_name"`
	Contact      string    `gorm:"size:20;index" json:"contact"`
	Email        string    `gorm:"size:255" json:"email"`
	Address      string    `gorm:"type:text" json:"address"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
