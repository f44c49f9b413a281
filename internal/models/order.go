package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

const (
	OrderStatusPending   = "Pending"
	OrderStatusCancelled = "Cancelled"
	OrderStatusDelivered = "Delivered"

	PaymentStatusPending = "Pending"
	PaymentStatusPaid    = "Paid"

	PaymentMethodCOD = "Cash on Delivery"
)

// Order is immutable after checkout except for Status and PaymentStatus
// transitions. All money fields are captured at checkout time and never
// recomputed from live catalog prices.
type Order struct {
	ID              uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	OrderNo         string         `gorm:"size:40;not null;uniqueIndex" json:"order_no"`
	UserID          uuid.UUID      `gorm:"type:uuid;not null;index" json:"user_id"`
	Status          string         `gorm:"size:20;not null;default:'Pending'" json:"status"`
	PaymentStatus   string         `gorm:"size:20;not null;default:'Pending'" json:"payment_status"`
	PaymentMethod   string         `gorm:"size:50" json:"payment_method"`
	SubTotal        float64        `gorm:"not null" json:"sub_total"`
	Discount        float64        `gorm:"not null;default:0" json:"discount"`
	ShippingCost    float64        `gorm:"not null;default:0" json:"shipping_cost"`
	GrandTotal      float64        `gorm:"not null" json:"grand_total"`
	CouponCode      string         `gorm:"size:50" json:"coupon_code,omitempty"`
	GiftVoucherCode string         `gorm:"size:50" json:"gift_voucher_code,omitempty"`
	ShippingDetails datatypes.JSON `gorm:"type:jsonb" json:"shipping_details"`
	Notes           string         `gorm:"type:text" json:"notes"`
	Details         []OrderDetail  `json:"details,omitempty"`
	User            *User          `json:"user,omitempty"`
	CreatedAt       time.Time      `json:"created_at"`
	UpdatedAt       time.Time      `json:"updated_at"`
}

type OrderDetail struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	OrderID   uuid.UUID `gorm:"type:uuid;not null;index" json:"order_id"`
	ProductID uuid.UUID `gorm:"type:uuid;not null;index" json:"product_id"`
	VariantID uuid.UUID `gorm:"type:uuid;not null;default:'00000000-0000-0000-0000-000000000000'" json:"variant_id"`
	Quantity  int       `gorm:"not null" json:"quantity"`
	UnitPrice float64   `gorm:"not null" json:"unit_price"`
	TotalPrice float64  `gorm:"not null" json:"total_price"`
	Product   *Product  `json:"product,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// Preorder is an order placed against the preorder cart; same lifecycle as
// Order.
type Preorder struct {
	ID              uuid.UUID        `gorm:"type:uuid;primaryKey" json:"id"`
	OrderNo         string           `gorm:"size:40;not null;uniqueIndex" json:"order_no"`
	UserID          uuid.UUID        `gorm:"type:uuid;not null;index" json:"user_id"`
	Status          string           `gorm:"size:20;not null;default:'Pending'" json:"status"`
	PaymentStatus   string           `gorm:"size:20;not null;default:'Pending'" json:"payment_status"`
	PaymentMethod   string           `gorm:"size:50" json:"payment_method"`
	SubTotal        float64          `gorm:"not null" json:"sub_total"`
	Discount        float64          `gorm:"not null;default:0" json:"discount"`
	ShippingCost    float64          `gorm:"not null;default:0" json:"shipping_cost"`
	GrandTotal      float64          `gorm:"not null" json:"grand_total"`
	ShippingDetails datatypes.JSON   `gorm:"type:jsonb" json:"shipping_details"`
	Notes           string           `gorm:"type:text" json:"notes"`
	Details         []PreorderDetail `json:"details,omitempty"`
	CreatedAt       time.Time        `json:"created_at"`
	UpdatedAt       time.Time        `json:"updated_at"`
}

type PreorderDetail struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	PreorderID uuid.UUID `gorm:"type:uuid;not null;index" json:"preorder_id"`
	ProductID  uuid.UUID `gorm:"type:uuid;not null;index" json:"product_id"`
	VariantID  uuid.UUID `gorm:"type:uuid;not null;default:'00000000-0000-0000-0000-000000000000'" json:"variant_id"`
	Quantity   int       `gorm:"not null" json:"quantity"`
	UnitPrice  float64   `gorm:"not null" json:"unit_price"`
	TotalPrice float64   `gorm:"not null" json:"total_price"`
	Product    *Product  `json:"product,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}
