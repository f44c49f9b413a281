package models

import (
	"time"

	"github.com/google/uuid"
)

const (
	CouponTypePercentage = "percentage"
	CouponTypeFixed      = "fixed"
)

// Coupon is reusable up to UsageLimit. Percentage coupons are capped at
// MaxDiscount when set; MinOrderAmount gates application.
type Coupon struct {
	ID             uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	Code           string     `gorm:"size:50;not null;uniqueIndex" json:"code"`
	Type           string     `gorm:"size:20;not null;default:'percentage'" json:"type"`
	Value          float64    `gorm:"not null" json:"value"`
	MaxDiscount    *float64   `json:"max_discount,omitempty"`
	MinOrderAmount *float64   `json:"min_order_amount,omitempty"`
	UsageLimit     *int       `json:"usage_limit,omitempty"`
	UsedCount      int        `gorm:"not null;default:0" json:"used_count"`
	IsActive       bool       `gorm:"not null;default:true" json:"is_active"`
	ExpiresAt      *time.Time `json:"expires_at,omitempty"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
}

// GiftVoucher is a single-use fixed-amount credit; IsUsed flips exactly once
// at redemption, attributed to the redeeming user.
type GiftVoucher struct {
	ID        uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	Code      string     `gorm:"size:50;not null;uniqueIndex" json:"code"`
	Amount    float64    `gorm:"not null" json:"amount"`
	IsUsed    bool       `gorm:"not null;default:false" json:"is_used"`
	UsedBy    *uuid.UUID `gorm:"type:uuid" json:"used_by,omitempty"`
	UsedAt    *time.Time `json:"used_at,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}
