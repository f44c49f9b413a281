package dto

import (
	"encoding/json"

	"github.com/finesse-lifestyle/storefront-api/internal/models"
	"github.com/google/uuid"
)

type PlaceOrderRequest struct {
	CouponCode      string          `json:"coupon_code,omitempty"`
	GiftVoucherCode string          `json:"gift_voucher_code,omitempty"`
	ShippingCost    *float64        `json:"shipping_cost,omitempty"`
	PaymentMethod   string          `json:"payment_method,omitempty"`
	ShippingDetails json.RawMessage `json:"shipping_details,omitempty"`
	Notes           string          `json:"notes,omitempty"`
}

type PayNowRequest struct {
	PaymentMethod string `json:"payment_method,omitempty"`
}

type CheckStockRequest struct {
	ProductID uuid.UUID  `json:"product_id"`
	VariantID *uuid.UUID `json:"variant_id,omitempty"`
	Quantity  int        `json:"quantity"`
}

type CheckStockResponse struct {
	Success   bool `json:"success"`
	Available bool `json:"available"`
	Stock     int  `json:"stock"`
	Requested int  `json:"requested"`
}

type CheckCouponRequest struct {
	Code        string  `json:"code"`
	OrderAmount float64 `json:"order_amount"`
}

type CheckCouponResponse struct {
	Success  bool           `json:"success"`
	Coupon   *models.Coupon `json:"coupon"`
	Discount float64        `json:"discount"`
}

type CheckGiftVoucherRequest struct {
	Code string `json:"code"`
}

type CheckGiftVoucherResponse struct {
	Success bool    `json:"success"`
	Amount  float64 `json:"amount"`
}

type OrderResponse struct {
	Success bool          `json:"success"`
	Message string        `json:"message,omitempty"`
	Order   *models.Order `json:"order"`
}

type OrderListResponse struct {
	Success    bool           `json:"success"`
	Orders     []models.Order `json:"orders"`
	Pagination Pagination     `json:"pagination"`
}

type PreorderResponse struct {
	Success  bool             `json:"success"`
	Message  string           `json:"message,omitempty"`
	Preorder *models.Preorder `json:"preorder"`
}

type PreorderListResponse struct {
	Success    bool              `json:"success"`
	Preorders  []models.Preorder `json:"preorders"`
	Pagination Pagination        `json:"pagination"`
}
