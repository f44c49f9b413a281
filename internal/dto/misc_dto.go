package dto

import (
	"encoding/json"

	"github.com/finesse-lifestyle/storefront-api/internal/models"
	"github.com/google/uuid"
)

type AddWishlistRequest struct {
	ProductID uuid.UUID `json:"product_id"`
}

type WishlistListResponse struct {
	Success    bool               `json:"success"`
	Wishlist   []FormattedProduct `json:"wishlist"`
	Pagination Pagination         `json:"pagination"`
}

type WishlistCheckResponse struct {
	Success    bool `json:"success"`
	InWishlist bool `json:"in_wishlist"`
}

type NotificationListResponse struct {
	Success       bool                  `json:"success"`
	Notifications []models.Notification `json:"notifications"`
}

type NotificationCountResponse struct {
	Success bool  `json:"success"`
	Count   int64 `json:"count"`
}

type ContactUsRequest struct {
	Name    string `json:"name"`
	Contact string `json:"contact"`
	Email   string `json:"email"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

type CreateReportRequest struct {
	OrderNo  string `json:"order_no"`
	Subject  string `json:"subject"`
	Details  string `json:"details"`
	ImageURL string `json:"image_url,omitempty"`
}

type ReportListResponse struct {
	Success    bool                  `json:"success"`
	Reports    []models.DamageReport `json:"reports"`
	Pagination Pagination            `json:"pagination"`
}

type SettingsResponse struct {
	Success  bool            `json:"success"`
	Settings json.RawMessage `json:"settings"`
}

type PageResponse struct {
	Success bool         `json:"success"`
	Page    *models.Page `json:"page"`
}

type FaqListResponse struct {
	Success    bool         `json:"success"`
	Faqs       []models.Faq `json:"faqs"`
	Pagination Pagination   `json:"pagination"`
}

type SliderListResponse struct {
	Success bool            `json:"success"`
	Sliders []models.Slider `json:"sliders"`
}

type MenuListResponse struct {
	Success bool          `json:"success"`
	Menus   []models.Menu `json:"menus"`
}

type CreateCouponRequest struct {
	Code           string   `json:"code"`
	Type           string   `json:"type"`
	Value          float64  `json:"value"`
	MaxDiscount    *float64 `json:"max_discount,omitempty"`
	MinOrderAmount *float64 `json:"min_order_amount,omitempty"`
	UsageLimit     *int     `json:"usage_limit,omitempty"`
}

type CreateGiftVoucherRequest struct {
	Code   string  `json:"code"`
	Amount float64 `json:"amount"`
}
