package dto

import (
	"time"

	"github.com/finesse-lifestyle/storefront-api/internal/models"
	"github.com/google/uuid"
)

// FormattedProduct is the catalog row shape every listing and detail
// endpoint returns: computed discounted price, aggregate main-branch stock
// and review aggregates alongside the raw row.
type FormattedProduct struct {
	ID               uuid.UUID               `json:"id"`
	Slug             string                  `json:"slug"`
	ProductName      string                  `json:"product_name"`
	ProductImage     string                  `json:"product_image"`
	Model            string                  `json:"model,omitempty"`
	Brand            string                  `json:"brand"`
	Category         string                  `json:"category"`
	Subcategory      string                  `json:"subcategory"`
	BriefDescription string                  `json:"brief_description,omitempty"`
	SellingPrice     float64                 `json:"selling_price"`
	DiscountedPrice  float64                 `json:"discounted_price"`
	Discount         float64                 `json:"discount"`
	IsNew            bool                    `json:"is_new"`
	IsFeatured       bool                    `json:"is_featured"`
	Stock            int                     `json:"stock"`
	IsWishlist       bool                    `json:"is_wishlist"`
	Rating           float64                 `json:"rating"`
	Reviews          int64                   `json:"reviews"`
	Images           []models.ProductImage   `json:"images,omitempty"`
	Variants         []models.ProductVariant `json:"variants,omitempty"`
}

type ProductDetailResponse struct {
	Success bool              `json:"success"`
	Product *FormattedProduct `json:"product"`
}

type ProductListResponse struct {
	Success    bool               `json:"success"`
	Products   []FormattedProduct `json:"products"`
	Pagination Pagination         `json:"pagination"`
}

type StockResponse struct {
	Success bool `json:"success"`
	Stock   int  `json:"stock"`
}

type CreateReviewRequest struct {
	ProductID uuid.UUID `json:"product_id"`
	Rating    int       `json:"rating"`
	Comment   string    `json:"comment"`
	ImageURL  string    `json:"image_url,omitempty"`
}

type ReviewEntry struct {
	ID        uuid.UUID `json:"id"`
	UserName  string    `json:"user_name"`
	Rating    int       `json:"rating"`
	Comment   string    `json:"comment"`
	ImageURL  string    `json:"image_url,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

type ReviewListResponse struct {
	Success    bool          `json:"success"`
	Reviews    []ReviewEntry `json:"reviews"`
	Rating     float64       `json:"rating"`
	Pagination Pagination    `json:"pagination"`
}

type GroupListResponse struct {
	Success bool           `json:"success"`
	Groups  []models.Group `json:"groups"`
}

type BrandListResponse struct {
	Success bool           `json:"success"`
	Brands  []models.Brand `json:"brands"`
}

type TagListResponse struct {
	Success bool         `json:"success"`
	Tags    []models.Tag `json:"tags"`
}
