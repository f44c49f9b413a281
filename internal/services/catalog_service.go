package services

import (
	"errors"
	"fmt"

	"github.com/finesse-lifestyle/storefront-api/internal/dto"
	"github.com/finesse-lifestyle/storefront-api/internal/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrInvalidRating = errors.New("rating must be between 1 and 5")
	ErrReviewExists  = errors.New("you have already reviewed this product")
)

type CatalogService struct {
	db *gorm.DB
}

func NewCatalogService(db *gorm.DB) *CatalogService {
	return &CatalogService{db: db}
}

// Details returns one catalog row with computed fields. userID may be
// uuid.Nil for anonymous browsing (wishlist flag stays false).
func (s *CatalogService) Details(productID, userID uuid.UUID) (*dto.FormattedProduct, error) {
	var product models.Product
	err := s.db.Where("id = ? AND is_archived = ?", productID, false).
		Preload("Brand").
		Preload("Group").
		Preload("Category").
		Preload("Images").
		Preload("Variants", "is_active = ?", true).
		First(&product).Error
	if err != nil {
		return nil, ErrProductNotFound
	}

	return s.format(&product, userID)
}

// Variants returns the active variant matrix for a variable product.
func (s *CatalogService) Variants(productID uuid.UUID) ([]models.ProductVariant, error) {
	var variants []models.ProductVariant
	err := s.db.Where("product_id = ? AND is_active = ?", productID, true).Find(&variants).Error
	if err != nil {
		return nil, fmt.Errorf("failed to load variants: %w", err)
	}
	return variants, nil
}

// Related returns products sharing the category, excluding the product
// itself.
func (s *CatalogService) Related(productID uuid.UUID, limit int) ([]dto.FormattedProduct, error) {
	if limit < 1 || limit > 24 {
		limit = 8
	}

	var product models.Product
	if err := s.db.First(&product, "id = ?", productID).Error; err != nil {
		return nil, ErrProductNotFound
	}

	query := s.db.Where("id <> ? AND is_available = ? AND is_archived = ?", productID, true, false)
	if product.CategoryID != nil {
		query = query.Where("category_id = ?", *product.CategoryID)
	}

	var related []models.Product
	if err := query.Preload("Brand").Preload("Group").Preload("Category").
		Limit(limit).Find(&related).Error; err != nil {
		return nil, fmt.Errorf("failed to load related products: %w", err)
	}

	return s.formatAll(related, uuid.Nil)
}

func (s *CatalogService) Reviews(productID uuid.UUID, page, limit int) ([]dto.ReviewEntry, float64, dto.Pagination, error) {
	page, limit = normalizePage(page, limit)

	var reviews []models.Review
	err := s.db.Where("product_id = ?", productID).
		Preload("User").
		Order("created_at DESC").
		Limit(limit).
		Offset((page - 1) * limit).
		Find(&reviews).Error
	if err != nil {
		return nil, 0, dto.Pagination{}, fmt.Errorf("failed to load reviews: %w", err)
	}

	entries := make([]dto.ReviewEntry, 0, len(reviews))
	for _, r := range reviews {
		entry := dto.ReviewEntry{
			ID:        r.ID,
			Rating:    r.Rating,
			Comment:   r.Comment,
			ImageURL:  r.ImageURL,
			CreatedAt: r.CreatedAt,
		}
		if r.User != nil {
			entry.UserName = r.User.Name
		}
		entries = append(entries, entry)
	}

	var total int64
	s.db.Model(&models.Review{}).Where("product_id = ?", productID).Count(&total)

	rating, _ := s.ratingFor(productID)

	return entries, rating, paginate(page, limit, total), nil
}

// CreateReview stores one review per user per product.
func (s *CatalogService) CreateReview(userID uuid.UUID, req *dto.CreateReviewRequest) (*models.Review, error) {
	if req.Rating < 1 || req.Rating > 5 {
		return nil, ErrInvalidRating
	}

	var product models.Product
	if err := s.db.First(&product, "id = ?", req.ProductID).Error; err != nil {
		return nil, ErrProductNotFound
	}

	var existing models.Review
	if err := s.db.Where("user_id = ? AND product_id = ?", userID, req.ProductID).
		First(&existing).Error; err == nil {
		return nil, ErrReviewExists
	}

	review := models.Review{
		ID:        uuid.New(),
		UserID:    userID,
		ProductID: req.ProductID,
		Rating:    req.Rating,
		Comment:   req.Comment,
		ImageURL:  req.ImageURL,
	}
	if err := s.db.Create(&review).Error; err != nil {
		return nil, fmt.Errorf("failed to create review: %w", err)
	}
	return &review, nil
}

// Stock returns main-branch stock for a product (unclamped).
func (s *CatalogService) Stock(productID uuid.UUID) (int, error) {
	var product models.Product
	if err := s.db.First(&product, "id = ?", productID).Error; err != nil {
		return 0, ErrProductNotFound
	}
	return StockFor(s.db, productID, uuid.Nil)
}

// Search matches product name and keywords.
func (s *CatalogService) Search(term string, page, limit int) ([]dto.FormattedProduct, dto.Pagination, error) {
	page, limit = normalizePage(page, limit)
	pattern := "%" + term + "%"

	base := s.db.Model(&models.Product{}).
		Where("is_available = ? AND is_archived = ?", true, false).
		Where("product_name LIKE ? OR keywords LIKE ?", pattern, pattern)

	var total int64
	base.Count(&total)

	var products []models.Product
	err := base.Preload("Brand").Preload("Group").Preload("Category").
		Order("created_at DESC").
		Limit(limit).
		Offset((page - 1) * limit).
		Find(&products).Error
	if err != nil {
		return nil, dto.Pagination{}, fmt.Errorf("failed to search products: %w", err)
	}

	formatted, err := s.formatAll(products, uuid.Nil)
	if err != nil {
		return nil, dto.Pagination{}, err
	}
	return formatted, paginate(page, limit, total), nil
}

// format builds the catalog row shape every listing returns: discounted
// price, aggregate main-branch stock, review aggregates and the wishlist
// flag for the given user.
func (s *CatalogService) format(product *models.Product, userID uuid.UUID) (*dto.FormattedProduct, error) {
	stock, err := StockFor(s.db, product.ID, uuid.Nil)
	if err != nil {
		return nil, err
	}

	f := &dto.FormattedProduct{
		ID:               product.ID,
		Slug:             product.Slug,
		ProductName:      product.ProductName,
		ProductImage:     product.ProductImage,
		Model:            product.Model,
		Brand:            "Brand",
		Category:         "Category",
		Subcategory:      "Subcategory",
		BriefDescription: product.BriefDescription,
		SellingPrice:     product.SellingPrice,
		DiscountedPrice:  DiscountedPrice(product.SellingPrice, product.Discount),
		Discount:         product.Discount,
		IsNew:            product.IsNew,
		IsFeatured:       product.IsFeatured,
		Stock:            stock,
		Images:           product.Images,
		Variants:         product.Variants,
	}
	if product.Brand != nil {
		f.Brand = product.Brand.Name
	}
	if product.Group != nil {
		f.Category = product.Group.GroupName
	}
	if product.Category != nil {
		f.Subcategory = product.Category.CatName
	}

	f.Rating, f.Reviews = s.ratingFor(product.ID)

	if userID != uuid.Nil {
		var count int64
		s.db.Model(&models.WishlistItem{}).
			Where("user_id = ? AND product_id = ?", userID, product.ID).
			Count(&count)
		f.IsWishlist = count > 0
	}

	return f, nil
}

func (s *CatalogService) formatAll(products []models.Product, userID uuid.UUID) ([]dto.FormattedProduct, error) {
	formatted := make([]dto.FormattedProduct, 0, len(products))
	for i := range products {
		f, err := s.format(&products[i], userID)
		if err != nil {
			return nil, err
		}
		formatted = append(formatted, *f)
	}
	return formatted, nil
}

func (s *CatalogService) ratingFor(productID uuid.UUID) (float64, int64) {
	var count int64
	s.db.Model(&models.Review{}).Where("product_id = ?", productID).Count(&count)
	if count == 0 {
		return 0, 0
	}

	var avg float64
	s.db.Model(&models.Review{}).
		Where("product_id = ?", productID).
		Select("AVG(rating)").
		Scan(&avg)
	return avg, count
}
