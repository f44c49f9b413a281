package services

import (
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/finesse-lifestyle/storefront-api/internal/dto"
	"github.com/finesse-lifestyle/storefront-api/internal/models"
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var (
	ErrProductNotFound    = errors.New("product not found")
	ErrProductUnavailable = errors.New("product is not available")
	ErrVariantNotFound    = errors.New("product variant not found")
	ErrCartItemNotFound   = errors.New("cart item not found")
	ErrInvalidQuantity    = errors.New("quantity must be at least 1")
)

type CartService struct {
	db *gorm.DB
}

func NewCartService(db *gorm.DB) *CartService {
	return &CartService{db: db}
}

// Add upserts a cart line. The ON CONFLICT clause makes re-adding the same
// (user, product, variant) increment the existing row's quantity in a single
// statement, so concurrent adds cannot lose updates.
func (s *CartService) Add(userID uuid.UUID, req *dto.AddToCartRequest) (*models.CartItem, error) {
	qty := req.Quantity
	if qty == 0 {
		qty = 1
	}
	if qty < 1 {
		return nil, ErrInvalidQuantity
	}

	product, variantID, err := s.resolveProduct(req.ProductID, req.VariantID)
	if err != nil {
		return nil, err
	}

	item := models.CartItem{
		ID:        uuid.New(),
		UserID:    userID,
		ProductID: product.ID,
		VariantID: variantID,
		Quantity:  qty,
		Snapshot:  datatypes.JSON(req.Snapshot),
	}

	err = s.db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "user_id"}, {Name: "product_id"}, {Name: "variant_id"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"quantity":   gorm.Expr("cart_items.quantity + excluded.quantity"),
			"updated_at": time.Now(),
		}),
	}).Create(&item).Error
	if err != nil {
		return nil, fmt.Errorf("failed to upsert cart item: %w", err)
	}

	var stored models.CartItem
	if err := s.db.Where("user_id = ? AND product_id = ? AND variant_id = ?", userID, product.ID, variantID).
		First(&stored).Error; err != nil {
		return nil, fmt.Errorf("failed to load cart item: %w", err)
	}
	return &stored, nil
}

// List returns the user's cart lines with live main-branch stock and the
// current discounted unit price; the stored snapshot rides along for display.
func (s *CartService) List(userID uuid.UUID, page, limit int) ([]dto.CartLine, dto.Pagination, error) {
	page, limit = normalizePage(page, limit)

	var items []models.CartItem
	err := s.db.Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(limit).
		Offset((page - 1) * limit).
		Find(&items).Error
	if err != nil {
		return nil, dto.Pagination{}, fmt.Errorf("failed to load cart: %w", err)
	}

	lines := make([]dto.CartLine, 0, len(items))
	for _, item := range items {
		price, stock, err := s.linePrice(&item)
		if err != nil {
			return nil, dto.Pagination{}, err
		}
		line := dto.CartLine{
			ID:        item.ID,
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			UnitPrice: price,
			LineTotal: price * float64(item.Quantity),
			Stock:     stock,
			Snapshot:  []byte(item.Snapshot),
			CreatedAt: item.CreatedAt,
			UpdatedAt: item.UpdatedAt,
		}
		if item.VariantID != uuid.Nil {
			v := item.VariantID
			line.VariantID = &v
		}
		lines = append(lines, line)
	}

	var total int64
	s.db.Model(&models.CartItem{}).Where("user_id = ?", userID).Count(&total)

	return lines, paginate(page, limit, total), nil
}

// UpdateQuantity sets an owner-scoped cart line's quantity.
func (s *CartService) UpdateQuantity(userID, cartID uuid.UUID, quantity int) (*models.CartItem, error) {
	if quantity < 1 {
		return nil, ErrInvalidQuantity
	}

	var item models.CartItem
	if err := s.db.Where("id = ? AND user_id = ?", cartID, userID).First(&item).Error; err != nil {
		return nil, ErrCartItemNotFound
	}

	if err := s.db.Model(&item).Update("quantity", quantity).Error; err != nil {
		return nil, fmt.Errorf("failed to update cart item: %w", err)
	}
	item.Quantity = quantity
	return &item, nil
}

// Remove deletes an owner-scoped cart line.
func (s *CartService) Remove(userID, cartID uuid.UUID) error {
	result := s.db.Where("id = ? AND user_id = ?", cartID, userID).Delete(&models.CartItem{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete cart item: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrCartItemNotFound
	}
	return nil
}

// Clear removes all of a user's cart lines.
func (s *CartService) Clear(userID uuid.UUID) error {
	return s.db.Where("user_id = ?", userID).Delete(&models.CartItem{}).Error
}

func (s *CartService) Count(userID uuid.UUID) (int64, error) {
	var count int64
	err := s.db.Model(&models.CartItem{}).Where("user_id = ?", userID).Count(&count).Error
	return count, err
}

// Total sums live discounted price × quantity across the cart.
func (s *CartService) Total(userID uuid.UUID) (float64, int, error) {
	var items []models.CartItem
	if err := s.db.Where("user_id = ?", userID).Find(&items).Error; err != nil {
		return 0, 0, fmt.Errorf("failed to load cart: %w", err)
	}

	var total float64
	var count int
	for _, item := range items {
		price, _, err := s.linePrice(&item)
		if err != nil {
			return 0, 0, err
		}
		total += price * float64(item.Quantity)
		count += item.Quantity
	}
	return total, count, nil
}

func (s *CartService) resolveProduct(productID uuid.UUID, variantID *uuid.UUID) (*models.Product, uuid.UUID, error) {
	var product models.Product
	if err := s.db.First(&product, "id = ?", productID).Error; err != nil {
		return nil, uuid.Nil, ErrProductNotFound
	}
	if !product.IsAvailable || product.IsArchived {
		return nil, uuid.Nil, ErrProductUnavailable
	}

	resolved := uuid.Nil
	if variantID != nil && *variantID != uuid.Nil {
		var variant models.ProductVariant
		if err := s.db.Where("id = ? AND product_id = ?", *variantID, productID).First(&variant).Error; err != nil {
			return nil, uuid.Nil, ErrVariantNotFound
		}
		resolved = variant.ID
	}
	return &product, resolved, nil
}

// linePrice resolves the live discounted unit price and main-branch stock
// for a cart line.
func (s *CartService) linePrice(item *models.CartItem) (float64, int, error) {
	var product models.Product
	if err := s.db.First(&product, "id = ?", item.ProductID).Error; err != nil {
		return 0, 0, ErrProductNotFound
	}

	selling := product.SellingPrice
	if item.VariantID != uuid.Nil {
		var variant models.ProductVariant
		if err := s.db.First(&variant, "id = ?", item.VariantID).Error; err == nil {
			selling += variant.PriceDelta
		}
	}

	stock, err := StockFor(s.db, item.ProductID, item.VariantID)
	if err != nil {
		return 0, 0, err
	}
	return DiscountedPrice(selling, product.Discount), stock, nil
}

func normalizePage(page, limit int) (int, int) {
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 10
	}
	return page, limit
}

func paginate(page, limit int, total int64) dto.Pagination {
	return dto.Pagination{
		Page:       page,
		Limit:      limit,
		Total:      total,
		TotalPages: int(math.Ceil(float64(total) / float64(limit))),
	}
}
