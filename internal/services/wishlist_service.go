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
	ErrWishlistExists   = errors.New("product is already in wishlist")
	ErrWishlistNotFound = errors.New("wishlist item not found")
)

type WishlistService struct {
	db      *gorm.DB
	catalog *CatalogService
}

func NewWishlistService(db *gorm.DB, catalog *CatalogService) *WishlistService {
	return &WishlistService{db: db, catalog: catalog}
}

func (s *WishlistService) List(userID uuid.UUID, page, limit int) ([]dto.FormattedProduct, dto.Pagination, error) {
	page, limit = normalizePage(page, limit)

	var items []models.WishlistItem
	err := s.db.Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(limit).
		Offset((page - 1) * limit).
		Find(&items).Error
	if err != nil {
		return nil, dto.Pagination{}, fmt.Errorf("failed to load wishlist: %w", err)
	}

	formatted := make([]dto.FormattedProduct, 0, len(items))
	for _, item := range items {
		var product models.Product
		if err := s.db.Preload("Brand").Preload("Group").Preload("Category").
			First(&product, "id = ?", item.ProductID).Error; err != nil {
			continue // product removed from catalog since
		}
		f, err := s.catalog.format(&product, userID)
		if err != nil {
			return nil, dto.Pagination{}, err
		}
		formatted = append(formatted, *f)
	}

	var total int64
	s.db.Model(&models.WishlistItem{}).Where("user_id = ?", userID).Count(&total)

	return formatted, paginate(page, limit, total), nil
}

func (s *WishlistService) Add(userID, productID uuid.UUID) (*models.WishlistItem, error) {
	var product models.Product
	if err := s.db.First(&product, "id = ?", productID).Error; err != nil {
		return nil, ErrProductNotFound
	}

	var existing models.WishlistItem
	if err := s.db.Where("user_id = ? AND product_id = ?", userID, productID).
		First(&existing).Error; err == nil {
		return nil, ErrWishlistExists
	}

	item := models.WishlistItem{
		ID:        uuid.New(),
		UserID:    userID,
		ProductID: productID,
	}
	if err := s.db.Create(&item).Error; err != nil {
		return nil, fmt.Errorf("failed to add wishlist item: %w", err)
	}
	return &item, nil
}

func (s *WishlistService) Remove(userID, itemID uuid.UUID) error {
	result := s.db.Where("id = ? AND user_id = ?", itemID, userID).Delete(&models.WishlistItem{})
	if result.Error != nil {
		return fmt.Errorf("failed to remove wishlist item: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrWishlistNotFound
	}
	return nil
}

func (s *WishlistService) Count(userID uuid.UUID) (int64, error) {
	var count int64
	err := s.db.Model(&models.WishlistItem{}).Where("user_id = ?", userID).Count(&count).Error
	return count, err
}

func (s *WishlistService) Check(userID, productID uuid.UUID) (bool, error) {
	var count int64
	err := s.db.Model(&models.WishlistItem{}).
		Where("user_id = ? AND product_id = ?", userID, productID).
		Count(&count).Error
	return count > 0, err
}
