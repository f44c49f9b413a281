package services

import (
	"fmt"

	"github.com/finesse-lifestyle/storefront-api/internal/dto"
	"github.com/finesse-lifestyle/storefront-api/internal/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ShopFilter narrows and orders the shop listing.
type ShopFilter struct {
	GroupID    *uuid.UUID
	CategoryID *uuid.UUID
	BrandID    *uuid.UUID
	Tag        string
	MinPrice   *float64
	MaxPrice   *float64
	Sort       string // "price_asc", "price_desc", "latest"
}

type ShopService struct {
	db      *gorm.DB
	catalog *CatalogService
}

func NewShopService(db *gorm.DB, catalog *CatalogService) *ShopService {
	return &ShopService{db: db, catalog: catalog}
}

// Products returns the filtered, sorted shop listing.
func (s *ShopService) Products(filter ShopFilter, page, limit int) ([]dto.FormattedProduct, dto.Pagination, error) {
	page, limit = normalizePage(page, limit)

	query := s.db.Model(&models.Product{}).
		Where("is_available = ? AND is_archived = ?", true, false)

	if filter.GroupID != nil {
		query = query.Where("group_id = ?", *filter.GroupID)
	}
	if filter.CategoryID != nil {
		query = query.Where("category_id = ?", *filter.CategoryID)
	}
	if filter.BrandID != nil {
		query = query.Where("brand_id = ?", *filter.BrandID)
	}
	if filter.Tag != "" {
		query = query.
			Joins("JOIN product_tags ON product_tags.product_id = products.id").
			Joins("JOIN tags ON tags.id = product_tags.tag_id").
			Where("tags.name = ?", filter.Tag)
	}
	if filter.MinPrice != nil {
		query = query.Where("selling_price >= ?", *filter.MinPrice)
	}
	if filter.MaxPrice != nil {
		query = query.Where("selling_price <= ?", *filter.MaxPrice)
	}

	var total int64
	query.Count(&total)

	switch filter.Sort {
	case "price_asc":
		query = query.Order("selling_price ASC")
	case "price_desc":
		query = query.Order("selling_price DESC")
	default:
		query = query.Order("products.created_at DESC")
	}

	var products []models.Product
	err := query.Preload("Brand").Preload("Group").Preload("Category").
		Limit(limit).
		Offset((page - 1) * limit).
		Find(&products).Error
	if err != nil {
		return nil, dto.Pagination{}, fmt.Errorf("failed to load shop products: %w", err)
	}

	formatted, err := s.catalog.formatAll(products, uuid.Nil)
	if err != nil {
		return nil, dto.Pagination{}, err
	}
	return formatted, paginate(page, limit, total), nil
}

func (s *ShopService) Featured(limit int) ([]dto.FormattedProduct, error) {
	return s.flagged("is_featured", limit)
}

func (s *ShopService) Latest(limit int) ([]dto.FormattedProduct, error) {
	if limit < 1 || limit > 24 {
		limit = 8
	}

	var products []models.Product
	err := s.db.Where("is_available = ? AND is_archived = ?", true, false).
		Preload("Brand").Preload("Group").Preload("Category").
		Order("created_at DESC").
		Limit(limit).
		Find(&products).Error
	if err != nil {
		return nil, fmt.Errorf("failed to load latest products: %w", err)
	}
	return s.catalog.formatAll(products, uuid.Nil)
}

func (s *ShopService) flagged(column string, limit int) ([]dto.FormattedProduct, error) {
	if limit < 1 || limit > 24 {
		limit = 8
	}

	var products []models.Product
	err := s.db.Where(column+" = ? AND is_available = ? AND is_archived = ?", true, true, false).
		Preload("Brand").Preload("Group").Preload("Category").
		Order("created_at DESC").
		Limit(limit).
		Find(&products).Error
	if err != nil {
		return nil, fmt.Errorf("failed to load products: %w", err)
	}
	return s.catalog.formatAll(products, uuid.Nil)
}

// Groups returns active catalog groups with their categories nested.
func (s *ShopService) Groups() ([]models.Group, error) {
	var groups []models.Group
	err := s.db.Where("is_active = ?", true).
		Preload("Categories", "is_active = ?", true).
		Order("group_name ASC").
		Find(&groups).Error
	if err != nil {
		return nil, fmt.Errorf("failed to load groups: %w", err)
	}
	return groups, nil
}

// MenuGroups returns the groups mounted under a named menu.
func (s *ShopService) MenuGroups(menuName string) ([]models.Group, error) {
	var groups []models.Group
	err := s.db.Where("menu_name = ? AND is_active = ?", menuName, true).
		Preload("Categories", "is_active = ?", true).
		Order("group_name ASC").
		Find(&groups).Error
	if err != nil {
		return nil, fmt.Errorf("failed to load menu groups: %w", err)
	}
	return groups, nil
}

func (s *ShopService) Brands() ([]models.Brand, error) {
	var brands []models.Brand
	err := s.db.Where("is_active = ?", true).Order("name ASC").Find(&brands).Error
	if err != nil {
		return nil, fmt.Errorf("failed to load brands: %w", err)
	}
	return brands, nil
}

func (s *ShopService) Tags() ([]models.Tag, error) {
	var tags []models.Tag
	err := s.db.Order("name ASC").Find(&tags).Error
	if err != nil {
		return nil, fmt.Errorf("failed to load tags: %w", err)
	}
	return tags, nil
}
