package services

import (
	"errors"
	"fmt"

	"github.com/finesse-lifestyle/storefront-api/internal/dto"
	"github.com/finesse-lifestyle/storefront-api/internal/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

var ErrPageNotFound = errors.New("page not found")

// ContentService serves the informational surface: settings, policy pages,
// FAQ, sliders, menus, contact messages and damage reports.
type ContentService struct {
	db *gorm.DB
}

func NewContentService(db *gorm.DB) *ContentService {
	return &ContentService{db: db}
}

// Settings returns the storefront settings singleton, or an empty object if
// none has been seeded yet.
func (s *ContentService) Settings() ([]byte, error) {
	var setting models.Setting
	if err := s.db.First(&setting).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return []byte("{}"), nil
		}
		return nil, fmt.Errorf("failed to load settings: %w", err)
	}
	return setting.Data, nil
}

func (s *ContentService) Page(routeName string) (*models.Page, error) {
	var page models.Page
	err := s.db.Where("route_name = ? AND is_active = ?", routeName, true).First(&page).Error
	if err != nil {
		return nil, ErrPageNotFound
	}
	return &page, nil
}

func (s *ContentService) Faqs(page, limit int) ([]models.Faq, dto.Pagination, error) {
	page, limit = normalizePage(page, limit)

	var faqs []models.Faq
	err := s.db.Where("is_active = ?", true).
		Order("sort_order ASC").
		Limit(limit).
		Offset((page - 1) * limit).
		Find(&faqs).Error
	if err != nil {
		return nil, dto.Pagination{}, fmt.Errorf("failed to load faqs: %w", err)
	}

	var total int64
	s.db.Model(&models.Faq{}).Where("is_active = ?", true).Count(&total)

	return faqs, paginate(page, limit, total), nil
}

func (s *ContentService) Sliders(kind string) ([]models.Slider, error) {
	var sliders []models.Slider
	err := s.db.Where("kind = ? AND is_active = ?", kind, true).
		Order("sort_order ASC").
		Find(&sliders).Error
	if err != nil {
		return nil, fmt.Errorf("failed to load sliders: %w", err)
	}
	return sliders, nil
}

// MenuSliders returns the front sliders mounted under a named menu.
func (s *ContentService) MenuSliders(menuName string) ([]models.Slider, error) {
	var sliders []models.Slider
	err := s.db.Where("kind = ? AND menu_name = ? AND is_active = ?", models.SliderKindFront, menuName, true).
		Order("sort_order ASC").
		Find(&sliders).Error
	if err != nil {
		return nil, fmt.Errorf("failed to load menu sliders: %w", err)
	}
	return sliders, nil
}

func (s *ContentService) Menus() ([]models.Menu, error) {
	var menus []models.Menu
	err := s.db.Where("is_active = ?", true).Order("sort_order ASC").Find(&menus).Error
	if err != nil {
		return nil, fmt.Errorf("failed to load menus: %w", err)
	}
	return menus, nil
}

func (s *ContentService) StoreContactMessage(req *dto.ContactUsRequest) error {
	if req.Name == "" || req.Message == "" {
		return errors.New("name and message are required")
	}

	message := models.ContactMessage{
		ID:      uuid.New(),
		Name:    req.Name,
		Contact: req.Contact,
		Email:   req.Email,
		Subject: req.Subject,
		Message: req.Message,
	}
	return s.db.Create(&message).Error
}

func (s *ContentService) StoreReport(userID uuid.UUID, req *dto.CreateReportRequest) (*models.DamageReport, error) {
	if req.Details == "" {
		return nil, errors.New("details are required")
	}

	report := models.DamageReport{
		ID:       uuid.New(),
		UserID:   userID,
		OrderNo:  req.OrderNo,
		Subject:  req.Subject,
		Details:  req.Details,
		ImageURL: req.ImageURL,
	}
	if err := s.db.Create(&report).Error; err != nil {
		return nil, fmt.Errorf("failed to create report: %w", err)
	}
	return &report, nil
}

func (s *ContentService) Reports(userID uuid.UUID, page, limit int) ([]models.DamageReport, dto.Pagination, error) {
	page, limit = normalizePage(page, limit)

	var reports []models.DamageReport
	err := s.db.Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(limit).
		Offset((page - 1) * limit).
		Find(&reports).Error
	if err != nil {
		return nil, dto.Pagination{}, fmt.Errorf("failed to load reports: %w", err)
	}

	var total int64
	s.db.Model(&models.DamageReport{}).Where("user_id = ?", userID).Count(&total)

	return reports, paginate(page, limit, total), nil
}
