package services

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/finesse-lifestyle/storefront-api/internal/models"
	"github.com/google/uuid"
	"github.com/tealeg/xlsx"
	"gorm.io/gorm"
)

var (
	ErrCouponCodeTaken  = errors.New("coupon code already exists")
	ErrVoucherCodeTaken = errors.New("gift voucher code already exists")
	ErrCouponNotFound   = errors.New("coupon not found")
	ErrVoucherNotFound  = errors.New("gift voucher not found")
)

type AdminService struct {
	db *gorm.DB
}

func NewAdminService(db *gorm.DB) *AdminService {
	return &AdminService{db: db}
}

// CreateCoupon registers a new coupon code.
func (s *AdminService) CreateCoupon(code, couponType string, value float64, maxDiscount, minOrderAmount *float64, usageLimit *int) (*models.Coupon, error) {
	code = strings.TrimSpace(code)
	if code == "" || value <= 0 {
		return nil, ErrInvalidCoupon
	}
	if couponType != models.CouponTypePercentage && couponType != models.CouponTypeFixed {
		return nil, ErrInvalidCoupon
	}

	coupon := models.Coupon{
		ID:             uuid.New(),
		Code:           code,
		Type:           couponType,
		Value:          value,
		MaxDiscount:    maxDiscount,
		MinOrderAmount: minOrderAmount,
		UsageLimit:     usageLimit,
		IsActive:       true,
	}
	if err := s.db.Create(&coupon).Error; err != nil {
		if strings.Contains(err.Error(), "duplicate") || strings.Contains(err.Error(), "UNIQUE") {
			return nil, ErrCouponCodeTaken
		}
		return nil, fmt.Errorf("failed to create coupon: %w", err)
	}
	return &coupon, nil
}

func (s *AdminService) DeactivateCoupon(code string) error {
	result := s.db.Model(&models.Coupon{}).
		Where("code = ?", strings.TrimSpace(code)).
		Update("is_active", false)
	if result.Error != nil {
		return fmt.Errorf("failed to deactivate coupon: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrCouponNotFound
	}
	return nil
}

func (s *AdminService) ListCoupons() ([]models.Coupon, error) {
	var coupons []models.Coupon
	if err := s.db.Order("created_at DESC").Find(&coupons).Error; err != nil {
		return nil, fmt.Errorf("failed to load coupons: %w", err)
	}
	return coupons, nil
}

// CreateGiftVoucher registers a single-use voucher credit.
func (s *AdminService) CreateGiftVoucher(code string, amount float64) (*models.GiftVoucher, error) {
	code = strings.TrimSpace(code)
	if code == "" || amount <= 0 {
		return nil, ErrInvalidVoucher
	}

	voucher := models.GiftVoucher{
		ID:     uuid.New(),
		Code:   code,
		Amount: amount,
	}
	if err := s.db.Create(&voucher).Error; err != nil {
		if strings.Contains(err.Error(), "duplicate") || strings.Contains(err.Error(), "UNIQUE") {
			return nil, ErrVoucherCodeTaken
		}
		return nil, fmt.Errorf("failed to create gift voucher: %w", err)
	}
	return &voucher, nil
}

func (s *AdminService) ListGiftVouchers() ([]models.GiftVoucher, error) {
	var vouchers []models.GiftVoucher
	if err := s.db.Order("created_at DESC").Find(&vouchers).Error; err != nil {
		return nil, fmt.Errorf("failed to load gift vouchers: %w", err)
	}
	return vouchers, nil
}

// ExportOrders writes the full order history as an xlsx spreadsheet.
func (s *AdminService) ExportOrders(w io.Writer) error {
	var orders []models.Order
	if err := s.db.Preload("User").Preload("Details").Order("created_at DESC").Find(&orders).Error; err != nil {
		return fmt.Errorf("failed to load orders: %w", err)
	}

	file := xlsx.NewFile()
	sheet, err := file.AddSheet("Orders")
	if err != nil {
		return fmt.Errorf("failed to create sheet: %w", err)
	}

	headers := []string{
		"OrderNo", "Contact", "Status", "PaymentStatus", "PaymentMethod",
		"Items", "SubTotal", "Discount", "ShippingCost", "GrandTotal",
		"CouponCode", "GiftVoucherCode", "CreatedAt",
	}
	headerRow := sheet.AddRow()
	for _, h := range headers {
		headerRow.AddCell().SetValue(h)
	}

	for _, o := range orders {
		contact := ""
		if o.User != nil {
			contact = o.User.Contact
		}
		items := 0
		for _, d := range o.Details {
			items += d.Quantity
		}

		row := sheet.AddRow()
		row.AddCell().SetValue(o.OrderNo)
		row.AddCell().SetValue(contact)
		row.AddCell().SetValue(o.Status)
		row.AddCell().SetValue(o.PaymentStatus)
		row.AddCell().SetValue(o.PaymentMethod)
		row.AddCell().SetValue(items)
		row.AddCell().SetValue(o.SubTotal)
		row.AddCell().SetValue(o.Discount)
		row.AddCell().SetValue(o.ShippingCost)
		row.AddCell().SetValue(o.GrandTotal)
		row.AddCell().SetValue(o.CouponCode)
		row.AddCell().SetValue(o.GiftVoucherCode)
		row.AddCell().SetValue(o.CreatedAt.Format(time.DateTime))
	}

	return file.Write(w)
}

// ExportProducts writes the catalog as an xlsx spreadsheet, one row per
// product with its live discounted price and main-branch stock.
func (s *AdminService) ExportProducts(w io.Writer) error {
	var products []models.Product
	if err := s.db.Preload("Brand").Preload("Category").Order("created_at DESC").Find(&products).Error; err != nil {
		return fmt.Errorf("failed to load products: %w", err)
	}

	file := xlsx.NewFile()
	sheet, err := file.AddSheet("Products")
	if err != nil {
		return fmt.Errorf("failed to create sheet: %w", err)
	}

	headers := []string{
		"Name", "Slug", "Brand", "Category", "SellingPrice", "Discount",
		"DiscountedPrice", "Stock", "Preorder", "Available", "Archived", "CreatedAt",
	}
	headerRow := sheet.AddRow()
	for _, h := range headers {
		headerRow.AddCell().SetValue(h)
	}

	for _, p := range products {
		brand := ""
		if p.Brand != nil {
			brand = p.Brand.Name
		}
		category := ""
		if p.Category != nil {
			category = p.Category.CatName
		}
		stock, err := StockFor(s.db, p.ID, uuid.Nil)
		if err != nil {
			return fmt.Errorf("failed to compute stock for %s: %w", p.Slug, err)
		}

		row := sheet.AddRow()
		row.AddCell().SetValue(p.ProductName)
		row.AddCell().SetValue(p.Slug)
		row.AddCell().SetValue(brand)
		row.AddCell().SetValue(category)
		row.AddCell().SetValue(p.SellingPrice)
		row.AddCell().SetValue(p.Discount)
		row.AddCell().SetValue(DiscountedPrice(p.SellingPrice, p.Discount))
		row.AddCell().SetValue(stock)
		row.AddCell().SetValue(p.IsPreorder)
		row.AddCell().SetValue(p.IsAvailable)
		row.AddCell().SetValue(p.IsArchived)
		row.AddCell().SetValue(p.CreatedAt.Format(time.DateTime))
	}

	return file.Write(w)
}
