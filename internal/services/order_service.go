package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/finesse-lifestyle/storefront-api/internal/config"
	"github.com/finesse-lifestyle/storefront-api/internal/dto"
	"github.com/finesse-lifestyle/storefront-api/internal/models"
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

var (
	ErrEmptyCart           = errors.New("cart is empty")
	ErrOrderNotFound       = errors.New("order not found")
	ErrInvalidCoupon       = errors.New("invalid coupon code")
	ErrCouponLimitExceeded = errors.New("coupon usage limit exceeded")
	ErrMinOrderNotMet      = errors.New("order amount below coupon minimum")
	ErrInvalidVoucher      = errors.New("invalid or used gift voucher code")
	ErrAlreadyPaid         = errors.New("order is already paid")
	ErrAlreadyCancelled    = errors.New("order is already cancelled")
	ErrOrderDelivered      = errors.New("cannot cancel delivered order")
)

type OrderService struct {
	db  *gorm.DB
	cfg *config.Config
}

func NewOrderService(db *gorm.DB, cfg *config.Config) *OrderService {
	return &OrderService{db: db, cfg: cfg}
}

// Place runs the whole checkout sequence inside one transaction: price the
// cart, apply coupon and gift voucher, persist header + details with the
// prices captured here, and clear the cart. A failure at any step rolls the
// whole sequence back, so an order can never exist alongside a still-full
// cart or a half-redeemed voucher.
func (s *OrderService) Place(userID uuid.UUID, req *dto.PlaceOrderRequest) (*models.Order, error) {
	var order models.Order

	err := s.db.Transaction(func(tx *gorm.DB) error {
		var items []models.CartItem
		if err := tx.Where("user_id = ?", userID).Find(&items).Error; err != nil {
			return fmt.Errorf("failed to load cart: %w", err)
		}
		if len(items) == 0 {
			return ErrEmptyCart
		}

		var subTotal float64
		details := make([]models.OrderDetail, 0, len(items))
		for _, item := range items {
			var product models.Product
			if err := tx.First(&product, "id = ?", item.ProductID).Error; err != nil {
				return ErrProductNotFound
			}

			selling := product.SellingPrice
			if item.VariantID != uuid.Nil {
				var variant models.ProductVariant
				if err := tx.First(&variant, "id = ?", item.VariantID).Error; err == nil {
					selling += variant.PriceDelta
				}
			}

			unitPrice := DiscountedPrice(selling, product.Discount)
			lineTotal := unitPrice * float64(item.Quantity)
			subTotal += lineTotal

			details = append(details, models.OrderDetail{
				ID:         uuid.New(),
				ProductID:  item.ProductID,
				VariantID:  item.VariantID,
				Quantity:   item.Quantity,
				UnitPrice:  unitPrice,
				TotalPrice: lineTotal,
			})
		}

		var discount float64
		if req.CouponCode != "" {
			coupon, amount, err := evaluateCoupon(tx, req.CouponCode, subTotal)
			if err != nil {
				return err
			}
			discount = amount
			if err := tx.Model(coupon).
				UpdateColumn("used_count", gorm.Expr("used_count + 1")).Error; err != nil {
				return fmt.Errorf("failed to count coupon use: %w", err)
			}
		}

		var voucherAmount float64
		if req.GiftVoucherCode != "" {
			var voucher models.GiftVoucher
			if err := tx.Where("code = ? AND is_used = ?", req.GiftVoucherCode, false).
				First(&voucher).Error; err != nil {
				return ErrInvalidVoucher
			}
			voucherAmount = voucher.Amount
			now := time.Now()
			if err := tx.Model(&voucher).Updates(map[string]interface{}{
				"is_used": true,
				"used_by": userID,
				"used_at": now,
			}).Error; err != nil {
				return fmt.Errorf("failed to redeem voucher: %w", err)
			}
		}

		shippingCost := s.cfg.DefaultShippingCost
		if req.ShippingCost != nil {
			shippingCost = *req.ShippingCost
		}

		// Discounts cannot push the goods total below zero; shipping is
		// still owed.
		goodsTotal := subTotal - discount - voucherAmount
		if goodsTotal < 0 {
			goodsTotal = 0
		}
		grandTotal := goodsTotal + shippingCost

		paymentMethod := req.PaymentMethod
		if paymentMethod == "" {
			paymentMethod = models.PaymentMethodCOD
		}

		order = models.Order{
			ID:              uuid.New(),
			OrderNo:         generateOrderNo(""),
			UserID:          userID,
			Status:          models.OrderStatusPending,
			PaymentStatus:   models.PaymentStatusPending,
			PaymentMethod:   paymentMethod,
			SubTotal:        subTotal,
			Discount:        discount + voucherAmount,
			ShippingCost:    shippingCost,
			GrandTotal:      grandTotal,
			CouponCode:      req.CouponCode,
			GiftVoucherCode: req.GiftVoucherCode,
			ShippingDetails: datatypes.JSON(req.ShippingDetails),
			Notes:           req.Notes,
		}
		if err := tx.Create(&order).Error; err != nil {
			return fmt.Errorf("failed to create order: %w", err)
		}

		for i := range details {
			details[i].OrderID = order.ID
		}
		if err := tx.Create(&details).Error; err != nil {
			return fmt.Errorf("failed to create order details: %w", err)
		}
		order.Details = details

		if err := tx.Where("user_id = ?", userID).Delete(&models.CartItem{}).Error; err != nil {
			return fmt.Errorf("failed to clear cart: %w", err)
		}

		notification := models.Notification{
			ID:     uuid.New(),
			UserID: userID,
			Title:  "Order placed",
			Body:   fmt.Sprintf("Your order %s has been placed successfully.", order.OrderNo),
		}
		return tx.Create(&notification).Error
	})
	if err != nil {
		return nil, err
	}

	return &order, nil
}

// List returns the user's orders newest first, details preloaded.
func (s *OrderService) List(userID uuid.UUID, page, limit int) ([]models.Order, dto.Pagination, error) {
	page, limit = normalizePage(page, limit)

	var orders []models.Order
	err := s.db.Where("user_id = ?", userID).
		Preload("Details").
		Preload("Details.Product").
		Order("created_at DESC").
		Limit(limit).
		Offset((page - 1) * limit).
		Find(&orders).Error
	if err != nil {
		return nil, dto.Pagination{}, fmt.Errorf("failed to load orders: %w", err)
	}

	var total int64
	s.db.Model(&models.Order{}).Where("user_id = ?", userID).Count(&total)

	return orders, paginate(page, limit, total), nil
}

func (s *OrderService) Get(userID, orderID uuid.UUID) (*models.Order, error) {
	var order models.Order
	err := s.db.Where("id = ? AND user_id = ?", orderID, userID).
		Preload("Details").
		Preload("Details.Product").
		First(&order).Error
	if err != nil {
		return nil, ErrOrderNotFound
	}
	return &order, nil
}

// Cancel transitions Pending → Cancelled. Delivered orders cannot be
// cancelled; cancelling twice conflicts.
func (s *OrderService) Cancel(userID, orderID uuid.UUID) error {
	var order models.Order
	if err := s.db.Where("id = ? AND user_id = ?", orderID, userID).First(&order).Error; err != nil {
		return ErrOrderNotFound
	}

	switch order.Status {
	case models.OrderStatusCancelled:
		return ErrAlreadyCancelled
	case models.OrderStatusDelivered:
		return ErrOrderDelivered
	}

	return s.db.Model(&order).Update("status", models.OrderStatusCancelled).Error
}

// PayNow flips paymentStatus to Paid; paying an already-paid order conflicts.
func (s *OrderService) PayNow(userID, orderID uuid.UUID, paymentMethod string) error {
	var order models.Order
	if err := s.db.Where("id = ? AND user_id = ?", orderID, userID).First(&order).Error; err != nil {
		return ErrOrderNotFound
	}

	if order.PaymentStatus == models.PaymentStatusPaid {
		return ErrAlreadyPaid
	}

	updates := map[string]interface{}{"payment_status": models.PaymentStatusPaid}
	if paymentMethod != "" {
		updates["payment_method"] = paymentMethod
	}
	return s.db.Model(&order).Updates(updates).Error
}

// ClearPayment sets paymentStatus back to Pending.
func (s *OrderService) ClearPayment(userID, orderID uuid.UUID) error {
	var order models.Order
	if err := s.db.Where("id = ? AND user_id = ?", orderID, userID).First(&order).Error; err != nil {
		return ErrOrderNotFound
	}
	return s.db.Model(&order).Update("payment_status", models.PaymentStatusPending).Error
}

// MarkDelivered is the admin-side terminal transition.
func (s *OrderService) MarkDelivered(orderID uuid.UUID) error {
	var order models.Order
	if err := s.db.First(&order, "id = ?", orderID).Error; err != nil {
		return ErrOrderNotFound
	}
	if order.Status == models.OrderStatusCancelled {
		return ErrAlreadyCancelled
	}
	return s.db.Model(&order).Update("status", models.OrderStatusDelivered).Error
}

// CheckStock reports main-branch stock against a requested quantity. The
// stock figure is not clamped at zero.
func (s *OrderService) CheckStock(productID, variantID uuid.UUID, quantity int) (*dto.CheckStockResponse, error) {
	stock, err := StockFor(s.db, productID, variantID)
	if err != nil {
		return nil, err
	}
	return &dto.CheckStockResponse{
		Success:   true,
		Available: stock >= quantity,
		Stock:     stock,
		Requested: quantity,
	}, nil
}

// CheckCoupon validates a code against an order amount and returns the
// would-be discount without consuming a use.
func (s *OrderService) CheckCoupon(code string, orderAmount float64) (*models.Coupon, float64, error) {
	return evaluateCoupon(s.db, code, orderAmount)
}

// CheckGiftVoucher validates an unused voucher.
func (s *OrderService) CheckGiftVoucher(code string) (*models.GiftVoucher, error) {
	var voucher models.GiftVoucher
	if err := s.db.Where("code = ? AND is_used = ?", code, false).First(&voucher).Error; err != nil {
		return nil, ErrInvalidVoucher
	}
	return &voucher, nil
}

// evaluateCoupon enforces the active/usage-limit/min-order rules and
// computes the discount: percentage of the amount capped at MaxDiscount, or
// the flat value.
func evaluateCoupon(db *gorm.DB, code string, orderAmount float64) (*models.Coupon, float64, error) {
	var coupon models.Coupon
	if err := db.Where("code = ? AND is_active = ?", code, true).First(&coupon).Error; err != nil {
		return nil, 0, ErrInvalidCoupon
	}

	if coupon.UsageLimit != nil && coupon.UsedCount >= *coupon.UsageLimit {
		return nil, 0, ErrCouponLimitExceeded
	}
	if coupon.MinOrderAmount != nil && orderAmount < *coupon.MinOrderAmount {
		return nil, 0, ErrMinOrderNotMet
	}

	var discount float64
	if coupon.Type == models.CouponTypePercentage {
		discount = orderAmount * coupon.Value / 100
		if coupon.MaxDiscount != nil && discount > *coupon.MaxDiscount {
			discount = *coupon.MaxDiscount
		}
	} else {
		discount = coupon.Value
	}
	return &coupon, discount, nil
}
