package services

import (
	"fmt"
	"time"

	"github.com/finesse-lifestyle/storefront-api/internal/config"
	"github.com/finesse-lifestyle/storefront-api/internal/dto"
	"github.com/finesse-lifestyle/storefront-api/internal/models"
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// PreorderService mirrors the cart/order flow against the preorder tables.
// Preorder lines are priced at the raw selling price (no catalog discount)
// and checkout takes no coupon or voucher.
type PreorderService struct {
	db  *gorm.DB
	cfg *config.Config
}

func NewPreorderService(db *gorm.DB, cfg *config.Config) *PreorderService {
	return &PreorderService{db: db, cfg: cfg}
}

// AddToCart upserts a preorder cart line; the product must be flagged for
// preorder.
func (s *PreorderService) AddToCart(userID uuid.UUID, req *dto.AddToCartRequest) (*models.PreorderCartItem, error) {
	qty := req.Quantity
	if qty == 0 {
		qty = 1
	}
	if qty < 1 {
		return nil, ErrInvalidQuantity
	}

	var product models.Product
	if err := s.db.First(&product, "id = ?", req.ProductID).Error; err != nil {
		return nil, ErrProductNotFound
	}
	if !product.IsPreorder || !product.IsAvailable || product.IsArchived {
		return nil, ErrProductUnavailable
	}

	variantID := uuid.Nil
	if req.VariantID != nil && *req.VariantID != uuid.Nil {
		var variant models.ProductVariant
		if err := s.db.Where("id = ? AND product_id = ?", *req.VariantID, product.ID).First(&variant).Error; err != nil {
			return nil, ErrVariantNotFound
		}
		variantID = variant.ID
	}

	item := models.PreorderCartItem{
		ID:        uuid.New(),
		UserID:    userID,
		ProductID: product.ID,
		VariantID: variantID,
		Quantity:  qty,
		Snapshot:  datatypes.JSON(req.Snapshot),
	}

	err := s.db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "user_id"}, {Name: "product_id"}, {Name: "variant_id"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"quantity":   gorm.Expr("preorder_cart_items.quantity + excluded.quantity"),
			"updated_at": time.Now(),
		}),
	}).Create(&item).Error
	if err != nil {
		return nil, fmt.Errorf("failed to upsert preorder cart item: %w", err)
	}

	var stored models.PreorderCartItem
	if err := s.db.Where("user_id = ? AND product_id = ? AND variant_id = ?", userID, product.ID, variantID).
		First(&stored).Error; err != nil {
		return nil, fmt.Errorf("failed to load preorder cart item: %w", err)
	}
	return &stored, nil
}

func (s *PreorderService) ListCart(userID uuid.UUID) ([]models.PreorderCartItem, error) {
	var items []models.PreorderCartItem
	err := s.db.Where("user_id = ?", userID).Order("created_at DESC").Find(&items).Error
	if err != nil {
		return nil, fmt.Errorf("failed to load preorder cart: %w", err)
	}
	return items, nil
}

func (s *PreorderService) UpdateCart(userID, cartID uuid.UUID, quantity int) (*models.PreorderCartItem, error) {
	if quantity < 1 {
		return nil, ErrInvalidQuantity
	}

	var item models.PreorderCartItem
	if err := s.db.Where("id = ? AND user_id = ?", cartID, userID).First(&item).Error; err != nil {
		return nil, ErrCartItemNotFound
	}

	if err := s.db.Model(&item).Update("quantity", quantity).Error; err != nil {
		return nil, fmt.Errorf("failed to update preorder cart item: %w", err)
	}
	item.Quantity = quantity
	return &item, nil
}

func (s *PreorderService) RemoveFromCart(userID, cartID uuid.UUID) error {
	result := s.db.Where("id = ? AND user_id = ?", cartID, userID).Delete(&models.PreorderCartItem{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete preorder cart item: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrCartItemNotFound
	}
	return nil
}

// Place creates a preorder from the preorder cart within one transaction
// and clears the cart. Totals are computed server-side from the live rows.
func (s *PreorderService) Place(userID uuid.UUID, req *dto.PlaceOrderRequest) (*models.Preorder, error) {
	var preorder models.Preorder

	err := s.db.Transaction(func(tx *gorm.DB) error {
		var items []models.PreorderCartItem
		if err := tx.Where("user_id = ?", userID).Find(&items).Error; err != nil {
			return fmt.Errorf("failed to load preorder cart: %w", err)
		}
		if len(items) == 0 {
			return ErrEmptyCart
		}

		var subTotal float64
		details := make([]models.PreorderDetail, 0, len(items))
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

			lineTotal := selling * float64(item.Quantity)
			subTotal += lineTotal

			details = append(details, models.PreorderDetail{
				ID:         uuid.New(),
				ProductID:  item.ProductID,
				VariantID:  item.VariantID,
				Quantity:   item.Quantity,
				UnitPrice:  selling,
				TotalPrice: lineTotal,
			})
		}

		shippingCost := s.cfg.DefaultShippingCost
		if req.ShippingCost != nil {
			shippingCost = *req.ShippingCost
		}

		paymentMethod := req.PaymentMethod
		if paymentMethod == "" {
			paymentMethod = models.PaymentMethodCOD
		}

		preorder = models.Preorder{
			ID:              uuid.New(),
			OrderNo:         generateOrderNo("PO-"),
			UserID:          userID,
			Status:          models.OrderStatusPending,
			PaymentStatus:   models.PaymentStatusPending,
			PaymentMethod:   paymentMethod,
			SubTotal:        subTotal,
			ShippingCost:    shippingCost,
			GrandTotal:      subTotal + shippingCost,
			ShippingDetails: datatypes.JSON(req.ShippingDetails),
			Notes:           req.Notes,
		}
		if err := tx.Create(&preorder).Error; err != nil {
			return fmt.Errorf("failed to create preorder: %w", err)
		}

		for i := range details {
			details[i].PreorderID = preorder.ID
		}
		if err := tx.Create(&details).Error; err != nil {
			return fmt.Errorf("failed to create preorder details: %w", err)
		}
		preorder.Details = details

		return tx.Where("user_id = ?", userID).Delete(&models.PreorderCartItem{}).Error
	})
	if err != nil {
		return nil, err
	}

	return &preorder, nil
}

func (s *PreorderService) List(userID uuid.UUID, page, limit int) ([]models.Preorder, dto.Pagination, error) {
	page, limit = normalizePage(page, limit)

	var preorders []models.Preorder
	err := s.db.Where("user_id = ?", userID).
		Preload("Details").
		Preload("Details.Product").
		Order("created_at DESC").
		Limit(limit).
		Offset((page - 1) * limit).
		Find(&preorders).Error
	if err != nil {
		return nil, dto.Pagination{}, fmt.Errorf("failed to load preorders: %w", err)
	}

	var total int64
	s.db.Model(&models.Preorder{}).Where("user_id = ?", userID).Count(&total)

	return preorders, paginate(page, limit, total), nil
}

func (s *PreorderService) Get(userID, preorderID uuid.UUID) (*models.Preorder, error) {
	var preorder models.Preorder
	err := s.db.Where("id = ? AND user_id = ?", preorderID, userID).
		Preload("Details").
		Preload("Details.Product").
		First(&preorder).Error
	if err != nil {
		return nil, ErrOrderNotFound
	}
	return &preorder, nil
}

func (s *PreorderService) Cancel(userID, preorderID uuid.UUID) error {
	var preorder models.Preorder
	if err := s.db.Where("id = ? AND user_id = ?", preorderID, userID).First(&preorder).Error; err != nil {
		return ErrOrderNotFound
	}

	switch preorder.Status {
	case models.OrderStatusCancelled:
		return ErrAlreadyCancelled
	case models.OrderStatusDelivered:
		return ErrOrderDelivered
	}

	return s.db.Model(&preorder).Update("status", models.OrderStatusCancelled).Error
}

func (s *PreorderService) PayNow(userID, preorderID uuid.UUID, paymentMethod string) error {
	var preorder models.Preorder
	if err := s.db.Where("id = ? AND user_id = ?", preorderID, userID).First(&preorder).Error; err != nil {
		return ErrOrderNotFound
	}

	if preorder.PaymentStatus == models.PaymentStatusPaid {
		return ErrAlreadyPaid
	}

	updates := map[string]interface{}{"payment_status": models.PaymentStatusPaid}
	if paymentMethod != "" {
		updates["payment_method"] = paymentMethod
	}
	return s.db.Model(&preorder).Updates(updates).Error
}

func (s *PreorderService) ClearPayment(userID, preorderID uuid.UUID) error {
	var preorder models.Preorder
	if err := s.db.Where("id = ? AND user_id = ?", preorderID, userID).First(&preorder).Error; err != nil {
		return ErrOrderNotFound
	}
	return s.db.Model(&preorder).Update("payment_status", models.PaymentStatusPending).Error
}
