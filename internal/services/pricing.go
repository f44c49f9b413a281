package services

import (
	"crypto/rand"
	"fmt"
	"math"
	"math/big"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// DiscountedPrice applies the canonical rounding rule: the discount amount
// is rounded UP to the next whole unit, so the final price only ever moves
// in the customer's favour.
func DiscountedPrice(sellingPrice, discountPct float64) float64 {
	if discountPct <= 0 {
		return sellingPrice
	}
	return sellingPrice - math.Ceil(discountPct*sellingPrice/100)
}

// StockFor computes purchased − sold at the main-branch store for a product,
// or for a single variant when variantID is not uuid.Nil. A product with no
// stock rows yields 0. The result is NOT clamped: a negative value signals a
// data inconsistency (more sold than purchased) and is passed through for
// callers to surface.
func StockFor(db *gorm.DB, productID, variantID uuid.UUID) (int, error) {
	var purchased, sold int64

	purchaseQ := db.Table("purchases").
		Joins("JOIN stores ON stores.id = purchases.store_id").
		Where("stores.main_branch = ?", true).
		Where("purchases.product_id = ?", productID)
	saleQ := db.Table("sales").
		Joins("JOIN stores ON stores.id = sales.store_id").
		Where("stores.main_branch = ?", true).
		Where("sales.product_id = ?", productID)

	if variantID != uuid.Nil {
		purchaseQ = purchaseQ.Where("purchases.variant_id = ?", variantID)
		saleQ = saleQ.Where("sales.variant_id = ?", variantID)
	}

	if err := purchaseQ.Select("COALESCE(SUM(purchases.quantity), 0)").Scan(&purchased).Error; err != nil {
		return 0, fmt.Errorf("failed to sum purchases: %w", err)
	}
	if err := saleQ.Select("COALESCE(SUM(sales.quantity), 0)").Scan(&sold).Error; err != nil {
		return 0, fmt.Errorf("failed to sum sales: %w", err)
	}

	return int(purchased - sold), nil
}

// NumericToken returns a random token of the given length drawn from digits,
// used for SMS activation and password-reset codes.
func NumericToken(length int) (string, error) {
	var sb strings.Builder
	for i := 0; i < length; i++ {
		n, err := rand.Int(rand.Reader, big.NewInt(10))
		if err != nil {
			return "", fmt.Errorf("failed to generate token: %w", err)
		}
		sb.WriteByte(byte('0' + n.Int64()))
	}
	return sb.String(), nil
}

// generateOrderNo builds a unique, human-quotable order number.
func generateOrderNo(prefix string) string {
	suffix, err := NumericToken(4)
	if err != nil {
		suffix = "0000"
	}
	return prefix + strings.ToUpper(strconv.FormatInt(time.Now().UnixMilli(), 36)) + suffix
}
