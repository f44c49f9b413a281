package services

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiscountedPrice(t *testing.T) {
	// 15% of 999 = 149.85, rounded up to 150
	assert.Equal(t, 849.0, DiscountedPrice(999, 15))

	// exact division needs no rounding
	assert.Equal(t, 90.0, DiscountedPrice(100, 10))

	// zero and negative discounts leave the price untouched
	assert.Equal(t, 100.0, DiscountedPrice(100, 0))
	assert.Equal(t, 100.0, DiscountedPrice(100, -5))

	// 100% discount floors at zero
	assert.Equal(t, 0.0, DiscountedPrice(250, 100))
}

func TestStockForMainBranchOnly(t *testing.T) {
	db := newTestDB(t)
	mainID := seedMainStore(t, db)
	product := seedProduct(t, db, "Shirt", 100, 0)

	// Another branch whose movements must not count.
	otherStore := uuid.New()
	require.NoError(t, db.Exec(
		`INSERT INTO stores (id, name, main_branch, is_active) VALUES (?, ?, ?, ?)`,
		otherStore, "Outlet", false, true,
	).Error)

	seedPurchase(t, db, mainID, product.ID, uuid.Nil, 20)
	seedSale(t, db, mainID, product.ID, uuid.Nil, 7)
	seedPurchase(t, db, otherStore, product.ID, uuid.Nil, 100)

	stock, err := StockFor(db, product.ID, uuid.Nil)
	require.NoError(t, err)
	assert.Equal(t, 13, stock)
}

func TestStockForNoRows(t *testing.T) {
	db := newTestDB(t)
	seedMainStore(t, db)
	product := seedProduct(t, db, "Fresh", 100, 0)

	stock, err := StockFor(db, product.ID, uuid.Nil)
	require.NoError(t, err)
	assert.Equal(t, 0, stock)
}

func TestStockForNegativeNotClamped(t *testing.T) {
	db := newTestDB(t)
	mainID := seedMainStore(t, db)
	product := seedProduct(t, db, "Oversold", 100, 0)

	seedPurchase(t, db, mainID, product.ID, uuid.Nil, 3)
	seedSale(t, db, mainID, product.ID, uuid.Nil, 8)

	stock, err := StockFor(db, product.ID, uuid.Nil)
	require.NoError(t, err)
	assert.Equal(t, -5, stock)
}

func TestStockForVariantScoped(t *testing.T) {
	db := newTestDB(t)
	mainID := seedMainStore(t, db)
	product := seedProduct(t, db, "Variant", 100, 0)
	variantA := uuid.New()
	variantB := uuid.New()

	seedPurchase(t, db, mainID, product.ID, variantA, 10)
	seedPurchase(t, db, mainID, product.ID, variantB, 5)
	seedSale(t, db, mainID, product.ID, variantA, 4)

	stock, err := StockFor(db, product.ID, variantA)
	require.NoError(t, err)
	assert.Equal(t, 6, stock)

	// Product-wide query still sees every variant.
	stock, err = StockFor(db, product.ID, uuid.Nil)
	require.NoError(t, err)
	assert.Equal(t, 11, stock)
}

func TestNumericToken(t *testing.T) {
	token, err := NumericToken(6)
	require.NoError(t, err)
	require.Len(t, token, 6)
	for _, r := range token {
		assert.True(t, r >= '0' && r <= '9')
	}
}

func TestGenerateOrderNo(t *testing.T) {
	no := generateOrderNo("PO-")
	assert.True(t, len(no) > 7)
	assert.Equal(t, "PO-", no[:3])
}
