package services

import (
	"strings"
	"testing"

	"github.com/finesse-lifestyle/storefront-api/internal/dto"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPreorderCartRequiresPreorderFlag(t *testing.T) {
	db := newTestDB(t)
	seedMainStore(t, db)
	regular := seedProduct(t, db, "Regular", 100, 0)
	svc := NewPreorderService(db, testConfig())

	_, err := svc.AddToCart(uuid.New(), &dto.AddToCartRequest{ProductID: regular.ID, Quantity: 1})
	assert.ErrorIs(t, err, ErrProductUnavailable)
}

func TestPreorderCartUpsertMerges(t *testing.T) {
	db := newTestDB(t)
	seedMainStore(t, db)
	product := seedProduct(t, db, "Drop", 300, 0)
	require.NoError(t, db.Model(product).Update("is_preorder", true).Error)
	svc := NewPreorderService(db, testConfig())
	userID := uuid.New()

	first, err := svc.AddToCart(userID, &dto.AddToCartRequest{ProductID: product.ID, Quantity: 1})
	require.NoError(t, err)
	second, err := svc.AddToCart(userID, &dto.AddToCartRequest{ProductID: product.ID, Quantity: 2})
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, 3, second.Quantity)

	items, err := svc.ListCart(userID)
	require.NoError(t, err)
	assert.Len(t, items, 1)
}

func TestPreorderPlaceUsesRawSellingPrice(t *testing.T) {
	db := newTestDB(t)
	seedMainStore(t, db)
	// Catalog discount must NOT apply to preorders.
	product := seedProduct(t, db, "Limited", 500, 25)
	require.NoError(t, db.Model(product).Update("is_preorder", true).Error)
	svc := NewPreorderService(db, testConfig())
	userID := uuid.New()

	_, err := svc.AddToCart(userID, &dto.AddToCartRequest{ProductID: product.ID, Quantity: 2})
	require.NoError(t, err)

	preorder, err := svc.Place(userID, &dto.PlaceOrderRequest{})
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(preorder.OrderNo, "PO-"))
	assert.Equal(t, 1000.0, preorder.SubTotal)
	assert.Equal(t, 1010.0, preorder.GrandTotal) // default 10 shipping
	require.Len(t, preorder.Details, 1)
	assert.Equal(t, 500.0, preorder.Details[0].UnitPrice)

	// Cart cleared inside the same transaction.
	items, err := svc.ListCart(userID)
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestPreorderPlaceEmptyCart(t *testing.T) {
	db := newTestDB(t)
	svc := NewPreorderService(db, testConfig())

	_, err := svc.Place(uuid.New(), &dto.PlaceOrderRequest{})
	assert.ErrorIs(t, err, ErrEmptyCart)
}

func TestPreorderLifecycle(t *testing.T) {
	db := newTestDB(t)
	seedMainStore(t, db)
	product := seedProduct(t, db, "Lifecycle", 100, 0)
	require.NoError(t, db.Model(product).Update("is_preorder", true).Error)
	svc := NewPreorderService(db, testConfig())
	userID := uuid.New()

	_, err := svc.AddToCart(userID, &dto.AddToCartRequest{ProductID: product.ID, Quantity: 1})
	require.NoError(t, err)
	preorder, err := svc.Place(userID, &dto.PlaceOrderRequest{})
	require.NoError(t, err)

	require.NoError(t, svc.PayNow(userID, preorder.ID, "nagad"))
	assert.ErrorIs(t, svc.PayNow(userID, preorder.ID, ""), ErrAlreadyPaid)
	require.NoError(t, svc.ClearPayment(userID, preorder.ID))

	require.NoError(t, svc.Cancel(userID, preorder.ID))
	assert.ErrorIs(t, svc.Cancel(userID, preorder.ID), ErrAlreadyCancelled)

	_, err = svc.Get(uuid.New(), preorder.ID)
	assert.ErrorIs(t, err, ErrOrderNotFound)
}
