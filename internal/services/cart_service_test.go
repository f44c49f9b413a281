package services

import (
	"encoding/json"
	"testing"

	"github.com/finesse-lifestyle/storefront-api/internal/dto"
	"github.com/finesse-lifestyle/storefront-api/internal/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCartAddMergesDuplicateLines(t *testing.T) {
	db := newTestDB(t)
	seedMainStore(t, db)
	product := seedProduct(t, db, "Hoodie", 120, 0)
	svc := NewCartService(db)
	userID := uuid.New()

	first, err := svc.Add(userID, &dto.AddToCartRequest{ProductID: product.ID, Quantity: 2})
	require.NoError(t, err)
	assert.Equal(t, 2, first.Quantity)

	second, err := svc.Add(userID, &dto.AddToCartRequest{ProductID: product.ID, Quantity: 3})
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, 5, second.Quantity)

	count, err := svc.Count(userID)
	require.NoError(t, err)
	assert.EqualValues(t, 1, count)
}

func TestCartAddSeparateLinesPerVariant(t *testing.T) {
	db := newTestDB(t)
	seedMainStore(t, db)
	product := seedProduct(t, db, "Tee", 50, 0)
	variant := models.ProductVariant{
		ID:        uuid.New(),
		ProductID: product.ID,
		SKU:       "TEE-M",
	}
	require.NoError(t, db.Create(&variant).Error)

	svc := NewCartService(db)
	userID := uuid.New()

	_, err := svc.Add(userID, &dto.AddToCartRequest{ProductID: product.ID, Quantity: 1})
	require.NoError(t, err)
	_, err = svc.Add(userID, &dto.AddToCartRequest{ProductID: product.ID, VariantID: &variant.ID, Quantity: 1})
	require.NoError(t, err)

	count, err := svc.Count(userID)
	require.NoError(t, err)
	assert.EqualValues(t, 2, count)
}

func TestCartAddValidation(t *testing.T) {
	db := newTestDB(t)
	seedMainStore(t, db)
	svc := NewCartService(db)
	userID := uuid.New()

	_, err := svc.Add(userID, &dto.AddToCartRequest{ProductID: uuid.New(), Quantity: 1})
	assert.ErrorIs(t, err, ErrProductNotFound)

	archived := seedProduct(t, db, "Archived", 10, 0)
	require.NoError(t, db.Model(archived).Update("is_archived", true).Error)
	_, err = svc.Add(userID, &dto.AddToCartRequest{ProductID: archived.ID, Quantity: 1})
	assert.ErrorIs(t, err, ErrProductUnavailable)

	live := seedProduct(t, db, "Live", 10, 0)
	_, err = svc.Add(userID, &dto.AddToCartRequest{ProductID: live.ID, Quantity: -2})
	assert.ErrorIs(t, err, ErrInvalidQuantity)

	bogus := uuid.New()
	_, err = svc.Add(userID, &dto.AddToCartRequest{ProductID: live.ID, VariantID: &bogus, Quantity: 1})
	assert.ErrorIs(t, err, ErrVariantNotFound)
}

func TestCartAddDefaultsQuantityToOne(t *testing.T) {
	db := newTestDB(t)
	seedMainStore(t, db)
	product := seedProduct(t, db, "Single", 30, 0)
	svc := NewCartService(db)

	item, err := svc.Add(uuid.New(), &dto.AddToCartRequest{ProductID: product.ID})
	require.NoError(t, err)
	assert.Equal(t, 1, item.Quantity)
}

func TestCartListCarriesSnapshotAndLivePrice(t *testing.T) {
	db := newTestDB(t)
	storeID := seedMainStore(t, db)
	product := seedProduct(t, db, "Sneaker", 200, 20)
	seedPurchase(t, db, storeID, product.ID, uuid.Nil, 9)
	svc := NewCartService(db)
	userID := uuid.New()

	snapshot := json.RawMessage(`{"color":"red"}`)
	_, err := svc.Add(userID, &dto.AddToCartRequest{ProductID: product.ID, Quantity: 2, Snapshot: snapshot})
	require.NoError(t, err)

	lines, pagination, err := svc.List(userID, 1, 10)
	require.NoError(t, err)
	require.Len(t, lines, 1)

	// 20% of 200 = 40, so the live unit price is 160.
	assert.Equal(t, 160.0, lines[0].UnitPrice)
	assert.Equal(t, 320.0, lines[0].LineTotal)
	assert.Equal(t, 9, lines[0].Stock)
	assert.JSONEq(t, `{"color":"red"}`, string(lines[0].Snapshot))
	assert.EqualValues(t, 1, pagination.Total)
}

func TestCartUpdateRemoveOwnerScoped(t *testing.T) {
	db := newTestDB(t)
	seedMainStore(t, db)
	product := seedProduct(t, db, "Cap", 25, 0)
	svc := NewCartService(db)
	owner := uuid.New()
	stranger := uuid.New()

	item, err := svc.Add(owner, &dto.AddToCartRequest{ProductID: product.ID, Quantity: 1})
	require.NoError(t, err)

	_, err = svc.UpdateQuantity(stranger, item.ID, 5)
	assert.ErrorIs(t, err, ErrCartItemNotFound)

	updated, err := svc.UpdateQuantity(owner, item.ID, 5)
	require.NoError(t, err)
	assert.Equal(t, 5, updated.Quantity)

	_, err = svc.UpdateQuantity(owner, item.ID, 0)
	assert.ErrorIs(t, err, ErrInvalidQuantity)

	assert.ErrorIs(t, svc.Remove(stranger, item.ID), ErrCartItemNotFound)
	require.NoError(t, svc.Remove(owner, item.ID))
	assert.ErrorIs(t, svc.Remove(owner, item.ID), ErrCartItemNotFound)
}

func TestCartTotal(t *testing.T) {
	db := newTestDB(t)
	seedMainStore(t, db)
	a := seedProduct(t, db, "A", 100, 10) // 90 each
	b := seedProduct(t, db, "B", 40, 0)   // 40 each
	svc := NewCartService(db)
	userID := uuid.New()

	_, err := svc.Add(userID, &dto.AddToCartRequest{ProductID: a.ID, Quantity: 2})
	require.NoError(t, err)
	_, err = svc.Add(userID, &dto.AddToCartRequest{ProductID: b.ID, Quantity: 1})
	require.NoError(t, err)

	total, items, err := svc.Total(userID)
	require.NoError(t, err)
	assert.Equal(t, 220.0, total)
	assert.Equal(t, 3, items)
}

func TestCartClear(t *testing.T) {
	db := newTestDB(t)
	seedMainStore(t, db)
	product := seedProduct(t, db, "Gone", 10, 0)
	svc := NewCartService(db)
	userID := uuid.New()

	_, err := svc.Add(userID, &dto.AddToCartRequest{ProductID: product.ID, Quantity: 4})
	require.NoError(t, err)

	require.NoError(t, svc.Clear(userID))
	count, err := svc.Count(userID)
	require.NoError(t, err)
	assert.EqualValues(t, 0, count)
}
