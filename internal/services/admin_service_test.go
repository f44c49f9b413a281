package services

import (
	"bytes"
	"testing"

	"github.com/finesse-lifestyle/storefront-api/internal/dto"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateCouponValidation(t *testing.T) {
	db := newTestDB(t)
	svc := NewAdminService(db)

	_, err := svc.CreateCoupon("", "fixed", 10, nil, nil, nil)
	assert.ErrorIs(t, err, ErrInvalidCoupon)
	_, err = svc.CreateCoupon("SALE", "fixed", 0, nil, nil, nil)
	assert.ErrorIs(t, err, ErrInvalidCoupon)
	_, err = svc.CreateCoupon("SALE", "bogo", 10, nil, nil, nil)
	assert.ErrorIs(t, err, ErrInvalidCoupon)

	coupon, err := svc.CreateCoupon("  SALE10  ", "percentage", 10, floatPtr(50), nil, intPtr(100))
	require.NoError(t, err)
	assert.Equal(t, "SALE10", coupon.Code)
	assert.True(t, coupon.IsActive)

	_, err = svc.CreateCoupon("SALE10", "fixed", 5, nil, nil, nil)
	assert.ErrorIs(t, err, ErrCouponCodeTaken)
}

func TestDeactivateCoupon(t *testing.T) {
	db := newTestDB(t)
	svc := NewAdminService(db)
	orders := NewOrderService(db, testConfig())

	_, err := svc.CreateCoupon("FLAT50", "fixed", 50, nil, nil, nil)
	require.NoError(t, err)

	_, _, err = orders.CheckCoupon("FLAT50", 200)
	require.NoError(t, err)

	require.NoError(t, svc.DeactivateCoupon("FLAT50"))
	_, _, err = orders.CheckCoupon("FLAT50", 200)
	assert.ErrorIs(t, err, ErrInvalidCoupon)

	assert.ErrorIs(t, svc.DeactivateCoupon("GHOST"), ErrCouponNotFound)
}

func TestCreateGiftVoucher(t *testing.T) {
	db := newTestDB(t)
	svc := NewAdminService(db)

	_, err := svc.CreateGiftVoucher("", 100)
	assert.ErrorIs(t, err, ErrInvalidVoucher)
	_, err = svc.CreateGiftVoucher("GIFT100", -1)
	assert.ErrorIs(t, err, ErrInvalidVoucher)

	voucher, err := svc.CreateGiftVoucher("GIFT100", 100)
	require.NoError(t, err)
	assert.False(t, voucher.IsUsed)

	_, err = svc.CreateGiftVoucher("GIFT100", 200)
	assert.ErrorIs(t, err, ErrVoucherCodeTaken)

	vouchers, err := svc.ListGiftVouchers()
	require.NoError(t, err)
	assert.Len(t, vouchers, 1)
}

func TestExportOrders(t *testing.T) {
	db := newTestDB(t)
	svc := NewAdminService(db)
	orders := NewOrderService(db, testConfig())
	carts := NewCartService(db)
	seedMainStore(t, db)

	user := seedUser(t, db, "01712340001", true)
	product := seedProduct(t, db, "Export Me", 150, 0)
	_, err := carts.Add(user.ID, &dto.AddToCartRequest{ProductID: product.ID, Quantity: 2})
	require.NoError(t, err)
	_, err = orders.Place(user.ID, &dto.PlaceOrderRequest{})
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, svc.ExportOrders(&buf))
	assert.NotZero(t, buf.Len())
	// xlsx files are zip archives.
	assert.Equal(t, []byte{'P', 'K'}, buf.Bytes()[:2])
}

func TestExportProducts(t *testing.T) {
	db := newTestDB(t)
	svc := NewAdminService(db)
	storeID := seedMainStore(t, db)

	product := seedProduct(t, db, "Stocked", 999, 15)
	seedPurchase(t, db, storeID, product.ID, uuid.Nil, 4)

	var buf bytes.Buffer
	require.NoError(t, svc.ExportProducts(&buf))
	assert.NotZero(t, buf.Len())
	assert.Equal(t, []byte{'P', 'K'}, buf.Bytes()[:2])
}
