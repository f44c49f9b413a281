package services

import (
	"testing"

	"github.com/finesse-lifestyle/storefront-api/internal/dto"
	"github.com/finesse-lifestyle/storefront-api/internal/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func floatPtr(v float64) *float64 { return &v }
func intPtr(v int) *int           { return &v }

func placeSetup(t *testing.T) (*OrderService, *CartService, *models.Product, uuid.UUID) {
	t.Helper()
	db := newTestDB(t)
	seedMainStore(t, db)
	product := seedProduct(t, db, "Jacket", 100, 0)
	return NewOrderService(db, testConfig()), NewCartService(db), product, uuid.New()
}

func TestPlaceOrderEmptyCart(t *testing.T) {
	orders, _, _, userID := placeSetup(t)

	_, err := orders.Place(userID, &dto.PlaceOrderRequest{})
	assert.ErrorIs(t, err, ErrEmptyCart)
}

func TestPlaceOrderClearsCartAndNotifies(t *testing.T) {
	orders, cart, product, userID := placeSetup(t)

	_, err := cart.Add(userID, &dto.AddToCartRequest{ProductID: product.ID, Quantity: 2})
	require.NoError(t, err)

	order, err := orders.Place(userID, &dto.PlaceOrderRequest{})
	require.NoError(t, err)

	assert.Equal(t, models.OrderStatusPending, order.Status)
	assert.Equal(t, models.PaymentStatusPending, order.PaymentStatus)
	assert.Equal(t, models.PaymentMethodCOD, order.PaymentMethod)
	assert.Equal(t, 200.0, order.SubTotal)
	assert.Equal(t, 210.0, order.GrandTotal) // default 10 shipping
	assert.NotEmpty(t, order.OrderNo)
	require.Len(t, order.Details, 1)
	assert.Equal(t, 100.0, order.Details[0].UnitPrice)

	count, err := cart.Count(userID)
	require.NoError(t, err)
	assert.EqualValues(t, 0, count)

	var notifications int64
	require.NoError(t, orders.db.Model(&models.Notification{}).
		Where("user_id = ?", userID).Count(&notifications).Error)
	assert.EqualValues(t, 1, notifications)
}

func TestPlaceOrderCapturesPriceAtCheckout(t *testing.T) {
	orders, cart, product, userID := placeSetup(t)

	_, err := cart.Add(userID, &dto.AddToCartRequest{ProductID: product.ID, Quantity: 1})
	require.NoError(t, err)

	order, err := orders.Place(userID, &dto.PlaceOrderRequest{})
	require.NoError(t, err)

	// Catalog price changes after checkout must not touch the order.
	require.NoError(t, orders.db.Model(product).Update("selling_price", 500).Error)

	stored, err := orders.Get(userID, order.ID)
	require.NoError(t, err)
	require.Len(t, stored.Details, 1)
	assert.Equal(t, 100.0, stored.Details[0].UnitPrice)
	assert.Equal(t, 100.0, stored.SubTotal)
}

func TestPlaceOrderWithPercentageCoupon(t *testing.T) {
	orders, cart, product, userID := placeSetup(t)

	require.NoError(t, orders.db.Create(&models.Coupon{
		ID:       uuid.New(),
		Code:     "SAVE20",
		Type:     models.CouponTypePercentage,
		Value:    20,
		IsActive: true,
	}).Error)

	_, err := cart.Add(userID, &dto.AddToCartRequest{ProductID: product.ID, Quantity: 2})
	require.NoError(t, err)

	order, err := orders.Place(userID, &dto.PlaceOrderRequest{CouponCode: "SAVE20"})
	require.NoError(t, err)

	// 20% of 200 = 40; grand = 200 − 40 + 10 shipping.
	assert.Equal(t, 200.0, order.SubTotal)
	assert.Equal(t, 40.0, order.Discount)
	assert.Equal(t, 170.0, order.GrandTotal)

	var coupon models.Coupon
	require.NoError(t, orders.db.Where("code = ?", "SAVE20").First(&coupon).Error)
	assert.Equal(t, 1, coupon.UsedCount)
}

func TestCouponCappedAtMaxDiscount(t *testing.T) {
	db := newTestDB(t)
	require.NoError(t, db.Create(&models.Coupon{
		ID:          uuid.New(),
		Code:        "HALF",
		Type:        models.CouponTypePercentage,
		Value:       50,
		MaxDiscount: floatPtr(20),
		IsActive:    true,
	}).Error)

	svc := NewOrderService(db, testConfig())
	_, discount, err := svc.CheckCoupon("HALF", 100)
	require.NoError(t, err)
	assert.Equal(t, 20.0, discount)
}

func TestCouponRules(t *testing.T) {
	db := newTestDB(t)
	svc := NewOrderService(db, testConfig())

	_, _, err := svc.CheckCoupon("NOPE", 100)
	assert.ErrorIs(t, err, ErrInvalidCoupon)

	inactive := models.Coupon{
		ID:    uuid.New(),
		Code:  "OFF",
		Type:  models.CouponTypeFixed,
		Value: 15,
	}
	require.NoError(t, db.Create(&inactive).Error)
	require.NoError(t, db.Model(&inactive).Update("is_active", false).Error)
	_, _, err = svc.CheckCoupon("OFF", 100)
	assert.ErrorIs(t, err, ErrInvalidCoupon)

	require.NoError(t, db.Create(&models.Coupon{
		ID:             uuid.New(),
		Code:           "BIGONLY",
		Type:           models.CouponTypeFixed,
		Value:          15,
		MinOrderAmount: floatPtr(500),
		IsActive:       true,
	}).Error)
	_, _, err = svc.CheckCoupon("BIGONLY", 100)
	assert.ErrorIs(t, err, ErrMinOrderNotMet)

	require.NoError(t, db.Create(&models.Coupon{
		ID:         uuid.New(),
		Code:       "SPENT",
		Type:       models.CouponTypeFixed,
		Value:      15,
		UsageLimit: intPtr(2),
		UsedCount:  2,
		IsActive:   true,
	}).Error)
	_, _, err = svc.CheckCoupon("SPENT", 100)
	assert.ErrorIs(t, err, ErrCouponLimitExceeded)
}

func TestGiftVoucherSingleUse(t *testing.T) {
	orders, cart, product, userID := placeSetup(t)

	require.NoError(t, orders.db.Create(&models.GiftVoucher{
		ID:     uuid.New(),
		Code:   "GIFT50",
		Amount: 50,
	}).Error)

	_, err := cart.Add(userID, &dto.AddToCartRequest{ProductID: product.ID, Quantity: 2})
	require.NoError(t, err)

	order, err := orders.Place(userID, &dto.PlaceOrderRequest{GiftVoucherCode: "GIFT50"})
	require.NoError(t, err)
	assert.Equal(t, 160.0, order.GrandTotal) // 200 − 50 + 10

	var voucher models.GiftVoucher
	require.NoError(t, orders.db.Where("code = ?", "GIFT50").First(&voucher).Error)
	assert.True(t, voucher.IsUsed)
	require.NotNil(t, voucher.UsedBy)
	assert.Equal(t, userID, *voucher.UsedBy)
	assert.NotNil(t, voucher.UsedAt)

	// Second redemption attempt fails and rolls the whole checkout back.
	_, err = cart.Add(userID, &dto.AddToCartRequest{ProductID: product.ID, Quantity: 1})
	require.NoError(t, err)
	_, err = orders.Place(userID, &dto.PlaceOrderRequest{GiftVoucherCode: "GIFT50"})
	assert.ErrorIs(t, err, ErrInvalidVoucher)

	count, err := cart.Count(userID)
	require.NoError(t, err)
	assert.EqualValues(t, 1, count, "failed checkout must keep the cart")
}

func TestGrandTotalFlooredAtZero(t *testing.T) {
	orders, cart, product, userID := placeSetup(t)

	require.NoError(t, orders.db.Create(&models.GiftVoucher{
		ID:     uuid.New(),
		Code:   "BIGGIFT",
		Amount: 1000,
	}).Error)

	_, err := cart.Add(userID, &dto.AddToCartRequest{ProductID: product.ID, Quantity: 1})
	require.NoError(t, err)

	order, err := orders.Place(userID, &dto.PlaceOrderRequest{GiftVoucherCode: "BIGGIFT"})
	require.NoError(t, err)

	// Goods total floors at 0; shipping is still owed.
	assert.Equal(t, 10.0, order.GrandTotal)
}

func TestOrderLifecycleTransitions(t *testing.T) {
	orders, cart, product, userID := placeSetup(t)

	_, err := cart.Add(userID, &dto.AddToCartRequest{ProductID: product.ID, Quantity: 1})
	require.NoError(t, err)
	order, err := orders.Place(userID, &dto.PlaceOrderRequest{})
	require.NoError(t, err)

	require.NoError(t, orders.PayNow(userID, order.ID, "bkash"))
	assert.ErrorIs(t, orders.PayNow(userID, order.ID, ""), ErrAlreadyPaid)

	require.NoError(t, orders.ClearPayment(userID, order.ID))
	require.NoError(t, orders.PayNow(userID, order.ID, ""))

	require.NoError(t, orders.Cancel(userID, order.ID))
	assert.ErrorIs(t, orders.Cancel(userID, order.ID), ErrAlreadyCancelled)
	assert.ErrorIs(t, orders.MarkDelivered(order.ID), ErrAlreadyCancelled)
}

func TestCancelDeliveredOrderConflicts(t *testing.T) {
	orders, cart, product, userID := placeSetup(t)

	_, err := cart.Add(userID, &dto.AddToCartRequest{ProductID: product.ID, Quantity: 1})
	require.NoError(t, err)
	order, err := orders.Place(userID, &dto.PlaceOrderRequest{})
	require.NoError(t, err)

	require.NoError(t, orders.MarkDelivered(order.ID))
	assert.ErrorIs(t, orders.Cancel(userID, order.ID), ErrOrderDelivered)
}

func TestOrderOwnerScoping(t *testing.T) {
	orders, cart, product, userID := placeSetup(t)

	_, err := cart.Add(userID, &dto.AddToCartRequest{ProductID: product.ID, Quantity: 1})
	require.NoError(t, err)
	order, err := orders.Place(userID, &dto.PlaceOrderRequest{})
	require.NoError(t, err)

	stranger := uuid.New()
	_, err = orders.Get(stranger, order.ID)
	assert.ErrorIs(t, err, ErrOrderNotFound)
	assert.ErrorIs(t, orders.Cancel(stranger, order.ID), ErrOrderNotFound)
}

func TestCheckStockNotClamped(t *testing.T) {
	db := newTestDB(t)
	storeID := seedMainStore(t, db)
	product := seedProduct(t, db, "Thin", 10, 0)
	seedPurchase(t, db, storeID, product.ID, uuid.Nil, 2)
	seedSale(t, db, storeID, product.ID, uuid.Nil, 5)

	svc := NewOrderService(db, testConfig())
	resp, err := svc.CheckStock(product.ID, uuid.Nil, 1)
	require.NoError(t, err)
	assert.False(t, resp.Available)
	assert.Equal(t, -3, resp.Stock)
	assert.Equal(t, 1, resp.Requested)
}

func TestCheckGiftVoucher(t *testing.T) {
	db := newTestDB(t)
	require.NoError(t, db.Create(&models.GiftVoucher{
		ID:     uuid.New(),
		Code:   "OK",
		Amount: 25,
	}).Error)

	svc := NewOrderService(db, testConfig())
	voucher, err := svc.CheckGiftVoucher("OK")
	require.NoError(t, err)
	assert.Equal(t, 25.0, voucher.Amount)

	_, err = svc.CheckGiftVoucher("MISSING")
	assert.ErrorIs(t, err, ErrInvalidVoucher)
}
