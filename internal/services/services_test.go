package services

import (
	"fmt"
	"testing"
	"time"

	"github.com/finesse-lifestyle/storefront-api/internal/config"
	"github.com/finesse-lifestyle/storefront-api/internal/database"
	"github.com/finesse-lifestyle/storefront-api/internal/models"
	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	// A single connection keeps every query on the same in-memory database.
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, database.Migrate(db))
	return db
}

func testConfig() *config.Config {
	return &config.Config{
		JWTSecret:           "test-secret",
		JWTExpiry:           time.Hour,
		DefaultShippingCost: 10,
	}
}

// smsRecorder stands in for the SMS gateway in tests.
type smsRecorder struct {
	sent []string
	fail bool
}

func (r *smsRecorder) Send(number, message string) error {
	if r.fail {
		return ErrSMSDispatch
	}
	r.sent = append(r.sent, fmt.Sprintf("%s: %s", number, message))
	return nil
}

func seedMainStore(t *testing.T, db *gorm.DB) uuid.UUID {
	t.Helper()
	store := models.Store{
		ID:         uuid.New(),
		Name:       "Main Branch",
		MainBranch: true,
	}
	require.NoError(t, db.Create(&store).Error)
	return store.ID
}

func seedProduct(t *testing.T, db *gorm.DB, name string, price, discount float64) *models.Product {
	t.Helper()
	product := models.Product{
		ID:           uuid.New(),
		Slug:         fmt.Sprintf("%s-%s", name, uuid.NewString()[:8]),
		ProductName:  name,
		SellingPrice: price,
		Discount:     discount,
		IsAvailable:  true,
	}
	require.NoError(t, db.Create(&product).Error)
	return &product
}

func seedPurchase(t *testing.T, db *gorm.DB, storeID, productID, variantID uuid.UUID, qty int) {
	t.Helper()
	require.NoError(t, db.Create(&models.Purchase{
		ID:        uuid.New(),
		StoreID:   storeID,
		ProductID: productID,
		VariantID: variantID,
		Quantity:  qty,
	}).Error)
}

func seedSale(t *testing.T, db *gorm.DB, storeID, productID, variantID uuid.UUID, qty int) {
	t.Helper()
	require.NoError(t, db.Create(&models.Sale{
		ID:        uuid.New(),
		StoreID:   storeID,
		ProductID: productID,
		VariantID: variantID,
		Quantity:  qty,
	}).Error)
}

func seedUser(t *testing.T, db *gorm.DB, contact string, active bool) *models.User {
	t.Helper()
	user := models.User{
		ID:       uuid.New(),
		Name:     "Test User",
		Contact:  contact,
		Password: "$2a$10$placeholderplaceholderplaceholderplaceho",
		UserType: models.UserTypeCustomer,
		IsActive: active,
	}
	require.NoError(t, db.Create(&user).Error)
	return &user
}
