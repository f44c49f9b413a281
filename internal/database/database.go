package database

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/finesse-lifestyle/storefront-api/internal/config"
	"github.com/finesse-lifestyle/storefront-api/internal/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var DB *gorm.DB

func Connect(cfg *config.Config) error {
	var err error
	DB, err = gorm.Open(postgres.Open(cfg.DSN()), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := DB.DB()
	if err != nil {
		return fmt.Errorf("failed to get sql.DB: %w", err)
	}

	sqlDB.SetMaxOpenConns(50)
	sqlDB.SetMaxIdleConns(25)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)
	sqlDB.SetConnMaxIdleTime(5 * time.Minute)

	slog.Info("database connected")
	return nil
}

// Migrate runs AutoMigrate for every storefront model.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Customer{},
		&models.OTPToken{},
		&models.Brand{},
		&models.Group{},
		&models.Category{},
		&models.Tag{},
		&models.Product{},
		&models.ProductVariant{},
		&models.ProductImage{},
		&models.Store{},
		&models.Purchase{},
		&models.Sale{},
		&models.CartItem{},
		&models.PreorderCartItem{},
		&models.Order{},
		&models.OrderDetail{},
		&models.Preorder{},
		&models.PreorderDetail{},
		&models.Coupon{},
		&models.GiftVoucher{},
		&models.WishlistItem{},
		&models.Notification{},
		&models.Review{},
		&models.Setting{},
		&models.Page{},
		&models.Faq{},
		&models.Slider{},
		&models.Menu{},
		&models.ContactMessage{},
		&models.DamageReport{},
		&models.SystemLog{},
	)
}

func Ping() error {
	sqlDB, err := DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Ping()
}
