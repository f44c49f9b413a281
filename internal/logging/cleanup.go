package logging

import (
	"log/slog"
	"time"

	"github.com/finesse-lifestyle/storefront-api/internal/models"
	"gorm.io/gorm"
)

const logRetention = 30 * 24 * time.Hour

// StartCleanup deletes expired system_logs once at startup and then daily,
// until done is closed.
func StartCleanup(db *gorm.DB, done chan struct{}) {
	go func() {
		sweepLogs(db)
		ticker := time.NewTicker(24 * time.Hour)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				sweepLogs(db)
			case <-done:
				return
			}
		}
	}()
}

func sweepLogs(db *gorm.DB) {
	cutoff := time.Now().Add(-logRetention)
	result := db.Where("timestamp < ?", cutoff).Delete(&models.SystemLog{})
	if result.Error != nil {
		slog.Error("log cleanup failed", "error", result.Error)
		return
	}
	if result.RowsAffected > 0 {
		slog.Info("log cleanup completed", "deleted", result.RowsAffected)
	}
}
