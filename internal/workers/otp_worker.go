package workers

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/sadikshya-ghimire/haatbazar-jobs-backend/internal/logger"
	"github.com/sadikshya-ghimire/haatbazar-jobs-backend/internal/models"
)

// OTPWorker deletes expired verification codes in the background. SendOTP
// only replaces codes per phone, so without the sweep rows for numbers
// that never finish signup would accumulate forever.
type OTPWorker struct {
	db       *gorm.DB
	interval time.Duration
}

func NewOTPWorker(db *gorm.DB) *OTPWorker {
	return &OTPWorker{db: db, interval: time.Hour}
}

// Start launches the purge loop. It stops when ctx is cancelled.
func (w *OTPWorker) Start(ctx context.Context) {
	go w.purgeLoop(ctx)
}

func (w *OTPWorker) purgeLoop(ctx context.Context) {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			logger.Info("OTP purge worker stopped")
			return
		case <-ticker.C:
			purged, err := w.PurgeExpired()
			if err != nil {
				logger.Error("Failed to purge expired OTP codes", "error", err)
			} else if purged > 0 {
				logger.Info("Purged expired OTP codes", "count", purged)
			}
		}
	}
}

// PurgeExpired deletes every code past its expiry and returns the count.
func (w *OTPWorker) PurgeExpired() (int64, error) {
	result := w.db.Where("expires_at < ?", time.Now()).Delete(&models.OTPCode{})
	if result.Error != nil {
		return 0, result.Error
	}
	return result.RowsAffected, nil
}
