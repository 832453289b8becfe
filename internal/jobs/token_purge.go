package jobs

import (
	"log"
	"time"

	"hospital-admission-backend/internal/repository"

	"github.com/robfig/cron/v3"
)

// StartTokenPurge schedules a daily job that deletes expired and revoked
// refresh tokens. Returns the scheduler so the caller can stop it on
// shutdown.
func StartTokenPurge(userRepo *repository.UserRepository) *cron.Cron {
	c := cron.New()

	// Runs every day at 00:05 AM
	_, err := c.AddFunc("5 0 * * *", func() {
		purged, err := userRepo.PurgeStaleRefreshTokens(time.Now())
		if err != nil {
			log.Printf("Refresh token purge failed: %v", err)
			return
		}
		log.Printf("Purged %d stale refresh tokens", purged)
	})
	if err != nil {
		log.Printf("Failed to schedule refresh token purge: %v", err)
	}

	c.Start()
	return c
}
