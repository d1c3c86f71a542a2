package utils

import (
	"log"
	"time"

	"revtrack/config"
	"revtrack/database"
	"revtrack/models"

	"github.com/robfig/cron/v3"
)

// pruneLoginTracking hard-deletes login tracking rows older than the
// configured retention window.
func pruneLoginTracking() {
	retention := config.AppConfig.LoginRetentionDays
	cutoff := time.Now().AddDate(0, 0, -retention)

	result := database.Database.Db.Unscoped().
		Where("created_at < ?", cutoff).
		Delete(&models.LoginTracking{})
	if result.Error != nil {
		log.Printf("[CLEANUP-SCHEDULER] Error pruning login tracking rows: %v", result.Error)
		return
	}

	if result.RowsAffected > 0 {
		log.Printf("[CLEANUP-SCHEDULER] Pruned %d login tracking rows older than %d days", result.RowsAffected, retention)
	}
}

// InitializeCleanupScheduler starts the daily login-tracking prune job
func InitializeCleanupScheduler() *cron.Cron {
	c := cron.New()

	// Every day at 03:00 server time
	if _, err := c.AddFunc("0 3 * * *", pruneLoginTracking); err != nil {
		log.Printf("[CLEANUP-SCHEDULER] Failed to schedule prune job: %v", err)
		return c
	}

	c.Start()
	log.Println("[CLEANUP-SCHEDULER] Started, pruning login tracking daily at 03:00")

	return c
}
