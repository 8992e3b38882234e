package scheduler

import (
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"parlayPickem/scheduler/scheduler_jobs"
	"parlayPickem/services/common"
)

// SetupCron registers the lock sweep and starts the scheduler. The
// returned cron should be stopped on shutdown.
func SetupCron(db *gorm.DB, log *zap.Logger) *cron.Cron {
	cronService := cron.New(cron.WithSeconds())

	_, err := cronService.AddFunc("0 */5 * * * *", func() {
		// Every 5 minutes, lock matchups whose games have started
		err := scheduler_jobs.CheckGameStart(db, log)
		if err != nil {
			log.Error("game start check failed", zap.Error(err))
			common.LogError(db, "CRON", err)
		}
	})
	if err != nil {
		log.Error("cron registration failed", zap.Error(err))
		common.LogError(db, "CRON", err)
	}

	cronService.Start()
	return cronService
}
