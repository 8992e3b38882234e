package scheduler_jobs

import (
	"fmt"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"parlayPickem/metrics"
	"parlayPickem/models"
	"parlayPickem/services/parlayService"
)

// CheckGameStart locks every unlocked matchup whose scheduled start has
// passed, cascading the lock to its picks and parlays. Matchups without
// a start time are left alone until one is set.
func CheckGameStart(db *gorm.DB, log *zap.Logger) error {
	// Start times are stored and compared in UTC.
	now := time.Now().UTC()

	var matchupList []models.Matchup
	result := db.Where("locked = ? AND game_start_time IS NOT NULL AND game_start_time <= ?", false, now).
		Find(&matchupList)
	if result.Error != nil {
		return result.Error
	}

	for _, matchup := range matchupList {
		if err := parlayService.LockMatchupCascade(db, matchup.ID); err != nil {
			return fmt.Errorf("locking matchup %s: %w", matchup.ID, err)
		}
		metrics.MatchupsLocked.Inc()
		log.Info("matchup locked",
			zap.String("matchupId", matchup.ID),
			zap.String("homeTeam", matchup.HomeTeam),
			zap.String("awayTeam", matchup.AwayTeam),
		)
	}

	return nil
}
