package parlayService

import (
	"gorm.io/gorm"

	"parlayPickem/models"
	"parlayPickem/services/common"
)

// LockMatchupCascade locks a matchup once its game starts, along with
// every pick on it and every parlay owning one of those picks. Picks in
// an affected parlay lock with their parlay, mirroring its state.
// Idempotent: already-locked rows are left untouched and relocking is
// never an error.
func LockMatchupCascade(db *gorm.DB, matchupID string) error {
	return db.Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&models.Matchup{}).
			Where("id = ? AND locked = ?", matchupID, false).
			UpdateColumn("locked", true)
		if result.Error != nil {
			return common.WrapStorage("locking matchup", result.Error)
		}

		var parlayIDs []string
		err := tx.Model(&models.Pick{}).
			Where("matchup_id = ?", matchupID).
			Distinct().
			Pluck("parlay_id", &parlayIDs).Error
		if err != nil {
			return common.WrapStorage("listing parlays on matchup", err)
		}
		if len(parlayIDs) == 0 {
			return nil
		}

		result = tx.Model(&models.Parlay{}).
			Where("id IN ? AND locked = ?", parlayIDs, false).
			UpdateColumn("locked", true)
		if result.Error != nil {
			return common.WrapStorage("locking parlays", result.Error)
		}

		result = tx.Model(&models.Pick{}).
			Where("parlay_id IN ? AND locked = ?", parlayIDs, false).
			UpdateColumn("locked", true)
		if result.Error != nil {
			return common.WrapStorage("locking picks", result.Error)
		}

		return nil
	})
}
