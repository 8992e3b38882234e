package parlayService

import (
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"parlayPickem/models"
	"parlayPickem/services/common"
)

// LatestParlay returns the user's most recently created parlay with its
// picks preloaded newest-first, or nil if the user has none. "Most
// recent" is strictly by creation time, id breaking ties.
func LatestParlay(db *gorm.DB, userID string) (*models.Parlay, error) {
	var parlay models.Parlay
	result := db.Where("user_id = ?", userID).
		Order("created_at DESC, id DESC").
		Preload("Picks", func(tx *gorm.DB) *gorm.DB {
			return tx.Order("created_at DESC")
		}).
		First(&parlay)
	if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if result.Error != nil {
		return nil, common.WrapStorage("fetching latest parlay", result.Error)
	}
	return &parlay, nil
}

// OpenParlay creates a fresh unlocked parlay for the user.
func OpenParlay(db *gorm.DB, userID string) (models.Parlay, error) {
	parlay := models.Parlay{UserID: userID, Locked: false}
	if result := db.Create(&parlay); result.Error != nil {
		return models.Parlay{}, common.WrapStorage("creating parlay", result.Error)
	}
	return parlay, nil
}

// ResolveActiveParlay finds the user's open parlay or opens a new one.
// A locked latest parlay is never reopened and all older parlays are
// ignored; the user simply starts over.
func ResolveActiveParlay(db *gorm.DB, userID string) (models.Parlay, bool, error) {
	var resolved models.Parlay
	isNew := false

	err := db.Transaction(func(tx *gorm.DB) error {
		latest, err := latestForUpdate(tx, userID)
		if err != nil {
			return err
		}
		if latest != nil && !latest.Locked {
			resolved = *latest
			return nil
		}

		opened, err := OpenParlay(tx, userID)
		if err != nil {
			return err
		}
		resolved = opened
		isNew = true
		return nil
	})
	if err != nil {
		return models.Parlay{}, false, err
	}
	return resolved, isNew, nil
}

// ActiveParlayForSubmission resolves the parlay a new pick attaches to,
// inside the caller's transaction. Unlike ResolveActiveParlay, a locked
// latest parlay is a hard failure here: the submission must not silently
// roll the user into a fresh parlay.
func ActiveParlayForSubmission(tx *gorm.DB, userID string) (models.Parlay, bool, error) {
	latest, err := latestForUpdate(tx, userID)
	if err != nil {
		return models.Parlay{}, false, err
	}
	if latest != nil && latest.Locked {
		return models.Parlay{}, false, common.NewError(common.KindParlayLocked, "latest parlay is locked")
	}
	if latest != nil {
		return *latest, false, nil
	}
	opened, err := OpenParlay(tx, userID)
	if err != nil {
		return models.Parlay{}, false, err
	}
	return opened, true, nil
}

// latestForUpdate fetches the latest parlay row, holding a row lock on
// MySQL so two concurrent submissions from the same user cannot both
// observe "no open parlay" and each create one. sqlite (tests) has no
// FOR UPDATE; its writes serialize on the database itself.
func latestForUpdate(tx *gorm.DB, userID string) (*models.Parlay, error) {
	q := tx.Where("user_id = ?", userID).Order("created_at DESC, id DESC")
	if tx.Dialector.Name() == "mysql" {
		q = q.Clauses(clause.Locking{Strength: "UPDATE"})
	}

	var parlay models.Parlay
	result := q.First(&parlay)
	if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if result.Error != nil {
		return nil, common.WrapStorage("fetching latest parlay", result.Error)
	}
	return &parlay, nil
}
