package matchupService

import (
	"errors"

	"gorm.io/gorm"

	"parlayPickem/models"
	"parlayPickem/services/common"
)

// OpenMatchupOdds fetches a matchup with its odds history newest-first
// and returns the snapshot new picks bind to. A matchup with no odds is
// a data-integrity fault, not a client error.
func OpenMatchupOdds(db *gorm.DB, matchupID string) (models.Matchup, models.Odds, error) {
	var matchup models.Matchup
	result := db.Preload("Odds", func(tx *gorm.DB) *gorm.DB {
		return tx.Order("created_at DESC, id DESC")
	}).First(&matchup, "id = ?", matchupID)
	if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return models.Matchup{}, models.Odds{}, common.NewError(common.KindMatchupNotFound, "matchup not found")
	}
	if result.Error != nil {
		return models.Matchup{}, models.Odds{}, common.WrapStorage("fetching matchup", result.Error)
	}

	if len(matchup.Odds) == 0 {
		return models.Matchup{}, models.Odds{}, common.NewError(common.KindNoOddsAvailable, "no odds found for matchup")
	}
	if matchup.Locked {
		return models.Matchup{}, models.Odds{}, common.NewError(common.KindMatchupLocked, "game has already started, matchup is locked")
	}

	return matchup, matchup.Odds[0], nil
}

// CurrentWeekMatchups lists matchups whose game date falls on one of the
// given label->YYYYMMDD dates.
func CurrentWeekMatchups(db *gorm.DB, weekDates map[string]string) ([]models.Matchup, error) {
	dates := make([]string, 0, len(weekDates))
	for _, date := range weekDates {
		dates = append(dates, date)
	}

	var matchups []models.Matchup
	result := db.Where("game_date IN ?", dates).
		Order("game_date, created_at").
		Find(&matchups)
	if result.Error != nil {
		return nil, common.WrapStorage("listing current week matchups", result.Error)
	}
	return matchups, nil
}

// ToggleAdminFlag flips whether the admin wants this matchup on the
// pick'em board. The web layer enforces admin authorization before
// calling in.
func ToggleAdminFlag(db *gorm.DB, matchupID string) (models.Matchup, error) {
	var matchup models.Matchup
	result := db.First(&matchup, "id = ?", matchupID)
	if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return models.Matchup{}, common.NewError(common.KindMatchupNotFound, "matchup not found")
	}
	if result.Error != nil {
		return models.Matchup{}, common.WrapStorage("fetching matchup", result.Error)
	}

	matchup.AdminUseGame = !matchup.AdminUseGame
	if result := db.Save(&matchup); result.Error != nil {
		return models.Matchup{}, common.WrapStorage("updating matchup", result.Error)
	}
	return matchup, nil
}
