package pickService

import (
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"parlayPickem/metrics"
	"parlayPickem/models"
	"parlayPickem/services/authService"
	"parlayPickem/services/common"
	"parlayPickem/services/matchupService"
	"parlayPickem/services/parlayService"
)

// SubmitPickInput is the caller-supplied shape of a pick submission.
type SubmitPickInput struct {
	MatchupID     string `json:"matchupId"`
	Selection     string `json:"pick"`
	UseLatestOdds bool   `json:"useLatestOdds"`
}

// SubmitPick runs the full submission state machine: validate input,
// resolve identity, resolve the active parlay, gate on the matchup, and
// persist a pick bound to the latest odds snapshot. Parlay resolution and
// the pick insert share one transaction so concurrent submissions from
// the same user cannot open two parlays; nothing after a failed step
// writes, and every failure carries its taxonomy kind.
func SubmitPick(db *gorm.DB, session *authService.Session, input SubmitPickInput) (models.Pick, error) {
	if _, err := uuid.Parse(input.MatchupID); err != nil {
		return models.Pick{}, common.NewError(common.KindValidation, "matchupId must be a well-formed UUID")
	}
	if strings.TrimSpace(input.Selection) == "" {
		return models.Pick{}, common.NewError(common.KindValidation, "pick must not be empty")
	}

	user, err := authService.ResolveUser(db, session)
	if err != nil {
		return models.Pick{}, err
	}

	var pick models.Pick
	var openedParlay bool
	txErr := db.Transaction(func(tx *gorm.DB) error {
		parlay, isNew, err := parlayService.ActiveParlayForSubmission(tx, user.ID)
		if err != nil {
			return err
		}
		openedParlay = isNew

		_, latestOdds, err := matchupService.OpenMatchupOdds(tx, input.MatchupID)
		if err != nil {
			return err
		}

		pick = models.Pick{
			ParlayID:      parlay.ID,
			UserID:        user.ID,
			MatchupID:     input.MatchupID,
			OddsID:        latestOdds.ID,
			Selection:     input.Selection,
			UseLatestOdds: input.UseLatestOdds,
			Locked:        false,
		}
		if result := tx.Create(&pick); result.Error != nil {
			return common.WrapStorage("creating pick", result.Error)
		}
		return nil
	})
	if txErr != nil {
		return models.Pick{}, txErr
	}

	metrics.PicksSubmitted.Inc()
	if openedParlay {
		metrics.ParlaysOpened.Inc()
	}
	return pick, nil
}
