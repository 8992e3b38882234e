package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Pick is a single selection on one matchup, bound to the odds snapshot
// that was current at submission time. Locked mirrors the owning parlay.
type Pick struct {
	ID            string    `gorm:"primaryKey;size:36" json:"id"`
	ParlayID      string    `gorm:"size:36;index" json:"parlayId"`
	Parlay        Parlay    `gorm:"foreignKey:ParlayID" json:"-"`
	UserID        string    `gorm:"size:36;index" json:"userId"`
	MatchupID     string    `gorm:"size:36;index" json:"matchupId"`
	Matchup       Matchup   `gorm:"foreignKey:MatchupID" json:"-"`
	OddsID        string    `gorm:"size:36" json:"oddsId"`
	Odds          Odds      `gorm:"foreignKey:OddsID" json:"-"`
	Selection     string    `gorm:"size:255" json:"pick"`
	UseLatestOdds bool      `json:"useLatestOdds"`
	Locked        bool      `gorm:"default:false" json:"locked"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

func (p *Pick) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	return nil
}
