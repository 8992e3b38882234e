package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Odds is an immutable snapshot of the betting line for a matchup. The
// snapshot with the greatest CreatedAt (ID breaks ties) is the one new
// picks bind to.
type Odds struct {
	ID        string    `gorm:"primaryKey;size:36" json:"id"`
	MatchupID string    `gorm:"size:36;index" json:"matchupId"`
	Matchup   Matchup   `gorm:"foreignKey:MatchupID" json:"-"`
	Spread    float64   `json:"spread"`
	OverUnder float64   `json:"overUnder"`
	CreatedAt time.Time `json:"createdAt"`
}

func (o *Odds) BeforeCreate(tx *gorm.DB) error {
	if o.ID == "" {
		o.ID = uuid.NewString()
	}
	return nil
}
