package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Matchup is a schedulable game between two teams. Locked flips false->true
// exactly once when the game starts and never reverts.
type Matchup struct {
	ID            string     `gorm:"primaryKey;size:36" json:"id"`
	HomeTeam      string     `gorm:"size:255" json:"homeTeam"`
	AwayTeam      string     `gorm:"size:255" json:"awayTeam"`
	GameDate      string     `gorm:"size:8;index" json:"gameDate"` // YYYYMMDD
	GameStartTime *time.Time `json:"gameStartTime"`
	Locked        bool       `gorm:"default:false" json:"locked"`
	AdminUseGame  bool       `gorm:"default:false" json:"adminUseGame"`
	CreatedAt     time.Time  `json:"createdAt"`
	UpdatedAt     time.Time  `json:"updatedAt"`
	Odds          []Odds     `gorm:"foreignKey:MatchupID" json:"odds,omitempty"`
}

func (m *Matchup) BeforeCreate(tx *gorm.DB) error {
	if m.ID == "" {
		m.ID = uuid.NewString()
	}
	return nil
}
