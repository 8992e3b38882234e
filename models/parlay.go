package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Parlay chains a user's picks. A user has at most one open (unlocked)
// parlay at a time; locked parlays are historical and never reopened.
type Parlay struct {
	ID        string    `gorm:"primaryKey;size:36" json:"id"`
	UserID    string    `gorm:"size:36;index" json:"userId"`
	User      User      `gorm:"foreignKey:UserID" json:"-"`
	Locked    bool      `gorm:"default:false" json:"locked"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
	Picks     []Pick    `gorm:"foreignKey:ParlayID" json:"picks,omitempty"`
}

func (p *Parlay) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	return nil
}
