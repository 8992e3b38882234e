package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// User is created by the registration flow; this service only reads it.
type User struct {
	ID        string    `gorm:"primaryKey;size:36" json:"id"`
	Email     string    `gorm:"uniqueIndex;size:255" json:"email"`
	Username  *string   `json:"username"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
	Parlays   []Parlay  `gorm:"foreignKey:UserID" json:"parlays,omitempty"`
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	return nil
}
