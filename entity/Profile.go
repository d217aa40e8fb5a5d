package entity

import (
	"gorm.io/gorm"
)

// Profile carries the directory fields fetched from the identity
// provider plus the reward coin balance.
type Profile struct {
	gorm.Model
	UserID     uint   `gorm:"uniqueIndex;not null" json:"userId"`
	User       User   `json:"-"`
	Name       string `gorm:"not null" json:"name"`
	JobTitle   string `json:"jobTitle"`
	Department string `json:"department"`
	Coins      int64  `gorm:"not null;default:0" json:"coins"`

	Orders []Order `json:"-"`
}
