package entity

import (
	"gorm.io/gorm"
)

// Order is one user's full weekly submission against one form.
// Paid flips true either directly (order payment) or when the last
// owned reservation is paid.
type Order struct {
	gorm.Model
	FormID    uint  `gorm:"not null" json:"formId"`
	Form      Form  `json:"-"`
	ProfileID uint  `gorm:"not null" json:"profileId"`
	Profile   Profile `json:"-"`
	Paid      bool  `gorm:"not null;default:false" json:"paid"`
	TotalPaid int64 `gorm:"not null;default:0" json:"totalPaid"`

	// snapshot of the profile at submission time, for kitchen printouts
	Name  string `json:"name"`
	Grade string `json:"grade"`

	Reservations []Reservation `json:"reservations"`
}
