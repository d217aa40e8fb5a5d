package entity

import (
	"gorm.io/gorm"
)

// Selection is a single line item. UnitPrice and Total are snapshotted
// at submission time so later price edits can't skew past orders.
type Selection struct {
	gorm.Model
	ReservationID uint     `gorm:"not null;uniqueIndex:idx_reservation_food" json:"reservationId"`
	FoodItemID    uint     `gorm:"not null;uniqueIndex:idx_reservation_food" json:"foodItemId"`
	FoodItem      FoodItem `json:"foodItem"`
	Quantity      int      `gorm:"not null;default:0" json:"quantity"`
	UnitPrice     int64    `gorm:"not null;default:0" json:"unitPrice"`
	Total         int64    `gorm:"not null;default:0" json:"total"`
}
