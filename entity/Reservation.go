package entity

import (
	"gorm.io/gorm"
)

// Reservation is one weekday's worth of a single order.
type Reservation struct {
	gorm.Model
	OrderID uint `gorm:"not null" json:"orderId"`
	Weekday int  `gorm:"not null" json:"weekday"`
	Paid    bool `gorm:"not null;default:false" json:"paid"`

	Selections []Selection `json:"selections"`
}

// TotalAmount sums the selection line totals. Selections must be loaded.
func (r *Reservation) TotalAmount() int64 {
	var total int64
	for _, s := range r.Selections {
		total += s.Total
	}
	return total
}
