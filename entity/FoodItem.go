package entity

import (
	"gorm.io/gorm"
)

const (
	CategoryLunch  = "LUNCH"
	CategorySnacks = "SNACKS"
)

type FoodItem struct {
	gorm.Model
	Category string `gorm:"not null;default:LUNCH" json:"category"` // LUNCH | SNACKS
	Name     string `gorm:"not null" json:"name"`
	Price    int64  `gorm:"not null;default:0" json:"price"` // whole PHP
	Image    string `json:"image"`

	Options []Option `gorm:"many2many:option_food_items;" json:"-"`
}
