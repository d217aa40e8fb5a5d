package entity

import (
	"gorm.io/gorm"
)

// Option is the set of food items offered on one weekday of a Form.
// Created lazily, at most one per (form, weekday).
type Option struct {
	gorm.Model
	Weekday int  `gorm:"not null;uniqueIndex:idx_form_weekday" json:"weekday"`
	FormID  uint `gorm:"not null;uniqueIndex:idx_form_weekday" json:"formId"`

	FoodItems []FoodItem `gorm:"many2many:option_food_items;" json:"foodItems"`
}
