package repository

import (
	"github.com/KentLacno/ccl-reservation-system/entity"
	"gorm.io/gorm"
)

type ReportRepository struct {
	DB *gorm.DB
}

func NewReportRepository(db *gorm.DB) *ReportRepository {
	return &ReportRepository{DB: db}
}

// OrdersForForm loads everything the kitchen reports walk:
// order -> reservations -> selections -> food item names.
func (r *ReportRepository) OrdersForForm(formID uint) ([]entity.Order, error) {
	var orders []entity.Order
	err := r.DB.
		Preload("Reservations", func(db *gorm.DB) *gorm.DB { return db.Order("reservations.weekday") }).
		Preload("Reservations.Selections.FoodItem").
		Where("form_id = ?", formID).
		Find(&orders).Error
	return orders, err
}

func (r *ReportRepository) OrderWithDetails(orderID uint) (*entity.Order, error) {
	var o entity.Order
	err := r.DB.
		Preload("Reservations", func(db *gorm.DB) *gorm.DB { return db.Order("reservations.weekday") }).
		Preload("Reservations.Selections.FoodItem").
		First(&o, orderID).Error
	if err != nil {
		return nil, err
	}
	return &o, nil
}
