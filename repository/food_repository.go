package repository

import (
	"github.com/KentLacno/ccl-reservation-system/entity"
	"gorm.io/gorm"
)

type FoodRepository struct {
	DB *gorm.DB
}

func NewFoodRepository(db *gorm.DB) *FoodRepository {
	return &FoodRepository{DB: db}
}

func (r *FoodRepository) Create(item *entity.FoodItem) error {
	return r.DB.Create(item).Error
}

// Get looks an item up inside the caller's transaction so a bad id
// aborts the whole submission.
func (r *FoodRepository) Get(tx *gorm.DB, id uint) (*entity.FoodItem, error) {
	var item entity.FoodItem
	if err := tx.First(&item, id).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *FoodRepository) List() ([]entity.FoodItem, error) {
	var items []entity.FoodItem
	err := r.DB.Order("name").Find(&items).Error
	return items, err
}

func (r *FoodRepository) ListByCategory(category string) ([]entity.FoodItem, error) {
	var items []entity.FoodItem
	err := r.DB.Where("category = ?", category).Order("name").Find(&items).Error
	return items, err
}
