package repository

import (
	"github.com/KentLacno/ccl-reservation-system/entity"
	"gorm.io/gorm"
)

type FormRepository struct {
	DB *gorm.DB
}

func NewFormRepository(db *gorm.DB) *FormRepository {
	return &FormRepository{DB: db}
}

func (r *FormRepository) Create(form *entity.Form) error {
	return r.DB.Create(form).Error
}

func (r *FormRepository) Get(id uint) (*entity.Form, error) {
	var f entity.Form
	if err := r.DB.First(&f, id).Error; err != nil {
		return nil, err
	}
	return &f, nil
}

func (r *FormRepository) GetWithOptions(id uint) (*entity.Form, error) {
	var f entity.Form
	err := r.DB.
		Preload("Options", func(db *gorm.DB) *gorm.DB { return db.Order("options.weekday") }).
		Preload("Options.FoodItems").
		First(&f, id).Error
	if err != nil {
		return nil, err
	}
	return &f, nil
}

func (r *FormRepository) List() ([]entity.Form, error) {
	var forms []entity.Form
	err := r.DB.Order("week DESC").Find(&forms).Error
	return forms, err
}

// ActiveByCategory returns the active form of one category with its
// options and items loaded, or gorm.ErrRecordNotFound.
func (r *FormRepository) ActiveByCategory(category string) (*entity.Form, error) {
	var f entity.Form
	err := r.DB.
		Preload("Options", func(db *gorm.DB) *gorm.DB { return db.Order("options.weekday") }).
		Preload("Options.FoodItems").
		Where("category = ? AND active = ?", category, true).
		First(&f).Error
	if err != nil {
		return nil, err
	}
	return &f, nil
}

func (r *FormRepository) DeactivateCategory(tx *gorm.DB, category string) error {
	return tx.Model(&entity.Form{}).
		Where("category = ? AND active = ?", category, true).
		Update("active", false).Error
}

func (r *FormRepository) SetActive(tx *gorm.DB, formID uint) error {
	return tx.Model(&entity.Form{}).
		Where("id = ?", formID).
		Update("active", true).Error
}

func (r *FormRepository) FindOption(tx *gorm.DB, formID uint, weekday int) (*entity.Option, error) {
	var opt entity.Option
	err := tx.Where("form_id = ? AND weekday = ?", formID, weekday).First(&opt).Error
	if err != nil {
		return nil, err
	}
	return &opt, nil
}

func (r *FormRepository) CreateOption(tx *gorm.DB, opt *entity.Option) error {
	return tx.Create(opt).Error
}

// ReplaceOptionItems swaps the option's item set in one association call.
func (r *FormRepository) ReplaceOptionItems(tx *gorm.DB, opt *entity.Option, items []entity.FoodItem) error {
	return tx.Model(opt).Association("FoodItems").Replace(items)
}
