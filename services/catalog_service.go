package services

import (
	"errors"

	"github.com/KentLacno/ccl-reservation-system/entity"
	"github.com/KentLacno/ccl-reservation-system/repository"
	"gorm.io/gorm"
)

var (
	ErrUnknownCategory  = errors.New("unknown food category")
	ErrInvalidWeekday   = errors.New("weekday must be between 1 and 5")
	ErrCategoryMismatch = errors.New("food item category does not match form")
)

// CatalogService owns food items, weekly forms and their per-weekday
// options, including the one-active-form-per-category rule.
type CatalogService struct {
	DB       *gorm.DB
	FormRepo *repository.FormRepository
	FoodRepo *repository.FoodRepository
}

func NewCatalogService(db *gorm.DB, formRepo *repository.FormRepository, foodRepo *repository.FoodRepository) *CatalogService {
	return &CatalogService{DB: db, FormRepo: formRepo, FoodRepo: foodRepo}
}

func validCategory(category string) bool {
	return category == entity.CategoryLunch || category == entity.CategorySnacks
}

func (s *CatalogService) CreateFoodItem(category, name string, price int64, image string) (*entity.FoodItem, error) {
	if !validCategory(category) {
		return nil, ErrUnknownCategory
	}
	if name == "" {
		return nil, errors.New("name is required")
	}
	if price < 0 {
		return nil, errors.New("price cannot be negative")
	}
	item := entity.FoodItem{Category: category, Name: name, Price: price, Image: image}
	if err := s.FoodRepo.Create(&item); err != nil {
		return nil, err
	}
	return &item, nil
}

func (s *CatalogService) ListFoodItems() ([]entity.FoodItem, error) {
	return s.FoodRepo.List()
}

func (s *CatalogService) CreateForm(category, week string) (*entity.Form, error) {
	if !validCategory(category) {
		return nil, ErrUnknownCategory
	}
	if week == "" {
		return nil, errors.New("week is required")
	}
	form := entity.Form{Category: category, Week: week}
	if err := s.FormRepo.Create(&form); err != nil {
		return nil, err
	}
	return &form, nil
}

func (s *CatalogService) ListForms() ([]entity.Form, error) {
	return s.FormRepo.List()
}

// ActivateForm makes the form the single active one of its category.
// Siblings are deactivated in the same transaction.
func (s *CatalogService) ActivateForm(formID uint) (*entity.Form, error) {
	form, err := s.FormRepo.Get(formID)
	if err != nil {
		return nil, err
	}

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		if err := s.FormRepo.DeactivateCategory(tx, form.Category); err != nil {
			return err
		}
		return s.FormRepo.SetActive(tx, form.ID)
	})
	if err != nil {
		return nil, err
	}

	form.Active = true
	return form, nil
}

// ActiveForm returns the published form of one category with options
// and items loaded, or nil when nothing is active.
func (s *CatalogService) ActiveForm(category string) (*entity.Form, error) {
	form, err := s.FormRepo.ActiveByCategory(category)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return form, nil
}

// SetOption publishes the item set offered on one weekday of a form,
// creating the option lazily on first use.
func (s *CatalogService) SetOption(formID uint, weekday int, foodItemIDs []uint) (*entity.Option, error) {
	if weekday < entity.Monday || weekday > entity.Friday {
		return nil, ErrInvalidWeekday
	}
	form, err := s.FormRepo.Get(formID)
	if err != nil {
		return nil, err
	}

	var items []entity.FoodItem
	if err := s.DB.Where("id IN ?", foodItemIDs).Find(&items).Error; err != nil {
		return nil, err
	}
	if len(items) != len(foodItemIDs) {
		return nil, gorm.ErrRecordNotFound
	}
	for _, item := range items {
		if item.Category != form.Category {
			return nil, ErrCategoryMismatch
		}
	}

	var out *entity.Option
	err = s.DB.Transaction(func(tx *gorm.DB) error {
		opt, err := s.FormRepo.FindOption(tx, form.ID, weekday)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			opt = &entity.Option{FormID: form.ID, Weekday: weekday}
			if err := s.FormRepo.CreateOption(tx, opt); err != nil {
				return err
			}
		} else if err != nil {
			return err
		}
		if err := s.FormRepo.ReplaceOptionItems(tx, opt, items); err != nil {
			return err
		}
		opt.FoodItems = items
		out = opt
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}
