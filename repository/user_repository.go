package repository

import (
	"github.com/KentLacno/ccl-reservation-system/entity"
	"gorm.io/gorm"
)

type UserRepository struct {
	DB *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{DB: db}
}

func (r *UserRepository) FindByEmail(email string) (*entity.User, error) {
	var u entity.User
	if err := r.DB.Where("email = ?", email).First(&u).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *UserRepository) FindByID(id uint) (*entity.User, error) {
	var u entity.User
	if err := r.DB.First(&u, id).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *UserRepository) CreateUser(tx *gorm.DB, u *entity.User) error {
	return tx.Create(u).Error
}

func (r *UserRepository) CreateProfile(tx *gorm.DB, p *entity.Profile) error {
	return tx.Create(p).Error
}

func (r *UserRepository) FindProfileByUserID(userID uint) (*entity.Profile, error) {
	var p entity.Profile
	if err := r.DB.Where("user_id = ?", userID).First(&p).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *UserRepository) AddCoins(tx *gorm.DB, profileID uint, amount int64) error {
	return tx.Model(&entity.Profile{}).
		Where("id = ?", profileID).
		Update("coins", gorm.Expr("coins + ?", amount)).Error
}
