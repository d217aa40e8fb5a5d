package configs

import (
	"log"

	"github.com/KentLacno/ccl-reservation-system/entity"
	"golang.org/x/crypto/bcrypt"
)

// SeedAdmin creates the kitchen admin account on first boot.
func SeedAdmin() error {
	db := DB()
	email := getEnv("ADMIN_EMAIL", "")
	pass := getEnv("ADMIN_PASSWORD", "")
	if email == "" || pass == "" {
		log.Println("skip seeding admin: missing ADMIN_EMAIL/ADMIN_PASSWORD")
		return nil
	}

	var count int64
	db.Model(&entity.User{}).Where("email = ?", email).Count(&count)
	if count > 0 {
		log.Println("admin already exists:", email)
		return nil
	}

	hash, _ := bcrypt.GenerateFromPassword([]byte(pass), bcrypt.DefaultCost)
	admin := entity.User{
		Email:    email,
		Password: string(hash),
		Role:     "admin",
	}
	if err := db.Create(&admin).Error; err != nil {
		return err
	}
	profile := entity.Profile{UserID: admin.ID, Name: "Cafeteria Admin"}
	return db.Create(&profile).Error
}

// SeedFoodItems loads a starter catalog so a fresh install has
// something to publish. Skipped once any item exists.
func SeedFoodItems() error {
	db := DB()

	var count int64
	if err := db.Model(&entity.FoodItem{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	items := []entity.FoodItem{
		{Category: entity.CategoryLunch, Name: "Chicken Adobo", Price: 80},
		{Category: entity.CategoryLunch, Name: "Pork Sinigang", Price: 85},
		{Category: entity.CategoryLunch, Name: "Beef Caldereta", Price: 90},
		{Category: entity.CategorySnacks, Name: "Banana Cue", Price: 25},
		{Category: entity.CategorySnacks, Name: "Pancit Bihon", Price: 40},
	}
	if err := db.Create(&items).Error; err != nil {
		return err
	}
	log.Println("seeded starter food items")
	return nil
}
