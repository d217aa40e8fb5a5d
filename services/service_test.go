package services

import (
	"testing"

	"github.com/KentLacno/ccl-reservation-system/entity"
	"github.com/KentLacno/ccl-reservation-system/repository"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	err = db.AutoMigrate(
		&entity.User{}, &entity.Profile{},
		&entity.FoodItem{}, &entity.Option{}, &entity.Form{},
		&entity.Order{}, &entity.Reservation{}, &entity.Selection{},
	)
	if err != nil {
		t.Fatalf("migrate test db: %v", err)
	}
	return db
}

func newOrderService(db *gorm.DB) *OrderService {
	userRepo := repository.NewUserRepository(db)
	return NewOrderService(db, repository.NewOrderRepository(db), repository.NewFoodRepository(db), NewRewardService(userRepo))
}

func newCatalogService(db *gorm.DB) *CatalogService {
	return NewCatalogService(db, repository.NewFormRepository(db), repository.NewFoodRepository(db))
}

func newReportService(db *gorm.DB) *ReportService {
	return NewReportService(repository.NewReportRepository(db), repository.NewFormRepository(db))
}

func newPaymentService(db *gorm.DB) *PaymentService {
	return NewPaymentService(db, repository.NewOrderRepository(db), nil)
}

func createProfile(t *testing.T, db *gorm.DB, name string, coins int64) *entity.Profile {
	t.Helper()
	user := entity.User{Email: name + "@cclcentrex.edu.ph", Role: "staff"}
	if err := db.Create(&user).Error; err != nil {
		t.Fatalf("create user: %v", err)
	}
	profile := entity.Profile{UserID: user.ID, Name: name, Department: "Faculty", Coins: coins}
	if err := db.Create(&profile).Error; err != nil {
		t.Fatalf("create profile: %v", err)
	}
	return &profile
}

func createForm(t *testing.T, db *gorm.DB, category, week string, active bool) *entity.Form {
	t.Helper()
	form := entity.Form{Category: category, Week: week, Active: active}
	if err := db.Create(&form).Error; err != nil {
		t.Fatalf("create form: %v", err)
	}
	return &form
}

func createFoodItem(t *testing.T, db *gorm.DB, category, name string, price int64) *entity.FoodItem {
	t.Helper()
	item := entity.FoodItem{Category: category, Name: name, Price: price}
	if err := db.Create(&item).Error; err != nil {
		t.Fatalf("create food item: %v", err)
	}
	return &item
}

func countRows(t *testing.T, db *gorm.DB, model any) int64 {
	t.Helper()
	var cnt int64
	if err := db.Model(model).Count(&cnt).Error; err != nil {
		t.Fatalf("count rows: %v", err)
	}
	return cnt
}
