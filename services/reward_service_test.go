package services

import (
	"testing"

	"github.com/KentLacno/ccl-reservation-system/entity"
	"github.com/KentLacno/ccl-reservation-system/repository"
)

func TestCoinsFor(t *testing.T) {
	svc := NewRewardService(nil)

	tests := []struct {
		amount int64
		want   int64
	}{
		{0, 0},
		{49, 0},
		{50, 20},
		{149, 40},
		{150, 60},
		{180, 60},
		{-10, 0},
	}
	for _, tt := range tests {
		if got := svc.CoinsFor(tt.amount); got != tt.want {
			t.Errorf("CoinsFor(%d) = %d, want %d", tt.amount, got, tt.want)
		}
	}
}

func TestAwardPersistsCoins(t *testing.T) {
	db := setupDB(t)
	svc := NewRewardService(repository.NewUserRepository(db))
	profile := createProfile(t, db, "maria", 50)

	coins, err := svc.Award(db, profile.ID, 149)
	if err != nil {
		t.Fatalf("Award: %v", err)
	}
	if coins != 40 {
		t.Errorf("Award returned %d coins, want 40", coins)
	}

	var got entity.Profile
	db.First(&got, profile.ID)
	if got.Coins != 90 {
		t.Errorf("coins = %d, want 50+40", got.Coins)
	}
}

func TestAwardZeroWritesNothing(t *testing.T) {
	db := setupDB(t)
	svc := NewRewardService(repository.NewUserRepository(db))
	profile := createProfile(t, db, "jose", 10)

	coins, err := svc.Award(db, profile.ID, 49)
	if err != nil {
		t.Fatalf("Award: %v", err)
	}
	if coins != 0 {
		t.Errorf("Award returned %d, want 0", coins)
	}

	var got entity.Profile
	db.First(&got, profile.ID)
	if got.Coins != 10 {
		t.Errorf("coins = %d, want unchanged 10", got.Coins)
	}
}
