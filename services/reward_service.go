package services

import (
	"github.com/KentLacno/ccl-reservation-system/repository"
	"gorm.io/gorm"
)

// 20 coins for every 50 PHP spent, plus a one-time signup bonus.
const (
	coinsPerStep     = 20
	pesosPerStep     = 50
	SignupBonusCoins = 50
)

type RewardService struct {
	UserRepo *repository.UserRepository
}

func NewRewardService(userRepo *repository.UserRepository) *RewardService {
	return &RewardService{UserRepo: userRepo}
}

func (s *RewardService) CoinsFor(amountSpent int64) int64 {
	if amountSpent <= 0 {
		return 0
	}
	return amountSpent / pesosPerStep * coinsPerStep
}

// Award credits the coins earned for amountSpent inside the caller's
// transaction. Zero-coin awards write nothing.
func (s *RewardService) Award(tx *gorm.DB, profileID uint, amountSpent int64) (int64, error) {
	coins := s.CoinsFor(amountSpent)
	if coins == 0 {
		return 0, nil
	}
	if err := s.UserRepo.AddCoins(tx, profileID, coins); err != nil {
		return 0, err
	}
	return coins, nil
}
