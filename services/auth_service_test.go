package services

import (
	"errors"
	"testing"
	"time"

	"github.com/KentLacno/ccl-reservation-system/entity"
	"github.com/KentLacno/ccl-reservation-system/pkg/msgraph"
	"github.com/KentLacno/ccl-reservation-system/repository"
	"gorm.io/gorm"
)

func newAuthService(db *gorm.DB) *AuthService {
	return NewAuthService(db, repository.NewUserRepository(db), nil, "cclcentrex.edu.ph", "test-secret", time.Hour)
}

func TestIsAllowedEmail(t *testing.T) {
	svc := newAuthService(nil)

	tests := []struct {
		email string
		want  bool
	}{
		{"maria@cclcentrex.edu.ph", true},
		{"maria@gmail.com", false},
		{"maria@sub.cclcentrex.edu.ph", false},
		{"cclcentrex.edu.ph", false},
		{"", false},
	}
	for _, tt := range tests {
		if got := svc.IsAllowedEmail(tt.email); got != tt.want {
			t.Errorf("IsAllowedEmail(%q) = %v, want %v", tt.email, got, tt.want)
		}
	}
}

func TestCreateFromDirectoryProvisionsUserAndBonus(t *testing.T) {
	db := setupDB(t)
	svc := newAuthService(db)

	user, err := svc.CreateFromDirectory(&msgraph.UserInfo{
		Mail:        "maria@cclcentrex.edu.ph",
		DisplayName: "Maria Santos",
		JobTitle:    "Teacher",
		Department:  "Grade 4",
	})
	if err != nil {
		t.Fatalf("CreateFromDirectory: %v", err)
	}

	if user.Role != "staff" {
		t.Errorf("role = %q, want staff", user.Role)
	}
	if user.Password == "" {
		t.Error("password not set")
	}

	var profile entity.Profile
	if err := db.Where("user_id = ?", user.ID).First(&profile).Error; err != nil {
		t.Fatalf("load profile: %v", err)
	}
	if profile.Name != "Maria Santos" || profile.Department != "Grade 4" {
		t.Errorf("profile = %+v, want directory fields copied", profile)
	}
	if profile.Coins != SignupBonusCoins {
		t.Errorf("coins = %d, want signup bonus %d", profile.Coins, SignupBonusCoins)
	}
}

func TestCreateFromDirectoryRejectsForeignDomain(t *testing.T) {
	db := setupDB(t)
	svc := newAuthService(db)

	_, err := svc.CreateFromDirectory(&msgraph.UserInfo{Mail: "intruder@gmail.com", DisplayName: "X"})
	if !errors.Is(err, ErrEmailDomainNotAllowed) {
		t.Fatalf("err = %v, want ErrEmailDomainNotAllowed", err)
	}
	if got := countRows(t, db, &entity.User{}); got != 0 {
		t.Errorf("user rows = %d, want 0", got)
	}
}
