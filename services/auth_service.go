package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/KentLacno/ccl-reservation-system/entity"
	"github.com/KentLacno/ccl-reservation-system/pkg/msgraph"
	"github.com/KentLacno/ccl-reservation-system/repository"
	"github.com/KentLacno/ccl-reservation-system/utils"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var ErrEmailDomainNotAllowed = errors.New("email domain not allowed")

// AuthService handles the organizational sign-in flow: redirect to the
// identity provider, then provision or look up the local account.
type AuthService struct {
	DB            *gorm.DB
	UserRepo      *repository.UserRepository
	Graph         *msgraph.Client
	AllowedDomain string
	JWTSecret     string
	JWTTTL        time.Duration
}

func NewAuthService(db *gorm.DB, userRepo *repository.UserRepository, graph *msgraph.Client, allowedDomain, jwtSecret string, jwtTTL time.Duration) *AuthService {
	return &AuthService{
		DB:            db,
		UserRepo:      userRepo,
		Graph:         graph,
		AllowedDomain: allowedDomain,
		JWTSecret:     jwtSecret,
		JWTTTL:        jwtTTL,
	}
}

func (s *AuthService) AuthorizationURL() string {
	return s.Graph.AuthorizationURL(uuid.NewString())
}

func (s *AuthService) IsAllowedEmail(email string) bool {
	_, domain, ok := strings.Cut(email, "@")
	return ok && domain == s.AllowedDomain
}

// HandleCallback exchanges the authorization code, finds or provisions
// the local account, and issues a session token.
func (s *AuthService) HandleCallback(ctx context.Context, code string) (string, *entity.User, error) {
	info, err := s.Graph.FetchUser(ctx, code)
	if err != nil {
		return "", nil, err
	}
	if info.Mail == "" {
		return "", nil, errors.New("identity provider returned no email")
	}

	user, err := s.UserRepo.FindByEmail(info.Mail)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		user, err = s.CreateFromDirectory(info)
	}
	if err != nil {
		return "", nil, err
	}

	token, err := utils.GenerateToken(user.ID, user.Role, s.JWTSecret, s.JWTTTL)
	if err != nil {
		return "", nil, errors.New("cannot generate token")
	}
	return token, user, nil
}

// CreateFromDirectory provisions a user and profile from the directory
// record. The password is random and never used to log in; sign-in
// always goes through the identity provider.
func (s *AuthService) CreateFromDirectory(info *msgraph.UserInfo) (*entity.User, error) {
	if !s.IsAllowedEmail(info.Mail) {
		return nil, ErrEmailDomainNotAllowed
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(uuid.NewString()), bcrypt.DefaultCost)
	if err != nil {
		return nil, errors.New("hash password failed")
	}

	name := info.DisplayName
	if name == "" {
		name = info.GivenName
	}

	user := &entity.User{
		Email:    info.Mail,
		Password: string(hashed),
		Role:     "staff",
	}
	err = s.DB.Transaction(func(tx *gorm.DB) error {
		if err := s.UserRepo.CreateUser(tx, user); err != nil {
			return err
		}
		profile := &entity.Profile{
			UserID:     user.ID,
			Name:       name,
			JobTitle:   info.JobTitle,
			Department: info.Department,
			Coins:      SignupBonusCoins,
		}
		return s.UserRepo.CreateProfile(tx, profile)
	})
	if err != nil {
		return nil, err
	}
	return user, nil
}

func (s *AuthService) ProfileForUser(userID uint) (*entity.Profile, error) {
	return s.UserRepo.FindProfileByUserID(userID)
}
