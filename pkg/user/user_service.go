package user

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"kolomarket-backend/domain"
	"kolomarket-backend/entities"
	"kolomarket-backend/pkg/jwt"
)

type (
	// BalanceReader is implemented by the points repository; the profile
	// summary shows the running balance next to the lifetime spent counter.
	BalanceReader interface {
		GetUserBalance(ctx context.Context, userID string) (int, error)
	}

	UserService interface {
		Register(ctx context.Context, req domain.RegisterRequest) (*domain.ProfileSummary, error)
		Login(ctx context.Context, req domain.LoginRequest) (*domain.LoginResponse, error)
		Me(ctx context.Context, userID string) (*domain.ProfileSummary, error)
		ActivatePremium(ctx context.Context, userID string, until time.Time) error
	}

	userService struct {
		userRepository UserRepository
		balanceReader  BalanceReader
		jwtService     jwt.JWTService
	}
)

func NewUserService(userRepository UserRepository, balanceReader BalanceReader, jwtService jwt.JWTService) UserService {
	return &userService{
		userRepository: userRepository,
		balanceReader:  balanceReader,
		jwtService:     jwtService,
	}
}

func (s *userService) Register(ctx context.Context, req domain.RegisterRequest) (*domain.ProfileSummary, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))
	gamertag := strings.TrimSpace(req.Gamertag)

	if _, err := s.userRepository.GetUserByEmail(ctx, email); err == nil {
		return nil, domain.ErrEmailAlreadyExists
	}
	if _, err := s.userRepository.GetUserByGamertag(ctx, gamertag); err == nil {
		return nil, domain.ErrGamertagAlreadyExists
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &entities.User{
		ID:       uuid.New(),
		Name:     req.Name,
		Gamertag: gamertag,
		Email:    email,
		Phone:    req.Phone,
		Password: string(hashed),
		Role:     domain.RoleUser,
	}

	if err := s.userRepository.CreateUser(ctx, user); err != nil {
		return nil, err
	}

	return s.toProfileSummary(ctx, user)
}

func (s *userService) Login(ctx context.Context, req domain.LoginRequest) (*domain.LoginResponse, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	user, err := s.userRepository.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrCredentialsInvalid
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return nil, domain.ErrCredentialsInvalid
	}

	token := s.jwtService.GenerateTokenUser(user.ID.String(), user.Role)

	return &domain.LoginResponse{
		Token: token,
		Role:  user.Role,
	}, nil
}

func (s *userService) Me(ctx context.Context, userID string) (*domain.ProfileSummary, error) {
	user, err := s.userRepository.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}

	return s.toProfileSummary(ctx, user)
}

func (s *userService) ActivatePremium(ctx context.Context, userID string, until time.Time) error {
	user, err := s.userRepository.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrUserNotFound
		}
		return err
	}

	user.IsPremium = true
	user.PremiumUntil = &until

	return s.userRepository.UpdateUser(ctx, user)
}

func (s *userService) toProfileSummary(ctx context.Context, user *entities.User) (*domain.ProfileSummary, error) {
	balance, err := s.balanceReader.GetUserBalance(ctx, user.ID.String())
	if err != nil {
		return nil, err
	}

	// An expired subscription is reported as non-premium even before the
	// flag is cleared; coupon gates rely on this.
	isPremium := user.IsPremium
	if isPremium && user.PremiumUntil != nil && user.PremiumUntil.Before(time.Now()) {
		isPremium = false
	}

	return &domain.ProfileSummary{
		ID:            user.ID.String(),
		Name:          user.Name,
		Gamertag:      user.Gamertag,
		Email:         user.Email,
		Phone:         user.Phone,
		Balance:       balance,
		LifetimeSpent: user.LifetimeSpentPoints,
		IsPremium:     isPremium,
		PremiumUntil:  user.PremiumUntil,
	}, nil
}
