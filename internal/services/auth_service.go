package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"hardware_store/internal/auth"
	"hardware_store/internal/models"
	"hardware_store/internal/repository"
	"hardware_store/internal/validation"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// TokenBlacklist records revoked refresh-token IDs until they would have
// expired anyway. Backed by Redis in production.
type TokenBlacklist interface {
	BlacklistToken(ctx context.Context, jti string, ttl time.Duration) error
	IsTokenBlacklisted(ctx context.Context, jti string) (bool, error)
}

type AuthService interface {
	Register(ctx context.Context, req *validation.RegisterRequest) (*models.User, *auth.TokenPair, error)
	Login(ctx context.Context, username, password string) (*models.User, *auth.TokenPair, error)
	Refresh(ctx context.Context, refreshToken string) (*auth.TokenPair, error)
	Logout(ctx context.Context, refreshToken string) error
	GetUserByID(id uint) (*models.User, error)
	UpdateProfile(user *models.User, req *validation.UpdateProfileRequest) error
}

type authService struct {
	userRepo  repository.UserRepository
	tokens    *auth.Manager
	blacklist TokenBlacklist
}

func NewAuthService(userRepo repository.UserRepository, tokens *auth.Manager, blacklist TokenBlacklist) AuthService {
	return &authService{userRepo: userRepo, tokens: tokens, blacklist: blacklist}
}

func (s *authService) Register(ctx context.Context, req *validation.RegisterRequest) (*models.User, *auth.TokenPair, error) {
	role := req.Role
	if role == "" {
		role = string(models.RoleCustomer)
	}
	if !models.ValidRole(role) {
		return nil, nil, ErrInvalidRole
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: string(hash),
		Role:         role,
		PhoneNumber:  req.PhoneNumber,
		IsActive:     true,
	}
	if err := s.userRepo.Create(user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, nil, ErrUserExists
		}
		return nil, nil, fmt.Errorf("failed to create user: %w", err)
	}

	pair, err := s.tokens.GeneratePair(user.ID, user.Username, user.Role)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to issue tokens: %w", err)
	}
	return user, pair, nil
}

// Login authenticates by username, falling back to email lookup.
func (s *authService) Login(ctx context.Context, username, password string) (*models.User, *auth.TokenPair, error) {
	user, err := s.userRepo.GetByUsername(username)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, fmt.Errorf("failed to load user: %w", err)
		}
		user, err = s.userRepo.GetByEmail(username)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, nil, ErrInvalidCredentials
			}
			return nil, nil, fmt.Errorf("failed to load user: %w", err)
		}
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, nil, ErrInvalidCredentials
	}
	if !user.IsActive {
		return nil, nil, ErrAccountDisabled
	}

	pair, err := s.tokens.GeneratePair(user.ID, user.Username, user.Role)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to issue tokens: %w", err)
	}
	return user, pair, nil
}

// Refresh rotates the refresh token: the presented token's ID is
// blacklisted and a fresh pair issued.
func (s *authService) Refresh(ctx context.Context, refreshToken string) (*auth.TokenPair, error) {
	claims, err := s.parseRefresh(ctx, refreshToken)
	if err != nil {
		return nil, err
	}

	user, err := s.userRepo.GetByID(claims.UserID)
	if err != nil {
		return nil, ErrInvalidToken
	}
	if !user.IsActive {
		return nil, ErrAccountDisabled
	}

	if err := s.blacklist.BlacklistToken(ctx, claims.ID, time.Until(claims.ExpiresAt.Time)); err != nil {
		return nil, fmt.Errorf("failed to revoke refresh token: %w", err)
	}

	pair, err := s.tokens.GeneratePair(user.ID, user.Username, user.Role)
	if err != nil {
		return nil, fmt.Errorf("failed to issue tokens: %w", err)
	}
	return pair, nil
}

func (s *authService) Logout(ctx context.Context, refreshToken string) error {
	claims, err := s.parseRefresh(ctx, refreshToken)
	if err != nil {
		return err
	}
	if err := s.blacklist.BlacklistToken(ctx, claims.ID, time.Until(claims.ExpiresAt.Time)); err != nil {
		return fmt.Errorf("failed to revoke refresh token: %w", err)
	}
	return nil
}

func (s *authService) parseRefresh(ctx context.Context, refreshToken string) (*auth.Claims, error) {
	claims, err := s.tokens.Parse(refreshToken)
	if err != nil {
		return nil, ErrInvalidToken
	}
	if claims.TokenType != auth.TokenTypeRefresh {
		return nil, ErrInvalidToken
	}
	revoked, err := s.blacklist.IsTokenBlacklisted(ctx, claims.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to check token blacklist: %w", err)
	}
	if revoked {
		return nil, ErrInvalidToken
	}
	return claims, nil
}

func (s *authService) GetUserByID(id uint) (*models.User, error) {
	return s.userRepo.GetByID(id)
}

func (s *authService) UpdateProfile(user *models.User, req *validation.UpdateProfileRequest) error {
	if req.Email != "" {
		user.Email = req.Email
	}
	if req.PhoneNumber != "" {
		user.PhoneNumber = req.PhoneNumber
	}
	if err := s.userRepo.Update(user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrUserExists
		}
		return fmt.Errorf("failed to update profile: %w", err)
	}
	return nil
}
