package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"blockbusted/internal/adapters/persistence/repositories"
	"blockbusted/internal/config"
	"blockbusted/internal/core/domain"
	"blockbusted/internal/pkg/codec"
	"blockbusted/internal/pkg/jwt"
	"blockbusted/internal/pkg/password"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// AuthService handles registration and login
type AuthService struct {
	userRepo repositories.UserRepository
	cfg      *config.Config
	validate *validator.Validate
}

// NewAuthService creates a new auth service
func NewAuthService(userRepo repositories.UserRepository, cfg *config.Config) *AuthService {
	return &AuthService{
		userRepo: userRepo,
		cfg:      cfg,
		validate: validator.New(),
	}
}

// RegisterInput represents registration input
type RegisterInput struct {
	Username string `json:"username" validate:"required,min=3,max=50"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// LoginInput represents login input
type LoginInput struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// AuthResponse represents authentication response
type AuthResponse struct {
	User        *domain.UserResponse `json:"user"`
	AccessToken string               `json:"access_token"`
}

// Register registers a new user
func (s *AuthService) Register(ctx context.Context, input *RegisterInput) (*AuthResponse, error) {
	if err := s.validate.Struct(input); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}

	hashed, err := password.Hash(input.Password)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		ID:               uuid.NewString(),
		Username:         strings.TrimSpace(input.Username),
		Email:            codec.Obscure(strings.TrimSpace(input.Email)),
		Password:         hashed,
		Role:             domain.RoleUser,
		RegistrationDate: time.Now(),
		RentalHistory:    []string{},
	}

	// The duplicate check happens inside Create, under the collection lock
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	token, err := s.generateToken(user)
	if err != nil {
		return nil, err
	}

	return &AuthResponse{
		User:        user.ToResponse(strings.TrimSpace(input.Email)),
		AccessToken: token,
	}, nil
}

// Login authenticates a user and returns the profile with a revealed email
func (s *AuthService) Login(ctx context.Context, input *LoginInput) (*AuthResponse, error) {
	if err := s.validate.Struct(input); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}

	user, err := s.userRepo.GetByUsername(ctx, strings.TrimSpace(input.Username))
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}

	if !password.Verify(input.Password, user.Password) {
		return nil, domain.ErrInvalidCredentials
	}

	token, err := s.generateToken(user)
	if err != nil {
		return nil, err
	}

	return &AuthResponse{
		User:        user.ToResponse(codec.Reveal(user.Email)),
		AccessToken: token,
	}, nil
}

func (s *AuthService) generateToken(user *domain.User) (string, error) {
	return jwt.GenerateAccessToken(
		user.ID,
		user.Username,
		user.Role,
		s.cfg.JWT.Secret,
		s.cfg.JWT.AccessTokenMins,
	)
}
