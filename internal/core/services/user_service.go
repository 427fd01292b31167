package services

import (
	"context"
	"fmt"
	"time"

	"blockbusted/internal/adapters/persistence/repositories"
	"blockbusted/internal/core/domain"
	"blockbusted/internal/pkg/codec"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// Admin feedback types with counter side effects. Other type values are
// accepted and recorded but change no counters.
const (
	FeedbackWarning      = "warning"
	FeedbackSuspension   = "suspension"
	FeedbackCommendation = "commendation"
)

// UserService handles the admin-facing user directory operations
type UserService struct {
	userRepo   repositories.UserRepository
	rentalRepo repositories.RentalRepository
	validate   *validator.Validate
}

// NewUserService creates a new user service
func NewUserService(userRepo repositories.UserRepository, rentalRepo repositories.RentalRepository) *UserService {
	return &UserService{
		userRepo:   userRepo,
		rentalRepo: rentalRepo,
		validate:   validator.New(),
	}
}

// FeedbackInput represents admin feedback input
type FeedbackInput struct {
	UserID       string `json:"userId" validate:"required"`
	FeedbackType string `json:"feedbackType" validate:"required"`
	Notes        string `json:"notes"`
}

// UserDetail is the admin view of one user with their rentals
type UserDetail struct {
	*domain.UserResponse
	Rentals []domain.Rental `json:"rentals"`
}

// ListUsers returns all users with revealed emails
func (s *UserService) ListUsers(ctx context.Context) ([]*domain.UserResponse, error) {
	users, err := s.userRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]*domain.UserResponse, 0, len(users))
	for i := range users {
		out = append(out, users[i].ToResponse(codec.Reveal(users[i].Email)))
	}
	return out, nil
}

// GetUserDetail returns one user with their rental records
func (s *UserService) GetUserDetail(ctx context.Context, userID string) (*UserDetail, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	rentals, err := s.rentalRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	return &UserDetail{
		UserResponse: user.ToResponse(codec.Reveal(user.Email)),
		Rentals:      rentals,
	}, nil
}

// RecordFeedback appends an admin feedback entry and applies its counter
// side effect. adminUser is the username of the admin issuing it.
func (s *UserService) RecordFeedback(ctx context.Context, input *FeedbackInput, adminUser string) (*domain.AdminFeedback, error) {
	if err := s.validate.Struct(input); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}

	entry := domain.AdminFeedback{
		ID:        uuid.NewString(),
		Type:      input.FeedbackType,
		Notes:     input.Notes,
		Timestamp: time.Now(),
		AdminUser: adminUser,
	}

	_, err := s.userRepo.Mutate(ctx, input.UserID, func(u *domain.User) error {
		u.AdminFeedback = append(u.AdminFeedback, entry)

		switch input.FeedbackType {
		case FeedbackWarning:
			u.Feedback.Warnings++
		case FeedbackSuspension:
			now := entry.Timestamp
			u.Suspended = true
			u.SuspensionDate = &now
		case FeedbackCommendation:
			u.Feedback.Commendations++
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &entry, nil
}
