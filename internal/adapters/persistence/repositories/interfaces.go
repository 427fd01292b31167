package repositories

import (
	"context"

	"blockbusted/internal/core/domain"
)

// UserRepository defines user collection access
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id string) (*domain.User, error)
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
	List(ctx context.Context) ([]domain.User, error)
	// Mutate applies fn to one user inside the collection lock and persists
	// the result. It returns the mutated user.
	Mutate(ctx context.Context, id string, fn func(*domain.User) error) (*domain.User, error)
}

// MovieRepository defines catalog collection access
type MovieRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Movie, error)
	List(ctx context.Context, category, search string) ([]domain.Movie, error)
	Categories(ctx context.Context) ([]string, error)
	SetAvailability(ctx context.Context, id string, available bool) error
	Count(ctx context.Context) (int, error)
	SaveAll(ctx context.Context, movies []domain.Movie) error
}

// RentalRepository defines rental collection access
type RentalRepository interface {
	Create(ctx context.Context, rental *domain.Rental) error
	GetByID(ctx context.Context, id string) (*domain.Rental, error)
	ListByUser(ctx context.Context, userID string) ([]domain.Rental, error)
	ListOpen(ctx context.Context) ([]domain.Rental, error)
	Mutate(ctx context.Context, id string, fn func(*domain.Rental) error) (*domain.Rental, error)
	Delete(ctx context.Context, id string) error
}
