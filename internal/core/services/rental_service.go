package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"sync"
	"time"

	"blockbusted/internal/adapters/persistence/repositories"
	"blockbusted/internal/core/domain"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

const (
	// rentalPeriod is the fixed due-date window. Not configurable.
	rentalPeriod = 7 * 24 * time.Hour

	// lateThreshold separates merely overdue returns from late ones.
	// A return past due by exactly this amount is overdue but NOT late.
	lateThreshold = 24 * time.Hour
)

// RentalService drives the rental lifecycle: open (rent) and close (return).
// A service-level mutex linearizes both operations so an availability check
// and the flip it guards cannot interleave with another request.
type RentalService struct {
	userRepo   repositories.UserRepository
	movieRepo  repositories.MovieRepository
	rentalRepo repositories.RentalRepository
	validate   *validator.Validate

	mu  sync.Mutex
	now func() time.Time
}

// NewRentalService creates a new rental service
func NewRentalService(
	userRepo repositories.UserRepository,
	movieRepo repositories.MovieRepository,
	rentalRepo repositories.RentalRepository,
) *RentalService {
	return &RentalService{
		userRepo:   userRepo,
		movieRepo:  movieRepo,
		rentalRepo: rentalRepo,
		validate:   validator.New(),
		now:        time.Now,
	}
}

// RentInput represents rent input
type RentInput struct {
	UserID          string `json:"userId" validate:"required"`
	MovieID         string `json:"movieId" validate:"required"`
	DeliveryOption  string `json:"deliveryOption" validate:"omitempty,oneof=pickup delivery"`
	DeliveryAddress string `json:"deliveryAddress"`
}

// ReturnInput represents return input
type ReturnInput struct {
	UserID   string `json:"userId" validate:"required"`
	RentalID string `json:"rentalId" validate:"required"`
	Rewound  bool   `json:"rewound"`
}

// Rent opens a rental: creates the record, blocks the movie and updates the
// user's history. The three collection writes are ordered movie -> rental ->
// user with compensating writes if a later one fails.
func (s *RentalService) Rent(ctx context.Context, input *RentInput) (*domain.Rental, error) {
	if err := s.validate.Struct(input); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}
	if input.DeliveryOption == domain.DeliveryCourier && strings.TrimSpace(input.DeliveryAddress) == "" {
		return nil, fmt.Errorf("%w: delivery address is required for delivery", domain.ErrValidation)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.userRepo.GetByID(ctx, input.UserID); err != nil {
		return nil, err
	}

	movie, err := s.movieRepo.GetByID(ctx, input.MovieID)
	if err != nil {
		return nil, err
	}
	if !movie.Available {
		return nil, domain.ErrMovieUnavailable
	}

	rentDate := s.now()
	rental := &domain.Rental{
		ID:              uuid.NewString(),
		UserID:          input.UserID,
		MovieID:         movie.ID,
		MovieTitle:      movie.Title,
		RentDate:        rentDate,
		DueDate:         rentDate.Add(rentalPeriod),
		Returned:        false,
		Rewound:         false,
		DeliveryOption:  input.DeliveryOption,
		DeliveryAddress: strings.TrimSpace(input.DeliveryAddress),
	}

	if err := s.movieRepo.SetAvailability(ctx, movie.ID, false); err != nil {
		return nil, err
	}

	if err := s.rentalRepo.Create(ctx, rental); err != nil {
		s.releaseMovie(ctx, movie.ID)
		return nil, err
	}

	_, err = s.userRepo.Mutate(ctx, input.UserID, func(u *domain.User) error {
		u.RentalHistory = append(u.RentalHistory, rental.ID)
		u.Feedback.TotalRentals++
		return nil
	})
	if err != nil {
		if derr := s.rentalRepo.Delete(ctx, rental.ID); derr != nil {
			log.Printf("❌ Failed to roll back rental %s: %v", rental.ID, derr)
		}
		s.releaseMovie(ctx, movie.ID)
		return nil, err
	}

	return rental, nil
}

// Return closes a rental exactly once and applies the feedback counters:
// any lateness counts as overdue, lateness strictly beyond 24h additionally
// counts as late, and an unrewound tape counts regardless of lateness.
// Returns the user's updated counters.
func (s *RentalService) Return(ctx context.Context, input *ReturnInput) (*domain.FeedbackCounters, error) {
	if err := s.validate.Struct(input); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	existing, err := s.rentalRepo.GetByID(ctx, input.RentalID)
	if err != nil {
		return nil, err
	}
	// A rental belonging to another user is reported as not found, never as
	// a distinct authorization failure.
	if existing.UserID != input.UserID {
		return nil, domain.ErrRentalNotFound
	}

	returnDate := s.now()
	rental, err := s.rentalRepo.Mutate(ctx, input.RentalID, func(r *domain.Rental) error {
		if r.Returned {
			return domain.ErrAlreadyReturned
		}
		r.Returned = true
		r.ReturnDate = &returnDate
		r.Rewound = input.Rewound
		return nil
	})
	if err != nil {
		return nil, err
	}

	overdue := returnDate.After(rental.DueDate)
	late := overdue && returnDate.Sub(rental.DueDate) > lateThreshold

	user, err := s.userRepo.Mutate(ctx, input.UserID, func(u *domain.User) error {
		if overdue {
			u.Feedback.OverdueReturns++
		}
		if late {
			u.Feedback.LateReturns++
		}
		if !input.Rewound {
			u.Feedback.NotRewound++
		}
		return nil
	})
	if err != nil {
		s.reopenRental(ctx, rental.ID)
		// A rental whose user vanished from the directory is reported as
		// not found, the same as a foreign rental.
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrRentalNotFound
		}
		return nil, err
	}

	// Make the movie rentable again. A missing movie is tolerated, matching
	// the legacy behavior for catalog entries removed out of band.
	if err := s.movieRepo.SetAvailability(ctx, rental.MovieID, true); err != nil && !errors.Is(err, domain.ErrMovieNotFound) {
		log.Printf("❌ Failed to release movie %s after return: %v", rental.MovieID, err)
		return nil, err
	}

	return &user.Feedback, nil
}

// ListByUser returns all rentals for one user
func (s *RentalService) ListByUser(ctx context.Context, userID string) ([]domain.Rental, error) {
	return s.rentalRepo.ListByUser(ctx, userID)
}

func (s *RentalService) releaseMovie(ctx context.Context, movieID string) {
	if err := s.movieRepo.SetAvailability(ctx, movieID, true); err != nil {
		log.Printf("❌ Failed to roll back availability of movie %s: %v", movieID, err)
	}
}

func (s *RentalService) reopenRental(ctx context.Context, rentalID string) {
	_, err := s.rentalRepo.Mutate(ctx, rentalID, func(r *domain.Rental) error {
		r.Returned = false
		r.ReturnDate = nil
		r.Rewound = false
		return nil
	})
	if err != nil {
		log.Printf("❌ Failed to roll back return of rental %s: %v", rentalID, err)
	}
}
