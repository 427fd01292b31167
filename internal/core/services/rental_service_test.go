package services

import (
	"context"
	"sync"
	"testing"
	"time"

	"blockbusted/internal/adapters/persistence/jsonstore"
	"blockbusted/internal/adapters/persistence/repositories"
	"blockbusted/internal/core/domain"

	"github.com/stretchr/testify/require"
)

type rentalEnv struct {
	store      *jsonstore.Store
	userRepo   repositories.UserRepository
	movieRepo  repositories.MovieRepository
	rentalRepo repositories.RentalRepository
	svc        *RentalService
}

func newRentalEnv(t *testing.T) *rentalEnv {
	t.Helper()
	store, err := jsonstore.Open(t.TempDir())
	require.NoError(t, err)

	env := &rentalEnv{
		store:      store,
		userRepo:   repositories.NewUserRepository(store),
		movieRepo:  repositories.NewMovieRepository(store),
		rentalRepo: repositories.NewRentalRepository(store),
	}
	env.svc = NewRentalService(env.userRepo, env.movieRepo, env.rentalRepo)

	require.NoError(t, env.userRepo.Create(context.Background(), &domain.User{
		ID:               "u1",
		Username:         "moviefan",
		Email:            "SALT1985_sna@rknzcyr.pbz",
		Password:         "$2a$12$hash",
		Role:             domain.RoleUser,
		RegistrationDate: time.Now(),
		RentalHistory:    []string{},
	}))
	require.NoError(t, jsonstore.Save(store, "movies", []domain.Movie{
		{ID: "m1", Title: "The Terminator", Category: "Action", Year: 1984, Available: true, Price: 3.99},
		{ID: "m2", Title: "Ghostbusters", Category: "Comedy", Year: 1984, Available: false, Price: 3.49},
	}))
	return env
}

func (e *rentalEnv) user(t *testing.T) *domain.User {
	t.Helper()
	u, err := e.userRepo.GetByID(context.Background(), "u1")
	require.NoError(t, err)
	return u
}

func (e *rentalEnv) movie(t *testing.T, id string) *domain.Movie {
	t.Helper()
	m, err := e.movieRepo.GetByID(context.Background(), id)
	require.NoError(t, err)
	return m
}

func TestRentHappyPath(t *testing.T) {
	env := newRentalEnv(t)
	t0 := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)
	env.svc.now = func() time.Time { return t0 }

	rental, err := env.svc.Rent(context.Background(), &RentInput{UserID: "u1", MovieID: "m1"})
	require.NoError(t, err)

	require.Equal(t, "u1", rental.UserID)
	require.Equal(t, "m1", rental.MovieID)
	require.Equal(t, "The Terminator", rental.MovieTitle)
	require.Equal(t, t0, rental.RentDate)
	require.Equal(t, t0.Add(7*24*time.Hour), rental.DueDate)
	require.False(t, rental.Returned)

	require.False(t, env.movie(t, "m1").Available)

	u := env.user(t)
	require.Equal(t, []string{rental.ID}, u.RentalHistory)
	require.Equal(t, 1, u.Feedback.TotalRentals)
}

func TestRentUnavailableMovie(t *testing.T) {
	env := newRentalEnv(t)

	_, err := env.svc.Rent(context.Background(), &RentInput{UserID: "u1", MovieID: "m2"})
	require.ErrorIs(t, err, domain.ErrMovieUnavailable)

	require.Zero(t, env.user(t).Feedback.TotalRentals)
}

func TestRentUnknownUserAndMovie(t *testing.T) {
	env := newRentalEnv(t)

	_, err := env.svc.Rent(context.Background(), &RentInput{UserID: "ghost", MovieID: "m1"})
	require.ErrorIs(t, err, domain.ErrUserNotFound)

	_, err = env.svc.Rent(context.Background(), &RentInput{UserID: "u1", MovieID: "m404"})
	require.ErrorIs(t, err, domain.ErrMovieNotFound)
}

func TestRentDeliveryRequiresAddress(t *testing.T) {
	env := newRentalEnv(t)

	_, err := env.svc.Rent(context.Background(), &RentInput{
		UserID: "u1", MovieID: "m1", DeliveryOption: domain.DeliveryCourier,
	})
	require.ErrorIs(t, err, domain.ErrValidation)

	rental, err := env.svc.Rent(context.Background(), &RentInput{
		UserID: "u1", MovieID: "m1",
		DeliveryOption: domain.DeliveryCourier, DeliveryAddress: "42 Video Lane",
	})
	require.NoError(t, err)
	require.Equal(t, "42 Video Lane", rental.DeliveryAddress)
}

func TestReturnOnTimeRewound(t *testing.T) {
	env := newRentalEnv(t)
	t0 := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)
	env.svc.now = func() time.Time { return t0 }

	rental, err := env.svc.Rent(context.Background(), &RentInput{UserID: "u1", MovieID: "m1"})
	require.NoError(t, err)

	env.svc.now = func() time.Time { return t0.Add(3 * 24 * time.Hour) }
	counters, err := env.svc.Return(context.Background(), &ReturnInput{
		UserID: "u1", RentalID: rental.ID, Rewound: true,
	})
	require.NoError(t, err)

	require.Equal(t, 1, counters.TotalRentals)
	require.Zero(t, counters.OverdueReturns)
	require.Zero(t, counters.LateReturns)
	require.Zero(t, counters.NotRewound)

	require.True(t, env.movie(t, "m1").Available)

	stored, err := env.rentalRepo.GetByID(context.Background(), rental.ID)
	require.NoError(t, err)
	require.True(t, stored.Returned)
	require.NotNil(t, stored.ReturnDate)
	require.True(t, stored.Rewound)
}

func TestReturnOverdueLateAndNotRewound(t *testing.T) {
	env := newRentalEnv(t)
	t0 := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)
	env.svc.now = func() time.Time { return t0 }

	rental, err := env.svc.Rent(context.Background(), &RentInput{UserID: "u1", MovieID: "m1"})
	require.NoError(t, err)

	// One day past the 24h grace window on top of the due date
	env.svc.now = func() time.Time { return t0.Add(9 * 24 * time.Hour) }
	counters, err := env.svc.Return(context.Background(), &ReturnInput{
		UserID: "u1", RentalID: rental.ID, Rewound: false,
	})
	require.NoError(t, err)

	require.Equal(t, 1, counters.OverdueReturns)
	require.Equal(t, 1, counters.LateReturns)
	require.Equal(t, 1, counters.NotRewound)
	require.True(t, env.movie(t, "m1").Available)
}

func TestReturnExactlyOneDayPastDueIsNotLate(t *testing.T) {
	env := newRentalEnv(t)
	t0 := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)
	env.svc.now = func() time.Time { return t0 }

	rental, err := env.svc.Rent(context.Background(), &RentInput{UserID: "u1", MovieID: "m1"})
	require.NoError(t, err)

	// Exactly dueDate + 24h: overdue, but not yet late
	env.svc.now = func() time.Time { return rental.DueDate.Add(24 * time.Hour) }
	counters, err := env.svc.Return(context.Background(), &ReturnInput{
		UserID: "u1", RentalID: rental.ID, Rewound: true,
	})
	require.NoError(t, err)

	require.Equal(t, 1, counters.OverdueReturns)
	require.Zero(t, counters.LateReturns)
}

func TestReturnTwiceFails(t *testing.T) {
	env := newRentalEnv(t)

	rental, err := env.svc.Rent(context.Background(), &RentInput{UserID: "u1", MovieID: "m1"})
	require.NoError(t, err)

	_, err = env.svc.Return(context.Background(), &ReturnInput{UserID: "u1", RentalID: rental.ID, Rewound: true})
	require.NoError(t, err)

	_, err = env.svc.Return(context.Background(), &ReturnInput{UserID: "u1", RentalID: rental.ID, Rewound: true})
	require.ErrorIs(t, err, domain.ErrAlreadyReturned)

	// Counters were applied exactly once
	require.Equal(t, 1, env.user(t).Feedback.TotalRentals)
}

func TestReturnForeignRentalIsNotFound(t *testing.T) {
	env := newRentalEnv(t)
	require.NoError(t, env.userRepo.Create(context.Background(), &domain.User{
		ID: "u2", Username: "other", Email: "SALT1985_x", RentalHistory: []string{},
	}))

	rental, err := env.svc.Rent(context.Background(), &RentInput{UserID: "u1", MovieID: "m1"})
	require.NoError(t, err)

	_, err = env.svc.Return(context.Background(), &ReturnInput{UserID: "u2", RentalID: rental.ID, Rewound: true})
	require.ErrorIs(t, err, domain.ErrRentalNotFound)

	stored, err := env.rentalRepo.GetByID(context.Background(), rental.ID)
	require.NoError(t, err)
	require.False(t, stored.Returned)
}

func TestReturnWithUserGoneIsNotFound(t *testing.T) {
	env := newRentalEnv(t)

	// Rental record referencing a user absent from the directory
	require.NoError(t, env.rentalRepo.Create(context.Background(), &domain.Rental{
		ID: "orphan", UserID: "ghost", MovieID: "m1", MovieTitle: "The Terminator",
		RentDate: time.Now(), DueDate: time.Now().Add(7 * 24 * time.Hour),
	}))

	_, err := env.svc.Return(context.Background(), &ReturnInput{UserID: "ghost", RentalID: "orphan", Rewound: true})
	require.ErrorIs(t, err, domain.ErrRentalNotFound)

	// The rental was not closed on the way out
	stored, err := env.rentalRepo.GetByID(context.Background(), "orphan")
	require.NoError(t, err)
	require.False(t, stored.Returned)
}

// Two requests racing for the last copy: exactly one may win.
func TestConcurrentRentSameMovie(t *testing.T) {
	env := newRentalEnv(t)
	require.NoError(t, env.userRepo.Create(context.Background(), &domain.User{
		ID: "u2", Username: "other", Email: "SALT1985_x", RentalHistory: []string{},
	}))

	const attempts = 10
	errs := make([]error, attempts)
	var wg sync.WaitGroup
	wg.Add(attempts)
	for i := 0; i < attempts; i++ {
		i := i
		go func() {
			defer wg.Done()
			userID := "u1"
			if i%2 == 1 {
				userID = "u2"
			}
			_, errs[i] = env.svc.Rent(context.Background(), &RentInput{UserID: userID, MovieID: "m1"})
		}()
	}
	wg.Wait()

	won := 0
	for _, err := range errs {
		if err == nil {
			won++
		} else {
			require.ErrorIs(t, err, domain.ErrMovieUnavailable)
		}
	}
	require.Equal(t, 1, won)

	open, err := env.rentalRepo.ListOpen(context.Background())
	require.NoError(t, err)
	require.Len(t, open, 1)
}

func TestListByUser(t *testing.T) {
	env := newRentalEnv(t)

	rental, err := env.svc.Rent(context.Background(), &RentInput{UserID: "u1", MovieID: "m1"})
	require.NoError(t, err)

	rentals, err := env.svc.ListByUser(context.Background(), "u1")
	require.NoError(t, err)
	require.Len(t, rentals, 1)
	require.Equal(t, rental.ID, rentals[0].ID)

	none, err := env.svc.ListByUser(context.Background(), "nobody")
	require.NoError(t, err)
	require.Empty(t, none)
}
