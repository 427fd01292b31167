package services

import (
	"context"
	"testing"
	"time"

	"blockbusted/internal/adapters/persistence/jsonstore"
	"blockbusted/internal/adapters/persistence/repositories"
	"blockbusted/internal/core/domain"
	"blockbusted/internal/pkg/codec"

	"github.com/stretchr/testify/require"
)

func newUserService(t *testing.T) (*UserService, repositories.UserRepository, repositories.RentalRepository) {
	t.Helper()
	store, err := jsonstore.Open(t.TempDir())
	require.NoError(t, err)

	userRepo := repositories.NewUserRepository(store)
	rentalRepo := repositories.NewRentalRepository(store)

	require.NoError(t, userRepo.Create(context.Background(), &domain.User{
		ID:            "u1",
		Username:      "moviefan",
		Email:         codec.Obscure("fan@example.com"),
		Role:          domain.RoleUser,
		RentalHistory: []string{},
	}))
	return NewUserService(userRepo, rentalRepo), userRepo, rentalRepo
}

func TestListUsersRevealsEmails(t *testing.T) {
	svc, _, _ := newUserService(t)

	users, err := svc.ListUsers(context.Background())
	require.NoError(t, err)
	require.Len(t, users, 1)
	require.Equal(t, "fan@example.com", users[0].Email)
}

func TestGetUserDetail(t *testing.T) {
	svc, _, rentalRepo := newUserService(t)

	require.NoError(t, rentalRepo.Create(context.Background(), &domain.Rental{
		ID: "r1", UserID: "u1", MovieID: "m1", MovieTitle: "The Terminator",
		RentDate: time.Now(), DueDate: time.Now().Add(7 * 24 * time.Hour),
	}))
	require.NoError(t, rentalRepo.Create(context.Background(), &domain.Rental{
		ID: "r2", UserID: "someone-else", MovieID: "m2",
	}))

	detail, err := svc.GetUserDetail(context.Background(), "u1")
	require.NoError(t, err)
	require.Equal(t, "moviefan", detail.Username)
	require.Len(t, detail.Rentals, 1)
	require.Equal(t, "r1", detail.Rentals[0].ID)

	_, err = svc.GetUserDetail(context.Background(), "ghost")
	require.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestRecordFeedbackWarning(t *testing.T) {
	svc, userRepo, _ := newUserService(t)

	entry, err := svc.RecordFeedback(context.Background(), &FeedbackInput{
		UserID: "u1", FeedbackType: FeedbackWarning, Notes: "returned tape sticky",
	}, "admin")
	require.NoError(t, err)
	require.Equal(t, FeedbackWarning, entry.Type)
	require.Equal(t, "admin", entry.AdminUser)

	u, err := userRepo.GetByID(context.Background(), "u1")
	require.NoError(t, err)
	require.Equal(t, 1, u.Feedback.Warnings)
	require.Len(t, u.AdminFeedback, 1)
	require.False(t, u.Suspended)
}

func TestRecordFeedbackSuspension(t *testing.T) {
	svc, userRepo, _ := newUserService(t)

	_, err := svc.RecordFeedback(context.Background(), &FeedbackInput{
		UserID: "u1", FeedbackType: FeedbackSuspension, Notes: "never rewinds",
	}, "admin")
	require.NoError(t, err)

	u, err := userRepo.GetByID(context.Background(), "u1")
	require.NoError(t, err)
	require.True(t, u.Suspended)
	require.NotNil(t, u.SuspensionDate)
}

func TestRecordFeedbackCommendation(t *testing.T) {
	svc, userRepo, _ := newUserService(t)

	_, err := svc.RecordFeedback(context.Background(), &FeedbackInput{
		UserID: "u1", FeedbackType: FeedbackCommendation,
	}, "admin")
	require.NoError(t, err)

	u, err := userRepo.GetByID(context.Background(), "u1")
	require.NoError(t, err)
	require.Equal(t, 1, u.Feedback.Commendations)
}

func TestRecordFeedbackUnknownTypeHasNoCounterEffect(t *testing.T) {
	svc, userRepo, _ := newUserService(t)

	entry, err := svc.RecordFeedback(context.Background(), &FeedbackInput{
		UserID: "u1", FeedbackType: "note", Notes: "asked about betamax",
	}, "admin")
	require.NoError(t, err)
	require.Equal(t, "note", entry.Type)

	u, err := userRepo.GetByID(context.Background(), "u1")
	require.NoError(t, err)
	require.Len(t, u.AdminFeedback, 1)
	require.Zero(t, u.Feedback.Warnings)
	require.Zero(t, u.Feedback.Commendations)
	require.False(t, u.Suspended)
}

func TestRecordFeedbackUnknownUser(t *testing.T) {
	svc, _, _ := newUserService(t)

	_, err := svc.RecordFeedback(context.Background(), &FeedbackInput{
		UserID: "ghost", FeedbackType: FeedbackWarning,
	}, "admin")
	require.ErrorIs(t, err, domain.ErrUserNotFound)
}
