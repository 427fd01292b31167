package repositories

import (
	"context"

	"blockbusted/internal/adapters/persistence/jsonstore"
	"blockbusted/internal/core/domain"
)

const usersCollection = "users"

// userRepository implements UserRepository over the JSON store
type userRepository struct {
	store *jsonstore.Store
}

// NewUserRepository creates a new user repository
func NewUserRepository(store *jsonstore.Store) UserRepository {
	return &userRepository{store: store}
}

// Create appends a new user. The duplicate check runs inside the collection
// lock so two concurrent registrations cannot both pass it.
func (r *userRepository) Create(ctx context.Context, user *domain.User) error {
	return jsonstore.Update(r.store, usersCollection, func(users []domain.User) ([]domain.User, error) {
		for i := range users {
			if users[i].Username == user.Username || users[i].Email == user.Email {
				return nil, domain.ErrDuplicateUser
			}
		}
		return append(users, *user), nil
	})
}

// GetByID gets a user by ID
func (r *userRepository) GetByID(ctx context.Context, id string) (*domain.User, error) {
	users, err := jsonstore.Load[domain.User](r.store, usersCollection)
	if err != nil {
		return nil, err
	}
	for i := range users {
		if users[i].ID == id {
			return &users[i], nil
		}
	}
	return nil, domain.ErrUserNotFound
}

// GetByUsername gets a user by username
func (r *userRepository) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	users, err := jsonstore.Load[domain.User](r.store, usersCollection)
	if err != nil {
		return nil, err
	}
	for i := range users {
		if users[i].Username == username {
			return &users[i], nil
		}
	}
	return nil, domain.ErrUserNotFound
}

// List returns all users
func (r *userRepository) List(ctx context.Context) ([]domain.User, error) {
	return jsonstore.Load[domain.User](r.store, usersCollection)
}

// Mutate applies fn to one user under the collection lock
func (r *userRepository) Mutate(ctx context.Context, id string, fn func(*domain.User) error) (*domain.User, error) {
	var mutated domain.User
	err := jsonstore.Update(r.store, usersCollection, func(users []domain.User) ([]domain.User, error) {
		for i := range users {
			if users[i].ID == id {
				if err := fn(&users[i]); err != nil {
					return nil, err
				}
				mutated = users[i]
				return users, nil
			}
		}
		return nil, domain.ErrUserNotFound
	})
	if err != nil {
		return nil, err
	}
	return &mutated, nil
}
