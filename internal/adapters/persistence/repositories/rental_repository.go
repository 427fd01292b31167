package repositories

import (
	"context"

	"blockbusted/internal/adapters/persistence/jsonstore"
	"blockbusted/internal/core/domain"
)

const rentalsCollection = "rentals"

// rentalRepository implements RentalRepository over the JSON store
type rentalRepository struct {
	store *jsonstore.Store
}

// NewRentalRepository creates a new rental repository
func NewRentalRepository(store *jsonstore.Store) RentalRepository {
	return &rentalRepository{store: store}
}

// Create appends a new rental record
func (r *rentalRepository) Create(ctx context.Context, rental *domain.Rental) error {
	return jsonstore.Update(r.store, rentalsCollection, func(rentals []domain.Rental) ([]domain.Rental, error) {
		return append(rentals, *rental), nil
	})
}

// GetByID gets a rental by ID
func (r *rentalRepository) GetByID(ctx context.Context, id string) (*domain.Rental, error) {
	rentals, err := jsonstore.Load[domain.Rental](r.store, rentalsCollection)
	if err != nil {
		return nil, err
	}
	for i := range rentals {
		if rentals[i].ID == id {
			return &rentals[i], nil
		}
	}
	return nil, domain.ErrRentalNotFound
}

// ListByUser returns every rental belonging to one user
func (r *rentalRepository) ListByUser(ctx context.Context, userID string) ([]domain.Rental, error) {
	rentals, err := jsonstore.Load[domain.Rental](r.store, rentalsCollection)
	if err != nil {
		return nil, err
	}
	out := make([]domain.Rental, 0, len(rentals))
	for _, rec := range rentals {
		if rec.UserID == userID {
			out = append(out, rec)
		}
	}
	return out, nil
}

// ListOpen returns all rentals that have not been returned yet
func (r *rentalRepository) ListOpen(ctx context.Context) ([]domain.Rental, error) {
	rentals, err := jsonstore.Load[domain.Rental](r.store, rentalsCollection)
	if err != nil {
		return nil, err
	}
	out := make([]domain.Rental, 0, len(rentals))
	for _, rec := range rentals {
		if rec.IsOpen() {
			out = append(out, rec)
		}
	}
	return out, nil
}

// Mutate applies fn to one rental under the collection lock
func (r *rentalRepository) Mutate(ctx context.Context, id string, fn func(*domain.Rental) error) (*domain.Rental, error) {
	var mutated domain.Rental
	err := jsonstore.Update(r.store, rentalsCollection, func(rentals []domain.Rental) ([]domain.Rental, error) {
		for i := range rentals {
			if rentals[i].ID == id {
				if err := fn(&rentals[i]); err != nil {
					return nil, err
				}
				mutated = rentals[i]
				return rentals, nil
			}
		}
		return nil, domain.ErrRentalNotFound
	})
	if err != nil {
		return nil, err
	}
	return &mutated, nil
}

// Delete removes a rental record. Only used to compensate a partially
// applied rent operation.
func (r *rentalRepository) Delete(ctx context.Context, id string) error {
	return jsonstore.Update(r.store, rentalsCollection, func(rentals []domain.Rental) ([]domain.Rental, error) {
		out := rentals[:0]
		for _, rec := range rentals {
			if rec.ID != id {
				out = append(out, rec)
			}
		}
		return out, nil
	})
}
