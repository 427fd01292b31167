package repositories

import (
	"context"
	"strings"

	"blockbusted/internal/adapters/persistence/jsonstore"
	"blockbusted/internal/core/domain"
)

const moviesCollection = "movies"

// movieRepository implements MovieRepository over the JSON store
type movieRepository struct {
	store *jsonstore.Store
}

// NewMovieRepository creates a new movie repository
func NewMovieRepository(store *jsonstore.Store) MovieRepository {
	return &movieRepository{store: store}
}

// GetByID gets a movie by ID
func (r *movieRepository) GetByID(ctx context.Context, id string) (*domain.Movie, error) {
	movies, err := jsonstore.Load[domain.Movie](r.store, moviesCollection)
	if err != nil {
		return nil, err
	}
	for i := range movies {
		if movies[i].ID == id {
			return &movies[i], nil
		}
	}
	return nil, domain.ErrMovieNotFound
}

// List returns movies matching the optional filters: category is a
// case-insensitive exact match, search a case-insensitive substring match
// on the title.
func (r *movieRepository) List(ctx context.Context, category, search string) ([]domain.Movie, error) {
	movies, err := jsonstore.Load[domain.Movie](r.store, moviesCollection)
	if err != nil {
		return nil, err
	}

	filtered := make([]domain.Movie, 0, len(movies))
	search = strings.ToLower(search)
	for _, m := range movies {
		if category != "" && !strings.EqualFold(m.Category, category) {
			continue
		}
		if search != "" && !strings.Contains(strings.ToLower(m.Title), search) {
			continue
		}
		filtered = append(filtered, m)
	}
	return filtered, nil
}

// Categories returns the distinct category values in catalog order
func (r *movieRepository) Categories(ctx context.Context) ([]string, error) {
	movies, err := jsonstore.Load[domain.Movie](r.store, moviesCollection)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]bool, len(movies))
	categories := make([]string, 0, len(movies))
	for _, m := range movies {
		if !seen[m.Category] {
			seen[m.Category] = true
			categories = append(categories, m.Category)
		}
	}
	return categories, nil
}

// SetAvailability flips the availability flag of one movie
func (r *movieRepository) SetAvailability(ctx context.Context, id string, available bool) error {
	return jsonstore.Update(r.store, moviesCollection, func(movies []domain.Movie) ([]domain.Movie, error) {
		for i := range movies {
			if movies[i].ID == id {
				movies[i].Available = available
				return movies, nil
			}
		}
		return nil, domain.ErrMovieNotFound
	})
}

// Count returns the number of catalog entries
func (r *movieRepository) Count(ctx context.Context) (int, error) {
	movies, err := jsonstore.Load[domain.Movie](r.store, moviesCollection)
	if err != nil {
		return 0, err
	}
	return len(movies), nil
}

// SaveAll replaces the whole catalog (used by the seeder)
func (r *movieRepository) SaveAll(ctx context.Context, movies []domain.Movie) error {
	return jsonstore.Save(r.store, moviesCollection, movies)
}
