package services

import (
	"context"

	"blockbusted/internal/adapters/persistence/repositories"
	"blockbusted/internal/core/domain"
)

// MovieService handles catalog queries
type MovieService struct {
	movieRepo repositories.MovieRepository
}

// NewMovieService creates a new movie service
func NewMovieService(movieRepo repositories.MovieRepository) *MovieService {
	return &MovieService{movieRepo: movieRepo}
}

// List returns movies filtered by category and/or title search. The SPA
// sends category "all" to mean no category filter.
func (s *MovieService) List(ctx context.Context, category, search string) ([]domain.Movie, error) {
	if category == "all" {
		category = ""
	}
	return s.movieRepo.List(ctx, category, search)
}

// Categories returns the distinct catalog categories
func (s *MovieService) Categories(ctx context.Context) ([]string, error) {
	return s.movieRepo.Categories(ctx)
}
