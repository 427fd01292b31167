package handlers

import (
	"blockbusted/internal/core/services"
	"blockbusted/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// MovieHandler handles catalog endpoints
type MovieHandler struct {
	movieService *services.MovieService
}

// NewMovieHandler creates a new movie handler
func NewMovieHandler(movieService *services.MovieService) *MovieHandler {
	return &MovieHandler{movieService: movieService}
}

// GetMovies handles catalog listing
// @Summary List movies
// @Description List catalog movies, optionally filtered by category and title search
// @Tags Catalog
// @Produce json
// @Param category query string false "Category filter (case-insensitive exact match, 'all' for none)"
// @Param search query string false "Title search (case-insensitive substring)"
// @Success 200 {object} response.Response
// @Router /movies [get]
func (h *MovieHandler) GetMovies(c *fiber.Ctx) error {
	movies, err := h.movieService.List(c.Context(), c.Query("category"), c.Query("search"))
	if err != nil {
		return response.InternalServerError(c, "Failed to load movies")
	}
	return response.Success(c, "", movies)
}

// GetCategories handles category listing
// @Summary List categories
// @Description List the distinct catalog categories
// @Tags Catalog
// @Produce json
// @Success 200 {object} response.Response
// @Router /categories [get]
func (h *MovieHandler) GetCategories(c *fiber.Ctx) error {
	categories, err := h.movieService.Categories(c.Context())
	if err != nil {
		return response.InternalServerError(c, "Failed to load categories")
	}
	return response.Success(c, "", categories)
}
