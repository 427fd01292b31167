package handlers

import (
	"errors"

	"blockbusted/internal/core/domain"
	"blockbusted/internal/core/services"
	"blockbusted/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// RentalHandler handles rental lifecycle endpoints
type RentalHandler struct {
	rentalService *services.RentalService
}

// NewRentalHandler creates a new rental handler
func NewRentalHandler(rentalService *services.RentalService) *RentalHandler {
	return &RentalHandler{rentalService: rentalService}
}

// Rent handles opening a rental
// @Summary Rent a movie
// @Description Rent an available movie for the fixed 7-day period
// @Tags Rentals
// @Accept json
// @Produce json
// @Param body body services.RentInput true "Rent data"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /rent [post]
func (h *RentalHandler) Rent(c *fiber.Ctx) error {
	var input services.RentInput
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, response.CodeValidation, "Invalid request body")
	}

	rental, err := h.rentalService.Rent(c.Context(), &input)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrValidation):
			return response.BadRequest(c, response.CodeValidation, err.Error())
		case errors.Is(err, domain.ErrUserNotFound):
			return response.NotFound(c, response.CodeUserNotFound, "User not found")
		case errors.Is(err, domain.ErrMovieNotFound):
			return response.NotFound(c, response.CodeMovieNotFound, "Movie not found")
		case errors.Is(err, domain.ErrMovieUnavailable):
			return response.BadRequest(c, response.CodeMovieUnavailable, "Movie not available")
		default:
			return response.InternalServerError(c, "Failed to rent movie")
		}
	}

	return response.Success(c, "Movie rented successfully", fiber.Map{"rental": rental})
}

// Return handles closing a rental
// @Summary Return a movie
// @Description Close an open rental and update the user's feedback counters
// @Tags Rentals
// @Accept json
// @Produce json
// @Param body body services.ReturnInput true "Return data"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /return [post]
func (h *RentalHandler) Return(c *fiber.Ctx) error {
	var input services.ReturnInput
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, response.CodeValidation, "Invalid request body")
	}

	feedback, err := h.rentalService.Return(c.Context(), &input)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrValidation):
			return response.BadRequest(c, response.CodeValidation, err.Error())
		case errors.Is(err, domain.ErrRentalNotFound):
			return response.NotFound(c, response.CodeRentalNotFound, "Rental not found")
		case errors.Is(err, domain.ErrAlreadyReturned):
			return response.BadRequest(c, response.CodeAlreadyReturned, "Movie already returned")
		default:
			return response.InternalServerError(c, "Failed to return movie")
		}
	}

	return response.Success(c, "Movie returned successfully", fiber.Map{"feedback": feedback})
}

// GetUserRentals handles listing a user's rentals
// @Summary List user rentals
// @Description List every rental record belonging to one user
// @Tags Rentals
// @Produce json
// @Param userId path string true "User ID"
// @Success 200 {object} response.Response
// @Router /rentals/{userId} [get]
func (h *RentalHandler) GetUserRentals(c *fiber.Ctx) error {
	rentals, err := h.rentalService.ListByUser(c.Context(), c.Params("userId"))
	if err != nil {
		return response.InternalServerError(c, "Failed to load rentals")
	}
	return response.Success(c, "", rentals)
}
