package handlers

import (
	"errors"

	"blockbusted/internal/core/domain"
	"blockbusted/internal/core/services"
	"blockbusted/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// AdminHandler handles admin-only user directory endpoints
type AdminHandler struct {
	userService *services.UserService
}

// NewAdminHandler creates a new admin handler
func NewAdminHandler(userService *services.UserService) *AdminHandler {
	return &AdminHandler{userService: userService}
}

// ListUsers handles listing all users
// @Summary List users
// @Description List all users with revealed emails (admin only)
// @Tags Admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Response
// @Failure 401 {object} response.Response
// @Failure 403 {object} response.Response
// @Router /admin/users [get]
func (h *AdminHandler) ListUsers(c *fiber.Ctx) error {
	users, err := h.userService.ListUsers(c.Context())
	if err != nil {
		return response.InternalServerError(c, "Failed to load users")
	}
	return response.Success(c, "", users)
}

// GetUser handles the detailed admin view of one user
// @Summary Get user detail
// @Description Get one user with their rental records (admin only)
// @Tags Admin
// @Produce json
// @Security BearerAuth
// @Param userId path string true "User ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /admin/users/{userId} [get]
func (h *AdminHandler) GetUser(c *fiber.Ctx) error {
	detail, err := h.userService.GetUserDetail(c.Context(), c.Params("userId"))
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return response.NotFound(c, response.CodeUserNotFound, "User not found")
		}
		return response.InternalServerError(c, "Failed to load user")
	}
	return response.Success(c, "", detail)
}

// UserFeedback handles recording admin feedback on a user
// @Summary Record user feedback
// @Description Append an admin feedback entry and apply its counter side effect (admin only)
// @Tags Admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body services.FeedbackInput true "Feedback data"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /admin/user-feedback [post]
func (h *AdminHandler) UserFeedback(c *fiber.Ctx) error {
	var input services.FeedbackInput
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, response.CodeValidation, "Invalid request body")
	}

	adminUser, _ := c.Locals("username").(string)
	entry, err := h.userService.RecordFeedback(c.Context(), &input, adminUser)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrValidation):
			return response.BadRequest(c, response.CodeValidation, "User ID and feedback type are required")
		case errors.Is(err, domain.ErrUserNotFound):
			return response.NotFound(c, response.CodeUserNotFound, "User not found")
		default:
			return response.InternalServerError(c, "Failed to add feedback")
		}
	}

	return response.Success(c, "Admin feedback added successfully", fiber.Map{"feedback": entry})
}
