package handlers

import (
	"errors"
	"strconv"

	"blockbusted/internal/core/domain"
	"blockbusted/internal/core/services"
	"blockbusted/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// BlogHandler handles the Bloggerish endpoints
type BlogHandler struct {
	blogService *services.BlogService
}

// NewBlogHandler creates a new blog handler
func NewBlogHandler(blogService *services.BlogService) *BlogHandler {
	return &BlogHandler{blogService: blogService}
}

// ListPosts handles listing all posts
// @Summary List posts
// @Tags Blog
// @Produce json
// @Success 200 {object} response.Response
// @Router /posts [get]
func (h *BlogHandler) ListPosts(c *fiber.Ctx) error {
	return response.Success(c, "", h.blogService.ListPosts(c.Context()))
}

// GetPost handles fetching one post
// @Summary Get post
// @Tags Blog
// @Produce json
// @Param id path int true "Post ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /posts/{id} [get]
func (h *BlogHandler) GetPost(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return response.BadRequest(c, response.CodeValidation, "Invalid post ID")
	}

	post, err := h.blogService.GetPost(c.Context(), id)
	if err != nil {
		return response.NotFound(c, response.CodePostNotFound, "Post not found")
	}
	return response.Success(c, "", post)
}

// CreatePost handles creating a post
// @Summary Create post
// @Tags Blog
// @Accept json
// @Produce json
// @Param body body services.CreatePostInput true "Post data"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Router /posts [post]
func (h *BlogHandler) CreatePost(c *fiber.Ctx) error {
	var input services.CreatePostInput
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, response.CodeValidation, "Invalid request body")
	}

	post, err := h.blogService.CreatePost(c.Context(), &input)
	if err != nil {
		return response.BadRequest(c, response.CodeValidation, "Title, content and author are required")
	}
	return response.Created(c, "Post created successfully", post)
}

// AddComment handles commenting on a post
// @Summary Add comment
// @Tags Blog
// @Accept json
// @Produce json
// @Param id path int true "Post ID"
// @Param body body services.AddCommentInput true "Comment data"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /posts/{id}/comments [post]
func (h *BlogHandler) AddComment(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return response.BadRequest(c, response.CodeValidation, "Invalid post ID")
	}

	var input services.AddCommentInput
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, response.CodeValidation, "Invalid request body")
	}

	comment, err := h.blogService.AddComment(c.Context(), id, &input)
	if err != nil {
		if errors.Is(err, domain.ErrPostNotFound) {
			return response.NotFound(c, response.CodePostNotFound, "Post not found")
		}
		return response.BadRequest(c, response.CodeValidation, "Author and content are required")
	}
	return response.Created(c, "Comment added successfully", comment)
}
