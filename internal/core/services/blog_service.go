package services

import (
	"context"
	"fmt"

	"blockbusted/internal/adapters/persistence/blogstore"
	"blockbusted/internal/core/domain"

	"github.com/go-playground/validator/v10"
)

// BlogService exposes the Bloggerish posts and comments. The backing store
// is injected so its lifetime is owned by main, not by this package.
type BlogService struct {
	store    *blogstore.Store
	validate *validator.Validate
}

// NewBlogService creates a new blog service
func NewBlogService(store *blogstore.Store) *BlogService {
	return &BlogService{
		store:    store,
		validate: validator.New(),
	}
}

// CreatePostInput represents new post input
type CreatePostInput struct {
	Title   string `json:"title" validate:"required,max=200"`
	Content string `json:"content" validate:"required"`
	Author  string `json:"author" validate:"required,max=100"`
}

// AddCommentInput represents new comment input
type AddCommentInput struct {
	Author  string `json:"author" validate:"required,max=100"`
	Content string `json:"content" validate:"required"`
}

// ListPosts returns all posts
func (s *BlogService) ListPosts(ctx context.Context) []domain.Post {
	return s.store.List()
}

// GetPost returns one post by ID
func (s *BlogService) GetPost(ctx context.Context, id int) (*domain.Post, error) {
	return s.store.Get(id)
}

// CreatePost validates and stores a new post
func (s *BlogService) CreatePost(ctx context.Context, input *CreatePostInput) (*domain.Post, error) {
	if err := s.validate.Struct(input); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}
	post := s.store.CreatePost(input.Title, input.Content, input.Author)
	return &post, nil
}

// AddComment validates and appends a comment to a post
func (s *BlogService) AddComment(ctx context.Context, postID int, input *AddCommentInput) (*domain.Comment, error) {
	if err := s.validate.Struct(input); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}
	return s.store.AddComment(postID, input.Author, input.Content)
}
