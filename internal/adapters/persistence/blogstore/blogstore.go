// Package blogstore keeps the Bloggerish posts and comments in memory. The
// store is created in main and injected into the blog service; nothing in the
// process holds posts as package state.
package blogstore

import (
	"sync"
	"time"

	"blockbusted/internal/core/domain"
)

// Store holds all posts for the lifetime of the process
type Store struct {
	mu            sync.Mutex
	posts         []domain.Post
	nextPostID    int
	nextCommentID int
}

// New creates a store seeded with the welcome post
func New() *Store {
	now := time.Now()
	return &Store{
		posts: []domain.Post{
			{
				ID:        1,
				Title:     "Welcome to Bloggerish!",
				Content:   "This is your first blog post. Feel free to add more posts and comments!",
				Author:    "Admin",
				Timestamp: now,
				Comments: []domain.Comment{
					{
						ID:        1,
						Author:    "Guest",
						Content:   "Great start! Looking forward to more posts.",
						Timestamp: now,
					},
				},
			},
		},
		nextPostID:    2,
		nextCommentID: 2,
	}
}

// List returns a copy of all posts
func (s *Store) List() []domain.Post {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.Post, len(s.posts))
	copy(out, s.posts)
	return out
}

// Get returns one post by ID
func (s *Store) Get(id int) (*domain.Post, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.posts {
		if s.posts[i].ID == id {
			post := s.posts[i]
			return &post, nil
		}
	}
	return nil, domain.ErrPostNotFound
}

// CreatePost appends a new post and returns it
func (s *Store) CreatePost(title, content, author string) domain.Post {
	s.mu.Lock()
	defer s.mu.Unlock()
	post := domain.Post{
		ID:        s.nextPostID,
		Title:     title,
		Content:   content,
		Author:    author,
		Timestamp: time.Now(),
		Comments:  []domain.Comment{},
	}
	s.nextPostID++
	s.posts = append(s.posts, post)
	return post
}

// AddComment appends a comment to a post and returns it
func (s *Store) AddComment(postID int, author, content string) (*domain.Comment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.posts {
		if s.posts[i].ID == postID {
			comment := domain.Comment{
				ID:        s.nextCommentID,
				Author:    author,
				Content:   content,
				Timestamp: time.Now(),
			}
			s.nextCommentID++
			s.posts[i].Comments = append(s.posts[i].Comments, comment)
			return &comment, nil
		}
	}
	return nil, domain.ErrPostNotFound
}
