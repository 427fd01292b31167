package domain

import "time"

// ============================================================
// Rental store entities
// JSON tags match the legacy data files (users.json, movies.json,
// rentals.json) so existing data dirs keep loading.
// ============================================================

// User roles
const (
	RoleUser  = "USER"
	RoleAdmin = "ADMIN"
)

// FeedbackCounters holds per-user behavioral statistics used for admin review
type FeedbackCounters struct {
	TotalRentals   int `json:"totalRentals"`
	OverdueReturns int `json:"overdueReturns"`
	NotRewound     int `json:"notRewound"`
	LateReturns    int `json:"lateReturns"`
	Warnings       int `json:"warnings,omitempty"`
	Commendations  int `json:"commendations,omitempty"`
}

// AdminFeedback is a single admin-issued feedback entry on a user
type AdminFeedback struct {
	ID        string    `json:"id"`
	Type      string    `json:"type"`
	Notes     string    `json:"notes"`
	Timestamp time.Time `json:"timestamp"`
	AdminUser string    `json:"adminUser"`
}

// User represents a registered customer (or the bootstrap admin account).
// Email is stored in obscured form; Password is a bcrypt hash.
type User struct {
	ID               string           `json:"id"`
	Username         string           `json:"username"`
	Email            string           `json:"email"`
	Password         string           `json:"password"`
	Role             string           `json:"role"`
	RegistrationDate time.Time        `json:"registrationDate"`
	RentalHistory    []string         `json:"rentalHistory"`
	Feedback         FeedbackCounters `json:"feedback"`
	Suspended        bool             `json:"suspended,omitempty"`
	SuspensionDate   *time.Time       `json:"suspensionDate,omitempty"`
	AdminFeedback    []AdminFeedback  `json:"adminFeedback,omitempty"`
}

// UserResponse DTO - never exposes the password hash, carries the
// revealed (decoded) email
type UserResponse struct {
	ID               string           `json:"id"`
	Username         string           `json:"username"`
	Email            string           `json:"email"`
	Role             string           `json:"role"`
	IsAdmin          bool             `json:"isAdmin"`
	RegistrationDate time.Time        `json:"registrationDate"`
	RentalHistory    []string         `json:"rentalHistory"`
	Feedback         FeedbackCounters `json:"feedback"`
	Suspended        bool             `json:"suspended,omitempty"`
	SuspensionDate   *time.Time       `json:"suspensionDate,omitempty"`
	AdminFeedback    []AdminFeedback  `json:"adminFeedback,omitempty"`
}

// ToResponse builds the outward-facing view of a user. The caller supplies
// the revealed email because the domain layer does not know the codec.
func (u *User) ToResponse(email string) *UserResponse {
	return &UserResponse{
		ID:               u.ID,
		Username:         u.Username,
		Email:            email,
		Role:             u.Role,
		IsAdmin:          u.Role == RoleAdmin,
		RegistrationDate: u.RegistrationDate,
		RentalHistory:    u.RentalHistory,
		Feedback:         u.Feedback,
		Suspended:        u.Suspended,
		SuspensionDate:   u.SuspensionDate,
		AdminFeedback:    u.AdminFeedback,
	}
}

// Movie represents a rentable catalog item
type Movie struct {
	ID        string  `json:"id"`
	Title     string  `json:"title"`
	Category  string  `json:"category"`
	Year      int     `json:"year"`
	Available bool    `json:"available"`
	Price     float64 `json:"price"`
}

// Delivery options for a rental
const (
	DeliveryPickup  = "pickup"
	DeliveryCourier = "delivery"
)

// Rental represents one rental record. MovieTitle is a write-once snapshot
// taken at rent time and never refreshed.
type Rental struct {
	ID              string     `json:"id"`
	UserID          string     `json:"userId"`
	MovieID         string     `json:"movieId"`
	MovieTitle      string     `json:"movieTitle"`
	RentDate        time.Time  `json:"rentDate"`
	DueDate         time.Time  `json:"dueDate"`
	Returned        bool       `json:"returned"`
	ReturnDate      *time.Time `json:"returnDate,omitempty"`
	Rewound         bool       `json:"rewound"`
	DeliveryOption  string     `json:"deliveryOption,omitempty"`
	DeliveryAddress string     `json:"deliveryAddress,omitempty"`
}

// IsOpen reports whether the rental still blocks its movie
func (r *Rental) IsOpen() bool {
	return !r.Returned
}

// ============================================================
// Blog entities (Bloggerish module, in-memory only)
// ============================================================

// Comment is a single comment on a blog post
type Comment struct {
	ID        int       `json:"id"`
	Author    string    `json:"author"`
	Content   string    `json:"content"`
	Timestamp time.Time `json:"timestamp"`
}

// Post is a blog post with its comments
type Post struct {
	ID        int       `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	Author    string    `json:"author"`
	Timestamp time.Time `json:"timestamp"`
	Comments  []Comment `json:"comments"`
}
