package routes

import (
	"blockbusted/internal/adapters/http/handlers"
	"blockbusted/internal/adapters/http/middleware"
	"blockbusted/internal/adapters/persistence/blogstore"
	"blockbusted/internal/adapters/persistence/jsonstore"
	"blockbusted/internal/adapters/persistence/repositories"
	"blockbusted/internal/config"
	"blockbusted/internal/core/services"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
)

// Setup configures all routes for the application
func Setup(app *fiber.App, store *jsonstore.Store, blog *blogstore.Store, cfg *config.Config) {
	// Initialize repositories
	userRepo := repositories.NewUserRepository(store)
	movieRepo := repositories.NewMovieRepository(store)
	rentalRepo := repositories.NewRentalRepository(store)

	// Initialize services
	authService := services.NewAuthService(userRepo, cfg)
	movieService := services.NewMovieService(movieRepo)
	rentalService := services.NewRentalService(userRepo, movieRepo, rentalRepo)
	userService := services.NewUserService(userRepo, rentalRepo)
	blogService := services.NewBlogService(blog)

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler()
	authHandler := handlers.NewAuthHandler(authService)
	movieHandler := handlers.NewMovieHandler(movieService)
	rentalHandler := handlers.NewRentalHandler(rentalService)
	adminHandler := handlers.NewAdminHandler(userService)
	blogHandler := handlers.NewBlogHandler(blogService)

	// Health check & root routes
	app.Get("/", healthHandler.Root)
	app.Get("/health", healthHandler.HealthCheck)

	// Swagger documentation
	app.Get("/swagger/*", swagger.HandlerDefault)

	api := app.Group("/api")

	// Auth (stricter rate limit)
	api.Post("/register", middleware.AuthRateLimiter(), authHandler.Register)
	api.Post("/login", middleware.AuthRateLimiter(), authHandler.Login)

	// Catalog
	api.Get("/movies", movieHandler.GetMovies)
	api.Get("/categories", movieHandler.GetCategories)

	// Rentals
	api.Post("/rent", rentalHandler.Rent)
	api.Post("/return", rentalHandler.Return)
	api.Get("/rentals/:userId", rentalHandler.GetUserRentals)

	// Blog
	api.Get("/posts", blogHandler.ListPosts)
	api.Post("/posts", blogHandler.CreatePost)
	api.Get("/posts/:id", blogHandler.GetPost)
	api.Post("/posts/:id/comments", blogHandler.AddComment)

	// Admin (requires a token carrying the ADMIN role)
	admin := api.Group("/admin", middleware.AuthMiddleware(cfg), middleware.AdminOnly())
	admin.Get("/users", adminHandler.ListUsers)
	admin.Get("/users/:userId", adminHandler.GetUser)
	admin.Post("/user-feedback", adminHandler.UserFeedback)
}
