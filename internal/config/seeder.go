package config

import (
	"log"
	"time"

	"blockbusted/internal/adapters/persistence/jsonstore"
	"blockbusted/internal/core/domain"
	"blockbusted/internal/pkg/codec"
	"blockbusted/internal/pkg/password"
)

// SeedData initializes the data files on first run: the retro movie catalog,
// the bootstrap admin account and an empty rental ledger. Existing data is
// never overwritten.
func SeedData(store *jsonstore.Store, cfg *Config) error {
	if err := seedMovies(store); err != nil {
		return err
	}
	if err := seedAdminUser(store, cfg); err != nil {
		return err
	}
	if err := seedRentals(store); err != nil {
		return err
	}

	log.Println("✅ Data files seeded successfully")
	return nil
}

func seedMovies(store *jsonstore.Store) error {
	return jsonstore.Update(store, "movies", func(movies []domain.Movie) ([]domain.Movie, error) {
		if len(movies) > 0 {
			return movies, nil
		}

		log.Println("   Seeding initial movie catalog")
		return []domain.Movie{
			{ID: "1", Title: "Back to the Future", Category: "Sci-Fi", Year: 1985, Available: true, Price: 2.99},
			{ID: "2", Title: "The Breakfast Club", Category: "Drama", Year: 1985, Available: true, Price: 2.99},
			{ID: "3", Title: "Ghostbusters", Category: "Comedy", Year: 1984, Available: true, Price: 2.99},
			{ID: "4", Title: "Ferris Bueller's Day Off", Category: "Comedy", Year: 1986, Available: false, Price: 2.99},
			{ID: "5", Title: "The Goonies", Category: "Adventure", Year: 1985, Available: true, Price: 2.99},
		}, nil
	})
}

func seedAdminUser(store *jsonstore.Store, cfg *Config) error {
	return jsonstore.Update(store, "users", func(users []domain.User) ([]domain.User, error) {
		for i := range users {
			if users[i].Username == cfg.Admin.Username {
				return users, nil
			}
		}

		hashed, err := password.Hash(cfg.Admin.Password)
		if err != nil {
			return nil, err
		}

		log.Printf("   Creating bootstrap admin account %q", cfg.Admin.Username)
		return append(users, domain.User{
			ID:               "admin",
			Username:         cfg.Admin.Username,
			Email:            codec.Obscure(cfg.Admin.Email),
			Password:         hashed,
			Role:             domain.RoleAdmin,
			RegistrationDate: time.Now(),
			RentalHistory:    []string{},
		}), nil
	})
}

func seedRentals(store *jsonstore.Store) error {
	// Writing the empty collection creates the file, so a fresh data dir
	// holds all three documents from the start.
	return jsonstore.Update(store, "rentals", func(rentals []domain.Rental) ([]domain.Rental, error) {
		return rentals, nil
	})
}
