package services

import (
	"context"
	"log"
	"time"

	"blockbusted/internal/adapters/persistence/repositories"

	"github.com/robfig/cron/v3"
)

// CronService runs the daily overdue-rental scan (08:30). The scan only
// reads and logs; it never mutates collections, so the request path keeps
// sole ownership of all writes.
type CronService struct {
	cron       *cron.Cron
	rentalRepo repositories.RentalRepository
	now        func() time.Time
}

// NewCronService creates a new cron service
func NewCronService(rentalRepo repositories.RentalRepository) *CronService {
	return &CronService{
		cron:       cron.New(),
		rentalRepo: rentalRepo,
		now:        time.Now,
	}
}

// Start schedules the jobs and launches the scheduler
func (s *CronService) Start() {
	if _, err := s.cron.AddFunc("30 8 * * *", s.ScanOverdue); err != nil {
		log.Printf("❌ Failed to schedule overdue scan: %v", err)
		return
	}
	s.cron.Start()
	log.Println("🚀 CronService started (overdue scan daily at 08:30)")
}

// Stop stops the scheduler, waiting for a running job to finish
func (s *CronService) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
	log.Println("🛑 CronService stopped")
}

// ScanOverdue logs every open rental past its due date
func (s *CronService) ScanOverdue() {
	rentals, err := s.rentalRepo.ListOpen(context.Background())
	if err != nil {
		log.Printf("❌ Overdue scan failed: %v", err)
		return
	}

	now := s.now()
	overdue := 0
	for _, r := range rentals {
		if now.After(r.DueDate) {
			overdue++
			log.Printf("⚠️ Overdue rental %s: %q held by user %s, due %s",
				r.ID, r.MovieTitle, r.UserID, r.DueDate.Format("2006-01-02"))
		}
	}
	log.Printf("✅ Overdue scan completed: %d open, %d overdue", len(rentals), overdue)
}
