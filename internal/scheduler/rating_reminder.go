// Package scheduler fires the periodic rating-reminder check. The reminder
// itself runs as a queued task so a slow or failing notification never
// blocks the cron tick.
package scheduler

import (
	"fmt"
	"log"
	"sync"

	"github.com/robfig/cron/v3"

	"github.com/project/reading-tracker/internal/store"
	"github.com/project/reading-tracker/internal/tasks"
)

// RatingReminderScheduler periodically enqueues a rating reminder while the
// user has not rated the app.
type RatingReminderScheduler struct {
	store      *store.Store
	taskClient *tasks.Client

	cron      *cron.Cron
	mu        sync.Mutex
	isRunning bool
}

func NewRatingReminderScheduler(st *store.Store, taskClient *tasks.Client) *RatingReminderScheduler {
	return &RatingReminderScheduler{
		store:      st,
		taskClient: taskClient,
		cron:       cron.New(cron.WithParser(cron.NewParser(cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow))),
	}
}

// Start schedules the reminder check. No-op if already running.
func (s *RatingReminderScheduler) Start(schedule string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.isRunning {
		return nil
	}

	if _, err := s.cron.AddFunc(schedule, s.check); err != nil {
		return fmt.Errorf("failed to schedule rating reminder '%s': %w", schedule, err)
	}

	s.cron.Start()
	s.isRunning = true
	log.Printf("Rating reminder scheduler started (schedule: %s)", schedule)
	return nil
}

// Stop halts the scheduler and waits for a running check to finish.
func (s *RatingReminderScheduler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.isRunning {
		return
	}
	<-s.cron.Stop().Done()
	s.isRunning = false
	log.Printf("Rating reminder scheduler stopped")
}

func (s *RatingReminderScheduler) check() {
	if s.store.AppRating().Get() != nil {
		return
	}
	if _, err := s.taskClient.Add(tasks.RatingReminderTask{}).Save(); err != nil {
		log.Printf("Failed to enqueue rating reminder: %v", err)
	}
}
