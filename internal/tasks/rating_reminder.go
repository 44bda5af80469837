package tasks

import (
	"context"
	"log"
	"time"

	"github.com/mikestefanello/backlite"

	"github.com/project/reading-tracker/internal/store"
)

// Notifier delivers a one-shot local notification. The default
// implementation just logs; a desktop build can plug in a real one.
type Notifier interface {
	Notify(title, message string) error
}

// LogNotifier writes notifications to the application log.
type LogNotifier struct{}

func (LogNotifier) Notify(title, message string) error {
	log.Printf("[NOTIFY] %s: %s", title, message)
	return nil
}

// RatingReminderTask asks the user to rate the app. It carries no payload;
// whether the reminder is still wanted is decided at execution time.
type RatingReminderTask struct{}

// Config returns the queue configuration for rating reminder tasks.
func (t RatingReminderTask) Config() backlite.QueueConfig {
	return backlite.QueueConfig{
		Name:        "rating_reminder",
		MaxAttempts: 3,
		Backoff:     30 * time.Second,
		Timeout:     time.Minute,
		Retention: &backlite.Retention{
			Duration:   24 * time.Hour,
			OnlyFailed: false,
			Data:       &backlite.RetainData{OnlyFailed: true},
		},
	}
}

// RatingReminderProcessor creates the processor for rating reminders. The
// reminder is skipped if the user rated the app between enqueue and
// execution.
func RatingReminderProcessor(st *store.Store, notifier Notifier) backlite.QueueProcessor[RatingReminderTask] {
	return func(ctx context.Context, task RatingReminderTask) error {
		if st.AppRating().Get() != nil {
			log.Printf("[TASK] Rating reminder skipped: app already rated")
			return nil
		}
		return notifier.Notify(
			"Enjoying the app?",
			"Your feedback helps us improve. Please take a moment to rate us!",
		)
	}
}

// NewRatingReminderQueue creates a backlite queue for rating reminders.
func NewRatingReminderQueue(st *store.Store, notifier Notifier) backlite.Queue {
	return backlite.NewQueue(RatingReminderProcessor(st, notifier))
}
