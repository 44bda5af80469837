// Package store holds the authoritative in-memory snapshot of every entity
// collection, re-derived from the gateway whenever the collection changes.
//
// Reads never block: Get returns the last derived snapshot (loading it once
// on first access). Subscribe yields the collection's default value first,
// then every subsequent snapshot. All subscribers of one collection share a
// single gateway watch, established on the first subscriber and torn down
// when the last one detaches.
package store

import (
	"context"

	"github.com/project/reading-tracker/internal/database"
	"github.com/project/reading-tracker/internal/entities"
)

// Store exposes one observable per entity collection.
type Store struct {
	books      *Observable[[]entities.Book]
	goals      *Observable[[]entities.Goal]
	notes      *Observable[[]entities.Note]
	dailyStats *Observable[[]entities.DailyStat]
	appRating  *Observable[*entities.AppRating]
	challenges *Observable[[]entities.YearlyChallenge]
	settings   *Observable[*entities.AppSettings]
}

func New(gw *database.Gateway) *Store {
	return &Store{
		books:      newObservable(gw, database.KindBook, gw.Books, []entities.Book{}),
		goals:      newObservable(gw, database.KindGoal, gw.Goals, []entities.Goal{}),
		notes:      newObservable(gw, database.KindNote, gw.Notes, []entities.Note{}),
		dailyStats: newObservable(gw, database.KindDailyStat, gw.DailyStats, []entities.DailyStat{}),
		appRating:  newObservable(gw, database.KindAppRating, gw.AppRating, nil),
		challenges: newObservable(gw, database.KindYearlyChallenge, gw.YearlyChallenges, []entities.YearlyChallenge{}),
		settings:   newObservable(gw, database.KindAppSettings, gw.AppSettings, nil),
	}
}

func (s *Store) Books() *Observable[[]entities.Book] { return s.books }

func (s *Store) Goals() *Observable[[]entities.Goal] { return s.goals }

func (s *Store) Notes() *Observable[[]entities.Note] { return s.notes }

func (s *Store) DailyStats() *Observable[[]entities.DailyStat] { return s.dailyStats }

func (s *Store) AppRating() *Observable[*entities.AppRating] { return s.appRating }

func (s *Store) YearlyChallenges() *Observable[[]entities.YearlyChallenge] { return s.challenges }

func (s *Store) AppSettings() *Observable[*entities.AppSettings] { return s.settings }

// Close detaches any remaining watches. Subscribers created with a context
// are detached by that context; Close covers the rest at shutdown.
func (s *Store) Close() {
	s.books.close()
	s.goals.close()
	s.notes.close()
	s.dailyStats.close()
	s.appRating.close()
	s.challenges.close()
	s.settings.close()
}

// Subscribe is a convenience wrapper used by presentation code that wants a
// context-scoped subscription without touching the observable directly.
func Subscribe[T any](ctx context.Context, o *Observable[T]) <-chan T {
	return o.Subscribe(ctx)
}
