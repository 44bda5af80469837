// Package database implements the persistent record gateway: durable
// per-entity storage with insert-or-replace, delete, point-in-time reads,
// and per-collection change notification.
//
// Every write is keyed by the record's identifier and replaces the whole
// row. Reads return full-collection snapshots; the state store re-derives
// its in-memory view from them whenever a collection's watch fires.
package database

import (
	"errors"
	"fmt"
	"sync"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/project/reading-tracker/internal/entities"
)

// Kind identifies one entity collection.
type Kind string

const (
	KindBook            Kind = "books"
	KindGoal            Kind = "goals"
	KindNote            Kind = "notes"
	KindDailyStat       Kind = "daily_stats"
	KindAppRating       Kind = "app_rating"
	KindYearlyChallenge Kind = "yearly_challenge"
	KindAppSettings     Kind = "app_settings"
)

// Gateway is the storage collaborator the engine and state store write and
// read through. Watch subscribers are notified after every successful write
// to their kind's collection.
type Gateway struct {
	db *gorm.DB

	mu      sync.Mutex
	subs    map[Kind]map[int]chan struct{}
	nextSub int
}

func NewGateway(db *Database) *Gateway {
	return &Gateway{
		db:   db.DB,
		subs: make(map[Kind]map[int]chan struct{}),
	}
}

// Watch returns a channel signalled after every successful write to the
// kind's collection. Signals are coalesced: a slow reader sees at least one
// signal for any burst of writes. The cancel function closes the channel.
func (g *Gateway) Watch(kind Kind) (<-chan struct{}, func()) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.subs[kind] == nil {
		g.subs[kind] = make(map[int]chan struct{})
	}
	id := g.nextSub
	g.nextSub++

	ch := make(chan struct{}, 1)
	g.subs[kind][id] = ch

	cancel := func() {
		g.mu.Lock()
		defer g.mu.Unlock()
		if _, ok := g.subs[kind][id]; ok {
			delete(g.subs[kind], id)
			close(ch)
		}
	}
	return ch, cancel
}

func (g *Gateway) notify(kind Kind) {
	g.mu.Lock()
	defer g.mu.Unlock()
	for _, ch := range g.subs[kind] {
		select {
		case ch <- struct{}{}:
		default:
		}
	}
}

// upsert inserts or fully replaces a record keyed by its primary key, then
// notifies the kind's watchers. Idempotent.
func upsert[T any](g *Gateway, kind Kind, record T) error {
	if err := g.db.Clauses(clause.OnConflict{UpdateAll: true}).Create(&record).Error; err != nil {
		return fmt.Errorf("upsert %s: %w", kind, err)
	}
	g.notify(kind)
	return nil
}

// deleteByID removes a record by identifier. Deleting an absent identifier
// is a no-op, but watchers are still notified.
func (g *Gateway) deleteByID(kind Kind, model any, id any) error {
	if err := g.db.Delete(model, "id = ?", id).Error; err != nil {
		return fmt.Errorf("delete %s: %w", kind, err)
	}
	g.notify(kind)
	return nil
}

// --- Books ---

func (g *Gateway) Books() ([]entities.Book, error) {
	var books []entities.Book
	err := g.db.Find(&books).Error
	return books, err
}

func (g *Gateway) UpsertBook(book entities.Book) error {
	return upsert(g, KindBook, book)
}

func (g *Gateway) DeleteBook(id string) error {
	return g.deleteByID(KindBook, &entities.Book{}, id)
}

// --- Goals ---

func (g *Gateway) Goals() ([]entities.Goal, error) {
	var goals []entities.Goal
	err := g.db.Find(&goals).Error
	return goals, err
}

func (g *Gateway) UpsertGoal(goal entities.Goal) error {
	return upsert(g, KindGoal, goal)
}

func (g *Gateway) DeleteGoal(id string) error {
	return g.deleteByID(KindGoal, &entities.Goal{}, id)
}

// --- Notes ---

func (g *Gateway) Notes() ([]entities.Note, error) {
	var notes []entities.Note
	err := g.db.Find(&notes).Error
	return notes, err
}

func (g *Gateway) UpsertNote(note entities.Note) error {
	return upsert(g, KindNote, note)
}

func (g *Gateway) DeleteNote(id string) error {
	return g.deleteByID(KindNote, &entities.Note{}, id)
}

// --- Daily stats ---

func (g *Gateway) DailyStats() ([]entities.DailyStat, error) {
	var stats []entities.DailyStat
	err := g.db.Find(&stats).Error
	return stats, err
}

func (g *Gateway) UpsertDailyStat(stat entities.DailyStat) error {
	return upsert(g, KindDailyStat, stat)
}

// --- App rating (singleton) ---

// AppRating returns the singleton rating record, or nil if the user has not
// rated the app yet.
func (g *Gateway) AppRating() (*entities.AppRating, error) {
	var rating entities.AppRating
	err := g.db.First(&rating, entities.SingletonID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &rating, nil
}

func (g *Gateway) UpsertAppRating(rating entities.AppRating) error {
	return upsert(g, KindAppRating, rating)
}

// --- Yearly challenges ---

func (g *Gateway) YearlyChallenges() ([]entities.YearlyChallenge, error) {
	var challenges []entities.YearlyChallenge
	err := g.db.Find(&challenges).Error
	return challenges, err
}

func (g *Gateway) UpsertYearlyChallenge(challenge entities.YearlyChallenge) error {
	return upsert(g, KindYearlyChallenge, challenge)
}

// --- App settings (singleton) ---

// AppSettings returns the singleton settings record, or nil if none was
// ever saved.
func (g *Gateway) AppSettings() (*entities.AppSettings, error) {
	var settings entities.AppSettings
	err := g.db.First(&settings, entities.SingletonID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &settings, nil
}

func (g *Gateway) UpsertAppSettings(settings entities.AppSettings) error {
	return upsert(g, KindAppSettings, settings)
}
