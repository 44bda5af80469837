// Package engine implements the mutation operations of the reading tracker.
//
// Every operation follows the same shape: read the current snapshot from the
// state store, validate, compute the replacement record, write it through
// the gateway. Operations referencing an identifier that no longer exists
// are silent no-ops; storage failures propagate to the caller. Numeric
// ranges are clamped rather than rejected; string validation belongs to the
// presentation layer.
//
// A single mutex serializes the read-validate-write sequence, preserving
// the single-logical-writer contract.
package engine

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/project/reading-tracker/internal/database"
	"github.com/project/reading-tracker/internal/entities"
	"github.com/project/reading-tracker/internal/store"
)

type Engine struct {
	store *store.Store
	gw    *database.Gateway
	now   func() time.Time

	mu sync.Mutex
}

// New builds a mutation engine over the given store and gateway. A nil
// clock defaults to time.Now; tests inject a fixed clock to pin "today".
func New(st *store.Store, gw *database.Gateway, now func() time.Time) *Engine {
	if now == nil {
		now = time.Now
	}
	return &Engine{store: st, gw: gw, now: now}
}

// AddBook inserts a new unfinished book with a fresh identifier and no
// pages read. Title and author are assumed pre-validated by the caller.
func (e *Engine) AddBook(title, author string, totalPages int) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if totalPages < 0 {
		totalPages = 0
	}
	book := entities.Book{
		ID:         uuid.NewString(),
		Title:      title,
		Author:     author,
		TotalPages: totalPages,
	}
	if err := e.gw.UpsertBook(book); err != nil {
		return err
	}
	return e.store.Books().Refresh()
}

// UpdateReadPages sets a book's read-page count, clamped to
// [0, totalPages]. Forward progress is accrued to today's daily bucket;
// a decrease never retracts pages already recorded for the day.
func (e *Engine) UpdateReadPages(bookID string, readPages int) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	book, ok := e.findBook(bookID)
	if !ok {
		return nil
	}

	clamped := clamp(readPages, 0, book.TotalPages)
	diff := clamped - book.ReadPages

	// Book first: a failed book write must not leave the day's bucket
	// incremented for progress that was never recorded.
	book.ReadPages = clamped
	if err := e.gw.UpsertBook(book); err != nil {
		return err
	}
	if diff > 0 {
		if err := e.addDailyPages(diff); err != nil {
			return err
		}
	}
	return e.store.Books().Refresh()
}

// FinishBook marks a book finished: pages snap to the total, rating and
// review are recorded and the finish date is set. Finishing is terminal;
// calling it again overwrites rating and review but keeps the original
// finish date.
func (e *Engine) FinishBook(bookID string, rating int, review string) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	book, ok := e.findBook(bookID)
	if !ok {
		return nil
	}

	rating = clamp(rating, 0, 10)
	book.IsFinished = true
	book.Rating = &rating
	book.Review = &review
	book.ReadPages = book.TotalPages
	if book.FinishedDate == nil {
		finished := e.now()
		book.FinishedDate = &finished
	}

	if err := e.gw.UpsertBook(book); err != nil {
		return err
	}
	return e.store.Books().Refresh()
}

// DeleteBook removes a book. Notes referencing it are left in place.
func (e *Engine) DeleteBook(bookID string) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if err := e.gw.DeleteBook(bookID); err != nil {
		return err
	}
	return e.store.Books().Refresh()
}

// AddGoal inserts a new, uncompleted goal.
func (e *Engine) AddGoal(description string) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	goal := entities.Goal{
		ID:          uuid.NewString(),
		Description: description,
	}
	if err := e.gw.UpsertGoal(goal); err != nil {
		return err
	}
	return e.store.Goals().Refresh()
}

// ToggleGoal flips a goal's completion. Completing stamps the completion
// date; un-completing clears it again.
func (e *Engine) ToggleGoal(goalID string) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	goal, ok := e.findGoal(goalID)
	if !ok {
		return nil
	}

	goal.IsCompleted = !goal.IsCompleted
	if goal.IsCompleted {
		completed := e.now()
		goal.CompletionDate = &completed
	} else {
		goal.CompletionDate = nil
	}

	if err := e.gw.UpsertGoal(goal); err != nil {
		return err
	}
	return e.store.Goals().Refresh()
}

// DeleteGoal removes a goal.
func (e *Engine) DeleteGoal(goalID string) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if err := e.gw.DeleteGoal(goalID); err != nil {
		return err
	}
	return e.store.Goals().Refresh()
}

// AddNote attaches a note to a book id. The reference is not checked
// against existing books: a note may point at a book loaded later, or at
// one already deleted.
func (e *Engine) AddNote(bookID, content string) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	note := entities.Note{
		ID:      uuid.NewString(),
		BookID:  bookID,
		Content: content,
		Date:    e.now(),
	}
	if err := e.gw.UpsertNote(note); err != nil {
		return err
	}
	return e.store.Notes().Refresh()
}

// DeleteNote removes a note.
func (e *Engine) DeleteNote(noteID string) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if err := e.gw.DeleteNote(noteID); err != nil {
		return err
	}
	return e.store.Notes().Refresh()
}

// SaveAppRating overwrites the singleton app rating.
func (e *Engine) SaveAppRating(rating int, feedback string) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	record := entities.AppRating{
		ID:       entities.SingletonID,
		Rating:   clamp(rating, 0, 10),
		Feedback: feedback,
		Date:     e.now(),
	}
	if err := e.gw.UpsertAppRating(record); err != nil {
		return err
	}
	return e.store.AppRating().Refresh()
}

// SaveYearlyChallenge sets the reading target for a year, replacing any
// previous target for that year.
func (e *Engine) SaveYearlyChallenge(year, goal int) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if err := e.gw.UpsertYearlyChallenge(entities.YearlyChallenge{Year: year, Goal: goal}); err != nil {
		return err
	}
	return e.store.YearlyChallenges().Refresh()
}

// SaveAppSettings overwrites the singleton settings record.
func (e *Engine) SaveAppSettings(themeID int) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if err := e.gw.UpsertAppSettings(entities.AppSettings{ID: entities.SingletonID, ThemeID: themeID}); err != nil {
		return err
	}
	return e.store.AppSettings().Refresh()
}

// addDailyPages accrues pages onto today's bucket, read-modify-write over
// the single record for today's day key. "Today" is resolved from the
// clock at call time.
func (e *Engine) addDailyPages(pages int) error {
	day := entities.DayKey(e.now())

	current := 0
	for _, stat := range e.store.DailyStats().Get() {
		if stat.Day == day {
			current = stat.Pages
			break
		}
	}

	if err := e.gw.UpsertDailyStat(entities.DailyStat{Day: day, Pages: current + pages}); err != nil {
		return err
	}
	return e.store.DailyStats().Refresh()
}

func (e *Engine) findBook(id string) (entities.Book, bool) {
	for _, book := range e.store.Books().Get() {
		if book.ID == id {
			return book, true
		}
	}
	return entities.Book{}, false
}

func (e *Engine) findGoal(id string) (entities.Goal, bool) {
	for _, goal := range e.store.Goals().Get() {
		if goal.ID == id {
			return goal, true
		}
	}
	return entities.Goal{}, false
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
