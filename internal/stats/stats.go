// Package stats derives reading statistics from state store snapshots.
// Everything here is a pure function: no stored state, recomputed on every
// relevant change.
package stats

import (
	"time"

	"github.com/project/reading-tracker/internal/entities"
)

// WeeklyStats expands raw daily-stat records into exactly seven buckets in
// fixed Mon..Sun order, zero-filled for days with no record. Records keyed
// outside the weekly cycle are ignored.
func WeeklyStats(raw []entities.DailyStat) []entities.DailyStat {
	pages := make(map[string]int, len(raw))
	for _, stat := range raw {
		pages[stat.Day] = stat.Pages
	}

	week := make([]entities.DailyStat, len(entities.WeekDays))
	for i, day := range entities.WeekDays {
		week[i] = entities.DailyStat{Day: day, Pages: pages[day]}
	}
	return week
}

// TotalPagesRead sums read pages over all books, finished and unfinished
// alike.
func TotalPagesRead(books []entities.Book) int {
	total := 0
	for _, book := range books {
		total += book.ReadPages
	}
	return total
}

// ReadingStreak counts consecutive days with pages read, walking backward
// from today's bucket toward the start of the weekly cycle and stopping at
// the first day without progress. The result is in [0,7].
func ReadingStreak(raw []entities.DailyStat, today time.Time) int {
	week := WeeklyStats(raw)

	streak := 0
	for i := entities.DayIndex(entities.DayKey(today)); i >= 0; i-- {
		if week[i].Pages == 0 {
			break
		}
		streak++
	}
	return streak
}
