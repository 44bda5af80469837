package entities

import "time"

// WeekDays is the fixed 7-day cycle daily stats are bucketed into.
var WeekDays = [7]string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"}

// DailyStat accumulates pages read for one day of the weekly cycle. There is
// at most one record per day key; updates read-modify-write the whole record.
type DailyStat struct {
	Day   string `gorm:"primaryKey;size:3" json:"day"`
	Pages int    `json:"pages"`
}

func (DailyStat) TableName() string {
	return "daily_stats"
}

// DayKey maps a point in time onto the weekly cycle ("Mon".."Sun").
func DayKey(t time.Time) string {
	// time.Weekday starts the week on Sunday; the cycle starts on Monday.
	return WeekDays[(int(t.Weekday())+6)%7]
}

// DayIndex returns the position of a day key within the weekly cycle, or -1
// for an unknown key.
func DayIndex(day string) int {
	for i, d := range WeekDays {
		if d == day {
			return i
		}
	}
	return -1
}
