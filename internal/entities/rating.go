package entities

import "time"

// SingletonID is the fixed primary key used by singleton records (AppRating,
// AppSettings): saving one replaces whatever was there before.
const SingletonID = 1

// AppRating is the user's one-off rating of the app itself. At most one
// record ever exists; saving overwrites it.
type AppRating struct {
	ID       int       `gorm:"primaryKey" json:"id"`
	Rating   int       `json:"rating"`
	Feedback string    `gorm:"type:text" json:"feedback"`
	Date     time.Time `json:"date"`
}

func (AppRating) TableName() string {
	return "app_rating"
}
