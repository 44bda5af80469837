package entities

import "time"

// Book is a single tracked book. Mutation is replace-by-identifier: readers
// always see a whole record, never a partially updated one.
type Book struct {
	ID           string     `gorm:"primaryKey;size:36" json:"id"`
	Title        string     `gorm:"index;size:512" json:"title"`
	Author       string     `gorm:"index;size:256" json:"author"`
	TotalPages   int        `json:"total_pages"`
	ReadPages    int        `json:"read_pages"`
	IsFinished   bool       `json:"is_finished"`
	Rating       *int       `json:"rating,omitempty"`
	Review       *string    `json:"review,omitempty"`
	FinishedDate *time.Time `json:"finished_date,omitempty"`
	IsWishlist   bool       `json:"is_wishlist"`
}

func (Book) TableName() string {
	return "books"
}

// Progress returns the fraction of the book read, in [0,1] for any book the
// engine has written. A book with no pages has zero progress.
func (b Book) Progress() float64 {
	if b.TotalPages <= 0 {
		return 0
	}
	return float64(b.ReadPages) / float64(b.TotalPages)
}
