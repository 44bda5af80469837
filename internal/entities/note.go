package entities

import "time"

// Note is a quoted passage or remark attached to a book. The book reference
// is not enforced: deleting a book leaves its notes in place, so BookID may
// dangle.
type Note struct {
	ID      string    `gorm:"primaryKey;size:36" json:"id"`
	BookID  string    `gorm:"index;size:36" json:"book_id"`
	Content string    `gorm:"type:text" json:"content"`
	Date    time.Time `json:"date"`
}

func (Note) TableName() string {
	return "notes"
}
