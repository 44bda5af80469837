package entities

import "time"

// Goal is a free-form reading goal. Completion is reversible: toggling a
// completed goal back clears its completion date.
type Goal struct {
	ID             string     `gorm:"primaryKey;size:36" json:"id"`
	Description    string     `gorm:"size:512" json:"description"`
	IsCompleted    bool       `json:"is_completed"`
	CompletionDate *time.Time `json:"completion_date,omitempty"`
}

func (Goal) TableName() string {
	return "goals"
}
