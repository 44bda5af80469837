package entities

// YearlyChallenge is a per-year reading target (pages or books, the unit is
// up to the user). Keyed by year; saving a year replaces its target.
type YearlyChallenge struct {
	Year int `gorm:"primaryKey" json:"year"`
	Goal int `json:"goal"`
}

func (YearlyChallenge) TableName() string {
	return "yearly_challenge"
}
