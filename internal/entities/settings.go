package entities

// Theme identifiers for AppSettings.ThemeID.
const (
	ThemeDefault = iota
	ThemeOcean
	ThemeSunset
	ThemeLavender
)

// AppSettings is the singleton UI preference record.
type AppSettings struct {
	ID      int `gorm:"primaryKey" json:"id"`
	ThemeID int `json:"theme_id"`
}

func (AppSettings) TableName() string {
	return "app_settings"
}
