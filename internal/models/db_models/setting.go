package db_models

// UserSetting stores the bring-your-own Gemini API key per trip uid.
type UserSetting struct {
	BaseModel
	TripUID      string `gorm:"uniqueIndex"`
	GeminiAPIKey string
}
