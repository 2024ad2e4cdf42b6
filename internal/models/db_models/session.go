package db_models

// RememberedSession backs the "remember me" flag: one row per device
// token. Only the bcrypt hash of the token is stored; TokenLookup is
// the random non-secret half used to find the row.
type RememberedSession struct {
	BaseModel
	TripUID     string `gorm:"index"`
	Username    string
	TokenLookup string `gorm:"uniqueIndex"`
	TokenHash   string
	ExpiresAt   int64
}
