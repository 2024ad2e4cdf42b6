package trip_models

import "time"

// TripMeta is the editable header of a trip: its title and the
// inclusive date range, both kept as YYYY-MM-DD strings because the
// sheet backend stores them that way and timezone math on them is
// done by the date helpers, never by time.Parse.
type TripMeta struct {
	Title     string `json:"title"`
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"`
}

// User is the identity the sheet backend returns from a login action.
type User struct {
	UID      string `json:"uid"`
	Username string `json:"username"`
}

// DefaultMeta mirrors the state a fresh client starts with before the
// first snapshot arrives: today through today+4.
func DefaultMeta(now time.Time) TripMeta {
	start := now
	end := now.AddDate(0, 0, 4)
	return TripMeta{
		Title:     "韓國首爾・自由行",
		StartDate: start.Format("2006-01-02"),
		EndDate:   end.Format("2006-01-02"),
	}
}
