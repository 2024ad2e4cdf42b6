package utils

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"seoulplanner/internal/models/trip_models"
)

// Weekday labels, Sunday first, matching time.Weekday numbering.
var dayNames = [7]string{"週日", "週一", "週二", "週三", "週四", "週五", "週六"}

// maxRangeDays caps how many extra days a range may produce beyond the
// start date, so a typo in the end date cannot generate a year of cards.
const maxRangeDays = 30

// ParseYMD parses a YYYY-MM-DD string as a local-time calendar date.
// Parsing the parts manually avoids the timezone drift that comes from
// interpreting the string as UTC midnight.
func ParseYMD(dateStr string) (time.Time, bool) {
	parts := strings.Split(dateStr, "-")
	if len(parts) != 3 {
		return time.Time{}, false
	}
	year, err1 := strconv.Atoi(parts[0])
	month, err2 := strconv.Atoi(parts[1])
	day, err3 := strconv.Atoi(parts[2])
	if err1 != nil || err2 != nil || err3 != nil {
		return time.Time{}, false
	}
	return time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.Local), true
}

// DayName returns the fixed-table weekday label for a YYYY-MM-DD date,
// or "---" when the date does not parse.
func DayName(dateStr string) string {
	d, ok := ParseYMD(dateStr)
	if !ok {
		return "---"
	}
	return dayNames[int(d.Weekday())]
}

// FormatMonthDay renders a YYYY-MM-DD date as its short "M/D" label.
func FormatMonthDay(dateStr string) string {
	d, ok := ParseYMD(dateStr)
	if !ok {
		return "--/--"
	}
	return fmt.Sprintf("%d/%d", int(d.Month()), d.Day())
}

// DateRange produces one WeatherData skeleton per day from start to
// end inclusive, capped at maxRangeDays extra days. An unparseable
// bound or end before start yields an empty slice.
func DateRange(startDate, endDate string) []trip_models.WeatherData {
	start, okStart := ParseYMD(startDate)
	end, okEnd := ParseYMD(endDate)
	if !okStart || !okEnd || end.Before(start) {
		return []trip_models.WeatherData{}
	}

	out := make([]trip_models.WeatherData, 0, maxRangeDays+1)
	for i := 0; i <= maxRangeDays; i++ {
		d := start.AddDate(0, 0, i)
		if d.After(end) {
			break
		}
		dateStr := d.Format("2006-01-02")
		out = append(out, trip_models.WeatherData{
			ID:        dateStr,
			Day:       dayNames[int(d.Weekday())],
			Date:      fmt.Sprintf("%d/%d", int(d.Month()), d.Day()),
			FullDate:  dateStr,
			Condition: trip_models.WeatherUnknown,
		})
	}
	return out
}
