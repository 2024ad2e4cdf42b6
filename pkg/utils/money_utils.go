package utils

import (
	"math"
	"strconv"
	"strings"

	"seoulplanner/internal/models/trip_models"
)

// TotalBudget sums the parseable budget fields of a day's items and
// formats the result as a grouped Korean-won string. Budgets are free
// text, so everything but digits is stripped before parsing. Returns
// "" when nothing parseable sums above zero; the caller renders a
// placeholder for that.
func TotalBudget(items []trip_models.ItineraryItem) string {
	total := 0
	for _, item := range items {
		if item.Budget == "" {
			continue
		}
		digits := stripNonDigits(item.Budget)
		if digits == "" {
			continue
		}
		if n, err := strconv.Atoi(digits); err == nil {
			total += n
		}
	}
	if total <= 0 {
		return ""
	}
	return "₩" + GroupDigits(total)
}

// GroupDigits renders n with thousands separators.
func GroupDigits(n int) string {
	s := strconv.Itoa(n)
	neg := false
	if strings.HasPrefix(s, "-") {
		neg = true
		s = s[1:]
	}
	var b strings.Builder
	for i, r := range s {
		if i > 0 && (len(s)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}
	if neg {
		return "-" + b.String()
	}
	return b.String()
}

// SanitizeAmount keeps only the digits and decimal point of a typed
// amount, the same cleanup the calculator inputs apply keystroke by
// keystroke.
func SanitizeAmount(val string) string {
	var b strings.Builder
	for _, r := range val {
		if (r >= '0' && r <= '9') || r == '.' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// ConvertKRWToTWD converts a typed KRW amount at the given rate and
// renders the TWD value rounded to whole units. Non-numeric or empty
// input yields "", not "0": the conversion field stays blank until
// the input is numeric.
func ConvertKRWToTWD(amount string, rate float64) string {
	v, ok := parseAmount(amount)
	if !ok || rate == 0 {
		return ""
	}
	return strconv.FormatFloat(math.Round(v*rate), 'f', -1, 64)
}

// ConvertTWDToKRW is the reverse direction, dividing by the rate.
func ConvertTWDToKRW(amount string, rate float64) string {
	v, ok := parseAmount(amount)
	if !ok || rate == 0 {
		return ""
	}
	return strconv.FormatFloat(math.Round(v/rate), 'f', -1, 64)
}

// RoundTWD derives the TWD amount captured on an expense record.
func RoundTWD(amountKRW, rate float64) float64 {
	return math.Round(amountKRW * rate)
}

func parseAmount(val string) (float64, bool) {
	s := SanitizeAmount(val)
	if s == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// SumExpensesKRW totals the recorded KRW amounts.
func SumExpensesKRW(items []trip_models.ExpenseItem) float64 {
	var total float64
	for _, item := range items {
		total += item.AmountKRW
	}
	return total
}

// SumExpensesTWD totals the TWD amounts captured at recording time.
func SumExpensesTWD(items []trip_models.ExpenseItem) float64 {
	var total float64
	for _, item := range items {
		total += item.AmountTWD
	}
	return total
}

// FilterExpensesByDate keeps the expenses recorded on a YYYY-MM-DD
// day. Expense dates are stored as full timestamps, so this matches
// on the date prefix.
func FilterExpensesByDate(items []trip_models.ExpenseItem, date string) []trip_models.ExpenseItem {
	out := make([]trip_models.ExpenseItem, 0, len(items))
	for _, item := range items {
		if strings.HasPrefix(item.Date, date) {
			out = append(out, item)
		}
	}
	return out
}

func stripNonDigits(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
