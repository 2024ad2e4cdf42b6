package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"seoulplanner/internal/models/trip_models"
)

func TestTotalBudget(t *testing.T) {
	items := []trip_models.ItineraryItem{
		{Budget: "₩10,000"},
		{Budget: "約5000元"},
		{Budget: "免費"},
		{Budget: ""},
	}
	assert.Equal(t, "₩15,000", TotalBudget(items))
}

func TestTotalBudgetNothingParseable(t *testing.T) {
	assert.Equal(t, "", TotalBudget(nil))
	assert.Equal(t, "", TotalBudget([]trip_models.ItineraryItem{{Budget: "免費"}, {Budget: ""}}))
}

func TestGroupDigits(t *testing.T) {
	tests := []struct {
		in   int
		want string
	}{
		{0, "0"},
		{999, "999"},
		{1000, "1,000"},
		{1234567, "1,234,567"},
		{-45000, "-45,000"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, GroupDigits(tt.in))
	}
}

func TestSanitizeAmount(t *testing.T) {
	assert.Equal(t, "1000", SanitizeAmount("1,000won"))
	assert.Equal(t, "123.4", SanitizeAmount("1a2b3.4"))
	assert.Equal(t, "", SanitizeAmount("免費"))
}

func TestConvertKRWToTWD(t *testing.T) {
	assert.Equal(t, "240", ConvertKRWToTWD("10000", 0.024))
	assert.Equal(t, "240", ConvertKRWToTWD("10,000", 0.024))
	assert.Equal(t, "", ConvertKRWToTWD("abc", 0.024))
	assert.Equal(t, "", ConvertKRWToTWD("", 0.024))
	assert.Equal(t, "", ConvertKRWToTWD("10000", 0))
}

func TestConvertTWDToKRW(t *testing.T) {
	assert.Equal(t, "10000", ConvertTWDToKRW("240", 0.024))
	assert.Equal(t, "", ConvertTWDToKRW("not numeric", 0.024))
}

func TestRoundTWD(t *testing.T) {
	assert.Equal(t, float64(240), RoundTWD(10000, 0.024))
	assert.Equal(t, float64(120), RoundTWD(5020, 0.024))
}

func TestSumExpenses(t *testing.T) {
	items := []trip_models.ExpenseItem{
		{AmountKRW: 10000, AmountTWD: 240},
		{AmountKRW: 5000, AmountTWD: 120},
	}
	assert.Equal(t, float64(15000), SumExpensesKRW(items))
	assert.Equal(t, float64(360), SumExpensesTWD(items))
	assert.Equal(t, float64(0), SumExpensesKRW(nil))
}

func TestFilterExpensesByDate(t *testing.T) {
	items := []trip_models.ExpenseItem{
		{ID: "a", Date: "2026-01-01T10:00:00Z"},
		{ID: "b", Date: "2026-01-02T09:30:00Z"},
		{ID: "c", Date: "2026-01-01T21:15:00Z"},
	}
	got := FilterExpensesByDate(items, "2026-01-01")
	assert.Len(t, got, 2)
	assert.Equal(t, "a", got[0].ID)
	assert.Equal(t, "c", got[1].ID)
}
