package response_models

import "seoulplanner/internal/models/trip_models"

// TripResponse is the full client-facing state plus any sync-failure
// notices buffered since the last read.
type TripResponse struct {
	Meta       trip_models.TripMeta        `json:"meta"`
	Itinerary  trip_models.Itinerary       `json:"itinerary"`
	Logistics  trip_models.Logistics       `json:"logistics"`
	Checklists []trip_models.ChecklistItem `json:"checklists"`
	Expenses   []trip_models.ExpenseItem   `json:"expenses"`
	Notices    []string                    `json:"notices,omitempty"`
}

type DayBudgetResponse struct {
	Day   int    `json:"day"`
	Total string `json:"total,omitempty"`
}

type ExpenseTotalsResponse struct {
	TotalKRW float64 `json:"totalKRW"`
	TotalTWD float64 `json:"totalTWD"`
}

type ConvertResponse struct {
	Result string  `json:"result"`
	Rate   float64 `json:"rate"`
}

type RateResponse struct {
	Rate      float64 `json:"rate"`
	Fallback  bool    `json:"fallback"`
	FetchedAt string  `json:"fetchedAt"`
}
