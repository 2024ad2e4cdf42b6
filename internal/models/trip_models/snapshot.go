package trip_models

// TripSnapshot is the full remote state for one trip id, already
// validated and grouped into typed entities by the sheet client.
type TripSnapshot struct {
	Meta       TripMeta        `json:"meta"`
	Itinerary  Itinerary       `json:"itinerary"`
	Logistics  Logistics       `json:"logistics"`
	Checklists []ChecklistItem `json:"checklists"`
	Expenses   []ExpenseItem   `json:"expenses"`
}
