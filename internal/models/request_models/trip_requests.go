package request_models

type UpdateTitleRequest struct {
	Title string `json:"title"`
}

type UpdateDatesRequest struct {
	StartDate string `json:"startDate" binding:"required"`
	EndDate   string `json:"endDate" binding:"required"`
}

// ItineraryItemRequest carries user-entered or AI-prefilled fields
// for a new or edited stop. Missing fields fall back to defaults on
// add and stay untouched on edit.
type ItineraryItemRequest struct {
	Title     string `json:"title"`
	Category  string `json:"category"`
	Time      string `json:"time"`
	Address   string `json:"address"`
	AddressKR string `json:"addressKR"`
	Budget    string `json:"budget"`
}

type MoveItemRequest struct {
	Index     int    `json:"index"`
	Direction string `json:"direction" binding:"required,oneof=up down"`
}

type ChecklistItemRequest struct {
	Text string `json:"text" binding:"required"`
}

type ExpenseRequest struct {
	Title     string  `json:"title" binding:"required"`
	AmountKRW float64 `json:"amountKRW" binding:"required,gt=0"`
}
