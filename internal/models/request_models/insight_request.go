package request_models

type PlaceDetailsRequest struct {
	PlaceName string `json:"placeName" binding:"required"`
}

type PlaceInsightRequest struct {
	Day    int    `json:"day" binding:"required,min=1"`
	ItemID string `json:"itemId" binding:"required"`
}

type DaySuggestionRequest struct {
	Day int `json:"day" binding:"required,min=1"`
}

type ConvertRequest struct {
	Amount    string `json:"amount" binding:"required"`
	Direction string `json:"direction" binding:"required,oneof=krw_to_twd twd_to_krw"`
}
