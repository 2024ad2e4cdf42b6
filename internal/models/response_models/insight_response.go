package response_models

// PlaceDetailsResponse is the structured place lookup used to prefill
// a new itinerary item: Chinese and Korean addresses, a category and
// an estimated per-person budget in KRW.
type PlaceDetailsResponse struct {
	Address   string `json:"address"`
	AddressKR string `json:"addressKR"`
	Category  string `json:"category"`
	Budget    string `json:"budget"`
}

type InsightResponse struct {
	Text string `json:"text"`
}
