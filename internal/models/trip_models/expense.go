package trip_models

// ExpenseItem records a purchase in KRW together with the TWD amount
// derived at recording time. ExchangeRate is the rate captured when
// the record was created and is not recomputed afterwards.
type ExpenseItem struct {
	ID           string  `json:"id"`
	Title        string  `json:"title"`
	AmountKRW    float64 `json:"amountKRW"`
	AmountTWD    float64 `json:"amountTWD"`
	Date         string  `json:"date"`
	Category     string  `json:"category"`
	ExchangeRate float64 `json:"exchangeRate"`
}
