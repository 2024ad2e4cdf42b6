package trip_models

// ItineraryItem is one stop within a day bucket. AddressKR holds the
// Korean address used for Naver Map navigation; Budget stays a free
// text field because the sheet stores whatever the user typed.
type ItineraryItem struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Category  string `json:"category"`
	Time      string `json:"time"`
	Address   string `json:"address"`
	AddressKR string `json:"addressKR,omitempty"`
	Budget    string `json:"budget,omitempty"`
	AIInsight string `json:"aiInsight,omitempty"`
}

// Itinerary groups items by 1-based trip day. Days without items are
// simply absent; ordering within a day is display order.
type Itinerary map[int][]ItineraryItem

type MoveDirection string

const (
	MoveUp   MoveDirection = "up"
	MoveDown MoveDirection = "down"
)

// MoveItem swaps the item at index with its neighbor in the requested
// direction and returns the new ordering. Out-of-bounds targets are a
// no-op: the input slice is returned unchanged.
func MoveItem(items []ItineraryItem, index int, direction MoveDirection) []ItineraryItem {
	if index < 0 || index >= len(items) {
		return items
	}

	target := index + 1
	if direction == MoveUp {
		target = index - 1
	}
	if target < 0 || target >= len(items) {
		return items
	}

	out := make([]ItineraryItem, len(items))
	copy(out, items)
	out[index], out[target] = out[target], out[index]
	return out
}

// RemoveItem filters out the item with the given id.
func RemoveItem(items []ItineraryItem, id string) []ItineraryItem {
	out := make([]ItineraryItem, 0, len(items))
	for _, item := range items {
		if item.ID != id {
			out = append(out, item)
		}
	}
	return out
}
