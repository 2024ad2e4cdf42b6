package trip_models

type ChecklistCategory string

const (
	ChecklistLuggage  ChecklistCategory = "luggage"
	ChecklistShopping ChecklistCategory = "shopping"
)

// ChecklistItem belongs to exactly one of the two independent lists.
type ChecklistItem struct {
	ID        string            `json:"id"`
	Text      string            `json:"text"`
	IsChecked bool              `json:"isChecked"`
	Category  ChecklistCategory `json:"category"`
}

func ValidChecklistCategory(c ChecklistCategory) bool {
	return c == ChecklistLuggage || c == ChecklistShopping
}
