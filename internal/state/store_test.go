package state

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"seoulplanner/internal/models/trip_models"
)

func TestNewTripStoreDefaults(t *testing.T) {
	s := NewTripStore()
	meta := s.Meta()

	assert.Equal(t, "韓國首爾・自由行", meta.Title)
	assert.Equal(t, time.Now().Format("2006-01-02"), meta.StartDate)
	assert.Equal(t, time.Now().AddDate(0, 0, 4).Format("2006-01-02"), meta.EndDate)
	assert.Empty(t, s.Expenses())
	assert.Empty(t, s.DayItems(1))
}

func TestHydrate(t *testing.T) {
	s := NewTripStore()
	s.Hydrate(trip_models.TripSnapshot{
		Meta: trip_models.TripMeta{
			Title:     "首爾五日遊",
			StartDate: "2026-03-10T00:00:00Z",
			EndDate:   "2026-03-14",
		},
		Itinerary: trip_models.Itinerary{
			1: {{ID: "a", Title: "景福宮"}},
		},
		Checklists: []trip_models.ChecklistItem{
			{ID: "c1", Text: "護照", Category: trip_models.ChecklistLuggage},
			{ID: "c2", Text: "面膜", Category: trip_models.ChecklistShopping},
		},
		Expenses: []trip_models.ExpenseItem{{ID: "e1", AmountKRW: 10000}},
	})

	meta := s.Meta()
	assert.Equal(t, "首爾五日遊", meta.Title)
	// Timestamps from the remote store are truncated to the date part.
	assert.Equal(t, "2026-03-10", meta.StartDate)
	assert.Equal(t, "2026-03-14", meta.EndDate)

	require.Len(t, s.DayItems(1), 1)
	assert.Len(t, s.Checklist(trip_models.ChecklistLuggage), 1)
	assert.Len(t, s.Checklist(trip_models.ChecklistShopping), 1)
	assert.Len(t, s.Expenses(), 1)
}

func TestHydrateKeepsDefaultsForMissingFields(t *testing.T) {
	s := NewTripStore()
	defaults := s.Meta()

	s.Hydrate(trip_models.TripSnapshot{
		Meta: trip_models.TripMeta{Title: "", StartDate: "bad", EndDate: ""},
	})

	meta := s.Meta()
	assert.Equal(t, defaults.Title, meta.Title)
	assert.Equal(t, defaults.StartDate, meta.StartDate)
	assert.Equal(t, defaults.EndDate, meta.EndDate)
}

func TestSnapshotCollectsBothChecklists(t *testing.T) {
	s := NewTripStore()
	s.SetChecklist(trip_models.ChecklistLuggage, []trip_models.ChecklistItem{{ID: "c1", Category: trip_models.ChecklistLuggage}})
	s.SetChecklist(trip_models.ChecklistShopping, []trip_models.ChecklistItem{{ID: "c2", Category: trip_models.ChecklistShopping}})

	snap := s.Snapshot()
	require.Len(t, snap.Checklists, 2)
	assert.Equal(t, "c1", snap.Checklists[0].ID)
	assert.Equal(t, "c2", snap.Checklists[1].ID)
}

func TestSnapshotIsDeepCopy(t *testing.T) {
	s := NewTripStore()
	s.SetDayItems(1, []trip_models.ItineraryItem{{ID: "a", Title: "明洞"}})

	snap := s.Snapshot()
	snap.Itinerary[1][0].Title = "mutated"

	assert.Equal(t, "明洞", s.DayItems(1)[0].Title)
}

func TestDayItemsReturnsCopy(t *testing.T) {
	s := NewTripStore()
	s.SetDayItems(1, []trip_models.ItineraryItem{{ID: "a", Title: "明洞"}})

	items := s.DayItems(1)
	items[0].Title = "mutated"

	assert.Equal(t, "明洞", s.DayItems(1)[0].Title)
}

func TestResetClearsEverything(t *testing.T) {
	s := NewTripStore()
	s.SetTitle("t")
	s.SetDayItems(1, []trip_models.ItineraryItem{{ID: "a"}})
	s.SetChecklist(trip_models.ChecklistLuggage, []trip_models.ChecklistItem{{ID: "c"}})
	s.SetExpenses([]trip_models.ExpenseItem{{ID: "e"}})
	s.SetHotel(trip_models.HotelInfo{Name: "hotel"})

	s.Reset()

	assert.Equal(t, "韓國首爾・自由行", s.Meta().Title)
	assert.Empty(t, s.DayItems(1))
	assert.Empty(t, s.Checklist(trip_models.ChecklistLuggage))
	assert.Empty(t, s.Expenses())
	assert.Equal(t, trip_models.HotelInfo{}, s.Hotel())
}

func TestNoticeBoard(t *testing.T) {
	b := NewNoticeBoard()
	assert.Empty(t, b.Drain())

	b.Post("one")
	b.Post("two")

	got := b.Drain()
	require.Len(t, got, 2)
	assert.Equal(t, "one", got[0])

	assert.Empty(t, b.Drain())
}
