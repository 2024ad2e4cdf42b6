// Package state holds the in-memory trip state tree. The store is
// constructor-injected into the sync layer and the services instead
// of living as ambient package state, so tests can run it in
// isolation.
package state

import (
	"sync"
	"time"

	"seoulplanner/internal/models/trip_models"
)

type TripStore struct {
	mu         sync.RWMutex
	meta       trip_models.TripMeta
	itinerary  trip_models.Itinerary
	checklists map[trip_models.ChecklistCategory][]trip_models.ChecklistItem
	expenses   []trip_models.ExpenseItem
	flights    trip_models.FlightInfo
	hotel      trip_models.HotelInfo
}

func NewTripStore() *TripStore {
	s := &TripStore{}
	s.reset()
	return s
}

func (s *TripStore) reset() {
	s.meta = trip_models.DefaultMeta(time.Now())
	s.itinerary = trip_models.Itinerary{}
	s.checklists = map[trip_models.ChecklistCategory][]trip_models.ChecklistItem{}
	s.expenses = nil
	s.flights = trip_models.FlightInfo{}
	s.hotel = trip_models.HotelInfo{}
}

// Reset clears everything back to defaults. Logout teardown.
func (s *TripStore) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.reset()
}

// Hydrate replaces the whole tree with a remote snapshot.
func (s *TripStore) Hydrate(snap trip_models.TripSnapshot) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if snap.Meta.Title != "" {
		s.meta.Title = snap.Meta.Title
	}
	if len(snap.Meta.StartDate) >= 10 {
		s.meta.StartDate = snap.Meta.StartDate[:10]
	}
	if len(snap.Meta.EndDate) >= 10 {
		s.meta.EndDate = snap.Meta.EndDate[:10]
	}
	s.itinerary = copyItinerary(snap.Itinerary)
	s.checklists = map[trip_models.ChecklistCategory][]trip_models.ChecklistItem{}
	for _, item := range snap.Checklists {
		s.checklists[item.Category] = append(s.checklists[item.Category], item)
	}
	s.expenses = append([]trip_models.ExpenseItem(nil), snap.Expenses...)
	s.flights = snap.Logistics.Flights
	s.hotel = snap.Logistics.Hotel
}

// Snapshot deep-copies the current tree.
func (s *TripStore) Snapshot() trip_models.TripSnapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var checklists []trip_models.ChecklistItem
	for _, category := range []trip_models.ChecklistCategory{trip_models.ChecklistLuggage, trip_models.ChecklistShopping} {
		checklists = append(checklists, s.checklists[category]...)
	}
	return trip_models.TripSnapshot{
		Meta:       s.meta,
		Itinerary:  copyItinerary(s.itinerary),
		Logistics:  trip_models.Logistics{Flights: s.flights, Hotel: s.hotel},
		Checklists: checklists,
		Expenses:   append([]trip_models.ExpenseItem(nil), s.expenses...),
	}
}

func (s *TripStore) Meta() trip_models.TripMeta {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.meta
}

func (s *TripStore) SetTitle(title string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.meta.Title = title
}

func (s *TripStore) SetDates(startDate, endDate string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.meta.StartDate = startDate
	s.meta.EndDate = endDate
}

// DayItems returns a copy of one day bucket, empty if the day has no
// items yet.
func (s *TripStore) DayItems(day int) []trip_models.ItineraryItem {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]trip_models.ItineraryItem(nil), s.itinerary[day]...)
}

func (s *TripStore) SetDayItems(day int, items []trip_models.ItineraryItem) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.itinerary[day] = append([]trip_models.ItineraryItem(nil), items...)
}

func (s *TripStore) Itinerary() trip_models.Itinerary {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return copyItinerary(s.itinerary)
}

func (s *TripStore) Checklist(category trip_models.ChecklistCategory) []trip_models.ChecklistItem {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]trip_models.ChecklistItem(nil), s.checklists[category]...)
}

func (s *TripStore) SetChecklist(category trip_models.ChecklistCategory, items []trip_models.ChecklistItem) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.checklists[category] = append([]trip_models.ChecklistItem(nil), items...)
}

func (s *TripStore) Expenses() []trip_models.ExpenseItem {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]trip_models.ExpenseItem(nil), s.expenses...)
}

func (s *TripStore) SetExpenses(items []trip_models.ExpenseItem) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.expenses = append([]trip_models.ExpenseItem(nil), items...)
}

func (s *TripStore) Flights() trip_models.FlightInfo {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.flights
}

func (s *TripStore) SetFlights(info trip_models.FlightInfo) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.flights = info
}

func (s *TripStore) Hotel() trip_models.HotelInfo {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.hotel
}

func (s *TripStore) SetHotel(info trip_models.HotelInfo) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.hotel = info
}

func copyItinerary(in trip_models.Itinerary) trip_models.Itinerary {
	out := make(trip_models.Itinerary, len(in))
	for day, items := range in {
		out[day] = append([]trip_models.ItineraryItem(nil), items...)
	}
	return out
}
