package services

import (
	"context"
	"log"
	"time"

	"github.com/google/uuid"

	"seoulplanner/internal/models/request_models"
	"seoulplanner/internal/models/trip_models"
	"seoulplanner/internal/state"
	"seoulplanner/pkg/optimistic"
	"seoulplanner/pkg/utils"
)

type TripServiceInterface interface {
	Hydrate(ctx context.Context, uid string)
	Snapshot() trip_models.TripSnapshot
	Teardown()

	UpdateTitle(ctx context.Context, uid string, title string)
	UpdateDates(ctx context.Context, uid string, startDate, endDate string) error

	AddItineraryItem(ctx context.Context, uid string, day int, req request_models.ItineraryItemRequest) (trip_models.ItineraryItem, error)
	EditItineraryItem(ctx context.Context, uid string, day int, id string, req request_models.ItineraryItemRequest) error
	AttachInsight(ctx context.Context, uid string, day int, id string, insight string) error
	MoveItineraryItem(ctx context.Context, uid string, day int, index int, direction trip_models.MoveDirection) error
	DeleteItineraryItem(ctx context.Context, uid string, day int, id string, confirmed bool) error
	DayBudget(day int) string

	AddChecklistItem(ctx context.Context, uid string, category trip_models.ChecklistCategory, text string) (trip_models.ChecklistItem, error)
	ToggleChecklistItem(ctx context.Context, uid string, category trip_models.ChecklistCategory, id string) error
	DeleteChecklistItem(ctx context.Context, uid string, category trip_models.ChecklistCategory, id string) error

	AddExpense(ctx context.Context, uid string, req request_models.ExpenseRequest) (trip_models.ExpenseItem, error)
	DeleteExpense(ctx context.Context, uid string, id string) error
	ListExpenses(date string) []trip_models.ExpenseItem
	ExpenseTotals() (totalKRW, totalTWD float64)

	UpdateFlights(ctx context.Context, uid string, info trip_models.FlightInfo)
	UpdateHotel(ctx context.Context, uid string, info trip_models.HotelInfo)
}

type TripService struct {
	store       *state.TripStore
	sheets      SheetClientInterface
	coordinator *optimistic.Coordinator
	currency    CurrencyServiceInterface
}

func NewTripService(
	store *state.TripStore,
	sheets SheetClientInterface,
	coordinator *optimistic.Coordinator,
	currency CurrencyServiceInterface,
) TripServiceInterface {
	return &TripService{
		store:       store,
		sheets:      sheets,
		coordinator: coordinator,
		currency:    currency,
	}
}

// Hydrate loads the remote snapshot into the store. A failed initial
// load is logged and the defaults stay in place; the UI remains
// usable and mutations will still attempt to sync.
func (t *TripService) Hydrate(ctx context.Context, uid string) {
	snap, err := t.sheets.FetchSnapshot(ctx, uid)
	if err != nil {
		log.Printf("Failed to fetch initial data for %s: %v", uid, err)
		return
	}
	t.store.Hydrate(*snap)
}

func (t *TripService) Snapshot() trip_models.TripSnapshot {
	return t.store.Snapshot()
}

// Teardown clears all in-memory state on logout.
func (t *TripService) Teardown() {
	t.store.Reset()
}

func (t *TripService) UpdateTitle(ctx context.Context, uid string, title string) {
	oldTitle := t.store.Meta().Title
	t.coordinator.Apply(ctx,
		func() { t.store.SetTitle(title) },
		func(ctx context.Context) error {
			_, err := t.sheets.PushUpdate(ctx, ActionUpdateMeta, map[string]string{"title": title}, uid)
			return err
		},
		func() { t.store.SetTitle(oldTitle) },
	)
}

func (t *TripService) UpdateDates(ctx context.Context, uid string, startDate, endDate string) error {
	if _, ok := utils.ParseYMD(startDate); !ok {
		return utils.ErrInvalidInput
	}
	if _, ok := utils.ParseYMD(endDate); !ok {
		return utils.ErrInvalidInput
	}

	oldMeta := t.store.Meta()
	t.coordinator.Apply(ctx,
		func() { t.store.SetDates(startDate, endDate) },
		func(ctx context.Context) error {
			_, err := t.sheets.PushUpdate(ctx, ActionUpdateMeta,
				map[string]string{"startDate": startDate, "endDate": endDate}, uid)
			return err
		},
		func() { t.store.SetDates(oldMeta.StartDate, oldMeta.EndDate) },
	)
	return nil
}

func (t *TripService) AddItineraryItem(ctx context.Context, uid string, day int, req request_models.ItineraryItemRequest) (trip_models.ItineraryItem, error) {
	if day < 1 {
		return trip_models.ItineraryItem{}, utils.ErrInvalidInput
	}

	item := trip_models.ItineraryItem{
		ID:        uuid.NewString(),
		Title:     req.Title,
		Category:  req.Category,
		Time:      req.Time,
		Address:   req.Address,
		AddressKR: req.AddressKR,
		Budget:    req.Budget,
	}
	if item.Title == "" {
		item.Title = "未命名"
	}
	if item.Time == "" {
		item.Time = "10:00 AM"
	}
	if item.Category == "" {
		item.Category = "自訂"
	}
	if item.Address == "" {
		item.Address = "首爾"
	}

	before := t.store.DayItems(day)
	after := append(append([]trip_models.ItineraryItem(nil), before...), item)
	t.pushDay(ctx, uid, day, before, after)
	return item, nil
}

func (t *TripService) EditItineraryItem(ctx context.Context, uid string, day int, id string, req request_models.ItineraryItemRequest) error {
	before := t.store.DayItems(day)
	after := make([]trip_models.ItineraryItem, len(before))
	found := false
	for i, item := range before {
		if item.ID == id {
			found = true
			if req.Title != "" {
				item.Title = req.Title
			}
			if req.Category != "" {
				item.Category = req.Category
			}
			if req.Time != "" {
				item.Time = req.Time
			}
			if req.Address != "" {
				item.Address = req.Address
			}
			if req.AddressKR != "" {
				item.AddressKR = req.AddressKR
			}
			if req.Budget != "" {
				item.Budget = req.Budget
			}
		}
		after[i] = item
	}
	if !found {
		return utils.ErrItemNotFound
	}

	t.pushDay(ctx, uid, day, before, after)
	return nil
}

// AttachInsight stores a generated blurb onto an itinerary item. The
// insight may arrive after the user switched days; it is applied to
// whatever the item looks like at resolution time.
func (t *TripService) AttachInsight(ctx context.Context, uid string, day int, id string, insight string) error {
	before := t.store.DayItems(day)
	after := make([]trip_models.ItineraryItem, len(before))
	found := false
	for i, item := range before {
		if item.ID == id {
			found = true
			item.AIInsight = insight
		}
		after[i] = item
	}
	if !found {
		return utils.ErrItemNotFound
	}

	t.pushDay(ctx, uid, day, before, after)
	return nil
}

func (t *TripService) MoveItineraryItem(ctx context.Context, uid string, day int, index int, direction trip_models.MoveDirection) error {
	before := t.store.DayItems(day)
	after := trip_models.MoveItem(before, index, direction)
	if index < 0 || index >= len(before) {
		return utils.ErrItemNotFound
	}

	target := index + 1
	if direction == trip_models.MoveUp {
		target = index - 1
	}
	// Moving past either end is a no-op, not an error, and nothing is
	// pushed remotely.
	if target < 0 || target >= len(before) {
		return nil
	}

	t.pushDay(ctx, uid, day, before, after)
	return nil
}

func (t *TripService) DeleteItineraryItem(ctx context.Context, uid string, day int, id string, confirmed bool) error {
	// Deletes are never single-tap: the client must send the explicit
	// confirmation from its two-step dialog.
	if !confirmed {
		return utils.ErrConfirmationRequired
	}

	before := t.store.DayItems(day)
	after := trip_models.RemoveItem(before, id)
	if len(after) == len(before) {
		return utils.ErrItemNotFound
	}

	t.pushDay(ctx, uid, day, before, after)
	return nil
}

func (t *TripService) DayBudget(day int) string {
	return utils.TotalBudget(t.store.DayItems(day))
}

// pushDay applies a new ordering for one day bucket locally and syncs
// the whole bucket, keyed to the day, through the coordinator.
func (t *TripService) pushDay(ctx context.Context, uid string, day int, before, after []trip_models.ItineraryItem) {
	t.coordinator.Apply(ctx,
		func() { t.store.SetDayItems(day, after) },
		func(ctx context.Context) error {
			_, err := t.sheets.PushUpdate(ctx, ActionUpdateItinerary,
				map[string]interface{}{"day": day, "items": after}, uid)
			return err
		},
		func() { t.store.SetDayItems(day, before) },
	)
}

func (t *TripService) AddChecklistItem(ctx context.Context, uid string, category trip_models.ChecklistCategory, text string) (trip_models.ChecklistItem, error) {
	if !trip_models.ValidChecklistCategory(category) || text == "" {
		return trip_models.ChecklistItem{}, utils.ErrInvalidInput
	}

	item := trip_models.ChecklistItem{
		ID:       uuid.NewString(),
		Text:     text,
		Category: category,
	}
	before := t.store.Checklist(category)
	after := append(append([]trip_models.ChecklistItem(nil), before...), item)
	t.pushChecklist(ctx, uid, category, before, after)
	return item, nil
}

func (t *TripService) ToggleChecklistItem(ctx context.Context, uid string, category trip_models.ChecklistCategory, id string) error {
	if !trip_models.ValidChecklistCategory(category) {
		return utils.ErrInvalidInput
	}

	before := t.store.Checklist(category)
	after := make([]trip_models.ChecklistItem, len(before))
	found := false
	for i, item := range before {
		if item.ID == id {
			found = true
			item.IsChecked = !item.IsChecked
		}
		after[i] = item
	}
	if !found {
		return utils.ErrItemNotFound
	}

	t.pushChecklist(ctx, uid, category, before, after)
	return nil
}

func (t *TripService) DeleteChecklistItem(ctx context.Context, uid string, category trip_models.ChecklistCategory, id string) error {
	if !trip_models.ValidChecklistCategory(category) {
		return utils.ErrInvalidInput
	}

	before := t.store.Checklist(category)
	after := make([]trip_models.ChecklistItem, 0, len(before))
	for _, item := range before {
		if item.ID != id {
			after = append(after, item)
		}
	}
	if len(after) == len(before) {
		return utils.ErrItemNotFound
	}

	t.pushChecklist(ctx, uid, category, before, after)
	return nil
}

func (t *TripService) pushChecklist(ctx context.Context, uid string, category trip_models.ChecklistCategory, before, after []trip_models.ChecklistItem) {
	t.coordinator.Apply(ctx,
		func() { t.store.SetChecklist(category, after) },
		func(ctx context.Context) error {
			_, err := t.sheets.PushUpdate(ctx, ActionUpdateChecklist,
				map[string]interface{}{"category": category, "items": after}, uid)
			return err
		},
		func() { t.store.SetChecklist(category, before) },
	)
}

// AddExpense records a purchase, capturing the exchange rate at
// creation time. The derived TWD amount is frozen on the record even
// if the rate later changes.
func (t *TripService) AddExpense(ctx context.Context, uid string, req request_models.ExpenseRequest) (trip_models.ExpenseItem, error) {
	if req.Title == "" || req.AmountKRW <= 0 {
		return trip_models.ExpenseItem{}, utils.ErrInvalidInput
	}

	rate := t.currency.Rate(ctx)
	item := trip_models.ExpenseItem{
		ID:           uuid.NewString(),
		Title:        req.Title,
		AmountKRW:    req.AmountKRW,
		AmountTWD:    utils.RoundTWD(req.AmountKRW, rate),
		Date:         time.Now().Format(time.RFC3339),
		Category:     "general",
		ExchangeRate: rate,
	}

	before := t.store.Expenses()
	// Newest first, matching the ledger display order.
	after := append([]trip_models.ExpenseItem{item}, before...)
	t.pushExpenses(ctx, uid, before, after)
	return item, nil
}

func (t *TripService) DeleteExpense(ctx context.Context, uid string, id string) error {
	before := t.store.Expenses()
	after := make([]trip_models.ExpenseItem, 0, len(before))
	for _, item := range before {
		if item.ID != id {
			after = append(after, item)
		}
	}
	if len(after) == len(before) {
		return utils.ErrItemNotFound
	}

	t.pushExpenses(ctx, uid, before, after)
	return nil
}

// ListExpenses returns the ledger newest first, optionally narrowed
// to one YYYY-MM-DD day.
func (t *TripService) ListExpenses(date string) []trip_models.ExpenseItem {
	expenses := t.store.Expenses()
	if date == "" {
		return expenses
	}
	return utils.FilterExpensesByDate(expenses, date)
}

func (t *TripService) ExpenseTotals() (totalKRW, totalTWD float64) {
	expenses := t.store.Expenses()
	return utils.SumExpensesKRW(expenses), utils.SumExpensesTWD(expenses)
}

func (t *TripService) pushExpenses(ctx context.Context, uid string, before, after []trip_models.ExpenseItem) {
	t.coordinator.Apply(ctx,
		func() { t.store.SetExpenses(after) },
		func(ctx context.Context) error {
			_, err := t.sheets.PushUpdate(ctx, ActionUpdateExpenses,
				map[string]interface{}{"items": after}, uid)
			return err
		},
		func() { t.store.SetExpenses(before) },
	)
}

func (t *TripService) UpdateFlights(ctx context.Context, uid string, info trip_models.FlightInfo) {
	before := t.store.Flights()
	t.coordinator.Apply(ctx,
		func() { t.store.SetFlights(info) },
		func(ctx context.Context) error {
			_, err := t.sheets.PushUpdate(ctx, ActionUpdateLogistics,
				map[string]interface{}{"type": "flights", "data": info}, uid)
			return err
		},
		func() { t.store.SetFlights(before) },
	)
}

func (t *TripService) UpdateHotel(ctx context.Context, uid string, info trip_models.HotelInfo) {
	before := t.store.Hotel()
	t.coordinator.Apply(ctx,
		func() { t.store.SetHotel(info) },
		func(ctx context.Context) error {
			_, err := t.sheets.PushUpdate(ctx, ActionUpdateLogistics,
				map[string]interface{}{"type": "hotel", "data": info}, uid)
			return err
		},
		func() { t.store.SetHotel(before) },
	)
}
