package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"seoulplanner/internal/models/trip_models"
	"seoulplanner/pkg/utils"
)

// Actions understood by the sheet web app. Each partial update is
// tagged with one of these discriminators.
const (
	ActionLogin           = "login"
	ActionUpdateMeta      = "update_meta"
	ActionUpdateItinerary = "update_itinerary"
	ActionUpdateChecklist = "update_checklist"
	ActionUpdateExpenses  = "update_expenses"
	ActionUpdateLogistics = "update_logistics"
)

type PushResult struct {
	Success bool              `json:"success"`
	Message string            `json:"message,omitempty"`
	User    *trip_models.User `json:"user,omitempty"`
}

type SheetClientInterface interface {
	FetchSnapshot(ctx context.Context, uid string) (*trip_models.TripSnapshot, error)
	PushUpdate(ctx context.Context, action string, payload interface{}, uid string) (*PushResult, error)
}

type SheetClient struct {
	HTTP    *http.Client
	BaseURL string
}

func NewSheetClient(baseURL string) SheetClientInterface {
	return &SheetClient{
		HTTP:    &http.Client{Timeout: 15 * time.Second},
		BaseURL: baseURL,
	}
}

// sheetSnapshot is the loose wire shape of the sheet web app. The
// itinerary comes back as flat rows carrying their day number; the
// typed snapshot groups them into day buckets.
type sheetSnapshot struct {
	Meta      trip_models.TripMeta `json:"meta"`
	Itinerary []sheetItineraryRow  `json:"itinerary"`
	Logistics struct {
		Flights trip_models.FlightInfo `json:"flights"`
		Hotel   trip_models.HotelInfo  `json:"hotel"`
	} `json:"logistics"`
	Checklists []trip_models.ChecklistItem `json:"checklists"`
	Expenses   []trip_models.ExpenseItem   `json:"expenses"`
}

type sheetItineraryRow struct {
	trip_models.ItineraryItem
	Day json.Number `json:"day"`
}

func (s *SheetClient) FetchSnapshot(ctx context.Context, uid string) (*trip_models.TripSnapshot, error) {
	reqURL := s.BaseURL + "?uid=" + url.QueryEscape(uid)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrRemoteUnavailable, err)
	}

	resp, err := s.HTTP.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrRemoteUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: status %s", utils.ErrRemoteUnavailable, resp.Status)
	}

	var raw sheetSnapshot
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrMalformedSnapshot, err)
	}

	return validateSnapshot(raw)
}

// validateSnapshot turns the duck-typed sheet payload into the typed
// entities, failing instead of letting undefined fields propagate
// inward.
func validateSnapshot(raw sheetSnapshot) (*trip_models.TripSnapshot, error) {
	snap := &trip_models.TripSnapshot{
		Meta:      raw.Meta,
		Itinerary: trip_models.Itinerary{},
		Logistics: trip_models.Logistics{Flights: raw.Logistics.Flights, Hotel: raw.Logistics.Hotel},
		Expenses:  raw.Expenses,
	}

	for _, row := range raw.Itinerary {
		if row.ID == "" {
			return nil, fmt.Errorf("%w: itinerary row without id", utils.ErrMalformedSnapshot)
		}
		day := 1
		if n, err := row.Day.Int64(); err == nil && n >= 1 {
			day = int(n)
		}
		snap.Itinerary[day] = append(snap.Itinerary[day], row.ItineraryItem)
	}

	for _, item := range raw.Checklists {
		if item.ID == "" {
			return nil, fmt.Errorf("%w: checklist row without id", utils.ErrMalformedSnapshot)
		}
		// Rows with an unrecognized category are dropped rather than
		// surfaced into either list.
		if !trip_models.ValidChecklistCategory(item.Category) {
			continue
		}
		snap.Checklists = append(snap.Checklists, item)
	}

	for _, item := range snap.Expenses {
		if item.ID == "" {
			return nil, fmt.Errorf("%w: expense row without id", utils.ErrMalformedSnapshot)
		}
	}

	return snap, nil
}

func (s *SheetClient) PushUpdate(ctx context.Context, action string, payload interface{}, uid string) (*PushResult, error) {
	body, err := json.Marshal(map[string]interface{}{
		"action":  action,
		"payload": payload,
		"uid":     uid,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrInvalidInput, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.BaseURL, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrRemoteUnavailable, err)
	}
	// The sheet web app only skips the CORS preflight for simple
	// requests, so the JSON body is deliberately sent as text/plain.
	req.Header.Set("Content-Type", "text/plain")

	resp, err := s.HTTP.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrRemoteUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		io.Copy(io.Discard, resp.Body)
		return nil, fmt.Errorf("%w: status %s", utils.ErrRemoteUnavailable, resp.Status)
	}

	var result PushResult
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrMalformedSnapshot, err)
	}
	if !result.Success {
		return &result, fmt.Errorf("%w: %s", utils.ErrPushRejected, result.Message)
	}
	return &result, nil
}
