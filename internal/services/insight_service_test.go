package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"seoulplanner/internal/models/db_models"
	"seoulplanner/internal/models/request_models"
	"seoulplanner/internal/state"
	mem "seoulplanner/pkg/memcache"
	"seoulplanner/pkg/optimistic"
	"seoulplanner/pkg/utils"
)

type memorySessionRepo struct {
	sessions map[string]*db_models.RememberedSession
	apiKeys  map[string]string
}

func newMemorySessionRepo() *memorySessionRepo {
	return &memorySessionRepo{
		sessions: map[string]*db_models.RememberedSession{},
		apiKeys:  map[string]string{},
	}
}

func (m *memorySessionRepo) InsertSession(ctx context.Context, session *db_models.RememberedSession) error {
	m.sessions[session.TokenLookup] = session
	return nil
}

func (m *memorySessionRepo) FindSessionByLookup(ctx context.Context, lookup string) (*db_models.RememberedSession, error) {
	return m.sessions[lookup], nil
}

func (m *memorySessionRepo) DeleteSessionsByUID(ctx context.Context, tripUID string) error {
	for lookup, session := range m.sessions {
		if session.TripUID == tripUID {
			delete(m.sessions, lookup)
		}
	}
	return nil
}

func (m *memorySessionRepo) UpsertAPIKey(ctx context.Context, tripUID string, apiKey string) error {
	m.apiKeys[tripUID] = apiKey
	return nil
}

func (m *memorySessionRepo) FindAPIKey(ctx context.Context, tripUID string) (string, error) {
	return m.apiKeys[tripUID], nil
}

type scriptedInsightClient struct {
	jsonResponse string
	textResponse string
	calls        int
	lastKey      string
	lastPrompt   string
	err          error
}

func (s *scriptedInsightClient) GenerateJSON(ctx context.Context, apiKey, prompt string) (string, error) {
	s.calls++
	s.lastKey = apiKey
	s.lastPrompt = prompt
	return s.jsonResponse, s.err
}

func (s *scriptedInsightClient) GenerateText(ctx context.Context, apiKey, prompt string) (string, error) {
	s.calls++
	s.lastKey = apiKey
	s.lastPrompt = prompt
	return s.textResponse, s.err
}

type insightFixture struct {
	client      *scriptedInsightClient
	repo        *memorySessionRepo
	store       *state.TripStore
	coordinator *optimistic.Coordinator
	trips       TripServiceInterface
	service     InsightServiceInterface
}

func newInsightFixture(t *testing.T) *insightFixture {
	t.Helper()
	client := &scriptedInsightClient{}
	repo := newMemorySessionRepo()
	store := state.NewTripStore()
	coordinator := optimistic.NewCoordinator(func(string) {})
	trips := NewTripService(store, &fakeSheetClient{}, coordinator, &fixedRateCurrency{rate: 0.024})
	service := NewInsightService(client, repo, trips, mem.NewTTLCache[string]())
	return &insightFixture{client: client, repo: repo, store: store, coordinator: coordinator, trips: trips, service: service}
}

func TestPlaceDetailsWithoutAnyKey(t *testing.T) {
	f := newInsightFixture(t)
	t.Setenv("GEMINI_API_KEY", "")
	f.service = NewInsightService(f.client, f.repo, f.trips, mem.NewTTLCache[string]())

	_, err := f.service.PlaceDetails(context.Background(), "trip-1", "景福宮")
	assert.ErrorIs(t, err, utils.ErrMissingAPIKey)
	assert.Equal(t, 0, f.client.calls)
}

func TestPlaceDetailsUsesStoredKey(t *testing.T) {
	f := newInsightFixture(t)
	f.repo.apiKeys["trip-1"] = "user-key"
	f.client.jsonResponse = `{"address": "首爾鐘路區", "addressKR": "서울 종로구", "category": "景點", "budget": "3000"}`

	details, err := f.service.PlaceDetails(context.Background(), "trip-1", "景福宮")
	require.NoError(t, err)
	assert.Equal(t, "user-key", f.client.lastKey)
	assert.Equal(t, "首爾鐘路區", details.Address)
	assert.Equal(t, "서울 종로구", details.AddressKR)
	assert.Contains(t, f.client.lastPrompt, "景福宮")
}

func TestPlaceDetailsMalformedModelOutput(t *testing.T) {
	f := newInsightFixture(t)
	f.repo.apiKeys["trip-1"] = "user-key"
	f.client.jsonResponse = `not json at all`

	_, err := f.service.PlaceDetails(context.Background(), "trip-1", "景福宮")
	assert.Error(t, err)
}

func TestPlaceInsightAttachesToItem(t *testing.T) {
	f := newInsightFixture(t)
	f.repo.apiKeys["trip-1"] = "user-key"
	f.client.textResponse = "這裡有名的是醬油蟹"

	item, err := f.trips.AddItineraryItem(context.Background(), "trip-1", 1, request_models.ItineraryItemRequest{Title: "廣藏市場"})
	require.NoError(t, err)
	f.coordinator.Wait()

	text, err := f.service.PlaceInsight(context.Background(), "trip-1", 1, item.ID)
	require.NoError(t, err)
	f.coordinator.Wait()

	assert.Equal(t, "這裡有名的是醬油蟹", text)
	assert.Equal(t, "這裡有名的是醬油蟹", f.store.DayItems(1)[0].AIInsight)
	assert.Contains(t, f.client.lastPrompt, "廣藏市場")
}

func TestPlaceInsightUnknownItem(t *testing.T) {
	f := newInsightFixture(t)
	f.repo.apiKeys["trip-1"] = "user-key"

	_, err := f.service.PlaceInsight(context.Background(), "trip-1", 1, "missing")
	assert.ErrorIs(t, err, utils.ErrItemNotFound)
}

func TestDaySuggestionCachesByRoute(t *testing.T) {
	f := newInsightFixture(t)
	f.repo.apiKeys["trip-1"] = "user-key"
	f.client.textResponse = "建議先去景福宮再去仁寺洞"

	f.trips.AddItineraryItem(context.Background(), "trip-1", 1, request_models.ItineraryItemRequest{Title: "景福宮"})
	f.coordinator.Wait()

	first, err := f.service.DaySuggestion(context.Background(), "trip-1", 1)
	require.NoError(t, err)
	second, err := f.service.DaySuggestion(context.Background(), "trip-1", 1)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, 1, f.client.calls)
}

func TestDaySuggestionRefreshesWhenRouteChanges(t *testing.T) {
	f := newInsightFixture(t)
	f.repo.apiKeys["trip-1"] = "user-key"
	f.client.textResponse = "ok"

	f.trips.AddItineraryItem(context.Background(), "trip-1", 1, request_models.ItineraryItemRequest{Title: "景福宮"})
	f.coordinator.Wait()
	f.service.DaySuggestion(context.Background(), "trip-1", 1)

	f.trips.AddItineraryItem(context.Background(), "trip-1", 1, request_models.ItineraryItemRequest{Title: "仁寺洞"})
	f.coordinator.Wait()
	f.service.DaySuggestion(context.Background(), "trip-1", 1)

	assert.Equal(t, 2, f.client.calls)
}

func TestDaySuggestionEmptyDayPrompt(t *testing.T) {
	f := newInsightFixture(t)
	f.repo.apiKeys["trip-1"] = "user-key"
	f.client.textResponse = "推薦三個景點"

	_, err := f.service.DaySuggestion(context.Background(), "trip-1", 3)
	require.NoError(t, err)
	assert.Contains(t, f.client.lastPrompt, "行程是空的")
}
