package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"seoulplanner/internal/models/response_models"
	"seoulplanner/internal/repositories"
	mem "seoulplanner/pkg/memcache"
	"seoulplanner/pkg/utils"
)

const suggestionCacheTTL = 10 * time.Minute

type InsightServiceInterface interface {
	// PlaceDetails returns structured details for prefilling a new
	// itinerary item from just a place name.
	PlaceDetails(ctx context.Context, uid string, placeName string) (*response_models.PlaceDetailsResponse, error)
	// PlaceInsight generates a short blurb for an item and stores it
	// onto the item through the trip service.
	PlaceInsight(ctx context.Context, uid string, day int, itemID string) (string, error)
	// DaySuggestion reviews one day's ordering and suggests an
	// optimization or next stop.
	DaySuggestion(ctx context.Context, uid string, day int) (string, error)
}

type InsightService struct {
	client      InsightClientInterface
	sessionRepo repositories.SessionRepositoryInterface
	trips       TripServiceInterface
	cache       *mem.TTLCache[string]
	envKey      string
}

func NewInsightService(
	client InsightClientInterface,
	sessionRepo repositories.SessionRepositoryInterface,
	trips TripServiceInterface,
	cache *mem.TTLCache[string],
) InsightServiceInterface {
	return &InsightService{
		client:      client,
		sessionRepo: sessionRepo,
		trips:       trips,
		cache:       cache,
		envKey:      os.Getenv("GEMINI_API_KEY"),
	}
}

// resolveKey prefers the user's stored key over the build-time one.
// Having neither is a user-facing condition, not a crash: the AI
// features degrade to unavailable until a key is configured.
func (s *InsightService) resolveKey(ctx context.Context, uid string) (string, error) {
	stored, err := s.sessionRepo.FindAPIKey(ctx, uid)
	if err != nil {
		log.Printf("API key lookup failed for %s: %v", uid, err)
	}
	if stored != "" {
		return stored, nil
	}
	if s.envKey != "" {
		return s.envKey, nil
	}
	return "", utils.ErrMissingAPIKey
}

func (s *InsightService) PlaceDetails(ctx context.Context, uid string, placeName string) (*response_models.PlaceDetailsResponse, error) {
	apiKey, err := s.resolveKey(ctx, uid)
	if err != nil {
		return nil, err
	}

	prompt := fmt.Sprintf("使用者想去首爾的「%s」。請提供：1. 詳細中文地址(address)。 2. 詳細韓文地址(addressKR, 用於Naver Map導航)。 3. 最適合的類別(category)。 4. 預估人均消費(budget, 韓元)。", placeName)
	content, err := s.client.GenerateJSON(ctx, apiKey, prompt)
	if err != nil {
		return nil, err
	}

	var details response_models.PlaceDetailsResponse
	if err := json.Unmarshal([]byte(content), &details); err != nil {
		return nil, fmt.Errorf("place details: %w", err)
	}
	return &details, nil
}

func (s *InsightService) PlaceInsight(ctx context.Context, uid string, day int, itemID string) (string, error) {
	apiKey, err := s.resolveKey(ctx, uid)
	if err != nil {
		return "", err
	}

	var title string
	for _, item := range s.trips.Snapshot().Itinerary[day] {
		if item.ID == itemID {
			title = item.Title
			break
		}
	}
	if title == "" {
		return "", utils.ErrItemNotFound
	}

	prompt := fmt.Sprintf("你是韓國旅遊達人。請用繁體中文，針對首爾的景點「%s」提供：1. 一個有趣的冷知識。 2. 一個附近推薦的必吃美食（含理由）。總字數請控制在 80 字以內，語氣輕鬆活潑。", title)
	text, err := s.client.GenerateText(ctx, apiKey, prompt)
	if err != nil {
		return "", err
	}

	if err := s.trips.AttachInsight(ctx, uid, day, itemID, text); err != nil {
		return "", err
	}
	return text, nil
}

func (s *InsightService) DaySuggestion(ctx context.Context, uid string, day int) (string, error) {
	apiKey, err := s.resolveKey(ctx, uid)
	if err != nil {
		return "", err
	}

	items := s.trips.Snapshot().Itinerary[day]
	titles := make([]string, 0, len(items))
	for _, item := range items {
		titles = append(titles, item.Title)
	}
	route := strings.Join(titles, " -> ")

	cacheKey := fmt.Sprintf("%s:%d:%s", uid, day, route)
	if cached, ok := s.cache.Get(cacheKey); ok {
		return cached, nil
	}

	prompt := fmt.Sprintf("我正在規劃首爾行程 Day %d，順序是：%s。請用繁體中文分析，給出一個優化建議或推薦下一個景點。50字內。", day, route)
	if len(titles) == 0 {
		prompt = "我目前這一天的行程是空的。請推薦 3 個首爾適合放在一起的景點給我。"
	}

	text, err := s.client.GenerateText(ctx, apiKey, prompt)
	if err != nil {
		return "", err
	}

	s.cache.Set(cacheKey, text, suggestionCacheTTL)
	return text, nil
}
