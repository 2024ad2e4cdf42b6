package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"time"

	"seoulplanner/internal/models/response_models"
	mem "seoulplanner/pkg/memcache"
	"seoulplanner/pkg/utils"
)

// FallbackRate is the rough KRW→TWD estimate used when the rate API
// is unreachable.
const FallbackRate = 0.024

const (
	rateCacheKey = "krw_twd"
	rateCacheTTL = 30 * time.Minute
)

type CurrencyServiceInterface interface {
	// Rate returns the current KRW→TWD rate, cached, falling back to
	// FallbackRate on any fetch failure. It never errors: a rate
	// lookup failure degrades silently.
	Rate(ctx context.Context) float64
	RateInfo(ctx context.Context) response_models.RateResponse
	Convert(ctx context.Context, amount string, direction string) response_models.ConvertResponse
}

type CurrencyService struct {
	HTTP    *http.Client
	BaseURL string
	cache   *mem.TTLCache[float64]
}

func NewCurrencyService(baseURL string, cache *mem.TTLCache[float64]) CurrencyServiceInterface {
	return &CurrencyService{
		HTTP:    &http.Client{Timeout: 10 * time.Second},
		BaseURL: baseURL,
		cache:   cache,
	}
}

type rateResponse struct {
	Rates map[string]float64 `json:"rates"`
}

func (c *CurrencyService) Rate(ctx context.Context) float64 {
	if rate, ok := c.cache.Get(rateCacheKey); ok {
		return rate
	}

	rate, err := c.fetchRate(ctx)
	if err != nil {
		log.Printf("Rate fetch failed, using fallback: %v", err)
		return FallbackRate
	}

	c.cache.Set(rateCacheKey, rate, rateCacheTTL)
	return rate
}

func (c *CurrencyService) RateInfo(ctx context.Context) response_models.RateResponse {
	if rate, ok := c.cache.Get(rateCacheKey); ok {
		return response_models.RateResponse{Rate: rate, FetchedAt: time.Now().Format(time.RFC3339)}
	}
	rate, err := c.fetchRate(ctx)
	if err != nil {
		return response_models.RateResponse{Rate: FallbackRate, Fallback: true, FetchedAt: time.Now().Format(time.RFC3339)}
	}
	c.cache.Set(rateCacheKey, rate, rateCacheTTL)
	return response_models.RateResponse{Rate: rate, FetchedAt: time.Now().Format(time.RFC3339)}
}

func (c *CurrencyService) Convert(ctx context.Context, amount string, direction string) response_models.ConvertResponse {
	rate := c.Rate(ctx)
	var result string
	if direction == "twd_to_krw" {
		result = utils.ConvertTWDToKRW(amount, rate)
	} else {
		result = utils.ConvertKRWToTWD(amount, rate)
	}
	return response_models.ConvertResponse{Result: result, Rate: rate}
}

func (c *CurrencyService) fetchRate(ctx context.Context) (float64, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.BaseURL+"/latest/KRW", nil)
	if err != nil {
		return 0, err
	}

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return 0, fmt.Errorf("rate API status %s", resp.Status)
	}

	var data rateResponse
	if err := json.NewDecoder(resp.Body).Decode(&data); err != nil {
		return 0, err
	}

	rate, ok := data.Rates["TWD"]
	if !ok || rate <= 0 {
		return 0, fmt.Errorf("rate API response missing TWD rate")
	}
	return rate, nil
}
