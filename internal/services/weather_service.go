package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"time"

	"seoulplanner/internal/models/trip_models"
	"seoulplanner/pkg/utils"
)

// Seoul city center, the fixed forecast location.
const (
	seoulLatitude  = "37.5665"
	seoulLongitude = "126.9780"
	seoulTimezone  = "Asia/Seoul"
)

type WeatherServiceInterface interface {
	// Forecast returns one entry per trip day. It always succeeds:
	// when the forecast lookup fails, the date skeletons come back
	// with unknown conditions and no temperatures.
	Forecast(ctx context.Context, startDate, endDate string) []trip_models.WeatherData
}

type WeatherService struct {
	HTTP    *http.Client
	BaseURL string
}

func NewWeatherService(baseURL string) WeatherServiceInterface {
	return &WeatherService{
		HTTP:    &http.Client{Timeout: 10 * time.Second},
		BaseURL: baseURL,
	}
}

type openMeteoResponse struct {
	Daily struct {
		Time             []string  `json:"time"`
		WeatherCode      []int     `json:"weathercode"`
		Temperature2mMax []float64 `json:"temperature_2m_max"`
		Temperature2mMin []float64 `json:"temperature_2m_min"`
	} `json:"daily"`
}

func (w *WeatherService) Forecast(ctx context.Context, startDate, endDate string) []trip_models.WeatherData {
	skeleton := utils.DateRange(startDate, endDate)
	if len(skeleton) == 0 {
		return skeleton
	}

	enriched, err := w.fetchForecast(ctx, startDate, endDate)
	if err != nil {
		log.Printf("Weather fetch failed, keeping date skeletons: %v", err)
		return skeleton
	}
	if len(enriched) == 0 {
		return skeleton
	}
	return enriched
}

func (w *WeatherService) fetchForecast(ctx context.Context, startDate, endDate string) ([]trip_models.WeatherData, error) {
	params := url.Values{}
	params.Set("latitude", seoulLatitude)
	params.Set("longitude", seoulLongitude)
	params.Set("daily", "weathercode,temperature_2m_max,temperature_2m_min")
	params.Set("timezone", seoulTimezone)
	params.Set("start_date", startDate)
	params.Set("end_date", endDate)

	reqURL := w.BaseURL + "/forecast?" + params.Encode()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, err
	}

	resp, err := w.HTTP.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("forecast API status %s", resp.Status)
	}

	var data openMeteoResponse
	if err := json.NewDecoder(resp.Body).Decode(&data); err != nil {
		return nil, err
	}

	daily := data.Daily
	out := make([]trip_models.WeatherData, 0, len(daily.Time))
	for i, dateStr := range daily.Time {
		entry := trip_models.WeatherData{
			ID:        dateStr,
			Day:       utils.DayName(dateStr),
			Date:      utils.FormatMonthDay(dateStr),
			FullDate:  dateStr,
			Condition: trip_models.WeatherUnknown,
		}
		if i < len(daily.WeatherCode) {
			entry.Condition = MapWeatherCode(daily.WeatherCode[i])
		}
		if i < len(daily.Temperature2mMax) {
			high := daily.Temperature2mMax[i]
			entry.TempHigh = &high
		}
		if i < len(daily.Temperature2mMin) {
			low := daily.Temperature2mMin[i]
			entry.TempLow = &low
		}
		out = append(out, entry)
	}
	return out, nil
}

// MapWeatherCode buckets WMO weather codes into the three display
// conditions: 0-1 clear, 2-48 overcast and fog, everything above is
// some form of precipitation.
func MapWeatherCode(code int) trip_models.WeatherCondition {
	switch {
	case code <= 1:
		return trip_models.WeatherSunny
	case code <= 48:
		return trip_models.WeatherCloudy
	default:
		return trip_models.WeatherRainy
	}
}
