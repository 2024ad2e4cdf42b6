package weather_fx

import (
	"os"

	"go.uber.org/fx"

	"seoulplanner/internal/services"
)

var Module = fx.Provide(
	provideWeatherService)

func provideWeatherService() services.WeatherServiceInterface {
	baseURL := os.Getenv("OPEN_METEO_URL")
	if baseURL == "" {
		baseURL = "https://api.open-meteo.com/v1"
	}
	return services.NewWeatherService(baseURL)
}
