package currency_fx

import (
	"os"

	"go.uber.org/fx"

	"seoulplanner/internal/services"
	mem "seoulplanner/pkg/memcache"
)

var Module = fx.Provide(
	provideRateCache, provideCurrencyService)

func provideRateCache() *mem.TTLCache[float64] {
	return mem.NewTTLCache[float64]()
}

func provideCurrencyService(cache *mem.TTLCache[float64]) services.CurrencyServiceInterface {
	baseURL := os.Getenv("EXCHANGE_RATE_API_URL")
	if baseURL == "" {
		baseURL = "https://open.er-api.com/v6"
	}
	return services.NewCurrencyService(baseURL, cache)
}
