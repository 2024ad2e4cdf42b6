package insight_fx

import (
	"os"

	"go.uber.org/fx"

	"seoulplanner/internal/repositories"
	"seoulplanner/internal/services"
	mem "seoulplanner/pkg/memcache"
)

var Module = fx.Provide(
	provideInsightClient, provideSuggestionCache, provideInsightService)

func provideInsightClient() (services.InsightClientInterface, error) {
	return services.NewInsightClient(os.Getenv("INSIGHT_PROVIDER"), os.Getenv("INSIGHT_MODEL"))
}

func provideSuggestionCache() *mem.TTLCache[string] {
	return mem.NewTTLCache[string]()
}

func provideInsightService(
	client services.InsightClientInterface,
	sessionRepo repositories.SessionRepositoryInterface,
	trips services.TripServiceInterface,
	cache *mem.TTLCache[string],
) services.InsightServiceInterface {
	return services.NewInsightService(client, sessionRepo, trips, cache)
}
