package trip_fx

import (
	"go.uber.org/fx"

	"seoulplanner/internal/services"
	"seoulplanner/internal/state"
	"seoulplanner/pkg/optimistic"
)

var Module = fx.Provide(
	provideTripService)

func provideTripService(
	store *state.TripStore,
	sheets services.SheetClientInterface,
	coordinator *optimistic.Coordinator,
	currency services.CurrencyServiceInterface,
) services.TripServiceInterface {
	return services.NewTripService(store, sheets, coordinator, currency)
}
