package sheet_fx

import (
	"os"

	"go.uber.org/fx"

	"seoulplanner/internal/services"
)

var Module = fx.Provide(
	provideSheetClient)

func provideSheetClient() services.SheetClientInterface {
	return services.NewSheetClient(os.Getenv("SHEET_WEBAPP_URL"))
}
