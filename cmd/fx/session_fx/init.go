package session_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"seoulplanner/internal/repositories"
	"seoulplanner/internal/services"
)

var Module = fx.Provide(
	provideSessionRepo, provideSessionService)

func provideSessionRepo(db *gorm.DB) repositories.SessionRepositoryInterface {
	return repositories.NewSessionRepository(db)
}

func provideSessionService(
	sheets services.SheetClientInterface,
	sessionRepo repositories.SessionRepositoryInterface,
	trips services.TripServiceInterface,
) services.SessionServiceInterface {
	return services.NewSessionService(sheets, sessionRepo, trips)
}
