package main

import (
	"context"
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/fx"

	"seoulplanner/cmd/fx/controllers_fx"
	"seoulplanner/cmd/fx/currency_fx"
	"seoulplanner/cmd/fx/db_fx"
	"seoulplanner/cmd/fx/insight_fx"
	"seoulplanner/cmd/fx/session_fx"
	"seoulplanner/cmd/fx/sheet_fx"
	"seoulplanner/cmd/fx/state_fx"
	"seoulplanner/cmd/fx/trip_fx"
	"seoulplanner/cmd/fx/weather_fx"
	"seoulplanner/internal/api/controllers"
	"seoulplanner/pkg/middleware"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on environment")
	}

	app := fx.New(
		db_fx.Module,
		state_fx.Module,
		sheet_fx.Module,
		currency_fx.Module,
		trip_fx.Module,
		session_fx.Module,
		weather_fx.Module,
		insight_fx.Module,
		controllers_fx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				port := os.Getenv("PORT")
				if port == "" {
					port = "8080"
				}
				log.Printf("Starting HTTP server at :%s", port)
				if err := engine.Run(":" + port); err != nil {
					log.Fatalf("Failed to start server: %v", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Println("Stopping HTTP server")
			return nil
		},
	})
}

func ProvideRouter(
	sessionController *controllers.SessionController,
	tripController *controllers.TripController,
	weatherController *controllers.WeatherController,
	currencyController *controllers.CurrencyController,
	insightController *controllers.InsightController) *gin.Engine {

	r := gin.Default()
	r.Use(gin.Logger())
	r.Use(gin.Recovery())
	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.TraceIDMiddleware())

	RegisterRoutes(r, sessionController, tripController, weatherController, currencyController, insightController)

	return r
}

func RegisterRoutes(r *gin.Engine,
	sessionController *controllers.SessionController,
	tripController *controllers.TripController,
	weatherController *controllers.WeatherController,
	currencyController *controllers.CurrencyController,
	insightController *controllers.InsightController) {

	sessions := r.Group("/sessions")
	sessions.POST("/login", sessionController.LoginHandler)
	sessions.POST("/resume", sessionController.ResumeHandler)
	sessions.POST("/logout", middleware.JWTAuthMiddleware(), sessionController.LogoutHandler)
	sessions.PUT("/api-key", middleware.JWTAuthMiddleware(), sessionController.SaveAPIKeyHandler)

	trip := r.Group("/trip", middleware.JWTAuthMiddleware())
	trip.GET("", tripController.GetTripHandler)
	trip.PUT("/meta/title", tripController.UpdateTitleHandler)
	trip.PUT("/meta/dates", tripController.UpdateDatesHandler)

	trip.POST("/days/:day/items", tripController.AddItineraryItemHandler)
	trip.PUT("/days/:day/items/:id", tripController.EditItineraryItemHandler)
	trip.POST("/days/:day/items/move", tripController.MoveItineraryItemHandler)
	trip.DELETE("/days/:day/items/:id", tripController.DeleteItineraryItemHandler)
	trip.GET("/days/:day/budget", tripController.DayBudgetHandler)

	trip.POST("/checklists/:category/items", tripController.AddChecklistItemHandler)
	trip.PUT("/checklists/:category/items/:id", tripController.ToggleChecklistItemHandler)
	trip.DELETE("/checklists/:category/items/:id", tripController.DeleteChecklistItemHandler)

	trip.GET("/expenses", tripController.ListExpensesHandler)
	trip.POST("/expenses", tripController.AddExpenseHandler)
	trip.DELETE("/expenses/:id", tripController.DeleteExpenseHandler)
	trip.GET("/expenses/totals", tripController.ExpenseTotalsHandler)

	trip.PUT("/logistics/flights", tripController.UpdateFlightsHandler)
	trip.PUT("/logistics/hotel", tripController.UpdateHotelHandler)

	weather := r.Group("/weather", middleware.JWTAuthMiddleware())
	weather.GET("", weatherController.ForecastHandler)

	currency := r.Group("/currency")
	currency.GET("/rate", currencyController.RateHandler)
	currency.POST("/convert", currencyController.ConvertHandler)

	insights := r.Group("/insights", middleware.JWTAuthMiddleware())
	insights.POST("/place-details", insightController.PlaceDetailsHandler)
	insights.POST("/place-insight", insightController.PlaceInsightHandler)
	insights.POST("/day-suggestion", insightController.DaySuggestionHandler)
}
