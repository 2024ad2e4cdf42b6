package controllers

import (
	"github.com/gin-gonic/gin"

	"seoulplanner/internal/services"
	"seoulplanner/pkg/utils"
)

type WeatherController struct {
	weatherService services.WeatherServiceInterface
	tripService    services.TripServiceInterface
}

func NewWeatherController(
	weatherService services.WeatherServiceInterface,
	tripService services.TripServiceInterface,
) *WeatherController {
	return &WeatherController{
		weatherService: weatherService,
		tripService:    tripService,
	}
}

// ForecastHandler returns one forecast entry per trip day, derived
// from the current trip dates. A failed forecast lookup still yields
// the date skeletons, never an error.
func (wc *WeatherController) ForecastHandler(c *gin.Context) {
	meta := wc.tripService.Snapshot().Meta
	forecast := wc.weatherService.Forecast(c.Request.Context(), meta.StartDate, meta.EndDate)
	utils.RespondSuccess(c, forecast, "Fetched forecast")
}
