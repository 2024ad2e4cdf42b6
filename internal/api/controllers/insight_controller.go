package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"seoulplanner/internal/models/request_models"
	"seoulplanner/internal/models/response_models"
	"seoulplanner/internal/services"
	"seoulplanner/pkg/utils"
)

type InsightController struct {
	insightService services.InsightServiceInterface
}

func NewInsightController(insightService services.InsightServiceInterface) *InsightController {
	return &InsightController{
		insightService: insightService,
	}
}

func (ic *InsightController) PlaceDetailsHandler(c *gin.Context) {
	uid := c.GetString("uid")

	var req request_models.PlaceDetailsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	details, err := ic.insightService.PlaceDetails(c.Request.Context(), uid, req.PlaceName)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, details, "Fetched place details")
}

func (ic *InsightController) PlaceInsightHandler(c *gin.Context) {
	uid := c.GetString("uid")

	var req request_models.PlaceInsightRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	text, err := ic.insightService.PlaceInsight(c.Request.Context(), uid, req.Day, req.ItemID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, response_models.InsightResponse{Text: text}, "Generated insight")
}

func (ic *InsightController) DaySuggestionHandler(c *gin.Context) {
	uid := c.GetString("uid")

	var req request_models.DaySuggestionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	text, err := ic.insightService.DaySuggestion(c.Request.Context(), uid, req.Day)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, response_models.InsightResponse{Text: text}, "Generated suggestion")
}
