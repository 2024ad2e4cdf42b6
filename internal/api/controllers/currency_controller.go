package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"seoulplanner/internal/models/request_models"
	"seoulplanner/internal/services"
	"seoulplanner/pkg/utils"
)

type CurrencyController struct {
	currencyService services.CurrencyServiceInterface
}

func NewCurrencyController(currencyService services.CurrencyServiceInterface) *CurrencyController {
	return &CurrencyController{
		currencyService: currencyService,
	}
}

func (cc *CurrencyController) RateHandler(c *gin.Context) {
	info := cc.currencyService.RateInfo(c.Request.Context())
	utils.RespondSuccess(c, info, "Fetched exchange rate")
}

func (cc *CurrencyController) ConvertHandler(c *gin.Context) {
	var req request_models.ConvertRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	resp := cc.currencyService.Convert(c.Request.Context(), req.Amount, req.Direction)
	utils.RespondSuccess(c, resp, "Converted amount")
}
