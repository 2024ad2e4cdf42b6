package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"seoulplanner/internal/models/request_models"
	"seoulplanner/internal/services"
	"seoulplanner/pkg/utils"
)

type SessionController struct {
	sessionService services.SessionServiceInterface
}

func NewSessionController(sessionService services.SessionServiceInterface) *SessionController {
	return &SessionController{
		sessionService: sessionService,
	}
}

func (sc *SessionController) LoginHandler(c *gin.Context) {
	var req request_models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	resp, err := sc.sessionService.Login(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, resp, "Logged in successfully")
}

func (sc *SessionController) ResumeHandler(c *gin.Context) {
	var req request_models.ResumeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	resp, err := sc.sessionService.Resume(c.Request.Context(), req.Token)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, resp, "Session resumed")
}

func (sc *SessionController) LogoutHandler(c *gin.Context) {
	uid := c.GetString("uid")

	if err := sc.sessionService.Logout(c.Request.Context(), uid); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Logged out successfully")
}

func (sc *SessionController) SaveAPIKeyHandler(c *gin.Context) {
	uid := c.GetString("uid")

	var req request_models.APIKeyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := sc.sessionService.SaveAPIKey(c.Request.Context(), uid, req.APIKey); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "API key saved")
}
