package utils

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

type APIResponse struct {
	Status  string      `json:"status"`
	Code    int         `json:"code"`
	Message string      `json:"message,omitempty"`
	TraceID string      `json:"trace_id,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

func RespondSuccess(c *gin.Context, data interface{}, message string) {
	traceID := c.GetString("trace_id")
	c.JSON(http.StatusOK, APIResponse{
		Status:  "success",
		Code:    http.StatusOK,
		Message: message,
		TraceID: traceID,
		Data:    data,
	})
}

func RespondError(c *gin.Context, code int, message string) {
	traceID := c.GetString("trace_id")
	c.JSON(code, APIResponse{
		Status:  "error",
		Code:    code,
		Message: message,
		TraceID: traceID,
	})
}

// HandleServiceError maps service sentinels onto HTTP statuses. Every
// failure here degrades one feature; nothing is fatal to the session.
func HandleServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrInvalidInput):
		RespondError(c, http.StatusBadRequest, "Invalid request")
	case errors.Is(err, ErrConfirmationRequired):
		RespondError(c, http.StatusBadRequest, "Deleting an itinerary item requires confirm=true")
	case errors.Is(err, ErrItemNotFound):
		RespondError(c, http.StatusNotFound, "Item not found")
	case errors.Is(err, ErrSessionNotFound), errors.Is(err, ErrInvalidSession):
		RespondError(c, http.StatusUnauthorized, "Session expired, please log in again")
	case errors.Is(err, ErrMissingAPIKey):
		RespondError(c, http.StatusPreconditionFailed, "請先設定 Gemini API Key 才能使用 AI 功能")
	case errors.Is(err, ErrRemoteUnavailable), errors.Is(err, ErrPushRejected):
		RespondError(c, http.StatusBadGateway, "同步失敗，正在回復資料...")
	case errors.Is(err, ErrMalformedSnapshot):
		log.Printf("Snapshot parse error: %v", err)
		RespondError(c, http.StatusBadGateway, "Trip store returned malformed data")
	case errors.Is(err, ErrDatabaseError):
		log.Printf("Database error: %v", err)
		RespondError(c, http.StatusInternalServerError, "Internal server error")
	default:
		log.Printf("Unknown error: %v", err)
		RespondError(c, http.StatusInternalServerError, "Internal server error")
	}
}
