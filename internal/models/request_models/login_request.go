package request_models

type LoginRequest struct {
	TripID   string `json:"tripId" binding:"required"`
	Remember bool   `json:"remember"`
}

type ResumeRequest struct {
	Token string `json:"token" binding:"required"`
}

type APIKeyRequest struct {
	APIKey string `json:"apiKey"`
}
