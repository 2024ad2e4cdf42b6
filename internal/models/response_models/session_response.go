package response_models

import "seoulplanner/internal/models/trip_models"

type SessionResponse struct {
	User  trip_models.User `json:"user"`
	Token string           `json:"token,omitempty"`
}
