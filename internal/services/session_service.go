package services

import (
	"context"
	"log"
	"time"

	"seoulplanner/internal/models/db_models"
	"seoulplanner/internal/models/request_models"
	"seoulplanner/internal/models/response_models"
	"seoulplanner/internal/models/trip_models"
	"seoulplanner/internal/repositories"
	"seoulplanner/pkg/utils"
)

const sessionTTL = 30 * 24 * time.Hour

type SessionServiceInterface interface {
	Login(ctx context.Context, req request_models.LoginRequest) (*response_models.SessionResponse, error)
	Resume(ctx context.Context, token string) (*response_models.SessionResponse, error)
	Logout(ctx context.Context, uid string) error
	SaveAPIKey(ctx context.Context, uid string, apiKey string) error
}

type SessionService struct {
	sheets      SheetClientInterface
	sessionRepo repositories.SessionRepositoryInterface
	trips       TripServiceInterface
}

func NewSessionService(
	sheets SheetClientInterface,
	sessionRepo repositories.SessionRepositoryInterface,
	trips TripServiceInterface,
) SessionServiceInterface {
	return &SessionService{
		sheets:      sheets,
		sessionRepo: sessionRepo,
		trips:       trips,
	}
}

// Login pushes the login action to the trip store, which creates the
// sheet for a new trip id or returns the existing identity. With
// remember set, a token is issued and its hash persisted so the next
// startup can skip the login screen.
func (s *SessionService) Login(ctx context.Context, req request_models.LoginRequest) (*response_models.SessionResponse, error) {
	result, err := s.sheets.PushUpdate(ctx, ActionLogin, map[string]string{"tripId": req.TripID}, req.TripID)
	if err != nil {
		return nil, err
	}

	user := trip_models.User{UID: req.TripID, Username: req.TripID}
	if result.User != nil {
		user = *result.User
	}

	resp := &response_models.SessionResponse{User: user}
	if req.Remember {
		jti, err := utils.GenerateSecureToken(16)
		if err != nil {
			return nil, utils.ErrDatabaseError
		}
		token, err := utils.CreateToken(user.UID, user.Username, jti)
		if err != nil {
			return nil, utils.ErrDatabaseError
		}
		hash, err := utils.HashToken(token)
		if err != nil {
			return nil, utils.ErrDatabaseError
		}
		session := &db_models.RememberedSession{
			TripUID:     user.UID,
			Username:    user.Username,
			TokenLookup: jti,
			TokenHash:   hash,
			ExpiresAt:   time.Now().Add(sessionTTL).Unix(),
		}
		if err := s.sessionRepo.InsertSession(ctx, session); err != nil {
			log.Printf("Failed to persist remembered session: %v", err)
			return nil, utils.ErrDatabaseError
		}
		resp.Token = token
	}

	s.trips.Hydrate(ctx, user.UID)
	return resp, nil
}

// Resume restores a remembered session from its token, bypassing the
// login screen.
func (s *SessionService) Resume(ctx context.Context, token string) (*response_models.SessionResponse, error) {
	claims, err := utils.ValidateToken(token)
	if err != nil {
		return nil, utils.ErrInvalidSession
	}

	session, err := s.sessionRepo.FindSessionByLookup(ctx, claims.ID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if session == nil {
		return nil, utils.ErrSessionNotFound
	}
	if time.Now().Unix() > session.ExpiresAt {
		return nil, utils.ErrInvalidSession
	}
	if err := utils.CompareToken(session.TokenHash, token); err != nil {
		return nil, utils.ErrInvalidSession
	}

	user := trip_models.User{UID: session.TripUID, Username: session.Username}
	s.trips.Hydrate(ctx, user.UID)
	return &response_models.SessionResponse{User: user, Token: token}, nil
}

// Logout drops the remembered sessions for the trip and clears all
// in-memory state.
func (s *SessionService) Logout(ctx context.Context, uid string) error {
	if err := s.sessionRepo.DeleteSessionsByUID(ctx, uid); err != nil {
		log.Printf("Failed to delete sessions for %s: %v", uid, err)
		return utils.ErrDatabaseError
	}
	s.trips.Teardown()
	return nil
}

// SaveAPIKey stores the user's Gemini key; an empty key clears it.
func (s *SessionService) SaveAPIKey(ctx context.Context, uid string, apiKey string) error {
	if err := s.sessionRepo.UpsertAPIKey(ctx, uid, apiKey); err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}
