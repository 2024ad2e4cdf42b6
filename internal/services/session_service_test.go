package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"seoulplanner/internal/models/request_models"
	"seoulplanner/internal/models/trip_models"
	"seoulplanner/internal/state"
	"seoulplanner/pkg/optimistic"
	"seoulplanner/pkg/utils"
)

type sessionFixture struct {
	sheets      *fakeSheetClient
	repo        *memorySessionRepo
	store       *state.TripStore
	coordinator *optimistic.Coordinator
	service     SessionServiceInterface
}

func newSessionFixture(t *testing.T) *sessionFixture {
	t.Helper()
	sheets := &fakeSheetClient{}
	repo := newMemorySessionRepo()
	store := state.NewTripStore()
	coordinator := optimistic.NewCoordinator(func(string) {})
	trips := NewTripService(store, sheets, coordinator, &fixedRateCurrency{rate: 0.024})
	service := NewSessionService(sheets, repo, trips)
	return &sessionFixture{sheets: sheets, repo: repo, store: store, coordinator: coordinator, service: service}
}

func TestLoginWithoutRemember(t *testing.T) {
	f := newSessionFixture(t)

	resp, err := f.service.Login(context.Background(), request_models.LoginRequest{TripID: "trip-1"})
	require.NoError(t, err)

	assert.Equal(t, "trip-1", resp.User.UID)
	assert.Empty(t, resp.Token)
	assert.Empty(t, f.repo.sessions)

	require.Equal(t, 1, f.sheets.pushCount())
	assert.Equal(t, ActionLogin, f.sheets.pushes[0].Action)
}

func TestLoginWithRememberIssuesResumableToken(t *testing.T) {
	f := newSessionFixture(t)

	resp, err := f.service.Login(context.Background(), request_models.LoginRequest{TripID: "trip-1", Remember: true})
	require.NoError(t, err)
	require.NotEmpty(t, resp.Token)
	require.Len(t, f.repo.sessions, 1)

	resumed, err := f.service.Resume(context.Background(), resp.Token)
	require.NoError(t, err)
	assert.Equal(t, "trip-1", resumed.User.UID)
	assert.Equal(t, resp.Token, resumed.Token)
}

func TestLoginHydratesStore(t *testing.T) {
	f := newSessionFixture(t)
	f.sheets.snapshot = &trip_models.TripSnapshot{
		Meta: trip_models.TripMeta{Title: "遠端標題", StartDate: "2026-03-10", EndDate: "2026-03-14"},
	}

	_, err := f.service.Login(context.Background(), request_models.LoginRequest{TripID: "trip-1"})
	require.NoError(t, err)

	assert.Equal(t, "遠端標題", f.store.Meta().Title)
}

func TestLoginFailsWhenSheetUnavailable(t *testing.T) {
	f := newSessionFixture(t)
	f.sheets.failPush = true

	_, err := f.service.Login(context.Background(), request_models.LoginRequest{TripID: "trip-1"})
	assert.ErrorIs(t, err, utils.ErrRemoteUnavailable)
}

func TestResumeRejectsGarbageToken(t *testing.T) {
	f := newSessionFixture(t)
	_, err := f.service.Resume(context.Background(), "not.a.token")
	assert.ErrorIs(t, err, utils.ErrInvalidSession)
}

func TestResumeRejectsUnknownSession(t *testing.T) {
	f := newSessionFixture(t)

	// Valid token whose session row never existed.
	token, err := utils.CreateToken("trip-1", "trip-1", "ghost-jti")
	require.NoError(t, err)

	_, err = f.service.Resume(context.Background(), token)
	assert.ErrorIs(t, err, utils.ErrSessionNotFound)
}

func TestResumeRejectsExpiredSession(t *testing.T) {
	f := newSessionFixture(t)

	resp, err := f.service.Login(context.Background(), request_models.LoginRequest{TripID: "trip-1", Remember: true})
	require.NoError(t, err)

	for _, session := range f.repo.sessions {
		session.ExpiresAt = time.Now().Add(-time.Hour).Unix()
	}

	_, err = f.service.Resume(context.Background(), resp.Token)
	assert.ErrorIs(t, err, utils.ErrInvalidSession)
}

func TestResumeRejectsTokenWithWrongHash(t *testing.T) {
	f := newSessionFixture(t)

	resp, err := f.service.Login(context.Background(), request_models.LoginRequest{TripID: "trip-1", Remember: true})
	require.NoError(t, err)

	// A different token reusing the same jti must not pass the stored
	// hash check.
	var jti string
	for lookup := range f.repo.sessions {
		jti = lookup
	}
	forged, err := utils.CreateToken("trip-1", "attacker", jti)
	require.NoError(t, err)
	require.NotEqual(t, resp.Token, forged)

	_, err = f.service.Resume(context.Background(), forged)
	assert.ErrorIs(t, err, utils.ErrInvalidSession)
}

func TestLogoutClearsSessionsAndState(t *testing.T) {
	f := newSessionFixture(t)

	_, err := f.service.Login(context.Background(), request_models.LoginRequest{TripID: "trip-1", Remember: true})
	require.NoError(t, err)
	f.store.SetTitle("玩到一半")

	require.NoError(t, f.service.Logout(context.Background(), "trip-1"))

	assert.Empty(t, f.repo.sessions)
	assert.Equal(t, "韓國首爾・自由行", f.store.Meta().Title)
}

func TestSaveAPIKey(t *testing.T) {
	f := newSessionFixture(t)

	require.NoError(t, f.service.SaveAPIKey(context.Background(), "trip-1", "new-key"))
	assert.Equal(t, "new-key", f.repo.apiKeys["trip-1"])

	// Empty key clears the stored one.
	require.NoError(t, f.service.SaveAPIKey(context.Background(), "trip-1", ""))
	assert.Equal(t, "", f.repo.apiKeys["trip-1"])
}
