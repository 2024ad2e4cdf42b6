package state_fx

import (
	"go.uber.org/fx"

	"seoulplanner/internal/state"
	"seoulplanner/pkg/optimistic"
)

var Module = fx.Provide(
	provideStore, provideNoticeBoard, provideCoordinator)

func provideStore() *state.TripStore {
	return state.NewTripStore()
}

func provideNoticeBoard() *state.NoticeBoard {
	return state.NewNoticeBoard()
}

// Rollback notices land on the board so the next state read can show
// them to the user.
func provideCoordinator(board *state.NoticeBoard) *optimistic.Coordinator {
	return optimistic.NewCoordinator(board.Post)
}
