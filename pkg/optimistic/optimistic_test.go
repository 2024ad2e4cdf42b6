package optimistic

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplySuccessKeepsLocalChange(t *testing.T) {
	c := NewCoordinator(nil)

	value := "before"
	c.Apply(context.Background(),
		func() { value = "after" },
		func(ctx context.Context) error { return nil },
		func() { value = "before" },
	)
	c.Wait()

	assert.Equal(t, "after", value)
}

func TestApplyFailureRollsBackAndNotifies(t *testing.T) {
	var mu sync.Mutex
	var notices []string
	c := NewCoordinator(func(msg string) {
		mu.Lock()
		defer mu.Unlock()
		notices = append(notices, msg)
	})

	value := "before"
	c.Apply(context.Background(),
		func() { value = "after" },
		func(ctx context.Context) error { return errors.New("remote down") },
		func() { value = "before" },
	)

	// Local change is visible immediately, before the remote settles.
	assert.Equal(t, "after", value)

	c.Wait()
	assert.Equal(t, "before", value)

	mu.Lock()
	defer mu.Unlock()
	require.Len(t, notices, 1)
	assert.Equal(t, "同步失敗，正在回復資料...", notices[0])
}

func TestApplySurvivesCallerCancellation(t *testing.T) {
	var mu sync.Mutex
	var notices []string
	c := NewCoordinator(func(msg string) {
		mu.Lock()
		defer mu.Unlock()
		notices = append(notices, msg)
	})

	// The caller's context dies right after Apply returns, the way a
	// request context does when its handler finishes.
	ctx, cancel := context.WithCancel(context.Background())

	started := make(chan struct{})
	value := "before"
	c.Apply(ctx,
		func() { value = "after" },
		func(remoteCtx context.Context) error {
			close(started)
			select {
			case <-remoteCtx.Done():
				return remoteCtx.Err()
			case <-time.After(50 * time.Millisecond):
				return nil
			}
		},
		func() { value = "before" },
	)
	<-started
	cancel()
	c.Wait()

	assert.Equal(t, "after", value)
	mu.Lock()
	defer mu.Unlock()
	assert.Empty(t, notices)
}

func TestApplyLocalRunsSynchronously(t *testing.T) {
	c := NewCoordinator(nil)

	done := make(chan struct{})
	applied := false
	c.Apply(context.Background(),
		func() { applied = true },
		func(ctx context.Context) error { <-done; return nil },
		func() {},
	)

	assert.True(t, applied)
	close(done)
	c.Wait()
}

func TestWaitDrainsMultipleApplies(t *testing.T) {
	c := NewCoordinator(func(string) {})

	var mu sync.Mutex
	count := 0
	for i := 0; i < 10; i++ {
		fail := i%2 == 0
		c.Apply(context.Background(),
			func() {},
			func(ctx context.Context) error {
				if fail {
					return errors.New("boom")
				}
				return nil
			},
			func() {
				mu.Lock()
				defer mu.Unlock()
				count++
			},
		)
	}
	c.Wait()

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, 5, count)
}
