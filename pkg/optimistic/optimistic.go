// Package optimistic implements the apply-then-sync pattern: a local
// mutation takes effect immediately, the remote write runs in the
// background, and a failed write rolls the local state back.
package optimistic

import (
	"context"
	"log"
	"sync"
)

// NotifyFunc surfaces a user-visible notice when a sync fails.
type NotifyFunc func(message string)

type Coordinator struct {
	notify NotifyFunc
	wg     sync.WaitGroup
}

func NewCoordinator(notify NotifyFunc) *Coordinator {
	if notify == nil {
		notify = func(message string) { log.Println(message) }
	}
	return &Coordinator{notify: notify}
}

// Apply runs local synchronously so the caller sees the change with
// zero latency, then fires remote without blocking. If remote errors,
// rollback restores the prior value and the notice is surfaced. There
// is no retry and no serialization of racing mutations against the
// same field: last applied wins locally, last landed wins remotely.
func (c *Coordinator) Apply(ctx context.Context, local func(), remote func(context.Context) error, rollback func()) {
	// The remote write outlives the request that triggered it. Keep the
	// caller's values but detach from its cancellation, otherwise the
	// handler returning would abort the push and force a rollback.
	ctx = context.WithoutCancel(ctx)

	local()

	c.wg.Add(1)
	go func() {
		defer c.wg.Done()
		if err := remote(ctx); err != nil {
			rollback()
			log.Printf("Remote sync failed, rolled back: %v", err)
			c.notify("同步失敗，正在回復資料...")
		}
	}()
}

// Wait blocks until every in-flight remote write has settled. Used by
// tests and by shutdown; normal request handling never calls it.
func (c *Coordinator) Wait() {
	c.wg.Wait()
}
