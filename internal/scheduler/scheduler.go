// Package scheduler drives the recurring background work of the placement
// cell, currently the inbox intake poll.
package scheduler

import (
	"context"
	"log"
	"time"
)

type Task func(ctx context.Context) error

// Every runs task immediately and then on every interval tick until ctx is
// cancelled. Task failures are logged under name and the loop keeps going;
// a mailbox being briefly unreachable must not stop future polls.
func Every(ctx context.Context, interval time.Duration, name string, task Task) {
	t := time.NewTicker(interval)
	defer t.Stop()

	run := func() {
		if err := task(ctx); err != nil {
			log.Printf(`level=warn msg="task failed" task=%s err=%q`, name, err)
		}
	}

	run()

	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			run()
		}
	}
}
