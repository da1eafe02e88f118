package tui

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/jask/teakit/widgets"
)

// runDoneMsg is posted through the mailbox after the last step, so it is
// handled only once every step request ahead of it has been applied.
type runDoneMsg struct {
	run int
	err error
}

// runSteps turns each radio on in order, reporting progress on status.
// It only posts requests; widget state changes in the update loop.
func runSteps(ctx context.Context, steps []*widgets.RadioStatus, status *widgets.StaticStatus, delay time.Duration) error {
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(1)
	for i, step := range steps {
		g.Go(func() error {
			if err := pause(ctx, delay); err != nil {
				return err
			}
			step.TurnOn()
			status.ChangeText(fmt.Sprintf("%d/%d %s", i+1, len(steps), step.Label()))
			return nil
		})
	}
	return g.Wait()
}

func pause(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
