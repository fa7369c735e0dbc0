package fracray

import (
	"context"
	"errors"

	"golang.org/x/sync/errgroup"
)

// runBisect computes [yMin,yMax) directly when it is at most threshold rows
// high, otherwise forks the lower half and computes the upper half itself.
// Errors of both halves are joined; one failing half never stops the other.
func runBisect(ctx context.Context, yMin, yMax, threshold int, k rowKernel, stats *Stats) error {
	if yMax-yMin <= threshold {
		return runBand(ctx, k, yMin, yMax, stats)
	}
	mid := yMin + (yMax-yMin)/2
	var g errgroup.Group
	g.Go(func() error {
		return runBisect(ctx, yMin, mid, threshold, k, stats)
	})
	upper := runBisect(ctx, mid, yMax, threshold, k, stats)
	return errors.Join(g.Wait(), upper)
}
