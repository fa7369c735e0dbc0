package fracray

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// rowKernel computes rows [yMin, yMax) into the band's own part of a frame.
type rowKernel func(ctx context.Context, yMin, yMax int, st *bandStats) error

// BandError reports the failure of one row band. Other bands are unaffected.
type BandError struct {
	YMin, YMax int
	Err        error
}

func (e *BandError) Error() string {
	return fmt.Sprintf("rows [%d,%d): %v", e.YMin, e.YMax, e.Err)
}

func (e *BandError) Unwrap() error { return e.Err }

// runBand executes one band, converting a panic into a BandError.
func runBand(ctx context.Context, k rowKernel, yMin, yMax int, stats *Stats) (err error) {
	var st bandStats
	start := time.Now()
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic: %v", r)
		}
		stats.merge(&st)
		if err != nil {
			err = &BandError{YMin: yMin, YMax: yMax, Err: err}
			Logger().Warn("band failed", "yMin", yMin, "yMax", yMax, "err", err)
			return
		}
		Logger().Debug("band done", "yMin", yMin, "yMax", yMax, "took", time.Since(start))
	}()
	return k(ctx, yMin, yMax, &st)
}

// splitBands cuts [0,height) into at most n equal bands; the last absorbs the remainder.
func splitBands(height, n int) [][2]int {
	if height <= 0 {
		return nil
	}
	n = max(1, min(n, height))
	per := height / n
	out := make([][2]int, n)
	for i := range n {
		out[i] = [2]int{i * per, (i + 1) * per}
	}
	out[n-1][1] = height
	return out
}

// runStatic dispatches fixed row bands to the renderer's pool and waits for all of them.
func (r *Renderer) runStatic(ctx context.Context, height int, k rowKernel, stats *Stats) error {
	bands := splitBands(height, r.bandsPerWorker*r.pool.Workers())
	errs := make([]error, len(bands))
	work := make([]func(), len(bands))
	for i, b := range bands {
		work[i] = func() { errs[i] = runBand(ctx, k, b[0], b[1], stats) }
	}
	if !r.pool.ExecuteAll(work) {
		return ErrClosed
	}
	return errors.Join(errs...)
}
