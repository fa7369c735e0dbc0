package fracray

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/lukaszgryglicki/fracray/internal/parallel"
)

// ErrClosed is returned by renders issued after Renderer.Close.
var ErrClosed = errors.New("renderer closed")

// Strategy selects how rows are partitioned across workers.
type Strategy int

const (
	// StrategyBands splits the image into fixed bands run on the worker pool.
	StrategyBands Strategy = iota
	// StrategyBisect halves the row range recursively down to a row threshold.
	StrategyBisect
)

func (s Strategy) String() string {
	switch s {
	case StrategyBands:
		return "bands"
	case StrategyBisect:
		return "bisect"
	}
	return fmt.Sprintf("Strategy(%d)", int(s))
}

// ParseStrategy accepts "bands" (or "") and "bisect", case-insensitively.
func ParseStrategy(s string) (Strategy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "bands", "static":
		return StrategyBands, nil
	case "bisect", "recursive":
		return StrategyBisect, nil
	}
	return 0, fmt.Errorf("unknown strategy %q: %w", s, ErrInvalidArgument)
}

// IndexFrame is a fractal render: 0 means no convergence, k means root k-1.
type IndexFrame struct {
	RequestID     uint64
	Width, Height int
	Roots         int
	Data          []uint16
	Stats         *Stats
}

// RGBFrame is a ray-cast render, one byte per channel per pixel.
type RGBFrame struct {
	RequestID     uint64
	Width, Height int
	R, G, B       []uint8
	Stats         *Stats
}

// Renderer owns the worker pool and the scheduling settings.
// Create it once, share it between renders, and Close it when done.
type Renderer struct {
	pool           *parallel.WorkerPool
	workers        int
	strategy       Strategy
	bandsPerWorker int
	bisectRows     int
	shadowEps      Real
	timeout        time.Duration
}

type Option func(*Renderer)

// WithWorkers sets the pool size; n <= 0 means GOMAXPROCS.
func WithWorkers(n int) Option { return func(r *Renderer) { r.workers = n } }

func WithStrategy(s Strategy) Option { return func(r *Renderer) { r.strategy = s } }

func WithBandsPerWorker(n int) Option {
	return func(r *Renderer) {
		if n > 0 {
			r.bandsPerWorker = n
		}
	}
}

func WithBisectRows(n int) Option {
	return func(r *Renderer) {
		if n > 0 {
			r.bisectRows = n
		}
	}
}

// WithShadowEpsilon sets the distance tolerance of the shadow test.
func WithShadowEpsilon(eps Real) Option {
	return func(r *Renderer) {
		if eps >= 0 && isFinite(eps) {
			r.shadowEps = eps
		}
	}
}

// WithTimeout bounds the wall-clock time of each render; 0 disables it.
func WithTimeout(d time.Duration) Option { return func(r *Renderer) { r.timeout = d } }

func NewRenderer(opts ...Option) *Renderer {
	r := &Renderer{
		strategy:       StrategyBands,
		bandsPerWorker: BandsPerWorker,
		bisectRows:     BisectRows,
		shadowEps:      ShadowEpsilon,
	}
	for _, o := range opts {
		o(r)
	}
	r.pool = parallel.NewWorkerPool(r.workers)
	Logger().Debug("renderer started", "workers", r.pool.Workers(), "strategy", r.strategy)
	return r
}

// Close shuts the worker pool down. Renders started afterwards fail with ErrClosed.
func (r *Renderer) Close() { r.pool.Close() }

func (r *Renderer) Workers() int { return r.pool.Workers() }

func (r *Renderer) Strategy() Strategy { return r.strategy }

func validateSize(width, height int) error {
	if width < 2 || height < 2 {
		return fmt.Errorf("image must be at least 2x2, got %dx%d: %w", width, height, ErrInvalidArgument)
	}
	if width > math.MaxInt/height {
		return fmt.Errorf("image %dx%d has too many pixels: %w", width, height, ErrInvalidArgument)
	}
	return nil
}

func (r *Renderer) dispatch(ctx context.Context, height int, k rowKernel, stats *Stats) error {
	if !r.pool.IsRunning() {
		return ErrClosed
	}
	if r.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.timeout)
		defer cancel()
	}
	if r.strategy == StrategyBisect {
		return runBisect(ctx, 0, height, r.bisectRows, k, stats)
	}
	return r.runStatic(ctx, height, k, stats)
}

// RenderFractal renders the Newton fractal of model over domain d.
// Model and argument errors are returned before any work starts. When bands
// fail, the frame is still returned with their rows left at zero, together
// with the joined band errors.
func (r *Renderer) RenderFractal(ctx context.Context, model *NewtonModel, d Domain, width, height int, requestID uint64) (*IndexFrame, error) {
	if model == nil || model.Rooted == nil || model.Poly == nil || model.Deriv == nil {
		return nil, fmt.Errorf("newton model: %w", ErrNilReference)
	}
	if err := validateSize(width, height); err != nil {
		return nil, err
	}
	if err := d.Validate(); err != nil {
		return nil, err
	}
	f := &IndexFrame{
		RequestID: requestID,
		Width:     width,
		Height:    height,
		Roots:     len(model.Rooted.roots),
		Data:      make([]uint16, width*height),
		Stats:     &Stats{},
	}
	start := time.Now()
	Logger().Info("render fractal", "request", requestID, "width", width, "height", height, "domain", d)
	err := r.dispatch(ctx, height, func(ctx context.Context, yMin, yMax int, st *bandStats) error {
		return newtonRows(ctx, model, d, width, height, yMin, yMax, f.Data, st)
	}, f.Stats)
	Logger().Info("render fractal done", "request", requestID, "took", time.Since(start), "stats", f.Stats)
	if err != nil {
		return f, fmt.Errorf("render %d: %w", requestID, err)
	}
	return f, nil
}

// RenderScene ray casts scene as seen through v.
// Error semantics match RenderFractal.
func (r *Renderer) RenderScene(ctx context.Context, scene *Scene, v *View, width, height int, requestID uint64) (*RGBFrame, error) {
	if scene == nil {
		return nil, fmt.Errorf("scene: %w", ErrNilReference)
	}
	if err := scene.validate(); err != nil {
		return nil, err
	}
	if v == nil {
		return nil, fmt.Errorf("view: %w", ErrNilReference)
	}
	if err := validateSize(width, height); err != nil {
		return nil, err
	}
	n := width * height
	f := &RGBFrame{
		RequestID: requestID,
		Width:     width,
		Height:    height,
		R:         make([]uint8, n),
		G:         make([]uint8, n),
		B:         make([]uint8, n),
		Stats:     &Stats{},
	}
	start := time.Now()
	Logger().Info("render scene", "request", requestID, "width", width, "height", height,
		"spheres", len(scene.Spheres), "lights", len(scene.Lights))
	err := r.dispatch(ctx, height, func(ctx context.Context, yMin, yMax int, st *bandStats) error {
		return castRows(ctx, scene, v, r.shadowEps, f, yMin, yMax, st)
	}, f.Stats)
	Logger().Info("render scene done", "request", requestID, "took", time.Since(start), "stats", f.Stats)
	if err != nil {
		return f, fmt.Errorf("render %d: %w", requestID, err)
	}
	return f, nil
}
