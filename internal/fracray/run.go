package fracray

import (
	"context"
	"strings"
	"time"
)

// Run loads the config at cfgPath, renders it and writes the output files.
func Run(cfgPath string) error {
	return RunContext(context.Background(), cfgPath)
}

// RunContext is Run with a caller-supplied context.
func RunContext(ctx context.Context, cfgPath string) error {
	cfg, err := loadConfig(cfgPath)
	if err != nil {
		return err
	}
	strategy, err := ParseStrategy(cfg.Strategy)
	if err != nil {
		return err
	}
	opts := []Option{
		WithWorkers(cfg.Workers),
		WithStrategy(strategy),
		WithBandsPerWorker(cfg.BandsPerWorker),
		WithBisectRows(cfg.BisectRows),
		WithTimeout(time.Duration(cfg.TimeoutSec * Real(time.Second))),
	}
	if cfg.RayCast != nil && cfg.RayCast.ShadowEps != nil {
		opts = append(opts, WithShadowEpsilon(*cfg.RayCast.ShadowEps))
	}
	r := NewRenderer(opts...)
	defer r.Close()
	DebugLog("Workers: %d, strategy: %s", r.Workers(), r.Strategy())

	start := time.Now()
	switch cfg.Mode {
	case ModeRayCast:
		err = runRayCast(ctx, r, cfg)
	default:
		err = runNewton(ctx, r, cfg)
	}
	DebugLog("Render time: %s", time.Since(start))
	return err
}

func runNewton(ctx context.Context, r *Renderer, cfg *Config) error {
	model, err := cfg.Newton.Build()
	if err != nil {
		return err
	}
	n := cfg.Newton
	if n.ZoomFrames > 1 {
		frames, err := r.RenderZoom(ctx, model, *n.Domain, cfg.Width, cfg.Height, n.ZoomFrames, n.ZoomFactor, 1)
		if err != nil {
			return err
		}
		return SaveAnimatedGIF(frames, gifPath(cfg.Output), n.GIFDelay)
	}
	f, err := r.RenderFractal(ctx, model, *n.Domain, cfg.Width, cfg.Height, 1)
	if err != nil {
		return err
	}
	if RAW {
		if err := f.SaveRaw(rawPath(cfg.Output)); err != nil {
			return err
		}
	}
	return SaveFractal(cfg.Output, f)
}

func runRayCast(ctx context.Context, r *Renderer, cfg *Config) error {
	scene, view, err := cfg.RayCast.Build()
	if err != nil {
		return err
	}
	f, err := r.RenderScene(ctx, scene, view, cfg.Width, cfg.Height, 1)
	if err != nil {
		return err
	}
	if RAW {
		if err := f.SaveRaw(rawPath(cfg.Output)); err != nil {
			return err
		}
	}
	return SaveImage(cfg.Output, f.Image())
}

func replaceExt(path, ext string) string {
	if i := strings.LastIndexByte(path, '.'); i > strings.LastIndexByte(path, '/') {
		return path[:i] + ext
	}
	return path + ext
}

func rawPath(path string) string { return replaceExt(path, ".raw") }

func gifPath(path string) string { return replaceExt(path, ".gif") }
