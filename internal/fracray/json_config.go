package fracray

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
)

const (
	ModeNewton  = "newton"
	ModeRayCast = "raycast"
)

type NewtonCfg struct {
	Roots      []string `json:"roots"`
	Domain     *Domain  `json:"domain,omitempty"`
	ZoomFrames int      `json:"zoomFrames,omitempty"`
	ZoomFactor Real     `json:"zoomFactor,omitempty"`
	GIFDelay   int      `json:"gifDelay,omitempty"`
}

type SphereCfg struct {
	Center Vector3 `json:"center"`
	Radius Real    `json:"radius"`
	Kd     RGB     `json:"kd"`
	Kr     RGB     `json:"kr"`
	Krn    Real    `json:"krn"`
}

type LightCfg struct {
	Position  Vector3 `json:"position"`
	Intensity RGB     `json:"intensity"`
}

type RayCastCfg struct {
	Eye        Vector3     `json:"eye"`
	View       Vector3     `json:"view"`
	Up         Vector3     `json:"up"`
	Horizontal Real        `json:"horizontal"`
	Vertical   Real        `json:"vertical"`
	ShadowEps  *Real       `json:"shadowEps,omitempty"` // nil means ShadowEpsilon
	Spheres    []SphereCfg `json:"spheres,omitempty"`
	Lights     []LightCfg  `json:"lights,omitempty"`
}

type Config struct {
	Mode           string      `json:"mode"`
	Width          int         `json:"width,omitempty"`
	Height         int         `json:"height,omitempty"`
	Workers        int         `json:"workers,omitempty"`
	Strategy       string      `json:"strategy,omitempty"`
	BandsPerWorker int         `json:"bandsPerWorker,omitempty"`
	BisectRows     int         `json:"bisectRows,omitempty"`
	TimeoutSec     Real        `json:"timeoutSec,omitempty"`
	Output         string      `json:"output,omitempty"`
	Newton         *NewtonCfg  `json:"newton,omitempty"`
	RayCast        *RayCastCfg `json:"raycast,omitempty"`
}

func (s SphereCfg) Build() (*Sphere, error) {
	return NewSphere(s.Center, s.Radius, Material{Kd: s.Kd, Kr: s.Kr, Krn: s.Krn})
}

func (l LightCfg) Build() (*Light, error) {
	return NewLight(l.Position, l.Intensity)
}

// Build parses the roots and constructs the Newton model.
func (n NewtonCfg) Build() (*NewtonModel, error) {
	roots := make([]Complex, 0, len(n.Roots))
	for i, s := range n.Roots {
		z, err := ParseComplex(s)
		if err != nil {
			return nil, fmt.Errorf("root %d: %w", i+1, err)
		}
		roots = append(roots, z)
	}
	return NewNewtonModel(roots...)
}

// Build constructs the view and the scene. With no spheres configured the
// demo scene is used; lights listed in the config replace its lights.
func (rc RayCastCfg) Build() (*Scene, *View, error) {
	v, err := NewView(rc.Eye, rc.View, rc.Up, rc.Horizontal, rc.Vertical)
	if err != nil {
		return nil, nil, err
	}
	if len(rc.Spheres) == 0 {
		scene := DefaultScene()
		if len(rc.Lights) > 0 {
			scene.Lights = nil
		}
		for i, lc := range rc.Lights {
			L, err := lc.Build()
			if err == nil {
				err = scene.AddLight(L)
			}
			if err != nil {
				return nil, nil, fmt.Errorf("light %d: %w", i+1, err)
			}
		}
		return scene, v, nil
	}
	scene := NewScene()
	for i, sc := range rc.Spheres {
		S, err := sc.Build()
		if err == nil {
			err = scene.AddSphere(S)
		}
		if err != nil {
			return nil, nil, fmt.Errorf("sphere %d: %w", i+1, err)
		}
	}
	for i, lc := range rc.Lights {
		L, err := lc.Build()
		if err == nil {
			err = scene.AddLight(L)
		}
		if err != nil {
			return nil, nil, fmt.Errorf("light %d: %w", i+1, err)
		}
	}
	return scene, v, nil
}

func loadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	// Defaults / validation
	cfg.Mode = strings.ToLower(strings.TrimSpace(cfg.Mode))
	if cfg.Mode == "" {
		switch {
		case cfg.RayCast != nil && cfg.Newton == nil:
			cfg.Mode = ModeRayCast
		default:
			cfg.Mode = ModeNewton
		}
	}
	if cfg.Width <= 0 {
		cfg.Width = Width
	}
	if cfg.Height <= 0 {
		cfg.Height = Height
	}
	if cfg.Width < 2 || cfg.Height < 2 {
		return nil, fmt.Errorf("image must be at least 2x2, got %dx%d: %w", cfg.Width, cfg.Height, ErrInvalidArgument)
	}
	if cfg.Workers < 0 {
		return nil, fmt.Errorf("workers must be >= 0, got %d: %w", cfg.Workers, ErrInvalidArgument)
	}
	if StrategyOverride != "" {
		cfg.Strategy = StrategyOverride
	}
	if _, err := ParseStrategy(cfg.Strategy); err != nil {
		return nil, err
	}
	if cfg.BandsPerWorker <= 0 {
		cfg.BandsPerWorker = BandsPerWorker
	}
	if cfg.BisectRows <= 0 {
		cfg.BisectRows = BisectRows
	}
	if cfg.TimeoutSec < 0 || !isFinite(cfg.TimeoutSec) {
		return nil, fmt.Errorf("timeoutSec must be >= 0, got %g: %w", cfg.TimeoutSec, ErrInvalidArgument)
	}
	if cfg.Output == "" {
		cfg.Output = Output
	}
	switch cfg.Mode {
	case ModeNewton:
		if cfg.Newton == nil {
			return nil, fmt.Errorf("mode %q needs a \"newton\" section: %w", cfg.Mode, ErrInvalidArgument)
		}
		n := cfg.Newton
		if n.Domain == nil {
			d := DefaultDomain
			n.Domain = &d
		}
		if err := n.Domain.Validate(); err != nil {
			return nil, err
		}
		if n.ZoomFrames <= 0 {
			n.ZoomFrames = 1
		}
		if n.ZoomFactor <= 0 {
			n.ZoomFactor = ZoomFactor
		}
		if n.ZoomFactor >= 1 && n.ZoomFrames > 1 {
			return nil, fmt.Errorf("zoomFactor must be < 1, got %g: %w", n.ZoomFactor, ErrInvalidArgument)
		}
		if n.GIFDelay <= 0 {
			n.GIFDelay = GIFDelay
		}
	case ModeRayCast:
		if cfg.RayCast == nil {
			return nil, fmt.Errorf("mode %q needs a \"raycast\" section: %w", cfg.Mode, ErrInvalidArgument)
		}
		rc := cfg.RayCast
		if rc.ShadowEps == nil {
			eps := Real(ShadowEpsilon)
			rc.ShadowEps = &eps
		}
		if *rc.ShadowEps < 0 || !isFinite(*rc.ShadowEps) {
			return nil, fmt.Errorf("shadowEps must be >= 0, got %g: %w", *rc.ShadowEps, ErrInvalidArgument)
		}
	default:
		return nil, fmt.Errorf("unknown mode %q: %w", cfg.Mode, ErrInvalidArgument)
	}
	DebugLog("Loaded config from %s: mode=%s size=(%d, %d), workers=%d, strategy=%q", path, cfg.Mode, cfg.Width, cfg.Height, cfg.Workers, cfg.Strategy)
	return &cfg, nil
}
