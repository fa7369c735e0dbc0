package fracray

import (
	"log/slog"
	"sync/atomic"
)

// Category classifies per-pixel and per-light outcomes.
type Category uint8

const (
	Converged     Category = iota // newton: reached a root
	NoConvergence                 // newton: stopped away from every root
	Stalled                       // newton: zero derivative or non-finite step
	Hit                           // ray hit a sphere
	Miss                          // ray missed everything
	Lit                           // light reaches the shaded point
	Shadowed                      // light is blocked
	numCategories
)

var categoryNames = [numCategories]string{
	"converged", "no_convergence", "stalled", "hit", "miss", "lit", "shadowed",
}

func (c Category) String() string {
	if c >= numCategories {
		return "unknown"
	}
	return categoryNames[c]
}

// bandStats is owned by one band; it is merged into Stats once the band ends.
type bandStats [numCategories]int64

// Stats collects outcome counters for one render.
type Stats struct {
	counts [numCategories]atomic.Int64
}

func (s *Stats) merge(b *bandStats) {
	if s == nil {
		return
	}
	for c, n := range b {
		if n != 0 {
			s.counts[c].Add(n)
		}
	}
}

// Count returns the number of outcomes recorded for c.
func (s *Stats) Count(c Category) int64 {
	if s == nil || c >= numCategories {
		return 0
	}
	return s.counts[c].Load()
}

// LogValue lets a *Stats be passed directly as a slog attribute.
func (s *Stats) LogValue() slog.Value {
	attrs := make([]slog.Attr, 0, numCategories)
	for c := Category(0); c < numCategories; c++ {
		if n := s.Count(c); n != 0 {
			attrs = append(attrs, slog.Int64(c.String(), n))
		}
	}
	return slog.GroupValue(attrs...)
}
