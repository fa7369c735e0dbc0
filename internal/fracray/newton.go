package fracray

import (
	"context"
	"fmt"
	"math"
)

// Domain is the rectangle of the complex plane mapped onto the pixel grid.
type Domain struct {
	ReMin Real `json:"reMin"`
	ReMax Real `json:"reMax"`
	ImMin Real `json:"imMin"`
	ImMax Real `json:"imMax"`
}

// DefaultDomain is the square [-2,2]x[-2,2].
var DefaultDomain = Domain{ReMin: -2, ReMax: 2, ImMin: -2, ImMax: 2}

func (d Domain) Validate() error {
	for _, v := range []Real{d.ReMin, d.ReMax, d.ImMin, d.ImMax} {
		if !isFinite(v) {
			return fmt.Errorf("domain bounds must be finite, got %+v: %w", d, ErrInvalidArgument)
		}
	}
	if !(d.ReMax > d.ReMin) || !(d.ImMax > d.ImMin) {
		return fmt.Errorf("domain needs reMax > reMin and imMax > imMin, got %+v: %w", d, ErrInvalidArgument)
	}
	return nil
}

// Zoom scales the domain around its center by f (f < 1 zooms in).
func (d Domain) Zoom(f Real) Domain {
	cr, ci := (d.ReMin+d.ReMax)/2, (d.ImMin+d.ImMax)/2
	hr, hi := (d.ReMax-d.ReMin)/2*f, (d.ImMax-d.ImMin)/2*f
	return Domain{ReMin: cr - hr, ReMax: cr + hr, ImMin: ci - hi, ImMax: ci + hi}
}

// NewtonModel holds everything the Newton kernel reads. It is immutable.
type NewtonModel struct {
	Rooted *RootedPolynomial
	Poly   *Polynomial
	Deriv  *Polynomial
}

// NewNewtonModel builds the polynomial with the given distinct roots and its derivative.
func NewNewtonModel(roots ...Complex) (*NewtonModel, error) {
	if len(roots) < 2 {
		return nil, fmt.Errorf("need at least two roots, got %d: %w", len(roots), ErrInvalidArgument)
	}
	if len(roots) >= math.MaxUint16 {
		return nil, fmt.Errorf("too many roots (%d): %w", len(roots), ErrInvalidArgument)
	}
	for i, r := range roots {
		if !r.isFinite() {
			return nil, fmt.Errorf("root %d is not finite (%v): %w", i+1, r, ErrInvalidArgument)
		}
		for j := range i {
			if roots[j] == r {
				return nil, fmt.Errorf("roots %d and %d are both %v: %w", j+1, i+1, r, ErrInvalidArgument)
			}
		}
	}
	rooted, err := NewRootedPolynomial(roots...)
	if err != nil {
		return nil, err
	}
	poly := rooted.ToPolynomial()
	deriv, err := poly.Derive()
	if err != nil {
		return nil, err
	}
	Logger().Debug("newton model", "rooted", rooted.String(), "poly", poly.String(), "deriv", deriv.String())
	return &NewtonModel{Rooted: rooted, Poly: poly, Deriv: deriv}, nil
}

// Solve iterates z - P(z)/P'(z) from z0 and returns the 1-based index of the
// root it settled on, or 0.
func (m *NewtonModel) Solve(z0 Complex) (uint16, Category) {
	z := z0
	for iter := 0; iter < MaxIterations; iter++ {
		q, err := m.Poly.Apply(z).Div(m.Deriv.Apply(z))
		if err != nil {
			return 0, Stalled
		}
		next := z.Sub(q)
		step := next.Sub(z).Module()
		z = next
		if !isFinite(step) {
			return 0, Stalled
		}
		if step <= ConvergenceThreshold {
			break
		}
	}
	i := m.Rooted.ClosestRootIndex(z, ConvergenceThreshold)
	if i < 0 {
		return 0, NoConvergence
	}
	return uint16(i + 1), Converged
}

// pixelToDomain maps pixel (x, y) to the plane. Row 0 is the top, i.e. ImMax.
func pixelToDomain(d Domain, x, y, width, height int) Complex {
	re := Real(x)*(d.ReMax-d.ReMin)/Real(width-1) + d.ReMin
	im := Real(height-1-y)*(d.ImMax-d.ImMin)/Real(height-1) + d.ImMin
	return Complex{re, im}
}

// newtonRows is the fractal row kernel. It writes only data[yMin*width : yMax*width].
func newtonRows(ctx context.Context, m *NewtonModel, d Domain, width, height, yMin, yMax int, data []uint16, st *bandStats) error {
	for y := yMin; y < yMax; y++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		row := data[y*width : (y+1)*width]
		for x := range row {
			idx, outcome := m.Solve(pixelToDomain(d, x, y, width, height))
			row[x] = idx
			st[outcome]++
		}
	}
	return nil
}
