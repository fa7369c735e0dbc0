package fracray

import (
	"fmt"
	"math"
	"strings"
)

// RootedPolynomial is the product of (z - root) factors.
type RootedPolynomial struct {
	roots []Complex
}

// NewRootedPolynomial copies roots into a new rooted polynomial.
func NewRootedPolynomial(roots ...Complex) (*RootedPolynomial, error) {
	if len(roots) == 0 {
		return nil, fmt.Errorf("rooted polynomial needs at least one root: %w", ErrInvalidArgument)
	}
	r := make([]Complex, len(roots))
	copy(r, roots)
	return &RootedPolynomial{roots: r}, nil
}

// Roots returns a copy of the roots in declaration order.
func (p *RootedPolynomial) Roots() []Complex {
	r := make([]Complex, len(p.roots))
	copy(r, p.roots)
	return r
}

// Apply evaluates the product of (z - root) over all roots.
func (p *RootedPolynomial) Apply(z Complex) Complex {
	r := One
	for _, root := range p.roots {
		r = r.Mul(z.Sub(root))
	}
	return r
}

// ToPolynomial expands the linear factors into coefficient form.
func (p *RootedPolynomial) ToPolynomial() *Polynomial {
	poly := &Polynomial{coeffs: []Complex{One, p.roots[0].Negate()}}
	for _, root := range p.roots[1:] {
		// both operands are non-nil, Multiply cannot fail
		poly, _ = poly.Multiply(&Polynomial{coeffs: []Complex{One, root.Negate()}})
	}
	return poly
}

// ClosestRootIndex returns the index of the root nearest to z among those
// strictly closer than threshold, or -1. Ties keep the lowest index.
func (p *RootedPolynomial) ClosestRootIndex(z Complex, threshold Real) int {
	index := -1
	best := math.Inf(1)
	for i, root := range p.roots {
		d := z.Sub(root).Module()
		if d < threshold && d < best {
			best, index = d, i
		}
	}
	return index
}

func (p *RootedPolynomial) String() string {
	var b strings.Builder
	for _, root := range p.roots {
		b.WriteString("(z-(" + root.String() + "))")
	}
	return b.String()
}
