package fracray

import (
	"fmt"
	"strconv"
	"strings"
)

// Polynomial is a complex polynomial in coefficient form.
// Coeffs[0] multiplies the highest power of z.
type Polynomial struct {
	coeffs []Complex
}

// NewPolynomial copies coeffs into a new polynomial.
func NewPolynomial(coeffs ...Complex) (*Polynomial, error) {
	if len(coeffs) == 0 {
		return nil, fmt.Errorf("polynomial needs at least one coefficient: %w", ErrInvalidArgument)
	}
	c := make([]Complex, len(coeffs))
	copy(c, coeffs)
	return &Polynomial{coeffs: c}, nil
}

// Order returns the degree implied by the coefficient count.
func (p *Polynomial) Order() int { return len(p.coeffs) - 1 }

// Coeffs returns a copy of the coefficients.
func (p *Polynomial) Coeffs() []Complex {
	c := make([]Complex, len(p.coeffs))
	copy(c, p.coeffs)
	return c
}

// Multiply convolves the coefficient arrays of p and q.
func (p *Polynomial) Multiply(q *Polynomial) (*Polynomial, error) {
	if q == nil {
		return nil, fmt.Errorf("multiply: %w", ErrNilReference)
	}
	out := make([]Complex, p.Order()+q.Order()+1)
	for k, a := range p.coeffs {
		for j, b := range q.coeffs {
			out[k+j] = out[k+j].Add(a.Mul(b))
		}
	}
	return &Polynomial{coeffs: out}, nil
}

// Derive returns the first derivative. A constant has no derivative here.
func (p *Polynomial) Derive() (*Polynomial, error) {
	n := p.Order()
	if n == 0 {
		return nil, fmt.Errorf("cannot derive a constant polynomial: %w", ErrInvalidArgument)
	}
	out := make([]Complex, n)
	for i := 0; i < n; i++ {
		out[i] = p.coeffs[i].Mul(Complex{Real(n - i), 0})
	}
	return &Polynomial{coeffs: out}, nil
}

// Apply evaluates p at z with Horner's scheme.
func (p *Polynomial) Apply(z Complex) Complex {
	r := p.coeffs[0]
	for _, c := range p.coeffs[1:] {
		r = r.Mul(z).Add(c)
	}
	return r
}

// String renders non-zero terms as (c)*z^k+...+(c)*z+(c).
func (p *Polynomial) String() string {
	var b strings.Builder
	n := len(p.coeffs)
	for i, c := range p.coeffs {
		if c == Zero {
			continue
		}
		if b.Len() > 0 {
			b.WriteByte('+')
		}
		b.WriteString("(" + c.String() + ")")
		switch pow := n - 1 - i; {
		case pow > 1:
			b.WriteString("*z^" + strconv.Itoa(pow))
		case pow == 1:
			b.WriteString("*z")
		}
	}
	if b.Len() == 0 {
		return "0"
	}
	return b.String()
}
