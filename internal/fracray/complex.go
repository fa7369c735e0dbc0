package fracray

import (
	"fmt"
	"math"
	"strconv"
)

// Complex is an immutable complex number. Every operation returns a new value.
type Complex struct {
	Re, Im Real
}

var (
	Zero   = Complex{0, 0}
	One    = Complex{1, 0}
	OneNeg = Complex{-1, 0}
	Im     = Complex{0, 1}
	ImNeg  = Complex{0, -1}
)

func (a Complex) Add(b Complex) Complex { return Complex{a.Re + b.Re, a.Im + b.Im} }
func (a Complex) Sub(b Complex) Complex { return Complex{a.Re - b.Re, a.Im - b.Im} }
func (a Complex) Negate() Complex       { return Complex{-a.Re, -a.Im} }

func (a Complex) Mul(b Complex) Complex {
	return Complex{a.Re*b.Re - a.Im*b.Im, a.Im*b.Re + a.Re*b.Im}
}

// Div divides a by b. It fails only when b is exactly zero.
// Smith's scaling keeps tiny and huge divisors from underflowing or
// overflowing the intermediate terms.
func (a Complex) Div(b Complex) (Complex, error) {
	if b == Zero {
		return Complex{}, ErrDivisionByZero
	}
	if math.Abs(b.Re) >= math.Abs(b.Im) {
		r := b.Im / b.Re
		d := b.Re + b.Im*r
		return Complex{(a.Re + a.Im*r) / d, (a.Im - a.Re*r) / d}, nil
	}
	r := b.Re / b.Im
	d := b.Im + b.Re*r
	return Complex{(a.Re*r + a.Im) / d, (a.Im*r - a.Re) / d}, nil
}

// Module returns |a|.
func (a Complex) Module() Real { return math.Hypot(a.Re, a.Im) }

// Arg returns the angle of a in (-π, π].
func (a Complex) Arg() Real { return math.Atan2(a.Im, a.Re) }

// Power raises a to a non-negative integer power using the polar form.
func (a Complex) Power(n int) (Complex, error) {
	if n < 0 {
		return Complex{}, fmt.Errorf("power must be non-negative, got %d: %w", n, ErrInvalidArgument)
	}
	m := math.Pow(a.Module(), Real(n))
	ang := Real(n) * a.Arg()
	return Complex{m * math.Cos(ang), m * math.Sin(ang)}, nil
}

// Roots returns all n distinct n-th roots of a, starting from the principal one.
func (a Complex) Roots(n int) ([]Complex, error) {
	if n <= 0 {
		return nil, fmt.Errorf("root count must be positive, got %d: %w", n, ErrInvalidArgument)
	}
	m := math.Pow(a.Module(), 1/Real(n))
	arg := a.Arg()
	out := make([]Complex, 0, n)
	for k := 0; k < n; k++ {
		ang := (arg + 2*math.Pi*Real(k)) / Real(n)
		out = append(out, Complex{m * math.Cos(ang), m * math.Sin(ang)})
	}
	return out, nil
}

func (a Complex) isFinite() bool { return isFinite(a.Re) && isFinite(a.Im) }

func formatReal(x Real) string { return strconv.FormatFloat(x, 'g', -1, 64) }

// String renders a as "re", "imi" or "re+imi".
func (a Complex) String() string {
	if a == Zero {
		return "0"
	}
	if a.Re == 0 {
		return formatReal(a.Im) + "i"
	}
	if a.Im == 0 {
		return formatReal(a.Re)
	}
	sign := "+"
	if a.Im < 0 {
		sign = ""
	}
	return formatReal(a.Re) + sign + formatReal(a.Im) + "i"
}
