package fracray

import (
	"errors"
	"math"
	"testing"
)

const tolerance = 1e-9

func near(a, b Real) bool { return math.Abs(a-b) <= tolerance*math.Max(1, math.Abs(b)) }

func nearC(a, b Complex) bool { return near(a.Re, b.Re) && near(a.Im, b.Im) }

func TestComplexArithmetic(t *testing.T) {
	a := Complex{1, 2}
	b := Complex{2, 7}

	if got := a.Add(b); got != (Complex{3, 9}) {
		t.Fatalf("Add mismatch: %+v", got)
	}
	if got := a.Sub(b); got != (Complex{-1, -5}) {
		t.Fatalf("Sub mismatch: %+v", got)
	}
	if got := a.Mul(b); got != (Complex{-12, 11}) {
		t.Fatalf("Mul mismatch: %+v", got)
	}
	if got := a.Negate(); got != (Complex{-1, -2}) {
		t.Fatalf("Negate mismatch: %+v", got)
	}
	q, err := a.Div(b)
	if err != nil {
		t.Fatal(err)
	}
	if !nearC(q, Complex{16.0 / 53, -3.0 / 53}) {
		t.Fatalf("Div mismatch: %+v", q)
	}
	if m := a.Module(); !near(m, math.Sqrt(5)) {
		t.Fatalf("Module mismatch: %.12g", m)
	}
}

func TestComplexRoundTrips(t *testing.T) {
	vals := []Complex{{1, 2}, {-3.5, 0.25}, {0, -1}, {1e-3, 4e3}, {-7, -7}}
	for _, a := range vals {
		for _, b := range vals {
			if got := a.Add(b).Sub(b); !nearC(got, a) {
				t.Fatalf("add/sub round trip %v %v -> %v", a, b, got)
			}
			q, err := a.Mul(b).Div(b)
			if err != nil {
				t.Fatal(err)
			}
			if !nearC(q, a) {
				t.Fatalf("mul/div round trip %v %v -> %v", a, b, q)
			}
		}
	}
	// divisors whose squared magnitude under- or overflows
	extreme := append(vals, Complex{1e-160, -2e-160}, Complex{3e150, 1e150}, Complex{-1e-200, 5e-201})
	for _, a := range extreme {
		for _, b := range extreme {
			q, err := a.Mul(b).Div(b)
			if err != nil {
				t.Fatalf("%v / %v: %v", a.Mul(b), b, err)
			}
			if !nearC(q, a) {
				t.Fatalf("mul/div round trip %v %v -> %v", a, b, q)
			}
		}
	}
}

func TestComplexDivideByZero(t *testing.T) {
	if _, err := One.Div(Zero); !errors.Is(err, ErrDivisionByZero) {
		t.Fatalf("expected ErrDivisionByZero, got %v", err)
	}
	// Tiny but non-zero denominators are allowed.
	q, err := One.Div(Complex{1e-300, 0})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !nearC(q, Complex{1e300, 0}) {
		t.Fatalf("1/1e-300 = %v", q)
	}
	if q, err = (Complex{1e200, 0}).Div(Complex{1e200, 0}); err != nil || !nearC(q, One) {
		t.Fatalf("1e200/1e200 = %v, %v", q, err)
	}
	if q, err = (Complex{0, 3e-200}).Div(Complex{0, 1e-200}); err != nil || !nearC(q, Complex{3, 0}) {
		t.Fatalf("3e-200i/1e-200i = %v, %v", q, err)
	}
}

func TestComplexPower(t *testing.T) {
	a := Complex{0.8, -1.3}
	for n := 0; n <= 7; n++ {
		p, err := a.Power(n)
		if err != nil {
			t.Fatal(err)
		}
		if !near(p.Module(), math.Pow(a.Module(), Real(n))) {
			t.Fatalf("n=%d module %.12g", n, p.Module())
		}
		if n == 0 {
			continue
		}
		want := math.Mod(Real(n)*a.Arg(), 2*math.Pi)
		got := math.Mod(p.Arg(), 2*math.Pi)
		diff := math.Mod(math.Abs(want-got), 2*math.Pi)
		if diff > 1e-9 && 2*math.Pi-diff > 1e-9 {
			t.Fatalf("n=%d arg want %.12g got %.12g", n, want, got)
		}
	}
	if p, _ := Im.Power(2); !nearC(p, OneNeg) {
		t.Fatalf("i^2 = %v", p)
	}
	if _, err := a.Power(-1); !errors.Is(err, ErrInvalidArgument) {
		t.Fatalf("expected ErrInvalidArgument, got %v", err)
	}
}

func TestComplexRoots(t *testing.T) {
	rs, err := Complex{16, 0}.Roots(4)
	if err != nil {
		t.Fatal(err)
	}
	want := []Complex{{2, 0}, {0, 2}, {-2, 0}, {0, -2}}
	if len(rs) != 4 {
		t.Fatalf("len=%d", len(rs))
	}
	for i := range want {
		if !nearC(rs[i], want[i]) {
			t.Fatalf("root %d: %v want %v", i, rs[i], want[i])
		}
		p, _ := rs[i].Power(4)
		if !nearC(p, Complex{16, 0}) {
			t.Fatalf("root %d ^4 = %v", i, p)
		}
	}
	for _, n := range []int{0, -2} {
		if _, err := One.Roots(n); !errors.Is(err, ErrInvalidArgument) {
			t.Fatalf("n=%d expected ErrInvalidArgument, got %v", n, err)
		}
	}
}

func TestComplexString(t *testing.T) {
	cases := map[Complex]string{
		{1, 2}:    "1+2i",
		{1, -2}:   "1-2i",
		{0, 5}:    "5i",
		{-20, 0}:  "-20",
		{2.5, 0}:  "2.5",
		{0, -1.5}: "-1.5i",
		{0, 0}:    "0",
	}
	for c, want := range cases {
		if got := c.String(); got != want {
			t.Fatalf("%+v: got %q want %q", c, got, want)
		}
	}
}
