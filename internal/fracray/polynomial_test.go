package fracray

import (
	"errors"
	"testing"
)

func mustPoly(t *testing.T, c ...Complex) *Polynomial {
	t.Helper()
	p, err := NewPolynomial(c...)
	if err != nil {
		t.Fatal(err)
	}
	return p
}

func TestPolynomialEmpty(t *testing.T) {
	if _, err := NewPolynomial(); !errors.Is(err, ErrInvalidArgument) {
		t.Fatalf("expected ErrInvalidArgument, got %v", err)
	}
}

func TestPolynomialCopiesInput(t *testing.T) {
	in := []Complex{{1, 0}, {2, 0}}
	p := mustPoly(t, in...)
	in[0] = Complex{9, 9}
	if p.Coeffs()[0] != (Complex{1, 0}) {
		t.Fatal("coefficients alias the caller's slice")
	}
	out := p.Coeffs()
	out[1] = Zero
	if p.Coeffs()[1] != (Complex{2, 0}) {
		t.Fatal("Coeffs leaks internal storage")
	}
}

func TestPolynomialOrder(t *testing.T) {
	p := mustPoly(t, Complex{5, 7}, Complex{7, 8}, Complex{7, 9})
	if p.Order() != 2 {
		t.Fatalf("order=%d", p.Order())
	}
}

func TestPolynomialDerive(t *testing.T) {
	if _, err := mustPoly(t, Complex{5, 7}).Derive(); !errors.Is(err, ErrInvalidArgument) {
		t.Fatalf("expected ErrInvalidArgument, got %v", err)
	}
	d, err := mustPoly(t, Complex{5, 7}, Complex{7, 4}).Derive()
	if err != nil {
		t.Fatal(err)
	}
	if d.String() != "(5+7i)" || d.Order() != 0 {
		t.Fatalf("derive linear: %s", d)
	}
	p := mustPoly(t, Complex{5, 7}, Complex{7, 4}, Complex{1, 0})
	d, err = p.Derive()
	if err != nil {
		t.Fatal(err)
	}
	if d.String() != "(10+14i)*z+(7+4i)" {
		t.Fatalf("derive quadratic: %s", d)
	}
	if d.Order() != p.Order()-1 {
		t.Fatalf("derivative order %d", d.Order())
	}
}

func TestPolynomialMultiply(t *testing.T) {
	a := mustPoly(t, Complex{1, 0}, Zero, Complex{0, 4})
	b := mustPoly(t, Complex{0, 5}, Complex{6, 0})
	ab, err := a.Multiply(b)
	if err != nil {
		t.Fatal(err)
	}
	if got := ab.String(); got != "(5i)*z^3+(6)*z^2+(-20)*z+(24i)" {
		t.Fatalf("multiply: %s", got)
	}
	ba, _ := b.Multiply(a)
	if ba.String() != ab.String() {
		t.Fatalf("multiply not commutative: %s vs %s", ab, ba)
	}

	c := mustPoly(t, Complex{2, 1}, Complex{1, 0})
	d := mustPoly(t, Complex{1, 0}, Complex{-1, 0})
	cd, _ := c.Multiply(d)
	if got := cd.String(); got != "(2+1i)*z^2+(-1-1i)*z+(-1)" {
		t.Fatalf("multiply: %s", got)
	}
	if _, err := c.Multiply(nil); !errors.Is(err, ErrNilReference) {
		t.Fatalf("expected ErrNilReference, got %v", err)
	}
}

func TestPolynomialApply(t *testing.T) {
	// 2z^2 - 3z + 1 at z = 1+i: 2(2i) - 3 - 3i + 1 = -2 + i
	p := mustPoly(t, Complex{2, 0}, Complex{-3, 0}, One)
	if got := p.Apply(Complex{1, 1}); !nearC(got, Complex{-2, 1}) {
		t.Fatalf("apply: %v", got)
	}
	if got := mustPoly(t, Complex{3, -1}).Apply(Complex{8, 8}); got != (Complex{3, -1}) {
		t.Fatalf("constant apply: %v", got)
	}
}

func TestPolynomialStringZero(t *testing.T) {
	if s := mustPoly(t, Zero, Zero).String(); s != "0" {
		t.Fatalf("zero polynomial: %q", s)
	}
}
