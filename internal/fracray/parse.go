package fracray

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseComplex parses roots written as "a", "ib", "a + ib", "a - ib", "i",
// "-i" or "a+bi". Whitespace is ignored.
func ParseComplex(s string) (Complex, error) {
	in := strings.Join(strings.Fields(s), "")
	if in == "" {
		return Complex{}, fmt.Errorf("empty complex number: %w", ErrInvalidArgument)
	}
	bad := func() (Complex, error) {
		return Complex{}, fmt.Errorf("cannot parse %q as a complex number: %w", s, ErrInvalidArgument)
	}
	if !strings.ContainsRune(in, 'i') {
		re, err := strconv.ParseFloat(in, 64)
		if err != nil {
			return bad()
		}
		return Complex{re, 0}, nil
	}

	// Split before the sign that starts the imaginary part, skipping exponent signs.
	split := 0
	for k := len(in) - 1; k > 0; k-- {
		if (in[k] == '+' || in[k] == '-') && in[k-1] != 'e' && in[k-1] != 'E' {
			split = k
			break
		}
	}
	var re Real
	if split > 0 {
		v, err := strconv.ParseFloat(in[:split], 64)
		if err != nil {
			return bad()
		}
		re = v
	}
	im, ok := parseImaginary(in[split:])
	if !ok {
		return bad()
	}
	return Complex{re, im}, nil
}

func parseImaginary(s string) (Real, bool) {
	sign := Real(1)
	switch {
	case strings.HasPrefix(s, "-"):
		sign, s = -1, s[1:]
	case strings.HasPrefix(s, "+"):
		s = s[1:]
	}
	var digits string
	switch {
	case strings.HasPrefix(s, "i"):
		digits = s[1:]
	case strings.HasSuffix(s, "i"):
		digits = s[:len(s)-1]
	default:
		return 0, false
	}
	if digits == "" {
		return sign, true
	}
	if strings.ContainsAny(digits, "+-i") && !strings.ContainsAny(digits, "eE") {
		return 0, false
	}
	v, err := strconv.ParseFloat(digits, 64)
	if err != nil {
		return 0, false
	}
	return sign * v, true
}
