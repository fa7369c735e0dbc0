package fracray

import "fmt"

// RGB stores one value per color channel.
type RGB struct {
	R, G, B Real
}

// ch returns the channel selected by ChR, ChG or ChB.
func (c RGB) ch(i int) Real {
	switch i {
	case ChR:
		return c.R
	case ChG:
		return c.G
	default:
		return c.B
	}
}

func (c RGB) finiteNonNegative() bool {
	return isFinite(c.R) && isFinite(c.G) && isFinite(c.B) && c.R >= 0 && c.G >= 0 && c.B >= 0
}

// Material holds the Phong coefficients of a surface.
type Material struct {
	Kd  RGB  // diffuse
	Kr  RGB  // specular
	Krn Real // specular exponent
}

func (m Material) validate() error {
	if !m.Kd.finiteNonNegative() || !m.Kr.finiteNonNegative() {
		return fmt.Errorf("material coefficients must be finite and >= 0, got kd=%+v kr=%+v: %w", m.Kd, m.Kr, ErrInvalidArgument)
	}
	if !isFinite(m.Krn) || m.Krn < 0 {
		return fmt.Errorf("specular exponent must be finite and >= 0, got %g: %w", m.Krn, ErrInvalidArgument)
	}
	return nil
}
