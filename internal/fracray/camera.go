package fracray

import "fmt"

// View is the screen basis derived once per render from eye, view center and up.
type View struct {
	Eye        Vector3
	Center     Vector3
	Forward    Vector3
	Up         Vector3 // up projected orthogonal to Forward, unit
	Right      Vector3
	Corner     Vector3 // top-left corner of the screen
	Horizontal Real
	Vertical   Real
}

// NewView derives the screen basis. The screen is centered on view and spans
// horizontal x vertical units.
func NewView(eye, view, up Vector3, horizontal, vertical Real) (*View, error) {
	if !(horizontal > 0) || !(vertical > 0) || !isFinite(horizontal) || !isFinite(vertical) {
		return nil, fmt.Errorf("screen extents must be > 0, got %g x %g: %w", horizontal, vertical, ErrInvalidArgument)
	}
	for _, v := range []Vector3{eye, view, up} {
		if !isFinite(v.X) || !isFinite(v.Y) || !isFinite(v.Z) {
			return nil, fmt.Errorf("camera vectors must be finite: %w", ErrInvalidArgument)
		}
	}
	fwd := view.Sub(eye)
	if fwd.Len() == 0 {
		return nil, fmt.Errorf("eye and view coincide at %+v: %w", eye, ErrInvalidArgument)
	}
	fwd = fwd.Norm()
	u := up.Norm()
	u = u.Sub(fwd.Mul(u.Dot(fwd)))
	if u.Len() < 1e-12 {
		return nil, fmt.Errorf("up vector %+v is zero or parallel to the view direction: %w", up, ErrInvalidArgument)
	}
	u = u.Norm()
	right := fwd.Cross(u).Norm()
	corner := view.Sub(right.Mul(horizontal / 2)).Add(u.Mul(vertical / 2))
	return &View{
		Eye:        eye,
		Center:     view,
		Forward:    fwd,
		Up:         u,
		Right:      right,
		Corner:     corner,
		Horizontal: horizontal,
		Vertical:   vertical,
	}, nil
}

// RayThrough returns the ray from the eye through pixel (x, y).
func (v *View) RayThrough(x, y, width, height int) Ray {
	p := v.Corner.
		Add(v.Right.Mul(v.Horizontal).Mul(Real(x) / Real(width-1))).
		Sub(v.Up.Mul(Real(y) / Real(height-1)).Mul(v.Vertical))
	return RayFromPoints(v.Eye, p)
}
