package fracray

import (
	"fmt"
	"math"
)

// Sphere is a solid sphere with a Phong material.
type Sphere struct {
	Center   Vector3
	Radius   Real
	Material Material

	// cached
	AABBMin Vector3
	AABBMax Vector3
}

func NewSphere(center Vector3, radius Real, material Material) (*Sphere, error) {
	if !isFinite(center.X) || !isFinite(center.Y) || !isFinite(center.Z) {
		return nil, fmt.Errorf("sphere center must be finite, got %+v: %w", center, ErrInvalidArgument)
	}
	if !(radius > 0) || !isFinite(radius) {
		return nil, fmt.Errorf("sphere radius must be > 0, got %g: %w", radius, ErrInvalidArgument)
	}
	if err := material.validate(); err != nil {
		return nil, err
	}
	ext := Vector3{radius, radius, radius}
	s := &Sphere{
		Center:   center,
		Radius:   radius,
		Material: material,
		AABBMin:  center.Sub(ext),
		AABBMax:  center.Add(ext),
	}
	Logger().Debug("created sphere", "center", center, "radius", radius)
	return s, nil
}

// intersectRaySphere returns the nearest intersection in front of the ray origin.
// Solves |O + tD - C|^2 = r^2 for unit D.
func intersectRaySphere(r Ray, s *Sphere) (hit objectHit, ok bool) {
	oc := r.Origin.Sub(s.Center)
	d := -r.Dir.Dot(oc)
	disc := d*d - oc.Dot(oc) + s.Radius*s.Radius
	if disc < 0 {
		return objectHit{}, false
	}
	sq := math.Sqrt(disc)
	t := d - sq
	inside := false
	if t <= epsDist {
		t = d + sq
		inside = true // origin was inside ⇒ first positive is the exit
	}
	if t <= epsDist {
		return objectHit{}, false
	}
	p := r.At(t)
	return objectHit{
		Point:    p,
		Distance: t,
		Normal:   p.Sub(s.Center).Norm(),
		Material: s.Material,
		Inside:   inside,
	}, true
}
