package fracray

import "fmt"

// Scene is the immutable model of one ray-cast render.
// It is read concurrently by every band and must not change during a render.
type Scene struct {
	Spheres []*Sphere
	Lights  []*Light
}

func NewScene() *Scene {
	return &Scene{}
}

func (s *Scene) AddSphere(sp *Sphere) error {
	if sp == nil {
		return fmt.Errorf("sphere: %w", ErrNilReference)
	}
	s.Spheres = append(s.Spheres, sp)
	return nil
}

func (s *Scene) AddLight(l *Light) error {
	if l == nil {
		return fmt.Errorf("light: %w", ErrNilReference)
	}
	s.Lights = append(s.Lights, l)
	return nil
}

// validate rejects nil entries put straight into Spheres or Lights.
func (s *Scene) validate() error {
	for i, sp := range s.Spheres {
		if sp == nil {
			return fmt.Errorf("sphere %d: %w", i+1, ErrNilReference)
		}
	}
	for i, l := range s.Lights {
		if l == nil {
			return fmt.Errorf("light %d: %w", i+1, ErrNilReference)
		}
	}
	return nil
}

// DefaultScene returns the demo scene used when a config lists no spheres.
func DefaultScene() *Scene {
	s := NewScene()
	lights := []struct {
		pos Vector3
		rgb RGB
	}{
		{Vector3{10, 5, 5}, RGB{100, 100, 100}},
		{Vector3{10, -5, -5}, RGB{50, 50, 50}},
	}
	for _, l := range lights {
		// constants are valid
		L, _ := NewLight(l.pos, l.rgb)
		s.AddLight(L)
	}
	spheres := []struct {
		c   Vector3
		r   Real
		mat Material
	}{
		{Vector3{0, 0, 0}, 1.5, Material{Kd: RGB{1, 1, 1}, Kr: RGB{0.5, 0.5, 0.5}, Krn: 10}},
		{Vector3{-1, 4, 0}, 1, Material{Kd: RGB{1, 0.1, 0.1}, Kr: RGB{0.5, 0.5, 0.5}, Krn: 20}},
		{Vector3{-2, -3.5, 1}, 1.2, Material{Kd: RGB{0.1, 1, 0.1}, Kr: RGB{0.3, 0.3, 0.3}, Krn: 5}},
		{Vector3{-1, 1, -4}, 2, Material{Kd: RGB{0.1, 0.1, 1}, Kr: RGB{0.8, 0.8, 0.8}, Krn: 50}},
		{Vector3{-6, 0, 0}, 4, Material{Kd: RGB{0.8, 0.8, 0.2}, Kr: RGB{0.2, 0.2, 0.2}, Krn: 3}},
	}
	for _, sp := range spheres {
		S, _ := NewSphere(sp.c, sp.r, sp.mat)
		s.AddSphere(S)
	}
	return s
}
