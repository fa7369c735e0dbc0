package fracray

import "fmt"

// Light is a point light emitting Intensity per channel.
type Light struct {
	Position  Vector3
	Intensity RGB
}

// NewLight validates and constructs a point light.
func NewLight(position Vector3, intensity RGB) (*Light, error) {
	if !isFinite(position.X) || !isFinite(position.Y) || !isFinite(position.Z) {
		return nil, fmt.Errorf("light position must be finite, got %+v: %w", position, ErrInvalidArgument)
	}
	if !intensity.finiteNonNegative() {
		return nil, fmt.Errorf("light intensity must be finite and >= 0, got %+v: %w", intensity, ErrInvalidArgument)
	}
	return &Light{Position: position, Intensity: intensity}, nil
}
