package fracray

// Ray starts at Origin and travels along the unit vector Dir.
type Ray struct {
	Origin Vector3
	Dir    Vector3
}

// RayFromPoints builds the ray that starts at from and passes through to.
func RayFromPoints(from, to Vector3) Ray {
	return Ray{Origin: from, Dir: to.Sub(from).Norm()}
}

// At returns the point at distance t along the ray.
func (r Ray) At(t Real) Vector3 { return r.Origin.Add(r.Dir.Mul(t)) }
