package fracray

// reflect3 mirrors the incident direction I about the unit normal N.
func reflect3(I, N Vector3) Vector3 {
	return I.Sub(N.Mul(2 * I.Dot(N)))
}
