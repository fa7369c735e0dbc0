package fracray

import (
	"math"
)

// objectHit is what shading needs to know about an intersection.
type objectHit struct {
	Point    Vector3
	Distance Real
	Normal   Vector3 // outward, unit
	Material Material
	Inside   bool
}

// nearestHit returns the closest positive hit among all scene spheres.
func nearestHit(scene *Scene, r Ray) (objectHit, bool) {
	best := objectHit{}
	okAny := false
	bestT := math.Inf(1)

	const eps = 1e-12
	parX := math.Abs(r.Dir.X) < eps
	parY := math.Abs(r.Dir.Y) < eps
	parZ := math.Abs(r.Dir.Z) < eps
	rr := rayRecips{parX: parX, parY: parY, parZ: parZ}
	if !parX {
		rr.invX = 1 / r.Dir.X
	}
	if !parY {
		rr.invY = 1 / r.Dir.Y
	}
	if !parZ {
		rr.invZ = 1 / r.Dir.Z
	}

	for _, s := range scene.Spheres {
		if ok, tNear := rayAABB(r.Origin, s.AABBMin, s.AABBMax, rr); !ok || tNear > bestT {
			continue
		}
		if hit, ok := intersectRaySphere(r, s); ok && hit.Distance < bestT {
			bestT, best, okAny = hit.Distance, hit, true
		}
	}
	return best, okAny
}
