package fracray

type rayRecips struct {
	invX, invY, invZ Real
	parX, parY, parZ bool // parallel flags (|D| < eps)
}

// rayAABB is a slab test. It reports whether the ray meets the box and the entry distance.
func rayAABB(O Vector3, minP, maxP Vector3, rr rayRecips) (bool, Real) {
	tmin, tmax := -1e300, 1e300

	slab := func(o, lo, hi, inv Real, par bool) bool {
		if par {
			return o >= lo && o <= hi
		}
		t1 := (lo - o) * inv
		t2 := (hi - o) * inv
		if t1 > t2 {
			t1, t2 = t2, t1
		}
		if t1 > tmin {
			tmin = t1
		}
		if t2 < tmax {
			tmax = t2
		}
		return true
	}
	if !slab(O.X, minP.X, maxP.X, rr.invX, rr.parX) ||
		!slab(O.Y, minP.Y, maxP.Y, rr.invY, rr.parY) ||
		!slab(O.Z, minP.Z, maxP.Z, rr.invZ, rr.parZ) {
		return false, 0
	}

	if tmax < 0 || tmin > tmax {
		return false, 0
	}
	return true, tmin
}
