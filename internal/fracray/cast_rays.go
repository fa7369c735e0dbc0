package fracray

import (
	"context"
	"math"
)

// traceRay shades one primary ray: ambient plus, for every light that sees
// the hit point, Phong diffuse and specular terms.
func traceRay(scene *Scene, r Ray, shadowEps Real, st *bandStats) [3]Real {
	rgb := [3]Real{Ambient, Ambient, Ambient}
	hit, ok := nearestHit(scene, r)
	if !ok {
		st[Miss]++
		return rgb
	}
	st[Hit]++
	for _, L := range scene.Lights {
		if !visible(scene, L, hit.Point, shadowEps) {
			st[Shadowed]++
			continue
		}
		st[Lit]++
		addLight(&rgb, L, hit, r.Origin)
	}
	return rgb
}

// visible casts a shadow ray from the light towards p. The light sees p when
// the first thing the shadow ray meets is p itself, within eps.
func visible(scene *Scene, L *Light, p Vector3, eps Real) bool {
	sh, ok := nearestHit(scene, RayFromPoints(L.Position, p))
	if !ok {
		return false
	}
	return L.Position.Sub(sh.Point).Len()+eps >= L.Position.Sub(p).Len()
}

func addLight(rgb *[3]Real, L *Light, hit objectHit, eye Vector3) {
	n := hit.Normal
	l := L.Position.Sub(hit.Point).Norm()
	diffuse := math.Max(0, l.Dot(n))

	refl := reflect3(l.Negate(), n)
	v := eye.Sub(hit.Point).Norm()
	specular := refl.Dot(v)
	if specular > 0 {
		specular = math.Pow(specular, hit.Material.Krn)
	} else {
		specular = 0
	}

	m := hit.Material
	for c := ChR; c <= ChB; c++ {
		I := L.Intensity.ch(c)
		rgb[c] += I*m.Kd.ch(c)*diffuse + I*m.Kr.ch(c)*specular
	}
}

// castRows is the ray-cast row kernel. It writes only rows [yMin, yMax) of f.
func castRows(ctx context.Context, scene *Scene, v *View, shadowEps Real, f *RGBFrame, yMin, yMax int, st *bandStats) error {
	w, h := f.Width, f.Height
	for y := yMin; y < yMax; y++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		off := y * w
		for x := 0; x < w; x++ {
			c := traceRay(scene, v.RayThrough(x, y, w, h), shadowEps, st)
			f.R[off+x] = clampChannel(c[ChR])
			f.G[off+x] = clampChannel(c[ChG])
			f.B[off+x] = clampChannel(c[ChB])
		}
	}
	return nil
}
