package fracray

import (
	"context"
	"testing"
)

func litScene(t *testing.T) *Scene {
	t.Helper()
	s := NewScene()
	s.AddSphere(mustSphere(t, Vector3{}, 1))
	L, err := NewLight(Vector3{20, 0, 0}, RGB{100, 100, 100})
	if err != nil {
		t.Fatal(err)
	}
	s.AddLight(L)
	return s
}

func TestTraceRayLitCenter(t *testing.T) {
	s := litScene(t)
	var st bandStats
	// kd*I + kr*I*1^krn on top of the ambient term
	got := traceRay(s, Ray{Origin: Vector3{10, 0, 0}, Dir: Vector3{-1, 0, 0}}, ShadowEpsilon, &st)
	for c := ChR; c <= ChB; c++ {
		if !near(got[c], 90) {
			t.Fatalf("channel %d = %v, want 90", c, got[c])
		}
	}
	if st[Hit] != 1 || st[Lit] != 1 {
		t.Fatalf("stats = %v", st)
	}
}

func TestTraceRayMissIsAmbient(t *testing.T) {
	s := litScene(t)
	var st bandStats
	got := traceRay(s, Ray{Origin: Vector3{10, 0, 0}, Dir: Vector3{0, 1, 0}}, ShadowEpsilon, &st)
	if got != [3]Real{Ambient, Ambient, Ambient} {
		t.Fatalf("miss = %v", got)
	}
	if st[Miss] != 1 {
		t.Fatalf("stats = %v", st)
	}
}

func TestTraceRayShadowed(t *testing.T) {
	s := litScene(t)
	// blocks the path from the light to the top of the first sphere
	s.AddSphere(mustSphere(t, Vector3{5, 0, 0}, 1))
	var st bandStats
	got := traceRay(s, Ray{Origin: Vector3{0, 0, 10}, Dir: Vector3{0, 0, -1}}, ShadowEpsilon, &st)
	if got != [3]Real{Ambient, Ambient, Ambient} {
		t.Fatalf("shadowed point = %v", got)
	}
	if st[Shadowed] != 1 || st[Lit] != 0 {
		t.Fatalf("stats = %v", st)
	}
}

func TestCastRows(t *testing.T) {
	s := litScene(t)
	v := testView(t)
	const w, h = 11, 11
	f := &RGBFrame{Width: w, Height: h, R: make([]uint8, w*h), G: make([]uint8, w*h), B: make([]uint8, w*h)}
	var st bandStats
	if err := castRows(context.Background(), s, v, ShadowEpsilon, f, 0, h, &st); err != nil {
		t.Fatal(err)
	}
	center := 5*w + 5
	if f.R[center] != 90 || f.G[center] != 90 || f.B[center] != 90 {
		t.Fatalf("center = %d,%d,%d", f.R[center], f.G[center], f.B[center])
	}
	if f.R[0] != Ambient || f.G[0] != Ambient || f.B[0] != Ambient {
		t.Fatalf("corner = %d,%d,%d", f.R[0], f.G[0], f.B[0])
	}
	if st[Hit]+st[Miss] != w*h {
		t.Fatalf("stats = %v", st)
	}
}

func TestCastRowsCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	f := &RGBFrame{Width: 2, Height: 2, R: make([]uint8, 4), G: make([]uint8, 4), B: make([]uint8, 4)}
	var st bandStats
	if err := castRows(ctx, litScene(t), testView(t), ShadowEpsilon, f, 0, 2, &st); err != context.Canceled {
		t.Fatalf("want context.Canceled, got %v", err)
	}
}
