package fracray

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
)

func TestSplitBands(t *testing.T) {
	got := splitBands(10, 3)
	want := [][2]int{{0, 3}, {3, 6}, {6, 10}}
	if len(got) != len(want) {
		t.Fatalf("bands = %v", got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("bands = %v, want %v", got, want)
		}
	}
	if got := splitBands(5, 40); len(got) != 5 || got[4] != [2]int{4, 5} {
		t.Fatalf("more bands than rows: %v", got)
	}
	if got := splitBands(0, 4); got != nil {
		t.Fatalf("empty height: %v", got)
	}
}

func TestSplitBandsCoverage(t *testing.T) {
	for h := 1; h < 70; h++ {
		for n := 1; n < 20; n++ {
			next := 0
			for _, b := range splitBands(h, n) {
				if b[0] != next || b[1] <= b[0] {
					t.Fatalf("h=%d n=%d: bad band %v", h, n, b)
				}
				next = b[1]
			}
			if next != h {
				t.Fatalf("h=%d n=%d: covered %d rows", h, n, next)
			}
		}
	}
}

// rowMarker writes y+1 into each row it owns and panics on badRow.
func rowMarker(rows []int, badRow int) rowKernel {
	return func(ctx context.Context, yMin, yMax int, st *bandStats) error {
		for y := yMin; y < yMax; y++ {
			if y == badRow {
				panic("boom")
			}
			rows[y] = y + 1
			st[Hit]++
		}
		return nil
	}
}

func checkIsolated(t *testing.T, err error, rows []int, badRow int) {
	t.Helper()
	var be *BandError
	if !errors.As(err, &be) {
		t.Fatalf("want a BandError, got %v", err)
	}
	if badRow < be.YMin || badRow >= be.YMax {
		t.Fatalf("failed band [%d,%d) does not contain row %d", be.YMin, be.YMax, badRow)
	}
	for y, v := range rows {
		if y >= be.YMin && y < be.YMax {
			continue
		}
		if v != y+1 {
			t.Fatalf("row %d outside the failed band was not computed", y)
		}
	}
}

func TestRunStaticIsolatesFailures(t *testing.T) {
	r := NewRenderer(WithWorkers(2))
	defer r.Close()
	rows := make([]int, 32)
	stats := &Stats{}
	err := r.runStatic(context.Background(), len(rows), rowMarker(rows, 5), stats)
	checkIsolated(t, err, rows, 5)
	// 16 bands of 2 rows; only row 4 of the failed band was written
	if got := stats.Count(Hit); got != 31 {
		t.Fatalf("hit count = %d", got)
	}
}

func TestRunBisectIsolatesFailures(t *testing.T) {
	rows := make([]int, 100)
	err := runBisect(context.Background(), 0, len(rows), BisectRows, rowMarker(rows, 40), &Stats{})
	checkIsolated(t, err, rows, 40)
}

func TestRunBisectCoversRange(t *testing.T) {
	for _, h := range []int{1, 15, 16, 17, 33, 257} {
		rows := make([]int, h)
		if err := runBisect(context.Background(), 0, h, BisectRows, rowMarker(rows, -1), &Stats{}); err != nil {
			t.Fatal(err)
		}
		for y, v := range rows {
			if v != y+1 {
				t.Fatalf("h=%d: row %d not computed", h, y)
			}
		}
	}
}

func TestRunBisectLeafSize(t *testing.T) {
	var tooTall atomic.Bool
	k := func(ctx context.Context, yMin, yMax int, st *bandStats) error {
		if yMax-yMin > BisectRows {
			tooTall.Store(true)
		}
		return nil
	}
	if err := runBisect(context.Background(), 0, 500, BisectRows, k, &Stats{}); err != nil {
		t.Fatal(err)
	}
	if tooTall.Load() {
		t.Fatal("a leaf was taller than the threshold")
	}
}
