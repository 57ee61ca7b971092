package collision

import (
	"math"
	"math/rand"
	"testing"

	"github.com/automoto/tilehop/shared/geom"
)

func TestSweepNoContact(t *testing.T) {
	floor := Boxes{geom.MustBox(0, 0, 16, 16)}
	cases := []struct {
		name   string
		probe  geom.Box
		vx, vy float64
	}{
		{"at_rest_touching", geom.MustBox(4, 16, 4, 4), 0, 0},
		{"moving_away", geom.MustBox(4, 17, 4, 4), 0, 3},
		{"short_of_wall", geom.MustBox(-10, 2, 4, 4), 3, 0},
		{"nan_velocity", geom.MustBox(4, 20, 4, 4), math.NaN(), -10},
		{"inf_velocity", geom.MustBox(4, 20, 4, 4), 0, math.Inf(-1)},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := Sweep(c.probe, c.vx, c.vy, floor); got != NoContact {
				t.Fatalf("Sweep = %+v, want NoContact", got)
			}
		})
	}
}

func TestSweepHitsWithinFrame(t *testing.T) {
	cases := []struct {
		name     string
		probe    geom.Box
		vx, vy   float64
		obstacle geom.Box
		wantStep int
	}{
		{"falling_onto_floor", geom.MustBox(4, 19, 1, 4), 0, -5, geom.MustBox(0, 0, 16, 16), 3},
		{"walking_into_wall", geom.MustBox(10, 4, 3, 8), 2.8, 0, geom.MustBox(16, 0, 16, 16), 3},
		{"walking_left_into_wall", geom.MustBox(19, 4, 3, 8), -2.8, 0, geom.MustBox(0, 0, 16, 16), 3},
		{"fractional_velocity_rounds_up", geom.MustBox(0, 0, 1, 1), 0.3, 0, geom.MustBox(2, 0, 1, 1), 1},
		{"rising_into_ceiling", geom.MustBox(4, 0, 1, 10), 0, 4, geom.MustBox(0, 13, 16, 16), 3},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := Sweep(c.probe, c.vx, c.vy, Boxes{c.obstacle})
			if !got.Hit || got.Index != 0 || got.Step != c.wantStep {
				t.Fatalf("Sweep = %+v, want hit 0 at step %d", got, c.wantStep)
			}
		})
	}
}

func TestSweepDoesNotTunnel(t *testing.T) {
	// A thin wall far inside a single frame's travel.
	probe := geom.MustBox(0, 0, 0, 1)
	wall := Boxes{geom.MustBox(3, 0, 1, 1)}

	got := Sweep(probe, 50, 0, wall)
	if !got.Hit || got.Step != 3 {
		t.Fatalf("Sweep = %+v, want hit at step 3", got)
	}
}

func TestSweepDiagonalAdvancesEachAxisWithinBudget(t *testing.T) {
	probe := geom.MustBox(0, 0, 0, 0)
	cases := []struct {
		name     string
		point    geom.Box
		wantHit  bool
		wantStep int
	}{
		// x stops at 3 after step 3 while y keeps going to 6.
		{"end_point", geom.MustBox(3, 6, 0, 0), true, 6},
		{"x_spent_y_moving", geom.MustBox(3, 4, 0, 0), true, 4},
		{"past_x_budget", geom.MustBox(4, 4, 0, 0), false, 0},
		{"early_diagonal", geom.MustBox(2, 2, 0, 0), true, 2},
		{"off_path", geom.MustBox(1, 3, 0, 0), false, 0},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := Sweep(probe, 3, 6, Boxes{c.point})
			if got.Hit != c.wantHit || (c.wantHit && got.Step != c.wantStep) {
				t.Fatalf("Sweep = %+v, want hit=%v step=%d", got, c.wantHit, c.wantStep)
			}
		})
	}
}

func TestSweepReportsLowestIndexAtFirstStep(t *testing.T) {
	probe := geom.MustBox(0, 0, 1, 1)
	obstacles := Boxes{
		geom.MustBox(5, 0, 1, 1), // reached at step 4
		geom.MustBox(3, 0, 1, 1), // reached at step 2
		geom.MustBox(3, 0, 2, 1), // also step 2, higher index
	}
	got := Sweep(probe, 6, 0, obstacles)
	if !got.Hit || got.Index != 1 || got.Step != 2 {
		t.Fatalf("Sweep = %+v, want index 1 at step 2", got)
	}
}

func TestSweepWorldMatchesBoxes(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	tiles := gridTiles{}
	for x := 0; x < 24; x++ {
		for y := 0; y < 16; y++ {
			if rng.Intn(4) == 0 {
				tiles.set(x, y)
			}
		}
	}

	w := NewWorld(solid)
	win := Window{CellX: 2, CellY: 1, Width: 240, Height: 160, TileSize: 16, PixelX: 32, PixelY: 16}
	if err := w.Rebuild(tiles, win); err != nil {
		t.Fatalf("Rebuild: %v", err)
	}

	plain := make(Boxes, w.Len())
	for i := range plain {
		plain[i] = w.Box(i)
	}

	for n := 0; n < 500; n++ {
		probe := geom.MustBox(
			16+rng.Float64()*256,
			rng.Float64()*192,
			float64(rng.Intn(9)),
			float64(rng.Intn(11)),
		)
		vx := (rng.Float64() - 0.5) * 24
		vy := (rng.Float64() - 0.5) * 24

		want := Sweep(probe, vx, vy, plain)
		got := Sweep(probe, vx, vy, w)
		if got != want {
			t.Fatalf("probe %v v=(%v,%v): world %+v, boxes %+v", probe, vx, vy, got, want)
		}

		wantIdx, wantOK := plain.FirstIntersecting(probe)
		gotIdx, gotOK := w.FirstIntersecting(probe)
		if gotIdx != wantIdx || gotOK != wantOK {
			t.Fatalf("probe %v: world first %d,%v, boxes %d,%v", probe, gotIdx, gotOK, wantIdx, wantOK)
		}
	}
}
