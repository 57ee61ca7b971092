package sim

import (
	"errors"
	"math"
	"testing"

	"github.com/automoto/tilehop/shared/collision"
	"github.com/automoto/tilehop/shared/controller"
	"github.com/automoto/tilehop/shared/geom"
	"github.com/automoto/tilehop/shared/leveldata"
)

// flatLevel is a cells-wide, 8-row level with a solid bottom row, a pillar
// at pillarX (skipped when negative) and a spawn on the floor at x=32.
func flatLevel(cells, pillarX int) *leveldata.TileGrid {
	rows := make([][]int, 8)
	for r := range rows {
		rows[r] = make([]int, cells)
	}
	for x := 0; x < cells; x++ {
		rows[7][x] = 113
	}
	if pillarX >= 0 {
		rows[6][pillarX] = 113
		rows[5][pillarX] = 113
	}
	g := leveldata.NewTileGrid(16, rows)
	g.Name = "flat"
	g.SpawnPoints = []leveldata.SpawnPoint{{X: 32, Y: 16}}
	return g
}

func newSim(t *testing.T, level *leveldata.TileGrid) *Simulation {
	t.Helper()
	s, err := New(level, DefaultConfig())
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return s
}

func TestParseScript(t *testing.T) {
	cases := []struct {
		name   string
		script string
		want   []controller.Input
	}{
		{"empty", "", nil},
		{"idle", "*2", []controller.Input{{}, {}}},
		{"hold_right", "R*3", []controller.Input{{Right: true}, {Right: true}, {Right: true}}},
		{"jump_once", "rj*2", []controller.Input{{Right: true, JumpPressed: true}, {Right: true}}},
		{"sequence", "L, J ,R", []controller.Input{{Left: true}, {JumpPressed: true}, {Right: true}}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got, err := ParseScript(c.script)
			if err != nil {
				t.Fatalf("ParseScript: %v", err)
			}
			if len(got) != len(c.want) {
				t.Fatalf("got %d inputs, want %d: %+v", len(got), len(c.want), got)
			}
			for i := range got {
				if got[i] != c.want[i] {
					t.Fatalf("input %d = %+v, want %+v", i, got[i], c.want[i])
				}
			}
		})
	}

	for _, bad := range []string{"X", "R*", "R*0", "R*-2", "R*abc"} {
		if _, err := ParseScript(bad); !errors.Is(err, ErrBadScript) {
			t.Fatalf("ParseScript(%q) err = %v, want ErrBadScript", bad, err)
		}
	}
}

func TestNewRequiresSpawn(t *testing.T) {
	level := flatLevel(20, -1)
	level.SpawnPoints = nil
	if _, err := New(level, DefaultConfig()); !errors.Is(err, ErrNoSpawn) {
		t.Fatalf("err = %v, want ErrNoSpawn", err)
	}
}

func TestWalkScrollsCameraAndStaysOnFloor(t *testing.T) {
	s := newSim(t, flatLevel(60, -1))
	inputs, err := ParseScript("*5,R*200")
	if err != nil {
		t.Fatalf("ParseScript: %v", err)
	}

	frames := s.Run(inputs)
	for _, f := range frames {
		if f.Body.Y != 16 || f.State != controller.StateGrounded {
			t.Fatalf("frame %d left the floor: %v", f.Index, f)
		}
		if f.Obstacles == 0 {
			t.Fatalf("frame %d: empty collision window", f.Index)
		}
	}

	last := frames[len(frames)-1]
	if last.CameraX <= 0 || last.CameraX > s.Level.PixelWidth()-s.Camera.W {
		t.Fatalf("camera x = %v, want scrolled within the map", last.CameraX)
	}
	if !s.Camera.Box().Intersects(s.BodyBox()) {
		t.Fatalf("player %v outside view %v", s.BodyBox(), s.Camera.Box())
	}
}

func TestWalkIntoPillarStops(t *testing.T) {
	s := newSim(t, flatLevel(30, 10))
	inputs, _ := ParseScript("R*240")
	frames := s.Run(inputs)

	last := frames[len(frames)-1]
	if want := 160.0 - controller.RightWallInset; last.Body.X != want || last.Body.VX != 0 {
		t.Fatalf("body = %+v, want resting at x=%v", last.Body, want)
	}
}

func TestJumpReturnsToFloor(t *testing.T) {
	s := newSim(t, flatLevel(30, -1))
	inputs, _ := ParseScript("*3,J,*80")
	frames := s.Run(inputs)

	peak := 0.0
	for _, f := range frames {
		peak = math.Max(peak, f.Body.Y)
	}
	if peak < 16+28 || peak > 16+40 {
		t.Fatalf("jump peak = %v, want about 32px above the floor", peak)
	}
	if last := frames[len(frames)-1]; last.Body.Y != 16 || last.State != controller.StateGrounded {
		t.Fatalf("did not land: %v", last)
	}
}

func TestRunDeterministic(t *testing.T) {
	inputs, err := ParseScript("R*40,RJ,R*30,*10,L*50,LJ*20,*30,R*60")
	if err != nil {
		t.Fatalf("ParseScript: %v", err)
	}

	a := newSim(t, flatLevel(40, 12)).Run(inputs)
	b := newSim(t, flatLevel(40, 12)).Run(inputs)
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("frame %d differs:\n%v\n%v", i, a[i], b[i])
		}
	}
}

func TestStuck(t *testing.T) {
	// Floor along y=0..16 with a wall column on each side.
	world := collision.Boxes{
		geom.MustBox(0, 0, 96, 16),
		geom.MustBox(0, 16, 16, 32),
		geom.MustBox(80, 16, 16, 32),
	}
	cases := []struct {
		name string
		x, y float64
		want bool
	}{
		{"standing_on_floor", 40, 16, false},
		{"against_right_wall", 80 - controller.RightWallInset, 16, false},
		{"against_left_wall", controller.LeftWallInset, 16, false},
		{"inside_right_wall", 76, 16, true},
		{"inside_left_wall", 8, 16, true},
		{"sunk_in_floor", 40, 10, true},
		{"in_the_air", 40, 40, false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			p, err := controller.New(c.x, c.y, controller.DefaultTuning())
			if err != nil {
				t.Fatalf("controller.New: %v", err)
			}
			if got := Stuck(world, p.Probes()); got != c.want {
				t.Fatalf("Stuck at (%v,%v) = %v, want %v", c.x, c.y, got, c.want)
			}
		})
	}
}

func TestNewBesideWall(t *testing.T) {
	// Spawn resting against the pillar, where the body itself reaches into
	// the wall but no side probe does.
	level := flatLevel(20, 4)
	level.SpawnPoints = []leveldata.SpawnPoint{{X: 64 - controller.RightWallInset, Y: 16}}
	s := newSim(t, level)
	if Stuck(s.World, s.Player.Probes()) {
		t.Fatal("spawn against a wall reported as stuck")
	}
	if _, ok := collision.FirstIntersecting(s.World, s.BodyBox()); !ok {
		t.Fatal("body box should reach into the wall")
	}
}
