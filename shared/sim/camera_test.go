package sim

import (
	"math"
	"testing"

	"github.com/automoto/tilehop/shared/geom"
)

func TestCameraPushZones(t *testing.T) {
	cases := []struct {
		name   string
		startX float64
		box    geom.Box
		wantX  float64
	}{
		{"centre_stays", 100, geom.MustBox(200, 40, 16, 16), 100},
		{"right_zone_pushes", 0, geom.MustBox(140, 40, 16, 16), 28},
		{"left_zone_pushes", 100, geom.MustBox(150, 40, 16, 16), 86},
		{"clamped_at_map_start", 10, geom.MustBox(20, 40, 16, 16), 0},
		{"clamped_at_map_end", 400, geom.MustBox(590, 40, 16, 16), 408},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			cam := &Camera{X: c.startX, W: 192, H: 128, ZoneX: 64, ZoneY: 32, EaseFrames: 8,
				targetX: c.startX}
			for i := 0; i < 20; i++ {
				cam.Follow(c.box, 600, 128)
			}
			if math.Abs(cam.X-c.wantX) > 1e-3 {
				t.Fatalf("camera x = %v, want %v", cam.X, c.wantX)
			}
			if cam.Y != 0 {
				t.Fatalf("camera y = %v, want 0 for a map as tall as the view", cam.Y)
			}
		})
	}
}

func TestCameraEases(t *testing.T) {
	cam := &Camera{W: 192, H: 128, ZoneX: 64, ZoneY: 32, EaseFrames: 8}
	box := geom.MustBox(160, 40, 16, 16)

	cam.Follow(box, 600, 128)
	if cam.X <= 0 || cam.X >= 48 {
		t.Fatalf("first eased step = %v, want strictly between 0 and 48", cam.X)
	}
}

func TestCameraWindowCoversViewWithMargin(t *testing.T) {
	cam := &Camera{X: 20, Y: 0, W: 192, H: 128}
	win := cam.Window(16)

	if win.CellX != 0 || win.CellY != -1 || win.PixelX != 0 || win.PixelY != -16 {
		t.Fatalf("window = %+v", win)
	}
	right := win.PixelX + float64(win.Cols()*16)
	top := win.PixelY + float64(win.Rows()*16)
	if win.PixelX > cam.X-16 || right < cam.X+cam.W+16 || win.PixelY > cam.Y-16 || top < cam.Y+cam.H+16 {
		t.Fatalf("window [%v,%v]x[%v,%v] does not cover view plus a tile", win.PixelX, right, win.PixelY, top)
	}
}

func TestNewCameraCentersAndClamps(t *testing.T) {
	cam := NewCamera(192, 128, 64, 32, 8, geom.MustBox(300, 16, 16, 16), 960, 128)
	if cam.X != 300+8-96 || cam.Y != 0 {
		t.Fatalf("camera = (%v,%v)", cam.X, cam.Y)
	}
	cam = NewCamera(192, 128, 64, 32, 8, geom.MustBox(10, 16, 16, 16), 960, 128)
	if cam.X != 0 {
		t.Fatalf("camera x = %v, want clamped to 0", cam.X)
	}
}
