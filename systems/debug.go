package systems

import (
	"image/color"
	"log"
	"math"

	"github.com/automoto/tilehop/components"
	cfg "github.com/automoto/tilehop/config"
	"github.com/automoto/tilehop/shared/controller"
	"github.com/automoto/tilehop/shared/geom"
	"github.com/automoto/tilehop/shared/sim"
	"github.com/automoto/tilehop/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// getDebug returns the debug singleton, or nil if the scene has none.
func getDebug(ecs *ecs.ECS) *components.DebugData {
	entry, ok := components.Debug.First(ecs.World)
	if !ok {
		return nil
	}
	return components.Debug.Get(entry)
}

// UpdateDebug toggles the overlay and nudges the fall gravity of every
// character.
func UpdateDebug(ecs *ecs.ECS) {
	debug := getDebug(ecs)
	if debug == nil {
		return
	}
	input := getOrCreateInput(ecs)

	if GetAction(input, cfg.ActionDebugToggle).JustPressed {
		debug.Overlay = !debug.Overlay
	}

	delta := 0.0
	if GetAction(input, cfg.ActionFallGravityDown).JustPressed {
		delta -= cfg.Debug.FallGravityStep
	}
	if GetAction(input, cfg.ActionFallGravityUp).JustPressed {
		delta += cfg.Debug.FallGravityStep
	}
	if delta == 0 {
		return
	}

	tags.Player.Each(ecs.World, func(entry *donburi.Entry) {
		ctrl := components.Character.Get(entry).Controller
		t := ctrl.Tuning()
		t.FallGravity = AdjustFallGravity(t.FallGravity, delta)
		if err := ctrl.SetTuning(t); err != nil {
			log.Printf("fall gravity: %v", err)
			return
		}
		if cfg.Debug.LogFallGravity {
			log.Printf("fall gravity: %.2f", t.FallGravity)
		}
	})
}

// AdjustFallGravity applies delta and keeps the result at or above zero,
// rounded to hundredths so repeated steps do not drift.
func AdjustFallGravity(current, delta float64) float64 {
	v := math.Round((current+delta)*100) / 100
	return math.Max(v, 0)
}

// DrawDebug outlines the obstacle set, the player's body and probes, and the
// camera push zones.
func DrawDebug(ecs *ecs.ECS, screen *ebiten.Image) {
	debug := getDebug(ecs)
	if debug == nil || !debug.Overlay {
		return
	}
	view, _, ok := viewAndLevel(ecs)
	if !ok {
		return
	}

	if worldEntry, ok := components.CollisionWorld.First(ecs.World); ok {
		world := components.CollisionWorld.Get(worldEntry).World
		viewBox := view.Box()
		for _, obs := range world.Obstacles() {
			if !obs.Box.Intersects(viewBox) {
				continue
			}
			strokeBox(screen, view, obs.Box, cfg.Debug.OverlayTileColor)
		}
	}

	tags.Player.Each(ecs.World, func(entry *donburi.Entry) {
		char := components.Character.Get(entry)
		strokeBox(screen, view, sim.BodyBox(char.Controller.Body), cfg.Debug.OverlayBody)

		probes := char.Controller.Probes()
		for s, box := range probes.Sides {
			c := cfg.Debug.OverlayProbe
			if char.Resolution.Hit(controller.Side(s)) {
				c = cfg.Debug.OverlayContact
			}
			strokeBox(screen, view, box, c)
		}
		strokeBox(screen, view, probes.Ground, cfg.Debug.OverlayGround)
	})

	// Push zone boundaries, in screen space.
	c := cfg.Debug.OverlayCamera
	zx, zy := float32(view.ZoneX), float32(view.ZoneY)
	w, h := float32(view.W), float32(view.H)
	vector.StrokeLine(screen, zx, 0, zx, h, 1, c, false)
	vector.StrokeLine(screen, w-zx, 0, w-zx, h, 1, c, false)
	vector.StrokeLine(screen, 0, zy, w, zy, 1, c, false)
	vector.StrokeLine(screen, 0, h-zy, w, h-zy, 1, c, false)
}

func strokeBox(screen *ebiten.Image, view *sim.Camera, b geom.Box, c color.Color) {
	x, y := toScreen(view, b)
	x, y = pixel(x), pixel(y)
	w, h := float32(b.W()), float32(b.H())
	// Boxes this thin have no interior to outline.
	if w <= 2 || h <= 2 {
		vector.FillRect(screen, float32(x), float32(y), max(w, 1), max(h, 1), c, false)
		return
	}
	vector.StrokeRect(screen, float32(x)+0.5, float32(y)+0.5, w-1, h-1, 1, c, false)
}
