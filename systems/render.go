package systems

import (
	"math"

	"github.com/automoto/tilehop/assets"
	"github.com/automoto/tilehop/components"
	cfg "github.com/automoto/tilehop/config"
	"github.com/automoto/tilehop/shared/controller"
	"github.com/automoto/tilehop/shared/geom"
	"github.com/automoto/tilehop/shared/sim"
	"github.com/automoto/tilehop/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	drawOp = &ebiten.DrawImageOptions{}
)

// DrawLevel fills the sky and blits every non-empty cell the view touches.
func DrawLevel(ecs *ecs.ECS, screen *ebiten.Image) {
	screen.Fill(cfg.Sky)

	view, level, ok := viewAndLevel(ecs)
	if !ok {
		return
	}

	tile := float64(level.TileWidth)
	minX := int(math.Floor(view.X / tile))
	maxX := int(math.Floor((view.X + view.W) / tile))
	minY := int(math.Floor(view.Y / tile))
	maxY := int(math.Floor((view.Y + view.H) / tile))

	for cy := minY; cy <= maxY; cy++ {
		for cx := minX; cx <= maxX; cx++ {
			img := assets.GetSprite(level.GetTile(cx, cy))
			if img == nil {
				continue
			}
			x, y := toScreen(view, geom.MustBox(float64(cx)*tile, float64(cy)*tile, tile, tile))
			drawOp.GeoM.Reset()
			drawOp.GeoM.Translate(pixel(x), pixel(y))
			screen.DrawImage(img, drawOp)
		}
	}
}

// DrawPlayer renders each character's current animation frame, mirrored
// when it faces left.
func DrawPlayer(ecs *ecs.ECS, screen *ebiten.Image) {
	view, _, ok := viewAndLevel(ecs)
	if !ok {
		return
	}

	tags.Player.Each(ecs.World, func(entry *donburi.Entry) {
		char := components.Character.Get(entry)
		anim := components.Animation.Get(entry)
		img := assets.GetSprite(anim.Sprite())
		if img == nil {
			return
		}

		body := char.Controller.Body
		x, y := toScreen(view, sim.BodyBox(body))

		drawOp.GeoM.Reset()
		if body.Facing == controller.FacingLeft {
			drawOp.GeoM.Scale(-1, 1)
			drawOp.GeoM.Translate(float64(img.Bounds().Dx()), 0)
		}
		drawOp.GeoM.Translate(pixel(x), pixel(y))
		screen.DrawImage(img, drawOp)
	})
}
