package systems

import (
	"fmt"

	"github.com/automoto/tilehop/components"
	cfg "github.com/automoto/tilehop/config"
	"github.com/automoto/tilehop/fonts"
	"github.com/automoto/tilehop/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

const (
	hudMargin     = 2
	hudLineHeight = 7
	hudWidth      = 96
)

// DrawHUD prints the player's kinematic state while the overlay is on.
func DrawHUD(ecs *ecs.ECS, screen *ebiten.Image) {
	debug := getDebug(ecs)
	if debug == nil || !debug.Overlay {
		return
	}
	lines := hudLines(ecs, debug)
	if len(lines) == 0 {
		return
	}

	vector.FillRect(screen,
		0, 0,
		float32(hudWidth), float32(hudMargin*2+hudLineHeight*len(lines)),
		cfg.HUDOverlay, false)

	face := fonts.HUDSmall.Get()
	for i, line := range lines {
		text.Draw(screen, line, face, hudMargin, hudMargin+hudLineHeight*(i+1)-1, cfg.White)
	}
}

func hudLines(ecs *ecs.ECS, debug *components.DebugData) []string {
	playerEntry, ok := tags.Player.First(ecs.World)
	if !ok {
		return nil
	}
	char := components.Character.Get(playerEntry)
	body := char.Controller.Body
	t := char.Controller.Tuning()

	lines := []string{
		fmt.Sprintf("pos %.1f,%.1f", body.X, body.Y),
		fmt.Sprintf("vel %.2f,%.2f", body.VX, body.VY),
		fmt.Sprintf("%s %s jump %d", char.Controller.State(), body.Facing, body.JumpCount),
		fmt.Sprintf("fall %.2f", t.FallGravity),
		fmt.Sprintf("input %s", getOrCreateInput(ecs).LastInputMethod),
	}
	if levelEntry, ok := components.Level.First(ecs.World); ok {
		lines = append(lines, "level "+components.Level.Get(levelEntry).LevelName)
	}
	if debug.Watcher != nil {
		lines = append(lines, fmt.Sprintf("reloads %d", debug.Reloads))
	}
	if debug.LastError != "" {
		lines = append(lines, "tuning error")
	}
	return lines
}
