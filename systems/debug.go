package systems

import (
	"fmt"
	"image/color"

	"github.com/automoto/metroidvania/components"
	cfg "github.com/automoto/metroidvania/config"
	"github.com/automoto/metroidvania/fonts"
	"github.com/automoto/metroidvania/shared/gamemath"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

const hudMargin = 8

// DrawDebug outlines the actor's collision box and the broad-phase window it
// queries, and prints the controller state.
func DrawDebug(ecs *ecs.ECS, screen *ebiten.Image) {
	settings := GetOrCreateSettings(ecs)
	if !settings.Debug {
		return
	}

	width, height := screen.Bounds().Dx(), screen.Bounds().Dy()
	camX, camY := cameraOffset(ecs, width, height)

	components.Player.Each(ecs.World, func(e *donburi.Entry) {
		ctrl := components.Player.Get(e).Controller
		snapshot := ctrl.Snapshot()

		if window, ok := ctrl.Grid().Window(snapshot.Bounds); ok {
			drawOutline(screen, window, camX, camY, cfg.Colors.Debug.QueryWindow)
		}

		c := cfg.Colors.Debug.ActorBox
		if snapshot.Grounded {
			c = cfg.Colors.Debug.Grounded
		}
		drawOutline(screen, snapshot.Bounds, camX, camY, c)

		lines := []string{
			fmt.Sprintf("state %s", snapshot.State),
			fmt.Sprintf("pos %.1f, %.1f", snapshot.Position.X, snapshot.Position.Y),
			fmt.Sprintf("vel %.1f, %.1f", snapshot.Velocity.X, snapshot.Velocity.Y),
			fmt.Sprintf("grounded %t  air %.2fs", snapshot.Grounded, snapshot.JumpTimer),
			fmt.Sprintf("tps %.0f", ebiten.ActualTPS()),
		}
		face := fonts.HUD()
		lineHeight := face.Metrics().Height.Ceil()
		for i, line := range lines {
			text.Draw(screen, line, face, hudMargin, hudMargin+(i+1)*lineHeight, cfg.Colors.Debug.Text)
		}
	})
}

func drawOutline(screen *ebiten.Image, box gamemath.AABB, camX, camY float64, c color.Color) {
	x := float32(box.Min.X + camX)
	y := float32(box.Min.Y + camY)
	w := float32(box.Width())
	h := float32(box.Height())

	vector.FillRect(screen, x, y, w, 1, c, false)     // Top
	vector.FillRect(screen, x, y+h-1, w, 1, c, false) // Bottom
	vector.FillRect(screen, x, y, 1, h, c, false)     // Left
	vector.FillRect(screen, x+w-1, y, 1, h, c, false) // Right
}
