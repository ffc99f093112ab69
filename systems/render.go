package systems

import (
	"image/color"

	"github.com/automoto/metroidvania/components"
	cfg "github.com/automoto/metroidvania/config"
	"github.com/automoto/metroidvania/shared/gamemath"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

const eyeSize = 3

// DrawLevel clears the screen and draws every solid tile in view.
func DrawLevel(ecs *ecs.ECS, screen *ebiten.Image) {
	screen.Fill(cfg.Colors.Background)

	levelEntry, ok := components.Level.First(ecs.World)
	if !ok {
		return
	}
	levelData := components.Level.Get(levelEntry)
	if levelData.Grid == nil {
		return
	}

	width, height := screen.Bounds().Dx(), screen.Bounds().Dy()
	camX, camY := cameraOffset(ecs, width, height)

	for _, tile := range levelData.Grid.Solids() {
		x := tile.Min.X + camX
		y := tile.Min.Y + camY

		// Viewport culling
		if x+tile.Width() < 0 || x > float64(width) || y+tile.Height() < 0 || y > float64(height) {
			continue
		}
		vector.FillRect(screen, float32(x), float32(y), float32(tile.Width()), float32(tile.Height()), cfg.Colors.Tile, false)
	}
}

// DrawActor renders each player as a filled box, squashed around its feet and
// with an eye that bobs with the animation frame.
func DrawActor(ecs *ecs.ECS, screen *ebiten.Image) {
	width, height := screen.Bounds().Dx(), screen.Bounds().Dy()
	camX, camY := cameraOffset(ecs, width, height)

	components.Player.Each(ecs.World, func(e *donburi.Entry) {
		player := components.Player.Get(e)
		snapshot := player.Controller.Snapshot()

		scaleY := 1.0
		if e.HasComponent(components.SquashStretch) {
			if ss := components.SquashStretch.Get(e); ss.ScaleY > 0 {
				scaleY = ss.ScaleY
			}
		}
		frame := 0
		if e.HasComponent(components.Animation) {
			if anim := components.Animation.Get(e).CurrentAnimation; anim != nil {
				frame = anim.Frame()
			}
		}

		box := squash(snapshot.Bounds, scaleY)
		x := float32(box.Min.X + camX)
		y := float32(box.Min.Y + camY)
		w := float32(box.Width())
		h := float32(box.Height())
		vector.FillRect(screen, x, y, w, h, cfg.Colors.Actor, false)

		eyeX := x + w - 2*eyeSize
		if player.Facing < 0 {
			eyeX = x + eyeSize
		}
		eyeY := y + eyeSize + float32(frame%2)
		vector.FillRect(screen, eyeX, eyeY, eyeSize, eyeSize, color.White, false)
	})
}

// squash scales box vertically about its bottom edge, widening it to keep
// the area roughly constant.
func squash(box gamemath.AABB, scaleY float64) gamemath.AABB {
	if scaleY == 1 {
		return box
	}
	w := box.Width() * (2 - scaleY)
	h := box.Height() * scaleY
	cx := (box.Min.X + box.Max.X) / 2
	return gamemath.Rect(cx-w/2, box.Max.Y-h, w, h)
}
