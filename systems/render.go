package systems

import (
	"image/color"

	"github.com/automoto/swarmflag/assets"
	"github.com/automoto/swarmflag/components"
	cfg "github.com/automoto/swarmflag/config"
	"github.com/automoto/swarmflag/systems/factory"
	"github.com/automoto/swarmflag/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// NewDrawArena returns a renderer for the arena background: a grid and the
// playable bounds taken from the level file.
func NewDrawArena(layout *assets.ArenaLayout) ecs.Renderer {
	return func(ecs *ecs.ECS, screen *ebiten.Image) {
		b := layout.Bounds
		if layout.GridSpacing > 0 {
			for x := b.X; x <= b.X+b.W; x += float64(layout.GridSpacing) {
				vector.StrokeLine(screen, float32(x), float32(b.Y), float32(x), float32(b.Y+b.H), 1, cfg.Arena.GridColor, false)
			}
			for y := b.Y; y <= b.Y+b.H; y += float64(layout.GridSpacing) {
				vector.StrokeLine(screen, float32(b.X), float32(y), float32(b.X+b.W), float32(y), 1, cfg.Arena.GridColor, false)
			}
		}
		vector.StrokeRect(screen, float32(b.X), float32(b.Y), float32(b.W), float32(b.H), 2, cfg.Arena.BoundsColor, false)
	}
}

// DrawEnemies draws every visible enemy. Hidden slots are skipped.
func DrawEnemies(ecs *ecs.ECS, screen *ebiten.Image) {
	tags.Enemy.Each(ecs.World, func(e *donburi.Entry) {
		if !components.IsVisible(e) {
			return
		}
		drawBody(screen, e, cfg.Arena.EnemyColor)
	})
}

func DrawPlayer(ecs *ecs.ECS, screen *ebiten.Image) {
	player, ok := tags.Player.First(ecs.World)
	if !ok {
		return
	}
	c := cfg.Arena.PlayerColor
	if components.Player.Get(player).Contact {
		c = cfg.Arena.ContactColor
	}
	drawBody(screen, player, c)
}

func drawBody(screen *ebiten.Image, e *donburi.Entry, c color.RGBA) {
	pos := components.Position.Get(e)
	bounds := screen.Bounds()
	x, y := worldToScreen(pos.X, pos.Y, bounds.Dx(), bounds.Dy())
	half := factory.BodySize / 2
	vector.FillRect(screen, float32(x-half), float32(y-half), factory.BodySize, factory.BodySize, c, false)
}
