package systems

import (
	"fmt"

	"github.com/automoto/swarmflag/components"
	cfg "github.com/automoto/swarmflag/config"
	"github.com/automoto/swarmflag/fonts"
	"github.com/automoto/swarmflag/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

const hudMargin = 10

// DrawHUD prints the number of enemies the server currently reports.
func DrawHUD(ecs *ecs.ECS, screen *ebiten.Image) {
	if !cfg.HUD.Show {
		return
	}
	text.Draw(screen, hudStatus(ecs.World), fonts.Small.Get(), hudMargin, hudMargin+int(cfg.HUD.FontSize), cfg.HUD.TextColor)
}

func hudStatus(w donburi.World) string {
	visible := 0
	tags.Enemy.Each(w, func(e *donburi.Entry) {
		if components.IsVisible(e) {
			visible++
		}
	})
	return fmt.Sprintf("Online - Enemies: %d", visible)
}
