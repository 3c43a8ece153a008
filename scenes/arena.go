package scenes

import (
	"image/color"
	"sync"

	"github.com/automoto/swarmflag/assets"
	cfg "github.com/automoto/swarmflag/config"
	"github.com/automoto/swarmflag/network"
	"github.com/automoto/swarmflag/shared/netconfig"
	"github.com/automoto/swarmflag/systems"
	"github.com/automoto/swarmflag/systems/factory"
	"github.com/automoto/swarmflag/ui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// ArenaScene is the single play scene. Each tick it applies at most one
// server datagram, samples and sends input, then advances the local
// integrator.
type ArenaScene struct {
	ecs       *ecs.ECS
	channel   network.Channel
	layout    *assets.ArenaLayout
	overlayUI *ui.OverlayUI

	applicator *network.StateApplicator
	sampler    *network.InputSampler

	once sync.Once
}

func NewArenaScene(ch network.Channel, layout *assets.ArenaLayout, overlayUI *ui.OverlayUI) *ArenaScene {
	return &ArenaScene{
		channel:   ch,
		layout:    layout,
		overlayUI: overlayUI,
	}
}

// Update returns an error when the session must end.
func (as *ArenaScene) Update() error {
	as.once.Do(as.configure)

	if err := as.applicator.Update(as.ecs.World); err != nil {
		return err
	}
	if err := as.sampler.Update(as.ecs.World); err != nil {
		return err
	}

	as.ecs.Update()
	as.overlayUI.Update(as.ecs.World)
	return nil
}

func (as *ArenaScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if as.ecs == nil {
		return
	}
	as.ecs.Draw(screen)
	as.overlayUI.Draw(screen)
}

func (as *ArenaScene) configure() {
	as.ecs = ecs.NewECS(donburi.NewWorld())
	w := as.ecs.World

	factory.CreatePlayer(w)
	factory.CreateEnemyPool(w, netconfig.EnemyPoolSize)
	factory.CreateDeathOverlay(w, cfg.Overlays.DeathText)
	factory.CreateWinOverlay(w, cfg.Overlays.WinText)
	factory.CreateSpace(w, cfg.C.Width, cfg.C.Height, cfg.Arena.CellSize, cfg.Arena.CellSize)

	as.applicator = network.NewStateApplicator(as.channel, network.NewEnemyRegistry())
	as.applicator.OnFlag(systems.RecordFlag)
	as.sampler = network.NewInputSampler(as.channel, systems.NewKeyboardControls(), netconfig.InputInterval())

	as.ecs.AddSystem(systems.UpdateVelocity)
	as.ecs.AddSystem(systems.UpdateContact)
	as.ecs.AddSystem(systems.UpdateOverlays)
	as.ecs.AddSystem(systems.ToggleFullscreen)

	as.ecs.AddRenderer(cfg.Default, systems.NewDrawArena(as.layout))
	as.ecs.AddRenderer(cfg.Default, systems.DrawEnemies)
	as.ecs.AddRenderer(cfg.Default, systems.DrawPlayer)
	as.ecs.AddRenderer(cfg.Default, systems.DrawHUD)
	as.ecs.AddRenderer(cfg.Overlay, systems.DrawOverlayBackdrop)
}
