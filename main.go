package main

import (
	"log"

	"github.com/automoto/swarmflag/assets"
	"github.com/automoto/swarmflag/config"
	"github.com/automoto/swarmflag/fonts"
	"github.com/automoto/swarmflag/network"
	"github.com/automoto/swarmflag/scenes"
	"github.com/automoto/swarmflag/shared/netconfig"
	"github.com/automoto/swarmflag/systems"
	"github.com/automoto/swarmflag/ui"
	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/image/font/gofont/goregular"
)

type Scene interface {
	Update() error
	Draw(screen *ebiten.Image)
}

type Game struct {
	scene Scene
}

func NewGame(ch network.Channel) (*Game, error) {
	if err := fonts.LoadFont(fonts.Regular, goregular.TTF); err != nil {
		return nil, err
	}
	if err := fonts.LoadFontWithSize(fonts.Small, goregular.TTF, config.HUD.FontSize); err != nil {
		return nil, err
	}

	layout, err := assets.LoadArena()
	if err != nil {
		return nil, err
	}
	overlayUI, err := ui.NewOverlayUI()
	if err != nil {
		return nil, err
	}

	return &Game{scene: scenes.NewArenaScene(ch, layout, overlayUI)}, nil
}

func (g *Game) Update() error {
	return g.scene.Update()
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	return config.C.Width, config.C.Height
}

func main() {
	netCfg, err := config.LoadNet(".env")
	if err != nil {
		log.Fatalf("Failed to load network config: %v", err)
	}

	ch, err := network.Dial(netCfg)
	if err != nil {
		log.Fatalf("Failed to open channel: %v", err)
	}
	defer ch.Close()

	ebiten.SetWindowSize(config.C.Width, config.C.Height)
	ebiten.SetWindowTitle(config.C.Title)
	if config.C.Resizable {
		ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	} else {
		ebiten.SetWindowResizingMode(ebiten.WindowResizingModeDisabled)
	}
	ebiten.SetTPS(netconfig.PhysicsHz)

	if err := systems.InitPersistence(); err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
	}
	if saved, err := systems.LoadSettings(); err == nil && saved != nil {
		systems.ApplySavedSettings(saved)
	}

	game, err := NewGame(ch)
	if err != nil {
		log.Fatalf("Failed to start: %v", err)
	}

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
