package config

import (
	"github.com/automoto/swarmflag/shared/netconfig"
	"github.com/hajimehoshi/ebiten/v2"
)

// InputBinding represents the keys bound to one control
type InputBinding struct {
	Keys []ebiten.Key
}

// InputConfig holds all input mappings
type InputConfig struct {
	Bindings map[netconfig.ActionID]InputBinding

	// Client-only toggles, never sent to the server
	FullscreenKey ebiten.Key
}

// Input is the global input configuration
var Input InputConfig

func init() {
	Input = InputConfig{
		Bindings: map[netconfig.ActionID]InputBinding{
			netconfig.ActionMoveLeft: {
				Keys: []ebiten.Key{ebiten.KeyLeft, ebiten.KeyA},
			},
			netconfig.ActionMoveRight: {
				Keys: []ebiten.Key{ebiten.KeyRight, ebiten.KeyD},
			},
			netconfig.ActionMoveUp: {
				Keys: []ebiten.Key{ebiten.KeyUp, ebiten.KeyW},
			},
			netconfig.ActionMoveDown: {
				Keys: []ebiten.Key{ebiten.KeyDown, ebiten.KeyS},
			},
			netconfig.ActionRestart: {
				Keys: []ebiten.Key{ebiten.KeyR},
			},
		},
		FullscreenKey: ebiten.KeyF11,
	}
}
