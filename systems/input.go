package systems

import (
	cfg "github.com/automoto/swarmflag/config"
	"github.com/automoto/swarmflag/shared/netconfig"
	"github.com/hajimehoshi/ebiten/v2"
)

// KeyboardControls reads the configured key bindings. Any bound key counts
// as the control being held.
type KeyboardControls struct {
	bindings map[netconfig.ActionID]cfg.InputBinding
}

func NewKeyboardControls() *KeyboardControls {
	return &KeyboardControls{bindings: cfg.Input.Bindings}
}

func (k *KeyboardControls) Pressed(action netconfig.ActionID) bool {
	return anyKeyPressed(k.bindings[action].Keys)
}

func anyKeyPressed(keys []ebiten.Key) bool {
	for _, k := range keys {
		if ebiten.IsKeyPressed(k) {
			return true
		}
	}
	return false
}
