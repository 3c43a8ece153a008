package factory

import (
	"github.com/automoto/swarmflag/archetypes"
	"github.com/automoto/swarmflag/components"
	"github.com/yohamta/donburi"
)

func CreateDeathOverlay(w donburi.World, text string) *donburi.Entry {
	overlay := archetypes.DeathOverlay.Spawn(w)
	components.Overlay.SetValue(overlay, components.OverlayData{Text: text})
	components.Visibility.SetValue(overlay, components.Hidden)
	return overlay
}

func CreateWinOverlay(w donburi.World, text string) *donburi.Entry {
	overlay := archetypes.WinOverlay.Spawn(w)
	components.Overlay.SetValue(overlay, components.OverlayData{Text: text})
	components.Visibility.SetValue(overlay, components.Hidden)
	return overlay
}
