package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// OverlayData is a full-screen message (death or win).
type OverlayData struct {
	Text  string
	Alpha float32      // Backdrop opacity, driven by Fade
	Fade  *gween.Tween // Nil until the overlay is first shown
}

var Overlay = donburi.NewComponentType[OverlayData]()
