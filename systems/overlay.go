package systems

import (
	"image/color"

	"github.com/automoto/swarmflag/components"
	cfg "github.com/automoto/swarmflag/config"
	"github.com/automoto/swarmflag/shared/netconfig"
	"github.com/automoto/swarmflag/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var overlayTags = []*donburi.ComponentType[donburi.Tag]{tags.DeathOverlay, tags.WinOverlay}

// UpdateOverlays fades an overlay's backdrop in while it is visible and
// resets it once hidden, so the next showing fades in again.
func UpdateOverlays(ecs *ecs.ECS) {
	dt := float32(1) / float32(netconfig.PhysicsHz)
	for _, tag := range overlayTags {
		entry, ok := tag.First(ecs.World)
		if !ok {
			continue
		}
		updateFade(entry, dt)
	}
}

func updateFade(entry *donburi.Entry, dt float32) {
	overlay := components.Overlay.Get(entry)
	if !components.IsVisible(entry) {
		overlay.Fade = nil
		overlay.Alpha = 0
		return
	}
	if overlay.Fade == nil {
		overlay.Fade = gween.New(0, cfg.Overlays.BackdropMax, cfg.Overlays.FadeDuration, ease.OutQuad)
	}
	overlay.Alpha, _ = overlay.Fade.Update(dt)
}

// DrawOverlayBackdrop dims the arena behind any visible overlay.
func DrawOverlayBackdrop(ecs *ecs.ECS, screen *ebiten.Image) {
	var alpha float32
	for _, tag := range overlayTags {
		entry, ok := tag.First(ecs.World)
		if !ok || !components.IsVisible(entry) {
			continue
		}
		if a := components.Overlay.Get(entry).Alpha; a > alpha {
			alpha = a
		}
	}
	if alpha <= 0 {
		return
	}

	bounds := screen.Bounds()
	vector.FillRect(screen,
		0, 0,
		float32(bounds.Dx()), float32(bounds.Dy()),
		color.RGBA{A: uint8(alpha * 255)}, false)
}
