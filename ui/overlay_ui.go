package ui

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/automoto/swarmflag/components"
	cfg "github.com/automoto/swarmflag/config"
	"github.com/automoto/swarmflag/tags"
	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/yohamta/donburi"
	"golang.org/x/image/font/gofont/goregular"
)

// OverlayUI renders the death and win messages centred over the arena.
// Each overlay has its own root; only visible ones are updated and drawn.
type OverlayUI struct {
	death *ebitenui.UI
	win   *ebitenui.UI

	winLabel *widget.Label

	deathVisible bool
	winVisible   bool

	titleFace text.Face
	hintFace  text.Face
}

func NewOverlayUI() (*OverlayUI, error) {
	o := &OverlayUI{}
	if err := o.loadFonts(); err != nil {
		return nil, err
	}
	o.death = o.buildDeath(cfg.Overlays.DeathText)
	o.win = o.buildWin(cfg.Overlays.WinText)
	return o, nil
}

func (o *OverlayUI) loadFonts() error {
	fontSource, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return fmt.Errorf("load overlay font: %w", err)
	}
	o.titleFace = &text.GoTextFace{Source: fontSource, Size: cfg.Overlays.TitleSize}
	o.hintFace = &text.GoTextFace{Source: fontSource, Size: cfg.Overlays.TitleSize / 2}
	return nil
}

// centred returns a root filling the screen and the column centred in it.
func centred() (*widget.Container, *widget.Container) {
	root := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)
	column := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Spacing(8),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionCenter,
				VerticalPosition:   widget.AnchorLayoutPositionCenter,
			}),
		),
	)
	root.AddChild(column)
	return root, column
}

func (o *OverlayUI) label(s string, face *text.Face) *widget.Label {
	return widget.NewLabel(
		widget.LabelOpts.Text(s, face, &widget.LabelColor{
			Idle: cfg.Overlays.TextColor,
		}),
	)
}

// buildDeath shows the first line as a title and the rest as a hint.
func (o *OverlayUI) buildDeath(msg string) *ebitenui.UI {
	root, column := centred()
	title, hint, _ := strings.Cut(msg, "\n")
	column.AddChild(o.label(title, &o.titleFace))
	if hint != "" {
		column.AddChild(o.label(hint, &o.hintFace))
	}
	return &ebitenui.UI{Container: root}
}

func (o *OverlayUI) buildWin(msg string) *ebitenui.UI {
	root, column := centred()
	o.winLabel = o.label(msg, &o.titleFace)
	column.AddChild(o.winLabel)
	return &ebitenui.UI{Container: root}
}

// Update copies overlay state out of the world.
func (o *OverlayUI) Update(w donburi.World) {
	o.deathVisible = false
	if entry, ok := tags.DeathOverlay.First(w); ok {
		o.deathVisible = components.IsVisible(entry)
	}

	o.winVisible = false
	if entry, ok := tags.WinOverlay.First(w); ok {
		o.winVisible = components.IsVisible(entry)
		o.winLabel.Label = components.Overlay.Get(entry).Text
	}

	if o.deathVisible {
		o.death.Update()
	}
	if o.winVisible {
		o.win.Update()
	}
}

func (o *OverlayUI) Draw(screen *ebiten.Image) {
	if o.deathVisible {
		o.death.Draw(screen)
	}
	if o.winVisible {
		o.win.Draw(screen)
	}
}
