package config

import (
	"image/color"

	"github.com/yohamta/donburi/ecs"
)

// Render layers
const (
	Default ecs.LayerID = iota
	Overlay
)

// Config holds general game configuration
type Config struct {
	Title     string
	Width     int
	Height    int
	Resizable bool
}

// ArenaConfig contains the presentation of the play field
type ArenaConfig struct {
	BackgroundColor color.RGBA
	BoundsColor     color.RGBA
	GridColor       color.RGBA
	PlayerColor     color.RGBA
	ContactColor    color.RGBA // Player tint while touching an enemy
	EnemyColor      color.RGBA

	// Contact space cell size in pixels
	CellSize int
}

// OverlayConfig contains the full-screen death and win messages
type OverlayConfig struct {
	DeathText    string // Lines separated by '\n'
	WinText      string // Shown until the server reveals a flag
	TextColor    color.RGBA
	BackdropMax  float32 // Backdrop opacity once faded in (0..1)
	FadeDuration float32 // Seconds
	TitleSize    float64
}

// HUDConfig contains the corner status text
type HUDConfig struct {
	Show      bool
	TextColor color.RGBA
	FontSize  float64
}

// DebugConfig contains debug/testing toggles
type DebugConfig struct {
	LogPackets bool // Log every decoded world state size
}

// Global configuration instances
var C *Config
var Arena ArenaConfig
var Overlays OverlayConfig
var HUD HUDConfig
var Debug DebugConfig

// Shared RGBA color constants
var (
	Black      = color.RGBA{R: 0, G: 0, B: 0, A: 255}
	White      = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Red        = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	Orange     = color.RGBA{R: 255, G: 140, B: 0, A: 255}
	LightGreen = color.RGBA{R: 100, G: 255, B: 100, A: 255}
	DarkGray   = color.RGBA{R: 40, G: 40, B: 40, A: 255}
	DimGray    = color.RGBA{R: 24, G: 24, B: 24, A: 255}
)

func init() {
	C = &Config{
		Title:     "VERY FUN GAME",
		Width:     640,
		Height:    480,
		Resizable: false,
	}

	Arena = ArenaConfig{
		BackgroundColor: Black,
		BoundsColor:     DarkGray,
		GridColor:       DimGray,
		PlayerColor:     White,
		ContactColor:    Orange,
		EnemyColor:      Red,
		CellSize:        32,
	}

	Overlays = OverlayConfig{
		DeathText:    "You died\nPress R to try again",
		WinText:      "The flag is CTF{}",
		TextColor:    White,
		BackdropMax:  0.6,
		FadeDuration: 0.4,
		TitleSize:    30,
	}

	HUD = HUDConfig{
		Show:      true,
		TextColor: LightGreen,
		FontSize:  10,
	}
}
