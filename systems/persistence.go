package systems

import (
	"encoding/json"
	"log"

	cfg "github.com/automoto/swarmflag/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/quasilyte/gdata"
	"github.com/yohamta/donburi/ecs"
)

// SavedSettings represents the settings data stored on disk
type SavedSettings struct {
	Fullscreen bool   `json:"fullscreen"`
	LastFlag   string `json:"lastFlag"`
}

var gdataManager *gdata.Manager
var gdataInitialized bool

// current mirrors what is on disk so partial updates keep the other fields.
var current SavedSettings

// InitPersistence initializes the gdata manager for settings storage
func InitPersistence() error {
	m, err := gdata.Open(gdata.Config{
		AppName: "swarmflag",
	})
	if err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
		return err
	}
	gdataManager = m
	gdataInitialized = true
	return nil
}

// LoadSettings loads settings from disk
func LoadSettings() (*SavedSettings, error) {
	if !gdataInitialized || gdataManager == nil {
		return nil, nil
	}

	data, err := gdataManager.LoadItem("settings")
	if err != nil {
		log.Printf("Warning: Could not load settings: %v", err)
		return nil, nil
	}
	if len(data) == 0 {
		return nil, nil
	}

	var settings SavedSettings
	if err := json.Unmarshal(data, &settings); err != nil {
		log.Printf("Warning: Could not parse saved settings: %v", err)
		return nil, err
	}
	current = settings

	return &settings, nil
}

// SaveSettings saves settings to disk
func SaveSettings(s *SavedSettings) error {
	current = *s
	if !gdataInitialized || gdataManager == nil {
		return nil
	}

	data, err := json.Marshal(s)
	if err != nil {
		log.Printf("Warning: Could not serialize settings: %v", err)
		return err
	}

	if err := gdataManager.SaveItem("settings", data); err != nil {
		log.Printf("Warning: Could not save settings: %v", err)
		return err
	}
	return nil
}

// ApplySavedSettings restores the window mode from a previous run.
func ApplySavedSettings(saved *SavedSettings) {
	if saved == nil {
		return
	}
	ebiten.SetFullscreen(saved.Fullscreen)
}

// RecordFlag keeps the most recently revealed flag across runs.
func RecordFlag(flag string) {
	s := current
	s.LastFlag = flag
	_ = SaveSettings(&s)
}

// ToggleFullscreen flips fullscreen on the configured key and remembers
// the choice.
func ToggleFullscreen(ecs *ecs.ECS) {
	if !inpututil.IsKeyJustPressed(cfg.Input.FullscreenKey) {
		return
	}
	s := current
	s.Fullscreen = !ebiten.IsFullscreen()
	ebiten.SetFullscreen(s.Fullscreen)
	_ = SaveSettings(&s)
}
