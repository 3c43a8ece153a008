package assets

import (
	"embed"
	"fmt"

	"github.com/lafriks/go-tiled"
)

//go:embed all:levels
var assetFS embed.FS

const arenaPath = "levels/arena.tmx"

// ArenaLayout is the decorative frame drawn behind the bodies. It is in
// screen pixels, y-down, as authored in Tiled.
type ArenaLayout struct {
	Width, Height int
	Bounds        Rect
	GridSpacing   int // 0 disables the grid
}

type Rect struct {
	X, Y, W, H float64
}

// LoadArena parses the embedded arena map.
func LoadArena() (*ArenaLayout, error) {
	return loadArena(arenaPath)
}

func loadArena(path string) (*ArenaLayout, error) {
	levelMap, err := tiled.LoadFile(path, tiled.WithFileSystem(assetFS))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", path, err)
	}

	layout := &ArenaLayout{
		Width:  levelMap.Width * levelMap.TileWidth,
		Height: levelMap.Height * levelMap.TileHeight,
	}
	// Without a bounds object the whole map is the arena.
	layout.Bounds = Rect{W: float64(layout.Width), H: float64(layout.Height)}

	for _, og := range levelMap.ObjectGroups {
		if og.Name != "Arena" {
			continue
		}
		for _, o := range og.Objects {
			if o.Name != "bounds" {
				continue
			}
			layout.Bounds = Rect{X: o.X, Y: o.Y, W: o.Width, H: o.Height}
			layout.GridSpacing = o.Properties.GetInt("grid")
		}
	}

	return layout, nil
}
