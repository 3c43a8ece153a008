package assets

import "testing"

func TestLoadArena(t *testing.T) {
	layout, err := LoadArena()
	if err != nil {
		t.Fatalf("LoadArena: %v", err)
	}
	if layout.Width != 640 || layout.Height != 480 {
		t.Fatalf("arena is %dx%d, want 640x480", layout.Width, layout.Height)
	}
	if layout.Bounds.W <= 0 || layout.Bounds.H <= 0 {
		t.Fatalf("bounds = %+v, want a non-empty rectangle", layout.Bounds)
	}
	if layout.GridSpacing != 64 {
		t.Fatalf("GridSpacing = %d, want 64", layout.GridSpacing)
	}
}

func TestLoadArenaMissingFile(t *testing.T) {
	if _, err := loadArena("levels/missing.tmx"); err == nil {
		t.Fatalf("loadArena accepted a missing file")
	}
}
