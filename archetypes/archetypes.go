package archetypes

import (
	"github.com/automoto/swarmflag/components"
	"github.com/automoto/swarmflag/tags"
	"github.com/yohamta/donburi"
)

var (
	Player = newArchetype(
		tags.Player,
		components.Player,
		components.Position,
		components.Velocity,
		components.Object,
	)
	Enemy = newArchetype(
		tags.Enemy,
		components.Enemy,
		components.Position,
		components.Velocity,
		components.Visibility,
		components.Object,
	)
	DeathOverlay = newArchetype(
		tags.DeathOverlay,
		components.Overlay,
		components.Visibility,
	)
	WinOverlay = newArchetype(
		tags.WinOverlay,
		components.Overlay,
		components.Visibility,
	)
	Space = newArchetype(
		components.Space,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

// Spawn creates the entity directly in the world. Nothing in the client is
// queried by render layer, so the ecs layer wrapper is not needed.
func (a *archetype) Spawn(w donburi.World, cs ...donburi.IComponentType) *donburi.Entry {
	return w.Entry(w.Create(append(a.components, cs...)...))
}
