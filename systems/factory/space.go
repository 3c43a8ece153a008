package factory

import (
	"github.com/automoto/swarmflag/archetypes"
	"github.com/automoto/swarmflag/components"
	"github.com/automoto/swarmflag/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// CreateSpace builds the contact space and registers every body's object in
// it. Call it after the player and the enemy pool exist.
func CreateSpace(w donburi.World, width, height, cellWidth, cellHeight int) *donburi.Entry {
	space := archetypes.Space.Spawn(w)
	spaceData := resolv.NewSpace(width, height, cellWidth, cellHeight)
	components.Space.Set(space, spaceData)

	if player, ok := tags.Player.First(w); ok {
		spaceData.Add(components.Object.Get(player).Object)
	}
	tags.Enemy.Each(w, func(e *donburi.Entry) {
		spaceData.Add(components.Object.Get(e).Object)
	})

	return space
}
