package factory

import (
	"github.com/automoto/swarmflag/archetypes"
	"github.com/automoto/swarmflag/components"
	"github.com/automoto/swarmflag/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// BodySize is the edge length of the player and enemy squares.
const BodySize = 30.0

func CreatePlayer(w donburi.World) *donburi.Entry {
	player := archetypes.Player.Spawn(w)

	components.Player.SetValue(player, components.PlayerData{Controlled: true})

	obj := resolv.NewObject(0, 0, BodySize, BodySize, tags.ResolvPlayer)
	obj.Data = player
	components.Object.SetValue(player, components.ObjectData{Object: obj})

	return player
}
