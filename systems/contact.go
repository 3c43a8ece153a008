package systems

import (
	"github.com/automoto/swarmflag/components"
	cfg "github.com/automoto/swarmflag/config"
	"github.com/automoto/swarmflag/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateContact mirrors bodies into the contact space and flags the player
// when it overlaps a visible enemy. The server decides deaths; this only
// drives the player's tint.
func UpdateContact(ecs *ecs.ECS) {
	player, ok := tags.Player.First(ecs.World)
	if !ok {
		return
	}

	syncObject(player)
	tags.Enemy.Each(ecs.World, func(e *donburi.Entry) {
		if components.IsVisible(e) {
			syncObject(e)
		}
	})

	playerData := components.Player.Get(player)
	playerData.Contact = false

	obj := components.Object.Get(player).Object
	if obj == nil || obj.Space == nil {
		return
	}
	check := obj.Check(0, 0, tags.ResolvEnemy)
	if check == nil {
		return
	}
	for _, other := range check.ObjectsByTags(tags.ResolvEnemy) {
		enemy, ok := other.Data.(*donburi.Entry)
		if !ok || !enemy.Valid() || !components.IsVisible(enemy) {
			continue
		}
		if overlaps(obj, other) {
			playerData.Contact = true
			return
		}
	}
}

// syncObject moves e's object to e's position, in space coordinates.
func syncObject(e *donburi.Entry) {
	obj := components.Object.Get(e).Object
	if obj == nil {
		return
	}
	pos := components.Position.Get(e)
	cx, cy := worldToScreen(pos.X, pos.Y, cfg.C.Width, cfg.C.Height)
	obj.X = cx - obj.W/2
	obj.Y = cy - obj.H/2
	obj.Update()
}

// overlaps is the exact test behind the space's cell-level broadphase.
func overlaps(a, b *resolv.Object) bool {
	return a.X < b.X+b.W && b.X < a.X+a.W &&
		a.Y < b.Y+b.H && b.Y < a.Y+a.H
}
