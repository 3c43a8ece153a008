package factory

import (
	"github.com/automoto/swarmflag/archetypes"
	"github.com/automoto/swarmflag/components"
	"github.com/automoto/swarmflag/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// CreateEnemyPool spawns the fixed enemy population. Every slot starts hidden
// until the server confirms it. The pool is never resized.
func CreateEnemyPool(w donburi.World, n int) []*donburi.Entry {
	pool := make([]*donburi.Entry, 0, n)
	for i := 0; i < n; i++ {
		pool = append(pool, createEnemy(w, i))
	}
	return pool
}

func createEnemy(w donburi.World, slot int) *donburi.Entry {
	enemy := archetypes.Enemy.Spawn(w)

	components.Enemy.SetValue(enemy, components.EnemyData{Slot: slot})
	components.Visibility.SetValue(enemy, components.Hidden)

	obj := resolv.NewObject(0, 0, BodySize, BodySize, tags.ResolvEnemy)
	obj.Data = enemy
	components.Object.SetValue(enemy, components.ObjectData{Object: obj})

	return enemy
}
