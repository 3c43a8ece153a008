package components

import "github.com/yohamta/donburi"

type EnemyData struct {
	Slot int // Spawn index in the fixed pool
}

var Enemy = donburi.NewComponentType[EnemyData]()
