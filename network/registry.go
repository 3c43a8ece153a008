package network

import (
	"errors"
	"fmt"
	"sort"

	"github.com/automoto/swarmflag/components"
	"github.com/automoto/swarmflag/tags"
	"github.com/yohamta/donburi"
)

// ErrProtocolViolation means the server and client disagree about the
// protocol or the enemy population. The session cannot continue.
var ErrProtocolViolation = errors.New("protocol violation")

// EnemyRegistry maps a wire ordinal to a local enemy entity. The wire carries
// no enemy ids, so the j-th record of every packet is the j-th enemy in
// spawn order for the whole session. The order is captured once and never
// rebuilt.
type EnemyRegistry struct {
	order []donburi.Entity
}

func NewEnemyRegistry() *EnemyRegistry {
	return &EnemyRegistry{}
}

// Ensure captures the enemy order the first time enemies exist in w. Later
// calls are no-ops.
func (r *EnemyRegistry) Ensure(w donburi.World) {
	if len(r.order) > 0 {
		return
	}

	var entries []*donburi.Entry
	tags.Enemy.Each(w, func(e *donburi.Entry) {
		entries = append(entries, e)
	})
	sort.SliceStable(entries, func(i, j int) bool {
		return components.Enemy.Get(entries[i]).Slot < components.Enemy.Get(entries[j]).Slot
	})

	r.order = make([]donburi.Entity, len(entries))
	for i, e := range entries {
		r.order[i] = e.Entity()
	}
}

// Len is the number of registered enemies.
func (r *EnemyRegistry) Len() int {
	return len(r.order)
}

// Resolve returns the enemy at ordinal j. An ordinal past the registered
// population is a protocol violation, never clamped or wrapped.
func (r *EnemyRegistry) Resolve(j int) (donburi.Entity, error) {
	if j < 0 || j >= len(r.order) {
		return donburi.Null, fmt.Errorf("%w: enemy ordinal %d, %d enemies registered", ErrProtocolViolation, j, len(r.order))
	}
	return r.order[j], nil
}
