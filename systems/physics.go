package systems

import (
	"github.com/automoto/swarmflag/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/filter"
)

var bodyQuery = donburi.NewQuery(filter.Contains(components.Position, components.Velocity))

// UpdateVelocity advances every body by its velocity once per physics tick.
// Received velocities are already damped for this rate.
func UpdateVelocity(ecs *ecs.ECS) {
	bodyQuery.Each(ecs.World, func(e *donburi.Entry) {
		pos := components.Position.Get(e)
		vel := components.Velocity.Get(e)
		pos.X += vel.X
		pos.Y += vel.Y
	})
}
