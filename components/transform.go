package components

import "github.com/yohamta/donburi"

// PositionData is a world position. The world is y-up with the origin at the
// centre of the arena, matching the server's coordinates.
type PositionData struct {
	X, Y float64
}

var Position = donburi.NewComponentType[PositionData]()

// VelocityData is the per-physics-tick displacement the integrator applies.
type VelocityData struct {
	X, Y float64
}

var Velocity = donburi.NewComponentType[VelocityData]()
