// Package netconfig defines the lightweight constants the arena server and this
// client have to agree on. It must have zero dependencies on ebiten or any
// graphics library so the sync core and its tests stay headless.
package netconfig

import "time"

// Endpoints. The server is built from the same values, so changing them here
// without changing the server breaks the session.
const (
	DefaultLocalAddr  = "0.0.0.0:1337"
	DefaultServerAddr = "192.9.161.240:1234"
)

const (
	// RecvBufferSize is the largest datagram the client reads in one go.
	// Anything this size or larger is treated as possibly truncated.
	RecvBufferSize = 2048

	// EnemyPoolSize is the fixed number of enemy slots spawned at startup.
	// The server never reports more enemies than this.
	EnemyPoolSize = 200

	InputHz   = 30
	PhysicsHz = 60

	// VelocityDamping halves received velocities: the server ticks at half
	// the rate the integrator consumes them.
	VelocityDamping = 0.5
)

// InputInterval is the time between two input packets.
func InputInterval() time.Duration {
	return time.Second / InputHz
}

// ActionID represents one of the discrete controls the client samples.
type ActionID int

const (
	ActionNone ActionID = iota
	ActionMoveLeft
	ActionMoveRight
	ActionMoveUp
	ActionMoveDown
	ActionRestart
	ActionCount // Must be last - used for array sizing
)

var actionNames = map[ActionID]string{
	ActionMoveLeft:  "left",
	ActionMoveRight: "right",
	ActionMoveUp:    "up",
	ActionMoveDown:  "down",
	ActionRestart:   "restart",
}

func (a ActionID) String() string {
	if name, ok := actionNames[a]; ok {
		return name
	}
	return "unknown"
}
