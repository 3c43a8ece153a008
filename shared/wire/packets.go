// Package wire encodes and decodes the raw datagrams exchanged with the arena
// server. It has no state of its own.
//
// All multi-byte numbers are big-endian. Layouts:
//
//	client -> server
//	  input  [1][dx f32][dy f32][restart u8]                     10 bytes
//	server -> client
//	  world  [1][x f32][y f32][vx f32][vy f32][dead u8]{enemy}   18 + 16k bytes
//	  enemy  [x f32][y f32][vx f32][vy f32]                      16 bytes
//	  flag   [2][utf-8 text ...]
package wire

import "github.com/go-gl/mathgl/mgl32"

// Tags carried in the first byte of every datagram.
const (
	TagInput uint8 = 1

	TagWorldState uint8 = 1
	TagFlag       uint8 = 2
)

const (
	InputPacketSize = 10

	WorldHeaderSize = 18
	EnemyRecordSize = 16
)

// InputPacket is the client's control state for one input tick. Move is not
// normalised: each axis is the sum of its two opposing keys.
type InputPacket struct {
	Move    mgl32.Vec2
	Restart bool
}

// Body is a position/velocity pair as the server reports it.
type Body struct {
	Pos mgl32.Vec2
	Vel mgl32.Vec2
}

// Packet is a decoded server datagram: *WorldState or *FlagReveal.
type Packet interface {
	Tag() uint8
}

// WorldState is the authoritative state the server broadcasts every tick.
// Enemies are listed in the order both sides agreed on when the session
// started; the index into Enemies is the enemy's ordinal.
type WorldState struct {
	Player  Body
	Dead    bool
	Enemies []Body
}

func (*WorldState) Tag() uint8 { return TagWorldState }

// FlagReveal carries the flag text the server hands out on a win.
type FlagReveal struct {
	Flag string
}

func (*FlagReveal) Tag() uint8 { return TagFlag }
