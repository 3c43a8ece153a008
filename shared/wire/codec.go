package wire

import (
	"encoding/binary"
	"errors"
	"fmt"
	"math"
	"unicode/utf8"

	"github.com/go-gl/mathgl/mgl32"
)

var (
	ErrEmptyPacket = errors.New("empty packet")
	ErrShortPacket = errors.New("packet too short")
	ErrUnknownTag  = errors.New("unrecognised tag")
	ErrInvalidFlag = errors.New("flag is not valid utf-8")
)

// EncodeInput builds the 10-byte input packet.
func EncodeInput(in InputPacket) []byte {
	b := make([]byte, 0, InputPacketSize)
	b = append(b, TagInput)
	b = appendVec2(b, in.Move)
	if in.Restart {
		b = append(b, 1)
	} else {
		b = append(b, 0)
	}
	return b
}

// DecodeInput is the server-side view of EncodeInput.
func DecodeInput(b []byte) (InputPacket, error) {
	if len(b) == 0 {
		return InputPacket{}, ErrEmptyPacket
	}
	if b[0] != TagInput {
		return InputPacket{}, fmt.Errorf("%w: %d", ErrUnknownTag, b[0])
	}
	if len(b) < InputPacketSize {
		return InputPacket{}, fmt.Errorf("%w: input packet has %d bytes, want %d", ErrShortPacket, len(b), InputPacketSize)
	}
	return InputPacket{
		Move:    readVec2(b[1:9]),
		Restart: b[9] != 0,
	}, nil
}

// EncodeWorldState builds a tag-1 server packet.
func EncodeWorldState(ws *WorldState) []byte {
	b := make([]byte, 0, WorldHeaderSize+EnemyRecordSize*len(ws.Enemies))
	b = append(b, TagWorldState)
	b = appendBody(b, ws.Player)
	if ws.Dead {
		b = append(b, 1)
	} else {
		b = append(b, 0)
	}
	for _, e := range ws.Enemies {
		b = appendBody(b, e)
	}
	return b
}

// EncodeFlag builds a tag-2 server packet.
func EncodeFlag(flag string) []byte {
	b := make([]byte, 0, 1+len(flag))
	b = append(b, TagFlag)
	return append(b, flag...)
}

// Decode dispatches a server datagram on its tag byte. The returned packet
// never aliases b, so the caller may reuse its receive buffer.
func Decode(b []byte) (Packet, error) {
	if len(b) == 0 {
		return nil, ErrEmptyPacket
	}

	switch b[0] {
	case TagWorldState:
		return decodeWorldState(b)
	case TagFlag:
		payload := b[1:]
		if !utf8.Valid(payload) {
			return nil, ErrInvalidFlag
		}
		return &FlagReveal{Flag: string(payload)}, nil
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownTag, b[0])
	}
}

func decodeWorldState(b []byte) (*WorldState, error) {
	if len(b) < WorldHeaderSize {
		return nil, fmt.Errorf("%w: world state has %d bytes, want at least %d", ErrShortPacket, len(b), WorldHeaderSize)
	}

	ws := &WorldState{
		Player: readBody(b[1:17]),
		Dead:   b[17] != 0,
	}

	// Trailing bytes that do not complete a record are ignored.
	count := (len(b) - WorldHeaderSize) / EnemyRecordSize
	if count > 0 {
		ws.Enemies = make([]Body, count)
	}
	for i := range ws.Enemies {
		off := WorldHeaderSize + i*EnemyRecordSize
		ws.Enemies[i] = readBody(b[off : off+EnemyRecordSize])
	}
	return ws, nil
}

func appendBody(b []byte, body Body) []byte {
	b = appendVec2(b, body.Pos)
	return appendVec2(b, body.Vel)
}

func appendVec2(b []byte, v mgl32.Vec2) []byte {
	b = binary.BigEndian.AppendUint32(b, math.Float32bits(v.X()))
	return binary.BigEndian.AppendUint32(b, math.Float32bits(v.Y()))
}

func readBody(b []byte) Body {
	return Body{
		Pos: readVec2(b[0:8]),
		Vel: readVec2(b[8:16]),
	}
}

func readVec2(b []byte) mgl32.Vec2 {
	return mgl32.Vec2{readFloat(b[0:4]), readFloat(b[4:8])}
}

func readFloat(b []byte) float32 {
	return math.Float32frombits(binary.BigEndian.Uint32(b))
}
