package network

import (
	"errors"
	"fmt"
	"log"

	"github.com/automoto/swarmflag/components"
	"github.com/automoto/swarmflag/shared/netconfig"
	"github.com/automoto/swarmflag/shared/wire"
	"github.com/automoto/swarmflag/tags"
	"github.com/yohamta/donburi"
)

// WinTextFormat renders the revealed flag for the win overlay.
const WinTextFormat = "The flag is %s"

// StateApplicator consumes at most one datagram per tick and writes it into
// the world. Nothing is queued: a tick without a datagram keeps the previous
// state, and bursts beyond one per tick are left to the socket to drop.
type StateApplicator struct {
	channel  Channel
	registry *EnemyRegistry
	buf      [netconfig.RecvBufferSize]byte
	onFlag   func(flag string)
}

func NewStateApplicator(ch Channel, registry *EnemyRegistry) *StateApplicator {
	return &StateApplicator{
		channel:  ch,
		registry: registry,
	}
}

// OnFlag registers fn to be called with every revealed flag.
func (a *StateApplicator) OnFlag(fn func(flag string)) {
	a.onFlag = fn
}

// Update returns an error only when the session cannot continue.
func (a *StateApplicator) Update(w donburi.World) error {
	a.registry.Ensure(w)

	n, err := a.channel.ReceiveOne(a.buf[:])
	if errors.Is(err, ErrWouldBlock) {
		return nil
	}
	if err != nil {
		log.Printf("[applicator] receive failed: %v", err)
		return nil
	}

	pkt, err := wire.Decode(a.buf[:n])
	if err != nil {
		log.Printf("[applicator] warning: dropping %d byte datagram: %v", n, err)
		return nil
	}

	switch p := pkt.(type) {
	case *wire.WorldState:
		return a.applyWorldState(w, p)
	case *wire.FlagReveal:
		return a.applyFlag(w, p)
	}
	return nil
}

func (a *StateApplicator) applyWorldState(w donburi.World, ws *wire.WorldState) error {
	// Validate before touching anything so a bad packet leaves no partial state.
	if len(ws.Enemies) > a.registry.Len() {
		return fmt.Errorf("%w: packet carries %d enemy records, %d enemies registered",
			ErrProtocolViolation, len(ws.Enemies), a.registry.Len())
	}

	player, ok := tags.Player.First(w)
	if !ok {
		return errors.New("world has no player")
	}
	deathOverlay, ok := tags.DeathOverlay.First(w)
	if !ok {
		return errors.New("world has no death overlay")
	}

	applyBody(player, ws.Player)

	if ws.Dead {
		components.Visibility.SetValue(deathOverlay, components.Visible)
	} else {
		components.Visibility.SetValue(deathOverlay, components.Hidden)
	}

	// Enemies missing from the packet keep their last state and visibility.
	for j, body := range ws.Enemies {
		entity, err := a.registry.Resolve(j)
		if err != nil {
			return err
		}
		if !w.Valid(entity) {
			return fmt.Errorf("%w: enemy ordinal %d refers to a removed entity", ErrProtocolViolation, j)
		}
		enemy := w.Entry(entity)
		applyBody(enemy, body)
		components.Visibility.SetValue(enemy, components.Visible)
	}
	return nil
}

func (a *StateApplicator) applyFlag(w donburi.World, fr *wire.FlagReveal) error {
	overlay, ok := tags.WinOverlay.First(w)
	if !ok {
		return errors.New("world has no win overlay")
	}

	components.Overlay.Get(overlay).Text = fmt.Sprintf(WinTextFormat, fr.Flag)
	components.Visibility.SetValue(overlay, components.Visible)

	if a.onFlag != nil {
		a.onFlag(fr.Flag)
	}
	return nil
}

// applyBody overwrites position and stores the damped velocity.
func applyBody(e *donburi.Entry, body wire.Body) {
	components.Position.SetValue(e, components.PositionData{
		X: float64(body.Pos.X()),
		Y: float64(body.Pos.Y()),
	})
	components.Velocity.SetValue(e, components.VelocityData{
		X: float64(body.Vel.X()) * netconfig.VelocityDamping,
		Y: float64(body.Vel.Y()) * netconfig.VelocityDamping,
	})
}
