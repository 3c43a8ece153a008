package network

import (
	"fmt"
	"time"

	"github.com/automoto/swarmflag/components"
	"github.com/automoto/swarmflag/shared/netconfig"
	"github.com/automoto/swarmflag/shared/wire"
	"github.com/automoto/swarmflag/tags"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/yohamta/donburi"
)

// Controls reports the pressed state of the client's discrete controls.
type Controls interface {
	Pressed(action netconfig.ActionID) bool
}

// InputSampler turns the control state into one input packet per input tick.
// The packet goes out even with no movement: it is also the heartbeat.
type InputSampler struct {
	channel  Channel
	controls Controls
	interval time.Duration

	now     func() time.Time
	last    time.Time
	elapsed time.Duration
}

func NewInputSampler(ch Channel, controls Controls, interval time.Duration) *InputSampler {
	s := &InputSampler{
		channel:  ch,
		controls: controls,
		interval: interval,
		now:      time.Now,
	}
	s.last = s.now()
	return s
}

// Update is called every frame and fires at most once per interval.
func (s *InputSampler) Update(w donburi.World) error {
	if !s.due() {
		return nil
	}

	pkt := s.Sample(w)
	if err := s.channel.Send(wire.EncodeInput(pkt)); err != nil {
		return fmt.Errorf("send input: %w", err)
	}
	return nil
}

func (s *InputSampler) due() bool {
	now := s.now()
	s.elapsed += now.Sub(s.last)
	s.last = now
	if s.elapsed < s.interval {
		return false
	}
	// One packet per call; a stalled frame does not cause a burst.
	s.elapsed %= s.interval
	return true
}

// Sample reads the controls into an input packet. Movement is ignored while
// the death overlay is up; restart never is. Pressing restart hides every
// enemy right away rather than waiting for the server's next state.
func (s *InputSampler) Sample(w donburi.World) wire.InputPacket {
	var move mgl32.Vec2

	if !deathOverlayVisible(w) {
		if s.controls.Pressed(netconfig.ActionMoveLeft) {
			move[0] -= 1
		}
		if s.controls.Pressed(netconfig.ActionMoveRight) {
			move[0] += 1
		}
		if s.controls.Pressed(netconfig.ActionMoveUp) {
			move[1] += 1
		}
		if s.controls.Pressed(netconfig.ActionMoveDown) {
			move[1] -= 1
		}
	}

	restart := s.controls.Pressed(netconfig.ActionRestart)
	if restart {
		tags.Enemy.Each(w, func(e *donburi.Entry) {
			components.Visibility.SetValue(e, components.Hidden)
		})
	}

	return wire.InputPacket{Move: move, Restart: restart}
}

func deathOverlayVisible(w donburi.World) bool {
	overlay, ok := tags.DeathOverlay.First(w)
	return ok && components.IsVisible(overlay)
}
