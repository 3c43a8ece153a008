package network

import (
	"time"

	"github.com/automoto/swarmflag/shared/netconfig"
	"github.com/automoto/swarmflag/systems/factory"
	"github.com/yohamta/donburi"
)

type fakeChannel struct {
	sent    [][]byte
	inbox   [][]byte
	sendErr error
	recvErr error
}

func (f *fakeChannel) Send(b []byte) error {
	if f.sendErr != nil {
		return f.sendErr
	}
	cp := make([]byte, len(b))
	copy(cp, b)
	f.sent = append(f.sent, cp)
	return nil
}

func (f *fakeChannel) ReceiveOne(buf []byte) (int, error) {
	if f.recvErr != nil {
		return 0, f.recvErr
	}
	if len(f.inbox) == 0 {
		return 0, ErrWouldBlock
	}
	next := f.inbox[0]
	f.inbox = f.inbox[1:]
	return copy(buf, next), nil
}

func (f *fakeChannel) push(b []byte) {
	f.inbox = append(f.inbox, b)
}

type fakeControls map[netconfig.ActionID]bool

func (c fakeControls) Pressed(action netconfig.ActionID) bool {
	return c[action]
}

type fakeClock struct {
	t time.Time
}

func (c *fakeClock) now() time.Time {
	return c.t
}

func (c *fakeClock) advance(d time.Duration) {
	c.t = c.t.Add(d)
}

type testWorld struct {
	world   donburi.World
	player  *donburi.Entry
	enemies []*donburi.Entry
	death   *donburi.Entry
	win     *donburi.Entry
}

func newTestWorld(enemies int) *testWorld {
	w := donburi.NewWorld()
	return &testWorld{
		world:   w,
		player:  factory.CreatePlayer(w),
		enemies: factory.CreateEnemyPool(w, enemies),
		death:   factory.CreateDeathOverlay(w, "You died"),
		win:     factory.CreateWinOverlay(w, "The flag is CTF{}"),
	}
}
