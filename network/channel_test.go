package network

import (
	"bytes"
	"errors"
	"net"
	"testing"
	"time"
)

// newLoopbackPair returns a channel connected to a plain UDP socket standing
// in for the server.
func newLoopbackPair(t *testing.T) (*UDPChannel, *net.UDPConn) {
	t.Helper()

	server, err := net.ListenUDP("udp", &net.UDPAddr{IP: net.IPv4(127, 0, 0, 1)})
	if err != nil {
		t.Fatalf("listen: %v", err)
	}
	t.Cleanup(func() { _ = server.Close() })

	ch, err := Dial(Config{LocalAddr: "127.0.0.1:0", ServerAddr: server.LocalAddr().String()})
	if err != nil {
		t.Fatalf("Dial: %v", err)
	}
	t.Cleanup(func() { _ = ch.Close() })

	return ch, server
}

// receiveWithin polls ReceiveOne the way the game loop would.
func receiveWithin(t *testing.T, ch *UDPChannel, buf []byte, d time.Duration) int {
	t.Helper()
	deadline := time.Now().Add(d)
	for time.Now().Before(deadline) {
		n, err := ch.ReceiveOne(buf)
		if err == nil {
			return n
		}
		if !errors.Is(err, ErrWouldBlock) {
			t.Fatalf("ReceiveOne: %v", err)
		}
		time.Sleep(time.Millisecond)
	}
	t.Fatalf("no datagram within %v", d)
	return 0
}

func TestReceiveOneWouldBlockWhenIdle(t *testing.T) {
	ch, _ := newLoopbackPair(t)

	start := time.Now()
	_, err := ch.ReceiveOne(make([]byte, 64))
	if !errors.Is(err, ErrWouldBlock) {
		t.Fatalf("err = %v, want ErrWouldBlock", err)
	}
	if elapsed := time.Since(start); elapsed > 50*time.Millisecond {
		t.Fatalf("idle receive took %v", elapsed)
	}
}

func TestSendReachesServer(t *testing.T) {
	ch, server := newLoopbackPair(t)

	payload := []byte{1, 0, 0, 0, 0, 0x3f, 0x80, 0, 0, 0}
	if err := ch.Send(payload); err != nil {
		t.Fatalf("Send: %v", err)
	}

	_ = server.SetReadDeadline(time.Now().Add(time.Second))
	buf := make([]byte, 64)
	n, from, err := server.ReadFromUDP(buf)
	if err != nil {
		t.Fatalf("server read: %v", err)
	}
	if !bytes.Equal(buf[:n], payload) {
		t.Fatalf("server got % x, want % x", buf[:n], payload)
	}
	if from.String() != ch.LocalAddr().String() {
		t.Fatalf("datagram came from %v, want %v", from, ch.LocalAddr())
	}
}

func TestReceiveOneReadsOneDatagram(t *testing.T) {
	ch, server := newLoopbackPair(t)
	client := ch.LocalAddr().(*net.UDPAddr)

	for _, msg := range [][]byte{{2, 'a'}, {2, 'b'}} {
		if _, err := server.WriteToUDP(msg, client); err != nil {
			t.Fatalf("server write: %v", err)
		}
	}

	buf := make([]byte, 64)
	n := receiveWithin(t, ch, buf, time.Second)
	if !bytes.Equal(buf[:n], []byte{2, 'a'}) {
		t.Fatalf("first receive = % x, want 02 61", buf[:n])
	}
	n = receiveWithin(t, ch, buf, time.Second)
	if !bytes.Equal(buf[:n], []byte{2, 'b'}) {
		t.Fatalf("second receive = % x, want 02 62", buf[:n])
	}
}

func TestReceiveOneTruncatesOversizedDatagram(t *testing.T) {
	ch, server := newLoopbackPair(t)

	big := make([]byte, 3000)
	for i := range big {
		big[i] = byte(i)
	}
	if _, err := server.WriteToUDP(big, ch.LocalAddr().(*net.UDPAddr)); err != nil {
		t.Fatalf("server write: %v", err)
	}

	buf := make([]byte, 2048)
	n := receiveWithin(t, ch, buf, time.Second)
	if n != len(buf) {
		t.Fatalf("n = %d, want the full %d byte buffer", n, len(buf))
	}
	if !bytes.Equal(buf, big[:len(buf)]) {
		t.Fatalf("truncated bytes differ from the datagram's prefix")
	}
}

func TestDialRejectsBadAddress(t *testing.T) {
	if _, err := Dial(Config{LocalAddr: "127.0.0.1:0", ServerAddr: "not an address"}); err == nil {
		t.Fatalf("Dial accepted a bad server address")
	}
}

func TestSendToClosedPortIsNotFatal(t *testing.T) {
	server, err := net.ListenUDP("udp", &net.UDPAddr{IP: net.IPv4(127, 0, 0, 1)})
	if err != nil {
		t.Fatalf("listen: %v", err)
	}
	addr := server.LocalAddr().String()
	_ = server.Close()

	ch, err := Dial(Config{LocalAddr: "127.0.0.1:0", ServerAddr: addr})
	if err != nil {
		t.Fatalf("Dial: %v", err)
	}
	defer ch.Close()

	// The refusal arrives asynchronously and may surface on either path.
	for i := 0; i < 5; i++ {
		if err := ch.Send([]byte{1}); err != nil {
			t.Fatalf("Send %d: %v", i, err)
		}
		if _, err := ch.ReceiveOne(make([]byte, 16)); !errors.Is(err, ErrWouldBlock) {
			t.Fatalf("ReceiveOne %d: %v, want ErrWouldBlock", i, err)
		}
		time.Sleep(time.Millisecond)
	}
}
