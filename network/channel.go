package network

import (
	"errors"
	"fmt"
	"log"
	"net"
	"syscall"

	"github.com/google/uuid"
)

// ErrWouldBlock is returned by ReceiveOne when no datagram is queued. It is
// the normal outcome of most ticks, not a failure.
var ErrWouldBlock = errors.New("no datagram available")

// Channel is the session's datagram endpoint as the sampler and applicator
// see it. Tests substitute a fake.
type Channel interface {
	// Send hands one datagram to the OS. It does not wait for, or learn
	// about, delivery.
	Send(b []byte) error
	// ReceiveOne reads at most one datagram into buf without blocking.
	ReceiveOne(buf []byte) (int, error)
}

// Config names the two ends of the session.
type Config struct {
	LocalAddr  string
	ServerAddr string
}

// UDPChannel is a bound, connected UDP socket read without blocking.
type UDPChannel struct {
	conn      *net.UDPConn
	raw       syscall.RawConn
	sessionID uuid.UUID

	refused bool // peer unreachable reported and not yet cleared
}

// Dial binds the local address, connects to the server and prepares the
// socket for non-blocking reads. Any error here is fatal for the client.
func Dial(cfg Config) (*UDPChannel, error) {
	laddr, err := net.ResolveUDPAddr("udp", cfg.LocalAddr)
	if err != nil {
		return nil, fmt.Errorf("resolve local address %q: %w", cfg.LocalAddr, err)
	}
	raddr, err := net.ResolveUDPAddr("udp", cfg.ServerAddr)
	if err != nil {
		return nil, fmt.Errorf("resolve server address %q: %w", cfg.ServerAddr, err)
	}

	conn, err := net.DialUDP("udp", laddr, raddr)
	if err != nil {
		return nil, fmt.Errorf("bind %s and connect %s: %w", cfg.LocalAddr, cfg.ServerAddr, err)
	}

	raw, err := conn.SyscallConn()
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("set socket non-blocking: %w", err)
	}

	c := &UDPChannel{
		conn:      conn,
		raw:       raw,
		sessionID: uuid.New(),
	}
	log.Printf("[channel] session %s: %s -> %s", c.sessionID, conn.LocalAddr(), conn.RemoteAddr())
	return c, nil
}

// SessionID identifies this run in logs.
func (c *UDPChannel) SessionID() uuid.UUID {
	return c.sessionID
}

// LocalAddr is the bound address, useful when binding to port 0.
func (c *UDPChannel) LocalAddr() net.Addr {
	return c.conn.LocalAddr()
}

func (c *UDPChannel) Send(b []byte) error {
	_, err := c.conn.Write(b)
	if err == nil {
		return nil
	}
	if errors.Is(err, syscall.ECONNREFUSED) {
		c.peerRefused()
		return nil
	}
	return fmt.Errorf("send %d bytes: %w", len(b), err)
}

func (c *UDPChannel) ReceiveOne(buf []byte) (int, error) {
	n, err := c.recv(buf)
	switch {
	case err == nil:
		c.refused = false
	case errors.Is(err, syscall.ECONNREFUSED):
		c.peerRefused()
		return 0, ErrWouldBlock
	default:
		return 0, err
	}

	if n >= len(buf) {
		log.Printf("[channel] warning: datagram filled the %d byte buffer, it may be truncated", len(buf))
	}
	return n, nil
}

func (c *UDPChannel) Close() error {
	log.Printf("[channel] session %s closed", c.sessionID)
	return c.conn.Close()
}

// peerRefused logs an ICMP port-unreachable once per outage.
func (c *UDPChannel) peerRefused() {
	if c.refused {
		return
	}
	c.refused = true
	log.Printf("[channel] server %s refused the datagram, is it running?", c.conn.RemoteAddr())
}
