//go:build unix

package network

import (
	"errors"

	"golang.org/x/sys/unix"
)

// recv performs a single read(2) on the socket. The runtime keeps the fd in
// non-blocking mode, and returning true from the callback stops the poller
// from parking us when the queue is empty.
func (c *UDPChannel) recv(buf []byte) (int, error) {
	var n int
	var readErr error
	err := c.raw.Read(func(fd uintptr) bool {
		n, readErr = unix.Read(int(fd), buf)
		return true
	})
	if err != nil {
		return 0, err
	}
	if errors.Is(readErr, unix.EAGAIN) || errors.Is(readErr, unix.EWOULDBLOCK) {
		return 0, ErrWouldBlock
	}
	if readErr != nil {
		return 0, readErr
	}
	return n, nil
}
