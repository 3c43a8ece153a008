//go:build !unix

package network

import (
	"errors"
	"os"
	"time"
)

// pollWindow bounds how long a receive may wait on platforms without a raw
// non-blocking read. A deadline already in the past would never read at all.
const pollWindow = time.Millisecond

func (c *UDPChannel) recv(buf []byte) (int, error) {
	if err := c.conn.SetReadDeadline(time.Now().Add(pollWindow)); err != nil {
		return 0, err
	}
	n, err := c.conn.Read(buf)
	if errors.Is(err, os.ErrDeadlineExceeded) {
		return 0, ErrWouldBlock
	}
	return n, err
}
