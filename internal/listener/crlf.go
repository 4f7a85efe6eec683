package listener

import (
	"bytes"
	"io"
)

// crlfConn normalizes line endings between a remote terminal and the
// game session. Telnet clients send \r\n and expect it back; ssh
// clients without a PTY send bare \r. The session itself only ever
// sees and writes \n, so both transports wrap their connections here.
type crlfConn struct {
	rw io.ReadWriter
}

func newCRLFReadWriter(rw io.ReadWriter) io.ReadWriter {
	return &crlfConn{rw: rw}
}

func (c *crlfConn) Read(p []byte) (int, error) {
	n, err := c.rw.Read(p)
	if n > 0 {
		// \r\n first, then any stray \r left behind
		data := bytes.ReplaceAll(p[:n], []byte("\r\n"), []byte("\n"))
		data = bytes.ReplaceAll(data, []byte("\r"), []byte("\n"))
		n = copy(p, data)
	}
	return n, err
}

func (c *crlfConn) Write(p []byte) (int, error) {
	converted := bytes.ReplaceAll(p, []byte("\n"), []byte("\r\n"))
	_, err := c.rw.Write(converted)
	// Report the caller's length, not the expanded one
	return len(p), err
}
