package stdio

import (
	"errors"
	"io"
	"net"
	"os"
	"sync"
	"time"
)

var _ net.Conn = (*Conn)(nil)

// Addr is the synthetic address of a pipe-backed connection. Both ends of the
// pipe report the same address; there is nothing useful to distinguish.
type Addr struct{}

func (Addr) Network() string { return "pipe" }
func (Addr) String() string  { return "pipe" }

// Conn joins a read half and a write half into a net.Conn. The two halves are
// typically a process's stdin and stdout, but any reader/writer pair works,
// which is how tests stand in for a parent process.
type Conn struct {
	r io.Reader
	w io.Writer

	once sync.Once
	done chan struct{}
}

// NewConn wraps r and w into a single bidirectional connection.
func NewConn(r io.Reader, w io.Writer) *Conn {
	return &Conn{r: r, w: w, done: make(chan struct{})}
}

// Stdio returns the connection backed by the current process's stdin/stdout.
func Stdio() *Conn {
	return NewConn(os.Stdin, os.Stdout)
}

// Done is closed once the connection is unusable: either half has failed or
// Close was called. Pipes deliver no out-of-band hangup event, so this is the
// only signal that the peer went away.
func (c *Conn) Done() <-chan struct{} { return c.done }

func (c *Conn) broken() {
	c.once.Do(func() { close(c.done) })
}

func (c *Conn) Read(b []byte) (int, error) {
	n, err := c.r.Read(b)
	if err != nil {
		c.broken()
	}
	return n, err
}

func (c *Conn) Write(b []byte) (int, error) {
	n, err := c.w.Write(b)
	if err != nil {
		c.broken()
	}
	return n, err
}

// Close closes whichever halves are closable and marks the connection done.
func (c *Conn) Close() error {
	c.broken()
	var errs []error
	if rc, ok := c.r.(io.Closer); ok {
		errs = append(errs, rc.Close())
	}
	if wc, ok := c.w.(io.Closer); ok {
		errs = append(errs, wc.Close())
	}
	return errors.Join(errs...)
}

func (c *Conn) LocalAddr() net.Addr  { return Addr{} }
func (c *Conn) RemoteAddr() net.Addr { return Addr{} }

// Pipes carry no deadline machinery; the setters succeed without effect so
// that transports probing for deadline support keep working.
func (c *Conn) SetDeadline(time.Time) error      { return nil }
func (c *Conn) SetReadDeadline(time.Time) error  { return nil }
func (c *Conn) SetWriteDeadline(time.Time) error { return nil }
