package stdio

import (
	"net"
	"sync"
)

var _ net.Listener = (*Listener)(nil)

// Listener is a net.Listener over a single pre-established connection. The
// first Accept yields that connection; every later Accept blocks until the
// listener is closed. To the server this looks like an acceptor that simply
// never receives another dial.
type Listener struct {
	conn chan net.Conn

	closeOnce sync.Once
	closed    chan struct{}
}

// NewListener returns a listener whose sole connection is conn.
func NewListener(conn net.Conn) *Listener {
	l := &Listener{
		conn:   make(chan net.Conn, 1),
		closed: make(chan struct{}),
	}
	l.conn <- conn
	return l
}

// Accept returns the single connection on first call and blocks on every call
// after that. Once the listener is closed, Accept returns net.ErrClosed even
// if the connection was never handed out: a torn-down listener must fail the
// server at startup rather than serve a dead pipe.
func (l *Listener) Accept() (net.Conn, error) {
	select {
	case <-l.closed:
		return nil, net.ErrClosed
	default:
	}

	select {
	case conn := <-l.conn:
		return conn, nil
	case <-l.closed:
		return nil, net.ErrClosed
	}
}

// Close releases any blocked Accept calls. It does not close the connection
// itself; ownership of the connection belongs to whoever accepted it.
func (l *Listener) Close() error {
	l.closeOnce.Do(func() { close(l.closed) })
	return nil
}

func (l *Listener) Addr() net.Addr { return Addr{} }
