package stdio

import (
	"errors"
	"io"
	"net"
	"strings"
	"testing"
	"time"
)

func TestConnReadWrite(t *testing.T) {
	inR, inW := io.Pipe()
	outR, outW := io.Pipe()

	conn := NewConn(inR, outW)

	go func() {
		_, _ = inW.Write([]byte("ping"))
	}()

	buf := make([]byte, 4)
	if _, err := io.ReadFull(conn, buf); err != nil {
		t.Fatalf("read: %v", err)
	}
	if got := string(buf); got != "ping" {
		t.Fatalf("read %q, want %q", got, "ping")
	}

	go func() {
		_, _ = conn.Write([]byte("pong"))
	}()

	if _, err := io.ReadFull(outR, buf); err != nil {
		t.Fatalf("peer read: %v", err)
	}
	if got := string(buf); got != "pong" {
		t.Fatalf("peer read %q, want %q", got, "pong")
	}
}

func TestConnDoneOnReadFailure(t *testing.T) {
	inR, inW := io.Pipe()
	conn := NewConn(inR, io.Discard)

	select {
	case <-conn.Done():
		t.Fatal("Done closed before any failure")
	default:
	}

	// Peer hangs up; the next read fails and must mark the conn done.
	_ = inW.Close()
	if _, err := conn.Read(make([]byte, 1)); err == nil {
		t.Fatal("read succeeded after peer close")
	}

	select {
	case <-conn.Done():
	case <-time.After(time.Second):
		t.Fatal("Done not closed after read failure")
	}
}

func TestConnCloseClosesHalves(t *testing.T) {
	inR, inW := io.Pipe()
	outR, outW := io.Pipe()

	conn := NewConn(inR, outW)
	if err := conn.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}

	select {
	case <-conn.Done():
	default:
		t.Fatal("Done not closed after Close")
	}

	// Both halves must be closed from the peer's point of view.
	if _, err := inW.Write([]byte("x")); err == nil {
		t.Fatal("write to closed read half succeeded")
	}
	if _, err := outR.Read(make([]byte, 1)); err == nil {
		t.Fatal("read from closed write half succeeded")
	}
}

func TestListenerYieldsExactlyOnce(t *testing.T) {
	conn := NewConn(strings.NewReader(""), io.Discard)
	l := NewListener(conn)

	got, err := l.Accept()
	if err != nil {
		t.Fatalf("first accept: %v", err)
	}
	if got != net.Conn(conn) {
		t.Fatal("first accept returned a different conn")
	}

	second := make(chan error, 1)
	go func() {
		_, err := l.Accept()
		second <- err
	}()

	select {
	case err := <-second:
		t.Fatalf("second accept resolved early: %v", err)
	case <-time.After(50 * time.Millisecond):
		// still blocked, as it should be
	}

	if err := l.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}

	select {
	case err := <-second:
		if !errors.Is(err, net.ErrClosed) {
			t.Fatalf("second accept after close: %v, want net.ErrClosed", err)
		}
	case <-time.After(time.Second):
		t.Fatal("second accept still blocked after close")
	}
}

func TestListenerClosedBeforeFirstAccept(t *testing.T) {
	l := NewListener(NewConn(strings.NewReader(""), io.Discard))
	_ = l.Close()

	// A torn-down listener must fail fast, not hand out a dead conn.
	if _, err := l.Accept(); !errors.Is(err, net.ErrClosed) {
		t.Fatalf("accept after close: %v, want net.ErrClosed", err)
	}
}
