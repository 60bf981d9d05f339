package keepalive

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// runSupervisor starts a supervisor with an observable exit function and
// returns the channel its exit code lands on.
func runSupervisor(t *testing.T, timeout time.Duration) (*Supervisor, <-chan int) {
	t.Helper()

	exited := make(chan int, 1)
	s := New(timeout, testLogger(), WithExitFunc(func(code int) { exited <- code }))

	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)
	go s.Run(ctx)

	return s, exited
}

func TestIdleProcessExitsAfterOneWindow(t *testing.T) {
	start := time.Now()
	_, exited := runSupervisor(t, 50*time.Millisecond)

	select {
	case code := <-exited:
		if code != 0 {
			t.Fatalf("exit code %d, want 0", code)
		}
		if elapsed := time.Since(start); elapsed < 50*time.Millisecond {
			t.Fatalf("exited after %v, before the window elapsed", elapsed)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("idle supervisor never exited")
	}
}

func TestActivityInFirstWindowKeepsProcessAlive(t *testing.T) {
	s, exited := runSupervisor(t, 200*time.Millisecond)

	time.Sleep(50 * time.Millisecond)
	s.Notify()

	// The first window check (t=200ms) must see the signal and carry on.
	select {
	case <-exited:
		t.Fatal("exited despite activity in the first window")
	case <-time.After(250 * time.Millisecond):
	}

	// The check re-arms: the next quiet window (t=400ms) must still exit.
	select {
	case code := <-exited:
		if code != 0 {
			t.Fatalf("exit code %d, want 0", code)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("re-armed supervisor never exited after going quiet")
	}
}

func TestBurstOfSignalsCountsForOneWindowOnly(t *testing.T) {
	s, exited := runSupervisor(t, 100*time.Millisecond)

	// A backlog of signals is drained in the window that observes it; it
	// must not keep later quiet windows alive.
	for i := 0; i < 3*signalBuffer; i++ {
		s.Notify()
	}

	select {
	case <-exited:
		t.Fatal("exited despite a burst of activity")
	case <-time.After(150 * time.Millisecond):
	}

	select {
	case <-exited:
	case <-time.After(2 * time.Second):
		t.Fatal("supervisor never exited after the backlog was drained")
	}
}

func TestNotifyNeverBlocksWithoutConsumer(t *testing.T) {
	s := New(time.Hour, testLogger())

	done := make(chan struct{})
	go func() {
		defer close(done)
		for i := 0; i < 10_000; i++ {
			s.Notify()
		}
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Notify blocked without a consumer")
	}
}

func TestRunReturnsOnContextCancel(t *testing.T) {
	s := New(time.Hour, testLogger(), WithExitFunc(func(int) {
		t.Error("exit called during shutdown")
	}))

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		defer close(done)
		s.Run(ctx)
	}()

	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Run did not return after cancellation")
	}
}
