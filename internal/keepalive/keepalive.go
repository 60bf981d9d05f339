// Package keepalive enforces the idle-shutdown policy: a module that receives
// no invocations for a full timeout window is assumed orphaned by its router
// and exits on its own. This is deliberate reclamation, not error handling —
// the exit carries a success status and nothing is sent to the parent beyond
// the closing pipes.
package keepalive

import (
	"context"
	"log/slog"
	"os"
	"time"
)

// signalBuffer bounds the activity queue. Signals are idempotent for the
// supervisor's purposes (one is as good as fifty), so overflow is dropped
// rather than ever blocking a producer.
const signalBuffer = 64

// Supervisor watches for activity signals and terminates the process after a
// full window without any. The check re-arms every window for the life of the
// process: a module that goes quiet after serving for an hour is reclaimed
// just like one that never served at all.
type Supervisor struct {
	timeout time.Duration
	log     *slog.Logger
	signals chan struct{}
	exit    func(code int)
}

// Option customizes a Supervisor.
type Option func(*Supervisor)

// WithExitFunc replaces the process-exit function. Tests use this to observe
// the exit instead of dying.
func WithExitFunc(fn func(code int)) Option {
	return func(s *Supervisor) {
		if fn != nil {
			s.exit = fn
		}
	}
}

// New returns a supervisor that exits the process after timeout without
// activity. Run must be called for the policy to take effect.
func New(timeout time.Duration, log *slog.Logger, opts ...Option) *Supervisor {
	s := &Supervisor{
		timeout: timeout,
		log:     log,
		signals: make(chan struct{}, signalBuffer),
		exit:    os.Exit,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}
	return s
}

// Notify records one unit of activity. It never blocks and never fails: if
// the queue is full or nobody is draining it, the signal is dropped, which is
// harmless — a full queue already proves the process is live.
func (s *Supervisor) Notify() {
	select {
	case s.signals <- struct{}{}:
	default:
	}
}

// Run drives the countdown until ctx is canceled or the process exits. At the
// end of each window it checks, without blocking, whether any activity
// arrived during that window: if none did, the process exits immediately with
// a success status; otherwise the queue is drained and the next window
// begins.
func (s *Supervisor) Run(ctx context.Context) {
	ticker := time.NewTicker(s.timeout)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			select {
			case <-s.signals:
				s.drain()
			default:
				s.log.Info("no invocations within idle window, shutting down",
					slog.Duration("timeout", s.timeout))
				s.exit(0)
				return // reached only under an injected exit func
			}
		}
	}
}

func (s *Supervisor) drain() {
	for {
		select {
		case <-s.signals:
		default:
			return
		}
	}
}
