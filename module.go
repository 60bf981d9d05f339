package modserve

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"sync/atomic"
	"time"

	"github.com/routerd/modserve/internal/keepalive"
	"github.com/routerd/modserve/internal/logctx"
	"github.com/routerd/modserve/invoker"
	"github.com/routerd/modserve/stdio"
	"github.com/routerd/modserve/wire"
	"google.golang.org/grpc"
)

// DefaultIdleTimeout is how long a module waits for its first (or next)
// invocation before concluding it has been orphaned and exiting.
const DefaultIdleTimeout = 5 * time.Minute

var (
	// ErrAlreadyServed is returned by Serve when called more than once; the
	// stdio pipes can only back one connection per process.
	ErrAlreadyServed = errors.New("modserve: Serve may be called at most once")

	// ErrConnClosed is returned by Serve when the router closes its end of
	// the pipes. How to react is the caller's business; most modules simply
	// exit.
	ErrConnClosed = errors.New("modserve: connection closed by router")
)

// Module ties the pieces together: it owns the idle-shutdown configuration,
// adapts the stdio pipes into a connection, and drives the gRPC engine over
// it for the life of the process.
type Module struct {
	timeout time.Duration
	log     *slog.Logger
	r       io.Reader
	w       io.Writer

	// exitFunc overrides the supervisor's process exit in tests.
	exitFunc func(code int)

	served atomic.Bool
}

// New constructs a Module with the default five-minute idle timeout, serving
// on the process's stdin/stdout. Options override either.
func New(opts ...Option) *Module {
	m := &Module{
		timeout: DefaultIdleTimeout,
		log:     slog.Default(),
		r:       os.Stdin,
		w:       os.Stdout,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(m)
		}
	}
	m.log = slog.New(logctx.Handler{Handler: m.log.Handler()})
	return m
}

// Serve starts the idle-shutdown supervisor and serves svc over the module's
// connection until the transport fails or ctx is canceled. It is safe to call
// at most once.
//
// Serve does not return in the idle-timeout path: the supervisor exits the
// process directly, with a success status, truncating whatever was in flight.
func (m *Module) Serve(ctx context.Context, svc invoker.Service) error {
	if !m.served.CompareAndSwap(false, true) {
		return ErrAlreadyServed
	}

	var supOpts []keepalive.Option
	if m.exitFunc != nil {
		supOpts = append(supOpts, keepalive.WithExitFunc(m.exitFunc))
	}
	sup := keepalive.New(m.timeout, m.log, supOpts...)
	go sup.Run(ctx)

	conn := stdio.NewConn(m.r, m.w)
	lis := stdio.NewListener(conn)

	srv := grpc.NewServer(grpc.ForceServerCodec(wire.Codec{}))
	wire.RegisterInvokerServer(srv, invoker.NewInvokerService(svc, sup.Notify, m.log))

	// The engine never returns on its own: the listener accepts once and
	// then blocks forever. Stop it when the pipes die or the caller bails.
	go func() {
		select {
		case <-conn.Done():
		case <-ctx.Done():
		}
		srv.Stop()
	}()

	m.log.Debug("module serving", slog.Duration("idle_timeout", m.timeout))

	if err := srv.Serve(lis); err != nil {
		return fmt.Errorf("modserve: serve: %w", err)
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	return ErrConnClosed
}
