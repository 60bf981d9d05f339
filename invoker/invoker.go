package invoker

import (
	"log/slog"

	"github.com/google/uuid"
	"github.com/routerd/modserve/internal/logctx"
	"github.com/routerd/modserve/wire"
)

var _ wire.InvokerServer = (*InvokerService)(nil)

// InvokerService bridges the wire-level Invoke stream to a Service. Per
// invocation it signals liveness, awaits the Service's first outcome, then
// pumps the result channel into the outgoing stream. One InvokerService
// serves every invocation of the process; the gRPC engine calls Invoke from
// as many goroutines as there are in-flight invocations.
type InvokerService struct {
	svc    Service
	notify func()
	log    *slog.Logger
}

// NewInvokerService wraps svc for registration with the engine. notify is
// called once per received invocation, before svc is; it may be nil when no
// liveness consumer exists (tests).
func NewInvokerService(svc Service, notify func(), log *slog.Logger) *InvokerService {
	if log == nil {
		log = slog.Default()
	}
	return &InvokerService{svc: svc, notify: notify, log: log}
}

// Invoke handles one invocation end to end. A call-level failure from the
// Service is returned as-is so the engine fails just this call; an error
// element mid-stream is returned after all preceding payloads have been sent,
// which makes the engine close this stream with that status and nothing else.
func (s *InvokerService) Invoke(inv *wire.Invocation, stream wire.InvokerInvokeServer) error {
	if s.notify != nil {
		s.notify()
	}

	ctx := logctx.WithInvocationData(stream.Context(), &logctx.InvocationData{
		ID:       uuid.NewString(),
		Function: inv.Function,
	})

	s.log.DebugContext(ctx, "dispatching invocation")

	results, err := s.svc.Call(ctx, inv.Function, inv.Args)
	if err != nil {
		s.log.DebugContext(ctx, "call rejected", slog.String("err", err.Error()))
		return err
	}

	for {
		select {
		case res, ok := <-results:
			if !ok {
				s.log.DebugContext(ctx, "invocation stream complete")
				return nil
			}
			if res.Err != nil {
				s.log.DebugContext(ctx, "invocation stream ended with error element",
					slog.String("err", res.Err.Error()))
				return res.Err
			}
			if err := stream.Send(res.Payload); err != nil {
				return err
			}
		case <-ctx.Done():
			// The router went away or the call was torn down; the producer
			// keeps the channel, we stop draining it.
			return ctx.Err()
		}
	}
}
