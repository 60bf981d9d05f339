package invoker

import (
	"context"

	"github.com/routerd/modserve/wire"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// Service is the capability a module exposes to its router.
//
// Call dispatches one invocation. It either fails the call up front by
// returning a status error, or returns a channel of result elements that the
// caller drains until it is closed. The channel may deliver any number of
// elements, including none or infinitely many, and is read exactly once.
//
// args is opaque: it arrives byte-for-byte as the router sent it, and
// decoding it is entirely the implementation's business. args is nil when the
// router supplied no arguments.
type Service interface {
	Call(ctx context.Context, function string, args *wire.Payload) (<-chan Result, error)
}

// Result is one element of a response stream: a payload or a status error,
// never both. An error element ends the stream from the router's point of
// view, with every prior payload delivered first.
type Result struct {
	Payload *wire.Payload
	Err     error
}

// Ok wraps a payload into a success element.
func Ok(p *wire.Payload) Result { return Result{Payload: p} }

// Err wraps a status error into an error element.
func Err(err error) Result { return Result{Err: err} }

// Errorf builds an error element from a status code and format string.
func Errorf(c codes.Code, format string, args ...any) Result {
	return Result{Err: status.Errorf(c, format, args...)}
}
