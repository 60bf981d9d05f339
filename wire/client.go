package wire

import (
	"context"
	"fmt"

	"google.golang.org/grpc"
)

var invokeStreamDesc = &grpc.StreamDesc{
	StreamName:    "Invoke",
	ServerStreams: true,
}

// InvokerClient is the router-side half of the Invoker service. A supervising
// router holds one per module; tests use it to drive a module end to end.
type InvokerClient struct {
	cc grpc.ClientConnInterface
}

// NewInvokerClient returns a client that issues invocations over cc.
func NewInvokerClient(cc grpc.ClientConnInterface) *InvokerClient {
	return &InvokerClient{cc: cc}
}

// Invoke sends one invocation and returns its response stream. A call-level
// rejection by the module surfaces as the error of the first Recv, carrying
// the module's status code and message.
func (c *InvokerClient) Invoke(ctx context.Context, inv *Invocation, opts ...grpc.CallOption) (*InvokeStream, error) {
	opts = append([]grpc.CallOption{grpc.ForceCodec(Codec{})}, opts...)
	stream, err := c.cc.NewStream(ctx, invokeStreamDesc, InvokeMethod, opts...)
	if err != nil {
		return nil, fmt.Errorf("wire: open invoke stream: %w", err)
	}
	if err := stream.SendMsg(inv); err != nil {
		return nil, fmt.Errorf("wire: send invocation: %w", err)
	}
	if err := stream.CloseSend(); err != nil {
		return nil, fmt.Errorf("wire: close send: %w", err)
	}
	return &InvokeStream{stream}, nil
}

// InvokeStream is the receive side of one invocation's response stream.
type InvokeStream struct {
	grpc.ClientStream
}

// Recv returns the next payload. It returns io.EOF once the module ends the
// stream cleanly, or a status error if the stream ends with an error element.
func (s *InvokeStream) Recv() (*Payload, error) {
	p := new(Payload)
	if err := s.ClientStream.RecvMsg(p); err != nil {
		return nil, err
	}
	return p, nil
}
