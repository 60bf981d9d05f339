package wire

import (
	"google.golang.org/grpc"
)

// ServiceName is the fully qualified gRPC service name of the Invoker.
const ServiceName = "modserve.v1.Invoker"

// InvokeMethod is the full method path of the Invoke RPC.
const InvokeMethod = "/" + ServiceName + "/Invoke"

// InvokerServer is the server API of the Invoker service: one invocation in,
// a stream of payloads out.
type InvokerServer interface {
	Invoke(*Invocation, InvokerInvokeServer) error
}

// InvokerInvokeServer is the send side of a single Invoke response stream.
type InvokerInvokeServer interface {
	Send(*Payload) error
	grpc.ServerStream
}

type invokerInvokeServer struct {
	grpc.ServerStream
}

func (s *invokerInvokeServer) Send(p *Payload) error {
	return s.ServerStream.SendMsg(p)
}

func invokerInvokeHandler(srv any, stream grpc.ServerStream) error {
	in := new(Invocation)
	if err := stream.RecvMsg(in); err != nil {
		return err
	}
	return srv.(InvokerServer).Invoke(in, &invokerInvokeServer{stream})
}

// InvokerServiceDesc is the hand-written service descriptor for the Invoker
// service. There is no protoc step: bodies are msgpack (see Codec), so the
// descriptor mirrors what protoc-gen-go-grpc would emit for a single
// server-streaming method.
var InvokerServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*InvokerServer)(nil),
	Methods:     []grpc.MethodDesc{},
	Streams: []grpc.StreamDesc{
		{
			StreamName:    "Invoke",
			Handler:       invokerInvokeHandler,
			ServerStreams: true,
		},
	},
}

// RegisterInvokerServer registers srv with the gRPC registrar.
func RegisterInvokerServer(s grpc.ServiceRegistrar, srv InvokerServer) {
	s.RegisterService(&InvokerServiceDesc, srv)
}
