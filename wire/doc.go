// Package wire defines the messages exchanged between a router and a module
// and the gRPC plumbing that carries them.
//
// The Invoker service has a single server-streaming method:
//
//	Invoke(Invocation) -> stream Payload
//
// Message bodies are MessagePack rather than protobuf, so the service
// descriptor and client are written by hand instead of generated; Codec
// supplies the msgpack framing to the gRPC machinery. Argument payloads are
// opaque at this layer: NewPayload and Payload.Decode are conveniences for
// the module author and routers, never called on their behalf.
package wire
