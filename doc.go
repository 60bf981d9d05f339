// Package modserve implements the module half of a router/module pair: a
// child process that exposes one invocable capability to the parent that
// spawned it, over the process's own stdin/stdout pipes instead of a network
// socket. A supervising router can run many such modules side by side without
// allocating a port to any of them.
//
// Characteristics
//
//	Connection model : 1 process <-> 1 router; a single connection for the
//	                   entire process lifetime
//	Transport        : gRPC server streaming over the stdio pipe pair
//	Payloads         : opaque MessagePack blobs; decoding belongs to the
//	                   module author (see the wire package)
//	Liveness         : idle-shutdown supervisor; a module that receives no
//	                   invocations for the configured window exits on its
//	                   own with a success status
//
// Example:
//
//	type myModule struct{}
//
//	func (myModule) Call(ctx context.Context, function string, args *wire.Payload) (<-chan invoker.Result, error) {
//	    switch function {
//	    case "hello":
//	        results := make(chan invoker.Result, 1)
//	        p, _ := wire.NewPayload("hello back")
//	        results <- invoker.Ok(p)
//	        close(results)
//	        return results, nil
//	    default:
//	        return nil, status.Errorf(codes.NotFound, "unknown function %q", function)
//	    }
//	}
//
//	func main() {
//	    m := modserve.New(modserve.WithTimeout(2 * time.Minute))
//	    if err := m.Serve(context.Background(), myModule{}); err != nil {
//	        log.Fatal(err)
//	    }
//	}
//
// Serve returns only when the transport fails or the context is canceled; in
// the idle-timeout path the process exits instead of returning.
package modserve
