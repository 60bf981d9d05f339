// Package stdio adapts a process's standard input and output pipes into the
// single connection a streaming RPC server expects. It is intended for
// modules that run as supervised child processes: the parent grants a pipe
// pair at launch, and that pair is the entire transport for the process
// lifetime.
//
// Characteristics
//
//	Connection model : exactly one Conn per process, established at start
//	Listener model   : Accept yields the Conn once, then blocks forever,
//	                   simulating an ever-listening acceptor
//	Deadlines        : not supported; deadline setters are accepted no-ops
//
// Conn reports when its underlying pipes become unusable via Done, which
// lets a caller tear down the server once the parent hangs up.
package stdio
