// Package invoker defines the capability surface a module author implements
// and the bridge that exposes it over the wire.
//
// A module implements exactly one Service. Its Call method is the whole
// routing table: match on the function name, decode the opaque arguments if
// the function takes any, and return either a result stream or a status
// error. Returning a status is always preferable to panicking — a panic tears
// down the module's only connection and every in-flight invocation with it,
// while a status fails just the one call.
//
// Call must be safe for concurrent use. Invocations dispatch in arrival
// order, but their lifetimes overlap freely and all of them share the one
// Service value; the bridge performs no serialization on the module's behalf.
package invoker
