// Package server wires and runs the application's HTTP servers.
//
// It provides orchestration for server lifecycles, including startup,
// signal handling, and graceful shutdown. Both the document store and the
// sync agent's local API run through it.
package server
