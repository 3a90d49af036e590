// Package http implements the HTTP API of the reference document store.
//
// It exposes route wiring, request handlers, and middleware. Request tracing,
// access logging and response compression are handled in this package before
// requests are delegated to the service layer. The middlewares are exported
// so the sync agent's local API can share them.
package http
