// Package agent implements the sync agent's local HTTP API.
//
// Features on the same machine read and write entities through these routes
// instead of talking to the remote document store directly. Every call goes
// through the entity facade, so writes made while offline are queued and
// replayed later. GET /local/events streams facade events over a websocket.
package agent
