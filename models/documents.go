package models

import "time"

// Document is a stored entity as the remote document store exposes it.
type Document struct {
	Collection string    `json:"collection"`
	ID         string    `json:"id"`
	Payload    Payload   `json:"payload"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// DocumentRequest is the body of create and update calls. On create ID is
// the client-proposed identifier; the store honours it so that replays of the
// same create are idempotent.
type DocumentRequest struct {
	ID      string  `json:"id,omitempty"`
	Payload Payload `json:"payload"`
}

// DocumentListResponse is returned by the collection listing endpoint.
type DocumentListResponse struct {
	Documents []Document `json:"documents"`
	Length    int        `json:"length"`
}

// HealthResponse is returned by the health endpoint.
type HealthResponse struct {
	Status string `json:"status"`
}
