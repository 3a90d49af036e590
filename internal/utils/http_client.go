package utils

import (
	"time"

	"github.com/go-resty/resty/v2"
)

const userAgent = "go-site-sync/agent"

// HTTPClient is a wrapper around the resty.Client HTTP client.
// It embeds *resty.Client to expose all of its methods directly,
// while allowing extension with additional application-specific behavior.
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient creates a new HTTPClient with the agent's User-Agent and the
// given request timeout. resty's own retry mechanism stays disabled: retries
// of queued writes are owned by the sync engine, and direct writes are not
// retried at all.
//
// Each call returns an independent client with its own connection pool.
func NewHTTPClient(timeout time.Duration) *HTTPClient {
	client := resty.New().
		SetHeader("User-Agent", userAgent).
		SetRetryCount(0)
	if timeout > 0 {
		client.SetTimeout(timeout)
	}
	return &HTTPClient{Client: client}
}
