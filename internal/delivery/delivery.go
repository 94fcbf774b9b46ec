// Package delivery defines the contract every transport-facing server
// implements, so the entrypoint can start them uniformly.
package delivery

import "context"

// Delivery is a long-running server (HTTP, worker, etc.) started by the
// application entrypoint. Serve blocks until the server stops.
type Delivery interface {
	Serve(ctx context.Context) error
}
