// Package delivery defines the contract every transport server fulfills.
package delivery

import "context"

// Delivery is a long-running transport endpoint (HTTP server, worker, ...).
// Serve blocks until the endpoint stops or fails.
type Delivery interface {
	Serve(ctx context.Context) error
}
