// Package delivery defines the contract every inbound transport implements.
package delivery

import "context"

// Delivery is a long-running server for one transport. Serve blocks until
// the server stops; shutdown is driven by lifecycle hooks.
type Delivery interface {
	Serve(ctx context.Context) error
}
