// Package delivery defines the contract every transport (HTTP today) fulfils.
package delivery

import "context"

// Delivery is a serving endpoint managed by the application lifecycle.
type Delivery interface {
	// Serve blocks, serving requests until the server is shut down.
	Serve(ctx context.Context) error
}
