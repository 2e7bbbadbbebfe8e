// Package delivery defines the contract every transport entry point
// implements, so the app runner can start them uniformly.
package delivery

import "context"

// Delivery is a transport-level server (HTTP today). Serve blocks until the
// server stops or fails.
type Delivery interface {
	Serve(ctx context.Context) error
}
