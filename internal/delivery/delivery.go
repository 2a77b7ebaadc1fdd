// Package delivery defines the contract every transport entry point fulfills.
package delivery

import "context"

// Delivery is a serveable transport (HTTP server, worker loop) started by main.
type Delivery interface {
	// Serve blocks serving requests until the context is canceled or a fatal
	// error occurs.
	Serve(ctx context.Context) error
}
