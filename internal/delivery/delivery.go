// Package delivery holds the long-running entry points started by the application.
package delivery

import "context"

// Delivery is served for the lifetime of the process.
type Delivery interface {
	Serve(ctx context.Context) error
}
