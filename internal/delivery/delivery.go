// Package delivery contains the entry points that trigger reminder runs.
package delivery

import "context"

// Delivery is a long-running entry point started by the application lifecycle.
type Delivery interface {
	Serve(ctx context.Context) error
}
