// Package delivery holds the entry points that expose the use cases: the admin API, the scrape worker and the sweeper.
package delivery

import "context"

// Delivery is a long-running entry point started by the cmd binaries.
type Delivery interface {
	Serve(ctx context.Context) error
}
