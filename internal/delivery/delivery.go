package delivery

import "context"

// Delivery is a long-running inbound surface started by the process entrypoint.
type Delivery interface {
	Serve(ctx context.Context) error
}
