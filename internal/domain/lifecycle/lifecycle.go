// Package lifecycle holds shared start/stop settings for long-lived components.
package lifecycle

import "time"

// DefaultTimeout bounds startup probes and graceful shutdown of a single component.
const DefaultTimeout = 10 * time.Second
