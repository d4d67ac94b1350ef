// Package lifecycle holds shared start/stop settings for deliveries and infra clients.
package lifecycle

import "time"

// DefaultTimeout bounds graceful shutdown and startup pings.
const DefaultTimeout = 10 * time.Second
