// Package lifecycle holds shared constants for component start/stop handling.
package lifecycle

import "time"

// DefaultTimeout bounds graceful startup and shutdown of infrastructure
// components (HTTP server drain, database ping, publisher close).
const DefaultTimeout = 30 * time.Second
