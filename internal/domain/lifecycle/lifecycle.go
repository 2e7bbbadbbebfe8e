// Package lifecycle holds shared constants for component start/stop handling.
package lifecycle

import "time"

// DefaultTimeout bounds graceful start and shutdown of long-lived components
// (HTTP server drain, database close).
const DefaultTimeout = 10 * time.Second
