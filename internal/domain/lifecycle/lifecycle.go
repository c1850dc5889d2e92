// Package lifecycle holds process lifecycle constants shared by the delivery layers.
package lifecycle

import "time"

// DefaultTimeout is the grace period allowed for a server to drain in-flight
// requests during shutdown.
const DefaultTimeout = 10 * time.Second
