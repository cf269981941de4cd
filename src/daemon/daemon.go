// Package daemon contains the process level concerns of the Grimoire daemon.
package daemon

import (
	"context"
	"os/signal"
)

// StopContext returns a context which is done once the process receives one of
// the StopSignals. Calling stop releases the signal handlers.
func StopContext(parent context.Context) (ctx context.Context, stop context.CancelFunc) {
	return signal.NotifyContext(parent, StopSignals...)
}
