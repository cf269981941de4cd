//go:build !windows

package daemon

import (
	"os"
	"syscall"
)

// StopSignals contains all the signals which will make our daemon stop
// gracefully.
var StopSignals = []os.Signal{
	syscall.SIGINT,
	syscall.SIGTERM,
}
