package core

import (
	"fmt"
	"os"
	"runtime/debug"

	"github.com/lixenwraith/hexes/terminal"
)

// crashDriver, when registered, is finalized before the stack trace prints
// so the trace lands on a sane terminal
var crashDriver terminal.Driver

// RegisterTerminal records the active driver for crash-time cleanup
func RegisterTerminal(d terminal.Driver) {
	crashDriver = d
}

// HandleCrash is the unified panic handler that resets the terminal and prints the stack trace
func HandleCrash(r any) {
	if r == nil {
		return
	}

	if crashDriver != nil {
		crashDriver.Fini()
	} else {
		// Fallback for crashes before driver init
		terminal.EmergencyReset(os.Stdout)
	}

	// Force flush stdout/stderr before printing to stderr
	os.Stdout.Sync()
	os.Stderr.Sync()

	fmt.Fprintf(os.Stderr, "\r\n\x1b[31mCRASH DETECTED: %v\x1b[0m\r\n", r)
	fmt.Fprintf(os.Stderr, "Stack Trace:\r\n%s\r\n", debug.Stack())

	os.Stderr.Sync()

	os.Exit(1)
}
