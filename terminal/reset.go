package terminal

import (
	"io"
	"os"
)

var (
	csiCursorShow    = []byte("\x1b[?25h")
	csiAltScreenExit = []byte("\x1b[?1049l")
	csiSGR0          = []byte("\x1b[0m")
	csiAutoWrapOn    = []byte("\x1b[?7h")
)

// EmergencyReset attempts to restore the terminal to a sane state.
// Call this from panic recovery if Fini cannot be called normally
func EmergencyReset(w io.Writer) {
	w.Write(csiCursorShow)
	w.Write(csiAltScreenExit)
	w.Write(csiSGR0)
	w.Write(csiAutoWrapOn)

	if f, ok := w.(*os.File); ok {
		f.Sync()
	}
}
