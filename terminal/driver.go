package terminal

// Driver is the capability surface the engine requires from a terminal.
// Implementations must make Fini safe to call more than once and on every
// exit path, restoring the terminal to its original mode.
type Driver interface {
	// Init enters raw mode, hides the cursor and enables key decoding
	Init() error

	// Fini restores terminal state. Safe to call multiple times
	Fini()

	// Size returns current terminal dimensions in cells
	Size() (width, height int)

	// PollKey returns the next pending input event without blocking.
	// ok is false when no event is available this cycle
	PollKey() (ev Event, ok bool)

	// NewSurface returns a drawing handle for the given screen rectangle
	NewSurface(x, y, w, h int) *Surface

	// Show flushes all surface drawing to the physical terminal
	Show()
}
