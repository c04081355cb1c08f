package tui

import (
	"unicode"

	"github.com/lixenwraith/hexes/terminal"
)

// Scheduler enqueues a task to run on a later scheduler turn
type Scheduler func(task func())

// KeySource is a non-blocking keystroke poll
type KeySource func() (terminal.Event, bool)

// Validator may transform a keystroke before the editor processes it.
// Returning ok false rejects the keystroke; the editor stays active and the
// buffer is untouched
type Validator func(terminal.Event) (ev terminal.Event, ok bool)

// Result classifies the outcome of one editing command
type Result uint8

const (
	// ResultHandled means the command mutated editor state (or was a no-op)
	ResultHandled Result = iota
	// ResultTerminated ends the edit session
	ResultTerminated
	// ResultPassthrough means no command matched; the key is not consumed
	// semantically and callers may treat it as unhandled
	ResultPassthrough
)

// Editor is the inline editing state machine for one editable box. It
// consumes keystrokes via a cooperative re-armed task; exactly one editor
// may be active application-wide, which the engine's key routing enforces.
//
// Emacs-style bindings, matched in order:
//
//	printable   insert at cursor
//	Ctrl-A      line start
//	Ctrl-B / Left / Backspace   cursor left (backspace also deletes)
//	Ctrl-D      delete forward
//	Ctrl-E      line end (last non-blank column when strip-spaces is on)
//	Ctrl-F / Right              cursor right
//	Ctrl-G      terminate
//	Ctrl-J / Enter              newline, or terminate on a one-row surface
//	Ctrl-K      kill to line end; delete the line when already empty
//	Ctrl-L      refresh (no buffer change)
//	Ctrl-N / Down               cursor down
//	Ctrl-O      insert blank line at cursor row
//	Ctrl-P / Up                 cursor up
type Editor struct {
	box    *Box
	buffer []rune
	cursor int
	active bool

	maxRows, maxCols int
	stripSpaces      bool
	lastKey          terminal.Event

	schedule   Scheduler
	pollKey    KeySource
	validate   Validator
	onComplete func(string)
}

// NewEditor creates an inactive editor bound to box and a drawing surface of
// rows by cols interior cells
func NewEditor(box *Box, rows, cols int, poll KeySource, schedule Scheduler) *Editor {
	if rows < 1 {
		rows = 1
	}
	if cols < 1 {
		cols = 1
	}
	return &Editor{
		box:         box,
		maxRows:     rows,
		maxCols:     cols,
		stripSpaces: true,
		pollKey:     poll,
		schedule:    schedule,
	}
}

// SetStripSpaces controls whether line-end movement stops at the last
// non-blank column instead of the physical edge
func (e *Editor) SetStripSpaces(strip bool) { e.stripSpaces = strip }

// Active reports whether the editor currently consumes keystrokes
func (e *Editor) Active() bool { return e.active }

// Value returns the buffer contents
func (e *Editor) Value() string { return string(e.buffer) }

// Cursor returns the buffer index of the cursor, 0..len(buffer)
func (e *Editor) Cursor() int { return e.cursor }

// LastKey returns the most recently processed input event
func (e *Editor) LastKey() terminal.Event { return e.lastKey }

// Edit activates the editor and arms the keystroke wait. onComplete, if
// non-nil, is scheduled with the final buffer contents after termination
func (e *Editor) Edit(validate Validator, onComplete func(string)) {
	e.active = true
	e.validate = validate
	e.onComplete = onComplete
	e.schedule(e.step)
}

// step consumes at most one keystroke, then re-arms itself. Waiting is
// expressed by re-scheduling, never by blocking
func (e *Editor) step() {
	if !e.active {
		return
	}
	ev, ok := e.pollKey()
	if !ok {
		e.schedule(e.step)
		return
	}
	if e.validate != nil {
		if ev, ok = e.validate(ev); !ok {
			e.schedule(e.step)
			return
		}
	}

	if e.DoCommand(ev) == ResultTerminated {
		e.active = false
		e.box.SetText("")
		if e.onComplete != nil {
			done := e.onComplete
			value := e.Value()
			e.schedule(func() { done(value) })
		}
		return
	}

	// Mirror the in-progress buffer so rendering reflects live edits
	e.box.SetText(e.Value())
	e.schedule(e.step)
}

type command struct {
	match func(terminal.Event) bool
	apply func(*Editor, terminal.Event) Result
}

// commands is consulted in order; the first matching entry applies
var commands = []command{
	{isPrintable, (*Editor).insertPrintable},
	{isKey(terminal.KeyCtrlA), (*Editor).lineStart},
	{isLeftward, (*Editor).leftward},
	{isKey(terminal.KeyCtrlD), (*Editor).deleteForward},
	{isKey(terminal.KeyCtrlE), (*Editor).lineEnd},
	{isRightward, (*Editor).rightward},
	{isKey(terminal.KeyCtrlG), (*Editor).terminate},
	{isNewline, (*Editor).newline},
	{isKey(terminal.KeyCtrlK), (*Editor).killLine},
	{isKey(terminal.KeyCtrlL), (*Editor).refresh},
	{isDownward, (*Editor).moveDown},
	{isKey(terminal.KeyCtrlO), (*Editor).openLine},
	{isUpward, (*Editor).moveUp},
}

// DoCommand processes one input event through the command table
func (e *Editor) DoCommand(ev terminal.Event) Result {
	e.lastKey = ev
	for _, c := range commands {
		if c.match(ev) {
			return c.apply(e, ev)
		}
	}
	return ResultPassthrough
}

// --- predicates ---

func isKey(k terminal.Key) func(terminal.Event) bool {
	return func(ev terminal.Event) bool { return ev.Key == k }
}

func isPrintable(ev terminal.Event) bool {
	return ev.Key == terminal.KeyRune && unicode.IsPrint(ev.Rune)
}

func isLeftward(ev terminal.Event) bool {
	return ev.Key == terminal.KeyCtrlB || ev.Key == terminal.KeyLeft ||
		ev.Key == terminal.KeyBackspace
}

func isRightward(ev terminal.Event) bool {
	return ev.Key == terminal.KeyCtrlF || ev.Key == terminal.KeyRight
}

func isDownward(ev terminal.Event) bool {
	return ev.Key == terminal.KeyCtrlN || ev.Key == terminal.KeyDown
}

func isUpward(ev terminal.Event) bool {
	return ev.Key == terminal.KeyCtrlP || ev.Key == terminal.KeyUp
}

func isNewline(ev terminal.Event) bool {
	return ev.Key == terminal.KeyCtrlJ || ev.Key == terminal.KeyEnter
}

// --- buffer helpers ---

func (e *Editor) setCursor(pos int) {
	if pos < 0 {
		pos = 0
	}
	if pos > len(e.buffer) {
		pos = len(e.buffer)
	}
	e.cursor = pos
}

// lineStartAt returns the buffer index where pos's line begins
func (e *Editor) lineStartAt(pos int) int {
	for pos > 0 && e.buffer[pos-1] != '\n' {
		pos--
	}
	return pos
}

// lineEndAt returns the buffer index of pos's line terminator (newline or
// end of buffer)
func (e *Editor) lineEndAt(pos int) int {
	for pos < len(e.buffer) && e.buffer[pos] != '\n' {
		pos++
	}
	return pos
}

func (e *Editor) insertAt(pos int, r rune) {
	e.buffer = append(e.buffer, 0)
	copy(e.buffer[pos+1:], e.buffer[pos:])
	e.buffer[pos] = r
}

func (e *Editor) deleteAt(pos int) {
	if pos < 0 || pos >= len(e.buffer) {
		return
	}
	e.buffer = append(e.buffer[:pos], e.buffer[pos+1:]...)
}

// rowCol returns the cursor's row and column within the buffer
func (e *Editor) rowCol() (row, col int) {
	for i := 0; i < e.cursor; i++ {
		if e.buffer[i] == '\n' {
			row++
			col = 0
		} else {
			col++
		}
	}
	return row, col
}

// --- operations ---

func (e *Editor) insertPrintable(ev terminal.Event) Result {
	row, col := e.rowCol()
	if row >= e.maxRows-1 && col >= e.maxCols-1 {
		// No room at the last cell of the surface
		return ResultHandled
	}
	e.insertAt(e.cursor, ev.Rune)
	e.setCursor(e.cursor + 1)
	return ResultHandled
}

func (e *Editor) lineStart(terminal.Event) Result {
	e.setCursor(e.lineStartAt(e.cursor))
	return ResultHandled
}

func (e *Editor) leftward(ev terminal.Event) Result {
	moved := e.cursor > 0
	if moved {
		e.setCursor(e.cursor - 1)
	}
	if ev.Key == terminal.KeyBackspace && moved {
		e.deleteAt(e.cursor)
	}
	return ResultHandled
}

func (e *Editor) deleteForward(terminal.Event) Result {
	e.deleteAt(e.cursor)
	return ResultHandled
}

func (e *Editor) lineEnd(terminal.Event) Result {
	end := e.lineEndAt(e.cursor)
	if e.stripSpaces {
		start := e.lineStartAt(e.cursor)
		for end > start && e.buffer[end-1] == ' ' {
			end--
		}
	}
	e.setCursor(end)
	return ResultHandled
}

func (e *Editor) rightward(terminal.Event) Result {
	e.setCursor(e.cursor + 1)
	return ResultHandled
}

func (e *Editor) terminate(terminal.Event) Result {
	return ResultTerminated
}

func (e *Editor) newline(terminal.Event) Result {
	if e.maxRows == 1 {
		return ResultTerminated
	}
	e.insertAt(e.cursor, '\n')
	e.setCursor(e.cursor + 1)
	return ResultHandled
}

func (e *Editor) killLine(terminal.Event) Result {
	start := e.lineStartAt(e.cursor)
	end := e.lineEndAt(e.cursor)
	if start == end {
		// Line already empty: delete the line itself
		if end < len(e.buffer) {
			end++ // take the trailing newline with it
		} else if start > 0 {
			start-- // last line: take the preceding newline
		}
		e.buffer = append(e.buffer[:start], e.buffer[end:]...)
		e.setCursor(start)
		return ResultHandled
	}
	e.buffer = append(e.buffer[:e.cursor], e.buffer[end:]...)
	return ResultHandled
}

func (e *Editor) refresh(terminal.Event) Result {
	return ResultHandled
}

func (e *Editor) moveDown(terminal.Event) Result {
	_, col := e.rowCol()
	end := e.lineEndAt(e.cursor)
	if end >= len(e.buffer) {
		// Already on the last line
		return ResultHandled
	}
	nextStart := end + 1
	nextEnd := e.lineEndAt(nextStart)
	e.setCursor(minInt(nextStart+col, nextEnd))
	return ResultHandled
}

func (e *Editor) moveUp(terminal.Event) Result {
	_, col := e.rowCol()
	start := e.lineStartAt(e.cursor)
	if start == 0 {
		// Already on the first line
		return ResultHandled
	}
	prevStart := e.lineStartAt(start - 1)
	prevEnd := start - 1
	e.setCursor(minInt(prevStart+col, prevEnd))
	return ResultHandled
}

func (e *Editor) openLine(terminal.Event) Result {
	start := e.lineStartAt(e.cursor)
	e.insertAt(start, '\n')
	e.setCursor(start)
	return ResultHandled
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
