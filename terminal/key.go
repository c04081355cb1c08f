package terminal

// Key represents a parsed input key
type Key uint16

// Key constants - designed for expansion
const (
	KeyNone Key = iota
	KeyRune     // Printable character (check Event.Rune)

	// Control keys
	KeyEscape
	KeyEnter
	KeyTab
	KeyBackspace
	KeyDelete

	// Navigation
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyHome
	KeyEnd
	KeyPageUp
	KeyPageDown
	KeyInsert

	// Function keys
	KeyF1
	KeyF2
	KeyF3
	KeyF4
	KeyF5
	KeyF6
	KeyF7
	KeyF8
	KeyF9
	KeyF10
	KeyF11
	KeyF12

	// Ctrl+letter
	KeyCtrlA
	KeyCtrlB
	KeyCtrlC
	KeyCtrlD
	KeyCtrlE
	KeyCtrlF
	KeyCtrlG
	KeyCtrlJ
	KeyCtrlK
	KeyCtrlL
	KeyCtrlN
	KeyCtrlO
	KeyCtrlP
	KeyCtrlQ
	KeyCtrlR
	KeyCtrlS
	KeyCtrlT
	KeyCtrlU
	KeyCtrlV
	KeyCtrlW
	KeyCtrlX
	KeyCtrlY
	KeyCtrlZ
)

// EventType distinguishes input event categories
type EventType uint8

const (
	EventKey EventType = iota
	EventResize
)

// Event represents a terminal input event
type Event struct {
	Type   EventType
	Key    Key
	Rune   rune
	Width  int // For EventResize
	Height int // For EventResize
}

// keyNames maps special keys to their registration names
var keyNames = map[Key]string{
	KeyEscape:    "escape",
	KeyEnter:     "enter",
	KeyTab:       "tab",
	KeyBackspace: "backspace",
	KeyDelete:    "delete",
	KeyUp:        "up",
	KeyDown:      "down",
	KeyLeft:      "left",
	KeyRight:     "right",
	KeyHome:      "home",
	KeyEnd:       "end",
	KeyPageUp:    "pgup",
	KeyPageDown:  "pgdn",
	KeyInsert:    "insert",
	KeyF1:        "f1",
	KeyF2:        "f2",
	KeyF3:        "f3",
	KeyF4:        "f4",
	KeyF5:        "f5",
	KeyF6:        "f6",
	KeyF7:        "f7",
	KeyF8:        "f8",
	KeyF9:        "f9",
	KeyF10:       "f10",
	KeyF11:       "f11",
	KeyF12:       "f12",
	KeyCtrlA:     "ctrl-a",
	KeyCtrlB:     "ctrl-b",
	KeyCtrlC:     "ctrl-c",
	KeyCtrlD:     "ctrl-d",
	KeyCtrlE:     "ctrl-e",
	KeyCtrlF:     "ctrl-f",
	KeyCtrlG:     "ctrl-g",
	KeyCtrlJ:     "ctrl-j",
	KeyCtrlK:     "ctrl-k",
	KeyCtrlL:     "ctrl-l",
	KeyCtrlN:     "ctrl-n",
	KeyCtrlO:     "ctrl-o",
	KeyCtrlP:     "ctrl-p",
	KeyCtrlQ:     "ctrl-q",
	KeyCtrlR:     "ctrl-r",
	KeyCtrlS:     "ctrl-s",
	KeyCtrlT:     "ctrl-t",
	KeyCtrlU:     "ctrl-u",
	KeyCtrlV:     "ctrl-v",
	KeyCtrlW:     "ctrl-w",
	KeyCtrlX:     "ctrl-x",
	KeyCtrlY:     "ctrl-y",
	KeyCtrlZ:     "ctrl-z",
}

// NameResize is the event name delivered when the terminal is resized
const NameResize = "resize"

var namedKeys = buildNamedKeys()

func buildNamedKeys() map[string]struct{} {
	m := make(map[string]struct{}, len(keyNames)+1)
	for _, name := range keyNames {
		m[name] = struct{}{}
	}
	m[NameResize] = struct{}{}
	return m
}

// IsNamedKey reports whether s is a recognized special-key event name
func IsNamedKey(s string) bool {
	_, ok := namedKeys[s]
	return ok
}

// Name returns the registration name for the event: the character itself for
// printable keys, the special-key name otherwise. Unknown keys yield ""
func (ev Event) Name() string {
	if ev.Type == EventResize {
		return NameResize
	}
	if ev.Key == KeyRune {
		return string(ev.Rune)
	}
	return keyNames[ev.Key]
}
