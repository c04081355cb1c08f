package terminal

import (
	"fmt"
	"sync"

	"github.com/gdamore/tcell/v2"
)

// screen implements Driver over a tcell.Screen
type screen struct {
	scr    tcell.Screen
	events chan tcell.Event
	stopCh chan struct{}

	mu          sync.Mutex
	initialized bool
	finalized   bool
}

// New creates a Driver over the process terminal
func New() (Driver, error) {
	scr, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("terminal: create screen: %w", err)
	}
	return newScreen(scr), nil
}

// NewSimulation creates a Driver over a tcell simulation screen for tests.
// The returned SimulationScreen injects input and inspects cell contents
func NewSimulation() (Driver, tcell.SimulationScreen) {
	sim := tcell.NewSimulationScreen("UTF-8")
	return newScreen(sim), sim
}

func newScreen(scr tcell.Screen) *screen {
	return &screen{
		scr:    scr,
		events: make(chan tcell.Event, 64),
		stopCh: make(chan struct{}),
	}
}

// Init enters raw mode and starts the event pump
func (s *screen) Init() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.finalized {
		return fmt.Errorf("terminal: driver already finalized")
	}
	if s.initialized {
		return nil
	}

	if err := s.scr.Init(); err != nil {
		return fmt.Errorf("terminal: screen init: %w", err)
	}
	s.scr.HideCursor()
	s.scr.Clear()

	// Pump blocking PollEvent into a channel so PollKey never blocks.
	// tcell returns nil events after Fini, which ends the pump
	go func() {
		for {
			ev := s.scr.PollEvent()
			if ev == nil {
				return
			}
			select {
			case s.events <- ev:
			case <-s.stopCh:
				return
			}
		}
	}()

	s.initialized = true
	return nil
}

// Fini restores terminal state
func (s *screen) Fini() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.initialized || s.finalized {
		return
	}
	close(s.stopCh)
	s.scr.Fini()
	s.finalized = true
}

// Size returns current terminal dimensions
func (s *screen) Size() (int, int) {
	return s.scr.Size()
}

// PollKey returns one pending key or resize event without blocking.
// Events the engine has no use for are discarded
func (s *screen) PollKey() (Event, bool) {
	for {
		select {
		case raw := <-s.events:
			if ev, ok := translate(raw); ok {
				return ev, true
			}
		default:
			return Event{}, false
		}
	}
}

// NewSurface returns a drawing handle for the given screen rectangle
func (s *screen) NewSurface(x, y, w, h int) *Surface {
	return &Surface{scr: s.scr, x: x, y: y, w: w, h: h}
}

// Show flushes pending drawing to the terminal
func (s *screen) Show() {
	s.scr.Show()
}

// keyFromTcell maps tcell key codes onto driver keys
var keyFromTcell = map[tcell.Key]Key{
	tcell.KeyEscape:     KeyEscape,
	tcell.KeyEnter:      KeyEnter,
	tcell.KeyTab:        KeyTab,
	tcell.KeyBackspace:  KeyBackspace,
	tcell.KeyBackspace2: KeyBackspace,
	tcell.KeyDelete:     KeyDelete,
	tcell.KeyUp:         KeyUp,
	tcell.KeyDown:       KeyDown,
	tcell.KeyLeft:       KeyLeft,
	tcell.KeyRight:      KeyRight,
	tcell.KeyHome:       KeyHome,
	tcell.KeyEnd:        KeyEnd,
	tcell.KeyPgUp:       KeyPageUp,
	tcell.KeyPgDn:       KeyPageDown,
	tcell.KeyInsert:     KeyInsert,
	tcell.KeyF1:         KeyF1,
	tcell.KeyF2:         KeyF2,
	tcell.KeyF3:         KeyF3,
	tcell.KeyF4:         KeyF4,
	tcell.KeyF5:         KeyF5,
	tcell.KeyF6:         KeyF6,
	tcell.KeyF7:         KeyF7,
	tcell.KeyF8:         KeyF8,
	tcell.KeyF9:         KeyF9,
	tcell.KeyF10:        KeyF10,
	tcell.KeyF11:        KeyF11,
	tcell.KeyF12:        KeyF12,
	tcell.KeyCtrlA:      KeyCtrlA,
	tcell.KeyCtrlB:      KeyCtrlB,
	tcell.KeyCtrlC:      KeyCtrlC,
	tcell.KeyCtrlD:      KeyCtrlD,
	tcell.KeyCtrlE:      KeyCtrlE,
	tcell.KeyCtrlF:      KeyCtrlF,
	tcell.KeyCtrlG:      KeyCtrlG,
	tcell.KeyCtrlJ:      KeyCtrlJ,
	tcell.KeyCtrlK:      KeyCtrlK,
	tcell.KeyCtrlL:      KeyCtrlL,
	tcell.KeyCtrlN:      KeyCtrlN,
	tcell.KeyCtrlO:      KeyCtrlO,
	tcell.KeyCtrlP:      KeyCtrlP,
	tcell.KeyCtrlQ:      KeyCtrlQ,
	tcell.KeyCtrlR:      KeyCtrlR,
	tcell.KeyCtrlS:      KeyCtrlS,
	tcell.KeyCtrlT:      KeyCtrlT,
	tcell.KeyCtrlU:      KeyCtrlU,
	tcell.KeyCtrlV:      KeyCtrlV,
	tcell.KeyCtrlW:      KeyCtrlW,
	tcell.KeyCtrlX:      KeyCtrlX,
	tcell.KeyCtrlY:      KeyCtrlY,
	tcell.KeyCtrlZ:      KeyCtrlZ,
}

// translate converts a raw tcell event to a driver event
func translate(raw tcell.Event) (Event, bool) {
	switch ev := raw.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyRune {
			return Event{Type: EventKey, Key: KeyRune, Rune: ev.Rune()}, true
		}
		if k, ok := keyFromTcell[ev.Key()]; ok {
			return Event{Type: EventKey, Key: k, Rune: ev.Rune()}, true
		}
		return Event{}, false
	case *tcell.EventResize:
		w, h := ev.Size()
		return Event{Type: EventResize, Width: w, Height: h}, true
	}
	return Event{}, false
}
