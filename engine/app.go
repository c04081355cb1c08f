package engine

import (
	"errors"
	"fmt"
	"sync"
	"time"
	"unicode"

	"github.com/lixenwraith/hexes/core"
	"github.com/lixenwraith/hexes/terminal"
	"github.com/lixenwraith/hexes/tui"
)

// ErrInvalidKey is returned by Register for a key name that is neither a
// recognized named key nor a single printable rune
var ErrInvalidKey = errors.New("engine: invalid key name")

// HandlerFunc reacts to a keystroke or lifecycle event on the scheduler
// goroutine
type HandlerFunc func(*App)

// Task is a unit of deferred work run by the scheduler
type Task func(*App)

// Config carries application tuning knobs
type Config struct {
	// TickInterval is the scheduler turn period
	TickInterval time.Duration
	// LogPath is the rotating log file location
	LogPath string
	// StripSpaces makes editor line-end movement stop at the last
	// non-blank column
	StripSpaces bool
}

// DefaultConfig returns the standard settings
func DefaultConfig() Config {
	return Config{
		TickInterval: 25 * time.Millisecond,
		LogPath:      "hexes.log",
		StripSpaces:  true,
	}
}

// window pairs a laid-out box with the surface it paints onto
type window struct {
	box     *tui.Box
	surface *terminal.Surface
}

// App owns the scheduler loop, the key handler registry and the layout root.
// All handlers and tasks run on the single goroutine inside Run; App methods
// other than Stop must only be called from there
type App struct {
	drv  terminal.Driver
	root *tui.Box
	cfg  Config

	registry map[string][]HandlerFunc
	tasks    []Task
	windows  []window
	editor   *tui.Editor

	logger *appLogger

	running  bool
	stopOnce sync.Once
	stopCh   chan struct{}
	err      error
}

// New creates an application over an initialized driver and a layout root
func New(drv terminal.Driver, root *tui.Box, cfg Config) *App {
	if cfg.TickInterval <= 0 {
		cfg.TickInterval = DefaultConfig().TickInterval
	}
	if cfg.LogPath == "" {
		cfg.LogPath = DefaultConfig().LogPath
	}
	return &App{
		drv:      drv,
		root:     root,
		cfg:      cfg,
		registry: make(map[string][]HandlerFunc),
		logger:   newLogger(cfg.LogPath),
		stopCh:   make(chan struct{}),
	}
}

// Root returns the layout root
func (a *App) Root() *tui.Box { return a.root }

// Register binds a handler to a key name. Valid names are the named keys
// ("up", "pgdn", "ctrl-a", "resize", ...), any single printable rune, and the
// "ready" lifecycle event fired once before the first scheduler turn.
// Multiple handlers for the same name run in registration order
func (a *App) Register(key string, h HandlerFunc) error {
	if !validKeyName(key) {
		return fmt.Errorf("%w: %q", ErrInvalidKey, key)
	}
	a.registry[key] = append(a.registry[key], h)
	return nil
}

// NameReady is the lifecycle event fired once at startup
const NameReady = "ready"

func validKeyName(key string) bool {
	if key == NameReady {
		return true
	}
	if terminal.IsNamedKey(key) {
		return true
	}
	runes := []rune(key)
	return len(runes) == 1 && unicode.IsPrint(runes[0])
}

// Schedule enqueues a task for a later scheduler turn. Tasks scheduled during
// a turn run on the next turn, never the current one
func (a *App) Schedule(t Task) {
	a.tasks = append(a.tasks, t)
}

// Run drives the application until Stop. The terminal is restored on every
// exit path, including panics, before the crash handler takes over
func (a *App) Run() (err error) {
	defer func() {
		a.drv.Fini()
		a.logger.Close()
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()

	core.RegisterTerminal(a.drv)
	a.running = true
	a.seedRootSize()
	a.root.MarkDirty()

	for _, h := range a.registry[NameReady] {
		h(a)
	}

	a.Schedule((*App).pollTask)
	a.Schedule((*App).renderTask)

	ticker := time.NewTicker(a.cfg.TickInterval)
	defer ticker.Stop()
	for {
		select {
		case <-a.stopCh:
			a.running = false
			return a.err
		case <-ticker.C:
			a.runTurn()
		}
	}
}

// runTurn drains exactly the tasks present at the start of the turn. Tasks
// that re-schedule themselves therefore run once per turn
func (a *App) runTurn() {
	generation := a.tasks
	a.tasks = nil
	for _, t := range generation {
		t(a)
	}
}

// Stop ends Run after the current turn. Safe to call more than once and from
// handlers
func (a *App) Stop() {
	a.stopOnce.Do(func() { close(a.stopCh) })
}

// fail records err and stops the application
func (a *App) fail(err error) {
	a.err = err
	a.logger.Println("fatal:", err)
	a.Stop()
}

// Quit is a HandlerFunc that stops the application
func Quit(a *App) { a.Stop() }

// seedRootSize pins the root box to the terminal dimensions
func (a *App) seedRootSize() {
	w, h := a.drv.Size()
	a.root.SetAvailableWidth(w)
	a.root.SetAvailableHeight(h)
}

// pollTask consumes at most one input event per turn, then re-arms.
// While an editor is active it owns the keystroke stream and registry
// dispatch is suspended
func (a *App) pollTask() {
	defer a.Schedule((*App).pollTask)

	if a.editor != nil {
		if a.editor.Active() {
			return
		}
		a.editor = nil
	}

	ev, ok := a.drv.PollKey()
	if !ok {
		return
	}
	if ev.Type == terminal.EventResize {
		a.seedRootSize()
		a.root.MarkDirty()
	}
	for _, h := range a.registry[ev.Name()] {
		h(a)
	}
}

// Edit starts an inline editing session on box. See EditValidated
func (a *App) Edit(box *tui.Box, onComplete func(string)) error {
	return a.EditValidated(box, nil, onComplete)
}

// EditValidated starts an inline editing session on box. Keystrokes pass
// through validate before the editor; returning ok false drops them. Only one
// editor may be active at a time, and only on an editable box. onComplete
// runs on a scheduler turn after the session ends, with the final contents
func (a *App) EditValidated(box *tui.Box, validate tui.Validator, onComplete func(string)) error {
	if !box.Editable {
		return fmt.Errorf("engine: box %q is not editable", box.Title)
	}
	if a.editor != nil && a.editor.Active() {
		return errors.New("engine: an editor is already active")
	}
	sched := func(task func()) {
		a.Schedule(func(*App) { task() })
	}
	ed := tui.NewEditor(box, box.InnerHeight(), box.InnerWidth(), a.drv.PollKey, sched)
	ed.SetStripSpaces(a.cfg.StripSpaces)
	a.editor = ed
	ed.Edit(validate, onComplete)
	return nil
}

// Log writes to the application's rotating log file
func (a *App) Log(v ...any) { a.logger.Println(v...) }
