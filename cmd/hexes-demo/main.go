// Command hexes-demo shows the toolkit on a live terminal: a scrollable
// directory listing, a status bar, and an editable side panel.
//
// Keys: q quits, j/k or the arrow keys scroll the listing, e edits the
// side panel (Ctrl-G or Enter ends the edit).
package main

import (
	"fmt"
	"os"
	"strings"

	"golang.org/x/term"

	"github.com/lixenwraith/hexes/engine"
	"github.com/lixenwraith/hexes/terminal"
	"github.com/lixenwraith/hexes/tui"
)

func main() {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		fmt.Fprintln(os.Stderr, "hexes-demo: stdout is not a terminal")
		os.Exit(1)
	}

	lsBox := tui.NewBox(nil)
	lsBox.Title = "files"

	statusBox := tui.NewBox(&tui.Style{
		Layout: tui.Vertical,
		Height: 3,
		Width:  tui.Auto,
	})
	statusBox.SetText("q: quit  j/k: scroll  e: edit note")

	noteBox := tui.NewBox(&tui.Style{
		Layout: tui.Vertical,
		Height: tui.Auto,
		Width:  20,
		Flow:   true,
	})
	noteBox.Title = "note"
	noteBox.Editable = true

	root := tui.NewBox(&tui.Style{
		Layout: tui.Horizontal,
		Height: tui.Auto,
		Width:  tui.Auto,
	},
		tui.NewBox(nil, lsBox, statusBox),
		noteBox,
	)

	drv, err := terminal.New()
	if err != nil {
		fmt.Fprintln(os.Stderr, "hexes-demo:", err)
		os.Exit(1)
	}
	if err := drv.Init(); err != nil {
		fmt.Fprintln(os.Stderr, "hexes-demo:", err)
		os.Exit(1)
	}

	app := engine.New(drv, root, engine.DefaultConfig())

	must(app.Register("q", engine.Quit))
	scrollUp := func(*engine.App) { lsBox.Scroll(-1) }
	scrollDown := func(*engine.App) { lsBox.Scroll(1) }
	must(app.Register("j", scrollUp))
	must(app.Register("k", scrollDown))
	must(app.Register("up", scrollUp))
	must(app.Register("down", scrollDown))

	must(app.Register("e", func(a *engine.App) {
		err := a.Edit(noteBox, func(note string) {
			statusBox.SetText("note saved (" + fmt.Sprint(len(note)) + " chars)")
			noteBox.SetText(note)
		})
		if err != nil {
			a.Log("edit:", err)
		}
	}))

	// Refresh the listing, then re-schedule so the display tracks the
	// directory
	var showFiles engine.HandlerFunc
	showFiles = func(a *engine.App) {
		a.Schedule(engine.Task(showFiles))

		entries, err := os.ReadDir(".")
		if err != nil {
			a.Log("readdir:", err)
			return
		}
		var sb strings.Builder
		for _, e := range entries {
			sb.WriteString(e.Name())
			if e.IsDir() {
				sb.WriteByte('/')
			}
			sb.WriteByte('\n')
		}
		if listing := sb.String(); listing != lsBox.Text() {
			lsBox.SetText(listing)
		}
	}
	must(app.Register("ready", showFiles))

	if err := app.Run(); err != nil {
		fmt.Fprintln(os.Stderr, "hexes-demo:", err)
		os.Exit(1)
	}
}

func must(err error) {
	if err != nil {
		panic(err)
	}
}
