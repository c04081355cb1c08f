package engine

import (
	"fmt"
	"strings"

	"github.com/lixenwraith/hexes/terminal"
	"github.com/lixenwraith/hexes/tui"
)

// renderTask repaints the tree when it is dirty, then re-arms. Rendering at
// most once per turn coalesces bursts of mutations into one repaint
func (a *App) renderTask() {
	defer a.Schedule((*App).renderTask)

	if !a.root.Dirty() {
		return
	}
	if err := a.render(); err != nil {
		a.fail(err)
		return
	}
	a.root.ClearDirty()
}

func (a *App) render() error {
	a.recalculateWindows()

	tw, th := a.drv.Size()
	rw, rh := a.root.Width(), a.root.Height()
	if rw > tw || rh > th {
		return fmt.Errorf("layout %dx%d exceeds terminal %dx%d", rw, rh, tw, th)
	}

	for _, win := range a.windows {
		a.paint(win)
	}
	a.drv.Show()
	return nil
}

// recalculateWindows re-resolves the layout and rebuilds the surface for
// every box in drawing order
func (a *App) recalculateWindows() {
	a.seedRootSize()
	a.windows = a.windows[:0]
	for _, box := range a.root.PreOrder() {
		ul := box.UpperLeft()
		sfc := a.drv.NewSurface(ul.X, ul.Y, box.Width(), box.Height())
		a.windows = append(a.windows, window{box: box, surface: sfc})
	}
}

func (a *App) paint(win window) {
	box, sfc := win.box, win.surface
	sfc.Fill()
	sfc.DrawBorder(terminal.LineSingle)
	if box.Title != "" {
		sfc.DrawTitle(box.Title)
	}

	text := box.Text()
	if text == "" {
		return
	}
	if box.Style().Flow {
		text = tui.WrapByParagraph(text, box.InnerWidth())
	}
	lines := strings.Split(text, "\n")
	if off := box.TextOffset(); off < len(lines) {
		lines = lines[off:]
	} else {
		lines = nil
	}
	for row, line := range lines {
		if row >= box.InnerHeight() {
			break
		}
		sfc.DrawText(row, 0, line)
	}
}
