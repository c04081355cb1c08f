// Package tui implements the declarative box layout model: Style records,
// the Box tree, the geometry resolver, and the inline text editor. It has no
// knowledge of the scheduler; the engine package drives it.
package tui

// Layout selects the axis a box arranges its children along
type Layout uint8

const (
	Vertical Layout = iota
	Horizontal
)

// Dim is one dimension constraint: a fixed cell count (>= 0), Auto to claim
// an even share of the available space, or Fit to size to content
type Dim int

const (
	Auto Dim = -1
	Fit  Dim = -2
)

// Fixed reports whether d is an explicit cell count
func (d Dim) Fixed() bool { return d >= 0 }

// Style configures layout for one box. A Style belongs to exactly one Box;
// treat it as immutable once the application is running
type Style struct {
	Layout         Layout
	Height         Dim
	Width          Dim
	MinHeight      int
	MinWidth       int
	BorderCollapse bool
	Flow           bool
}

// DefaultStyle returns the defaults: vertical layout, auto sizing, collapsed
// borders, literal text
func DefaultStyle() *Style {
	return &Style{
		Layout:         Vertical,
		Height:         Auto,
		Width:          Auto,
		BorderCollapse: true,
	}
}
