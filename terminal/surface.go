package terminal

import (
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// LineType specifies box drawing character style
type LineType uint8

const (
	LineSingle  LineType = iota // ┌─┐│└┘
	LineDouble                  // ╔═╗║╚╝
	LineRounded                 // ╭─╮│╰╯
	LineHeavy                   // ┏━┓┃┗┛
)

// Box drawing character sets indexed by LineType
var boxChars = [...][6]rune{
	LineSingle:  {'┌', '─', '┐', '│', '└', '┘'},
	LineDouble:  {'╔', '═', '╗', '║', '╚', '╝'},
	LineRounded: {'╭', '─', '╮', '│', '╰', '╯'},
	LineHeavy:   {'┏', '━', '┓', '┃', '┗', '┛'},
}

const (
	boxTL = 0 // top-left
	boxH  = 1 // horizontal
	boxTR = 2 // top-right
	boxV  = 3 // vertical
	boxBL = 4 // bottom-left
	boxBR = 5 // bottom-right
)

// Surface is a drawable rectangle on the screen. The border occupies the
// outermost cells; DrawText and Fill address the interior only
type Surface struct {
	scr        tcell.Screen
	x, y, w, h int
}

// Width returns the surface width including border
func (s *Surface) Width() int { return s.w }

// Height returns the surface height including border
func (s *Surface) Height() int { return s.h }

func (s *Surface) set(x, y int, r rune) {
	s.scr.SetContent(s.x+x, s.y+y, r, nil, tcell.StyleDefault)
}

// DrawBorder draws the border around the surface edge
func (s *Surface) DrawBorder(line LineType) {
	if s.w < 2 || s.h < 2 {
		return
	}
	if line >= LineType(len(boxChars)) {
		line = LineSingle
	}
	chars := boxChars[line]

	s.set(0, 0, chars[boxTL])
	s.set(s.w-1, 0, chars[boxTR])
	s.set(0, s.h-1, chars[boxBL])
	s.set(s.w-1, s.h-1, chars[boxBR])

	for x := 1; x < s.w-1; x++ {
		s.set(x, 0, chars[boxH])
		s.set(x, s.h-1, chars[boxH])
	}
	for y := 1; y < s.h-1; y++ {
		s.set(0, y, chars[boxV])
		s.set(s.w-1, y, chars[boxV])
	}
}

// DrawTitle writes the title over the top border edge, truncated to fit
func (s *Surface) DrawTitle(title string) {
	if s.w < 3 {
		return
	}
	title = runewidth.Truncate(title, s.w-2, "")
	x := 1
	for _, r := range title {
		s.set(x, 0, r)
		x += runewidth.RuneWidth(r)
	}
}

// DrawText writes text into the interior at the given row and column,
// clipped to the interior bounds. Newlines advance to the next row
func (s *Surface) DrawText(row, col int, text string) {
	innerW, innerH := s.w-2, s.h-2
	x := col
	for _, r := range text {
		if r == '\n' {
			row++
			x = col
			continue
		}
		if row < 0 || row >= innerH {
			continue
		}
		rw := runewidth.RuneWidth(r)
		if rw == 0 {
			continue
		}
		if x >= 0 && x+rw <= innerW {
			s.set(1+x, 1+row, r)
		}
		x += rw
	}
}

// Fill blanks the interior of the surface
func (s *Surface) Fill() {
	for y := 1; y < s.h-1; y++ {
		for x := 1; x < s.w-1; x++ {
			s.set(x, y, ' ')
		}
	}
}
