package tui

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// WrapByParagraph hard-wraps text to the given display width, preserving
// blank lines between paragraphs. Words longer than the width are broken
// at the cell boundary
func WrapByParagraph(text string, width int) string {
	if width < 1 {
		return text
	}
	paragraphs := strings.Split(text, "\n\n")
	wrapped := make([]string, len(paragraphs))
	for i, p := range paragraphs {
		wrapped[i] = strings.Join(fill(p, width), "\n")
	}
	return strings.Join(wrapped, "\n\n")
}

// fill greedily packs words into lines of at most width cells
func fill(text string, width int) []string {
	words := strings.Fields(text)
	var lines []string
	cur := ""
	curW := 0

	flush := func() {
		lines = append(lines, cur)
		cur = ""
		curW = 0
	}

	for i := 0; i < len(words); {
		word := words[i]
		sep := 0
		if cur != "" {
			sep = 1
		}
		wordW := runewidth.StringWidth(word)

		if curW+sep+wordW <= width {
			if sep == 1 {
				cur += " "
				curW++
			}
			cur += word
			curW += wordW
			i++
			continue
		}

		if wordW > width {
			// Break the long word at the space remaining on this line
			space := width - curW - sep
			if space > 0 {
				if sep == 1 {
					cur += " "
					curW++
				}
				head := runewidth.Truncate(word, space, "")
				cur += head
				curW += runewidth.StringWidth(head)
				words[i] = word[len(head):]
			}
			flush()
			continue
		}

		flush()
	}
	if cur != "" {
		lines = append(lines, cur)
	}
	return lines
}
