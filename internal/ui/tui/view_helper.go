package tui

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/mattn/go-runewidth"
)

func clampString(s string, maxLen int) string {
	if maxLen <= 0 {
		return ""
	}
	if utf8.RuneCountInString(s) <= maxLen {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))

	n := 0
	for _, r := range s {
		if n >= maxLen-1 {
			break
		}
		b.WriteRune(r)
		n++
	}
	return b.String() + "…"
}

// artSize reports the banner's width in terminal cells and its height in rows.
// Trailing blank rows are not counted.
func artSize(art string) (width, height int) {
	art = strings.TrimRight(art, "\n")
	if art == "" {
		return 0, 0
	}

	lines := strings.Split(art, "\n")
	for _, l := range lines {
		if w := runewidth.StringWidth(l); w > width {
			width = w
		}
	}
	return width, len(lines)
}

func outputTitle(art string) string {
	w, h := artSize(art)
	if w == 0 {
		return "Output"
	}
	return fmt.Sprintf("Output  %d×%d", w, h)
}
