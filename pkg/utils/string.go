// Package utils provides string helpers for terminal display.
package utils

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

var visibleReplacer = strings.NewReplacer(
	"\r\n", `\r\n`,
	"\n", `\n`,
	"\r", `\r`,
	"\t", `\t`,
)

// Visible escapes line breaks and tabs so text fits on one line.
func Visible(s string) string {
	return visibleReplacer.Replace(s)
}

// Truncate shortens s to at most width display columns, marking the cut with
// an ellipsis.
func Truncate(s string, width int) string {
	if width <= 0 || runewidth.StringWidth(s) <= width {
		return s
	}

	return runewidth.Truncate(s, width, "...")
}

// Preview returns a one-line, width-limited rendering of s.
func Preview(s string, width int) string {
	return Truncate(Visible(s), width)
}
