package grapheme

import (
	"strings"
	"unicode"

	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

// Split returns grapheme clusters for text in visual order.
func Split(text string) []string {
	if text == "" {
		return nil
	}
	g := uniseg.NewGraphemes(text)
	out := make([]string, 0, len(text))
	for g.Next() {
		out = append(out, g.Str())
	}
	return out
}

// Count returns the number of grapheme clusters in text.
func Count(text string) int {
	if text == "" {
		return 0
	}
	return uniseg.GraphemeClusterCount(text)
}

// Width returns the terminal cell width of one cluster.
func Width(cluster string) int {
	w := runewidth.StringWidth(cluster)
	if w <= 0 {
		w = uniseg.StringWidth(cluster)
	}
	if w < 0 {
		w = 0
	}
	return w
}

// StringWidth returns the terminal cell width of text.
func StringWidth(text string) int {
	n := 0
	for _, c := range Split(text) {
		n += Width(c)
	}
	return n
}

// Flatten replaces control runes (newlines, tabs) with spaces so text fits
// on one terminal row.
func Flatten(text string) string {
	if strings.IndexFunc(text, unicode.IsControl) < 0 {
		return text
	}
	return strings.Map(func(r rune) rune {
		if unicode.IsControl(r) {
			return ' '
		}
		return r
	}, text)
}

// Truncate cuts text to at most width cells without splitting a cluster.
// When text is cut and tail fits, tail replaces the last cells.
func Truncate(text string, width int, tail string) string {
	if width <= 0 {
		return ""
	}
	if StringWidth(text) <= width {
		return text
	}
	tw := StringWidth(tail)
	if tw > width {
		tail, tw = "", 0
	}

	limit := width - tw
	var sb strings.Builder
	used := 0
	for _, c := range Split(text) {
		w := Width(c)
		if used+w > limit {
			break
		}
		sb.WriteString(c)
		used += w
	}
	sb.WriteString(tail)
	return sb.String()
}

// Pad fits text into exactly width cells: truncated with tail when too
// wide, right-padded with spaces otherwise.
func Pad(text string, width int, tail string) string {
	text = Truncate(text, width, tail)
	if w := StringWidth(text); w < width {
		text += strings.Repeat(" ", width-w)
	}
	return text
}
