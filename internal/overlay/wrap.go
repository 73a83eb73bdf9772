package overlay

import (
	"strings"
	"unicode/utf8"

	"github.com/samber/lo"
)

// Word is one whitespace-delimited token of a caption block. Index is the
// word's 0-based position within the whole block, assigned before wrapping
// so highlight membership survives the line split.
type Word struct {
	Text  string
	Index int
}

// Line is an ordered run of words rendered on one row.
type Line []Word

// Text joins the line's words with single spaces.
func (l Line) Text() string {
	return strings.Join(lo.Map(l, func(w Word, _ int) string { return w.Text }), " ")
}

// width is the line's length in characters: word runes plus one separator
// per gap.
func (l Line) width() int {
	n := 0
	for i, w := range l {
		if i > 0 {
			n++
		}
		n += utf8.RuneCountInString(w.Text)
	}
	return n
}

func (l Line) containsAny(set map[int]bool) bool {
	for _, w := range l {
		if set[w.Index] {
			return true
		}
	}
	return false
}

// Words splits sanitized text into indexed words. Empty tokens never occur
// because Fields drops them.
func Words(text string) []Word {
	return lo.Map(strings.Fields(text), func(t string, i int) Word {
		return Word{Text: t, Index: i}
	})
}

// Wrap greedily packs words into lines of at most maxChars characters,
// counting one separator per gap. A word longer than the whole budget is not
// split or truncated; it gets a line of its own. The packing is
// deterministic: identical input always yields the identical partition.
func Wrap(words []Word, maxChars int) []Line {
	if maxChars < 1 {
		maxChars = 1
	}

	var lines []Line
	var line Line
	length := 0
	for _, w := range words {
		runes := utf8.RuneCountInString(w.Text)
		if len(line) > 0 && length+1+runes > maxChars {
			lines = append(lines, line)
			line = nil
			length = 0
		}
		if len(line) > 0 {
			length++
		}
		line = append(line, w)
		length += runes
	}
	if len(line) > 0 {
		lines = append(lines, line)
	}
	return lines
}
