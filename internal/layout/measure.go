package layout

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// fitsFlat reports whether the tokens from position from up to the close of
// the group opened immediately before it can render on one line within
// remaining columns. Breaks contribute their inline size and never a
// newline; hard newlines, end-of-line comments, and multi-line verbatim
// content can never render flat. Nested groups are measured transparently.
// The scan has no side effects.
func fitsFlat(tokens []Token, from, remaining int) bool {
	if remaining < 0 {
		return false
	}
	width := 0
	depth := 0
	for i := from; i < len(tokens); i++ {
		tok := tokens[i]
		switch tok.Kind {
		case KindOpenGroup:
			depth++
		case KindCloseGroup:
			if depth == 0 {
				return width <= remaining
			}
			depth--
		case KindText, KindComment, KindVerbatim:
			if tok.EndOfLine {
				return false
			}
			if strings.ContainsRune(tok.Text, '\n') {
				return false
			}
			width += runewidth.StringWidth(tok.Text)
		case KindBreak:
			if tok.Newline.Kind == NewlineHard {
				return false
			}
			width += tok.Size
		case KindSpace:
			width += tok.Size
		}
		if width > remaining {
			return false
		}
	}
	// Unbalanced stream; the engine reports it when it gets there.
	return width <= remaining
}

// fitsUntilNextBreak reports whether the content from position from up to
// the next break, or the close of the enclosing group, fits within
// remaining columns. Used to decide a single break inside an inconsistent
// group in isolation.
func fitsUntilNextBreak(tokens []Token, from, remaining int) bool {
	if remaining < 0 {
		return false
	}
	width := 0
	depth := 0
	for i := from; i < len(tokens); i++ {
		tok := tokens[i]
		switch tok.Kind {
		case KindOpenGroup:
			depth++
		case KindCloseGroup:
			if depth == 0 {
				return width <= remaining
			}
			depth--
		case KindBreak:
			return width <= remaining
		case KindText, KindComment, KindVerbatim:
			if strings.ContainsRune(tok.Text, '\n') {
				return width <= remaining
			}
			width += runewidth.StringWidth(tok.Text)
		case KindSpace:
			width += tok.Size
		}
		if width > remaining {
			return false
		}
	}
	return width <= remaining
}
