package layout

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// emitter accumulates formatted output. The column is tracked in display
// width, not byte length, so wide runes count what they cost on screen.
// Indentation is written lazily at the first content of each line.
type emitter struct {
	buf         []byte
	column      int
	line        int
	indent      int
	atLineStart bool
	maxBlank    int
}

func newEmitter(maxBlank int) *emitter {
	return &emitter{atLineStart: true, maxBlank: maxBlank}
}

func (e *emitter) bytes() []byte { return e.buf }

// setIndent records the indentation for the current or next line start.
func (e *emitter) setIndent(n int) {
	e.indent = n
	if e.atLineStart {
		e.column = n
	}
}

func (e *emitter) writeIndent() {
	if !e.atLineStart {
		return
	}
	for i := 0; i < e.indent; i++ {
		e.buf = append(e.buf, ' ')
	}
	e.column = e.indent
	e.atLineStart = false
}

func (e *emitter) text(s string) {
	if s == "" {
		return
	}
	e.writeIndent()
	e.buf = append(e.buf, s...)
	e.column += runewidth.StringWidth(s)
}

func (e *emitter) spaces(n int) {
	if n <= 0 {
		return
	}
	e.writeIndent()
	for i := 0; i < n; i++ {
		e.buf = append(e.buf, ' ')
	}
	e.column += n
}

// newlines appends n newlines. Unless hard, the run of consecutive newlines
// already at the tail counts against the blank-line cap; hard newlines are
// emitted exactly as requested.
func (e *emitter) newlines(n int, hard bool) {
	e.trimTrailingSpaces()
	if !hard {
		allowed := e.maxBlank + 1 - e.trailingNewlines()
		if n > allowed {
			n = allowed
		}
	}
	for i := 0; i < n; i++ {
		e.buf = append(e.buf, '\n')
		e.line++
	}
	e.atLineStart = true
	e.column = e.indent
}

// verbatim appends literal content. Embedded newlines bypass the blank-line
// cap and reset the column to the active indentation.
func (e *emitter) verbatim(s string) {
	for i, seg := range strings.Split(s, "\n") {
		if i > 0 {
			e.buf = append(e.buf, '\n')
			e.line++
			e.atLineStart = true
			e.column = e.indent
		}
		e.text(seg)
	}
}

func (e *emitter) trimTrailingSpaces() {
	i := len(e.buf)
	for i > 0 && (e.buf[i-1] == ' ' || e.buf[i-1] == '\t') {
		i--
	}
	e.buf = e.buf[:i]
}

func (e *emitter) trailingNewlines() int {
	n := 0
	for i := len(e.buf) - 1; i >= 0 && e.buf[i] == '\n'; i-- {
		n++
	}
	return n
}

// patchPoint returns the offset just past the last non-whitespace byte,
// which is where a trailing comma belongs.
func (e *emitter) patchPoint() int {
	i := len(e.buf)
	for i > 0 {
		switch e.buf[i-1] {
		case ' ', '\t', '\n':
			i--
		default:
			return i
		}
	}
	return 0
}

// ensureTrailingComma splices a comma after the last content byte unless one
// is already there.
func (e *emitter) ensureTrailingComma() {
	i := e.patchPoint()
	if i == 0 || e.buf[i-1] == ',' {
		return
	}
	atEnd := i == len(e.buf)
	e.buf = append(e.buf, 0)
	copy(e.buf[i+1:], e.buf[i:])
	e.buf[i] = ','
	if atEnd && !e.atLineStart {
		e.column++
	}
}

// stripTrailingComma removes a comma sitting after the last content byte.
func (e *emitter) stripTrailingComma() {
	i := e.patchPoint()
	if i == 0 || e.buf[i-1] != ',' {
		return
	}
	atEnd := i == len(e.buf)
	e.buf = append(e.buf[:i-1], e.buf[i:]...)
	if atEnd && !e.atLineStart {
		e.column--
	}
}
