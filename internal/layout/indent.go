package layout

// indentLevel is one entry of the indentation stack. base is the column new
// lines start at; continuation marks lines that continue a logical line and
// carry one extra unit. openLine records the output line the level was
// pushed on, so a close break can tell whether it landed on a different
// line than its open.
type indentLevel struct {
	base         int
	continuation bool
	openLine     int
}

// indentStack tracks active indentation levels. It always holds at least
// the root level.
type indentStack struct {
	levels []indentLevel
	unit   int
}

func newIndentStack(unit int) *indentStack {
	return &indentStack{levels: []indentLevel{{}}, unit: unit}
}

func (s *indentStack) top() *indentLevel {
	return &s.levels[len(s.levels)-1]
}

// lineIndent returns the indentation for a new output line at the current
// level.
func (s *indentStack) lineIndent() int {
	t := s.top()
	if t.continuation {
		return t.base + s.unit
	}
	return t.base
}

// pushBlock pushes the level for a fired or unfired open(block) break.
func (s *indentStack) pushBlock(fired bool, line int) {
	base := s.top().base
	if fired {
		base += s.unit
	}
	s.levels = append(s.levels, indentLevel{base: base, openLine: line})
}

// pushContinuation pushes the level for an open(continuation) break. The
// extra unit applies when a continuation is already active or the break
// fired.
func (s *indentStack) pushContinuation(fired bool, line int) {
	t := s.top()
	base := t.base
	if t.continuation || fired {
		base += s.unit
	}
	s.levels = append(s.levels, indentLevel{base: base, openLine: line})
}

// pop removes the innermost level and returns it. The root level is never
// removed; popping it returns a copy and leaves the stack intact.
func (s *indentStack) pop() indentLevel {
	t := *s.top()
	if len(s.levels) > 1 {
		s.levels = s.levels[:len(s.levels)-1]
	}
	return t
}

// markContinuation flags the current level as a continuation.
func (s *indentStack) markContinuation() {
	s.top().continuation = true
}

// clearContinuation ends an active continuation and reports whether one was
// active.
func (s *indentStack) clearContinuation() bool {
	t := s.top()
	was := t.continuation
	t.continuation = false
	return was
}

func (s *indentStack) inContinuation() bool {
	return s.top().continuation
}
