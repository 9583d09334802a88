package layout

// groupFrame is the engine's record of one open group, pushed on open and
// popped on the matching close.
type groupFrame struct {
	style        GroupStyle
	startColumn  int
	forcedBroken bool
}

// engine is the single-pass break decision state machine. One instance
// formats one token stream; nothing is shared or reused across passes.
type engine struct {
	tokens  []Token
	opt     Options
	out     *emitter
	groups  []groupFrame
	indents *indentStack
	control breakControl
	regions regionTracker

	// pendingHard is set by an end-of-line comment: the next break fires as
	// hard(1) regardless of what it declared, because nothing may share the
	// comment's line.
	pendingHard bool
}

// Format runs one left-to-right pass over the token stream and returns the
// formatted text. Decisions are greedy; once a break has fired or stayed
// inline it is never revisited. Unbalanced groups or comma regions are
// producer bugs and fail the whole pass.
func Format(tokens []Token, opt Options) ([]byte, error) {
	opt = opt.withDefaults()
	e := &engine{
		tokens:  tokens,
		opt:     opt,
		out:     newEmitter(opt.MaxBlankLines),
		indents: newIndentStack(opt.IndentWidth),
	}
	if err := e.run(); err != nil {
		return nil, err
	}
	return e.out.bytes(), nil
}

func (e *engine) run() error {
	for i, tok := range e.tokens {
		lineBefore := e.out.line
		switch tok.Kind {
		case KindText:
			e.out.text(tok.Text)
		case KindOpenGroup:
			remaining := e.opt.MaxLineWidth - e.out.column
			fits := fitsFlat(e.tokens, i+1, remaining)
			e.groups = append(e.groups, groupFrame{
				style:        tok.Style,
				startColumn:  e.out.column,
				forcedBroken: tok.Style == Consistent && !fits,
			})
		case KindCloseGroup:
			if len(e.groups) == 0 {
				return unbalancedAt(ErrUnbalancedGroup, i)
			}
			e.groups = e.groups[:len(e.groups)-1]
		case KindBreak:
			e.processBreak(i, tok)
		case KindSpace:
			if tok.Flexible && e.out.atLineStart {
				break
			}
			e.out.spaces(tok.Size)
		case KindComment:
			e.out.text(tok.Text)
			if tok.EndOfLine {
				e.pendingHard = true
			}
		case KindVerbatim:
			e.out.verbatim(tok.Text)
		case KindControl:
			if tok.Control == DisableBreaking {
				e.control.disable()
			} else {
				e.control.enable()
			}
		case KindCommaStart:
			e.regions.push()
		case KindCommaEnd:
			spanned, ok := e.regions.pop()
			if !ok {
				return unbalancedAt(ErrUnbalancedRegion, i)
			}
			if spanned {
				e.out.ensureTrailingComma()
			} else {
				e.out.stripTrailingComma()
			}
		}
		if e.out.line != lineBefore {
			e.regions.noteNewline()
		}
	}
	if len(e.groups) != 0 {
		return unbalancedAt(ErrUnbalancedGroup, len(e.tokens))
	}
	if e.regions.open() != 0 {
		return unbalancedAt(ErrUnbalancedRegion, len(e.tokens))
	}
	return nil
}

func (e *engine) processBreak(i int, tok Token) {
	nl := tok.Newline
	if e.pendingHard {
		nl = Hard(1)
		e.pendingHard = false
	}
	hard := nl.Kind == NewlineHard

	var frame *groupFrame
	if len(e.groups) > 0 {
		frame = &e.groups[len(e.groups)-1]
	}

	fire := hard
	if !fire && !e.control.suppressed() {
		switch {
		case frame != nil && frame.forcedBroken:
			fire = true
		case nl.Kind == NewlineSoft && !nl.Discretionary:
			fire = true
		case nl.Kind == NewlineSoft && e.opt.RespectDiscretionary && tok.SourceBlanks > 0:
			fire = true
		case tok.Break == BreakClose && tok.MustBreak && e.out.line != e.indents.top().openLine:
			fire = true
		case tok.Break == BreakReset && e.indents.inContinuation():
			fire = true
		case frame == nil || frame.style == Inconsistent:
			remaining := e.opt.MaxLineWidth - e.out.column - tok.Size
			fire = !fitsUntilNextBreak(e.tokens, i+1, remaining)
		}
	}

	switch tok.Break {
	case BreakOpen:
		if tok.Indent == IndentBlock {
			e.indents.pushBlock(fire, e.out.line)
		} else {
			e.indents.pushContinuation(fire, e.out.line)
		}
	case BreakClose:
		e.indents.pop()
	case BreakContinue:
		if fire {
			e.indents.markContinuation()
		}
	case BreakSame, BreakReset:
		if fire {
			e.indents.clearContinuation()
		}
	}

	if !fire {
		e.out.spaces(tok.Size)
		return
	}

	e.out.setIndent(e.indents.lineIndent())
	e.out.newlines(e.newlineCount(nl, tok.SourceBlanks), hard)
}

// newlineCount resolves how many newlines a fired break asks for, before
// the emitter applies the blank-line cap.
func (e *engine) newlineCount(nl Newline, sourceBlanks int) int {
	n := max(1, nl.Count)
	switch nl.Kind {
	case NewlineSoft:
		if nl.Discretionary && e.opt.RespectDiscretionary && sourceBlanks > 0 {
			n = sourceBlanks
		}
	case NewlineElective:
		if !nl.IgnoresDiscretionary && e.opt.RespectDiscretionary && sourceBlanks > 1 {
			n = sourceBlanks
		}
	}
	return n
}
