package layout

// Kind represents the category of a layout token.
type Kind uint8

const (
	// Invalid indicates an erroneous token.
	Invalid Kind = iota
	// KindText represents literal characters emitted verbatim.
	KindText
	// KindOpenGroup begins a nested breaking scope.
	KindOpenGroup
	// KindCloseGroup ends the innermost open scope.
	KindCloseGroup
	// KindBreak represents a point where a newline may or must occur.
	KindBreak
	// KindSpace represents literal inline spacing.
	KindSpace
	// KindComment represents comment text carried through unchanged.
	KindComment
	// KindVerbatim represents multi-line literal content.
	KindVerbatim
	// KindControl toggles the global break suppression counter.
	KindControl
	// KindCommaStart opens a comma-delimited region.
	KindCommaStart
	// KindCommaEnd closes the innermost comma-delimited region.
	KindCommaEnd
)

// GroupStyle selects how the breaks directly inside a group are decided.
type GroupStyle uint8

const (
	// Consistent groups break all-or-nothing: if the group does not fit
	// flat, every direct break inside it fires.
	Consistent GroupStyle = iota
	// Inconsistent groups decide each break independently by local fit.
	Inconsistent
)

// BreakKind describes what a break does to the indentation stack.
type BreakKind uint8

const (
	// BreakOpen pushes a new indentation level.
	BreakOpen BreakKind = iota
	// BreakClose pops back to the level active before the matching open.
	BreakClose
	// BreakContinue marks the current level as a continuation without pushing.
	BreakContinue
	// BreakSame aligns to the current base and clears continuation state.
	BreakSame
	// BreakReset ends an active continuation, forcing a newline if one is active.
	BreakReset
)

// IndentMode selects how an open break computes the pushed level.
type IndentMode uint8

const (
	// IndentBlock always adds one indentation unit when the break fires.
	IndentBlock IndentMode = iota
	// IndentContinuation adds a unit only when the break fires or a
	// continuation is already active.
	IndentContinuation
)

// NewlineKind classifies the newline behavior of a break.
type NewlineKind uint8

const (
	// NewlineElective emits exactly one newline when the break fires.
	NewlineElective NewlineKind = iota
	// NewlineSoft emits up to Count newlines, collapsed against the
	// configured blank-line maximum.
	NewlineSoft
	// NewlineHard emits exactly Count newlines unconditionally and cannot
	// be suppressed.
	NewlineHard
)

// ControlKind selects a printer control operation.
type ControlKind uint8

const (
	// DisableBreaking increments the break suppression counter.
	DisableBreaking ControlKind = iota
	// EnableBreaking decrements the counter, never below zero.
	EnableBreaking
)

// Newline describes how many newlines a break produces when it fires and
// whether the count defers to the spacing observed in the original source.
type Newline struct {
	Kind  NewlineKind
	Count int
	// Discretionary applies to soft newlines: honor the source spacing
	// recorded on the token instead of the literal count.
	Discretionary bool
	// IgnoresDiscretionary applies to elective newlines: when false, a
	// blank line is only produced if the source had one at this position.
	IgnoresDiscretionary bool
}

// Elective returns an elective newline behavior.
func Elective(ignoresDiscretionary bool) Newline {
	return Newline{Kind: NewlineElective, Count: 1, IgnoresDiscretionary: ignoresDiscretionary}
}

// Soft returns a soft newline behavior emitting up to count newlines.
func Soft(count int, discretionary bool) Newline {
	return Newline{Kind: NewlineSoft, Count: count, Discretionary: discretionary}
}

// Hard returns an unconditional newline behavior emitting exactly count newlines.
func Hard(count int) Newline {
	return Newline{Kind: NewlineHard, Count: count}
}

// Token is a single layout instruction. Producers build an ordered slice of
// tokens with balanced groups and comma regions; the engine consumes the
// slice exactly once, left to right.
type Token struct {
	Kind Kind

	// Text carries the payload of text, comment, and verbatim tokens.
	Text string

	// Style applies to open-group tokens.
	Style GroupStyle

	// Break, Indent, and MustBreak apply to break tokens. MustBreak forces
	// a close break onto its own line when the close ends up on a different
	// output line than its matching open.
	Break     BreakKind
	Indent    IndentMode
	MustBreak bool

	// Size is the inline width of a break that does not fire, or of a
	// space token.
	Size int

	// Newline applies to break tokens.
	Newline Newline

	// SourceBlanks is the number of newlines the original source had at
	// this position. Discretionary behaviors consult it.
	SourceBlanks int

	// Flexible spaces collapse to nothing at the start of a line.
	Flexible bool

	// EndOfLine marks a comment that must be followed by a newline before
	// any further break may stay elective.
	EndOfLine bool

	// HadTrailingComma applies to comma-region end tokens and records
	// whether the source already carried a trailing comma.
	HadTrailingComma bool

	// Control applies to printer-control tokens.
	Control ControlKind
}

// Text returns a literal text token.
func Text(content string) Token {
	return Token{Kind: KindText, Text: content}
}

// OpenGroup returns a token beginning a nested scope with the given style.
func OpenGroup(style GroupStyle) Token {
	return Token{Kind: KindOpenGroup, Style: style}
}

// CloseGroup returns a token ending the innermost open scope.
func CloseGroup() Token {
	return Token{Kind: KindCloseGroup}
}

// OpenBreak returns a break that pushes an indentation level.
func OpenBreak(mode IndentMode, size int, nl Newline) Token {
	return Token{Kind: KindBreak, Break: BreakOpen, Indent: mode, Size: size, Newline: nl}
}

// CloseBreak returns a break that pops back to the level before the matching
// open break. When mustBreak is true and the close lands on a different
// output line than its open, a newline is forced regardless of width.
func CloseBreak(mustBreak bool, size int, nl Newline) Token {
	return Token{Kind: KindBreak, Break: BreakClose, MustBreak: mustBreak, Size: size, Newline: nl}
}

// ContinueBreak returns a break marking subsequent lines as continuations.
func ContinueBreak(size int, nl Newline) Token {
	return Token{Kind: KindBreak, Break: BreakContinue, Size: size, Newline: nl}
}

// SameBreak returns a break aligning to the current base indentation.
func SameBreak(size int, nl Newline) Token {
	return Token{Kind: KindBreak, Break: BreakSame, Size: size, Newline: nl}
}

// ResetBreak returns a break that ends an active continuation.
func ResetBreak(size int, nl Newline) Token {
	return Token{Kind: KindBreak, Break: BreakReset, Size: size, Newline: nl}
}

// Space returns a spacing token of the given width. Flexible spaces vanish
// when they would be the first content on a line.
func Space(size int, flexible bool) Token {
	return Token{Kind: KindSpace, Size: size, Flexible: flexible}
}

// Comment returns a comment token. End-of-line comments force a newline
// after them.
func Comment(content string, endOfLine bool) Token {
	return Token{Kind: KindComment, Text: content, EndOfLine: endOfLine}
}

// Verbatim returns a multi-line literal token whose embedded newlines reset
// column tracking without going through break decisions.
func Verbatim(content string) Token {
	return Token{Kind: KindVerbatim, Text: content}
}

// Disable returns a control token suppressing all non-hard breaks.
func Disable() Token {
	return Token{Kind: KindControl, Control: DisableBreaking}
}

// Enable returns a control token lifting one level of break suppression.
func Enable() Token {
	return Token{Kind: KindControl, Control: EnableBreaking}
}

// CommaRegionStart returns a token opening a comma-delimited region.
func CommaRegionStart() Token {
	return Token{Kind: KindCommaStart}
}

// CommaRegionEnd returns a token closing the innermost comma region.
// hadTrailingComma records whether the source ended the list with a comma.
func CommaRegionEnd(hadTrailingComma bool) Token {
	return Token{Kind: KindCommaEnd, HadTrailingComma: hadTrailingComma}
}

// IsBreak reports whether the token is a break of any kind.
func (t Token) IsBreak() bool { return t.Kind == KindBreak }

// IsHard reports whether the token is a break carrying a hard newline.
func (t Token) IsHard() bool {
	return t.Kind == KindBreak && t.Newline.Kind == NewlineHard
}
