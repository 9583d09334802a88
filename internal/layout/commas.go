package layout

// regionFrame records whether a comma-delimited region has produced a
// newline. The answer is only known at region end, which is why the emitter
// patches the already-emitted tail rather than deciding up front.
type regionFrame struct {
	spannedMultipleLines bool
}

// regionTracker maintains the stack of open comma regions.
type regionTracker struct {
	frames []regionFrame
}

func (r *regionTracker) push() {
	r.frames = append(r.frames, regionFrame{})
}

// pop removes the innermost region and reports whether it spanned multiple
// lines. ok is false when no region is open.
func (r *regionTracker) pop() (spanned, ok bool) {
	if len(r.frames) == 0 {
		return false, false
	}
	f := r.frames[len(r.frames)-1]
	r.frames = r.frames[:len(r.frames)-1]
	return f.spannedMultipleLines, true
}

// noteNewline marks every open region, innermost and enclosing alike, as
// spanning multiple lines.
func (r *regionTracker) noteNewline() {
	for i := range r.frames {
		r.frames[i].spannedMultipleLines = true
	}
}

func (r *regionTracker) open() int { return len(r.frames) }
