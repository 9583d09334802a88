package layout

// Options configures one formatting pass. The zero value is usable:
// unset widths fall back to defaults.
type Options struct {
	// MaxLineWidth is the column limit breaks try to honor.
	MaxLineWidth int
	// IndentWidth is the width of one indentation unit in spaces.
	IndentWidth int
	// MaxBlankLines caps runs of blank lines produced by soft and elective
	// newlines. Hard newlines are exempt. Zero means no blank lines.
	MaxBlankLines int
	// RespectDiscretionary preserves blank lines present in the original
	// source at discretionary break points.
	RespectDiscretionary bool
}

func (o Options) withDefaults() Options {
	if o.MaxLineWidth == 0 {
		o.MaxLineWidth = 100
	}
	if o.IndentWidth == 0 {
		o.IndentWidth = 4
	}
	return o
}
