package layout

// breakControl is the disable/enable counter gating break firing. Hard
// newlines ignore it; suppressing a forced newline would corrupt output.
type breakControl struct {
	depth int
}

func (c *breakControl) disable() { c.depth++ }

// enable decrements the counter. An unmatched enable is a no-op rather than
// an error.
func (c *breakControl) enable() {
	if c.depth > 0 {
		c.depth--
	}
}

// suppressed reports whether non-hard breaks are currently forbidden.
func (c *breakControl) suppressed() bool { return c.depth > 0 }
