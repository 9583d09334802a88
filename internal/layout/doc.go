// Package layout decides where line breaks occur in formatted output.
//
// It consumes an ordered stream of layout tokens (text, group boundaries,
// conditional breaks, spacing, comments, verbatim blocks, printer controls,
// and comma regions) and emits text subject to a maximum line width, an
// indentation unit, and a blank-line policy. Groups break consistently
// (all-or-nothing) or inconsistently (each break on its own); the pass is
// single, greedy, and left to right.
//
// The package does not parse source code and does not know any language
// grammar: producing the token stream is the caller's job.
package layout
