package stream

import (
	"errors"
	"fmt"

	"fortio.org/safecast"
	"github.com/vmihailenco/msgpack/v5"
	"golang.org/x/text/unicode/norm"

	"platen/internal/layout"
)

// Current schema version - increment when the wire format changes.
const schemaVersion uint16 = 1

var (
	// ErrSchema indicates a stream encoded with an unknown schema version.
	ErrSchema = errors.New("stream: unsupported schema version")
	// ErrMalformed indicates a stream with out-of-range token fields.
	ErrMalformed = errors.New("stream: malformed token")
)

// payload is the on-wire shape of an encoded token stream.
type payload struct {
	Schema uint16      `msgpack:"schema"`
	Tokens []wireToken `msgpack:"tokens"`
}

// wireToken flattens layout.Token for msgpack. Field names are kept short;
// streams are produced and consumed by machines only.
type wireToken struct {
	Kind     uint8  `msgpack:"k"`
	Text     string `msgpack:"t,omitempty"`
	Style    uint8  `msgpack:"g,omitempty"`
	Break    uint8  `msgpack:"b,omitempty"`
	Indent   uint8  `msgpack:"i,omitempty"`
	Must     bool   `msgpack:"m,omitempty"`
	Size     int32  `msgpack:"s,omitempty"`
	Newline  uint8  `msgpack:"n,omitempty"`
	Count    int32  `msgpack:"c,omitempty"`
	Disc     bool   `msgpack:"d,omitempty"`
	IgnDisc  bool   `msgpack:"x,omitempty"`
	Blanks   int32  `msgpack:"w,omitempty"`
	Flexible bool   `msgpack:"f,omitempty"`
	EOL      bool   `msgpack:"e,omitempty"`
	Trailing bool   `msgpack:"r,omitempty"`
	Control  uint8  `msgpack:"p,omitempty"`
}

// Encode serializes a token stream for transport between a producer and the
// layout engine.
func Encode(tokens []layout.Token) ([]byte, error) {
	p := payload{Schema: schemaVersion, Tokens: make([]wireToken, 0, len(tokens))}
	for i, tok := range tokens {
		size, err := safecast.Conv[int32](tok.Size)
		if err != nil {
			return nil, fmt.Errorf("stream: token %d size: %w", i, err)
		}
		count, err := safecast.Conv[int32](tok.Newline.Count)
		if err != nil {
			return nil, fmt.Errorf("stream: token %d newline count: %w", i, err)
		}
		blanks, err := safecast.Conv[int32](tok.SourceBlanks)
		if err != nil {
			return nil, fmt.Errorf("stream: token %d source blanks: %w", i, err)
		}
		p.Tokens = append(p.Tokens, wireToken{
			Kind:     uint8(tok.Kind),
			Text:     tok.Text,
			Style:    uint8(tok.Style),
			Break:    uint8(tok.Break),
			Indent:   uint8(tok.Indent),
			Must:     tok.MustBreak,
			Size:     size,
			Newline:  uint8(tok.Newline.Kind),
			Count:    count,
			Disc:     tok.Newline.Discretionary,
			IgnDisc:  tok.Newline.IgnoresDiscretionary,
			Blanks:   blanks,
			Flexible: tok.Flexible,
			EOL:      tok.EndOfLine,
			Trailing: tok.HadTrailingComma,
			Control:  uint8(tok.Control),
		})
	}
	return msgpack.Marshal(p)
}

// Decode deserializes a token stream. Text payloads are normalized to NFC so
// width accounting does not depend on how the producer composed its runes.
// Unknown schema versions and out-of-range enum values are rejected.
func Decode(data []byte) ([]layout.Token, error) {
	var p payload
	if err := msgpack.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("stream: %w", err)
	}
	if p.Schema != schemaVersion {
		return nil, fmt.Errorf("%w: %d", ErrSchema, p.Schema)
	}
	tokens := make([]layout.Token, 0, len(p.Tokens))
	for i, wt := range p.Tokens {
		if err := checkRanges(wt); err != nil {
			return nil, fmt.Errorf("%w at index %d: %v", ErrMalformed, i, err)
		}
		tokens = append(tokens, layout.Token{
			Kind:      layout.Kind(wt.Kind),
			Text:      norm.NFC.String(wt.Text),
			Style:     layout.GroupStyle(wt.Style),
			Break:     layout.BreakKind(wt.Break),
			Indent:    layout.IndentMode(wt.Indent),
			MustBreak: wt.Must,
			Size:      int(wt.Size),
			Newline: layout.Newline{
				Kind:                 layout.NewlineKind(wt.Newline),
				Count:                int(wt.Count),
				Discretionary:        wt.Disc,
				IgnoresDiscretionary: wt.IgnDisc,
			},
			SourceBlanks:     int(wt.Blanks),
			Flexible:         wt.Flexible,
			EndOfLine:        wt.EOL,
			HadTrailingComma: wt.Trailing,
			Control:          layout.ControlKind(wt.Control),
		})
	}
	return tokens, nil
}

func checkRanges(wt wireToken) error {
	if wt.Kind == uint8(layout.Invalid) || wt.Kind > uint8(layout.KindCommaEnd) {
		return fmt.Errorf("kind %d out of range", wt.Kind)
	}
	if wt.Style > uint8(layout.Inconsistent) {
		return fmt.Errorf("group style %d out of range", wt.Style)
	}
	if wt.Break > uint8(layout.BreakReset) {
		return fmt.Errorf("break kind %d out of range", wt.Break)
	}
	if wt.Indent > uint8(layout.IndentContinuation) {
		return fmt.Errorf("indent mode %d out of range", wt.Indent)
	}
	if wt.Newline > uint8(layout.NewlineHard) {
		return fmt.Errorf("newline kind %d out of range", wt.Newline)
	}
	if wt.Control > uint8(layout.EnableBreaking) {
		return fmt.Errorf("control kind %d out of range", wt.Control)
	}
	if wt.Size < 0 || wt.Count < 0 || wt.Blanks < 0 {
		return errors.New("negative size field")
	}
	return nil
}
