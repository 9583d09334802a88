// Package stream is the interchange boundary between token producers and
// the layout engine: a versioned msgpack encoding of layout token slices.
//
// It does not interpret tokens beyond validating enum ranges; layout
// semantics live in internal/layout.
package stream
