/*
Package wire implements the CompiledStyleSheet binary codec: spec §4.2's
compact, fixed-width, segment-framed format with a side-channel string
pool and an optional zero-copy decode path.

This package is new relative to the teacher (npillmayer/fp has no wire
format) and is grounded on
_examples/original_source/float-pigment-consistent-bincode/src/de/mod.rs
and float-pigment-css-macro/src/compatibility_check.rs for exact semantics:
the SegmentSizeLimit reader-barrier stack, forward-compatible tail-skip,
and the build-time struct/enum hash used to reject incompatible wire
changes. It reuses this module's own strpool package for the string
side-channel rather than inventing a second interning scheme.
*/
package wire

import "github.com/npillmayer/schuko/tracing"

func tracer() tracing.Trace {
	return tracing.Select("css.wire")
}
