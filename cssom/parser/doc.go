/*
Package parser turns CSS source text into a *cssom.CompiledStyleSheet,
grounded on npillmayer-fp's dom/style/cssom/douceuradapter package: that
package wraps aymerick/douceur's parser output (css.Stylesheet/css.Rule)
into the teacher's own cssom.StyleSheet/cssom.Rule types, the same "parse
with douceur, adapt into our own types" shape this package follows for the
spec's richer rule/selector/value model.

This package depends on cssom but cssom never imports it back (cssom.
StyleSheetResource.Add takes an already-compiled sheet), so there is no
import cycle.
*/
package parser

import "github.com/npillmayer/schuko/tracing"

func tracer() tracing.Trace {
	return tracing.Select("css.parser")
}
