/*
Package trace centralizes the tracing/logging hooks for the CSS and layout
engines, exactly the way every package under the teacher's dom/style tree
retrieves a logger:

	func tracer() tracing.Trace {
		return tracing.Select("tyse.dom")
	}

Each package in this module defines its own small tracer() wrapper with a
package-specific scope name, calling github.com/npillmayer/schuko/tracing's
Select directly, so that callers of schuko/tracing can configure verbosity
per subsystem. No package in this module imports this one.
*/
package trace

import (
	"github.com/npillmayer/schuko/tracing"
)

// Select returns a tracer for a given dotted scope name, e.g. "css.parser"
// or "css.layout.flex". It is a thin re-export of tracing.Select.
func Select(scope string) tracing.Trace {
	return tracing.Select(scope)
}
