/*
Package cssom implements the style engine's object model: rules, selectors,
stylesheets, the import graph and the cascade/query engine that resolves a
StyleQuery chain into a merged NodeProperties record.

The package follows the layering of the teacher's dom/style/cssom package
(CSSOM -> rulesTreeType -> matchRuleForHTMLNode/FilterMatchesFor) but
generalizes it from an HTML-parse-tree-only model to the spec's own
scope-tagged SelectorFragment chain and packed-u64 cascade weight. The
relation-chain walk (Ancestor/DirectParent/NextSibling/SubsequentSibling)
and the scope-qualified class check are hand-rolled, since
github.com/andybalholm/cascadia has no notion of either; but the tag/id/attr
portion of a single fragment is backed by a compiled-selector cache over
cascadia itself (selectorcache.go), mirroring the teacher's own
rulesTreeType.selectors cache, falling back to the hand-rolled check for any
fragment shape cascadia can't express.
*/
package cssom

import "github.com/npillmayer/schuko/tracing"

func tracer() tracing.Trace {
	return tracing.Select("css.cssom")
}
