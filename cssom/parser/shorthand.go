package parser

import (
	"strings"

	"github.com/wechat-miniprogram/float-pigment-sub002/cssval"
)

// shorthandLonghands maps a shorthand property name to the longhands it
// expands into, in the CSS "top right bottom left" (or equivalent) order
// a space-separated value list supplies them in. This generalizes the
// teacher's SplitCompoundProperty (margin/padding only) to the wider set
// of box-model and flex shorthands spec §4 names.
var shorthandLonghands = map[string][]string{
	"margin":       {"margin-top", "margin-right", "margin-bottom", "margin-left"},
	"padding":      {"padding-top", "padding-right", "padding-bottom", "padding-left"},
	"border-width": {"border-top-width", "border-right-width", "border-bottom-width", "border-left-width"},
	"border-color": {"border-top-color", "border-right-color", "border-bottom-color", "border-left-color"},
	"gap":          {"row-gap", "column-gap"},
	"inset":        {"top", "right", "bottom", "left"},
}

// expandShorthand turns one "prop: value" declaration into a DeclDebugGroup
// PropertyMeta carrying the expanded longhands, following the 1/2/3/4-value
// CSS box-edge expansion rule: a single value applies to all four edges, two
// values apply (top/bottom, right/left), three apply (top, right/left,
// bottom), four apply in top/right/bottom/left order.
//
// A shorthand carrying an unresolved var() reference (e.g. "margin: var(--m)
// var(--n)") can't be split into longhands yet; it is recorded as a
// VarInShorthand global value on a single placeholder longhand (spec §6's
// "shorthand variable substitution" edge case). The cascade skips
// var-carrying values, so no longhand is set from such a declaration.
func expandShorthand(prop, text string) cssval.PropertyMeta {
	longhandNames := shorthandLonghands[prop]
	if name, isVar := soleVarRef(text); !isVar {
		if containsVarRef(text) {
			return cssval.PropertyMeta{
				Kind:          cssval.DeclDebugGroup,
				ShorthandText: text,
				Longhands: []cssval.Declaration{{
					Property: longhandNames[0],
					Value:    cssval.VarInShorthand[cssval.PropertyValue](prop, firstVarName(text)),
				}},
			}
		}
	} else {
		return cssval.PropertyMeta{
			Kind:          cssval.DeclDebugGroup,
			ShorthandText: text,
			Longhands: []cssval.Declaration{{
				Property: longhandNames[0],
				Value:    cssval.VarInShorthand[cssval.PropertyValue](prop, name),
			}},
		}
	}
	fields := strings.Fields(text)
	var edges []string
	switch len(fields) {
	case 1:
		edges = []string{fields[0], fields[0], fields[0], fields[0]}
	case 2:
		edges = []string{fields[0], fields[1], fields[0], fields[1]}
	case 3:
		edges = []string{fields[0], fields[1], fields[2], fields[1]}
	case 4:
		edges = fields
	default:
		edges = nil
	}
	if len(longhandNames) == 2 {
		switch len(fields) {
		case 1:
			edges = []string{fields[0], fields[0]}
		case 2:
			edges = fields
		default:
			edges = nil
		}
	}
	if edges == nil {
		return cssval.PropertyMeta{Kind: cssval.DeclDebugGroup, ShorthandText: text, Disabled: true}
	}
	longhands := make([]cssval.Declaration, len(longhandNames))
	for i, name := range longhandNames {
		longhands[i] = cssval.Declaration{Property: name, Value: parseValue(name, edges[i])}
	}
	return cssval.PropertyMeta{Kind: cssval.DeclDebugGroup, ShorthandText: text, Longhands: longhands}
}

func containsVarRef(text string) bool {
	return strings.Contains(text, "var(")
}

// firstVarName extracts the first var(--name, ...) reference's name from a
// larger value string, used for the VarInShorthand placeholder when a
// shorthand's value isn't a sole var() reference (e.g. has a fallback list
// around it) but still contains exactly one variable to track.
func firstVarName(text string) string {
	idx := strings.Index(text, "var(")
	if idx < 0 {
		return ""
	}
	inner := text[idx+4:]
	end := strings.IndexAny(inner, ",)")
	if end < 0 {
		return strings.TrimSpace(inner)
	}
	return strings.TrimSpace(inner[:end])
}
