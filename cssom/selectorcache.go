package cssom

import (
	"strings"
	"sync"

	"github.com/andybalholm/cascadia"
	"golang.org/x/net/html"
)

// compiledSelectorCache memoizes github.com/andybalholm/cascadia compiled
// selectors keyed by the canonical CSS text of a fragment's own tag/id/attr
// constraints, the same "parse once, match many" cache the teacher keeps in
// cssom.go's rulesTreeType.selectors. Compilation happens at most once per
// distinct fragment shape; MatchQuery may be called once per node per rule
// per cascade pass, so paying douceur/cascadia's parse cost here instead of
// per-match matters.
type compiledSelectorCache struct {
	mu      sync.RWMutex
	entries map[string]cascadia.Sel
}

var fragmentSelCache = &compiledSelectorCache{entries: make(map[string]cascadia.Sel)}

// get returns the compiled selector for text, compiling and caching it on
// first use. A nil return (recorded in the cache too, so the failed
// compile isn't retried) means text fell outside the subset cascadia
// accepts, or was otherwise unusable as a fast path.
func (c *compiledSelectorCache) get(text string) cascadia.Sel {
	c.mu.RLock()
	sel, ok := c.entries[text]
	c.mu.RUnlock()
	if ok {
		return sel
	}
	compiled, err := cascadia.Compile(text)
	c.mu.Lock()
	if err == nil {
		c.entries[text] = compiled
		sel = compiled
	} else {
		c.entries[text] = nil
	}
	c.mu.Unlock()
	return sel
}

// fragmentCascadiaText builds the compound-selector text for the portion of
// frag cascadia can express: tag name, id, and attribute selectors. Classes
// are deliberately excluded — this engine's classes carry an optional style
// scope (spec §4.4's style_scope/extra_style_scope/host_style_scope triple)
// that cascadia has no concept of, so hasScopedClass always does that check
// directly. Pseudo-elements and the structural pseudo-classes are excluded
// too, for the same reason: cascadia's :nth-child etc. operate against a
// real DOM tree, not this engine's StyleNode abstraction. Returns ok=false
// for a pseudo-element fragment or an attribute match cascadia cannot
// express; a fragment with no tag, id or attribute yields "*" and ok=true.
func fragmentCascadiaText(frag *SelectorFragment) (string, bool) {
	if frag.PseudoElement != PseudoElementNone {
		return "", false
	}
	var sb strings.Builder
	if frag.TagName != "" && frag.TagName != "*" {
		sb.WriteString(frag.TagName)
	} else {
		sb.WriteString("*")
	}
	if frag.ID != "" {
		sb.WriteString("#")
		sb.WriteString(frag.ID)
	}
	for _, a := range frag.Attributes {
		text, ok := attrCascadiaText(a)
		if !ok {
			return "", false
		}
		sb.WriteString(text)
	}
	return sb.String(), true
}

func attrCascadiaText(a AttrSelector) (string, bool) {
	if a.Match == AttrSet {
		return "[" + a.Name + "]", true
	}
	var op string
	switch a.Match {
	case AttrExact:
		op = "="
	case AttrList:
		op = "~="
	case AttrHyphen:
		op = "|="
	case AttrBegin:
		op = "^="
	case AttrEnd:
		op = "$="
	case AttrContain:
		op = "*="
	default:
		return "", false
	}
	return "[" + a.Name + op + `"` + strings.ReplaceAll(a.Value, `"`, `\"`) + `"]`, true
}

// cascadiaFastReject runs frag's tag/id/attr portion through the compiled
// cascadia selector cache against a synthetic golang.org/x/net/html.Node
// built from node's own tag/id/attributes. applicable is false when
// fragmentCascadiaText returns ok=false or the text fails to compile, in
// which case the caller falls through to the hand-rolled check
// unconditionally; a pure class fragment is tested as "*" and never
// rejected.
func cascadiaFastReject(frag *SelectorFragment, node StyleNode) (reject, applicable bool) {
	text, ok := fragmentCascadiaText(frag)
	if !ok {
		return false, false
	}
	sel := fragmentSelCache.get(text)
	if sel == nil {
		return false, false
	}
	hn := &html.Node{Type: html.ElementNode, Data: node.TagName()}
	if id := node.ID(); id != "" {
		hn.Attr = append(hn.Attr, html.Attribute{Key: "id", Val: id})
	}
	for _, a := range frag.Attributes {
		if val, present := node.AttributeValue(a.Name); present {
			hn.Attr = append(hn.Attr, html.Attribute{Key: a.Name, Val: val})
		}
	}
	return !sel.Match(hn), true
}
