package cssom

import "strings"

// MatchQuery reports whether any group of Selector s matches the query
// chain, right-to-left per spec §4.4 step 5: "run fragment matching
// right-to-left against query, consuming ancestors through the relation
// chain."
func (s *Selector) MatchQuery(query StyleQuery) bool {
	if len(query) == 0 {
		return false
	}
	last := len(query) - 1
	for _, group := range s.Groups {
		if matchChain(group, query, last, s.Scope) {
			return true
		}
	}
	return false
}

// matchChain tests fragment frag (and, transitively, its ancestor chain)
// against query, with frag anchored at query[idx].
func matchChain(frag *SelectorFragment, query StyleQuery, idx int, scope uint64) bool {
	if idx < 0 || idx >= len(query) {
		return false
	}
	if !matchFragmentSelf(frag, query[idx], scope) {
		return false
	}
	if frag.Parent == nil {
		return true
	}
	switch frag.Relation {
	case RelationDirectParent:
		return idx > 0 && matchChain(frag.Parent, query, idx-1, scope)
	case RelationAncestor:
		for j := idx - 1; j >= 0; j-- {
			if matchChain(frag.Parent, query, j, scope) {
				return true
			}
		}
		return false
	case RelationNextSibling:
		sib, ok := precedingSiblingOf(query[idx])
		return ok && matchFragmentSelf(frag.Parent, sib, scope)
	case RelationSubsequentSibling:
		sib, ok := precedingSiblingOf(query[idx])
		for ok {
			if matchFragmentSelf(frag.Parent, sib, scope) {
				return true
			}
			sib, ok = precedingSiblingOf(sib)
		}
		return false
	default:
		return true
	}
}

func precedingSiblingOf(n StyleNode) (StyleNode, bool) {
	sn, ok := n.(SiblingStyleNode)
	if !ok {
		return nil, false
	}
	return sn.PrecedingSibling()
}

// matchFragmentSelf tests a single compound selector fragment's own
// constraints (tag/id/classes/attrs/pseudo) against one node, honoring the
// class-scope rule from spec §4.4: "A class selector .c with scope S on
// the selector side matches only classes on N that have scope None or S."
func matchFragmentSelf(frag *SelectorFragment, node StyleNode, scope uint64) bool {
	skipTagIDAttr := false
	if reject, applicable := cascadiaFastReject(frag, node); applicable {
		if reject {
			return false
		}
		skipTagIDAttr = true // cascadia already confirmed tag/id/attr match
	}
	if !skipTagIDAttr {
		if frag.TagName != "" && frag.TagName != "*" && !strings.EqualFold(frag.TagName, node.TagName()) {
			return false
		}
		if frag.ID != "" && frag.ID != node.ID() {
			return false
		}
		for _, attr := range frag.Attributes {
			val, ok := node.AttributeValue(attr.Name)
			if !matchAttr(attr, val, ok) {
				return false
			}
		}
	}
	if len(frag.Classes) > 0 {
		nodeClasses := node.Classes()
		for _, want := range frag.Classes {
			if !hasScopedClass(nodeClasses, want, scope) {
				return false
			}
		}
	}
	for _, pc := range frag.PseudoClasses {
		if !matchPseudoClass(pc, node) {
			return false
		}
	}
	if frag.PseudoElement != PseudoElementNone && frag.PseudoElement != node.PseudoElement() {
		return false
	}
	return true
}

func hasScopedClass(have []ScopedClass, want string, selectorScope uint64) bool {
	for _, c := range have {
		if c.Name == want && (c.Scope == 0 || c.Scope == selectorScope) {
			return true
		}
	}
	return false
}

func matchAttr(a AttrSelector, val string, present bool) bool {
	if a.Match == AttrSet {
		return present
	}
	if !present {
		return false
	}
	v, want := val, a.Value
	if !a.CaseSensitive {
		v, want = strings.ToLower(v), strings.ToLower(want)
	}
	switch a.Match {
	case AttrExact:
		return v == want
	case AttrList:
		for _, tok := range strings.Fields(v) {
			if tok == want {
				return true
			}
		}
		return false
	case AttrHyphen:
		return v == want || strings.HasPrefix(v, want+"-")
	case AttrBegin:
		return strings.HasPrefix(v, want)
	case AttrEnd:
		return strings.HasSuffix(v, want)
	case AttrContain:
		return strings.Contains(v, want)
	}
	return false
}

// RichStyleNode optionally exposes structural information (sibling index,
// sibling count, tag-sibling position) needed for the Nth*/first/last/
// empty/only pseudo-classes. Nodes that don't implement it simply never
// match those pseudo-classes (they degrade to false, never to a false
// positive).
type RichStyleNode interface {
	StyleNode
	SiblingIndex() int      // 0-based position among all siblings
	SiblingCount() int      // total sibling count (including self)
	TagSiblingIndex() int   // 0-based position among same-tag siblings
	TagSiblingCount() int   // total same-tag sibling count
	ChildCount() int
}

func matchPseudoClass(pc PseudoClass, node StyleNode) bool {
	switch pc.Kind {
	case PseudoHost:
		return node.HostStyleScope() != 0
	case PseudoEmpty:
		rn, ok := node.(RichStyleNode)
		return ok && rn.ChildCount() == 0
	case PseudoFirst:
		rn, ok := node.(RichStyleNode)
		return ok && rn.SiblingIndex() == 0
	case PseudoLast:
		rn, ok := node.(RichStyleNode)
		return ok && rn.SiblingIndex() == rn.SiblingCount()-1
	case PseudoOnly:
		rn, ok := node.(RichStyleNode)
		return ok && rn.SiblingCount() == 1
	case PseudoNthChild:
		rn, ok := node.(RichStyleNode)
		return ok && matchNth(pc.A, pc.B, rn.SiblingIndex())
	case PseudoNthOfType:
		rn, ok := node.(RichStyleNode)
		return ok && matchNth(pc.A, pc.B, rn.TagSiblingIndex())
	case PseudoNot:
		if pc.Of == nil {
			return true
		}
		return !matchFragmentSelf(pc.Of, node, 0)
	}
	return true
}

// matchNth reports whether the 1-based position (index+1) satisfies
// an+b for some non-negative integer n.
func matchNth(a, b, zeroBasedIndex int) bool {
	pos := zeroBasedIndex + 1
	if a == 0 {
		return pos == b
	}
	n := pos - b
	if n%a != 0 {
		return false
	}
	return n/a >= 0
}
