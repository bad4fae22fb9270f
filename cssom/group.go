package cssom

import "sort"

// StyleSheetGroup is an ordered set of LinkedStyleSheets used as the query
// target, per spec §3.
type StyleSheetGroup struct {
	sheets []*LinkedStyleSheet
}

// NewStyleSheetGroup creates an empty group.
func NewStyleSheetGroup() *StyleSheetGroup {
	return &StyleSheetGroup{}
}

// Append adds an already-linked sheet to the group.
func (g *StyleSheetGroup) Append(sheet *LinkedStyleSheet) {
	g.sheets = append(g.sheets, sheet)
}

// AppendFromResource links path from res under the given scope and appends
// the result to the group, per spec §6
// "StyleSheetGroup::append_from_resource(res, path, scope)".
func (g *StyleSheetGroup) AppendFromResource(res *StyleSheetResource, path string, scope uint64) []Warning {
	linked, warnings := Link(res, NormalizePath(path), scope)
	g.Append(linked)
	return warnings
}

// MatchedRule is one rule that matched a query, with its cascade weight and
// the scope of the stylesheet it came from.
type MatchedRule struct {
	Rule       *Rule
	Weight     uint64
	StyleScope uint64
}

// MatchedRuleList is the ordered result of a query; Merge applies it to a
// NodeProperties record.
type MatchedRuleList struct {
	Rules []MatchedRule
}

const (
	weightImportant uint64 = 1 << 63
	weightInline    uint64 = 1 << 62
)

func packWeight(selectorWeight uint16, sheetIndex uint16, ruleIndex uint32) uint64 {
	return uint64(selectorWeight)<<48 | uint64(sheetIndex)<<32 | uint64(ruleIndex)
}

// QueryMatchedRules returns the weighted list of rules in the group that
// match query under the given media environment, per spec §4.4's
// algorithm:
//  1. skip a sheet if its @media guard fails env
//  2. probe the class index for classes on query.Last()
//  3. also probe class_unindexed
//  4. right-to-left fragment match each candidate
//  5. pack (selector_weight, sheet_index, rule_index) into the weight
func (g *StyleSheetGroup) QueryMatchedRules(query StyleQuery, env *MediaQueryStatus) *MatchedRuleList {
	var out []MatchedRule
	last := query.Last()
	for sheetIdx, linked := range g.sheets {
		for _, entry := range linked.Sheets {
			if !entry.Media.Matches(env) {
				continue
			}
			seen := make(map[*Rule]bool)
			candidates := entry.Sheet.UnindexedCandidates()
			if last != nil {
				for _, c := range last.Classes() {
					candidates = append(candidates, entry.Sheet.CandidatesForClass(c.Name)...)
				}
			}
			for _, rule := range candidates {
				if seen[rule] {
					continue
				}
				seen[rule] = true
				if rule.Media != nil && !rule.Media.Matches(env) {
					continue
				}
				if !scopeAllows(rule.Selector.Scope, last) {
					continue
				}
				if !rule.Selector.MatchQuery(query) {
					continue
				}
				w := packWeight(rule.Selector.MaxWeight(), uint16(sheetIdx), rule.Index)
				out = append(out, MatchedRule{Rule: rule, Weight: w, StyleScope: rule.Selector.Scope})
			}
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Weight < out[j].Weight })
	return &MatchedRuleList{Rules: out}
}

// scopeAllows implements spec §4.4's "A rule from a scope S matches a node
// N only if N's own, extra, or host scope equals S." An unscoped rule
// (scope 0) always matches.
func scopeAllows(selectorScope uint64, node StyleNode) bool {
	if selectorScope == 0 || node == nil {
		return true
	}
	return node.StyleScope() == selectorScope ||
		node.ExtraStyleScope() == selectorScope ||
		node.HostStyleScope() == selectorScope
}
