package cssom_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wechat-miniprogram/float-pigment-sub002/cssom"
	"github.com/wechat-miniprogram/float-pigment-sub002/cssom/parser"
	"github.com/wechat-miniprogram/float-pigment-sub002/cssval"
)

// resolvedWidth runs a query against group and returns the cascaded width,
// mirroring the spec §4.4 algorithm end-to-end: match, weight, merge.
func resolvedWidth(t *testing.T, group *cssom.StyleSheetGroup, query cssom.StyleQuery) float64 {
	t.Helper()
	matched := group.QueryMatchedRules(query, &cssom.MediaQueryStatus{})
	np := cssom.DefaultNodeProperties()
	matched.Merge(np, nil, nil, nil, cssval.ResolveContext{})
	return np.Width.Resolve(cssval.ResolveContext{})
}

// TestCascadeWeightPicksHigherSpecificity exercises spec §8 seed scenario 1:
// two rules targeting the same node, the more specific one (".a.b" over
// ".a") wins regardless of source order.
func TestCascadeWeightPicksHigherSpecificity(t *testing.T) {
	cs := parser.Parse("app", `.a { width: 1px; } .a.b { width: 2px; }`, 0)
	require.Len(t, cs.SS.Rules, 2)

	group := cssom.NewStyleSheetGroup()
	group.Append(&cssom.LinkedStyleSheet{Sheets: []cssom.LinkedEntry{{Sheet: cs.SS}}})

	node := cssom.NewSimpleNode("view", "a", "b")
	got := resolvedWidth(t, group, cssom.StyleQuery{node})
	assert.Equal(t, 2.0, got, ".a.b should outweigh .a")
}

// TestCascadeWeightIsOrderIndependent re-checks scenario 1 with the rules
// declared in the opposite source order, confirming the winner is
// specificity-driven, not last-write-wins.
func TestCascadeWeightIsOrderIndependent(t *testing.T) {
	cs := parser.Parse("app", `.a.b { width: 2px; } .a { width: 1px; }`, 0)
	group := cssom.NewStyleSheetGroup()
	group.Append(&cssom.LinkedStyleSheet{Sheets: []cssom.LinkedEntry{{Sheet: cs.SS}}})

	node := cssom.NewSimpleNode("view", "a", "b")
	got := resolvedWidth(t, group, cssom.StyleQuery{node})
	assert.Equal(t, 2.0, got)
}

// TestScopeIsolationRejectsRuleFromForeignScope exercises spec §8 seed
// scenario 2: a scoped rule only applies to nodes carrying a matching
// scope tag; an unscoped node falls through to the global rule instead.
func TestScopeIsolationRejectsRuleFromForeignScope(t *testing.T) {
	global := parser.Parse("base", `* { width: 0; }`, 0)
	scoped := parser.Parse("comp", `.a { width: 1px; }`, 1)

	group := cssom.NewStyleSheetGroup()
	group.Append(&cssom.LinkedStyleSheet{Sheets: []cssom.LinkedEntry{{Sheet: global.SS}}})
	group.Append(&cssom.LinkedStyleSheet{Sheets: []cssom.LinkedEntry{{Sheet: scoped.SS}}})

	node := cssom.NewSimpleNode("view", "a") // unscoped: Scope/ExtraScope/HostScope all 0
	got := resolvedWidth(t, group, cssom.StyleQuery{node})
	assert.Equal(t, 0.0, got, "the scope-1 rule must not apply to an unscoped node")
}

// TestScopeIsolationAllowsMatchingHostScope confirms the flip side: a node
// tagged with the scope a rule was compiled under does match it.
func TestScopeIsolationAllowsMatchingHostScope(t *testing.T) {
	global := parser.Parse("base", `* { width: 0; }`, 0)
	scoped := parser.Parse("comp", `.a { width: 1px; }`, 1)

	group := cssom.NewStyleSheetGroup()
	group.Append(&cssom.LinkedStyleSheet{Sheets: []cssom.LinkedEntry{{Sheet: global.SS}}})
	group.Append(&cssom.LinkedStyleSheet{Sheets: []cssom.LinkedEntry{{Sheet: scoped.SS}}})

	node := cssom.NewSimpleNode("view").WithScope(0, 0, 1).WithScopedClass("a", 1)
	got := resolvedWidth(t, group, cssom.StyleQuery{node})
	assert.Equal(t, 1.0, got, "a node carrying the rule's own scope should match it")
}

// TestDescendantAndChildCombinatorsMatch exercises the ancestor chain side
// of MatchQuery, beyond the flat single-node scenarios above.
func TestDescendantAndChildCombinatorsMatch(t *testing.T) {
	cs := parser.Parse("app", `.parent > .child { width: 5px; } .grand .deep { width: 7px; }`, 0)
	group := cssom.NewStyleSheetGroup()
	group.Append(&cssom.LinkedStyleSheet{Sheets: []cssom.LinkedEntry{{Sheet: cs.SS}}})

	parentNode := cssom.NewSimpleNode("view", "parent")
	childNode := cssom.NewSimpleNode("view", "child")
	assert.Equal(t, 5.0, resolvedWidth(t, group, cssom.StyleQuery{parentNode, childNode}))

	grandNode := cssom.NewSimpleNode("view", "grand")
	midNode := cssom.NewSimpleNode("view", "mid")
	deepNode := cssom.NewSimpleNode("view", "deep")
	assert.Equal(t, 7.0, resolvedWidth(t, group, cssom.StyleQuery{grandNode, midNode, deepNode}),
		".grand .deep is a descendant combinator, not just a direct child")

	// A lone .child node, with no .parent ancestor in the query, must not
	// match the child combinator rule.
	assert.Equal(t, 0.0, resolvedWidth(t, group, cssom.StyleQuery{childNode}))
}
