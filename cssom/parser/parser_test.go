package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wechat-miniprogram/float-pigment-sub002/cssval"
)

func TestParseSimpleRule(t *testing.T) {
	cs := Parse("app", `.box { width: 10px; color: red; }`, 0)
	require.Len(t, cs.SS.Rules, 1)
	rule := cs.SS.Rules[0]
	require.Len(t, rule.Properties, 2)
	assert.Equal(t, "width", rule.Properties[0].Decl.Property)
	l, ok := rule.Properties[0].Decl.Value.Get()
	require.True(t, ok)
	length := l.(cssval.Length)
	unit, v := length.UnitValue()
	assert.Equal(t, cssval.UnitPx, unit)
	assert.Equal(t, 10.0, v)
}

func TestParseMarginShorthandExpandsFourEdges(t *testing.T) {
	cs := Parse("app", `.box { margin: 1px 2px 3px 4px; }`, 0)
	require.Len(t, cs.SS.Rules, 1)
	pm := cs.SS.Rules[0].Properties[0]
	require.Equal(t, cssval.DeclDebugGroup, pm.Kind)
	require.Len(t, pm.Longhands, 4)
	assert.Equal(t, "margin-top", pm.Longhands[0].Property)
	assert.Equal(t, "margin-right", pm.Longhands[1].Property)
	assert.Equal(t, "margin-bottom", pm.Longhands[2].Property)
	assert.Equal(t, "margin-left", pm.Longhands[3].Property)
}

func TestParseMarginShorthandOneValueAppliesToAllEdges(t *testing.T) {
	cs := Parse("app", `.box { margin: 5px; }`, 0)
	pm := cs.SS.Rules[0].Properties[0]
	require.Len(t, pm.Longhands, 4)
	for _, d := range pm.Longhands {
		l, ok := d.Value.Get()
		require.True(t, ok)
		unit, v := l.(cssval.Length).UnitValue()
		assert.Equal(t, cssval.UnitPx, unit)
		assert.Equal(t, 5.0, v)
	}
}

func TestParseCustomPropertySubstitution(t *testing.T) {
	cs := Parse("app", `:root { --gap: 8px; } .row { column-gap: var(--gap); }`, 0)
	// :root still produces its own (property-less) rule; the custom
	// property itself is collected into the var table, not cascaded.
	require.Len(t, cs.SS.Rules, 2)
	require.Empty(t, cs.SS.Rules[0].Properties)
	pm := cs.SS.Rules[1].Properties[0]
	assert.Equal(t, "column-gap", pm.Decl.Property)
	l, ok := pm.Decl.Value.Get()
	require.True(t, ok)
	unit, v := l.(cssval.Length).UnitValue()
	assert.Equal(t, cssval.UnitPx, unit)
	assert.Equal(t, 8.0, v)
}

func TestParseUnresolvableVarIsInvalid(t *testing.T) {
	cs := Parse("app", `.row { column-gap: var(--missing); }`, 0)
	pm := cs.SS.Rules[0].Properties[0]
	assert.True(t, pm.Decl.Value.IsInvalid())
}

func TestParseImportantDeclaration(t *testing.T) {
	cs := Parse("app", `.box { color: blue !important; }`, 0)
	pm := cs.SS.Rules[0].Properties[0]
	assert.True(t, pm.Important())
}

func TestParseScopedSelector(t *testing.T) {
	cs := Parse("app", `.box { width: auto; }`, 42)
	assert.Equal(t, uint64(42), cs.SS.Rules[0].Selector.Scope)
}

func TestParseAtImport(t *testing.T) {
	cs := Parse("app", `@import "base.wxss";`, 0)
	require.Len(t, cs.Imports, 1)
	assert.Equal(t, "base.wxss", cs.Imports[0].Path)
}

func TestParseAtMediaGuardsNestedRules(t *testing.T) {
	cs := Parse("app", `@media (min-width: 600px) { .box { width: 100px; } }`, 0)
	require.Len(t, cs.SS.Rules, 1)
	require.NotNil(t, cs.SS.Rules[0].Media)
}

func TestParseCalcExpression(t *testing.T) {
	cs := Parse("app", `.box { width: calc(100% - 20px); }`, 0)
	pm := cs.SS.Rules[0].Properties[0]
	v, ok := pm.Decl.Value.Get()
	require.True(t, ok)
	length := v.(cssval.Length)
	require.True(t, length.IsExpr())
	e := length.Expr()
	assert.False(t, e.IsLeaf())
	assert.Equal(t, cssval.OpSub, e.Op())
}

func TestParseTransformFunctionList(t *testing.T) {
	cs := Parse("app", `.box { transform: translate(10px, 5px) rotate(45deg); }`, 0)
	pm := cs.SS.Rules[0].Properties[0]
	v, ok := pm.Decl.Value.Get()
	require.True(t, ok)
	tr := v.(cssval.Transform)
	require.Len(t, tr.Funcs, 2)
	assert.Equal(t, cssval.TransformTranslate, tr.Funcs[0].Kind)
	assert.Equal(t, cssval.TransformRotate, tr.Funcs[1].Kind)
}

func TestVarEnvCycleDetection(t *testing.T) {
	env := newVarEnv()
	env.define("--a", "var(--b)")
	env.define("--b", "var(--a)")
	_, ok := env.substitute("var(--a)")
	assert.False(t, ok)
}

func TestVarEnvFallback(t *testing.T) {
	env := newVarEnv()
	_, ok := env.substitute("var(--missing, 3px)")
	require.True(t, ok)
}

func TestParseCalcHelper(t *testing.T) {
	e, ok := parseCalc("1em + 2px * 3")
	require.True(t, ok)
	assert.False(t, e.IsLeaf())
	assert.Equal(t, cssval.OpPlus, e.Op())
}
