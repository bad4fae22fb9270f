package cssval

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGlobalOrValueRoundTrips(t *testing.T) {
	g := Value(Px(10))
	v, ok := g.Get()
	assert.True(t, ok)
	assert.Equal(t, Px(10), v)
	assert.True(t, g.IsValue())
	assert.False(t, g.IsInherit())
}

func TestGlobalOrKeywordPredicates(t *testing.T) {
	assert.True(t, Initial[Length]().IsInitial())
	assert.True(t, Inherit[Length]().IsInherit())
	assert.True(t, Unset[Length]().IsUnset())
	assert.True(t, Invalid[Length]().IsInvalid())
}

func TestGlobalOrVarAndVarInShorthand(t *testing.T) {
	v := Var[Length]("--gap")
	shorthand, name, ok := v.VarRef()
	assert.True(t, ok)
	assert.Equal(t, "", shorthand)
	assert.Equal(t, "--gap", name)
	assert.True(t, v.IsVar())

	vs := VarInShorthand[Length]("margin", "--m")
	shorthand, name, ok = vs.VarRef()
	assert.True(t, ok)
	assert.Equal(t, "margin", shorthand)
	assert.Equal(t, "--m", name)
	assert.True(t, vs.IsVar())
}
