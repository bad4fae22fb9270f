package cssval

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLengthResolveUnits(t *testing.T) {
	ctx := ResolveContext{FontSize: 20, RootFontSize: 16, ReferenceSize: 200, ViewportWidth: 300, ViewportHeight: 100}
	cases := []struct {
		name string
		l    Length
		want float64
	}{
		{"px", Px(10), 10},
		{"em", Em(2), 40},
		{"rem", Rem(2), 32},
		{"ratio", Ratio(0.5), 100},
		{"vw", Vw(10), 30},
		{"vh", Vh(10), 10},
		{"auto resolves to zero", Auto(), 0},
		{"undefined resolves to zero", Undefined(), 0},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, c.l.Resolve(ctx))
		})
	}
}

func TestLengthAutoUndefinedDistinguishable(t *testing.T) {
	// spec §7: Auto and Undefined both resolve to zero at paint time, but
	// callers needing auto-centering behavior must distinguish them before
	// calling Resolve.
	assert.True(t, Auto().IsAuto())
	assert.False(t, Auto().IsUndefined())
	assert.True(t, Undefined().IsUndefined())
	assert.False(t, Undefined().IsAuto())
}

func TestLengthExprResolvesThroughCalc(t *testing.T) {
	e := Combine(OpPlus, Leaf(UnitRem, 1), Leaf(UnitEm, 1))
	l := LengthExpr(e)
	assert.True(t, l.IsExpr())
	ctx := ResolveContext{FontSize: 16, RootFontSize: 16}
	assert.Equal(t, 32.0, l.Resolve(ctx))
}

func TestLengthMatchSingleBranch(t *testing.T) {
	var px float64
	m := Px(5).Match().Px(&px)
	assert.NotNil(t, m)
	assert.Equal(t, 5.0, px)

	assert.Nil(t, Px(5).Match().Auto())
}
