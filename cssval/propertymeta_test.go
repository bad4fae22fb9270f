package cssval

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPropertyMetaDeclarationsNormal(t *testing.T) {
	pm := PropertyMeta{Kind: DeclNormal, Decl: Declaration{Property: "width", Value: Value[PropertyValue](Px(1))}}
	decls := pm.Declarations()
	assert.Len(t, decls, 1)
	assert.Equal(t, "width", decls[0].Property)
	assert.False(t, pm.Important())
}

func TestPropertyMetaDeclarationsImportant(t *testing.T) {
	pm := PropertyMeta{Kind: DeclImportant, Decl: Declaration{Property: "width", Value: Value[PropertyValue](Px(1))}}
	assert.True(t, pm.Important())
	assert.Len(t, pm.Declarations(), 1)
}

func TestPropertyMetaDebugGroupExpandsToLonghands(t *testing.T) {
	pm := PropertyMeta{
		Kind:          DeclDebugGroup,
		ShorthandText: "margin: 1px 2px",
		Longhands: []Declaration{
			{Property: "margin-top", Value: Value[PropertyValue](Px(1))},
			{Property: "margin-right", Value: Value[PropertyValue](Px(2))},
		},
	}
	decls := pm.Declarations()
	assert.Len(t, decls, 2)
	assert.Equal(t, "margin-top", decls[0].Property)
}

func TestPropertyMetaDisabledContributesNothing(t *testing.T) {
	pm := PropertyMeta{Kind: DeclNormal, Disabled: true, Decl: Declaration{Property: "width"}}
	assert.Empty(t, pm.Declarations())
}
