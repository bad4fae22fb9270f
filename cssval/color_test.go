package cssval

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseColorNamed(t *testing.T) {
	c, err := ParseColor("red")
	require.NoError(t, err)
	assert.Equal(t, color.RGBA{0xff, 0, 0, 0xff}, c.RGBAValue(color.RGBA{}))
}

func TestParseColorHexShortAndLong(t *testing.T) {
	short, err := ParseColor("#0f0")
	require.NoError(t, err)
	long, err := ParseColor("#00ff00")
	require.NoError(t, err)
	assert.Equal(t, short.RGBAValue(color.RGBA{}), long.RGBAValue(color.RGBA{}))
	assert.Equal(t, color.RGBA{0, 0xff, 0, 0xff}, short.RGBAValue(color.RGBA{}))
}

func TestParseColorRGBAFunction(t *testing.T) {
	c, err := ParseColor("rgba(0, 128, 255, 0.5)")
	require.NoError(t, err)
	got := c.RGBAValue(color.RGBA{})
	assert.Equal(t, uint8(0), got.R)
	assert.Equal(t, uint8(128), got.G)
	assert.Equal(t, uint8(255), got.B)
	assert.InDelta(t, 127, got.A, 1)
}

func TestParseColorCurrentColorInheritsCaller(t *testing.T) {
	c, err := ParseColor("currentcolor")
	require.NoError(t, err)
	inherited := color.RGBA{R: 1, G: 2, B: 3, A: 4}
	assert.Equal(t, inherited, c.RGBAValue(inherited))
}

func TestParseColorTransparentIsZeroAlpha(t *testing.T) {
	c, err := ParseColor("transparent")
	require.NoError(t, err)
	assert.Equal(t, color.RGBA{}, c.RGBAValue(color.RGBA{R: 9, G: 9, B: 9, A: 9}))
}

func TestParseColorUnrecognizedReturnsError(t *testing.T) {
	_, err := ParseColor("not-a-color")
	assert.Error(t, err)
}
