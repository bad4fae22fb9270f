package wire

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wechat-miniprogram/float-pigment-sub002/cssom"
	"github.com/wechat-miniprogram/float-pigment-sub002/cssom/parser"
	"github.com/wechat-miniprogram/float-pigment-sub002/cssval"
	"github.com/wechat-miniprogram/float-pigment-sub002/strpool"
)

const roundTripSource = `
.a { width: 1px; }
.a.b { width: 2px; color: red !important; }
#id.c[data-x="1"] > .d { margin: 1px 2px 3px 4px; }
@media (min-width: 100px) { .e { width: calc(1px + 2px); } }
`

// queryMatchedWidth re-runs the spec §8 seed scenario 1 cascade ("two rules
// targeting the same node, highest weight wins") against a decoded sheet,
// used below to assert that deserialize(serialize(S)) preserves observable
// query behavior, not just byte-for-byte struct equality.
func queryMatchedWidth(t *testing.T, ss *cssom.StyleSheet) float64 {
	t.Helper()
	group := cssom.NewStyleSheetGroup()
	group.Append(&cssom.LinkedStyleSheet{Sheets: []cssom.LinkedEntry{{Sheet: ss}}})
	node := cssom.NewSimpleNode("view", "a", "b")
	query := cssom.StyleQuery{node}
	matched := group.QueryMatchedRules(query, &cssom.MediaQueryStatus{})
	np := cssom.DefaultNodeProperties()
	matched.Merge(np, nil, nil, nil, cssval.ResolveContext{})
	return np.Width.Resolve(cssval.ResolveContext{})
}

func TestStyleSheetRoundTripPreservesQueryBehavior(t *testing.T) {
	cs := parser.Parse("app", roundTripSource, 0)
	require.NotEmpty(t, cs.SS.Rules)

	before := queryMatchedWidth(t, cs.SS)

	buf := SerializeStyleSheet(cs)
	decoded, err := DeserializeStyleSheet(buf)
	require.NoError(t, err)
	require.Equal(t, len(cs.SS.Rules), len(decoded.SS.Rules))

	after := queryMatchedWidth(t, decoded.SS)
	assert.Equal(t, before, after)
	assert.Equal(t, 2.0, after, ".a.b should win over .a per cascade weight")
}

func TestStyleSheetRoundTripPreservesImportantAndShorthand(t *testing.T) {
	cs := parser.Parse("app", roundTripSource, 0)
	buf := SerializeStyleSheet(cs)
	decoded, err := DeserializeStyleSheet(buf)
	require.NoError(t, err)

	var foundImportant, foundShorthand bool
	for _, r := range decoded.SS.Rules {
		for _, pm := range r.Properties {
			if pm.Kind == cssval.DeclImportant {
				foundImportant = true
			}
			if pm.Kind == cssval.DeclDebugGroup {
				foundShorthand = true
				assert.Len(t, pm.Longhands, 4)
			}
		}
	}
	assert.True(t, foundImportant, "expected the !important color decl to round-trip")
	assert.True(t, foundShorthand, "expected the margin shorthand's expansion to round-trip")
}

func TestStyleSheetRoundTripPreservesMediaGuard(t *testing.T) {
	cs := parser.Parse("app", roundTripSource, 0)
	buf := SerializeStyleSheet(cs)
	decoded, err := DeserializeStyleSheet(buf)
	require.NoError(t, err)

	var sawMedia bool
	for _, r := range decoded.SS.Rules {
		if r.Media != nil {
			sawMedia = true
		}
	}
	assert.True(t, sawMedia, "expected the @media-guarded rule to keep its Media")
}

// TestZeroCopyDropCallbackFiresExactlyOnce exercises spec §8's "dropping the
// returned handle invokes the supplied drop callback exactly once" and seed
// scenario 8 ("selector string remains valid until drop; callback fires on
// drop").
func TestZeroCopyDropCallbackFiresExactlyOnce(t *testing.T) {
	cs := parser.Parse("app", roundTripSource, 0)
	buf := SerializeStyleSheet(cs)
	bufCopy := append([]byte(nil), buf...)

	drops := 0
	decoded, pool, err := DeserializeStyleSheetZeroCopy(bufCopy, func() { drops++ })
	require.NoError(t, err)
	require.NotEmpty(t, decoded.SS.Rules)

	// The selector text stays valid while the pool is alive.
	sel := decoded.SS.Rules[0].Selector
	require.NotNil(t, sel)

	pool.Release()
	assert.Equal(t, 1, drops)

	pool.Release()
	assert.Equal(t, 1, drops, "drop callback must fire exactly once")
}

func TestImportIndexRoundTrip(t *testing.T) {
	idx := &cssom.StyleSheetImportIndex{Dependencies: map[string][]string{
		"app":   {"base", "theme"},
		"base":  {},
		"theme": {"base"},
	}}
	buf := SerializeImportIndex(idx)
	decoded, err := DeserializeImportIndex(buf)
	require.NoError(t, err)
	assert.Equal(t, idx.Dependencies["app"], decoded.Dependencies["app"])
	assert.Equal(t, idx.Dependencies["theme"], decoded.Dependencies["theme"])
}

// TestDeserializeForwardCompatSkipsUnknownTrailingBytes exercises spec §4.2's
// "unread trailing bytes are silently skipped" / §8's forward-compatibility
// testable property by appending extra bytes inside the outer segment
// before the pool, simulating a newer writer's added tail field.
func TestDeserializeForwardCompatSkipsUnknownTrailingBytes(t *testing.T) {
	cs := parser.Parse("app", `.a { width: 1px; }`, 0)

	pool := strpool.New()
	w := NewWriter()
	w.Segment(func(w *Writer) {
		writeStr(w, pool, cs.Path)
		w.WriteU32(uint32(len(cs.Imports)))
		encodeStyleSheetBody(w, pool, cs.SS)
		// simulate a future field a newer writer appended after the
		// fields this decoder knows about
		w.WriteU32(0xDEADBEEF)
		w.WriteBytes([]byte{1, 2, 3, 4})
	})
	pool.Freeze()
	w.WriteBytes(pool.Bytes())
	buf := w.Bytes()

	decoded, err := DeserializeStyleSheet(buf)
	require.NoError(t, err)
	assert.Len(t, decoded.SS.Rules, 1)
}
