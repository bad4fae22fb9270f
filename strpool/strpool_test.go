package strpool

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInternDedup(t *testing.T) {
	p := New()
	a := p.Intern("hello")
	b := p.Intern("hello")
	assert.Equal(t, a.Offset(), b.Offset())
	assert.Equal(t, "hello", a.String())
}

func TestFreezePreventsWrites(t *testing.T) {
	p := New()
	p.Intern("a")
	p.Freeze()
	assert.True(t, p.Frozen())
	assert.Panics(t, func() { p.Intern("b") })
}

func TestZeroCopyLifetime(t *testing.T) {
	buf := []byte("deserialized-stylesheet-bytes")
	dropped := 0
	pool := Borrow(buf, func() { dropped++ })
	ref := NewRef(0, uint32(len("deserialized")), pool)
	require.Equal(t, "deserialized", ref.String())
	assert.Equal(t, 0, dropped)
	pool.Release()
	assert.Equal(t, 1, dropped)
	// Release is idempotent: a second call (e.g. a finalizer firing after an
	// explicit Release) must not invoke the callback twice.
	pool.Release()
	assert.Equal(t, 1, dropped)
}

func TestSessionRejectsNesting(t *testing.T) {
	s := NewSession()
	done := s.Enter()
	assert.Panics(t, func() { s.Enter() })
	done()
	assert.NotPanics(t, func() { s.Enter()() })
}
