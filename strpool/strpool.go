/*
Package strpool implements an append-only, interned byte pool and the
StrRef handle type used throughout the cssom and wire packages.

A StrPool never rewrites a byte once written; it either grows by
appending, or — once Freeze has been called, typically right before
serialization — refuses further writes. This matches the wire-format
invariant that StrRefs compare equal iff their resolved byte slices are
equal, and that frozen bytes never move.

The pool doubles as the backing store for zero-copy deserialization: a
pool constructed with Borrow wraps a caller-owned []byte instead of
growing its own, and invokes a drop callback once Release is called (or,
as a safety net, when the pool is garbage collected without an explicit
Release).
*/
package strpool

import (
	"fmt"
	"runtime"
	"sync"

	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'css.strpool'.
func tracer() tracing.Trace {
	return tracing.Select("css.strpool")
}

// StrPool is an append-only byte buffer producing interned StrRefs. The
// zero value is not usable; create one with New or Borrow.
type StrPool struct {
	mu       sync.RWMutex
	buf      []byte
	frozen   bool
	interned map[string]StrRef // dedups equal strings to the same StrRef

	borrowed bool
	dropCB   func()
	dropOnce sync.Once
}

// New creates an empty, growable StrPool.
func New() *StrPool {
	return &StrPool{interned: make(map[string]StrRef)}
}

// Borrow wraps an externally owned byte slice for zero-copy deserialization.
// The slice must not be mutated or freed by the caller until Release (or,
// failing that, garbage collection of the returned pool) has invoked drop.
// drop may be nil.
func Borrow(buf []byte, drop func()) *StrPool {
	p := &StrPool{buf: buf, frozen: true, borrowed: true, dropCB: drop}
	if drop != nil {
		runtime.SetFinalizer(p, func(p *StrPool) { p.Release() })
	}
	return p
}

// Release invokes the drop callback for a borrowed pool exactly once. It is
// a no-op for pools created with New. Invariant: the buffer passed to
// Borrow must outlive every StrRef derived from this pool, so callers
// should only call Release once they've dropped all StrRefs referencing
// it (see the package's zero-copy lifetime test for the contract this
// enforces).
func (p *StrPool) Release() {
	if p == nil || !p.borrowed {
		return
	}
	p.dropOnce.Do(func() {
		if p.dropCB != nil {
			p.dropCB()
		}
		runtime.SetFinalizer(p, nil)
	})
}

// Freeze marks the pool immutable. Serialization always freezes its pool
// first; further calls to Intern panic.
func (p *StrPool) Freeze() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.frozen = true
}

// Frozen reports whether the pool accepts no further writes.
func (p *StrPool) Frozen() bool {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.frozen
}

// Intern appends s to the pool (or reuses an earlier identical string) and
// returns a StrRef for it. Panics if the pool is frozen or borrowed.
func (p *StrPool) Intern(s string) StrRef {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.frozen {
		panic(fmt.Sprintf("strpool: Intern(%q) on a frozen/borrowed pool", s))
	}
	if ref, ok := p.interned[s]; ok {
		return ref
	}
	ref := StrRef{offset: uint32(len(p.buf)), length: uint32(len(s)), pool: p}
	p.buf = append(p.buf, s...)
	p.interned[s] = ref
	return ref
}

// resolve returns the byte slice a StrRef points to. Safe to call
// concurrently with other resolves and with Intern: both take the pool's
// lock.
func (p *StrPool) resolve(offset, length uint32) string {
	p.mu.RLock()
	defer p.mu.RUnlock()
	if int(offset+length) > len(p.buf) {
		tracer().Errorf("strpool: StrRef out of bounds: off=%d len=%d poolsize=%d", offset, length, len(p.buf))
		return ""
	}
	return string(p.buf[offset : offset+length])
}

// Bytes returns the pool's current backing bytes. Intended for the wire
// codec's final string-pool segment write; callers must Freeze first.
func (p *StrPool) Bytes() []byte {
	p.mu.RLock()
	defer p.mu.RUnlock()
	out := make([]byte, len(p.buf))
	copy(out, p.buf)
	return out
}

// StrRef is a handle {offset, len} into a StrPool. The zero value is the
// empty string and resolves without a pool.
type StrRef struct {
	offset uint32
	length uint32
	pool   *StrPool
}

// NewRef constructs a StrRef directly from a (offset, len, pool) triple, as
// produced by the wire decoder.
func NewRef(offset, length uint32, pool *StrPool) StrRef {
	return StrRef{offset: offset, length: length, pool: pool}
}

// Offset and Len expose the raw wire-format fields.
func (r StrRef) Offset() uint32 { return r.offset }
func (r StrRef) Len() uint32    { return r.length }

// String resolves the referenced bytes. A zero-value StrRef (nil pool)
// resolves to "".
func (r StrRef) String() string {
	if r.pool == nil {
		return ""
	}
	return r.pool.resolve(r.offset, r.length)
}

// Equal reports whether two StrRefs resolve to the same byte slice,
// regardless of which pool (or position within a pool) they come from.
func (r StrRef) Equal(o StrRef) bool {
	return r.String() == o.String()
}
