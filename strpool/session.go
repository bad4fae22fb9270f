package strpool

import (
	"fmt"
	"sync/atomic"
)

// Session is an explicit context object guarding (de)serialization calls
// against a given pool. The original source threads this guard through a
// thread-local (or, on no-std builds, a spin-locked global); this port
// resolves the corresponding Open Question (see SPEC_FULL.md, §9) by making
// the guard an explicit object instead of ambient global state — callers
// construct one Session per encode/decode entry point and pass it down,
// rather than relying on which goroutine happens to be running.
//
// A Session may have at most one (de)serialize call in flight; a second,
// nested call on the same Session panics, mirroring the source's "nested
// calls on the same thread panic" rule.
type Session struct {
	busy int32
}

// NewSession creates a fresh, idle serialization session.
func NewSession() *Session {
	return &Session{}
}

// Enter marks the session as busy for the duration of a (de)serialize call.
// The returned func must be deferred to release the session. Enter panics
// if the session is already busy.
func (s *Session) Enter() func() {
	if !atomic.CompareAndSwapInt32(&s.busy, 0, 1) {
		panic(fmt.Sprintf("strpool: nested (de)serialize call on session %p", s))
	}
	return func() { atomic.StoreInt32(&s.busy, 0) }
}
