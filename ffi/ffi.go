// Package ffi documents the C-ABI surface an embedder's native glue layer
// would put over this module's Go API, per spec §6's "C FFI surface"
// bullet. It deliberately stops short of an actual cgo boundary (building
// one is out of scope; see SPEC_FULL.md §6) — every function here is a
// plain, cgo-free Go function, so the rest of the module never needs a
// cgo build tag to compile or test. A real C wrapper is a thin re-export
// of these functions with `//export`-annotated C-calling-convention
// shims and a translation from C strings/buffers to Go ones at the
// boundary; what that wrapper needs to hide (ownership, lifetimes,
// pointer identity) is exactly what the Handle type below stands in for.
//
// Grounded on
// _examples/original_source/float-pigment-css/src/ffi.rs: that file
// exposes every resource as a `#[repr(C)] struct { ptr: *mut () }`
// opaque pointer created by `Box::into_raw` and freed by
// `Box::from_raw`; Handle plays the same role without unsafe pointer
// arithmetic, since Go's cgo story favors passing small integer handles
// across the boundary and keeping the referenced Go values alive and
// GC-visible on this side.
package ffi

import (
	"sync"
	"sync/atomic"

	"github.com/wechat-miniprogram/float-pigment-sub002/cssom"
	"github.com/wechat-miniprogram/float-pigment-sub002/cssom/parser"
	"github.com/wechat-miniprogram/float-pigment-sub002/cssom/wire"
)

// Handle is an opaque reference to a Go-side object, the cgo-friendly
// stand-in for ffi.rs's `*mut ()` pointers. The zero Handle is never
// issued and always reports "not found" on lookup, matching a C caller's
// natural "zero means null" convention.
type Handle uint64

var nextHandle uint64

func newHandle() Handle {
	return Handle(atomic.AddUint64(&nextHandle, 1))
}

var (
	resources sync.Map // Handle -> *cssom.StyleSheetResource
	groups    sync.Map // Handle -> *cssom.StyleSheetGroup
	sheets    sync.Map // Handle -> *cssom.CompiledStyleSheet
)

// StyleSheetResourceNew mirrors ffi.rs's style_sheet_resource_new.
func StyleSheetResourceNew() Handle {
	h := newHandle()
	resources.Store(h, cssom.NewStyleSheetResource())
	return h
}

// StyleSheetResourceFree mirrors style_sheet_resource_free; freeing an
// unknown or already-freed handle is a silent no-op rather than a panic,
// since a C caller has no borrow checker stopping a double-free and
// ffi.rs's own `Box::from_raw` has undefined behavior on one instead —
// this is the one place this package diverges from the original's exact
// failure mode, deliberately trading "matches Rust" for "never crashes
// the host process from a C caller's bug."
func StyleSheetResourceFree(h Handle) {
	resources.Delete(h)
}

func resource(h Handle) *cssom.StyleSheetResource {
	v, ok := resources.Load(h)
	if !ok {
		return nil
	}
	return v.(*cssom.StyleSheetResource)
}

// StyleSheetResourceAddSource mirrors style_sheet_resource_add_source: it
// parses source under path into res and registers the result, returning
// any parser warnings (ffi.rs instead writes them through an out
// parameter, `warnings: *mut *mut Array<Warning>`, since C has no
// multi-value return; this signature keeps Go's natural multi-return
// instead of replicating that out-param shape, since no actual C caller
// exists yet to constrain it).
func StyleSheetResourceAddSource(resHandle Handle, path, source string, scope uint64) (Handle, []cssom.Warning) {
	res := resource(resHandle)
	if res == nil {
		return 0, nil
	}
	compiled := parser.AddSource(res, path, source, scope)
	h := newHandle()
	sheets.Store(h, compiled)
	return h, compiled.Warnings
}

// StyleSheetResourceAddBincode mirrors
// style_sheet_resource_add_bincode: registers a previously-serialized
// sheet (see wire.DeserializeStyleSheet) into res under path.
func StyleSheetResourceAddBincode(resHandle Handle, path string, buf []byte) error {
	res := resource(resHandle)
	if res == nil {
		return nil
	}
	cs, err := wire.DeserializeStyleSheet(buf)
	if err != nil {
		return err
	}
	res.Add(path, cs)
	return nil
}

// StyleSheetResourceSerializeBincode mirrors
// style_sheet_resource_serialize_bincode.
func StyleSheetResourceSerializeBincode(resHandle Handle, path string) ([]byte, bool) {
	res := resource(resHandle)
	if res == nil {
		return nil, false
	}
	cs, ok := res.Get(path)
	if !ok {
		return nil, false
	}
	return wire.SerializeStyleSheet(cs), true
}

// StyleSheetGroupNew mirrors an implied style_sheet_group_new (ffi.rs
// wraps StyleSheetGroup's Rust counterpart the same way it wraps
// StyleSheetResource; this package follows the same handle pattern for
// it as the natural generalization, rather than one-off specialcasing
// the resource type).
func StyleSheetGroupNew() Handle {
	h := newHandle()
	groups.Store(h, cssom.NewStyleSheetGroup())
	return h
}

// StyleSheetGroupFree frees a group handle.
func StyleSheetGroupFree(h Handle) {
	groups.Delete(h)
}

func group(h Handle) *cssom.StyleSheetGroup {
	v, ok := groups.Load(h)
	if !ok {
		return nil
	}
	return v.(*cssom.StyleSheetGroup)
}

// StyleSheetGroupAppendFromResource mirrors a group-level append call:
// links path out of res under scope and appends the linked sheet to
// group, returning any warnings raised while resolving @import targets.
func StyleSheetGroupAppendFromResource(groupHandle, resHandle Handle, path string, scope uint64) []cssom.Warning {
	g := group(groupHandle)
	res := resource(resHandle)
	if g == nil || res == nil {
		return nil
	}
	return g.AppendFromResource(res, path, scope)
}

// StyleSheetGroupQueryMatchedRules exposes StyleSheetGroup.QueryMatchedRules
// across the handle boundary; unlike the stylesheet-management calls
// above, the query/node types (cssom.StyleQuery, cssom.MediaQueryStatus)
// are embedder-defined and have no C-friendly flattened form of their
// own, so a real C wrapper would need its own glue struct here — this
// signature documents the call shape, not a byte-for-byte C-ABI
// encoding, same as spec §6 scopes this package to.
func StyleSheetGroupQueryMatchedRules(groupHandle Handle, query cssom.StyleQuery, env *cssom.MediaQueryStatus) *cssom.MatchedRuleList {
	g := group(groupHandle)
	if g == nil {
		return nil
	}
	return g.QueryMatchedRules(query, env)
}
