package cssval

/*
GlobalOr wraps any property-value type T with the CSS-wide keywords that
apply uniformly across every property: initial, inherit, unset, and the
two var()-reference forms that survive into a declaration when the
variable can't be substituted at parse time (a plain var(--x) used as a
whole value, or one appearing inside a shorthand that therefore can't be
split into longhands until the variable is resolved against the cascade).

The wire format reserves a block of 64 discriminant slots for these
global keywords ahead of every property's own value discriminants (see
cssom/wire), so that the global-keyword tag never collides with a
property-specific one and new global keywords can be added without
renumbering existing properties. That reservation is purely a wire-layout
concern — it is not modeled here as 58 unused struct fields, just the
kind enum below plus a doc note on the wire package constant that marks
where the reserved block ends.
*/
type GlobalOr[T any] struct {
	kind     globalKind
	value    T
	varName  string
	shorthand string
}

type globalKind uint8

const (
	globalValue globalKind = iota
	globalInvalid
	globalInitial
	globalInherit
	globalUnset
	globalVar
	globalVarInShorthand
)

// Value wraps a concrete property value (the common case).
func Value[T any](v T) GlobalOr[T] { return GlobalOr[T]{kind: globalValue, value: v} }

// Invalid marks a declaration whose value failed to parse.
func Invalid[T any]() GlobalOr[T] { return GlobalOr[T]{kind: globalInvalid} }

// Initial, Inherit, Unset are the three standard CSS-wide keywords.
func Initial[T any]() GlobalOr[T] { return GlobalOr[T]{kind: globalInitial} }
func Inherit[T any]() GlobalOr[T] { return GlobalOr[T]{kind: globalInherit} }
func Unset[T any]() GlobalOr[T]   { return GlobalOr[T]{kind: globalUnset} }

// Var marks a whole-value var(--name) reference that must be resolved
// against the custom-property environment before the declaration has a
// concrete value.
func Var[T any](name string) GlobalOr[T] {
	return GlobalOr[T]{kind: globalVar, varName: name}
}

// VarInShorthand marks a var(--name) reference nested inside a shorthand
// property's value text, recorded alongside the shorthand it came from.
// Nothing in this module substitutes it later: the cascade skips it.
func VarInShorthand[T any](shorthand, name string) GlobalOr[T] {
	return GlobalOr[T]{kind: globalVarInShorthand, shorthand: shorthand, varName: name}
}

// IsValue, IsInvalid, IsInitial, IsInherit, IsUnset, IsVar report the kind.
func (g GlobalOr[T]) IsValue() bool   { return g.kind == globalValue }
func (g GlobalOr[T]) IsInvalid() bool { return g.kind == globalInvalid }
func (g GlobalOr[T]) IsInitial() bool { return g.kind == globalInitial }
func (g GlobalOr[T]) IsInherit() bool { return g.kind == globalInherit }
func (g GlobalOr[T]) IsUnset() bool   { return g.kind == globalUnset }
func (g GlobalOr[T]) IsVar() bool {
	return g.kind == globalVar || g.kind == globalVarInShorthand
}

// Get returns the concrete value and true when IsValue(), else the zero
// value of T and false.
func (g GlobalOr[T]) Get() (T, bool) {
	return g.value, g.kind == globalValue
}

// VarRef returns the referenced custom-property name (and, for a
// shorthand-nested reference, the shorthand property it came from) when
// IsVar().
func (g GlobalOr[T]) VarRef() (shorthand, name string, ok bool) {
	return g.shorthand, g.varName, g.kind == globalVar || g.kind == globalVarInShorthand
}

// Keyword is a bare CSS identifier value, used for properties whose value
// set is a small fixed vocabulary (display, position, flex-direction, ...)
// that don't warrant their own Go type.
type Keyword string
