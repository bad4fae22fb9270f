package cssval

// PropertyValue is implemented by every concrete CSS property-value type
// that can appear inside a GlobalOr[PropertyValue]-style Declaration. The
// marker method is unexported, so the set is closed to this package.
type PropertyValue interface {
	isPropertyValue()
}

func (Length) isPropertyValue()             {}
func (Color) isPropertyValue()              {}
func (Angle) isPropertyValue()              {}
func (Number) isPropertyValue()             {}
func (Transform) isPropertyValue()          {}
func (BackgroundPosition) isPropertyValue() {}
func (Keyword) isPropertyValue()            {}

// Declaration is a single "property: value" pair as it appears in a rule's
// declaration block, before shorthand expansion context (cascade origin,
// !important) is attached.
type Declaration struct {
	Property string
	Value    GlobalOr[PropertyValue]
}

// DeclKind distinguishes a plain declaration from one carrying !important,
// and from the special DebugGroup form the teacher's declaration-block
// parser produces for a shorthand it expanded into longhands (the group
// keeps the original shorthand text around for debugging/serialization
// round-tripping, generalizing the teacher's SplitCompoundProperty output).
type DeclKind uint8

const (
	DeclNormal DeclKind = iota
	DeclImportant
	DeclDebugGroup
)

// PropertyMeta is one parsed declaration-block entry. For DeclNormal and
// DeclImportant, Decl is the declaration itself and Longhands is empty.
// For DeclDebugGroup, Decl is unused, ShorthandText carries the original
// shorthand source text, and Longhands carries the expanded declarations
// the cascade actually applies.
type PropertyMeta struct {
	Kind          DeclKind
	Decl          Declaration
	ShorthandText string
	Longhands     []Declaration
	Disabled      bool
}

// Declarations returns the declarations this entry contributes to the
// cascade: itself for DeclNormal/DeclImportant, or its expanded longhands
// for DeclDebugGroup. A Disabled entry contributes nothing.
func (p PropertyMeta) Declarations() []Declaration {
	if p.Disabled {
		return nil
	}
	switch p.Kind {
	case DeclDebugGroup:
		return p.Longhands
	default:
		return []Declaration{p.Decl}
	}
}

// Important reports whether this entry's declarations carry !important.
func (p PropertyMeta) Important() bool { return p.Kind == DeclImportant }
