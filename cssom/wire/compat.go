package wire

import (
	"fmt"
	"hash/fnv"
)

// TypeShape describes a serializable struct or enum's wire layout, the
// inputs to the build-time compatibility check from spec §4.2: "each
// struct/enum in the wire format is hashed into a file (field order,
// types, variant set, variant index). The build fails if a struct
// shrinks, a field changes type, a variant discriminant moves, or an enum
// shrinks. New fields at the end and new variants with new discriminants
// are allowed."
//
// This repo has no build-time codegen step (spec §1 scopes that out), so
// the check runs as an ordinary Go function over two shapes handed to it by
// the caller, rather than as a macro. This package keeps no registry of
// shapes and its tests do not call CheckCompatibility; it is available for
// a host's CI step to call against a golden snapshot file.
type TypeShape struct {
	Name     string
	Fields   []FieldShape   // struct: ordered fields
	Variants []VariantShape // enum: variant set
}

type FieldShape struct {
	Name string
	Type string
}

type VariantShape struct {
	Name        string
	Discriminant uint32
}

// Hash produces a stable fingerprint of the shape, sensitive to field
// order/type and variant index, per spec's hashing rule.
func (s TypeShape) Hash() uint64 {
	h := fnv.New64a()
	fmt.Fprintf(h, "struct:%s", s.Name)
	for _, f := range s.Fields {
		fmt.Fprintf(h, "|field:%s:%s", f.Name, f.Type)
	}
	for _, v := range s.Variants {
		fmt.Fprintf(h, "|variant:%s:%d", v.Name, v.Discriminant)
	}
	return h.Sum64()
}

// CompatibilityError describes which compatibility rule a candidate shape
// violates against a golden shape.
type CompatibilityError struct {
	TypeName string
	Reason   string
}

func (e *CompatibilityError) Error() string {
	return fmt.Sprintf("wire: %s is wire-incompatible with its golden shape: %s", e.TypeName, e.Reason)
}

// CheckCompatibility compares candidate against golden and reports an
// error for any disallowed change: a struct/enum that shrinks, a field
// whose type changed, or a variant whose discriminant moved. Appending
// new fields or new variants with new discriminants is always allowed.
func CheckCompatibility(golden, candidate TypeShape) error {
	if len(candidate.Fields) < len(golden.Fields) {
		return &CompatibilityError{TypeName: golden.Name, Reason: "struct shrank"}
	}
	for i, gf := range golden.Fields {
		if i >= len(candidate.Fields) {
			return &CompatibilityError{TypeName: golden.Name, Reason: "field removed: " + gf.Name}
		}
		cf := candidate.Fields[i]
		if cf.Name != gf.Name || cf.Type != gf.Type {
			return &CompatibilityError{TypeName: golden.Name, Reason: "field changed: " + gf.Name}
		}
	}
	if len(candidate.Variants) < len(golden.Variants) {
		return &CompatibilityError{TypeName: golden.Name, Reason: "enum shrank"}
	}
	byDisc := make(map[uint32]string, len(candidate.Variants))
	for _, v := range candidate.Variants {
		byDisc[v.Discriminant] = v.Name
	}
	for _, gv := range golden.Variants {
		name, ok := byDisc[gv.Discriminant]
		if !ok || name != gv.Name {
			return &CompatibilityError{TypeName: golden.Name, Reason: "variant discriminant moved: " + gv.Name}
		}
	}
	return nil
}

// GlobalKeywordSlots is the number of discriminants reserved at the start
// of every property value enum for the CSS-wide keywords (Invalid,
// Initial, Inherit, Unset, Var, VarInShorthand) plus headroom for future
// additions, per spec §3/§9: "Each property has a wrapping type adding the
// CSS global keywords ... plus 58 reserved invalid slots" -- 6 named
// keyword discriminants plus 58 reserved gives the 64-slot block spec §9
// calls out ("the 64-slot reservation at the head of each value enum").
const GlobalKeywordSlots = 64
