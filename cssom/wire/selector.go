package wire

import (
	"github.com/wechat-miniprogram/float-pigment-sub002/cssom"
	"github.com/wechat-miniprogram/float-pigment-sub002/strpool"
)

// EncodeSelector writes a Selector's full fragment-chain structure: its
// Scope followed by each comma-separated group, rightmost fragment first,
// walking each group's Parent chain, per spec §3/§4.4.
func EncodeSelector(w *Writer, pool *strpool.StrPool, s *cssom.Selector) {
	w.WriteU64(s.Scope)
	w.WriteU32(uint32(len(s.Groups)))
	for _, g := range s.Groups {
		encodeFragmentChain(w, pool, g)
	}
}

// DecodeSelector is the inverse of EncodeSelector.
func DecodeSelector(r *Reader, pool *strpool.StrPool) (*cssom.Selector, error) {
	scope, err := r.ReadU64()
	if err != nil {
		return nil, err
	}
	n, err := r.ReadU32()
	if err != nil {
		return nil, err
	}
	groups := make([]*cssom.SelectorFragment, 0, n)
	for i := uint32(0); i < n; i++ {
		g, err := decodeFragmentChain(r, pool)
		if err != nil {
			return nil, err
		}
		groups = append(groups, g)
	}
	return cssom.NewSelector(groups, scope), nil
}

// encodeFragmentChain writes a rightmost-first fragment chain as a flat,
// length-prefixed sequence (leaf-to-root), reversing the pointer-chasing
// Parent links into an array so the decoder can rebuild them without
// recursion depth tied to selector combinator count.
func encodeFragmentChain(w *Writer, pool *strpool.StrPool, leaf *cssom.SelectorFragment) {
	var chain []*cssom.SelectorFragment
	for f := leaf; f != nil; f = f.Parent {
		chain = append(chain, f)
	}
	w.WriteU32(uint32(len(chain)))
	for _, f := range chain {
		encodeFragment(w, pool, f)
	}
}

func decodeFragmentChain(r *Reader, pool *strpool.StrPool) (*cssom.SelectorFragment, error) {
	n, err := r.ReadU32()
	if err != nil {
		return nil, err
	}
	frags := make([]*cssom.SelectorFragment, n)
	for i := uint32(0); i < n; i++ {
		f, err := decodeFragment(r, pool)
		if err != nil {
			return nil, err
		}
		frags[i] = f
	}
	for i := 0; i < len(frags)-1; i++ {
		frags[i].Parent = frags[i+1]
	}
	if len(frags) == 0 {
		return nil, newErr(ErrInvalidData, "empty selector fragment chain")
	}
	return frags[0], nil
}

func encodeFragment(w *Writer, pool *strpool.StrPool, f *cssom.SelectorFragment) {
	writeStr(w, pool, f.TagName)
	writeStr(w, pool, f.ID)
	w.WriteU32(uint32(len(f.Classes)))
	for _, c := range f.Classes {
		writeStr(w, pool, c)
	}
	w.WriteU32(uint32(len(f.Attributes)))
	for _, a := range f.Attributes {
		writeStr(w, pool, a.Name)
		w.WriteU8(uint8(a.Match))
		writeStr(w, pool, a.Value)
		w.WriteBool(a.CaseSensitive)
	}
	w.WriteU32(uint32(len(f.PseudoClasses)))
	for _, p := range f.PseudoClasses {
		w.WriteU8(uint8(p.Kind))
		w.WriteU32(uint32(int32(p.A)))
		w.WriteU32(uint32(int32(p.B)))
		if p.Of != nil {
			w.WriteBool(true)
			encodeFragmentChain(w, pool, p.Of)
		} else {
			w.WriteBool(false)
		}
	}
	w.WriteU8(uint8(f.PseudoElement))
	w.WriteU8(uint8(f.Relation))
}

func decodeFragment(r *Reader, pool *strpool.StrPool) (*cssom.SelectorFragment, error) {
	f := &cssom.SelectorFragment{}
	var err error
	if f.TagName, err = readStr(r, pool); err != nil {
		return nil, err
	}
	if f.ID, err = readStr(r, pool); err != nil {
		return nil, err
	}
	nClasses, err := r.ReadU32()
	if err != nil {
		return nil, err
	}
	for i := uint32(0); i < nClasses; i++ {
		c, err := readStr(r, pool)
		if err != nil {
			return nil, err
		}
		f.Classes = append(f.Classes, c)
	}
	nAttrs, err := r.ReadU32()
	if err != nil {
		return nil, err
	}
	for i := uint32(0); i < nAttrs; i++ {
		var a cssom.AttrSelector
		if a.Name, err = readStr(r, pool); err != nil {
			return nil, err
		}
		mb, err := r.ReadU8()
		if err != nil {
			return nil, err
		}
		a.Match = cssom.AttrMatchKind(mb)
		if a.Value, err = readStr(r, pool); err != nil {
			return nil, err
		}
		if a.CaseSensitive, err = r.ReadBool(); err != nil {
			return nil, err
		}
		f.Attributes = append(f.Attributes, a)
	}
	nPseudo, err := r.ReadU32()
	if err != nil {
		return nil, err
	}
	for i := uint32(0); i < nPseudo; i++ {
		var p cssom.PseudoClass
		kb, err := r.ReadU8()
		if err != nil {
			return nil, err
		}
		p.Kind = cssom.PseudoClassKind(kb)
		a32, err := r.ReadU32()
		if err != nil {
			return nil, err
		}
		p.A = int(int32(a32))
		b32, err := r.ReadU32()
		if err != nil {
			return nil, err
		}
		p.B = int(int32(b32))
		hasOf, err := r.ReadBool()
		if err != nil {
			return nil, err
		}
		if hasOf {
			p.Of, err = decodeFragmentChain(r, pool)
			if err != nil {
				return nil, err
			}
		}
		f.PseudoClasses = append(f.PseudoClasses, p)
	}
	peb, err := r.ReadU8()
	if err != nil {
		return nil, err
	}
	f.PseudoElement = cssom.PseudoElementKind(peb)
	relb, err := r.ReadU8()
	if err != nil {
		return nil, err
	}
	f.Relation = cssom.Relation(relb)
	return f, nil
}
