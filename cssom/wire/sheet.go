package wire

import (
	"github.com/wechat-miniprogram/float-pigment-sub002/cssom"
	"github.com/wechat-miniprogram/float-pigment-sub002/cssval"
	"github.com/wechat-miniprogram/float-pigment-sub002/strpool"
)

// SerializeStyleSheet encodes a CompiledStyleSheet per spec §4.2/§6's
// serialize_bincode: a segment-framed body (path, imports, rules,
// font-faces, keyframes) followed by the interned string pool, so a
// decoder that only understands an older subset of fields can still skip
// straight to the pool via the segment's length prefix.
func SerializeStyleSheet(cs *cssom.CompiledStyleSheet) []byte {
	pool := strpool.New()
	w := NewWriter()
	w.Segment(func(w *Writer) {
		writeStr(w, pool, cs.Path)
		w.WriteU32(uint32(len(cs.Imports)))
		for _, imp := range cs.Imports {
			writeStr(w, pool, imp.Path)
			encodeMedia(w, pool, imp.Media)
		}
		encodeStyleSheetBody(w, pool, cs.SS)
	})
	pool.Freeze()
	w.WriteBytes(pool.Bytes())
	return w.Bytes()
}

// DeserializeStyleSheet is the inverse of SerializeStyleSheet. It copies the
// string-pool bytes out of buf into a frozen pool of its own, so the
// returned sheet does not reference buf.
func DeserializeStyleSheet(buf []byte) (*cssom.CompiledStyleSheet, error) {
	return deserializeStyleSheet(buf, false, nil)
}

// DeserializeStyleSheetZeroCopy decodes buf without copying its bytes: the
// returned sheet's string data (selector text, keyword values, shorthand
// text) resolves directly into buf via StrRefs until Release is called (or,
// when drop is non-nil, the pool is garbage collected), mirroring spec §6's deserialize_bincode_zero_copy. drop
// is invoked once, when the pool is released.
func DeserializeStyleSheetZeroCopy(buf []byte, drop func()) (*cssom.CompiledStyleSheet, *strpool.StrPool, error) {
	cs, pool, err := deserializeStyleSheetPool(buf, true, drop)
	return cs, pool, err
}

func deserializeStyleSheet(buf []byte, zeroCopy bool, drop func()) (*cssom.CompiledStyleSheet, error) {
	cs, _, err := deserializeStyleSheetPool(buf, zeroCopy, drop)
	return cs, err
}

func deserializeStyleSheetPool(buf []byte, zeroCopy bool, drop func()) (*cssom.CompiledStyleSheet, *strpool.StrPool, error) {
	r := NewReader(buf)
	if err := r.BeginSegment(); err != nil {
		return nil, nil, err
	}
	bodyBytes := buf[r.pos:r.barrier]
	if err := r.EndSegment(); err != nil {
		return nil, nil, err
	}
	poolBytes, err := r.ReadBytes()
	if err != nil {
		return nil, nil, err
	}
	var pool *strpool.StrPool
	if zeroCopy {
		pool = strpool.Borrow(poolBytes, drop)
	} else {
		pool = strpool.Borrow(append([]byte(nil), poolBytes...), nil)
	}

	br := NewReader(bodyBytes)
	path, err := readStr(br, pool)
	if err != nil {
		return nil, nil, err
	}
	nImports, err := br.ReadU32()
	if err != nil {
		return nil, nil, err
	}
	imports := make([]cssom.ImportEntry, 0, nImports)
	for i := uint32(0); i < nImports; i++ {
		impPath, err := readStr(br, pool)
		if err != nil {
			return nil, nil, err
		}
		media, err := decodeMedia(br, pool)
		if err != nil {
			return nil, nil, err
		}
		imports = append(imports, cssom.ImportEntry{Path: impPath, Media: media})
	}
	ss, err := decodeStyleSheetBody(br, pool)
	if err != nil {
		return nil, nil, err
	}
	return cssom.NewCompiledStyleSheet(path, ss, imports, nil), pool, nil
}

func encodeStyleSheetBody(w *Writer, pool *strpool.StrPool, ss *cssom.StyleSheet) {
	w.WriteU32(uint32(len(ss.Rules)))
	for _, rule := range ss.Rules {
		encodeRule(w, pool, rule)
	}
	w.WriteU32(uint32(len(ss.FontFaces)))
	for _, ff := range ss.FontFaces {
		w.WriteU32(uint32(len(ff.Descriptors)))
		for k, v := range ff.Descriptors {
			writeStr(w, pool, k)
			writeStr(w, pool, v)
		}
	}
	w.WriteU32(uint32(len(ss.Keyframes)))
	for _, kf := range ss.Keyframes {
		writeStr(w, pool, kf.Name)
		w.WriteU32(uint32(len(kf.Stops)))
		for _, stop := range kf.Stops {
			w.WriteF64(stop.Percent)
			w.WriteU32(uint32(len(stop.Properties)))
			for k, v := range stop.Properties {
				writeStr(w, pool, k)
				writeStr(w, pool, v)
			}
		}
	}
}

func decodeStyleSheetBody(r *Reader, pool *strpool.StrPool) (*cssom.StyleSheet, error) {
	ss := cssom.NewStyleSheet()
	nRules, err := r.ReadU32()
	if err != nil {
		return nil, err
	}
	for i := uint32(0); i < nRules; i++ {
		rule, err := decodeRule(r, pool)
		if err != nil {
			return nil, err
		}
		ss.AddRule(rule)
	}
	nFont, err := r.ReadU32()
	if err != nil {
		return nil, err
	}
	for i := uint32(0); i < nFont; i++ {
		nDesc, err := r.ReadU32()
		if err != nil {
			return nil, err
		}
		desc := make(map[string]string, nDesc)
		for j := uint32(0); j < nDesc; j++ {
			k, err := readStr(r, pool)
			if err != nil {
				return nil, err
			}
			v, err := readStr(r, pool)
			if err != nil {
				return nil, err
			}
			desc[k] = v
		}
		ss.FontFaces = append(ss.FontFaces, cssom.FontFace{Descriptors: desc})
	}
	nKf, err := r.ReadU32()
	if err != nil {
		return nil, err
	}
	for i := uint32(0); i < nKf; i++ {
		name, err := readStr(r, pool)
		if err != nil {
			return nil, err
		}
		nStops, err := r.ReadU32()
		if err != nil {
			return nil, err
		}
		stops := make([]cssom.KeyframeStop, 0, nStops)
		for j := uint32(0); j < nStops; j++ {
			pct, err := r.ReadF64()
			if err != nil {
				return nil, err
			}
			nProps, err := r.ReadU32()
			if err != nil {
				return nil, err
			}
			props := make(map[string]string, nProps)
			for k := uint32(0); k < nProps; k++ {
				pk, err := readStr(r, pool)
				if err != nil {
					return nil, err
				}
				pv, err := readStr(r, pool)
				if err != nil {
					return nil, err
				}
				props[pk] = pv
			}
			stops = append(stops, cssom.KeyframeStop{Percent: pct, Properties: props})
		}
		ss.Keyframes = append(ss.Keyframes, cssom.Keyframes{Name: name, Stops: stops})
	}
	return ss, nil
}

func encodeRule(w *Writer, pool *strpool.StrPool, rule *cssom.Rule) {
	EncodeSelector(w, pool, rule.Selector)
	w.WriteU32(uint32(len(rule.Properties)))
	for _, pm := range rule.Properties {
		encodePropertyMeta(w, pool, pm)
	}
	encodeMedia(w, pool, rule.Media)
	w.WriteU32(rule.Index)
}

func decodeRule(r *Reader, pool *strpool.StrPool) (*cssom.Rule, error) {
	sel, err := DecodeSelector(r, pool)
	if err != nil {
		return nil, err
	}
	nProps, err := r.ReadU32()
	if err != nil {
		return nil, err
	}
	props := make([]cssval.PropertyMeta, 0, nProps)
	for i := uint32(0); i < nProps; i++ {
		pm, err := decodePropertyMeta(r, pool)
		if err != nil {
			return nil, err
		}
		props = append(props, pm)
	}
	media, err := decodeMedia(r, pool)
	if err != nil {
		return nil, err
	}
	index, err := r.ReadU32()
	if err != nil {
		return nil, err
	}
	return cssom.NewRule(sel, props, media, index), nil
}

func encodePropertyMeta(w *Writer, pool *strpool.StrPool, pm cssval.PropertyMeta) {
	w.WriteU8(uint8(pm.Kind))
	w.WriteBool(pm.Disabled)
	switch pm.Kind {
	case cssval.DeclDebugGroup:
		writeStr(w, pool, pm.ShorthandText)
		w.WriteU32(uint32(len(pm.Longhands)))
		for _, d := range pm.Longhands {
			encodeDeclaration(w, pool, d)
		}
	default:
		encodeDeclaration(w, pool, pm.Decl)
	}
}

func decodePropertyMeta(r *Reader, pool *strpool.StrPool) (cssval.PropertyMeta, error) {
	kb, err := r.ReadU8()
	if err != nil {
		return cssval.PropertyMeta{}, err
	}
	disabled, err := r.ReadBool()
	if err != nil {
		return cssval.PropertyMeta{}, err
	}
	kind := cssval.DeclKind(kb)
	pm := cssval.PropertyMeta{Kind: kind, Disabled: disabled}
	if kind == cssval.DeclDebugGroup {
		pm.ShorthandText, err = readStr(r, pool)
		if err != nil {
			return cssval.PropertyMeta{}, err
		}
		n, err := r.ReadU32()
		if err != nil {
			return cssval.PropertyMeta{}, err
		}
		pm.Longhands = make([]cssval.Declaration, 0, n)
		for i := uint32(0); i < n; i++ {
			d, err := decodeDeclaration(r, pool)
			if err != nil {
				return cssval.PropertyMeta{}, err
			}
			pm.Longhands = append(pm.Longhands, d)
		}
	} else {
		pm.Decl, err = decodeDeclaration(r, pool)
		if err != nil {
			return cssval.PropertyMeta{}, err
		}
	}
	return pm, nil
}

func encodeDeclaration(w *Writer, pool *strpool.StrPool, d cssval.Declaration) {
	writeStr(w, pool, d.Property)
	EncodeGlobalOr(w, pool, d.Property, d.Value)
}

func decodeDeclaration(r *Reader, pool *strpool.StrPool) (cssval.Declaration, error) {
	prop, err := readStr(r, pool)
	if err != nil {
		return cssval.Declaration{}, err
	}
	v, err := DecodeGlobalOr(r, pool, prop)
	if err != nil {
		return cssval.Declaration{}, err
	}
	return cssval.Declaration{Property: prop, Value: v}, nil
}

func encodeMedia(w *Writer, pool *strpool.StrPool, m *cssom.Media) {
	if m == nil {
		w.WriteBool(false)
		return
	}
	w.WriteBool(true)
	w.WriteU32(uint32(len(m.Conditions)))
	for _, group := range m.Conditions {
		w.WriteU32(uint32(len(group)))
		for _, f := range group {
			writeStr(w, pool, f.Type)
			writeStr(w, pool, f.Feature)
			w.WriteF64(f.ValuePx)
			writeStr(w, pool, f.ValueStr)
		}
	}
}

func decodeMedia(r *Reader, pool *strpool.StrPool) (*cssom.Media, error) {
	has, err := r.ReadBool()
	if err != nil {
		return nil, err
	}
	if !has {
		return nil, nil
	}
	nGroups, err := r.ReadU32()
	if err != nil {
		return nil, err
	}
	conds := make([][]cssom.MediaFeature, 0, nGroups)
	for i := uint32(0); i < nGroups; i++ {
		nFeat, err := r.ReadU32()
		if err != nil {
			return nil, err
		}
		group := make([]cssom.MediaFeature, 0, nFeat)
		for j := uint32(0); j < nFeat; j++ {
			var f cssom.MediaFeature
			if f.Type, err = readStr(r, pool); err != nil {
				return nil, err
			}
			if f.Feature, err = readStr(r, pool); err != nil {
				return nil, err
			}
			if f.ValuePx, err = r.ReadF64(); err != nil {
				return nil, err
			}
			if f.ValueStr, err = readStr(r, pool); err != nil {
				return nil, err
			}
			group = append(group, f)
		}
		conds = append(conds, group)
	}
	return &cssom.Media{Conditions: conds}, nil
}

// --- StyleSheetImportIndex -------------------------------------------------

// SerializeImportIndex encodes a StyleSheetImportIndex (serialize_bincode
// in spec §6).
func SerializeImportIndex(idx *cssom.StyleSheetImportIndex) []byte {
	pool := strpool.New()
	w := NewWriter()
	w.WriteU32(uint32(len(idx.Dependencies)))
	for path, deps := range idx.Dependencies {
		writeStr(w, pool, path)
		w.WriteU32(uint32(len(deps)))
		for _, d := range deps {
			writeStr(w, pool, d)
		}
	}
	pool.Freeze()
	out := NewWriter()
	out.WriteBytes(w.Bytes())
	out.WriteBytes(pool.Bytes())
	return out.Bytes()
}

// DeserializeImportIndex decodes a StyleSheetImportIndex. Merge combines
// two decoded indexes' dependency maps (merge_bincode in spec §6).
func DeserializeImportIndex(buf []byte) (*cssom.StyleSheetImportIndex, error) {
	r := NewReader(buf)
	body, err := r.ReadBytes()
	if err != nil {
		return nil, err
	}
	poolBytes, err := r.ReadBytes()
	if err != nil {
		return nil, err
	}
	pool := strpool.Borrow(append([]byte(nil), poolBytes...), nil)
	br := NewReader(body)
	n, err := br.ReadU32()
	if err != nil {
		return nil, err
	}
	idx := &cssom.StyleSheetImportIndex{Dependencies: make(map[string][]string, n)}
	for i := uint32(0); i < n; i++ {
		path, err := readStr(br, pool)
		if err != nil {
			return nil, err
		}
		nd, err := br.ReadU32()
		if err != nil {
			return nil, err
		}
		deps := make([]string, 0, nd)
		for j := uint32(0); j < nd; j++ {
			d, err := readStr(br, pool)
			if err != nil {
				return nil, err
			}
			deps = append(deps, d)
		}
		idx.Dependencies[path] = deps
	}
	return idx, nil
}
