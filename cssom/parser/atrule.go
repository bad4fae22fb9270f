package parser

import (
	"strconv"
	"strings"

	"github.com/wechat-miniprogram/float-pigment-sub002/cssom"
	"github.com/wechat-miniprogram/float-pigment-sub002/cssval"
)

// parseMediaQuery turns an @media prelude ("screen and (min-width: 600px),
// print") into a cssom.Media condition tree: comma-separated groups are OR'd,
// "and"-joined features within a group are AND'd, per spec §4.5. Features
// this subset doesn't recognize are kept as always-true MediaFeatures rather
// than rejecting the whole query, matching the parser's "never hard-fail"
// policy (spec §7); no warning is raised for them.
func parseMediaQuery(prelude string) *cssom.Media {
	var conds [][]cssom.MediaFeature
	for _, group := range strings.Split(prelude, ",") {
		var feats []cssom.MediaFeature
		for _, term := range strings.Split(group, " and ") {
			term = strings.TrimSpace(term)
			if term == "" {
				continue
			}
			feats = append(feats, parseMediaFeature(term))
		}
		if len(feats) > 0 {
			conds = append(conds, feats)
		}
	}
	if len(conds) == 0 {
		return nil
	}
	return &cssom.Media{Conditions: conds}
}

func parseMediaFeature(term string) cssom.MediaFeature {
	if !strings.HasPrefix(term, "(") {
		return cssom.MediaFeature{Type: strings.ToLower(term)}
	}
	inner := strings.TrimSuffix(strings.TrimPrefix(term, "("), ")")
	parts := strings.SplitN(inner, ":", 2)
	name := strings.TrimSpace(parts[0])
	if len(parts) == 1 {
		return cssom.MediaFeature{Feature: name}
	}
	val := strings.TrimSpace(parts[1])
	switch name {
	case "min-width", "max-width", "min-height", "max-height":
		return cssom.MediaFeature{Feature: name, ValuePx: mediaFeaturePx(val)}
	default:
		return cssom.MediaFeature{Feature: name, ValueStr: val}
	}
}

// mediaFeaturePx resolves a media-feature length for viewport comparison:
// only px (and px-equivalent rpx) literals are meaningful here, since a
// min/max-width query is compared against MediaQueryStatus.Width directly
// rather than through a node's font-size/percentage context; any other
// unit degrades to 0, the same way an unresolvable Length does elsewhere
// (spec §7).
func mediaFeaturePx(val string) float64 {
	l, ok := parseLengthText(val)
	if !ok {
		return 0
	}
	unit, v := l.UnitValue()
	if unit == cssval.UnitPx || unit == cssval.UnitRpx || unit == cssval.UnitNone {
		return v
	}
	return 0
}

// parseFontFace turns an @font-face block's raw declaration text into a
// cssom.FontFace, keeping every descriptor as opaque text per spec §4 ("font
// loading is an embedder concern").
func parseFontFace(declText string) cssom.FontFace {
	ff := cssom.FontFace{Descriptors: map[string]string{}}
	for _, stmt := range strings.Split(declText, ";") {
		stmt = strings.TrimSpace(stmt)
		if stmt == "" {
			continue
		}
		parts := strings.SplitN(stmt, ":", 2)
		if len(parts) != 2 {
			continue
		}
		ff.Descriptors[strings.TrimSpace(parts[0])] = strings.TrimSpace(parts[1])
	}
	return ff
}

// parseKeyframeStopPercents parses a keyframe rule's prelude ("0%, 50%",
// "from", "to") into its percentage stops.
func parseKeyframeStopPercents(prelude string) []float64 {
	var out []float64
	for _, tok := range strings.Split(prelude, ",") {
		tok = strings.ToLower(strings.TrimSpace(tok))
		switch tok {
		case "from":
			out = append(out, 0)
		case "to":
			out = append(out, 100)
		default:
			tok = strings.TrimSuffix(tok, "%")
			if f, err := strconv.ParseFloat(tok, 64); err == nil {
				out = append(out, f)
			}
		}
	}
	return out
}

// parseKeyframeDeclText turns one keyframe stop's raw declaration text into
// a flat property->value map, the same opaque representation FontFace uses
// (keyframe interpolation is an animation-runtime concern outside this
// engine's scope, per spec Non-goals).
func parseKeyframeDeclText(declText string) map[string]string {
	out := map[string]string{}
	for _, stmt := range strings.Split(declText, ";") {
		stmt = strings.TrimSpace(stmt)
		if stmt == "" {
			continue
		}
		parts := strings.SplitN(stmt, ":", 2)
		if len(parts) != 2 {
			continue
		}
		out[strings.TrimSpace(parts[0])] = strings.TrimSpace(parts[1])
	}
	return out
}
