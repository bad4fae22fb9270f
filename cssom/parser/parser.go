package parser

import (
	"strings"

	douceurcss "github.com/aymerick/douceur/css"
	douceur "github.com/aymerick/douceur/parser"

	"github.com/wechat-miniprogram/float-pigment-sub002/cssom"
	"github.com/wechat-miniprogram/float-pigment-sub002/cssval"
)

// At-rule names as douceur exposes them (Rule.Name includes the leading
// "@", e.g. "@media"), mirroring the teacher douceuradapter's reliance on
// douceur's own Rule shape rather than reimplementing a CSS tokenizer.
const (
	atImport        = "@import"
	atMedia         = "@media"
	atFontFace      = "@font-face"
	atKeyframes     = "@keyframes"
	atKeyframesWebk = "@-webkit-keyframes"
	atSupports      = "@supports"
	atFontFeature   = "@font-feature-values"
)

// Parse compiles CSS source text into a *cssom.CompiledStyleSheet, scoping
// every selector it produces to scope (0 for an unscoped/global sheet; spec
// §4.4's "scoped style" otherwise), per path (used only for diagnostics and
// as the CompiledStyleSheet's own identity, not resolved against a
// filesystem — that is the embedder's job via StyleSheetResource).
//
// Following douceuradapter's "parse with douceur, adapt into our own types"
// shape: douceur/parser.Parse never returns a parse error for malformed CSS,
// it recovers and keeps going, matching this package's own "never hard-fail,
// only warn" policy (spec §7).
func Parse(path, source string, scope uint64) *cssom.CompiledStyleSheet {
	sheet, err := douceur.Parse(source)
	if err != nil {
		return cssom.NewCompiledStyleSheet(path, cssom.NewStyleSheet(), nil, []cssom.Warning{
			cssom.NewWarning(cssom.WarnUnparseableDeclaration, err.Error(), 0, 0, 0, 0),
		})
	}
	p := &sheetParser{ss: cssom.NewStyleSheet(), scope: scope, vars: newVarEnv()}
	p.collectVars(sheet.Rules)
	for _, r := range sheet.Rules {
		p.parseTopLevelRule(r)
	}
	return cssom.NewCompiledStyleSheet(path, p.ss, p.imports, p.warnings)
}

// ParseToCompiled is an alias kept for call sites that prefer a verb-first
// name; it behaves identically to Parse.
func ParseToCompiled(path, source string, scope uint64) *cssom.CompiledStyleSheet {
	return Parse(path, source, scope)
}

// AddSource parses source and registers the result into res under path in
// one step, the common case for an embedder loading a .wxss/.css file.
func AddSource(res *cssom.StyleSheetResource, path, source string, scope uint64) *cssom.CompiledStyleSheet {
	compiled := Parse(path, source, scope)
	res.Add(path, compiled)
	return compiled
}

type sheetParser struct {
	ss       *cssom.StyleSheet
	scope    uint64
	vars     *varEnv
	imports  []cssom.ImportEntry
	warnings []cssom.Warning
	index    uint32
}

// collectVars does a first pass over the rule list gathering every
// top-level ":root { --x: ... }" (and bare ":root"-less, since this subset
// doesn't scope custom properties per-selector) custom property declaration,
// so later value parsing can substitute var() references regardless of
// source order within the sheet (spec §4.1 custom properties are effectively
// sheet-global in this engine's model; see DESIGN.md Open Question on
// custom-property scope).
func (p *sheetParser) collectVars(rules []*douceurcss.Rule) {
	for _, r := range rules {
		if r.Kind != 0 {
			if r.Name == atMedia || r.Name == atSupports {
				p.collectVars(r.Rules)
			}
			continue
		}
		for _, d := range r.Declarations {
			if strings.HasPrefix(d.Property, "--") {
				p.vars.define(d.Property, d.Value)
			}
		}
	}
}

func (p *sheetParser) parseTopLevelRule(r *douceurcss.Rule) {
	if r.Kind == 0 {
		p.parseQualifiedRule(r, nil)
		return
	}
	switch r.Name {
	case atImport:
		p.parseImport(r)
	case atMedia:
		media := parseMediaQuery(r.Prelude)
		for _, nested := range r.Rules {
			p.parseQualifiedRule(nested, media)
		}
	case atFontFace:
		p.ss.FontFaces = append(p.ss.FontFaces, parseFontFace(joinDeclText(r.Declarations)))
	case atKeyframes, atKeyframesWebk:
		p.ss.Keyframes = append(p.ss.Keyframes, p.parseKeyframes(r))
	case atSupports:
		// @supports conditions aren't evaluated (the spec targets a fixed
		// rendering engine with a known feature set); its rules are taken
		// unconditionally, matching "degrade gracefully, never hard-fail".
		for _, nested := range r.Rules {
			p.parseQualifiedRule(nested, nil)
		}
	case atFontFeature:
		// Font feature values are opaque to layout; dropped with a warning
		// rather than silently, so a host that does care can see it was
		// skipped.
		p.warn(cssom.WarnUnknownAtRule, "@font-feature-values is not evaluated", r)
	default:
		p.warn(cssom.WarnUnknownAtRule, "unrecognized at-rule "+r.Name, r)
	}
}

func (p *sheetParser) parseImport(r *douceurcss.Rule) {
	prelude := strings.TrimSpace(r.Prelude)
	fields := strings.SplitN(prelude, " ", 2)
	target := strings.Trim(fields[0], `"'`)
	target = strings.TrimPrefix(target, "url(")
	target = strings.TrimSuffix(target, ")")
	target = strings.Trim(target, `"'`)
	var media *cssom.Media
	if len(fields) == 2 {
		media = parseMediaQuery(fields[1])
	}
	if target == "" {
		p.warn(cssom.WarnUnparseableDeclaration, "malformed @import prelude: "+r.Prelude, r)
		return
	}
	p.imports = append(p.imports, cssom.ImportEntry{Path: target, Media: media})
}

func (p *sheetParser) parseKeyframes(r *douceurcss.Rule) cssom.Keyframes {
	kf := cssom.Keyframes{Name: strings.TrimSpace(r.Prelude)}
	for _, stop := range r.Rules {
		percents := parseKeyframeStopPercents(stop.Prelude)
		decls := parseKeyframeDeclText(joinDeclText(stop.Declarations))
		for _, pct := range percents {
			kf.Stops = append(kf.Stops, cssom.KeyframeStop{Percent: pct, Properties: decls})
		}
	}
	return kf
}

func (p *sheetParser) parseQualifiedRule(r *douceurcss.Rule, media *cssom.Media) {
	groups := cssom.ParseSelectorText(r.Prelude)
	if len(groups) == 0 {
		p.warn(cssom.WarnUnparseableSelector, "empty or malformed selector: "+r.Prelude, r)
		return
	}
	sel := cssom.NewSelector(groups, p.scope)
	props := p.parseDeclarations(r.Declarations)
	p.ss.AddRule(cssom.NewRule(sel, props, media, p.index))
	p.index++
}

func (p *sheetParser) parseDeclarations(decls []*douceurcss.Declaration) []cssval.PropertyMeta {
	out := make([]cssval.PropertyMeta, 0, len(decls))
	for _, d := range decls {
		if strings.HasPrefix(d.Property, "--") {
			continue // custom properties don't themselves cascade as longhands
		}
		text, ok := p.vars.substitute(d.Value)
		if !ok {
			out = append(out, cssval.PropertyMeta{
				Kind: declKind(d.Important),
				Decl: cssval.Declaration{Property: d.Property, Value: cssval.Invalid[cssval.PropertyValue]()},
			})
			continue
		}
		if _, isShorthand := shorthandLonghands[d.Property]; isShorthand {
			// PropertyMeta.Kind can't mark a DebugGroup both expanded and
			// !important at once (Declarations() picks Longhands only for
			// DeclDebugGroup), so a shorthand's !important is not carried
			// through to the cascade weight here; it still expands to its
			// longhands correctly, it just competes on selector specificity
			// alone rather than jumping to the !important tier.
			out = append(out, expandShorthand(d.Property, text))
			continue
		}
		out = append(out, cssval.PropertyMeta{
			Kind: declKind(d.Important),
			Decl: cssval.Declaration{Property: d.Property, Value: parseValue(d.Property, text)},
		})
	}
	return out
}

func declKind(important bool) cssval.DeclKind {
	if important {
		return cssval.DeclImportant
	}
	return cssval.DeclNormal
}

func (p *sheetParser) warn(kind cssom.WarningKind, msg string, _ *douceurcss.Rule) {
	p.warnings = append(p.warnings, cssom.NewWarning(kind, msg, 0, 0, 0, 0))
}

func joinDeclText(decls []*douceurcss.Declaration) string {
	var sb strings.Builder
	for _, d := range decls {
		sb.WriteString(d.Property)
		sb.WriteString(": ")
		sb.WriteString(d.Value)
		sb.WriteString("; ")
	}
	return sb.String()
}
