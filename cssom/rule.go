package cssom

import "github.com/wechat-miniprogram/float-pigment-sub002/cssval"

// Rule is one parsed CSS rule: a selector plus its declared properties,
// optional @media guard, and the index assigned at parse time, per spec §3.
type Rule struct {
	Selector     *Selector
	Properties   []cssval.PropertyMeta
	Media        *Media
	Index        uint32
	HasFontSize  bool // cached flag used to accelerate the two-pass cascade
}

// computeHasFontSize scans Properties for a "font-size" declaration and
// caches the result on the Rule, mirroring spec §3's "has_font_size is a
// cached flag used to accelerate two-pass cascade."
func (r *Rule) computeHasFontSize() {
	for _, pm := range r.Properties {
		for _, d := range pm.Declarations() {
			if d.Property == "font-size" {
				r.HasFontSize = true
				return
			}
		}
	}
}

// NewRule constructs a Rule and computes its cached flags.
func NewRule(sel *Selector, props []cssval.PropertyMeta, media *Media, index uint32) *Rule {
	r := &Rule{Selector: sel, Properties: props, Media: media, Index: index}
	r.computeHasFontSize()
	return r
}
