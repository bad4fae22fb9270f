package cssom

// FontFace is one parsed @font-face block, carried opaquely as raw
// declarations (the spec treats font loading as an embedder concern; the
// engine only needs to round-trip the block through the binary codec and
// hand it back to the host).
type FontFace struct {
	Descriptors map[string]string
}

// Keyframes is one parsed @keyframes block: a name plus an ordered list of
// percentage stops, each carrying its own declaration set.
type Keyframes struct {
	Name  string
	Stops []KeyframeStop
}

// KeyframeStop is one "N% { decls }" entry inside @keyframes.
type KeyframeStop struct {
	Percent    float64 // 0..100; "from" == 0, "to" == 100
	Properties map[string]string
}

// StyleSheet holds a flat set of rules plus the class-index acceleration
// structure the query engine probes, per spec §3: "class_index maps the
// first class of a rule's rightmost fragment to that rule; rules whose
// rightmost fragment has no class live in class_unindexed."
type StyleSheet struct {
	Rules          []*Rule
	FontFaces      []FontFace
	Keyframes      []Keyframes
	classIndex     map[string][]*Rule
	classUnindexed []*Rule
	indexBuilt     bool
}

// NewStyleSheet creates an empty, mutable StyleSheet.
func NewStyleSheet() *StyleSheet {
	return &StyleSheet{}
}

// AddRule appends a rule and invalidates the cached class index.
func (ss *StyleSheet) AddRule(r *Rule) {
	ss.Rules = append(ss.Rules, r)
	ss.indexBuilt = false
}

// buildIndex populates classIndex/classUnindexed from Rules. Safe to call
// repeatedly; it is a no-op once built until AddRule invalidates it again.
func (ss *StyleSheet) buildIndex() {
	if ss.indexBuilt {
		return
	}
	ss.classIndex = make(map[string][]*Rule)
	ss.classUnindexed = nil
	for _, r := range ss.Rules {
		for _, group := range r.Selector.Groups {
			if cls, ok := group.firstClass(); ok {
				ss.classIndex[cls] = append(ss.classIndex[cls], r)
			} else {
				ss.classUnindexed = append(ss.classUnindexed, r)
			}
		}
	}
	ss.indexBuilt = true
}

// CandidatesForClass returns the rules indexed under the given class, built
// lazily on first probe (spec §4.4 step 2: "Build/reuse the class index").
func (ss *StyleSheet) CandidatesForClass(class string) []*Rule {
	ss.buildIndex()
	return ss.classIndex[class]
}

// UnindexedCandidates returns rules whose rightmost fragment has no class.
func (ss *StyleSheet) UnindexedCandidates() []*Rule {
	ss.buildIndex()
	return ss.classUnindexed
}
