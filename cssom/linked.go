package cssom

// LinkedEntry is one sheet in a LinkedStyleSheet's flattened order, carrying
// the @media context under which it applies (its own, possibly narrowed by
// the @import edge that pulled it in).
type LinkedEntry struct {
	Sheet *StyleSheet
	Media *Media
	Path  string
}

// LinkedStyleSheet is a CompiledStyleSheet together with its transitive
// imports flattened into cascade order, tagged with a scope, per spec §3:
// "imports appear before the importing sheet (transitive deps first); a
// sheet may appear multiple times in the list with different effective
// @media contexts."
type LinkedStyleSheet struct {
	Scope  uint64
	Sheets []LinkedEntry
}

// Link performs the depth-first flattening described in spec §4.3: "pushing
// each sheet once (per import media) into the resulting
// LinkedStyleSheet.sheets vector. Recursive imports are detected via a
// per-sheet currently-borrowed flag and produce a RecursiveImports warning;
// the offending edge is dropped."
func Link(res *StyleSheetResource, rootPath string, scope uint64) (*LinkedStyleSheet, []Warning) {
	linked := &LinkedStyleSheet{Scope: scope}
	var warnings []Warning
	var walk func(path string, media *Media)
	walk = func(path string, media *Media) {
		cs, ok := res.sheets[path]
		if !ok {
			warnings = append(warnings, NewWarning(WarnMissingImportTarget, "import target not found: "+path, 0, 0, 0, 0))
			return
		}
		if cs.borrowed {
			warnings = append(warnings, NewWarning(WarnRecursiveImports, "recursive @import involving "+path, 0, 0, 0, 0))
			return
		}
		cs.borrowed = true
		defer func() { cs.borrowed = false }()
		for _, imp := range cs.Imports {
			resolved := resolveImportPath(path, imp.Path)
			walk(resolved, imp.Media)
		}
		linked.Sheets = append(linked.Sheets, LinkedEntry{Sheet: cs.SS, Media: media, Path: path})
	}
	walk(rootPath, nil)
	return linked, warnings
}

// StyleSheetFromSource is a convenience used by cssom/parser and tests: it
// links a single already-compiled sheet (with no import resolution beyond
// what the resource already holds), matching spec §6's
// "StyleSheet::from_str(source) -> LinkedStyleSheet" entry point when
// embedders have no import graph to manage.
func StyleSheetFromSource(cs *CompiledStyleSheet) *LinkedStyleSheet {
	return &LinkedStyleSheet{Sheets: []LinkedEntry{{Sheet: cs.SS, Path: cs.Path}}}
}
