package cssom

import (
	"path"
	"strings"
)

// StyleSheetResource is a mapping from normalized virtual path to
// CompiledStyleSheet, per spec §4.3. Paths are normalized by stripping a
// trailing ".wxss"/".css" suffix, so "/a/b.wxss" and "/a/b.css" name the
// same resource.
type StyleSheetResource struct {
	sheets map[string]*CompiledStyleSheet
}

// NewStyleSheetResource creates an empty resource set.
func NewStyleSheetResource() *StyleSheetResource {
	return &StyleSheetResource{sheets: make(map[string]*CompiledStyleSheet)}
}

// NormalizePath strips a recognized stylesheet suffix from p, per spec §4.3.
func NormalizePath(p string) string {
	for _, suffix := range []string{".wxss", ".css"} {
		if strings.HasSuffix(p, suffix) {
			return strings.TrimSuffix(p, suffix)
		}
	}
	return p
}

// Add registers an already-parsed CompiledStyleSheet under its normalized
// path. cssom/parser.AddSource parses raw CSS text and calls this; this
// package does not depend on the parser to avoid an import cycle (the
// parser depends on cssom, not the reverse).
func (res *StyleSheetResource) Add(p string, cs *CompiledStyleSheet) {
	np := NormalizePath(p)
	cs.Path = np
	res.sheets[np] = cs
}

// Get returns the compiled sheet at the given (possibly unnormalized) path.
func (res *StyleSheetResource) Get(p string) (*CompiledStyleSheet, bool) {
	cs, ok := res.sheets[NormalizePath(p)]
	return cs, ok
}

// resolveImportPath resolves an @import target relative to the importing
// sheet's own path, per spec §4.3:
//  1. absolute path if it starts with "/"
//  2. otherwise relative to the importing file's directory, with "." and
//     ".." segments collapsed.
func resolveImportPath(importingPath, target string) string {
	target = NormalizePath(target)
	if strings.HasPrefix(target, "/") {
		return path.Clean(target)
	}
	dir := path.Dir(importingPath)
	return path.Clean(path.Join(dir, target))
}

// StyleSheetImportIndex is the per-sheet dependency list produced by
// GenerateImportIndexes, per spec §4.3.
type StyleSheetImportIndex struct {
	// Dependencies maps a sheet path to the direct paths it imports.
	Dependencies map[string][]string
}

// GenerateImportIndexes walks the whole resource's import graph and builds
// a dependency list per sheet (generate_import_indexes in spec §6). The
// graph has no single root (sheets form a forest, possibly sharing
// subgraphs via diamond imports), so every sheet path in res.sheets is
// visited directly with a plain recursive DFS guarded by a visited set,
// the same style QueryAndMarkDependencies and ListDependencies below use
// for the same kind of graph walk: the result is an unordered map, so
// running branches concurrently would buy nothing here.
func (res *StyleSheetResource) GenerateImportIndexes() *StyleSheetImportIndex {
	idx := &StyleSheetImportIndex{Dependencies: make(map[string][]string)}
	visited := make(map[string]bool)
	var visit func(p string)
	visit = func(p string) {
		if visited[p] {
			return
		}
		visited[p] = true
		cs, ok := res.sheets[NormalizePath(p)]
		if !ok {
			return
		}
		deps := make([]string, 0, len(cs.Imports))
		for _, imp := range cs.Imports {
			resolved := resolveImportPath(p, imp.Path)
			deps = append(deps, resolved)
			visit(resolved)
		}
		idx.Dependencies[p] = deps
	}
	for p := range res.sheets {
		visit(p)
	}
	return idx
}

// Merge combines another index's dependency lists into idx, used when
// multiple partial indexes (e.g. from incrementally-added sheets) need to
// be combined into one (spec §6 "StyleSheetImportIndex::{...,merge}_bincode").
func (idx *StyleSheetImportIndex) Merge(other *StyleSheetImportIndex) {
	if other == nil {
		return
	}
	for p, deps := range other.Dependencies {
		idx.Dependencies[p] = deps
	}
}

// QueryAndMarkDependencies returns the topological order (leaves first) of
// sheets reachable from path, per spec §4.3. "Leaves first" means a sheet
// never appears before any sheet it imports.
func (res *StyleSheetResource) QueryAndMarkDependencies(p string) []string {
	var order []string
	visited := make(map[string]bool)
	var visit func(string)
	visit = func(cur string) {
		if visited[cur] {
			return
		}
		visited[cur] = true
		cs, ok := res.sheets[NormalizePath(cur)]
		if !ok {
			return
		}
		for _, imp := range cs.Imports {
			visit(resolveImportPath(cur, imp.Path))
		}
		order = append(order, NormalizePath(cur))
	}
	visit(p)
	return order
}

// ListDependencies returns the full transitive dependency list of path
// (not including path itself), optionally following nested imports of
// imports when follow is true; when false, only direct imports are
// returned.
func (res *StyleSheetResource) ListDependencies(p string, follow bool) []string {
	cs, ok := res.Get(p)
	if !ok {
		return nil
	}
	if !follow {
		out := make([]string, 0, len(cs.Imports))
		for _, imp := range cs.Imports {
			out = append(out, resolveImportPath(cs.Path, imp.Path))
		}
		return out
	}
	seen := map[string]bool{cs.Path: true}
	var out []string
	var walk func(path string)
	walk = func(path string) {
		c, ok := res.sheets[NormalizePath(path)]
		if !ok {
			return
		}
		for _, imp := range c.Imports {
			resolved := resolveImportPath(c.Path, imp.Path)
			if !seen[resolved] {
				seen[resolved] = true
				out = append(out, resolved)
				walk(resolved)
			}
		}
	}
	walk(cs.Path)
	return out
}
