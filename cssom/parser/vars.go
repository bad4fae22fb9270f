package parser

import "strings"

// varEnv holds one stylesheet's custom-property (--name) declarations and
// resolves var() references against them, cycle-safe per spec §4.1/§7 ("a
// cycle through custom properties sets property N to None" — here,
// substitution simply fails and the caller falls back to Invalid()).
//
// This subset resolves variables at parse time against same-sheet
// declarations only; a full implementation would re-resolve per cascaded
// node since a custom property can itself be cascaded/inherited, but the
// NodeProperties model this engine carries doesn't expose a live custom-
// property environment to relayer into (see DESIGN.md Open Question on
// custom-property scope).
type varEnv struct {
	props map[string]string
}

func newVarEnv() *varEnv {
	return &varEnv{props: make(map[string]string)}
}

func (e *varEnv) define(name, value string) {
	e.props[name] = value
}

// substitute replaces every var(--name[, fallback]) reference in text with
// its resolved value, returning ok=false if a reference is undefined (with
// no fallback) or part of a cycle.
func (e *varEnv) substitute(text string) (string, bool) {
	if !strings.Contains(text, "var(") {
		return text, true
	}
	return e.substituteAll(text, map[string]bool{})
}

func (e *varEnv) resolve(name string, stack map[string]bool) (string, bool) {
	if stack[name] {
		return "", false
	}
	val, ok := e.props[name]
	if !ok {
		return "", false
	}
	stack[name] = true
	out, ok := e.substituteAll(val, stack)
	delete(stack, name)
	return out, ok
}

func (e *varEnv) substituteAll(text string, stack map[string]bool) (string, bool) {
	var sb strings.Builder
	i := 0
	for i < len(text) {
		idx := strings.Index(text[i:], "var(")
		if idx < 0 {
			sb.WriteString(text[i:])
			break
		}
		sb.WriteString(text[i : i+idx])
		start := i + idx + 4
		depth := 1
		j := start
		for j < len(text) && depth > 0 {
			switch text[j] {
			case '(':
				depth++
			case ')':
				depth--
				if depth == 0 {
					goto found
				}
			}
			j++
		}
		return "", false
	found:
		name, fallback := splitVarArg(text[start:j])
		resolved, ok := e.resolve(name, stack)
		if !ok {
			if fallback == "" {
				return "", false
			}
			fb, fbok := e.substituteAll(fallback, stack)
			if !fbok {
				return "", false
			}
			resolved = fb
		}
		sb.WriteString(resolved)
		i = j + 1
	}
	return sb.String(), true
}

func splitVarArg(inner string) (name, fallback string) {
	idx := strings.IndexByte(inner, ',')
	if idx < 0 {
		return strings.TrimSpace(inner), ""
	}
	return strings.TrimSpace(inner[:idx]), strings.TrimSpace(inner[idx+1:])
}
