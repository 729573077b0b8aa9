package dot

import (
	"regexp"
	"strings"

	"github.com/katalvlaran/popcontrol/automaton"
)

var (
	nodeStmtRe = regexp.MustCompile(`^\s*(\w+)\s*\[(.*)\]\s*;?\s*$`)
	edgeStmtRe = regexp.MustCompile(`^\s*(\w+)\s*->\s*(\w+)\s*(?:\[(.*)\])?\s*;?\s*$`)
	attrRe     = regexp.MustCompile(`(\w+)\s*=\s*("[^"]*"|[^,\]]+)`)
)

// Parse reads a DOT automaton, one node/edge statement per line (the
// subset original_source/src/nfa.rs's from_dot actually exercises).
func Parse(input string) (*automaton.Automaton, error) {
	var ids []string
	names := make(map[string]string)
	accepting := make(map[string]struct{})
	initial := make(map[string]struct{})
	type rawEdge struct{ from, to, label string }
	var edges []rawEdge

	for _, line := range strings.Split(input, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "//") || strings.HasPrefix(line, "digraph") ||
			line == "{" || line == "}" {
			continue
		}

		if m := edgeStmtRe.FindStringSubmatch(line); m != nil {
			from, to := m[1], m[2]
			attrs := parseAttrs(m[3])
			if from == "init" {
				initial[to] = struct{}{}
				continue
			}
			if label, ok := attrs["label"]; ok {
				edges = append(edges, rawEdge{from: from, to: to, label: label})
			}
			continue
		}

		if m := nodeStmtRe.FindStringSubmatch(line); m != nil {
			id := m[1]
			if id == "init" {
				continue
			}
			if _, ok := names[id]; !ok {
				ids = append(ids, id)
				names[id] = id
			}
			attrs := parseAttrs(m[2])
			if label, ok := attrs["label"]; ok {
				names[id] = label
			}
			if shape, ok := attrs["shape"]; ok && shape == "doublecircle" {
				accepting[id] = struct{}{}
			}
		}
	}

	if len(ids) == 0 {
		return nil, ErrNoStates
	}

	stateNames := make([]string, 0, len(ids))
	seen := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		name := names[id]
		if _, ok := seen[name]; ok {
			continue
		}
		seen[name] = struct{}{}
		stateNames = append(stateNames, name)
	}

	a := automaton.New(stateNames)
	for id := range initial {
		name, ok := names[id]
		if !ok {
			return nil, ErrDanglingReference
		}
		a.MarkInitial(name)
	}
	for id := range accepting {
		a.MarkAccepting(names[id])
	}
	for _, e := range edges {
		fromName, ok := names[e.from]
		if !ok {
			return nil, ErrDanglingReference
		}
		toName, ok := names[e.to]
		if !ok {
			return nil, ErrDanglingReference
		}
		for _, label := range strings.Split(e.label, ",") {
			label = strings.TrimSpace(label)
			if label == "" {
				continue
			}
			a.AddTransition(fromName, toName, label)
		}
	}

	return a, nil
}

func parseAttrs(s string) map[string]string {
	out := make(map[string]string)
	for _, m := range attrRe.FindAllStringSubmatch(s, -1) {
		out[m[1]] = strings.Trim(m[2], `"`)
	}
	return out
}
