package tikz

import (
	"regexp"
	"strings"

	"github.com/katalvlaran/popcontrol/automaton"
)

var (
	stateRe = regexp.MustCompile(`\\node\[(?P<attrs>[^\]]*)\]\s*at\s*\([^)]+\)\s*\((?P<id>\w+)\)\s*\{\$(?P<name>[^$]+)\$\}`)
	edgeRe  = regexp.MustCompile(`\((?P<from>\w+)\)\s*edge.*?\{\$(?P<label>[^$]+)\$\}\s*\((?P<to>\w+)\)`)
)

// Parse reads TikZ source into an *automaton.Automaton. States with the
// same `$name$` collapse into one state even if finsm.io assigned them
// distinct node ids (one id per drawn position); a state is initial or
// accepting if any of its ids carries the "initial"/"accepting" tikz
// attribute.
func Parse(input string) (*automaton.Automaton, error) {
	ids, names, initialIDs, acceptingIDs := scanStates(input)
	if len(ids) == 0 {
		return nil, ErrNoStates
	}

	stateNames := make([]string, 0, len(names))
	seen := make(map[string]struct{}, len(names))
	for _, id := range ids {
		name := names[id]
		if _, ok := seen[name]; ok {
			continue
		}
		seen[name] = struct{}{}
		stateNames = append(stateNames, name)
	}

	a := automaton.New(stateNames)
	for id := range initialIDs {
		a.MarkInitial(names[id])
	}
	for id := range acceptingIDs {
		a.MarkAccepting(names[id])
	}

	for _, m := range edgeRe.FindAllStringSubmatch(input, -1) {
		group := matchGroup(edgeRe, m)
		fromName, ok := names[group["from"]]
		if !ok {
			return nil, ErrDanglingReference
		}
		toName, ok := names[group["to"]]
		if !ok {
			return nil, ErrDanglingReference
		}
		for _, label := range strings.Split(group["label"], ",") {
			label = strings.TrimSpace(label)
			if label == "" {
				continue
			}
			a.AddTransition(fromName, toName, label)
		}
	}

	return a, nil
}

// scanStates returns tikz ids in first-seen order, id->name, and the
// sets of ids whose attrs contain "initial"/"accepting".
func scanStates(input string) (ids []string, names map[string]string, initial, accepting map[string]struct{}) {
	names = make(map[string]string)
	initial = make(map[string]struct{})
	accepting = make(map[string]struct{})
	for _, m := range stateRe.FindAllStringSubmatch(input, -1) {
		group := matchGroup(stateRe, m)
		id := group["id"]
		if _, ok := names[id]; !ok {
			ids = append(ids, id)
		}
		names[id] = group["name"]
		if strings.Contains(group["attrs"], "initial") {
			initial[id] = struct{}{}
		}
		if strings.Contains(group["attrs"], "accepting") {
			accepting[id] = struct{}{}
		}
	}
	return ids, names, initial, accepting
}

func matchGroup(re *regexp.Regexp, m []string) map[string]string {
	out := make(map[string]string, len(m))
	for i, name := range re.SubexpNames() {
		if i == 0 || name == "" {
			continue
		}
		out[name] = m[i]
	}
	return out
}
