package seqmatch

import "github.com/pkg/errors"

// Matcher tracks the live set of NFA states reachable by the symbols
// fed so far. It is an eager state-set simulation rather than a
// determinised automaton, matching the VC-2 reference implementation's
// approach (see SPEC_FULL.md §4.D / Design Notes).
type Matcher struct {
	n         *nfa
	curStates map[int]struct{}
}

// Compile parses expr (the grammar described in SPEC_FULL.md §4.D) and
// returns a fresh Matcher positioned at the start of the expression.
func Compile(expr string) (*Matcher, error) {
	root, err := parse(expr)
	if err != nil {
		return nil, errors.Wrapf(err, "seqmatch: compiling %q", expr)
	}
	n := build(root)
	m := &Matcher{n: n}
	m.curStates = epsilonClosure(n, map[int]struct{}{n.start: {}})
	return m, nil
}

// MatchSymbol advances the matcher by one symbol. It returns false, and
// leaves the matcher in a dead (no-states) configuration, if sym is not
// accepted from the current position.
func (m *Matcher) MatchSymbol(sym string) bool {
	next := make(map[int]struct{})
	for s := range m.curStates {
		for _, to := range m.n.states[s].transitions[sym] {
			next[to] = struct{}{}
		}
		if sym != Wildcard {
			for _, to := range m.n.states[s].transitions[Wildcard] {
				next[to] = struct{}{}
			}
		}
	}
	if len(next) == 0 {
		m.curStates = next
		return false
	}
	m.curStates = epsilonClosure(m.n, next)
	return true
}

// IsComplete reports whether the matcher has reached an accepting
// state, i.e. whether feeding EndOfSequence right now would succeed.
func (m *Matcher) IsComplete() bool {
	_, ok := m.curStates[m.n.accept]
	if ok {
		return true
	}
	for s := range m.curStates {
		for _, to := range m.n.states[s].transitions[EndOfSequence] {
			if to == m.n.accept {
				return true
			}
		}
	}
	return false
}

// ValidNextSymbols returns the set of symbols (possibly including
// Wildcard and EndOfSequence) accepted from the current position.
func (m *Matcher) ValidNextSymbols() map[string]struct{} {
	out := make(map[string]struct{})
	for s := range m.curStates {
		for sym := range m.n.states[s].transitions {
			if sym == epsilon {
				continue
			}
			out[sym] = struct{}{}
		}
	}
	if _, ok := m.curStates[m.n.accept]; ok {
		out[EndOfSequence] = struct{}{}
	}
	return out
}
