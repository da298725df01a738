package decoder

import (
	"github.com/pkg/errors"

	"github.com/bbc/vc2-conformance/seqmatch"
	"github.com/bbc/vc2-conformance/tables"
	"github.com/bbc/vc2-conformance/valueset"
	"github.com/bbc/vc2-conformance/vlc"
)

// seqMatcher wraps a compiled seqmatch.Matcher with the data-unit-type
// symbol vocabulary used by the level-sequencing grammar.
type seqMatcher struct{ m *seqmatch.Matcher }

func newSeqMatcher(level int) (*seqMatcher, error) {
	expr, ok := tables.LevelSequencingRegexes[level]
	if !ok {
		expr = tables.LevelSequencingRegexes[0]
	}
	m, err := seqmatch.Compile(expr)
	if err != nil {
		return nil, errors.Wrap(err, "decoder: compiling level sequencing grammar")
	}
	return &seqMatcher{m: m}, nil
}

func parseCodeSymbol(code tables.ParseCode) string {
	switch {
	case code == tables.ParseCodeSequenceHeader:
		return "sequence_header"
	case code.IsAuxiliaryData():
		return "auxiliary_data"
	case code == tables.ParseCodePaddingData:
		return "padding_data"
	case code.IsPictureOrFragment() && code.IsFragment():
		return "picture_fragment"
	case code.IsPictureOrFragment():
		return "picture"
	default:
		return "?"
	}
}

// assertParseCodeInSequence feeds code's symbol to the sequence matcher
// and fails if it is rejected.
func (s *State) assertParseCodeInSequence(code tables.ParseCode) error {
	if s.sequenceMatcher == nil {
		var err error
		s.sequenceMatcher, err = newSeqMatcher(s.level)
		if err != nil {
			return err
		}
	}
	sym := parseCodeSymbol(code)
	if !s.sequenceMatcher.m.MatchSymbol(sym) {
		return newError(KindParseCodeNotAllowedInSequence, s.pos(),
			"parse code not permitted at this point in the sequence", code, nil)
	}
	return nil
}

// assertParseCodeSequenceEnded checks that the sequence matcher has
// reached an accepting state, called when an end_of_sequence data unit
// is seen.
func (s *State) assertParseCodeSequenceEnded() error {
	if s.sequenceMatcher == nil {
		return nil
	}
	if !s.sequenceMatcher.m.IsComplete() {
		return newError(KindParseCodeSequenceNotEnded, s.pos(),
			"end of sequence reached before the level's grammar accepted", nil, nil)
	}
	return nil
}

// assertIn fails unless value is a member of allowed, reporting pos as
// the offending field's location.
func (s *State) assertIn(kind Kind, pos position, value int64, allowed []int64, msg string) error {
	for _, v := range allowed {
		if v == value {
			return nil
		}
	}
	boxed := make([]interface{}, len(allowed))
	for i, v := range allowed {
		boxed[i] = v
	}
	return newError(kind, pos, msg, value, boxed)
}

// assertLevelConstraint checks that setting key=value keeps the
// aggregate set of level-constrained field values allowed by the
// configured level-constraint table, then records it.
func (s *State) assertLevelConstraint(key string, value int) error {
	known := false
	for _, combo := range s.cfg.LevelConstraints {
		if _, ok := combo[key]; ok {
			known = true
			break
		}
	}
	if !known {
		// Fields absent from every combination in the configured
		// constraint table are, by construction, unconstrained: the
		// table only ever lists the fields it actually restricts.
		return nil
	}

	candidate := make(map[string]int, len(s.levelConstrainedValues)+1)
	for k, v := range s.levelConstrainedValues {
		candidate[k] = v
	}
	candidate[key] = value

	if !valueset.IsAllowed(s.cfg.LevelConstraints, candidate) {
		allowed := valueset.AllowedValuesFor(s.cfg.LevelConstraints, key, candidate, valueset.Any())
		var boxed []interface{}
		if !allowed.IsAny() {
			for _, v := range allowed.Values() {
				boxed = append(boxed, v)
			}
		}
		return newError(KindValueNotAllowedInLevel, s.pos(),
			"value not allowed by the level constraint table for field "+key, value, boxed)
	}
	s.levelConstrainedValues[key] = value
	return nil
}

// readUintLevelConstrained reads a UInt field and checks it against the
// level constraint table under key.
func (s *State) readUintLevelConstrained(key string) (uint64, error) {
	v := vlc.ReadUint(s.r)
	if err := s.assertLevelConstraint(key, int(v)); err != nil {
		return v, err
	}
	return v, nil
}
