/*
DESCRIPTION
  Package seqmatch implements a symbolic regular-expression matcher over
  data-unit-type symbols: the grammar used to express VC-2 level
  sequencing rules ("sequence_header (high_quality_picture |
  high_quality_picture_fragment)* end_of_sequence"). Matching proceeds
  via direct (non-determinised) NFA simulation over a frontier of
  current states, one symbol at a time.
*/
package seqmatch

import (
	"regexp"
	"strings"

	"github.com/pkg/errors"
)

// Wildcard matches any symbol.
const Wildcard = "."

// EndOfSequence is the pseudo-symbol fed once the true input has ended,
// to test whether the matcher has reached an accepting state.
const EndOfSequence = ""

type tokenKind int

const (
	tokSymbol tokenKind = iota
	tokWildcard
	tokEndOfSequence
	tokLParen
	tokRParen
	tokUnion
	tokStar
	tokPlus
	tokQuestion
)

type token struct {
	kind tokenKind
	text string
}

var tokenRE = regexp.MustCompile(`\s*(\(|\)|\||\*|\+|\?|\$|\.|[A-Za-z_][A-Za-z0-9_]*)`)

// tokenize splits expr into tokens, per the grammar in SPEC_FULL.md
// §4.D: symbol names, '.', '$', parens, '|', and the postfix
// quantifiers.
func tokenize(expr string) ([]token, error) {
	var toks []token
	rest := expr
	for strings.TrimSpace(rest) != "" {
		loc := tokenRE.FindStringSubmatchIndex(rest)
		if loc == nil || loc[0] != 0 {
			return nil, errors.Errorf("seqmatch: could not tokenize %q", rest)
		}
		text := rest[loc[2]:loc[3]]
		rest = rest[loc[1]:]
		switch text {
		case "(":
			toks = append(toks, token{tokLParen, text})
		case ")":
			toks = append(toks, token{tokRParen, text})
		case "|":
			toks = append(toks, token{tokUnion, text})
		case "*":
			toks = append(toks, token{tokStar, text})
		case "+":
			toks = append(toks, token{tokPlus, text})
		case "?":
			toks = append(toks, token{tokQuestion, text})
		case "$":
			toks = append(toks, token{tokEndOfSequence, text})
		case ".":
			toks = append(toks, token{tokWildcard, text})
		default:
			toks = append(toks, token{tokSymbol, text})
		}
	}
	return toks, nil
}
