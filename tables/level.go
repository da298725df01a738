package tables

import (
	_ "embed"
	"log"
	"strings"

	"github.com/bbc/vc2-conformance/valueset"
)

//go:embed csvdata/level_constraints.csv
var levelConstraintsCSV string

// LevelConstraints is the level-constraint table used by the
// conformance engine's assertLevelConstraint check. It is loaded once
// at init time from an embedded CSV resource, mirroring the VC-2
// reference's bundled-CSV table-loading approach.
var LevelConstraints valueset.Table

// LevelSequencingRegexes gives, per declared level, the symbolic
// sequence-matcher expression the stream's data units must conform to.
// Level 0 ("unconstrained") imposes no sequencing beyond the base
// grammar every VC-2 stream must satisfy.
var LevelSequencingRegexes = map[int]string{
	0: "sequence_header (auxiliary_data | padding_data | picture | picture_fragment)* $",
	1: "sequence_header (picture | picture_fragment)* $",
}

func init() {
	t, err := valueset.ReadCSV(strings.NewReader(levelConstraintsCSV))
	if err != nil {
		log.Panicf("tables: failed to parse embedded level constraint table: %v", err)
	}
	LevelConstraints = t
}
