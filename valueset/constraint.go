package valueset

import (
	"encoding/csv"
	"io"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// Combination is one acceptable combination of field values: a mapping
// from field name to the ValueSet of values permitted for that field
// when the rest of the combination's fields also hold.
type Combination map[string]ValueSet

// Table is a constraint table: a list of acceptable combinations. A
// combination with no fields at all acts as a catch-all, matching any
// candidate.
type Table []Combination

// Filter returns the subset of t whose combinations are compatible with
// every field in values (fields absent from values are left free).
func Filter(t Table, values map[string]int) Table {
	var out Table
	for _, combo := range t {
		if len(combo) == 0 {
			out = append(out, combo)
			continue
		}
		ok := true
		for key, v := range values {
			vs, present := combo[key]
			if !present || !vs.Contains(v) {
				ok = false
				break
			}
		}
		if ok {
			out = append(out, combo)
		}
	}
	return out
}

// IsAllowed reports whether values is a permissible (possibly partial)
// combination according to t.
func IsAllowed(t Table, values map[string]int) bool {
	return len(Filter(t, values)) > 0
}

// AllowedValuesFor returns the union of ValueSets permitted for key
// across every combination compatible with values. If any matching
// combination permits Any() for key, anyValue is substituted (the
// caller may pass a caller-supplied enumeration rather than carry a
// true wildcard forward).
func AllowedValuesFor(t Table, key string, values map[string]int, anyValue ValueSet) ValueSet {
	out := ValueSet{}
	for _, combo := range Filter(t, values) {
		vs, ok := combo[key]
		if !ok {
			continue
		}
		out = out.Union(vs)
	}
	if out.IsAny() {
		return anyValue
	}
	return out
}

// isDitto reports whether a CSV cell is a bare ditto mark, copying the
// value of the cell to its left.
func isDitto(cell string) bool {
	cell = strings.TrimSpace(cell)
	return cell == `"` || cell == "''" || cell == "”" || cell == "″"
}

// ReadCSV parses a constraint table from r in the layout documented by
// spec.md §4.C: first column is the field name being constrained,
// remaining columns are combinations. Cell syntax: integers, TRUE/FALSE,
// "lo-hi" inclusive ranges, comma-separated unions of the above, "any"
// for the wildcard set, a ditto mark to copy the cell to the left, and
// empty for the empty set. Rows that are empty or entirely
// "#"-prefixed are skipped. The first remaining row is a heading row
// naming the columns and is not read as constraints.
func ReadCSV(r io.Reader) (Table, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	var out Table
	headingSeen := false

	for {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, errors.Wrap(err, "valueset: reading constraint csv")
		}

		allSkip := true
		for _, cell := range row {
			c := strings.TrimSpace(cell)
			if c != "" && !strings.HasPrefix(c, "#") {
				allSkip = false
				break
			}
		}
		if allSkip {
			continue
		}
		if !headingSeen {
			headingSeen = true
			continue
		}

		for len(out) < len(row)-1 {
			out = append(out, Combination{})
		}

		key := row[0]
		last := ValueSet{}
		for i, cell := range row[1:] {
			vs, err := parseCell(cell, last)
			if err != nil {
				return nil, errors.Wrapf(err, "valueset: parsing cell %q for key %q", cell, key)
			}
			out[i][key] = vs
			last = vs
		}
	}
	return out, nil
}

func parseCell(cell string, last ValueSet) (ValueSet, error) {
	trimmed := strings.TrimSpace(cell)
	switch {
	case isDitto(cell):
		return last, nil
	case strings.EqualFold(trimmed, "any"):
		return Any(), nil
	case trimmed == "":
		return ValueSet{}, nil
	}

	vs := ValueSet{}
	for _, part := range strings.Split(trimmed, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		switch strings.ToLower(part) {
		case "true":
			vs.AddValue(1)
			continue
		case "false":
			vs.AddValue(0)
			continue
		}
		if lo, hi, ok := splitRange(part); ok {
			loV, err := strconv.Atoi(lo)
			if err != nil {
				return vs, err
			}
			hiV, err := strconv.Atoi(hi)
			if err != nil {
				return vs, err
			}
			vs.AddRange(loV, hiV)
			continue
		}
		v, err := strconv.Atoi(part)
		if err != nil {
			return vs, err
		}
		vs.AddValue(v)
	}
	return vs, nil
}

// splitRange splits "lo-hi" into its two halves. It treats a leading
// '-' (as in a negative lower bound) as part of the number, matching
// the Python original's partition-on-first-remaining-dash behaviour for
// the common non-negative case used throughout the VC-2 tables.
func splitRange(part string) (lo, hi string, ok bool) {
	idx := strings.Index(part[1:], "-")
	if idx < 0 {
		return "", "", false
	}
	idx++
	return part[:idx], part[idx+1:], true
}
