package valueset

import (
	"strings"
	"testing"
)

func TestAddRangeMerges(t *testing.T) {
	vs := New(5)
	vs.AddRange(1, 5)
	if !vs.Contains(3) || !vs.Contains(5) || !vs.Contains(1) {
		t.Fatalf("expected range to cover 1..5, got %v", vs)
	}
	if len(vs.ranges) != 1 {
		t.Fatalf("expected single merged range, got %v", vs.ranges)
	}

	vs.AddRange(6, 10)
	if len(vs.ranges) != 1 || vs.ranges[0] != (rangePair{1, 10}) {
		t.Fatalf("expected adjacent ranges to merge into 1-10, got %v", vs.ranges)
	}
}

func TestFilterCatchAll(t *testing.T) {
	table := Table{
		{"type": New(1), "color": New(10)},
		{}, // catch-all
	}
	if !IsAllowed(table, map[string]int{"type": 99}) {
		t.Fatal("catch-all combination should make any value allowed")
	}
}

func TestIsAllowedCombination(t *testing.T) {
	// Grounded on the real_foods example from _constraint_table.py.
	tomato, apple, beetroot := 0, 1, 2
	red, green, purple := 0, 1, 2
	table := Table{
		{"type": New(tomato), "color": New(red)},
		{"type": New(apple), "color": New(red, green)},
		{"type": New(beetroot), "color": New(purple)},
	}

	if !IsAllowed(table, map[string]int{"type": apple, "color": red}) {
		t.Error("apple+red should be allowed")
	}
	if IsAllowed(table, map[string]int{"type": apple, "color": purple}) {
		t.Error("apple+purple should not be allowed")
	}
	if !IsAllowed(table, map[string]int{"type": apple}) {
		t.Error("apple alone should be allowed")
	}
	if !IsAllowed(table, map[string]int{"color": purple}) {
		t.Error("purple alone should be allowed")
	}
}

func TestAllowedValuesFor(t *testing.T) {
	tomato, apple := 0, 1
	red, green := 0, 1
	table := Table{
		{"type": New(tomato), "color": New(red)},
		{"type": New(apple), "color": New(red, green)},
	}
	got := AllowedValuesFor(table, "color", map[string]int{"type": apple}, ValueSet{})
	if !got.Contains(red) || !got.Contains(green) {
		t.Errorf("expected red and green allowed for apple, got %v", got)
	}
}

func TestReadCSV(t *testing.T) {
	data := "field,a,b,c\n" +
		"type,1,2-4,any\n" +
		"flag,TRUE,\"\"\"\",FALSE\n"
	table, err := ReadCSV(strings.NewReader(data))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(table) != 3 {
		t.Fatalf("expected 3 combinations, got %d", len(table))
	}
	if !table[0]["type"].Contains(1) {
		t.Errorf("column a should allow type=1")
	}
	if !table[1]["type"].Contains(3) {
		t.Errorf("column b should allow type=3 via range")
	}
	if !table[2]["type"].IsAny() {
		t.Errorf("column c should be Any for type")
	}
	if !table[1]["flag"].Contains(1) {
		t.Errorf("ditto column b flag should copy column a's TRUE")
	}
}
