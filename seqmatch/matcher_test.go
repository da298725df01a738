package seqmatch

import "testing"

func TestSimpleConcatenation(t *testing.T) {
	m, err := Compile("sequence_header end_of_sequence")
	if err != nil {
		t.Fatalf("compile: %v", err)
	}
	if !m.MatchSymbol("sequence_header") {
		t.Fatal("expected sequence_header to match")
	}
	if m.IsComplete() {
		t.Fatal("should not be complete after only one symbol")
	}
	if !m.MatchSymbol("end_of_sequence") {
		t.Fatal("expected end_of_sequence to match")
	}
	if !m.IsComplete() {
		t.Fatal("expected match to be complete")
	}
}

func TestStarAndAlternation(t *testing.T) {
	m, err := Compile("sequence_header (picture | fragment)* end_of_sequence")
	if err != nil {
		t.Fatalf("compile: %v", err)
	}
	seq := []string{"sequence_header", "picture", "fragment", "picture", "end_of_sequence"}
	for _, sym := range seq {
		if !m.MatchSymbol(sym) {
			t.Fatalf("symbol %q unexpectedly rejected", sym)
		}
	}
	if !m.IsComplete() {
		t.Fatal("expected match to be complete")
	}
}

func TestRejection(t *testing.T) {
	m, err := Compile("sequence_header end_of_sequence")
	if err != nil {
		t.Fatalf("compile: %v", err)
	}
	if !m.MatchSymbol("sequence_header") {
		t.Fatal("expected sequence_header to match")
	}
	if m.MatchSymbol("picture") {
		t.Fatal("expected picture to be rejected")
	}
}

func TestWildcard(t *testing.T) {
	m, err := Compile("sequence_header . end_of_sequence")
	if err != nil {
		t.Fatalf("compile: %v", err)
	}
	for _, sym := range []string{"sequence_header", "anything_at_all", "end_of_sequence"} {
		if !m.MatchSymbol(sym) {
			t.Fatalf("symbol %q unexpectedly rejected", sym)
		}
	}
	if !m.IsComplete() {
		t.Fatal("expected match to be complete")
	}
}

func TestPlusRequiresAtLeastOne(t *testing.T) {
	m, err := Compile("picture+")
	if err != nil {
		t.Fatalf("compile: %v", err)
	}
	if m.IsComplete() {
		t.Fatal("plus should require at least one repetition")
	}
	if !m.MatchSymbol("picture") {
		t.Fatal("expected picture to match")
	}
	if !m.IsComplete() {
		t.Fatal("expected complete after one repetition")
	}
}
