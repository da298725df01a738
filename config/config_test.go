package config

import (
	"testing"

	"github.com/bbc/vc2-conformance/tables"
)

func TestDefaultValidate(t *testing.T) {
	c := Default()
	c.Validate()
	if c.Logger == nil {
		t.Error("expected a non-nil discard logger by default")
	}
	if !c.Strict {
		t.Error("expected strict conformance checking by default")
	}
	if len(c.LevelConstraints) == 0 {
		t.Error("expected the built-in level constraints to be loaded by default")
	}
}

func TestLookupQuantMatrixOverride(t *testing.T) {
	c := Default()
	override := tables.QuantMatrix{0: {tables.OrientLL: 7}}
	c.QuantMatrixOverrides = map[tables.QuantMatrixKey]tables.QuantMatrix{
		{WaveletIndexHO: tables.HaarNoShift, WaveletIndex: tables.HaarNoShift, DWTDepthHO: 0, DWTDepth: 1}: override,
	}
	m, ok := c.LookupQuantMatrix(tables.HaarNoShift, tables.HaarNoShift, 0, 1)
	if !ok || m[0][tables.OrientLL] != 7 {
		t.Fatalf("expected overridden matrix to be returned, got %v, ok=%v", m, ok)
	}

	m, ok = c.LookupQuantMatrix(tables.HaarWithShift, tables.HaarWithShift, 0, 1)
	if !ok || m[0][tables.OrientLL] != 0 {
		t.Fatalf("expected fallback to the built-in matrix, got %v, ok=%v", m, ok)
	}
}
