package quant

import "testing"

func TestFactorZeroIndex(t *testing.T) {
	if got := Factor(0); got != 4 {
		t.Errorf("Factor(0) = %d, want 4", got)
	}
}

func TestOffset(t *testing.T) {
	if got := Offset(0); got != 1 {
		t.Errorf("Offset(0) = %d, want 1", got)
	}
	if got := Offset(1); got != 2 {
		t.Errorf("Offset(1) = %d, want 2", got)
	}
}

func TestInverseZero(t *testing.T) {
	if got := Inverse(0, 5); got != 0 {
		t.Errorf("Inverse(0, 5) = %d, want 0", got)
	}
}

func TestForwardInverseRoundTripBounded(t *testing.T) {
	// Testable property: |n - inverse(forward(n, i), i)| < 2^((i/4)+1).
	for i := 0; i <= 100; i++ {
		bound := int64(1) << uint(i/4+1)
		for n := int64(-100); n <= 100; n++ {
			q := Forward(n, i)
			back := Inverse(q, i)
			diff := n - back
			if diff < 0 {
				diff = -diff
			}
			if diff >= bound {
				t.Fatalf("i=%d n=%d: |n - inverse(forward(n,i),i)| = %d, want < %d", i, n, diff, bound)
			}
		}
	}
}
