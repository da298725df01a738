package vlc

import (
	"bytes"
	"testing"

	vcbits "github.com/bbc/vc2-conformance/bits"
)

func TestReadUintTwoByte(t *testing.T) {
	// Scenario 1 from the testable-properties scenario list: 0x1F.
	r := vcbits.NewReader(bytes.NewReader([]byte{0x1F}))
	first := ReadUint(r)
	if first != 4 {
		t.Errorf("first ReadUint = %d, want 4", first)
	}
	second := ReadUint(r)
	if second != 0 {
		t.Errorf("second ReadUint = %d, want 0", second)
	}
	if r.BitsPastEOF() != 0 {
		t.Errorf("BitsPastEOF = %d, want 0", r.BitsPastEOF())
	}
}

func TestUintRoundTrip(t *testing.T) {
	for _, v := range []uint64{0, 1, 2, 3, 4, 100, 1 << 20, 1 << 40} {
		var buf bytes.Buffer
		w := vcbits.NewWriter(&buf)
		WriteUint(w, v)
		// bytes.Buffer is not seekable, so pad the final byte instead
		// of using Flush.
		for !w.ByteAligned() {
			w.WriteBit(0)
		}

		r := vcbits.NewReader(bytes.NewReader(buf.Bytes()))
		got := ReadUint(r)
		if got != v {
			t.Errorf("round trip %d: got %d", v, got)
		}

		wantLen := UintLength(v)
		byteOff, bitIdx := r.Tell()
		gotLen := int(byteOff*8) + (7 - bitIdx)
		if gotLen != wantLen {
			t.Errorf("UintLength(%d) = %d, bits actually consumed = %d", v, wantLen, gotLen)
		}
	}
}

func TestSintRoundTripAtBounds(t *testing.T) {
	values := []int64{0, 1, -1, (1 << 31) - 1, -(1 << 31), (1<<63 - 1), -(1 << 63)}
	for _, v := range values {
		var buf bytes.Buffer
		w := vcbits.NewWriter(&buf)
		WriteSint(w, v)
		// bytes.Buffer is not seekable, so pad the final byte instead
		// of using Flush.
		for !w.ByteAligned() {
			w.WriteBit(0)
		}

		r := vcbits.NewReader(bytes.NewReader(buf.Bytes()))
		got := ReadSint(r)
		if got != v {
			t.Errorf("round trip %d: got %d", v, got)
		}
	}
}

func TestIntLog2(t *testing.T) {
	tests := []struct {
		n    int64
		want int
	}{
		{1, 0},
		{2, 1},
		{3, 2},
		{4, 2},
		{8, 3},
		{9, 4},
	}
	for _, tt := range tests {
		if got := IntLog2(tt.n); got != tt.want {
			t.Errorf("IntLog2(%d) = %d, want %d", tt.n, got, tt.want)
		}
	}
}

func TestByteAlign(t *testing.T) {
	r := vcbits.NewReader(bytes.NewReader([]byte{0xFF, 0x00}))
	r.ReadBit()
	r.ReadBit()
	r.ReadBit()
	ByteAlign(r)
	if !r.ByteAligned() {
		t.Fatal("expected byte-aligned after ByteAlign")
	}
	v := ReadNBits(r, 8)
	if v != 0x00 {
		t.Errorf("got %#x, want 0x00", v)
	}
}
