/*
DESCRIPTION
  Package vlc implements the variable-length codecs used throughout the
  VC-2 bitstream: fixed-width fields, byte alignment, and the modified
  interleaved exponential-Golomb code used for unsigned and signed
  integers.

  Bits read past the end of the stream are treated as 1, exactly as the
  underlying bits.Reader's past-EOF sentinel reports, so every read here
  is infallible with respect to EOF; callers track bits consumed past
  EOF via the reader's own counters.
*/
package vlc

import (
	"math/bits"

	"github.com/pkg/errors"

	vcbits "github.com/bbc/vc2-conformance/bits"
)

// ReadBool reads a single bit: 1 means true, 0 means false.
func ReadBool(r *vcbits.Reader) bool {
	return r.ReadBit().Value == 1
}

// ReadNBits reads n bits, MSB-first, as an unsigned integer. n must be
// in [0, 64].
func ReadNBits(r *vcbits.Reader, n int) uint64 {
	var v uint64
	for i := 0; i < n; i++ {
		v = (v << 1) | uint64(r.ReadBit().Value)
	}
	return v
}

// ByteAlign discards bits up to the next byte boundary.
func ByteAlign(r *vcbits.Reader) {
	for !r.ByteAligned() {
		r.ReadBit()
	}
}

// ReadUintLit byte-aligns then reads nBytes bytes as an unsigned
// integer.
func ReadUintLit(r *vcbits.Reader, nBytes int) uint64 {
	ByteAlign(r)
	return ReadNBits(r, 8*nBytes)
}

// ReadUint reads a value encoded with VC-2's modified interleaved
// exponential-Golomb code: read bit pairs, the first bit of each pair
// terminating on 1, otherwise the second bit of the pair is shifted
// into the accumulator. The decoded unsigned value is the resulting
// accumulator minus one.
func ReadUint(r *vcbits.Reader) uint64 {
	value := uint64(1)
	for {
		if r.ReadBit().Value == 1 {
			break
		}
		value = (value << 1) | uint64(r.ReadBit().Value)
	}
	return value - 1
}

// ReadSint reads a ReadUint magnitude, followed (if non-zero) by a
// single sign bit: 1 negates the value.
func ReadSint(r *vcbits.Reader) int64 {
	mag := ReadUint(r)
	if mag == 0 {
		return 0
	}
	if r.ReadBit().Value == 1 {
		return -int64(mag)
	}
	return int64(mag)
}

// IntLog2 computes ceil(log2(n)) for n >= 1, as used by the LD slice
// header's length_bits computation.
func IntLog2(n int64) int {
	if n <= 1 {
		return 0
	}
	return bits.Len64(uint64(n - 1))
}

// WriteBool writes a single bit: true as 1, false as 0.
func WriteBool(w *vcbits.Writer, v bool) {
	if v {
		w.WriteBit(1)
	} else {
		w.WriteBit(0)
	}
}

// WriteNBits writes the low n bits of v, MSB-first.
func WriteNBits(w *vcbits.Writer, v uint64, n int) {
	for i := n - 1; i >= 0; i-- {
		w.WriteBit(vcbits.Bit((v >> uint(i)) & 1))
	}
}

// WriteUintLit byte-aligns (padding with zero bits) then writes v as
// nBytes big-endian bytes.
func WriteUintLit(w *vcbits.Writer, v uint64, nBytes int) {
	for !w.ByteAligned() {
		w.WriteBit(0)
	}
	WriteNBits(w, v, 8*nBytes)
}

// WriteUint writes v using the modified interleaved exp-Golomb code.
func WriteUint(w *vcbits.Writer, v uint64) {
	cv := v + 1
	n := bits.Len64(cv) - 1
	for i := n; i >= 1; i-- {
		w.WriteBit(0)
		w.WriteBit(vcbits.Bit((cv >> uint(i-1)) & 1))
	}
	w.WriteBit(1)
}

// WriteSint writes the magnitude of v with WriteUint, followed by a
// sign bit if v is non-zero.
func WriteSint(w *vcbits.Writer, v int64) {
	var mag uint64
	var negative bool
	if v < 0 {
		mag = uint64(-v)
		negative = true
	} else {
		mag = uint64(v)
	}
	WriteUint(w, mag)
	if mag != 0 {
		WriteBool(w, negative)
	}
}

// UintLength returns the number of bits WriteUint(v) produces, i.e.
// 2*floor(log2(v+1)) + 1.
func UintLength(v uint64) int {
	return 2*(bits.Len64(v+1)-1) + 1
}

// SintLength returns the number of bits WriteSint(v) produces.
func SintLength(v int64) int {
	var mag uint64
	if v < 0 {
		mag = uint64(-v)
	} else {
		mag = uint64(v)
	}
	n := UintLength(mag)
	if mag != 0 {
		n++
	}
	return n
}

// ErrBadFixedWidth describes a fixed-width read asked for a width
// outside [0, 64]. No function in this package returns it: ReadNBits
// and ReadNBitsB do not check their width.
var ErrBadFixedWidth = errors.New("vlc: fixed-width read out of range")
