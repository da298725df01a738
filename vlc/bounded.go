package vlc

import (
	vcbits "github.com/bbc/vc2-conformance/bits"
)

// The B-suffixed functions mirror their unbounded counterparts but
// operate through a bounded sub-stream, so reads past the block's
// declared length yield 1 bits rather than consulting the underlying
// stream, and FlushInputB discards whatever remains of the block.

// ReadBoolB reads a single bit from a bounded block.
func ReadBoolB(r *vcbits.BoundedReader) bool {
	return r.ReadBit().Value == 1
}

// ReadNBitsB reads n bits from a bounded block, MSB-first.
func ReadNBitsB(r *vcbits.BoundedReader, n int) uint64 {
	var v uint64
	for i := 0; i < n; i++ {
		v = (v << 1) | uint64(r.ReadBit().Value)
	}
	return v
}

// ReadUintB reads a modified-interleaved-exp-Golomb unsigned integer
// from a bounded block.
func ReadUintB(r *vcbits.BoundedReader) uint64 {
	value := uint64(1)
	for {
		if r.ReadBit().Value == 1 {
			break
		}
		value = (value << 1) | uint64(r.ReadBit().Value)
	}
	return value - 1
}

// ReadSintB reads a signed exp-Golomb value from a bounded block.
func ReadSintB(r *vcbits.BoundedReader) int64 {
	mag := ReadUintB(r)
	if mag == 0 {
		return 0
	}
	if r.ReadBit().Value == 1 {
		return -int64(mag)
	}
	return int64(mag)
}

// FlushInputB discards all remaining bits in the bounded block.
func FlushInputB(r *vcbits.BoundedReader) {
	r.Flush()
}

// WriteUintB writes a modified-interleaved-exp-Golomb unsigned integer
// to a bounded block. A write of the final 1 bit always succeeds; the
// intermediate 0 bits may fail with bits.ErrBoundedBlockOverflow if the
// block is exhausted early.
func WriteUintB(w *vcbits.BoundedWriter, v uint64) error {
	cv := v + 1
	n := 0
	for t := cv; t > 1; t >>= 1 {
		n++
	}
	for i := n; i >= 1; i-- {
		if err := w.WriteBit(0); err != nil {
			return err
		}
		if err := w.WriteBit(vcbits.Bit((cv >> uint(i-1)) & 1)); err != nil {
			return err
		}
	}
	return w.WriteBit(1)
}

// WriteSintB writes a signed exp-Golomb value to a bounded block.
func WriteSintB(w *vcbits.BoundedWriter, v int64) error {
	var mag uint64
	var negative bool
	if v < 0 {
		mag = uint64(-v)
		negative = true
	} else {
		mag = uint64(v)
	}
	if err := WriteUintB(w, mag); err != nil {
		return err
	}
	if mag != 0 {
		bit := vcbits.Bit(0)
		if negative {
			bit = 1
		}
		return w.WriteBit(bit)
	}
	return nil
}

// PadRemainingB fills the rest of a bounded block with 1 bits.
func PadRemainingB(w *vcbits.BoundedWriter) {
	w.Pad()
}
