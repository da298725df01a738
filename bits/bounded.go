package bits

import "github.com/pkg/errors"

// ErrBoundedBlockOverflow is returned when a write of a zero bit occurs
// past the declared end of a bounded block. Writes of one bits past the
// end are accepted and silently discarded, per the VC-2 bounded-block
// padding convention.
var ErrBoundedBlockOverflow = errors.New("bits: write past end of bounded block")

// BoundedReader restricts reads to a declared number of bits. Once the
// budget is exhausted, reads return the past-EOF sentinel and
// BitsPastEOF grows, without advancing the underlying reader's cursor.
//
// Bounded sub-streams do not support Seek.
type BoundedReader struct {
	r             *Reader
	bitsRemaining int64
	bitsPastEOF   int64
}

// NewBoundedReader opens a bounded sub-stream of n bits over r.
func NewBoundedReader(r *Reader, n int64) *BoundedReader {
	return &BoundedReader{r: r, bitsRemaining: n}
}

// ReadBit reads a single bit from the bounded block.
func (b *BoundedReader) ReadBit() MaybeBit {
	if b.bitsRemaining <= 0 {
		b.bitsPastEOF++
		return MaybeBit{Value: 1, EOF: true}
	}
	b.bitsRemaining--
	return b.r.ReadBit()
}

// BitsPastEOF reports bits synthesised past the bounded block's declared
// length (distinct from the underlying Reader's own past-true-EOF
// count).
func (b *BoundedReader) BitsPastEOF() int64 { return b.bitsPastEOF }

// BitsRemaining reports the number of bits left in the bounded block,
// which may be negative-clamped to zero once exhausted.
func (b *BoundedReader) BitsRemaining() int64 {
	if b.bitsRemaining < 0 {
		return 0
	}
	return b.bitsRemaining
}

// Flush discards any remaining bits in the bounded block without
// reading their values, advancing the underlying reader to the block's
// declared end.
func (b *BoundedReader) Flush() {
	for b.bitsRemaining > 0 {
		b.r.ReadBit()
		b.bitsRemaining--
	}
}

// BoundedWriter restricts writes to a declared number of bits. Writing a
// one past the end is accepted and discarded; writing a zero past the
// end fails with ErrBoundedBlockOverflow.
//
// Bounded sub-streams do not support Seek.
type BoundedWriter struct {
	w             *Writer
	bitsRemaining int64
}

// NewBoundedWriter opens a bounded sub-stream of n bits over w.
func NewBoundedWriter(w *Writer, n int64) *BoundedWriter {
	return &BoundedWriter{w: w, bitsRemaining: n}
}

// WriteBit writes a single bit into the bounded block.
func (b *BoundedWriter) WriteBit(bit Bit) error {
	if b.bitsRemaining <= 0 {
		if bit == 0 {
			return ErrBoundedBlockOverflow
		}
		return nil
	}
	b.bitsRemaining--
	b.w.WriteBit(bit)
	return nil
}

// BitsRemaining reports the number of bits left before the block's
// declared length is exhausted.
func (b *BoundedWriter) BitsRemaining() int64 {
	if b.bitsRemaining < 0 {
		return 0
	}
	return b.bitsRemaining
}

// Pad fills the rest of the bounded block with one bits, as required
// when a generator writes fewer values than the block can hold.
func (b *BoundedWriter) Pad() {
	for b.bitsRemaining > 0 {
		_ = b.WriteBit(1)
	}
}
