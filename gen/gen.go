/*
DESCRIPTION
  Package gen implements the write side of the VC-2 bitstream: a
  programmatic builder for sequences of data units, mirroring package
  decoder's read side field-for-field. Loading a generator's data units
  from an external bitstream-description format is out of scope; a
  caller assembles a sequence by calling Generator's methods directly.
*/
package gen

import (
	"github.com/pkg/errors"

	vcbits "github.com/bbc/vc2-conformance/bits"
	"github.com/bbc/vc2-conformance/tables"
	"github.com/bbc/vc2-conformance/vlc"
)

// AutoUint32 is either an explicit 32-bit value or the AUTO sentinel,
// requesting Generator compute the true value once enough of the
// surrounding stream is known. next_parse_offset, previous_parse_offset
// and (for sequentially numbered pictures) picture_number all accept
// one.
type AutoUint32 struct {
	auto  bool
	value uint32
}

// Auto requests the generator fill in this field automatically.
func Auto() AutoUint32 { return AutoUint32{auto: true} }

// Value wraps an explicit literal field value.
func Value(v uint32) AutoUint32 { return AutoUint32{value: v} }

// pendingOffset records an already-written parse_info's next_parse_offset
// field, awaiting the byte offset of the data unit that follows it.
type pendingOffset struct {
	fieldBytePos int64
	unitStartPos int64
}

// Generator builds a VC-2 bitstream one data unit at a time. Each
// WriteXxx method appends a complete data unit (parse_info header plus
// payload); Bytes returns everything written so far, patching the
// final AUTO next_parse_offset to zero as (10.5.1) requires for the
// last data unit in the stream.
type Generator struct {
	buf *seekBuffer
	w   *vcbits.Writer

	prevUnitStart int64
	havePrevUnit  bool
	pendingNext   *pendingOffset

	nextPictureNumber uint32
	havePictureNumber bool
}

// New returns an empty Generator.
func New() *Generator {
	buf := newSeekBuffer()
	return &Generator{buf: buf, w: vcbits.NewWriter(buf)}
}

func (g *Generator) currentByteOffset() int64 {
	byteOffset, bitIndex := g.w.Tell()
	if bitIndex != 7 {
		panic("gen: data units must begin byte-aligned")
	}
	return byteOffset
}

func (g *Generator) patchUintLit(bytePos int64, v uint64, nBytes int) {
	for i := 0; i < nBytes; i++ {
		shift := uint(8 * (nBytes - 1 - i))
		g.buf.data[bytePos+int64(i)] = byte(v >> shift)
	}
}

// writeParseInfo writes a 13-byte parse-info header (10.5.1) and
// arranges for an AUTO next_parse_offset to be patched in once the
// following data unit's start (or the stream's end) is known.
func (g *Generator) writeParseInfo(code tables.ParseCode, next, prev AutoUint32) {
	// parse_info begins byte-aligned: pad the previous data unit's final
	// partial byte with zero bits, as the decoder's byte_align skips.
	for !g.w.ByteAligned() {
		g.w.WriteBit(0)
	}
	unitStart := g.currentByteOffset()
	vlc.WriteUintLit(g.w, tables.ParseInfoPrefix, 4)
	vlc.WriteUintLit(g.w, uint64(code), 1)

	nextFieldPos := g.currentByteOffset()
	nextVal := uint64(next.value)
	vlc.WriteUintLit(g.w, nextVal, 4)

	var prevVal uint64
	switch {
	case !prev.auto:
		prevVal = uint64(prev.value)
	case g.havePrevUnit:
		prevVal = uint64(unitStart - g.prevUnitStart)
	}
	vlc.WriteUintLit(g.w, prevVal, 4)

	if g.pendingNext != nil {
		g.patchUintLit(g.pendingNext.fieldBytePos, uint64(unitStart-g.pendingNext.unitStartPos), 4)
		g.pendingNext = nil
	}
	if next.auto {
		g.pendingNext = &pendingOffset{fieldBytePos: nextFieldPos, unitStartPos: unitStart}
	}

	g.prevUnitStart = unitStart
	g.havePrevUnit = true
}

// WriteRawAuxiliaryData writes an auxiliary_data data unit (10.4.4)
// carrying payload verbatim.
func (g *Generator) WriteRawAuxiliaryData(payload []byte, next AutoUint32) {
	g.writeParseInfo(tables.ParseCodeAuxiliaryData, next, Auto())
	for _, b := range payload {
		vlc.WriteUintLit(g.w, uint64(b), 1)
	}
}

// WritePaddingData writes a padding_data data unit (10.4.5) carrying
// payload verbatim.
func (g *Generator) WritePaddingData(payload []byte, next AutoUint32) {
	g.writeParseInfo(tables.ParseCodePaddingData, next, Auto())
	for _, b := range payload {
		vlc.WriteUintLit(g.w, uint64(b), 1)
	}
}

// WriteEndOfSequence writes an end_of_sequence data unit (10.4.2). Its
// next_parse_offset is conventionally zero; passing Auto() achieves
// this whenever end_of_sequence is the stream's final data unit.
func (g *Generator) WriteEndOfSequence(next AutoUint32) {
	g.writeParseInfo(tables.ParseCodeEndOfSequence, next, Auto())
}

// Bytes returns the bitstream built so far, patching any still-pending
// AUTO next_parse_offset to zero, the value (10.5.1) requires of the
// stream's final data unit.
func (g *Generator) Bytes() []byte {
	if g.pendingNext != nil {
		g.patchUintLit(g.pendingNext.fieldBytePos, 0, 4)
		g.pendingNext = nil
	}
	return g.buf.data
}

// ErrBoundedBlockOverflow re-exports bits.ErrBoundedBlockOverflow for
// callers that only import package gen.
var ErrBoundedBlockOverflow = vcbits.ErrBoundedBlockOverflow

func wrapOverflow(err error, context string) error {
	if err == nil {
		return nil
	}
	return errors.Wrap(err, "gen: "+context)
}
