package gen

import (
	vcbits "github.com/bbc/vc2-conformance/bits"
	"github.com/bbc/vc2-conformance/idwt"
	"github.com/bbc/vc2-conformance/quant"
	"github.com/bbc/vc2-conformance/tables"
	"github.com/bbc/vc2-conformance/vlc"
)

// ComponentCoeffs holds one component's transform coefficients in the
// same shape package decoder fills in while parsing transform_data: a
// separate level-0 DC band plus the higher-level, per-orientation
// bands.
type ComponentCoeffs struct {
	DC     idwt.Array2D
	Levels idwt.Coeffs
}

// PictureData holds the three components a picture or fragment encodes.
type PictureData struct {
	Y, C1, C2 ComponentCoeffs
}

// PictureLayout declares the transform_parameters and slice-layout
// fields a generated picture writes, mirroring the fields package
// decoder records while parsing the same blocks (12.4).
type PictureLayout struct {
	MajorVersion uint64

	WaveletIndex, WaveletIndexHO tables.WaveletIndex
	DWTDepth, DWTDepthHO         int
	SlicesX, SlicesY             int

	// Low-delay slice layout only.
	SliceBytesNumerator, SliceBytesDenominator uint64
	// High-quality slice layout only.
	SlicePrefixBytes, SliceSizeScaler uint64

	QuantMatrix tables.QuantMatrix
}

// quantLevel names one level's orientations in the exact write and
// quantizer-assignment order shared with package decoder (12.4.5.3).
type quantLevel struct {
	level        int
	orientations []tables.Orientation
}

func quantMatrixLevels(dwtDepthHO, dwtDepth int) []quantLevel {
	var levels []quantLevel
	if dwtDepthHO == 0 {
		levels = append(levels, quantLevel{0, []tables.Orientation{tables.OrientLL}})
	} else {
		levels = append(levels, quantLevel{0, []tables.Orientation{tables.OrientL}})
		for level := 1; level <= dwtDepthHO; level++ {
			levels = append(levels, quantLevel{level, []tables.Orientation{tables.OrientH}})
		}
	}
	for level := dwtDepthHO + 1; level <= dwtDepthHO+dwtDepth; level++ {
		levels = append(levels, quantLevel{level, []tables.Orientation{tables.OrientHL, tables.OrientLH, tables.OrientHH}})
	}
	return levels
}

func sliceQuantizers(qindex int, matrix tables.QuantMatrix, levels []quantLevel) map[int]map[tables.Orientation]int {
	q := map[int]map[tables.Orientation]int{}
	for _, lv := range levels {
		q[lv.level] = map[tables.Orientation]int{}
		for _, orient := range lv.orientations {
			v := qindex - matrix[lv.level][orient]
			if v < 0 {
				v = 0
			}
			q[lv.level][orient] = v
		}
	}
	return q
}

func bandFor(c ComponentCoeffs, level int, orient tables.Orientation) idwt.Array2D {
	if level == 0 {
		return c.DC
	}
	return c.Levels[level][orient]
}

// sliceRect computes a slice's rectangle within a band already sized to
// that level's padded subband dimensions (13.2.4).
func sliceRect(band idwt.Array2D, slicesX, slicesY, sx, sy int) (x0, x1, y0, y1 int) {
	w, h := band.Width(), band.Height()
	x0 = w * sx / slicesX
	x1 = w * (sx + 1) / slicesX
	y0 = h * sy / slicesY
	y1 = h * (sy + 1) / slicesY
	return
}

// writeComponentSlice writes one component's bands for a single slice
// to a bounded sub-stream (13.5.6.3).
func writeComponentSlice(bw *vcbits.BoundedWriter, comp ComponentCoeffs, levels []quantLevel, quantizers map[int]map[tables.Orientation]int, slicesX, slicesY, sx, sy int) error {
	for _, lv := range levels {
		for _, orient := range lv.orientations {
			band := bandFor(comp, lv.level, orient)
			x0, x1, y0, y1 := sliceRect(band, slicesX, slicesY, sx, sy)
			qi := quantizers[lv.level][orient]
			for y := y0; y < y1; y++ {
				for x := x0; x < x1; x++ {
					if err := vlc.WriteSintB(bw, quant.Forward(band[y][x], qi)); err != nil {
						return err
					}
				}
			}
		}
	}
	return nil
}

// writeColorDiffSliceInterleaved writes C1 and C2's bands for a single
// slice, interleaved sample-by-sample (13.5.6.4), as used by low-delay
// colour-difference slices.
func writeColorDiffSliceInterleaved(bw *vcbits.BoundedWriter, c1, c2 ComponentCoeffs, levels []quantLevel, quantizers map[int]map[tables.Orientation]int, slicesX, slicesY, sx, sy int) error {
	for _, lv := range levels {
		for _, orient := range lv.orientations {
			b1 := bandFor(c1, lv.level, orient)
			b2 := bandFor(c2, lv.level, orient)
			x0, x1, y0, y1 := sliceRect(b1, slicesX, slicesY, sx, sy)
			qi := quantizers[lv.level][orient]
			for y := y0; y < y1; y++ {
				for x := x0; x < x1; x++ {
					if err := vlc.WriteSintB(bw, quant.Forward(b1[y][x], qi)); err != nil {
						return err
					}
					if err := vlc.WriteSintB(bw, quant.Forward(b2[y][x], qi)); err != nil {
						return err
					}
				}
			}
		}
	}
	return nil
}

// componentSliceBits measures, without writing, the exact bit length
// writeComponentSlice would produce for comp's slice (sx, sy), letting
// the high-quality slice layout declare an exact byte length up front.
func componentSliceBits(comp ComponentCoeffs, levels []quantLevel, quantizers map[int]map[tables.Orientation]int, slicesX, slicesY, sx, sy int) int64 {
	var n int64
	for _, lv := range levels {
		for _, orient := range lv.orientations {
			band := bandFor(comp, lv.level, orient)
			x0, x1, y0, y1 := sliceRect(band, slicesX, slicesY, sx, sy)
			qi := quantizers[lv.level][orient]
			for y := y0; y < y1; y++ {
				for x := x0; x < x1; x++ {
					n += int64(vlc.SintLength(quant.Forward(band[y][x], qi)))
				}
			}
		}
	}
	return n
}

// writeLDSlice writes a single low-delay slice (13.5.3.1) into a fixed
// byte budget computed from layout's slice_bytes_numerator/denominator,
// returning ErrBoundedBlockOverflow if qindex's choice of slice_y_length
// leaves either half of the slice too little room for its content —
// exactly the failure a caller sees from an under-sized quant index
// choice.
func (g *Generator) writeLDSlice(data PictureData, layout PictureLayout, qindex int, yLengthBits int64, sx, sy int) error {
	n := sy*layout.SlicesX + sx
	sliceBytes := (uint64(n+1)*layout.SliceBytesNumerator)/layout.SliceBytesDenominator -
		(uint64(n)*layout.SliceBytesNumerator)/layout.SliceBytesDenominator

	vlc.WriteNBits(g.w, uint64(qindex), 7)

	totalBits := int64(8*sliceBytes) - 7
	if totalBits < 0 {
		totalBits = 0
	}
	lengthFieldBits := vlc.IntLog2(totalBits + 1)
	if yLengthBits > totalBits {
		yLengthBits = totalBits
	}
	vlc.WriteNBits(g.w, uint64(yLengthBits), lengthFieldBits)

	levels := quantMatrixLevels(layout.DWTDepthHO, layout.DWTDepth)
	quantizers := sliceQuantizers(qindex, layout.QuantMatrix, levels)

	yw := vcbits.NewBoundedWriter(g.w, yLengthBits)
	if err := writeComponentSlice(yw, data.Y, levels, quantizers, layout.SlicesX, layout.SlicesY, sx, sy); err != nil {
		return wrapOverflow(err, "writing low-delay luma slice")
	}
	yw.Pad()

	cw := vcbits.NewBoundedWriter(g.w, totalBits-yLengthBits)
	if err := writeColorDiffSliceInterleaved(cw, data.C1, data.C2, levels, quantizers, layout.SlicesX, layout.SlicesY, sx, sy); err != nil {
		return wrapOverflow(err, "writing low-delay colour-difference slice")
	}
	cw.Pad()
	return nil
}

// writeHQSlice writes a single high-quality slice (13.5.4): each
// component's exact bit length is measured first, so its byte-length
// prefix is always sized to fit and ErrBoundedBlockOverflow cannot
// occur on this path.
func (g *Generator) writeHQSlice(data PictureData, layout PictureLayout, qindex, sx, sy int) error {
	for i := uint64(0); i < layout.SlicePrefixBytes; i++ {
		vlc.WriteUintLit(g.w, 0, 1)
	}
	vlc.WriteUintLit(g.w, uint64(qindex), 1)

	levels := quantMatrixLevels(layout.DWTDepthHO, layout.DWTDepth)
	quantizers := sliceQuantizers(qindex, layout.QuantMatrix, levels)
	scaler := layout.SliceSizeScaler
	if scaler == 0 {
		scaler = 1
	}

	for _, comp := range []ComponentCoeffs{data.Y, data.C1, data.C2} {
		bits := componentSliceBits(comp, levels, quantizers, layout.SlicesX, layout.SlicesY, sx, sy)
		length := (bits + int64(scaler)*8 - 1) / (int64(scaler) * 8)
		vlc.WriteUintLit(g.w, uint64(length), 1)

		bw := vcbits.NewBoundedWriter(g.w, length*int64(scaler)*8)
		if err := writeComponentSlice(bw, comp, levels, quantizers, layout.SlicesX, layout.SlicesY, sx, sy); err != nil {
			return wrapOverflow(err, "writing high-quality slice")
		}
		bw.Pad()
	}
	return nil
}

// WritePicture writes a complete (non-fragmented) picture data unit
// (12.1): picture_header, transform_parameters and every slice's
// transform_data, choosing the low-delay or high-quality slice layout
// from code.
func (g *Generator) WritePicture(code tables.ParseCode, pictureNumber AutoUint32, data PictureData, layout PictureLayout, qindex int, ldYLengthBits func(sx, sy int) int64, next AutoUint32) error {
	g.writeParseInfo(code, next, Auto())

	n := pictureNumber.value
	if pictureNumber.auto {
		n = g.nextPictureNumber
	}
	vlc.WriteUintLit(g.w, uint64(n), 4)
	g.nextPictureNumber = n + 1
	g.havePictureNumber = true

	g.writeTransformParameters(code, layout)

	// transform_data begins byte-aligned, as the decoder reads it.
	for !g.w.ByteAligned() {
		g.w.WriteBit(0)
	}
	for sy := 0; sy < layout.SlicesY; sy++ {
		for sx := 0; sx < layout.SlicesX; sx++ {
			var err error
			if code.IsLowDelay() {
				yBits := int64(0)
				if ldYLengthBits != nil {
					yBits = ldYLengthBits(sx, sy)
				}
				err = g.writeLDSlice(data, layout, qindex, yBits, sx, sy)
			} else {
				err = g.writeHQSlice(data, layout, qindex, sx, sy)
			}
			if err != nil {
				return err
			}
		}
	}
	return nil
}

// writeTransformParameters writes the transform_parameters block
// (12.4.1): wavelet selection, transform depth, the optional
// horizontal-only extension (12.4.4.1, gated on major_version >= 3
// exactly as package decoder gates reading it), the low-delay or
// high-quality slice layout fields selected by code, and the
// quantisation matrix, always written explicitly (custom_quant_matrix
// true) so the generator never depends on the decoder's default-matrix
// table agreeing with layout.QuantMatrix.
func (g *Generator) writeTransformParameters(code tables.ParseCode, layout PictureLayout) {
	vlc.WriteUint(g.w, uint64(layout.WaveletIndex))
	vlc.WriteUint(g.w, uint64(layout.DWTDepth))

	if layout.MajorVersion >= 3 {
		haveWaveletHO := layout.WaveletIndexHO != layout.WaveletIndex
		vlc.WriteBool(g.w, haveWaveletHO)
		if haveWaveletHO {
			vlc.WriteUint(g.w, uint64(layout.WaveletIndexHO))
		}
		haveDepthHO := layout.DWTDepthHO != 0
		vlc.WriteBool(g.w, haveDepthHO)
		if haveDepthHO {
			vlc.WriteUint(g.w, uint64(layout.DWTDepthHO))
		}
	}

	vlc.WriteUint(g.w, uint64(layout.SlicesX))
	vlc.WriteUint(g.w, uint64(layout.SlicesY))

	if code.IsLowDelay() {
		vlc.WriteUint(g.w, layout.SliceBytesNumerator)
		vlc.WriteUint(g.w, layout.SliceBytesDenominator)
	}
	if code.IsHighQuality() {
		vlc.WriteUint(g.w, layout.SlicePrefixBytes)
		vlc.WriteUint(g.w, layout.SliceSizeScaler)
	}

	vlc.WriteBool(g.w, true)
	for _, lv := range quantMatrixLevels(layout.DWTDepthHO, layout.DWTDepth) {
		for _, orient := range lv.orientations {
			vlc.WriteUint(g.w, uint64(layout.QuantMatrix[lv.level][orient]))
		}
	}
}
