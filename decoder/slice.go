package decoder

import (
	vcbits "github.com/bbc/vc2-conformance/bits"
	"github.com/bbc/vc2-conformance/idwt"
	"github.com/bbc/vc2-conformance/quant"
	"github.com/bbc/vc2-conformance/tables"
	"github.com/bbc/vc2-conformance/vlc"
)

// setSliceQuantizers derives a slice's per-level, per-orientation
// quantiser index from the common quant index read from the slice
// header and the selected quantisation matrix (13.5.4).
func (s *State) setSliceQuantizers(qindex int) {
	s.quantizer = map[int]map[tables.Orientation]int{}
	for _, lv := range s.quantMatrixLevels() {
		s.quantizer[lv.level] = map[tables.Orientation]int{}
		for _, orient := range lv.orientations {
			q := qindex - s.quantMatrix[lv.level][orient]
			if q < 0 {
				q = 0
			}
			s.quantizer[lv.level][orient] = q
		}
	}
}

// sliceEdge computes one of a slice's four rectangle boundaries within
// a subband of the given pixel dimension (13.2.4).
func sliceEdge(dim, slices, index int) int { return dim * index / slices }

// sliceRect returns a slice's [x0,x1) x [y0,y1) rectangle within
// component comp's subband at level.
func (s *State) sliceRect(level int, comp component, sx, sy int) (x0, x1, y0, y1 int) {
	w := s.subbandWidth(level, comp)
	h := s.subbandHeight(level, comp)
	x0 = sliceEdge(w, s.slicesX, sx)
	x1 = sliceEdge(w, s.slicesX, sx+1)
	y0 = sliceEdge(h, s.slicesY, sy)
	y1 = sliceEdge(h, s.slicesY, sy+1)
	return
}

// band returns the array a slice-decoded value for (comp, level,
// orient) is stored into: the separately-allocated DC band at level
// zero, otherwise the matching entry of that component's coefficient
// map.
func (s *State) band(comp component, level int, orient tables.Orientation) idwt.Array2D {
	if level == 0 {
		switch comp {
		case componentY:
			return s.dcBandY
		case componentC1:
			return s.dcBandC1
		default:
			return s.dcBandC2
		}
	}
	switch comp {
	case componentY:
		return s.yTransform[level][orient]
	case componentC1:
		return s.c1Transform[level][orient]
	default:
		return s.c2Transform[level][orient]
	}
}

// decodeSliceBand reads and dequantises one band's worth of
// coefficients for a single slice from a bounded sub-stream (13.5.6.3).
func (s *State) decodeSliceBand(br *vcbits.BoundedReader, comp component, level int, orient tables.Orientation, sx, sy int) {
	x0, x1, y0, y1 := s.sliceRect(level, comp, sx, sy)
	band := s.band(comp, level, orient)
	qi := s.quantizer[level][orient]
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			band[y][x] = quant.Inverse(vlc.ReadSintB(br), qi)
		}
	}
}

// decodeSliceBandInterleaved reads one band's worth of C1 and C2
// coefficients interleaved sample-by-sample (13.5.6.4), as used by
// low-delay colour-difference slices.
func (s *State) decodeSliceBandInterleaved(br *vcbits.BoundedReader, level int, orient tables.Orientation, sx, sy int) {
	x0, x1, y0, y1 := s.sliceRect(level, comp1ForRect, sx, sy)
	c1Band := s.band(componentC1, level, orient)
	c2Band := s.band(componentC2, level, orient)
	qi := s.quantizer[level][orient]
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			c1Band[y][x] = quant.Inverse(vlc.ReadSintB(br), qi)
			c2Band[y][x] = quant.Inverse(vlc.ReadSintB(br), qi)
		}
	}
}

// comp1ForRect names which component's subband dimensions govern a
// colour-difference slice rectangle: C1 and C2 always share dimensions,
// so either works, but naming one avoids a misleading bare "componentC1"
// at call sites that decode both.
const comp1ForRect = componentC1

// decodeSliceLuma decodes every band of a slice's luma component, in
// the fixed level/orientation order shared with the quantisation
// matrix.
func (s *State) decodeSliceLuma(br *vcbits.BoundedReader, sx, sy int) {
	for _, lv := range s.quantMatrixLevels() {
		for _, orient := range lv.orientations {
			s.decodeSliceBand(br, componentY, lv.level, orient, sx, sy)
		}
	}
}

// decodeSliceColorDiffInterleaved decodes every band of a slice's two
// colour-difference components, interleaved sample-by-sample within
// each band.
func (s *State) decodeSliceColorDiffInterleaved(br *vcbits.BoundedReader, sx, sy int) {
	for _, lv := range s.quantMatrixLevels() {
		for _, orient := range lv.orientations {
			s.decodeSliceBandInterleaved(br, lv.level, orient, sx, sy)
		}
	}
}

// decodeSliceColorDiff decodes every band of a single colour-difference
// component, used by the high-quality slice layout where Y, C1 and C2
// each own a separate bounded block.
func (s *State) decodeSliceColorDiff(br *vcbits.BoundedReader, comp component, sx, sy int) {
	for _, lv := range s.quantMatrixLevels() {
		for _, orient := range lv.orientations {
			s.decodeSliceBand(br, comp, lv.level, orient, sx, sy)
		}
	}
}

// sliceByteLength computes the number of bytes allotted to low-delay
// slice n (row-major index sy*slices_x+sx) out of a picture's total
// slice_bytes_numerator/denominator budget (13.5.3.2).
func sliceByteLength(n int, numerator, denominator uint64) uint64 {
	return (uint64(n+1)*numerator)/denominator - (uint64(n)*numerator)/denominator
}

// ldSlice decodes a single low-delay slice (13.5.3.1): a 7-bit quant
// index, then a bit-length-prefixed luma block followed by an
// interleaved colour-difference block sized to fill the remainder of
// the slice's declared byte budget.
func (s *State) ldSlice(sx, sy int) {
	n := sy*s.slicesX + sx
	sliceBytes := sliceByteLength(n, s.sliceBytesNumerator, s.sliceBytesDenominator)

	qindex := vlc.ReadNBits(s.r, 7)
	s.setSliceQuantizers(int(qindex))

	totalBits := int64(8*sliceBytes) - 7
	if totalBits < 0 {
		totalBits = 0
	}
	lengthFieldBits := vlc.IntLog2(totalBits + 1)
	yLength := int64(vlc.ReadNBits(s.r, lengthFieldBits))
	if yLength > totalBits {
		yLength = totalBits
	}

	yReader := vcbits.NewBoundedReader(s.r, yLength)
	s.decodeSliceLuma(yReader, sx, sy)
	yReader.Flush()

	cReader := vcbits.NewBoundedReader(s.r, totalBits-yLength)
	s.decodeSliceColorDiffInterleaved(cReader, sx, sy)
	cReader.Flush()
}

// hqSlice decodes a single high-quality slice (13.5.4): an ignored
// prefix, an 8-bit quant index, then Y, C1 and C2 each prefixed by an
// 8-bit length scaled by slice_size_scaler and decoded from its own
// bounded block.
func (s *State) hqSlice(sx, sy int) {
	for i := uint64(0); i < s.slicePrefixBytes; i++ {
		vlc.ReadNBits(s.r, 8)
	}
	qindex := vlc.ReadNBits(s.r, 8)
	s.setSliceQuantizers(int(qindex))

	for _, comp := range []component{componentY, componentC1, componentC2} {
		length := vlc.ReadNBits(s.r, 8)
		nbits := int64(s.sliceSizeScaler) * int64(length) * 8
		br := vcbits.NewBoundedReader(s.r, nbits)
		if comp == componentY {
			s.decodeSliceLuma(br, sx, sy)
		} else {
			s.decodeSliceColorDiff(br, comp, sx, sy)
		}
		br.Flush()
	}
}

// decodeSlice dispatches to the slice layout selected by the current
// parse code (13.5.2).
func (s *State) decodeSlice(sx, sy int) {
	if s.parseCode.IsLowDelay() {
		s.ldSlice(sx, sy)
	} else {
		s.hqSlice(sx, sy)
	}
}

// floorDiv computes floor(a/b) for b > 0, matching Python's // operator
// used by the DC-prediction mean, unlike Go's truncating /.
func floorDiv(a, b int64) int64 {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}

// dcPredictBand applies in-place DC prediction to a component's level-0
// band (13.4): each sample is offset by a prediction drawn from its
// already-decoded left, upper and upper-left neighbours, falling back
// to a single neighbour or zero at the band's edges.
func dcPredictBand(band idwt.Array2D) {
	h, w := band.Height(), band.Width()
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			var pred int64
			switch {
			case x > 0 && y > 0:
				pred = floorDiv(band[y][x-1]+band[y-1][x-1]+band[y-1][x]+1, 3)
			case x > 0:
				pred = band[y][x-1]
			case y > 0:
				pred = band[y-1][0]
			default:
				pred = 0
			}
			band[y][x] += pred
		}
	}
}

// dcPredictPicture applies DC prediction to all three components'
// level-0 bands, as required for parse codes where
// tables.ParseCode.UsesDCPrediction is set (13.4).
func (s *State) dcPredictPicture() {
	dcPredictBand(s.dcBandY)
	dcPredictBand(s.dcBandC1)
	dcPredictBand(s.dcBandC2)
}
