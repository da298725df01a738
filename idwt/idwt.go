/*
DESCRIPTION
  Package idwt implements the VC-2 inverse (and, for testing, forward)
  discrete wavelet transform: one-dimensional lifting-filter synthesis
  and analysis, horizontal-only and two-dimensional band interleaving,
  multi-level reconstruction, padding removal, and the final clip+offset
  step that turns reconstructed samples into picture data.
*/
package idwt

import "github.com/bbc/vc2-conformance/tables"

// Array2D is a dense 2D array of signed samples, indexed [y][x].
type Array2D [][]int64

// NewArray2D allocates a width x height array of zeroes.
func NewArray2D(width, height int) Array2D {
	a := make(Array2D, height)
	for y := range a {
		a[y] = make([]int64, width)
	}
	return a
}

func (a Array2D) Width() int {
	if len(a) == 0 {
		return 0
	}
	return len(a[0])
}

func (a Array2D) Height() int { return len(a) }

// OneDSynthesis applies a wavelet's lifting stages, in order, to A
// in-place, implementing the VC-2 one-dimensional synthesis transform
// (15.4.4.2).
func OneDSynthesis(a []int64, w tables.Wavelet) {
	for _, stage := range w.Stages {
		applyStage(a, stage)
	}
}

// OneDAnalysis applies the complementary analysis transform, derived by
// reversing stage order and inverting add/subtract (see
// tables.AnalysisWavelet and the round-trip property in SPEC_FULL.md
// §8).
func OneDAnalysis(a []int64, w tables.Wavelet) {
	aw := tables.AnalysisWavelet(w)
	for _, stage := range aw.Stages {
		applyStage(a, stage)
	}
}

func applyStage(a []int64, stage tables.LiftingStage) {
	n := len(a) / 2
	updateEven := stage.LiftType == tables.EvenAddOdd || stage.LiftType == tables.EvenSubtractOdd
	adds := stage.LiftType == tables.EvenAddOdd || stage.LiftType == tables.OddAddEven

	for i := 0; i < n; i++ {
		var target int
		var sum int64
		if updateEven {
			target = 2 * i
			for k := 0; k < stage.L; k++ {
				pos := 2*(i+k+stage.D) - 1
				pos = clampOdd(pos, len(a))
				sum += int64(stage.Taps[k]) * a[pos]
			}
		} else {
			target = 2*i + 1
			for k := 0; k < stage.L; k++ {
				pos := 2 * (i + k + stage.D)
				pos = clampEven(pos, len(a))
				sum += int64(stage.Taps[k]) * a[pos]
			}
		}
		if stage.S > 0 {
			sum += int64(1) << uint(stage.S-1)
		}
		sum >>= uint(stage.S)
		if adds {
			a[target] += sum
		} else {
			a[target] -= sum
		}
	}
}

func clampOdd(pos, length int) int {
	if pos < 1 {
		return 1
	}
	if pos > length-1 {
		return length - 1
	}
	return pos
}

func clampEven(pos, length int) int {
	if pos < 0 {
		return 0
	}
	if pos > length-2 {
		return length - 2
	}
	return pos
}

// applyFinalShift performs the final rounding bit-shift VH/H synthesis
// applies once reconstruction of a level is complete.
func applyFinalShift(a Array2D, shift int) {
	if shift == 0 {
		return
	}
	round := int64(1) << uint(shift-1)
	for y := range a {
		for x := range a[y] {
			a[y][x] = (a[y][x] + round) >> uint(shift)
		}
	}
}

// HSynthesis reconstructs a full-width band from its L (low) and H
// (high) half-width components, per (15.4.2).
func HSynthesis(l, h Array2D, w tables.Wavelet) Array2D {
	height := l.Height()
	width := l.Width() + h.Width()
	out := NewArray2D(width, height)
	for y := 0; y < height; y++ {
		for x := 0; x < l.Width(); x++ {
			out[y][2*x] = l[y][x]
		}
		for x := 0; x < h.Width(); x++ {
			out[y][2*x+1] = h[y][x]
		}
		OneDSynthesis(out[y], w)
	}
	applyFinalShift(out, w.FilterBitShift)
	return out
}

// VHSynthesis reconstructs a full-size band from its LL/L, HL/H, LH,
// and HH quarter-size components, per (15.4.3). Vertical synthesis uses
// vWavelet, horizontal synthesis uses hWavelet.
func VHSynthesis(ll, hl, lh, hh Array2D, vWavelet, hWavelet tables.Wavelet) Array2D {
	qw, qh := ll.Width(), ll.Height()
	width, height := qw*2, qh*2
	out := NewArray2D(width, height)
	for y := 0; y < qh; y++ {
		for x := 0; x < qw; x++ {
			out[2*y][2*x] = ll[y][x]
			out[2*y][2*x+1] = hl[y][x]
			out[2*y+1][2*x] = lh[y][x]
			out[2*y+1][2*x+1] = hh[y][x]
		}
	}
	// Synthesise down each column using the vertical wavelet.
	col := make([]int64, height)
	for x := 0; x < width; x++ {
		for y := 0; y < height; y++ {
			col[y] = out[y][x]
		}
		OneDSynthesis(col, vWavelet)
		for y := 0; y < height; y++ {
			out[y][x] = col[y]
		}
	}
	// Synthesise across each row using the horizontal wavelet.
	for y := 0; y < height; y++ {
		OneDSynthesis(out[y], hWavelet)
	}
	applyFinalShift(out, hWavelet.FilterBitShift)
	return out
}

// applyFinalShiftForward performs the pre-analysis bit-shift: the
// inverse of applyFinalShift, applied before splitting a band into its
// lower-resolution components, so that DWT is the exact algebraic
// inverse of IDWT for testing the round-trip property.
func applyFinalShiftForward(a Array2D, shift int) {
	if shift == 0 {
		return
	}
	for y := range a {
		for x := range a[y] {
			a[y][x] <<= uint(shift)
		}
	}
}

// HAnalysis is the inverse of HSynthesis: it splits a full-width band
// into its L and H half-width components.
func HAnalysis(full Array2D, w tables.Wavelet) (l, h Array2D) {
	height := full.Height()
	width := full.Width()
	work := NewArray2D(width, height)
	for y := 0; y < height; y++ {
		copy(work[y], full[y])
	}
	applyFinalShiftForward(work, w.FilterBitShift)
	for y := 0; y < height; y++ {
		OneDAnalysis(work[y], w)
	}
	l = NewArray2D(width/2, height)
	h = NewArray2D(width/2, height)
	for y := 0; y < height; y++ {
		for x := 0; x < width/2; x++ {
			l[y][x] = work[y][2*x]
			h[y][x] = work[y][2*x+1]
		}
	}
	return l, h
}

// VHAnalysis is the inverse of VHSynthesis: it splits a full-size band
// into its LL, HL, LH, and HH quarter-size components.
func VHAnalysis(full Array2D, vWavelet, hWavelet tables.Wavelet) (ll, hl, lh, hh Array2D) {
	width, height := full.Width(), full.Height()
	work := NewArray2D(width, height)
	for y := 0; y < height; y++ {
		copy(work[y], full[y])
	}
	applyFinalShiftForward(work, hWavelet.FilterBitShift)
	for y := 0; y < height; y++ {
		OneDAnalysis(work[y], hWavelet)
	}
	col := make([]int64, height)
	for x := 0; x < width; x++ {
		for y := 0; y < height; y++ {
			col[y] = work[y][x]
		}
		OneDAnalysis(col, vWavelet)
		for y := 0; y < height; y++ {
			work[y][x] = col[y]
		}
	}
	qw, qh := width/2, height/2
	ll, hl, lh, hh = NewArray2D(qw, qh), NewArray2D(qw, qh), NewArray2D(qw, qh), NewArray2D(qw, qh)
	for y := 0; y < qh; y++ {
		for x := 0; x < qw; x++ {
			ll[y][x] = work[2*y][2*x]
			hl[y][x] = work[2*y][2*x+1]
			lh[y][x] = work[2*y+1][2*x]
			hh[y][x] = work[2*y+1][2*x+1]
		}
	}
	return ll, hl, lh, hh
}

// Coeffs holds one component's transform coefficients, keyed by level
// then orientation, as produced by the slice-decode stage.
type Coeffs map[int]map[tables.Orientation]Array2D

// DWT performs the forward transform, the exact algebraic inverse of
// IDWT, splitting a full padded-size component array into a DC band and
// per-level, per-orientation coefficients. It exists to exercise the
// round-trip testable property in SPEC_FULL.md §8; the conformance
// decoder itself never encodes.
func DWT(full Array2D, waveletHO, wavelet tables.Wavelet, dwtDepthHO, dwtDepth int) (dc Array2D, coeffs Coeffs) {
	coeffs = Coeffs{}
	cur := full
	levels := make([]int, 0, dwtDepthHO+dwtDepth)
	for level := dwtDepthHO + dwtDepth; level > dwtDepthHO; level-- {
		levels = append(levels, level)
	}
	for _, level := range levels {
		// Row (horizontal) passes always use the horizontal-only
		// wavelet, even within the 2D part of the transform; only the
		// column (vertical) pass uses the 2D wavelet.
		ll, hl, lh, hh := VHAnalysis(cur, wavelet, waveletHO)
		coeffs[level] = map[tables.Orientation]Array2D{
			tables.OrientHL: hl,
			tables.OrientLH: lh,
			tables.OrientHH: hh,
		}
		cur = ll
	}
	for level := dwtDepthHO; level > 0; level-- {
		l, h := HAnalysis(cur, waveletHO)
		coeffs[level] = map[tables.Orientation]Array2D{tables.OrientH: h}
		cur = l
	}
	return cur, coeffs
}

// IDWT reconstructs a full padded-size component array from its
// per-level, per-orientation coefficients (15.4.1). dc is the DC band
// at level 0 (orientation L if dwtDepthHO > 0, else LL).
func IDWT(dc Array2D, coeffs Coeffs, waveletHO, wavelet tables.Wavelet, dwtDepthHO, dwtDepth int) Array2D {
	cur := dc
	for level := 1; level <= dwtDepthHO; level++ {
		h := coeffs[level][tables.OrientH]
		cur = HSynthesis(cur, h, waveletHO)
	}
	for level := dwtDepthHO + 1; level <= dwtDepthHO+dwtDepth; level++ {
		hl := coeffs[level][tables.OrientHL]
		lh := coeffs[level][tables.OrientLH]
		hh := coeffs[level][tables.OrientHH]
		// Row (horizontal) passes always use the horizontal-only
		// wavelet, even within the 2D part of the transform; only the
		// column (vertical) pass uses the 2D wavelet.
		cur = VHSynthesis(cur, hl, lh, hh, wavelet, waveletHO)
	}
	return cur
}

// RemovePad crops a reconstructed, padded component array down to its
// true picture dimensions (15.4.5), discarding trailing rows/columns.
func RemovePad(a Array2D, width, height int) Array2D {
	out := make(Array2D, height)
	for y := 0; y < height; y++ {
		out[y] = append([]int64(nil), a[y][:width]...)
	}
	return out
}

// Finalise clips each sample to the signed range implied by depth bits
// and offsets it into [0, 2^depth - 1], per (15.5).
func Finalise(a Array2D, depth int) [][]uint32 {
	lo := -(int64(1) << uint(depth-1))
	hi := (int64(1) << uint(depth-1)) - 1
	offset := int64(1) << uint(depth-1)
	out := make([][]uint32, len(a))
	for y := range a {
		out[y] = make([]uint32, len(a[y]))
		for x, v := range a[y] {
			if v < lo {
				v = lo
			}
			if v > hi {
				v = hi
			}
			out[y][x] = uint32(v + offset)
		}
	}
	return out
}
