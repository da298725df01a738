package decoder

import (
	"github.com/bbc/vc2-conformance/idwt"
	"github.com/bbc/vc2-conformance/tables"
	"github.com/bbc/vc2-conformance/vlc"
)

// parseTransformParameters decodes the transform_parameters block
// (12.4.1): wavelet selection, transform depth, optional asymmetric
// horizontal-only parameters, slice layout and the quantisation matrix.
func (s *State) parseTransformParameters() error {
	waveletPos := s.pos()
	wavelet := vlc.ReadUint(s.r)
	if _, ok := tables.LiftingFilters[tables.WaveletIndex(wavelet)]; !ok {
		return newError(KindBadWaveletIndex, waveletPos, "unrecognised wavelet index", wavelet, nil)
	}
	s.waveletIndex = tables.WaveletIndex(wavelet)
	s.dwtDepth = int(vlc.ReadUint(s.r))

	s.waveletIndexHO = s.waveletIndex
	s.dwtDepthHO = 0
	if s.majorVersion >= 3 {
		if err := s.extendedTransformParameters(); err != nil {
			return err
		}
	}

	if err := s.sliceParameters(); err != nil {
		return err
	}
	if err := s.parseQuantMatrix(); err != nil {
		return err
	}

	s.cfg.Logger.Debug("transform_parameters", "wavelet", s.waveletIndex, "dwt_depth", s.dwtDepth, "wavelet_ho", s.waveletIndexHO, "dwt_depth_ho", s.dwtDepthHO)
	return nil
}

// extendedTransformParameters decodes the optional asymmetric
// horizontal-only wavelet index and depth (12.4.4.1).
func (s *State) extendedTransformParameters() error {
	if vlc.ReadBool(s.r) {
		pos := s.pos()
		waveletHO := vlc.ReadUint(s.r)
		if _, ok := tables.LiftingFilters[tables.WaveletIndex(waveletHO)]; !ok {
			return newError(KindBadHOWaveletIndex, pos, "unrecognised horizontal-only wavelet index", waveletHO, nil)
		}
		s.waveletIndexHO = tables.WaveletIndex(waveletHO)
	}
	if vlc.ReadBool(s.r) {
		s.dwtDepthHO = int(vlc.ReadUint(s.r))
	}
	return nil
}

// sliceParameters decodes the slice layout (12.4.5.2), branching on
// whether the current parse code selects the low-delay or
// high-quality slice header layout.
func (s *State) sliceParameters() error {
	slicesXPos := s.pos()
	s.slicesX = int(vlc.ReadUint(s.r))
	slicesYPos := s.pos()
	s.slicesY = int(vlc.ReadUint(s.r))
	if s.slicesX == 0 || s.slicesY == 0 {
		pos := slicesXPos
		if s.slicesX != 0 {
			pos = slicesYPos
		}
		return newError(KindZeroSlicesInCodedPicture, pos, "slices_x and slices_y must both be non-zero", nil, nil)
	}

	if s.parseCode.IsLowDelay() {
		s.sliceBytesNumerator = vlc.ReadUint(s.r)
		denomPos := s.pos()
		s.sliceBytesDenominator = vlc.ReadUint(s.r)
		if s.sliceBytesDenominator == 0 {
			return newError(KindSliceBytesHasZeroDenominator, denomPos, "slice_bytes_denominator must be non-zero", s.sliceBytesDenominator, nil)
		}
	}
	if s.parseCode.IsHighQuality() {
		s.slicePrefixBytes = vlc.ReadUint(s.r)
		scalerPos := s.pos()
		s.sliceSizeScaler = vlc.ReadUint(s.r)
		if s.sliceSizeScaler == 0 {
			return newError(KindSliceSizeScalerIsZero, scalerPos, "slice_size_scaler must be non-zero", s.sliceSizeScaler, nil)
		}
	}

	s.cfg.Logger.Debug("slice_parameters", "slices_x", s.slicesX, "slices_y", s.slicesY)
	return nil
}

// quantLevel names one level's orientations in the exact read and
// quantizer-assignment order used throughout (12.4.5.3)/(13.5.5).
type quantLevel struct {
	level        int
	orientations []tables.Orientation
}

// quantMatrixLevels yields (level, orientations) pairs in the exact
// read/quantizer order prescribed by (12.4.5.3)/(13.5.5).
func (s *State) quantMatrixLevels() []quantLevel {
	var levels []quantLevel
	if s.dwtDepthHO == 0 {
		levels = append(levels, quantLevel{0, []tables.Orientation{tables.OrientLL}})
	} else {
		levels = append(levels, quantLevel{0, []tables.Orientation{tables.OrientL}})
		for level := 1; level <= s.dwtDepthHO; level++ {
			levels = append(levels, quantLevel{level, []tables.Orientation{tables.OrientH}})
		}
	}
	for level := s.dwtDepthHO + 1; level <= s.dwtDepthHO+s.dwtDepth; level++ {
		levels = append(levels, quantLevel{level, []tables.Orientation{tables.OrientHL, tables.OrientLH, tables.OrientHH}})
	}
	return levels
}

// parseQuantMatrix decodes the quant_matrix block (12.4.5.3): either a
// custom matrix read level-then-orientation, or a lookup of the
// default matrix for the selected wavelet/depth combination.
func (s *State) parseQuantMatrix() error {
	custom := vlc.ReadBool(s.r)
	if custom {
		m := tables.QuantMatrix{}
		for _, lv := range s.quantMatrixLevels() {
			m[lv.level] = map[tables.Orientation]int{}
			for _, orient := range lv.orientations {
				value := vlc.ReadUint(s.r)
				if err := s.assertLevelConstraint("quant_matrix", int(value)); err != nil {
					return err
				}
				m[lv.level][orient] = int(value)
			}
		}
		s.quantMatrix = m
	} else {
		m, ok := s.cfg.LookupQuantMatrix(s.waveletIndexHO, s.waveletIndex, s.dwtDepthHO, s.dwtDepth)
		if !ok {
			return newError(KindNoQuantisationMatrixAvailable, s.pos(),
				"no default quantisation matrix for this wavelet/depth combination", nil, nil)
		}
		s.quantMatrix = m
	}
	s.cfg.Logger.Debug("quant_matrix", "custom", custom, "matrix", s.quantMatrix)
	return nil
}

// subbandWidth returns a component's padded subband width at level
// (13.2.3).
func (s *State) subbandWidth(level int, comp component) int {
	w := s.lumaWidth
	if comp != componentY {
		w = s.colorDiffWidth
	}
	scale := 1 << uint(s.dwtDepthHO+s.dwtDepth)
	padded := scale * ((w + scale - 1) / scale)
	if level == 0 {
		return padded / (1 << uint(s.dwtDepthHO+s.dwtDepth))
	}
	return padded / (1 << uint(s.dwtDepthHO+s.dwtDepth-level+1))
}

// subbandHeight returns a component's padded subband height at level
// (13.2.3).
func (s *State) subbandHeight(level int, comp component) int {
	h := s.lumaHeight
	if comp != componentY {
		h = s.colorDiffHeight
	}
	scale := 1 << uint(s.dwtDepth)
	padded := scale * ((h + scale - 1) / scale)
	if level <= s.dwtDepthHO {
		return padded / (1 << uint(s.dwtDepth))
	}
	return padded / (1 << uint(s.dwtDepthHO+s.dwtDepth-level+1))
}

// component names the three picture planes.
type component int

const (
	componentY component = iota
	componentC1
	componentC2
)

// initializeWaveletData allocates a component's coefficient storage
// ready to be filled in by slice decoding (13.2.2), returning the
// level-0 DC band separately from the higher-level coefficients.
func (s *State) initializeWaveletData(comp component) (dc idwt.Array2D, coeffs idwt.Coeffs) {
	coeffs = idwt.Coeffs{}
	dc = idwt.NewArray2D(s.subbandWidth(0, comp), s.subbandHeight(0, comp))
	for level := 1; level <= s.dwtDepthHO; level++ {
		coeffs[level] = map[tables.Orientation]idwt.Array2D{
			tables.OrientH: idwt.NewArray2D(s.subbandWidth(level, comp), s.subbandHeight(level, comp)),
		}
	}
	for level := s.dwtDepthHO + 1; level <= s.dwtDepthHO+s.dwtDepth; level++ {
		coeffs[level] = map[tables.Orientation]idwt.Array2D{
			tables.OrientHL: idwt.NewArray2D(s.subbandWidth(level, comp), s.subbandHeight(level, comp)),
			tables.OrientLH: idwt.NewArray2D(s.subbandWidth(level, comp), s.subbandHeight(level, comp)),
			tables.OrientHH: idwt.NewArray2D(s.subbandWidth(level, comp), s.subbandHeight(level, comp)),
		}
	}
	return dc, coeffs
}
