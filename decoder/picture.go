package decoder

import (
	"github.com/bbc/vc2-conformance/idwt"
	"github.com/bbc/vc2-conformance/tables"
	"github.com/bbc/vc2-conformance/vlc"
)

// assertPictureNumber enforces the picture_number conformance rules
// (12.2): consecutive pictures must number exactly one apart, and when
// the sequence codes pictures as fields, the earliest field's number
// must be even.
func (s *State) assertPictureNumber(n uint32) error {
	pos := s.pos()
	if s.havePictureNumber {
		expected := s.pictureNumber + 1
		if n != expected {
			return newError(KindNonConsecutivePictureNumbers, pos,
				"picture_number must increase by exactly one between pictures",
				int64(n), []interface{}{int64(expected)})
		}
	} else if s.pictureCodingMode == tables.PicturesAreFields && n%2 != 0 {
		return newError(KindEarliestFieldHasOddPictureNumber, pos,
			"the earliest field's picture_number must be even", int64(n), nil)
	}
	s.pictureNumber = n
	s.havePictureNumber = true
	return nil
}

// pictureHeader decodes the picture_header block (12.2).
func (s *State) pictureHeader() (uint32, error) {
	vlc.ByteAlign(s.r)
	n := uint32(vlc.ReadUintLit(s.r, 4))
	if err := s.assertPictureNumber(n); err != nil {
		return n, err
	}
	s.cfg.Logger.Debug("picture_header", "picture_number", n)
	return n, nil
}

// decodeAllSlices walks every slice of a fully coded (non-fragmented)
// picture in raster order (13.5.2), then applies DC prediction if the
// current parse code calls for it.
func (s *State) decodeAllSlices() {
	for sy := 0; sy < s.slicesY; sy++ {
		for sx := 0; sx < s.slicesX; sx++ {
			s.decodeSlice(sx, sy)
		}
	}
	if s.parseCode.UsesDCPrediction() {
		s.dcPredictPicture()
	}
}

// initializePictureCoefficients allocates fresh coefficient storage for
// all three components, ready for transform_data to fill in.
func (s *State) initializePictureCoefficients() {
	s.dcBandY, s.yTransform = s.initializeWaveletData(componentY)
	s.dcBandC1, s.c1Transform = s.initializeWaveletData(componentC1)
	s.dcBandC2, s.c2Transform = s.initializeWaveletData(componentC2)
}

// reconstructPicture runs the inverse wavelet transform over all three
// components, crops and finalises them, and delivers the result to the
// configured callback (15.2).
func (s *State) reconstructPicture(pictureNumber uint32) {
	waveletHO := tables.LiftingFilters[s.waveletIndexHO]
	wavelet := tables.LiftingFilters[s.waveletIndex]

	y := idwt.IDWT(s.dcBandY, s.yTransform, waveletHO, wavelet, s.dwtDepthHO, s.dwtDepth)
	c1 := idwt.IDWT(s.dcBandC1, s.c1Transform, waveletHO, wavelet, s.dwtDepthHO, s.dwtDepth)
	c2 := idwt.IDWT(s.dcBandC2, s.c2Transform, waveletHO, wavelet, s.dwtDepthHO, s.dwtDepth)

	y = idwt.RemovePad(y, s.lumaWidth, s.lumaHeight)
	c1 = idwt.RemovePad(c1, s.colorDiffWidth, s.colorDiffHeight)
	c2 = idwt.RemovePad(c2, s.colorDiffWidth, s.colorDiffHeight)

	if s.cfg.OnPicture != nil {
		s.cfg.OnPicture(pictureNumber,
			idwt.Finalise(y, s.lumaDepth),
			idwt.Finalise(c1, s.colorDiffDepth),
			idwt.Finalise(c2, s.colorDiffDepth))
	}
}

// parsePicture decodes a complete (non-fragmented) picture data unit
// (12.1): picture_header, transform_parameters, every slice's
// transform_data, and the resulting inverse transform.
func (s *State) parsePicture() error {
	n, err := s.pictureHeader()
	if err != nil {
		return err
	}

	vlc.ByteAlign(s.r)
	if err := s.parseTransformParameters(); err != nil {
		return err
	}

	s.initializePictureCoefficients()

	vlc.ByteAlign(s.r)
	s.decodeAllSlices()

	s.reconstructPicture(n)
	return nil
}
