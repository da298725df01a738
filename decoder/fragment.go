package decoder

import (
	"github.com/bbc/vc2-conformance/vlc"
)

// fragmentHeader decodes the fragment_header block (14.2): the picture
// number (subject to the same conformance checks as a whole picture),
// the fragment's data length (framing only, not needed to decode), its
// slice count, and, when that count is non-zero, the offset of its
// first slice within the picture's raster.
func (s *State) fragmentHeader() (uint32, error) {
	vlc.ByteAlign(s.r)
	n := uint32(vlc.ReadUintLit(s.r, 4))
	if err := s.assertPictureNumber(n); err != nil {
		return n, err
	}
	vlc.ReadUintLit(s.r, 2)
	s.fragmentSliceCount = vlc.ReadUintLit(s.r, 2)
	if s.fragmentSliceCount != 0 {
		s.fragmentXOffset = vlc.ReadUintLit(s.r, 2)
		s.fragmentYOffset = vlc.ReadUintLit(s.r, 2)
	}
	s.cfg.Logger.Debug("fragment_header", "picture_number", n, "fragment_slice_count", s.fragmentSliceCount)
	return n, nil
}

// parseFragment decodes one fragment data unit (14.1). A fragment with
// a zero slice count carries transform_parameters instead of slices,
// (re)initialising the fragmented picture's coefficient storage. A
// fragment with a non-zero slice count decodes that many slices
// starting at its declared raster offset, wrapping row to row exactly
// as the full picture's raster order does, completing and delivering
// the picture once every one of its slices has been received.
func (s *State) parseFragment() error {
	n, err := s.fragmentHeader()
	if err != nil {
		return err
	}

	if s.fragmentSliceCount == 0 {
		vlc.ByteAlign(s.r)
		if err := s.parseTransformParameters(); err != nil {
			return err
		}
		s.initializePictureCoefficients()
		s.fragmentSlicesReceived = 0
		s.fragmentedPictureDone = false
		return nil
	}

	vlc.ByteAlign(s.r)
	totalSlices := s.slicesX * s.slicesY
	for i := uint64(0); i < s.fragmentSliceCount; i++ {
		linear := int(s.fragmentYOffset)*s.slicesX + int(s.fragmentXOffset) + int(i)
		sx := linear % s.slicesX
		sy := linear / s.slicesX
		s.decodeSlice(sx, sy)
		s.fragmentSlicesReceived++
	}

	if s.fragmentSlicesReceived >= totalSlices && !s.fragmentedPictureDone {
		if s.parseCode.UsesDCPrediction() {
			s.dcPredictPicture()
		}
		s.fragmentedPictureDone = true
		s.reconstructPicture(n)
	}
	return nil
}
