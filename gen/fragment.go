package gen

import (
	"github.com/bbc/vc2-conformance/tables"
	"github.com/bbc/vc2-conformance/vlc"
)

// FragmentSlice names one slice's position within the picture a run of
// fragments reassembles, in the linear order fragment_data (14.3)
// transmits slices.
type FragmentSlice struct {
	SX, SY int
}

// WriteFragmentHeader writes a fragment data unit carrying only the
// fragment_header (14.2) and transform_parameters (no slices): the
// first fragment of a fragmented picture, declaring fragment_slice_count
// zero.
func (g *Generator) WriteFragmentHeader(code tables.ParseCode, pictureNumber AutoUint32, layout PictureLayout, next AutoUint32) {
	g.writeParseInfo(code, next, Auto())

	n := pictureNumber.value
	if pictureNumber.auto {
		n = g.nextPictureNumber
	}
	vlc.WriteUintLit(g.w, uint64(n), 4)
	g.nextPictureNumber = n + 1
	g.havePictureNumber = true

	vlc.WriteUintLit(g.w, 0, 2) // fragment_data_length (written as zero)
	vlc.WriteUintLit(g.w, 0, 2) // fragment_slice_count

	g.writeTransformParameters(code, layout)
}

// WriteFragmentSlices writes a fragment data unit (14.3) carrying a run
// of slices starting at slices[0], which must be contiguous in the
// linear slice-scan order fragment_data assumes (fragment_x_offset,
// fragment_y_offset plus fragment_slice_count consecutive slices).
func (g *Generator) WriteFragmentSlices(code tables.ParseCode, pictureNumber AutoUint32, data PictureData, layout PictureLayout, qindex int, slices []FragmentSlice, ldYLengthBits func(sx, sy int) int64, next AutoUint32) error {
	g.writeParseInfo(code, next, Auto())

	n := pictureNumber.value
	if pictureNumber.auto {
		n = g.nextPictureNumber
	}
	vlc.WriteUintLit(g.w, uint64(n), 4)
	g.nextPictureNumber = n + 1
	g.havePictureNumber = true

	vlc.WriteUintLit(g.w, 0, 2) // fragment_data_length (written as zero)
	vlc.WriteUintLit(g.w, uint64(len(slices)), 2)
	if len(slices) == 0 {
		return nil
	}
	vlc.WriteUintLit(g.w, uint64(slices[0].SX), 2)
	vlc.WriteUintLit(g.w, uint64(slices[0].SY), 2)

	for _, sl := range slices {
		var err error
		if code.IsLowDelay() {
			yBits := int64(0)
			if ldYLengthBits != nil {
				yBits = ldYLengthBits(sl.SX, sl.SY)
			}
			err = g.writeLDSlice(data, layout, qindex, yBits, sl.SX, sl.SY)
		} else {
			err = g.writeHQSlice(data, layout, qindex, sl.SX, sl.SY)
		}
		if err != nil {
			return err
		}
	}
	return nil
}
