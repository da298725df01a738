package decoder

import (
	vcbits "github.com/bbc/vc2-conformance/bits"
	"github.com/bbc/vc2-conformance/config"
	"github.com/bbc/vc2-conformance/idwt"
	"github.com/bbc/vc2-conformance/tables"
)

type position struct {
	byteOffset int64
	bitIndex   int
}

// VideoParameters holds the decoded/overridden source parameters for a
// sequence, (11.4).
type VideoParameters struct {
	FrameWidth, FrameHeight               int
	ColorDiffFormatIndex                  tables.ColorDifferenceSamplingFormat
	SourceSampling                        tables.SourceSamplingMode
	TopFieldFirst                         bool
	FrameRateNumer, FrameRateDenom        int64
	PixelAspectRatioNumer, PixelAspectRatioDenom int64
	CleanWidth, CleanHeight               int
	LeftOffset, TopOffset                 int
	LumaOffset, LumaExcursion             int
	ColorDiffOffset, ColorDiffExcursion   int
	ColorPrimaries                        tables.PresetColorPrimaries
	ColorMatrix                           tables.PresetColorMatrix
	TransferFunction                      tables.PresetTransferFunction
}

// State carries every field the decoder accumulates while walking a
// VC-2 sequence: bitstream position, parse-info bookkeeping, sequence
// and picture parameters, per-slice quantiser state, and in-progress
// transform coefficient storage.
type State struct {
	cfg config.Config
	r   *vcbits.Reader
	br  *vcbits.BoundedReader // set while inside a bounded block

	// (10) parse-info
	parseCode            tables.ParseCode
	nextParseOffset      uint64
	previousParseOffset  uint64
	sequenceMatcher      *seqMatcher

	// (11.2) parse parameters. These and the fields below marked
	// "cross-sequence" persist across ParseOneSequence calls within a
	// single State: a concatenated stream's sequences must all declare
	// identical values, checked in parseParseParameters and
	// parseSequenceHeader.
	haveSequenceHeader bool
	majorVersion       uint64
	minorVersion       uint64
	profile            tables.Profile
	level              int

	// cross-sequence: the first sequence_header's fully-resolved
	// parameters, compared against every subsequent one.
	firstBaseVideoFormat   uint64
	firstVideoParameters   VideoParameters
	firstPictureCodingMode tables.PictureCodingMode

	video VideoParameters

	lumaWidth, lumaHeight           int
	colorDiffWidth, colorDiffHeight int
	lumaDepth, colorDiffDepth       int

	// (12.2) picture header
	pictureNumber      uint32
	havePictureNumber  bool
	pictureCodingMode  tables.PictureCodingMode

	// (12.4) transform parameters
	waveletIndex   tables.WaveletIndex
	waveletIndexHO tables.WaveletIndex
	dwtDepth       int
	dwtDepthHO     int

	slicesX, slicesY               int
	sliceBytesNumerator             uint64
	sliceBytesDenominator           uint64
	slicePrefixBytes                uint64
	sliceSizeScaler                 uint64

	quantMatrix tables.QuantMatrix
	quantizer   map[int]map[tables.Orientation]int

	yTransform, c1Transform, c2Transform idwt.Coeffs
	dcBandY, dcBandC1, dcBandC2          idwt.Array2D

	// (14) fragment state
	fragmentSliceCount    uint64
	fragmentXOffset       uint64
	fragmentYOffset       uint64
	fragmentSlicesReceived int
	fragmentedPictureDone  bool

	// Aggregate of every level-constrained field value observed so far,
	// keyed by field name, checked monotonically against the level
	// constraint table.
	levelConstrainedValues map[string]int
}

// New returns a State ready to decode a sequence of VC-2 data units
// read from r.
func New(r *vcbits.Reader, cfg config.Config) *State {
	cfg.Validate()
	return &State{
		cfg:                    cfg,
		r:                      r,
		levelConstrainedValues: map[string]int{},
	}
}

func (s *State) pos() position {
	b, bit := s.r.Tell()
	return position{byteOffset: b, bitIndex: bit}
}
