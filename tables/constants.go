/*
DESCRIPTION
  Package tables holds the constant tables a VC-2 decoder needs as
  input: parse codes, base video formats, preset tables for frame rate,
  pixel aspect ratio, signal range and colour handling, lifting-filter
  definitions, a (deliberately partial, see DESIGN.md) default
  quantisation-matrix table, and the level-constraint and
  level-sequencing tables used by the constraint engine.
*/
package tables

// ParseInfoPrefix is the 4-byte magic ("BBCD") that opens every
// parse-info header.
const ParseInfoPrefix = 0x42424344

// ParseInfoHeaderBytes is the fixed length of a parse-info header.
const ParseInfoHeaderBytes = 13

// ParseCode identifies the kind of data unit that follows a parse-info
// header.
type ParseCode uint8

// Parse code values, Table 10.1.
const (
	ParseCodeSequenceHeader               ParseCode = 0x00
	ParseCodeEndOfSequence                ParseCode = 0x10
	ParseCodeAuxiliaryData                ParseCode = 0x20
	ParseCodePaddingData                  ParseCode = 0x30
	ParseCodeLowDelayPicture              ParseCode = 0xC8
	ParseCodeHighQualityPicture           ParseCode = 0xE8
	ParseCodeLowDelayPictureFragment      ParseCode = 0xCC
	ParseCodeHighQualityPictureFragment   ParseCode = 0xEC
)

// IsAuxiliaryData reports whether code's high bits (& 0xF8) classify it
// as auxiliary data.
func (c ParseCode) IsAuxiliaryData() bool { return c&0xF8 == 0x20 }

// IsPictureOrFragment reports whether code (& 0x88) classifies it as a
// picture or fragment data unit.
func (c ParseCode) IsPictureOrFragment() bool { return c&0x88 == 0x88 }

// IsFragment reports whether a picture-or-fragment code (& 0x0C) is
// further classified as a fragment.
func (c ParseCode) IsFragment() bool { return c&0x0C == 0x0C }

// UsesDCPrediction reports whether code (& 0x28) selects a low-delay
// variant, which applies DC prediction.
func (c ParseCode) UsesDCPrediction() bool { return c&0x28 == 0x08 }

// IsLowDelay reports whether code (& 0xF8) selects the low-delay
// picture slice layout, including low-delay fragments.
func (c ParseCode) IsLowDelay() bool { return c&0xF8 == 0xC8 }

// IsHighQuality reports whether code (& 0xF8) selects the high-quality
// picture slice layout, including high-quality fragments.
func (c ParseCode) IsHighQuality() bool { return c&0xF8 == 0xE8 }

// PictureCodingMode distinguishes frame- from field-coded pictures.
type PictureCodingMode int

const (
	PicturesAreFrames PictureCodingMode = 0
	PicturesAreFields PictureCodingMode = 1
)

// ColorDifferenceSamplingFormat is the chroma subsampling scheme.
type ColorDifferenceSamplingFormat int

const (
	Color444 ColorDifferenceSamplingFormat = 0
	Color422 ColorDifferenceSamplingFormat = 1
	Color420 ColorDifferenceSamplingFormat = 2
)

// SourceSamplingMode distinguishes progressive from interlaced capture.
type SourceSamplingMode int

const (
	Progressive SourceSamplingMode = 0
	Interlaced  SourceSamplingMode = 1
)

// BaseVideoFormat indexes a row of BaseVideoFormatParameters.
type BaseVideoFormat int

const (
	CustomFormat BaseVideoFormat = iota
	QSIF525
	QCIF
	SIF525
	CIF
	FourSIF525
	FourCIF
	SD480I60
	SD576I50
	HD720P60
	HD720P50
	HD1080I60
	HD1080I50
	HD1080P60
	HD1080P50
	DC2K
	DC4K
	UHDTV4K60
	UHDTV4K50
	UHDTV8K60
	UHDTV8K50
	HD1080P24
	SDPro486
)

// Profile is a VC-2 conformance profile.
type Profile int

const (
	ProfileLowDelay    Profile = 0
	ProfileHighQuality Profile = 3
)

// PresetFrameRate indexes PresetFrameRates.
type PresetFrameRate int

const (
	FPS24Over1001 PresetFrameRate = iota + 1
	FPS24
	FPS25
	FPS30Over1001
	FPS30
	FPS50
	FPS60Over1001
	FPS60
	FPS15Over1001
	FPS25Over2
	FPS48
	FPS48Over1001
	FPS96
	FPS100
	FPS120Over1001
	FPS120
)

// PresetPixelAspectRatio indexes PresetPixelAspectRatios.
type PresetPixelAspectRatio int

const (
	Ratio1_1 PresetPixelAspectRatio = iota + 1
	Ratio4_3_525Line
	Ratio4_3_625Line
	Ratio16_9_525Line
	Ratio16_9_625Line
	Ratio4_3
)

// PresetSignalRange indexes PresetSignalRanges.
type PresetSignalRange int

const (
	Range8BitFull PresetSignalRange = iota + 1
	Range8BitVideo
	Range10BitVideo
	Range12BitVideo
	Range10BitFull
	Range12BitFull
	Range16BitVideo
	Range16BitFull
)

// PresetColorPrimaries indexes PresetColorPrimariesTable.
type PresetColorPrimaries int

const (
	PrimariesHDTV PresetColorPrimaries = iota
	PrimariesSDTV525
	PrimariesSDTV625
	PrimariesDCinema
	PrimariesUHDTV
)

// PresetColorMatrix indexes PresetColorMatricesTable.
type PresetColorMatrix int

const (
	MatrixHDTV PresetColorMatrix = iota
	MatrixSDTV
	MatrixReversible
	MatrixRGB
	MatrixUHDTV
)

// PresetTransferFunction indexes PresetTransferFunctionsTable.
type PresetTransferFunction int

const (
	TransferTVGamma PresetTransferFunction = iota
	TransferExtendedGamut
	TransferLinear
	TransferDCinema
	TransferPerceptualQuality
	TransferHybridLogGamma
)

// PresetColorSpec indexes PresetColorSpecsTable.
type PresetColorSpec int

const (
	ColorSpecCustom PresetColorSpec = iota
	ColorSpecSDTV525
	ColorSpecSDTV625
	ColorSpecHDTV
	ColorSpecDCinema
	ColorSpecUHDTV
	ColorSpecHDRTVPQ
	ColorSpecHDRTVHLG
)

// LiftingType identifies how a lifting stage combines tap values with
// its target sample.
type LiftingType int

const (
	EvenAddOdd LiftingType = iota + 1
	EvenSubtractOdd
	OddAddEven
	OddSubtractEven
)

// Orientation identifies a subband's role within a transform level.
type Orientation int

const (
	OrientL Orientation = iota
	OrientH
	OrientLL
	OrientHL
	OrientLH
	OrientHH
)

// WaveletIndex identifies a lifting-filter kind, Table 12.1.
type WaveletIndex int

const (
	DeslauriersDubuc9_7 WaveletIndex = iota
	LeGall5_3
	DeslauriersDubuc13_7
	HaarNoShift
	HaarWithShift
	Fidelity
	Daubechies9_7
)
