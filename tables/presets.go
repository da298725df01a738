package tables

import "math/big"

// Rational is a small exact-fraction type used for frame rates and
// pixel aspect ratios, standing in for the reference implementation's
// arbitrary-precision fractions.
type Rational struct{ Num, Den int64 }

// Float64 returns an approximate floating-point value of r.
func (r Rational) Float64() float64 {
	f, _ := new(big.Rat).SetFrac64(r.Num, r.Den).Float64()
	return f
}

// PresetFrameRates maps each PresetFrameRate to its exact value, Table
// 11.3.
var PresetFrameRates = map[PresetFrameRate]Rational{
	FPS24Over1001:  {24000, 1001},
	FPS24:          {24, 1},
	FPS25:          {25, 1},
	FPS30Over1001:  {30000, 1001},
	FPS30:          {30, 1},
	FPS50:          {50, 1},
	FPS60Over1001:  {60000, 1001},
	FPS60:          {60, 1},
	FPS15Over1001:  {15000, 1001},
	FPS25Over2:     {25, 2},
	FPS48:          {48, 1},
	FPS48Over1001:  {48000, 1001},
	FPS96:          {96, 1},
	FPS100:         {100, 1},
	FPS120Over1001: {120000, 1001},
	FPS120:         {120, 1},
}

// PresetPixelAspectRatios maps each PresetPixelAspectRatio to its exact
// value, Table 11.4.
var PresetPixelAspectRatios = map[PresetPixelAspectRatio]Rational{
	Ratio1_1:          {1, 1},
	Ratio4_3_525Line:  {10, 11},
	Ratio4_3_625Line:  {12, 11},
	Ratio16_9_525Line: {40, 33},
	Ratio16_9_625Line: {16, 11},
	Ratio4_3:          {4, 3},
}

// SignalRangeParameters describes the offset/excursion of luma and
// colour-difference samples, Table 11.5.
type SignalRangeParameters struct {
	LumaOffset         int
	LumaExcursion      int
	ColorDiffOffset    int
	ColorDiffExcursion int
}

// PresetSignalRanges maps each PresetSignalRange to its parameters,
// Table 11.5.
var PresetSignalRanges = map[PresetSignalRange]SignalRangeParameters{
	Range8BitFull:   {0, 255, 128, 255},
	Range8BitVideo:  {16, 219, 128, 224},
	Range10BitVideo: {64, 876, 512, 896},
	Range12BitVideo: {256, 3504, 2048, 3584},
	Range10BitFull:  {0, 1023, 512, 1023},
	Range12BitFull:  {0, 4095, 2048, 4095},
	Range16BitVideo: {4096, 56064, 32768, 57344},
	Range16BitFull:  {0, 65535, 32768, 65535},
}

// ColorSpecification names the three presets that make up a full colour
// specification, Table 11.6.
type ColorSpecification struct {
	Primaries PresetColorPrimaries
	Matrix    PresetColorMatrix
	Transfer  PresetTransferFunction
}

// PresetColorSpecsTable maps each PresetColorSpec to its constituent
// presets, Table 11.6.
var PresetColorSpecsTable = map[PresetColorSpec]ColorSpecification{
	ColorSpecCustom:   {PrimariesHDTV, MatrixHDTV, TransferTVGamma},
	ColorSpecSDTV525:  {PrimariesSDTV525, MatrixSDTV, TransferTVGamma},
	ColorSpecSDTV625:  {PrimariesSDTV625, MatrixSDTV, TransferTVGamma},
	ColorSpecHDTV:     {PrimariesHDTV, MatrixHDTV, TransferTVGamma},
	ColorSpecDCinema:  {PrimariesDCinema, MatrixReversible, TransferDCinema},
	ColorSpecUHDTV:    {PrimariesUHDTV, MatrixUHDTV, TransferTVGamma},
	ColorSpecHDRTVPQ:  {PrimariesUHDTV, MatrixUHDTV, TransferPerceptualQuality},
	ColorSpecHDRTVHLG: {PrimariesUHDTV, MatrixUHDTV, TransferHybridLogGamma},
}

// BaseVideoFormatParameters is one row of the base video format table,
// Table B.1a/B.1b/B.1c.
type BaseVideoFormatParameters struct {
	FrameWidth            int
	FrameHeight           int
	ColorDiffFormatIndex  ColorDifferenceSamplingFormat
	SourceSampling        SourceSamplingMode
	TopFieldFirst         bool
	FrameRateIndex        PresetFrameRate
	PixelAspectRatioIndex PresetPixelAspectRatio
	CleanWidth            int
	CleanHeight           int
	LeftOffset            int
	TopOffset             int
	SignalRangeIndex      PresetSignalRange
	ColorSpecIndex        PresetColorSpec
}

// BaseVideoFormatParams maps each BaseVideoFormat to its parameters,
// transcribed from Table B.1a/B.1b/B.1c.
var BaseVideoFormatParams = map[BaseVideoFormat]BaseVideoFormatParameters{
	CustomFormat: {640, 480, Color420, Progressive, false, FPS24Over1001, Ratio1_1, 640, 480, 0, 0, Range8BitFull, ColorSpecCustom},
	QSIF525:      {176, 120, Color420, Progressive, false, FPS15Over1001, Ratio4_3_525Line, 176, 120, 0, 0, Range8BitFull, ColorSpecSDTV525},
	QCIF:         {176, 144, Color420, Progressive, true, FPS25Over2, Ratio4_3_525Line, 176, 144, 0, 0, Range8BitFull, ColorSpecSDTV625},
	SIF525:       {352, 240, Color420, Progressive, false, FPS15Over1001, Ratio4_3_525Line, 352, 240, 0, 0, Range8BitFull, ColorSpecSDTV525},
	CIF:          {352, 288, Color420, Progressive, true, FPS25Over2, Ratio4_3_525Line, 352, 288, 0, 0, Range8BitFull, ColorSpecSDTV625},
	FourSIF525:   {704, 480, Color420, Progressive, false, FPS15Over1001, Ratio4_3_525Line, 704, 480, 0, 0, Range8BitFull, ColorSpecSDTV525},
	FourCIF:      {704, 576, Color420, Progressive, true, FPS25Over2, Ratio4_3_525Line, 704, 576, 0, 0, Range8BitFull, ColorSpecSDTV625},
	SD480I60:     {720, 480, Color422, Interlaced, false, FPS30Over1001, Ratio4_3_525Line, 704, 480, 8, 0, Range10BitVideo, ColorSpecSDTV525},
	SD576I50:     {720, 576, Color422, Interlaced, true, FPS25, Ratio4_3_525Line, 704, 576, 8, 0, Range10BitVideo, ColorSpecSDTV625},
	HD720P60:     {1280, 720, Color422, Progressive, true, FPS60Over1001, Ratio1_1, 1280, 720, 0, 0, Range10BitVideo, ColorSpecHDTV},
	HD720P50:     {1280, 720, Color422, Progressive, true, FPS50, Ratio1_1, 1280, 720, 0, 0, Range10BitVideo, ColorSpecHDTV},
	HD1080I60:    {1920, 1080, Color422, Interlaced, true, FPS30Over1001, Ratio1_1, 1920, 1080, 0, 0, Range10BitVideo, ColorSpecHDTV},
	HD1080I50:    {1920, 1080, Color422, Interlaced, true, FPS25, Ratio1_1, 1920, 1080, 0, 0, Range10BitVideo, ColorSpecHDTV},
	HD1080P60:    {1920, 1080, Color422, Progressive, true, FPS60Over1001, Ratio1_1, 1920, 1080, 0, 0, Range10BitVideo, ColorSpecHDTV},
	HD1080P50:    {1920, 1080, Color422, Progressive, true, FPS50, Ratio1_1, 1920, 1080, 0, 0, Range10BitVideo, ColorSpecHDTV},
	DC2K:         {2048, 1080, Color444, Progressive, true, FPS24, Ratio1_1, 2048, 1080, 0, 0, Range12BitVideo, ColorSpecDCinema},
	DC4K:         {4096, 2160, Color444, Progressive, true, FPS24, Ratio1_1, 4096, 2160, 0, 0, Range12BitVideo, ColorSpecDCinema},
	UHDTV4K60:    {3840, 2160, Color422, Progressive, true, FPS60Over1001, Ratio1_1, 3840, 2160, 0, 0, Range10BitVideo, ColorSpecUHDTV},
	UHDTV4K50:    {3840, 2160, Color422, Progressive, true, FPS50, Ratio1_1, 3840, 2160, 0, 0, Range10BitVideo, ColorSpecUHDTV},
	UHDTV8K60:    {7680, 4320, Color422, Progressive, true, FPS60Over1001, Ratio1_1, 7680, 4320, 0, 0, Range10BitVideo, ColorSpecUHDTV},
	UHDTV8K50:    {7680, 4320, Color422, Progressive, true, FPS50, Ratio1_1, 7680, 4320, 0, 0, Range10BitVideo, ColorSpecUHDTV},
	HD1080P24:    {1920, 1080, Color422, Progressive, true, FPS24Over1001, Ratio1_1, 1920, 1080, 0, 0, Range10BitVideo, ColorSpecHDTV},
	SDPro486:     {720, 486, Color422, Interlaced, false, FPS30Over1001, Ratio4_3_525Line, 720, 486, 0, 0, Range10BitVideo, ColorSpecHDTV},
}

// ProfileAllowedParseCodes lists the data units permitted by each
// profile, (C.2).
var ProfileAllowedParseCodes = map[Profile][]ParseCode{
	ProfileLowDelay: {
		ParseCodeSequenceHeader,
		ParseCodeEndOfSequence,
		ParseCodeAuxiliaryData,
		ParseCodePaddingData,
		ParseCodeLowDelayPicture,
		ParseCodeLowDelayPictureFragment,
	},
	ProfileHighQuality: {
		ParseCodeSequenceHeader,
		ParseCodeEndOfSequence,
		ParseCodeAuxiliaryData,
		ParseCodePaddingData,
		ParseCodeHighQualityPicture,
		ParseCodeHighQualityPictureFragment,
	},
}
