package decoder

import (
	"github.com/google/go-cmp/cmp"

	"github.com/bbc/vc2-conformance/tables"
	"github.com/bbc/vc2-conformance/vlc"
)

// parseSequenceHeader decodes a sequence_header data unit (11.1),
// enforcing that every sequence in a concatenated stream declares
// identical parse parameters, base video format, source parameters and
// picture coding mode.
func (s *State) parseSequenceHeader() error {
	vlc.ByteAlign(s.r)

	if err := s.parseParseParameters(); err != nil {
		return err
	}

	baseFormatPos := s.pos()
	baseFormat := vlc.ReadUint(s.r)
	baseParams, ok := tables.BaseVideoFormatParams[tables.BaseVideoFormat(baseFormat)]
	if !ok {
		return newError(KindBadBaseVideoFormat, baseFormatPos, "unrecognised base video format", baseFormat, nil)
	}

	video := setSourceDefaults(baseParams)
	if err := s.frameSize(&video); err != nil {
		return err
	}
	if err := s.colorDiffSamplingFormat(&video); err != nil {
		return err
	}
	s.scanFormat(&video)
	if err := s.frameRate(&video); err != nil {
		return err
	}
	if err := s.pixelAspectRatio(&video); err != nil {
		return err
	}
	s.cleanArea(&video)
	if err := s.signalRange(&video); err != nil {
		return err
	}
	if err := s.colorSpec(&video); err != nil {
		return err
	}

	pictureCodingModePos := s.pos()
	pictureCodingMode := vlc.ReadUint(s.r)
	if err := s.assertIn(KindBadPictureCodingMode, pictureCodingModePos, int64(pictureCodingMode),
		[]int64{int64(tables.PicturesAreFrames), int64(tables.PicturesAreFields)},
		"unrecognised picture coding mode"); err != nil {
		return err
	}
	s.pictureCodingMode = tables.PictureCodingMode(pictureCodingMode)

	s.setCodingParameters(video, s.pictureCodingMode)

	if s.haveSequenceHeader {
		if baseFormat != s.firstBaseVideoFormat {
			return newError(KindSequenceHeaderChangedMidSequence, baseFormatPos,
				"base_video_format differs from the first sequence header seen", baseFormat, []interface{}{int64(s.firstBaseVideoFormat)})
		}
		if s.pictureCodingMode != s.firstPictureCodingMode {
			return newError(KindSequenceHeaderChangedMidSequence, pictureCodingModePos,
				"picture_coding_mode differs from the first sequence header seen", pictureCodingMode, []interface{}{int64(s.firstPictureCodingMode)})
		}
		if !cmp.Equal(video, s.firstVideoParameters) {
			return newError(KindSequenceHeaderChangedMidSequence, s.pos(),
				"source parameters differ from the first sequence header seen", nil, nil)
		}
	} else {
		s.haveSequenceHeader = true
		s.firstBaseVideoFormat = baseFormat
		s.firstPictureCodingMode = s.pictureCodingMode
		s.firstVideoParameters = video
	}

	s.video = video
	return nil
}

// parseParseParameters decodes the parse_parameters block (11.2.1),
// checking that major_version/minor_version/profile/level are
// identical across every sequence in the stream.
func (s *State) parseParseParameters() error {
	major, err := s.readUintLevelConstrained("major_version")
	if err != nil {
		return err
	}
	minor, err := s.readUintLevelConstrained("minor_version")
	if err != nil {
		return err
	}
	profilePos := s.pos()
	profile, err := s.readUintLevelConstrained("profile")
	if err != nil {
		return err
	}
	levelPos := s.pos()
	level, err := s.readUintLevelConstrained("level")
	if err != nil {
		return err
	}

	if _, ok := tables.ProfileAllowedParseCodes[tables.Profile(profile)]; !ok {
		return newError(KindBadProfile, profilePos, "unrecognised profile", profile, []interface{}{int64(tables.ProfileLowDelay), int64(tables.ProfileHighQuality)})
	}
	if _, ok := tables.LevelSequencingRegexes[int(level)]; !ok {
		return newError(KindBadLevel, levelPos, "unrecognised level", level, []interface{}{int64(0), int64(1)})
	}

	if s.haveSequenceHeader {
		if s.majorVersion != major {
			return newError(KindSequenceHeaderChangedMidSequence, s.pos(), "major_version differs from the first sequence header seen", major, []interface{}{int64(s.majorVersion)})
		}
		if s.minorVersion != minor {
			return newError(KindSequenceHeaderChangedMidSequence, s.pos(), "minor_version differs from the first sequence header seen", minor, []interface{}{int64(s.minorVersion)})
		}
		if s.profile != tables.Profile(profile) {
			return newError(KindProfileChanged, s.pos(), "profile differs from the first sequence header seen", profile, []interface{}{int64(s.profile)})
		}
		if s.level != int(level) {
			return newError(KindLevelChanged, s.pos(), "level differs from the first sequence header seen", level, []interface{}{int64(s.level)})
		}
	}

	s.majorVersion = major
	s.minorVersion = minor
	s.profile = tables.Profile(profile)
	s.level = int(level)
	return nil
}

// setSourceDefaults populates a VideoParameters from a base video
// format's preset table row (11.4.2).
func setSourceDefaults(base tables.BaseVideoFormatParameters) VideoParameters {
	fr := tables.PresetFrameRates[base.FrameRateIndex]
	par := tables.PresetPixelAspectRatios[base.PixelAspectRatioIndex]
	sr := tables.PresetSignalRanges[base.SignalRangeIndex]
	cs := tables.PresetColorSpecsTable[base.ColorSpecIndex]
	return VideoParameters{
		FrameWidth:            base.FrameWidth,
		FrameHeight:           base.FrameHeight,
		ColorDiffFormatIndex:  base.ColorDiffFormatIndex,
		SourceSampling:        base.SourceSampling,
		TopFieldFirst:         base.TopFieldFirst,
		FrameRateNumer:        fr.Num,
		FrameRateDenom:        fr.Den,
		PixelAspectRatioNumer: par.Num,
		PixelAspectRatioDenom: par.Den,
		CleanWidth:            base.CleanWidth,
		CleanHeight:           base.CleanHeight,
		LeftOffset:            base.LeftOffset,
		TopOffset:             base.TopOffset,
		LumaOffset:            sr.LumaOffset,
		LumaExcursion:         sr.LumaExcursion,
		ColorDiffOffset:       sr.ColorDiffOffset,
		ColorDiffExcursion:    sr.ColorDiffExcursion,
		ColorPrimaries:        cs.Primaries,
		ColorMatrix:           cs.Matrix,
		TransferFunction:      cs.Transfer,
	}
}

// frameSize overrides the frame dimensions (11.4.3).
func (s *State) frameSize(vp *VideoParameters) error {
	if vlc.ReadBool(s.r) {
		vp.FrameWidth = int(vlc.ReadUint(s.r))
		vp.FrameHeight = int(vlc.ReadUint(s.r))
	}
	return nil
}

// colorDiffSamplingFormat overrides the chroma subsampling scheme
// (11.4.4).
func (s *State) colorDiffSamplingFormat(vp *VideoParameters) error {
	if !vlc.ReadBool(s.r) {
		return nil
	}
	pos := s.pos()
	index := vlc.ReadUint(s.r)
	if index != uint64(tables.Color444) && index != uint64(tables.Color422) && index != uint64(tables.Color420) {
		return newError(KindBadPresetIndex, pos, "unrecognised color_diff_format_index", index, []interface{}{int64(0), int64(1), int64(2)})
	}
	vp.ColorDiffFormatIndex = tables.ColorDifferenceSamplingFormat(index)
	return nil
}

// scanFormat overrides progressive/interlaced source sampling (11.4.5).
func (s *State) scanFormat(vp *VideoParameters) {
	if vlc.ReadBool(s.r) {
		vp.SourceSampling = tables.SourceSamplingMode(vlc.ReadUint(s.r))
	}
}

// frameRate overrides the frame rate, either with explicit numer/denom
// fields or a preset index (11.4.6).
func (s *State) frameRate(vp *VideoParameters) error {
	if !vlc.ReadBool(s.r) {
		return nil
	}
	pos := s.pos()
	index := vlc.ReadUint(s.r)
	if index == 0 {
		vp.FrameRateNumer = int64(vlc.ReadUint(s.r))
		vp.FrameRateDenom = int64(vlc.ReadUint(s.r))
		return nil
	}
	preset, ok := tables.PresetFrameRates[tables.PresetFrameRate(index)]
	if !ok {
		return newError(KindBadPresetIndex, pos, "unrecognised frame rate preset", index, nil)
	}
	vp.FrameRateNumer, vp.FrameRateDenom = preset.Num, preset.Den
	return nil
}

// pixelAspectRatio overrides the pixel aspect ratio, either with
// explicit numer/denom fields or a preset index (11.4.7).
func (s *State) pixelAspectRatio(vp *VideoParameters) error {
	if !vlc.ReadBool(s.r) {
		return nil
	}
	pos := s.pos()
	index := vlc.ReadUint(s.r)
	if index == 0 {
		vp.PixelAspectRatioNumer = int64(vlc.ReadUint(s.r))
		vp.PixelAspectRatioDenom = int64(vlc.ReadUint(s.r))
		return nil
	}
	preset, ok := tables.PresetPixelAspectRatios[tables.PresetPixelAspectRatio(index)]
	if !ok {
		return newError(KindBadPresetIndex, pos, "unrecognised pixel aspect ratio preset", index, nil)
	}
	vp.PixelAspectRatioNumer, vp.PixelAspectRatioDenom = preset.Num, preset.Den
	return nil
}

// cleanArea overrides the clean (non-padding) picture area (11.4.8).
func (s *State) cleanArea(vp *VideoParameters) {
	if vlc.ReadBool(s.r) {
		vp.CleanWidth = int(vlc.ReadUint(s.r))
		vp.CleanHeight = int(vlc.ReadUint(s.r))
		vp.LeftOffset = int(vlc.ReadUint(s.r))
		vp.TopOffset = int(vlc.ReadUint(s.r))
	}
}

// signalRange overrides the luma/colour-difference offset and
// excursion, either with explicit fields or a preset index (11.4.9).
func (s *State) signalRange(vp *VideoParameters) error {
	if !vlc.ReadBool(s.r) {
		return nil
	}
	pos := s.pos()
	index := vlc.ReadUint(s.r)
	if index == 0 {
		vp.LumaOffset = int(vlc.ReadUint(s.r))
		vp.LumaExcursion = int(vlc.ReadUint(s.r))
		vp.ColorDiffOffset = int(vlc.ReadUint(s.r))
		vp.ColorDiffExcursion = int(vlc.ReadUint(s.r))
		return nil
	}
	preset, ok := tables.PresetSignalRanges[tables.PresetSignalRange(index)]
	if !ok {
		return newError(KindBadPresetIndex, pos, "unrecognised signal range preset", index, nil)
	}
	vp.LumaOffset, vp.LumaExcursion = preset.LumaOffset, preset.LumaExcursion
	vp.ColorDiffOffset, vp.ColorDiffExcursion = preset.ColorDiffOffset, preset.ColorDiffExcursion
	return nil
}

// colorSpec overrides the colour specification, via a preset index
// that, when zero, is itself followed by three independently
// overridable sub-presets (11.4.10).
func (s *State) colorSpec(vp *VideoParameters) error {
	if !vlc.ReadBool(s.r) {
		return nil
	}
	pos := s.pos()
	index := vlc.ReadUint(s.r)
	preset, ok := tables.PresetColorSpecsTable[tables.PresetColorSpec(index)]
	if !ok {
		return newError(KindBadPresetIndex, pos, "unrecognised color spec preset", index, nil)
	}
	vp.ColorPrimaries, vp.ColorMatrix, vp.TransferFunction = preset.Primaries, preset.Matrix, preset.Transfer
	if index == 0 {
		if err := s.colorPrimaries(vp); err != nil {
			return err
		}
		if err := s.colorMatrix(vp); err != nil {
			return err
		}
		if err := s.transferFunction(vp); err != nil {
			return err
		}
	}
	return nil
}

func (s *State) colorPrimaries(vp *VideoParameters) error {
	if !vlc.ReadBool(s.r) {
		return nil
	}
	pos := s.pos()
	index := vlc.ReadUint(s.r)
	switch tables.PresetColorPrimaries(index) {
	case tables.PrimariesHDTV, tables.PrimariesSDTV525, tables.PrimariesSDTV625, tables.PrimariesDCinema, tables.PrimariesUHDTV:
		vp.ColorPrimaries = tables.PresetColorPrimaries(index)
		return nil
	default:
		return newError(KindBadPresetIndex, pos, "unrecognised color primaries preset", index, nil)
	}
}

func (s *State) colorMatrix(vp *VideoParameters) error {
	if !vlc.ReadBool(s.r) {
		return nil
	}
	pos := s.pos()
	index := vlc.ReadUint(s.r)
	switch tables.PresetColorMatrix(index) {
	case tables.MatrixHDTV, tables.MatrixSDTV, tables.MatrixReversible, tables.MatrixRGB, tables.MatrixUHDTV:
		vp.ColorMatrix = tables.PresetColorMatrix(index)
		return nil
	default:
		return newError(KindBadPresetIndex, pos, "unrecognised color matrix preset", index, nil)
	}
}

func (s *State) transferFunction(vp *VideoParameters) error {
	if !vlc.ReadBool(s.r) {
		return nil
	}
	pos := s.pos()
	index := vlc.ReadUint(s.r)
	switch tables.PresetTransferFunction(index) {
	case tables.TransferTVGamma, tables.TransferExtendedGamut, tables.TransferLinear, tables.TransferDCinema, tables.TransferPerceptualQuality, tables.TransferHybridLogGamma:
		vp.TransferFunction = tables.PresetTransferFunction(index)
		return nil
	default:
		return newError(KindBadPresetIndex, pos, "unrecognised transfer function preset", index, nil)
	}
}

// setCodingParameters derives the per-component picture dimensions and
// bit depths from the resolved video parameters and coding mode
// (11.6.1).
func (s *State) setCodingParameters(vp VideoParameters, mode tables.PictureCodingMode) {
	s.lumaWidth = vp.FrameWidth
	s.lumaHeight = vp.FrameHeight
	s.colorDiffWidth = vp.FrameWidth
	s.colorDiffHeight = vp.FrameHeight

	switch vp.ColorDiffFormatIndex {
	case tables.Color422:
		s.colorDiffWidth /= 2
	case tables.Color420:
		s.colorDiffWidth /= 2
		s.colorDiffHeight /= 2
	}

	if mode == tables.PicturesAreFields {
		s.lumaHeight /= 2
		s.colorDiffHeight /= 2
	}

	s.lumaDepth = vlc.IntLog2(int64(vp.LumaExcursion) + 1)
	s.colorDiffDepth = vlc.IntLog2(int64(vp.ColorDiffExcursion) + 1)
}
