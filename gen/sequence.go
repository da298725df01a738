package gen

import (
	"github.com/bbc/vc2-conformance/tables"
	"github.com/bbc/vc2-conformance/vlc"
)

// SequenceHeaderSpec names the fields a generated sequence_header
// declares. It has no source-parameter fields: WriteSequenceHeader
// declares no overrides at all (11.4.2's base video
// format's own preset values apply unmodified) — the shape a generator
// needs to drive every decoder/sequence_header.go code path that
// matters for conformance checking: base format validation,
// cross-sequence identity, and coding-mode derived dimensions.
type SequenceHeaderSpec struct {
	MajorVersion, MinorVersion uint64
	Profile                    tables.Profile
	Level                      int
	BaseVideoFormat            tables.BaseVideoFormat
	PictureCodingMode          tables.PictureCodingMode
}

// WriteSequenceHeader writes a sequence_header data unit (11.1)
// declaring no source-parameter overrides: the decoded video parameters
// are exactly the named base_video_format's preset row.
func (g *Generator) WriteSequenceHeader(spec SequenceHeaderSpec, next AutoUint32) {
	g.writeParseInfo(tables.ParseCodeSequenceHeader, next, Auto())

	vlc.WriteUint(g.w, spec.MajorVersion)
	vlc.WriteUint(g.w, spec.MinorVersion)
	vlc.WriteUint(g.w, uint64(spec.Profile))
	vlc.WriteUint(g.w, uint64(spec.Level))

	vlc.WriteUint(g.w, uint64(spec.BaseVideoFormat))

	// source_parameters (11.4): every custom_* flag false, so the
	// base_video_format's own preset values stand.
	vlc.WriteBool(g.w, false) // custom_dimensions_flag
	vlc.WriteBool(g.w, false) // custom_color_diff_format_flag
	vlc.WriteBool(g.w, false) // custom_scan_format_flag
	vlc.WriteBool(g.w, false) // custom_frame_rate_flag
	vlc.WriteBool(g.w, false) // custom_pixel_aspect_ratio_flag
	vlc.WriteBool(g.w, false) // custom_clean_area_flag
	vlc.WriteBool(g.w, false) // custom_signal_range_flag
	vlc.WriteBool(g.w, false) // custom_color_spec_flag

	vlc.WriteUint(g.w, uint64(spec.PictureCodingMode))
}
