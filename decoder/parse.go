package decoder

import (
	"github.com/pkg/errors"

	"github.com/bbc/vc2-conformance/tables"
	"github.com/bbc/vc2-conformance/vlc"
)

type parseInfo struct {
	magicWord           uint64
	parseCode           tables.ParseCode
	nextParseOffset     uint64
	previousParseOffset uint64
}

// readParseInfo reads a 13-byte parse-info header, (10.5.1).
func (s *State) readParseInfo() (parseInfo, error) {
	pos := s.pos()
	magic := vlc.ReadUintLit(s.r, 4)
	if magic != tables.ParseInfoPrefix {
		return parseInfo{}, newError(KindBadMagic, pos, "parse_info magic word mismatch", magic, []interface{}{int64(tables.ParseInfoPrefix)})
	}
	code := tables.ParseCode(vlc.ReadUintLit(s.r, 1))
	next := vlc.ReadUintLit(s.r, 4)
	prev := vlc.ReadUintLit(s.r, 4)

	s.cfg.Logger.Debug("parse_info", "parse_code", code, "next_parse_offset", next, "previous_parse_offset", prev)

	s.parseCode = code
	s.nextParseOffset = next
	s.previousParseOffset = prev

	return parseInfo{magicWord: magic, parseCode: code, nextParseOffset: next, previousParseOffset: prev}, nil
}

// skipDataUnit discards an auxiliary_data or padding_data block,
// (10.4.4)/(10.4.5).
func (s *State) skipDataUnit(kind string) error {
	vlc.ByteAlign(s.r)
	n := int64(s.nextParseOffset) - tables.ParseInfoHeaderBytes
	if n < 0 {
		n = 0
	}
	if s.cfg.RecordSkippedData {
		s.cfg.Logger.Info("skipped data unit", "kind", kind, "bytes", n)
	}
	for i := int64(0); i < n; i++ {
		vlc.ReadUintLit(s.r, 1)
	}
	return nil
}

// ParseOneSequence decodes a single VC-2 sequence (from its initial
// parse_info through end_of_sequence) from s, invoking the configured
// picture callback for each decoded picture.
func (s *State) ParseOneSequence() error {
	info, err := s.readParseInfo()
	if err != nil {
		return err
	}
	for info.parseCode != tables.ParseCodeEndOfSequence {
		if err := s.assertParseCodeInSequence(info.parseCode); err != nil && s.cfg.Strict {
			return err
		}

		switch {
		case info.parseCode == tables.ParseCodeSequenceHeader:
			if err := s.parseSequenceHeader(); err != nil {
				return err
			}
		case info.parseCode.IsAuxiliaryData():
			if err := s.skipDataUnit("auxiliary_data"); err != nil {
				return err
			}
		case info.parseCode == tables.ParseCodePaddingData:
			if err := s.skipDataUnit("padding_data"); err != nil {
				return err
			}
		case info.parseCode.IsPictureOrFragment() && info.parseCode.IsFragment():
			if err := s.parseFragment(); err != nil {
				return err
			}
		case info.parseCode.IsPictureOrFragment():
			if err := s.parsePicture(); err != nil {
				return err
			}
		default:
			return newError(KindBadParseCode, s.pos(), "unrecognised parse code", info.parseCode, nil)
		}

		info, err = s.readParseInfo()
		if err != nil {
			return err
		}
	}

	// end_of_sequence is the grammar's "$", not a symbol of its own: it
	// is checked by asking whether the matcher has reached acceptance.
	return s.assertParseCodeSequenceEnded()
}

// ParseAllSequences decodes every concatenated sequence present in s's
// stream, stopping cleanly once the underlying source is exhausted.
func (s *State) ParseAllSequences() error {
	for first := true; ; first = false {
		startPastEOF := s.r.BitsPastEOF()
		if err := s.ParseOneSequence(); err != nil {
			// A parse_info whose magic word lies wholly past the end of
			// the source means the previous sequence was the last one.
			if derr, ok := err.(*Error); ok && !first && derr.Kind == KindBadMagic &&
				s.r.BitsPastEOF()-startPastEOF == 32 {
				return nil
			}
			return errors.Wrap(err, "decoder: parsing sequence")
		}
		if s.r.BitsPastEOF() > 0 {
			return nil
		}
		// Only the sequencing grammar restarts at each sequence
		// boundary (10.4.1): the cross-sequence identity check of
		// base_video_format and video parameters in parseSequenceHeader
		// is deliberately NOT reset here.
		s.sequenceMatcher = nil
	}
}
