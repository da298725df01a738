package decoder_test

import (
	"bytes"
	"testing"

	"github.com/bbc/vc2-conformance/bits"
	"github.com/bbc/vc2-conformance/config"
	"github.com/bbc/vc2-conformance/decoder"
	"github.com/bbc/vc2-conformance/gen"
	"github.com/bbc/vc2-conformance/tables"
)

func parse(t *testing.T, stream []byte) error {
	t.Helper()
	cfg := config.Default()
	s := decoder.New(bits.NewReader(bytes.NewReader(stream)), cfg)
	return s.ParseOneSequence()
}

func TestBadMagicWord(t *testing.T) {
	stream := []byte{0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0}
	err := parse(t, stream)
	if err == nil {
		t.Fatal("expected an error for a corrupt parse_info magic word")
	}
	derr, ok := err.(*decoder.Error)
	if !ok {
		t.Fatalf("expected *decoder.Error, got %T", err)
	}
	if derr.Kind != decoder.KindBadMagic {
		t.Errorf("got Kind %v, want %v", derr.Kind, decoder.KindBadMagic)
	}
}

func TestUnrecognisedBaseVideoFormatCaught(t *testing.T) {
	g := gen.New()
	g.WriteSequenceHeader(gen.SequenceHeaderSpec{
		MajorVersion:      2,
		MinorVersion:      0,
		Profile:           tables.ProfileHighQuality,
		Level:             0,
		BaseVideoFormat:   tables.BaseVideoFormat(9999),
		PictureCodingMode: tables.PicturesAreFrames,
	}, gen.Auto())
	g.WriteEndOfSequence(gen.Auto())

	err := parse(t, g.Bytes())
	if err == nil {
		t.Fatal("expected an error for an unrecognised base_video_format")
	}
	derr, ok := err.(*decoder.Error)
	if !ok {
		t.Fatalf("expected *decoder.Error, got %T", err)
	}
	if derr.Kind != decoder.KindBadBaseVideoFormat {
		t.Errorf("got Kind %v, want %v", derr.Kind, decoder.KindBadBaseVideoFormat)
	}
}

func TestSequenceHeaderEndOfSequence(t *testing.T) {
	g := gen.New()
	g.WriteSequenceHeader(gen.SequenceHeaderSpec{
		MajorVersion:      2,
		MinorVersion:      0,
		Profile:           tables.ProfileHighQuality,
		Level:             0,
		BaseVideoFormat:   tables.QCIF,
		PictureCodingMode: tables.PicturesAreFrames,
	}, gen.Auto())
	g.WriteEndOfSequence(gen.Auto())

	if err := parse(t, g.Bytes()); err != nil {
		t.Fatalf("ParseOneSequence: %v", err)
	}
}
