package gen

import (
	"bytes"
	"math/rand"
	"testing"

	"github.com/bbc/vc2-conformance/bits"
	"github.com/bbc/vc2-conformance/config"
	"github.com/bbc/vc2-conformance/decoder"
	"github.com/bbc/vc2-conformance/idwt"
	"github.com/bbc/vc2-conformance/tables"
)

// randomPicture fills a width*height signed picture with values within
// the range Finalise(depth) will accept without clipping, so a lossless
// wavelet round-trip reproduces the input exactly.
func randomPicture(r *rand.Rand, width, height, depth int) idwt.Array2D {
	lo := -(int64(1) << uint(depth-1))
	hi := (int64(1) << uint(depth-1)) - 1
	a := idwt.NewArray2D(width, height)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			a[y][x] = lo + int64(r.Int63n(hi-lo+1))
		}
	}
	return a
}

func transformComponent(picture idwt.Array2D) ComponentCoeffs {
	wavelet := tables.LiftingFilters[tables.HaarNoShift]
	dc, coeffs := idwt.DWT(picture, wavelet, wavelet, 0, 1)
	return ComponentCoeffs{DC: dc, Levels: coeffs}
}

// TestHighQualityRoundTrip builds a single-picture sequence with the
// generator and confirms the decoder reconstructs exactly the samples
// that were encoded.
func TestHighQualityRoundTrip(t *testing.T) {
	const lumaWidth, lumaHeight = 176, 144
	const colorDiffWidth, colorDiffHeight = 88, 72
	const depth = 8

	r := rand.New(rand.NewSource(1))
	yPic := randomPicture(r, lumaWidth, lumaHeight, depth)
	c1Pic := randomPicture(r, colorDiffWidth, colorDiffHeight, depth)
	c2Pic := randomPicture(r, colorDiffWidth, colorDiffHeight, depth)

	data := PictureData{
		Y:  transformComponent(yPic),
		C1: transformComponent(c1Pic),
		C2: transformComponent(c2Pic),
	}

	matrix, ok := tables.LookupDefaultQuantMatrix(tables.HaarNoShift, tables.HaarNoShift, 0, 1)
	if !ok {
		t.Fatal("expected a default quantisation matrix for Haar depth 1")
	}

	layout := PictureLayout{
		MajorVersion:  2,
		WaveletIndex:  tables.HaarNoShift,
		WaveletIndexHO: tables.HaarNoShift,
		DWTDepth:      1,
		DWTDepthHO:    0,
		SlicesX:       2,
		SlicesY:       2,
		// Each 2x2 slice carries up to about 14 KB per component;
		// the one-byte length prefix counts in units of 64 bytes.
		SliceSizeScaler: 64,
		QuantMatrix:   matrix,
	}

	g := New()
	g.WriteSequenceHeader(SequenceHeaderSpec{
		MajorVersion:      2,
		MinorVersion:      0,
		Profile:           tables.ProfileHighQuality,
		Level:             0,
		BaseVideoFormat:   tables.QCIF,
		PictureCodingMode: tables.PicturesAreFrames,
	}, Auto())
	if err := g.WritePicture(tables.ParseCodeHighQualityPicture, Auto(), data, layout, 0, nil, Auto()); err != nil {
		t.Fatalf("WritePicture: %v", err)
	}
	g.WriteEndOfSequence(Auto())

	stream := g.Bytes()

	var gotY, gotC1, gotC2 [][]uint32
	cfg := config.Default()
	cfg.OnPicture = func(pictureNumber uint32, y, c1, c2 [][]uint32) {
		gotY, gotC1, gotC2 = y, c1, c2
	}

	s := decoder.New(bits.NewReader(bytes.NewReader(stream)), cfg)
	if err := s.ParseOneSequence(); err != nil {
		t.Fatalf("ParseOneSequence: %v", err)
	}

	checkComponent := func(name string, want idwt.Array2D, got [][]uint32) {
		if len(got) != len(want) {
			t.Fatalf("%s: got %d rows, want %d", name, len(got), len(want))
		}
		offset := int64(1) << uint(depth-1)
		for y := range want {
			if len(got[y]) != len(want[y]) {
				t.Fatalf("%s row %d: got %d columns, want %d", name, y, len(got[y]), len(want[y]))
			}
			for x := range want[y] {
				if uint32(want[y][x]+offset) != got[y][x] {
					t.Fatalf("%s pixel (%d,%d): got %d, want %d", name, x, y, got[y][x], want[y][x]+offset)
				}
			}
		}
	}

	checkComponent("Y", yPic, gotY)
	checkComponent("C1", c1Pic, gotC1)
	checkComponent("C2", c2Pic, gotC2)
}
