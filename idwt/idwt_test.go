package idwt

import (
	"math/rand"
	"testing"

	"github.com/bbc/vc2-conformance/tables"
	"gonum.org/v1/gonum/stat"
)

func makePicture(seed int64, width, height int) Array2D {
	r := rand.New(rand.NewSource(seed))
	a := NewArray2D(width, height)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			a[y][x] = int64(r.Intn(201) - 100)
		}
	}
	return a
}

// TestHaarNoShiftIDWTIdentity exercises the end-to-end DWT/IDWT
// round-trip for an 8x8 signed picture with wavelet_index =
// wavelet_index_ho = haar_no_shift, dwt_depth_ho = 2, dwt_depth = 1.
func TestHaarNoShiftIDWTIdentity(t *testing.T) {
	const width, height = 8, 8
	waveletHO := tables.LiftingFilters[tables.HaarNoShift]
	wavelet := tables.LiftingFilters[tables.HaarNoShift]
	const dwtDepthHO, dwtDepth = 2, 1

	original := makePicture(1, width, height)

	dc, coeffs := DWT(original, waveletHO, wavelet, dwtDepthHO, dwtDepth)
	reconstructed := IDWT(dc, coeffs, waveletHO, wavelet, dwtDepthHO, dwtDepth)

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			if reconstructed[y][x] != original[y][x] {
				t.Fatalf("pixel (%d,%d): got %d, want %d", x, y, reconstructed[y][x], original[y][x])
			}
		}
	}
}

// TestRoundTripAllWavelets checks the DWT/IDWT round trip is exact for
// every defined wavelet at a fixed depth, for several random pictures.
func TestRoundTripAllWavelets(t *testing.T) {
	const width, height = 16, 16
	for idx, w := range tables.LiftingFilters {
		for seed := int64(0); seed < 3; seed++ {
			original := makePicture(int64(idx)*10+seed, width, height)
			dc, coeffs := DWT(original, w, w, 0, 1)
			reconstructed := IDWT(dc, coeffs, w, w, 0, 1)
			for y := 0; y < height; y++ {
				for x := 0; x < width; x++ {
					if reconstructed[y][x] != original[y][x] {
						t.Fatalf("wavelet %v seed %d: pixel (%d,%d): got %d, want %d",
							idx, seed, x, y, reconstructed[y][x], original[y][x])
					}
				}
			}
		}
	}
}

// TestRoundTripHorizontalOnly checks the round trip holds when only
// horizontal-only levels are used (dwt_depth = 0).
func TestRoundTripHorizontalOnly(t *testing.T) {
	const width, height = 16, 4
	w := tables.LiftingFilters[tables.LeGall5_3]
	original := makePicture(42, width, height)
	dc, coeffs := DWT(original, w, w, 2, 0)
	reconstructed := IDWT(dc, coeffs, w, w, 2, 0)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			if reconstructed[y][x] != original[y][x] {
				t.Fatalf("pixel (%d,%d): got %d, want %d", x, y, reconstructed[y][x], original[y][x])
			}
		}
	}
}

// TestFinaliseClipsAndOffsets checks clip+offset behaviour at the
// boundaries of an 8-bit signed range.
func TestFinaliseClipsAndOffsets(t *testing.T) {
	a := Array2D{{-200, -128, 0, 127, 200}}
	out := Finalise(a, 8)
	want := []uint32{0, 0, 128, 255, 255}
	for i, v := range out[0] {
		if v != want[i] {
			t.Errorf("Finalise()[0][%d] = %d, want %d", i, v, want[i])
		}
	}
}

// TestRemovePadCrops checks that RemovePad discards trailing padding
// rows and columns introduced to round dimensions up to a transform
// multiple.
func TestRemovePadCrops(t *testing.T) {
	a := NewArray2D(8, 8)
	for y := range a {
		for x := range a[y] {
			a[y][x] = int64(y*8 + x)
		}
	}
	cropped := RemovePad(a, 5, 5)
	if cropped.Width() != 5 || cropped.Height() != 5 {
		t.Fatalf("RemovePad size = %dx%d, want 5x5", cropped.Width(), cropped.Height())
	}
	if cropped[4][4] != a[4][4] {
		t.Errorf("RemovePad()[4][4] = %d, want %d", cropped[4][4], a[4][4])
	}
}

// TestMeanMagnitudePreservedByHaarLL is a light property check using
// gonum/stat: for the shift-free Haar wavelet, the LL band's mean value
// over a flat-ish signal should track the original signal's mean
// (lifting with no final shift approximately preserves DC energy).
func TestMeanMagnitudePreservedByHaarLL(t *testing.T) {
	const width, height = 16, 16
	w := tables.LiftingFilters[tables.HaarNoShift]
	original := makePicture(7, width, height)

	var flat []float64
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			flat = append(flat, float64(original[y][x]))
		}
	}
	originalMean := stat.Mean(flat, nil)

	ll, _ := DWT(original, w, w, 0, 1)
	var llFlat []float64
	for y := range ll {
		for x := range ll[y] {
			llFlat = append(llFlat, float64(ll[y][x]))
		}
	}
	llMean := stat.Mean(llFlat, nil)

	if diff := originalMean - llMean; diff > 4 || diff < -4 {
		t.Errorf("LL band mean %v diverges too far from original mean %v", llMean, originalMean)
	}
}
