package tables

// LiftingStage is one step of a lifting-filter synthesis/analysis
// operation.
type LiftingStage struct {
	LiftType LiftingType
	S        int
	L        int
	D        int
	Taps     []int
}

// Wavelet is the complete definition of a lifting filter: an ordered
// list of stages plus the final bit-shift applied after synthesis.
type Wavelet struct {
	FilterBitShift int
	Stages         []LiftingStage
}

// LiftingFilters maps each WaveletIndex to its Wavelet definition,
// transcribed from the VC-2 reference's LIFTING_FILTERS table (15.4.4.3,
// Tables 15.1-15.6).
var LiftingFilters = map[WaveletIndex]Wavelet{
	DeslauriersDubuc9_7: {
		FilterBitShift: 1,
		Stages: []LiftingStage{
			{LiftType: EvenSubtractOdd, S: 2, L: 2, D: 0, Taps: []int{1, 1}},
			{LiftType: OddAddEven, S: 4, L: 4, D: -1, Taps: []int{-1, 9, 9, -1}},
		},
	},
	LeGall5_3: {
		FilterBitShift: 1,
		Stages: []LiftingStage{
			{LiftType: EvenSubtractOdd, S: 2, L: 2, D: 0, Taps: []int{1, 1}},
			{LiftType: OddAddEven, S: 1, L: 2, D: 0, Taps: []int{1, 1}},
		},
	},
	DeslauriersDubuc13_7: {
		FilterBitShift: 1,
		Stages: []LiftingStage{
			{LiftType: EvenSubtractOdd, S: 5, L: 4, D: -1, Taps: []int{-1, 9, 9, -1}},
			{LiftType: OddAddEven, S: 4, L: 4, D: -1, Taps: []int{-1, 9, 9, -1}},
		},
	},
	HaarNoShift: {
		FilterBitShift: 0,
		Stages: []LiftingStage{
			{LiftType: EvenSubtractOdd, S: 1, L: 1, D: 1, Taps: []int{1}},
			{LiftType: OddAddEven, S: 0, L: 1, D: 0, Taps: []int{1}},
		},
	},
	HaarWithShift: {
		FilterBitShift: 1,
		Stages: []LiftingStage{
			{LiftType: EvenSubtractOdd, S: 1, L: 1, D: 1, Taps: []int{1}},
			{LiftType: OddAddEven, S: 0, L: 1, D: 0, Taps: []int{1}},
		},
	},
	Fidelity: {
		FilterBitShift: 0,
		Stages: []LiftingStage{
			{LiftType: OddAddEven, S: 8, L: 8, D: -3, Taps: []int{-2, -10, -25, 81, 81, -25, 10, -2}},
			{LiftType: EvenSubtractOdd, S: 8, L: 8, D: -3, Taps: []int{-8, 21, -46, 161, 161, -46, 21, -8}},
		},
	},
	Daubechies9_7: {
		FilterBitShift: 1,
		Stages: []LiftingStage{
			{LiftType: EvenSubtractOdd, S: 12, L: 2, D: 0, Taps: []int{1817, 1817}},
			{LiftType: OddSubtractEven, S: 12, L: 2, D: 0, Taps: []int{3616, 3616}},
			{LiftType: EvenAddOdd, S: 12, L: 2, D: 0, Taps: []int{217, 217}},
			{LiftType: OddAddEven, S: 12, L: 2, D: 0, Taps: []int{6497, 6497}},
		},
	},
}

// AnalysisWavelet derives the analysis (forward transform) counterpart
// of a synthesis Wavelet by reversing stage order and inverting each
// stage's add/subtract sense, per the round-trip property in
// SPEC_FULL.md §8.
func AnalysisWavelet(w Wavelet) Wavelet {
	out := Wavelet{FilterBitShift: w.FilterBitShift}
	for i := len(w.Stages) - 1; i >= 0; i-- {
		s := w.Stages[i]
		out.Stages = append(out.Stages, LiftingStage{
			LiftType: invertLiftType(s.LiftType),
			S:        s.S,
			L:        s.L,
			D:        s.D,
			Taps:     s.Taps,
		})
	}
	return out
}

func invertLiftType(t LiftingType) LiftingType {
	switch t {
	case EvenAddOdd:
		return EvenSubtractOdd
	case EvenSubtractOdd:
		return EvenAddOdd
	case OddAddEven:
		return OddSubtractEven
	case OddSubtractEven:
		return OddAddEven
	default:
		panic("tables: unknown lift type")
	}
}
