package tables

import "testing"

func TestParseCodeClassification(t *testing.T) {
	if !ParseCodeLowDelayPictureFragment.IsFragment() {
		t.Error("low delay picture fragment should classify as fragment")
	}
	if !ParseCodeLowDelayPicture.IsPictureOrFragment() {
		t.Error("low delay picture should classify as picture-or-fragment")
	}
	if ParseCodeLowDelayPicture.IsFragment() {
		t.Error("low delay picture (non-fragment) should not classify as fragment")
	}
	if !ParseCodeAuxiliaryData.IsAuxiliaryData() {
		t.Error("auxiliary data code should classify as auxiliary data")
	}
	if !ParseCodeLowDelayPicture.UsesDCPrediction() {
		t.Error("low delay picture should use DC prediction")
	}
	if ParseCodeHighQualityPicture.UsesDCPrediction() {
		t.Error("high quality picture should not use DC prediction")
	}
}

func TestAnalysisWaveletInvertsLeGall(t *testing.T) {
	synth := LiftingFilters[LeGall5_3]
	analysis := AnalysisWavelet(synth)
	if len(analysis.Stages) != len(synth.Stages) {
		t.Fatalf("expected %d stages, got %d", len(synth.Stages), len(analysis.Stages))
	}
	if analysis.Stages[0].LiftType != invertLiftType(synth.Stages[len(synth.Stages)-1].LiftType) {
		t.Errorf("expected first analysis stage to invert the last synthesis stage")
	}
}

func TestDefaultQuantMatrixLookup(t *testing.T) {
	m, ok := LookupDefaultQuantMatrix(HaarNoShift, HaarNoShift, 0, 1)
	if !ok {
		t.Fatal("expected a default matrix for Haar depth 1")
	}
	if m[0][OrientLL] != 0 {
		t.Errorf("expected LL at level 0 to be 0, got %d", m[0][OrientLL])
	}
	if _, ok := LookupDefaultQuantMatrix(Daubechies9_7, Daubechies9_7, 0, 4); ok {
		t.Fatal("expected no default matrix for an uncovered combination")
	}
}

func TestLevelConstraintsLoaded(t *testing.T) {
	if len(LevelConstraints) == 0 {
		t.Fatal("expected the embedded level constraint table to be non-empty")
	}
}
