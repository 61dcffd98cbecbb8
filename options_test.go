package geom

import "testing"

func TestDefaultOptions(t *testing.T) {
	o := defaultOptions()
	if o.tol != TolMM {
		t.Errorf("default tol = %v, want %v", o.tol, TolMM)
	}
	if o.minSegmentLength != MinSegmentLength {
		t.Errorf("default minSegmentLength = %v, want %v", o.minSegmentLength, MinSegmentLength)
	}
	if !o.strict {
		t.Error("default strict = false, want true")
	}
}

func TestApplyOptions(t *testing.T) {
	o := applyOptions([]Option{
		WithTolerance(1e-4),
		WithMinSegmentLength(0.01),
		WithNonStrict(),
	})
	if o.tol != 1e-4 {
		t.Errorf("tol = %v, want 1e-4", o.tol)
	}
	if o.minSegmentLength != 0.01 {
		t.Errorf("minSegmentLength = %v, want 0.01", o.minSegmentLength)
	}
	if o.strict {
		t.Error("strict = true after WithNonStrict")
	}
}

func TestApplyOptionsLastWins(t *testing.T) {
	o := applyOptions([]Option{
		WithTolerance(1e-3),
		WithTolerance(1e-5),
	})
	if o.tol != 1e-5 {
		t.Errorf("tol = %v, want last value 1e-5", o.tol)
	}
}

func TestApplyOptionsEmpty(t *testing.T) {
	if got, want := applyOptions(nil), defaultOptions(); got != want {
		t.Errorf("applyOptions(nil) = %+v, want %+v", got, want)
	}
}
