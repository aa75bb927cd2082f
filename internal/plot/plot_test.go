package plot

import (
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/kyle-brindley/chaos/internal/study"
)

func computeStudy(t *testing.T) *study.Result {
	t.Helper()
	cfg := study.DefaultConfig()
	cfg.MaxIteration = 300
	res, err := study.Run([]float64{0.25, 0.5}, []float64{2.5, 3.3, 3.9}, cfg)
	if err != nil {
		t.Fatalf("study failed: %v", err)
	}
	return res
}

func TestBifurcationSeries(t *testing.T) {
	res := computeStudy(t)

	// r=2.5 converges to a fixed point: one tail value.
	if got := BifurcationSeries(res, 0, 8); len(got) != 1 {
		t.Errorf("fixed point series length = %d, want 1", len(got))
	}
	// r=3.3 settles into a 2-cycle: two tail values.
	if got := BifurcationSeries(res, 1, 8); len(got) != 2 {
		t.Errorf("2-cycle series length = %d, want 2", len(got))
	}
	// r=3.9 is chaotic: no period, subsampled to the requested count.
	if !res.Periods[2].Found {
		if got := BifurcationSeries(res, 2, 8); len(got) != 8 {
			t.Errorf("subsample length = %d, want 8", len(got))
		}
		full := BifurcationSeries(res, 2, 0)
		if len(full) != res.Steps[2] {
			t.Errorf("full series length = %d, want %d", len(full), res.Steps[2])
		}
	}
}

func TestBifurcationSeriesIsDeterministic(t *testing.T) {
	res := computeStudy(t)
	a := BifurcationSeries(res, 2, 8)
	b := BifurcationSeries(res, 2, 8)
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("subsample differs at %d: %v vs %v", i, a[i], b[i])
		}
	}
}

func TestSaveCurvesPNG(t *testing.T) {
	res := computeStudy(t)
	path := filepath.Join(t.TempDir(), "curves.png")

	if err := SaveCurves(path, res); err != nil {
		t.Fatalf("save failed: %v", err)
	}
	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("stat failed: %v", err)
	}
	if info.Size() == 0 {
		t.Error("wrote empty PNG")
	}
}

func TestSaveBifurcationPNG(t *testing.T) {
	res := computeStudy(t)
	path := filepath.Join(t.TempDir(), "bifurcation.png")

	if err := SaveBifurcation(path, res, DefaultOptions()); err != nil {
		t.Fatalf("save failed: %v", err)
	}
	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("stat failed: %v", err)
	}
	if info.Size() == 0 {
		t.Error("wrote empty PNG")
	}
}

func TestCurvesASCII(t *testing.T) {
	res := computeStudy(t)
	out := CurvesASCII(res, 60, 10)
	if !strings.Contains(out, "r=2.5, period=1") {
		t.Errorf("missing fixed-point caption in output:\n%s", out)
	}
	if !strings.Contains(out, "r=3.3, period=2") {
		t.Errorf("missing 2-cycle caption in output:\n%s", out)
	}
}

func TestBifurcationASCII(t *testing.T) {
	res := computeStudy(t)
	out := BifurcationASCII(res, 60, 16, DefaultOptions())
	if !strings.Contains(out, "·") {
		t.Errorf("expected plotted points in output:\n%s", out)
	}
	if BifurcationASCII(res, 0, 16, DefaultOptions()) != "" {
		t.Error("zero width should produce empty output")
	}
}

func TestBifurcationASCIISkipsNonFiniteValues(t *testing.T) {
	// From x_0 = 1e200 the logistic map overflows to -Inf in one step,
	// which is also the negative stop; the -Inf entry sits inside the
	// valid prefix and must be dropped from the canvas, not indexed.
	res, err := study.Run([]float64{1e200}, []float64{2.9}, study.DefaultConfig())
	if err != nil {
		t.Fatalf("study failed: %v", err)
	}
	if res.Steps[0] != 2 || !math.IsInf(res.Values[0][0][1], -1) {
		t.Fatalf("expected two-step overflow run, got steps=%d values=%v", res.Steps[0], res.Values[0][0][:2])
	}

	out := BifurcationASCII(res, 40, 10, DefaultOptions())
	if !strings.Contains(out, "·") {
		t.Errorf("finite seed value should still be plotted:\n%s", out)
	}
}

func TestWritePeriods(t *testing.T) {
	res := computeStudy(t)
	var sb strings.Builder
	if err := WritePeriods(&sb, res); err != nil {
		t.Fatalf("write failed: %v", err)
	}
	out := sb.String()
	if !strings.Contains(out, "R") || !strings.Contains(out, "PERIOD") {
		t.Errorf("missing header:\n%s", out)
	}
	if !strings.Contains(out, "2.5") {
		t.Errorf("missing rows:\n%s", out)
	}
}
