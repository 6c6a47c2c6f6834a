package stats

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	shake "github.com/LukaButskhrikidze/proteinshake"
)

func TestSummarize(t *testing.T) {
	s := Summarize([]float64{1, 2, 3, 4})
	if s.N != 4 {
		t.Errorf("n: got %d, want 4", s.N)
	}
	if math.Abs(s.Mean-2.5) > 1e-12 {
		t.Errorf("mean: got %f, want 2.5", s.Mean)
	}
	if s.Min != 1 || s.Max != 4 {
		t.Errorf("min/max: got %f/%f", s.Min, s.Max)
	}
	if z := Summarize(nil); z.N != 0 {
		t.Errorf("empty sample should give the zero summary, got %+v", z)
	}
}

func TestExtractors(t *testing.T) {
	ps := []*shake.Protein{
		{ID: "a", Sequence: "GAV", Affinity: 7.5},
		{ID: "b", Sequence: "GA"},
		{ID: "c"}, //no sequence, no affinity
	}
	lens := SequenceLengths(ps)
	if len(lens) != 2 || lens[0] != 3 || lens[1] != 2 {
		t.Errorf("SequenceLengths gave %v", lens)
	}
	affs := Affinities(ps)
	if len(affs) != 1 || affs[0] != 7.5 {
		t.Errorf("Affinities gave %v", affs)
	}
}

func TestHistogram(t *testing.T) {
	file := filepath.Join(t.TempDir(), "lengths.png")
	vals := []float64{1, 2, 2, 3, 3, 3, 4, 4, 5}
	if err := Histogram(vals, 5, "sequence lengths", file); err != nil {
		t.Fatal(err)
	}
	info, err := os.Stat(file)
	if err != nil {
		t.Fatal(err)
	}
	if info.Size() == 0 {
		t.Error("histogram file is empty")
	}
	if err := Histogram(nil, 5, "empty", file); err == nil {
		t.Error("expected an error for an empty sample")
	}
}
