//Package stats summarizes parsed datasets: sample statistics and
//histogram plots of sequence lengths and binding affinities, for a quick
//look at what an ingestion run actually produced.
package stats

import (
	"fmt"

	shake "github.com/LukaButskhrikidze/proteinshake"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

//Summary holds the sample statistics of one observable.
type Summary struct {
	N    int
	Mean float64
	Std  float64
	Min  float64
	Max  float64
}

func (s Summary) String() string {
	return fmt.Sprintf("n=%d mean=%.3f std=%.3f min=%.3f max=%.3f", s.N, s.Mean, s.Std, s.Min, s.Max)
}

//Summarize computes the sample statistics of vals. An empty sample
//returns the zero Summary.
func Summarize(vals []float64) Summary {
	if len(vals) == 0 {
		return Summary{}
	}
	return Summary{
		N:    len(vals),
		Mean: stat.Mean(vals, nil),
		Std:  stat.StdDev(vals, nil),
		Min:  floats.Min(vals),
		Max:  floats.Max(vals),
	}
}

//SequenceLengths extracts the sequence length of every protein that
//carries a sequence.
func SequenceLengths(ps []*shake.Protein) []float64 {
	var ret []float64
	for _, p := range ps {
		if len(p.Sequence) > 0 {
			ret = append(ret, float64(len(p.Sequence)))
		}
	}
	return ret
}

//Affinities extracts the binding affinity of every protein the metadata
//join annotated. Unjoined proteins (zero affinity) are skipped.
func Affinities(ps []*shake.Protein) []float64 {
	var ret []float64
	for _, p := range ps {
		if p.Affinity != 0 {
			ret = append(ret, p.Affinity)
		}
	}
	return ret
}

//Histogram plots vals as a histogram with the given number of bins and
//writes it to file; the format follows the extension (.png, .svg, .pdf).
func Histogram(vals []float64, bins int, title, file string) error {
	if len(vals) == 0 {
		return fmt.Errorf("Histogram: empty sample")
	}
	p := plot.New()
	p.Title.Text = title
	p.Y.Label.Text = "count"
	h, err := plotter.NewHist(plotter.Values(vals), bins)
	if err != nil {
		return fmt.Errorf("Histogram: %v", err)
	}
	p.Add(h)
	return p.Save(5*vg.Inch, 5*vg.Inch, file)
}
