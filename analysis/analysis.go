// Package analysis measures how an L-system grows from one generation to the
// next and renders the result as an HTML chart.
package analysis

import (
	"fmt"
	"io"
	"net/http"
	"sort"
	"strconv"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"

	lsystem "github.com/viktordanov/lgen"
)

// Profile holds per-generation statistics. Index i of every slice refers to
// generation i.
type Profile struct {
	Name       string
	Lengths    []int
	Ratios     []float64
	Histograms []map[string]int
}

// Analyse samples the first generations of g. Ratios[i] is
// len(gen i)/len(gen i-1), and 0 when generation i-1 is empty or i is 0.
// Symbols are keyed by their fmt.Sprint form.
func Analyse[T comparable](name string, g *lsystem.Grammar[T], generations int) (*Profile, error) {
	if generations < 0 {
		return nil, lsystem.ErrNegativeGeneration
	}
	p := &Profile{
		Name:       name,
		Lengths:    make([]int, 0, generations),
		Ratios:     make([]float64, 0, generations),
		Histograms: make([]map[string]int, 0, generations),
	}

	producer := g.Start()
	prevLen := 0
	for i := 0; i < generations; i++ {
		seq, err := producer.Advance()
		if err != nil {
			return nil, fmt.Errorf("analysing %s: %w", name, err)
		}

		counts := make(map[T]int)
		for _, s := range seq {
			counts[s]++
		}
		histogram := make(map[string]int, len(counts))
		for s, n := range counts {
			histogram[fmt.Sprint(s)] += n
		}

		ratio := 0.0
		if i > 0 && prevLen > 0 {
			ratio = float64(len(seq)) / float64(prevLen)
		}
		p.Lengths = append(p.Lengths, len(seq))
		p.Ratios = append(p.Ratios, ratio)
		p.Histograms = append(p.Histograms, histogram)
		prevLen = len(seq)
	}
	return p, nil
}

// AverageGrowth is the mean of the defined growth ratios, or 0 when there is
// none.
func (p *Profile) AverageGrowth() float64 {
	sum, n := 0.0, 0
	for i, r := range p.Ratios {
		if i == 0 || p.Lengths[i-1] == 0 {
			continue
		}
		sum += r
		n++
	}
	if n == 0 {
		return 0
	}
	return sum / float64(n)
}

// Symbols returns every symbol seen in any generation, sorted.
func (p *Profile) Symbols() []string {
	seen := make(map[string]struct{})
	for _, h := range p.Histograms {
		for s := range h {
			seen[s] = struct{}{}
		}
	}
	out := make([]string, 0, len(seen))
	for s := range seen {
		out = append(out, s)
	}
	sort.Strings(out)
	return out
}

// RenderChart writes an HTML page with a stacked bar chart of the symbol
// distribution per generation and a line chart of the growth ratio.
func (p *Profile) RenderChart(w io.Writer) error {
	labels := make([]string, len(p.Lengths))
	for i := range p.Lengths {
		labels[i] = strconv.Itoa(i)
	}

	bar := charts.NewBar()
	bar.SetGlobalOptions(charts.WithTitleOpts(opts.Title{
		Title:    "Generation lengths",
		Subtitle: "Symbol distribution of " + p.Name + " over " + strconv.Itoa(len(p.Lengths)) + " generations",
	}))
	bar.SetXAxis(labels)
	for _, symbol := range p.Symbols() {
		items := make([]opts.BarData, len(p.Histograms))
		for i, h := range p.Histograms {
			items[i] = opts.BarData{Value: h[symbol]}
		}
		bar.AddSeries(symbol, items, charts.WithBarChartOpts(opts.BarChart{Stack: "symbols"}))
	}

	line := charts.NewLine()
	line.SetGlobalOptions(charts.WithTitleOpts(opts.Title{
		Title:    "Growth ratio",
		Subtitle: "Average growth " + strconv.FormatFloat(p.AverageGrowth(), 'f', 4, 64),
	}))
	ratios := make([]opts.LineData, len(p.Ratios))
	for i, r := range p.Ratios {
		ratios[i] = opts.LineData{Value: r}
	}
	line.SetXAxis(labels).AddSeries("ratio", ratios)

	page := components.NewPage()
	page.PageTitle = p.Name
	page.AddCharts(bar, line)
	return page.Render(w)
}

// Handler serves the chart of the profile returned by build on every
// request.
func Handler(build func() (*Profile, error)) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		p, err := build()
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		if err := p.RenderChart(w); err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
	})
}
