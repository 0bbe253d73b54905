package stopwatch

import (
	"fmt"
	"io"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
)

func toBarItems(vals []float64) []opts.BarData {
	out := make([]opts.BarData, len(vals))
	for i, v := range vals {
		out[i] = opts.BarData{Value: v}
	}
	return out
}

// WriteChart renders an HTML page with total, average, min and max seconds
// per label as grouped bars.
func (r *Registry) WriteChart(w io.Writer, title string) error {
	s := r.Snapshot()
	labels := make([]string, len(s.Entries))
	total := make([]float64, len(s.Entries))
	avg := make([]float64, len(s.Entries))
	mins := make([]float64, len(s.Entries))
	maxs := make([]float64, len(s.Entries))
	for i, e := range s.Entries {
		labels[i] = e.Label
		total[i] = e.Total
		avg[i] = e.Average
		mins[i] = e.Min
		maxs[i] = e.Max
	}

	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{
			Title:    title,
			Subtitle: fmt.Sprintf("mode=%s, timers=%d", s.Mode, len(s.Entries)),
		}),
		charts.WithInitializationOpts(opts.Initialization{PageTitle: title, Width: "1200px", Height: "600px"}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(true)}),
		charts.WithYAxisOpts(opts.YAxis{Name: "seconds"}),
	)
	bar.SetXAxis(labels).
		AddSeries("total", toBarItems(total)).
		AddSeries("average", toBarItems(avg)).
		AddSeries("min", toBarItems(mins)).
		AddSeries("max", toBarItems(maxs)).
		SetSeriesOptions(charts.WithLabelOpts(opts.Label{Show: opts.Bool(false)}))

	if err := bar.Render(w); err != nil {
		return fmt.Errorf("render chart: %w", err)
	}
	return nil
}
