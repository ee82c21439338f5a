package service

import (
	"net/http"
	"strconv"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/go-echarts/go-echarts/v2/types"
	"github.com/mosaicnetworks/midline/src/stats"
)

// GetChart renders an HTML page with a line chart of the retained window of a
// series and a box plot of its five-number summary.
func (s *Service) GetChart(w http.ResponseWriter, r *http.Request) {
	param := r.URL.Path[len("/chart/"):]

	srs, err := s.node.GetSeries(param)

	if err != nil {
		s.logger.WithError(err).Errorf("Retrieving series %s", param)

		http.Error(w, err.Error(), http.StatusInternalServerError)

		return
	}

	summary, err := s.node.GetSummary(param)

	if err != nil {
		s.logger.WithError(err).Errorf("Summarizing series %s", param)

		http.Error(w, err.Error(), http.StatusInternalServerError)

		return
	}

	page := components.NewPage()
	page.SetLayout(components.PageFlexLayout)
	page.AddCharts(
		windowChart(srs.Name, srs.Values),
		summaryChart(srs.Name, summary),
	)

	if err := page.Render(w); err != nil {
		s.logger.WithError(err).Error("Rendering chart page")
	}
}

func windowChart(name string, values []int64) *charts.Line {
	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{Theme: types.ThemeWesteros}),
		charts.WithTitleOpts(opts.Title{
			Title:    name,
			Subtitle: "retained window",
		}),
		charts.WithXAxisOpts(opts.XAxis{Name: "offset", Type: "category"}),
		charts.WithYAxisOpts(opts.YAxis{Type: "value"}),
		charts.WithToolboxOpts(opts.Toolbox{Show: true}),
	)

	line.SetXAxis(windowLabels(len(values))).
		AddSeries(name, lineItems(values)).
		SetSeriesOptions(charts.WithLineChartOpts(opts.LineChart{Smooth: true}))

	return line
}

func summaryChart(name string, summary *stats.Summary) *charts.BoxPlot {
	box := charts.NewBoxPlot()
	box.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{Theme: types.ThemeWesteros}),
		charts.WithTitleOpts(opts.Title{
			Title:    name,
			Subtitle: "five-number summary",
		}),
	)

	box.SetXAxis([]string{name}).AddSeries("summary", []opts.BoxPlotData{
		{Value: []int64{summary.Min, summary.Q1, summary.Median, summary.Q3, summary.Max}},
	})

	return box
}

func windowLabels(count int) []string {
	labels := make([]string, count)
	for i := range labels {
		labels[i] = strconv.Itoa(i)
	}
	return labels
}

func lineItems(values []int64) []opts.LineData {
	items := make([]opts.LineData, len(values))
	for i, value := range values {
		items[i] = opts.LineData{Value: value, XAxisIndex: i}
	}

	return items
}
