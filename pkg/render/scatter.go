package render

import (
	"io"
	"math"

	"github.com/raykavin/launchboard/pkg/presenter"
	"github.com/samber/lo"
	"github.com/wcharczuk/go-chart/v2"
)

const (
	minDotWidth = 3.0
	maxDotWidth = 14.0
)

func scatter(w io.Writer, spec presenter.Spec, o options) error {
	xMin, xMax := o.payloadMin, o.payloadMax
	if xMin >= xMax {
		xs := lo.Map(spec.Points, func(p presenter.Point, _ int) float64 { return p.X })
		xMin, xMax = lo.Min(xs), lo.Max(xs)
		if xMin == xMax {
			xMin, xMax = xMin-1, xMax+1
		}
	}

	maxSize := lo.Max(lo.Map(spec.Points, func(p presenter.Point, _ int) float64 { return p.Size }))
	grouped := lo.GroupBy(spec.Points, func(p presenter.Point) string { return p.Group })

	series := make([]chart.Series, 0, len(spec.Groups))
	for i, group := range spec.Groups {
		points := grouped[group]
		color := chart.GetDefaultColor(i)

		series = append(series, chart.ContinuousSeries{
			Name: group,
			Style: chart.Style{
				StrokeWidth: chart.Disabled,
				StrokeColor: color,
				DotColor:    color,
				DotWidthProvider: func(_, _ chart.Range, index int, _, _ float64) float64 {
					return dotWidth(points[index].Size, maxSize)
				},
			},
			XValues: lo.Map(points, func(p presenter.Point, _ int) float64 { return p.X }),
			YValues: lo.Map(points, func(p presenter.Point, _ int) float64 { return float64(p.Y) }),
		})
	}

	graph := chart.Chart{
		Title:  spec.Title,
		Width:  o.width,
		Height: o.height,
		Background: chart.Style{
			Padding: chart.Box{Top: 40, Left: 16, Right: 16, Bottom: 16},
		},
		XAxis: chart.XAxis{
			Name:  spec.XField,
			Range: &chart.ContinuousRange{Min: xMin, Max: xMax},
		},
		YAxis: chart.YAxis{
			Name:  spec.YField,
			Range: &chart.ContinuousRange{Min: -0.25, Max: 1.25},
			Ticks: []chart.Tick{{Value: 0, Label: "0"}, {Value: 1, Label: "1"}},
		},
		Series: series,
	}
	graph.Elements = []chart.Renderable{chart.LegendLeft(&graph)}

	return graph.Render(chart.SVG, w)
}

// dotWidth scales a marker by payload the way a size channel does
func dotWidth(size, maxSize float64) float64 {
	if maxSize <= 0 || size <= 0 {
		return minDotWidth
	}
	return minDotWidth + (maxDotWidth-minDotWidth)*math.Sqrt(size/maxSize)
}
