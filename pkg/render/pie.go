package render

import (
	"fmt"
	"io"

	"github.com/raykavin/launchboard/pkg/presenter"
	"github.com/wcharczuk/go-chart/v2"
)

func pie(w io.Writer, spec presenter.Spec, o options) error {
	values := make([]chart.Value, 0, len(spec.Segments))
	total := spec.Total()

	for _, seg := range spec.Segments {
		share := 100 * float64(seg.Count) / float64(total)
		values = append(values, chart.Value{
			Label: fmt.Sprintf("%s %.1f%%", seg.Label, share),
			Value: float64(seg.Count),
		})
	}

	pc := chart.PieChart{
		Title:  spec.Title,
		Width:  o.width,
		Height: o.height,
		Values: values,
	}

	return pc.Render(chart.SVG, w)
}
