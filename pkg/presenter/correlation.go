package presenter

import (
	"github.com/raykavin/launchboard/pkg/dataset"
	"github.com/raykavin/launchboard/pkg/view"
	"github.com/samber/lo"
)

// Correlation builds the payload/outcome scatter for the selected site and
// payload window. Each surviving record becomes one point, coloured by its
// booster category and sized by its payload.
func Correlation(records []dataset.Record, sel view.Selection) Spec {
	selected := view.Select(records, sel)

	points := lo.Map(selected, func(r dataset.Record, _ int) Point {
		return Point{
			X:     r.PayloadMassKg,
			Y:     r.Class(),
			Group: r.BoosterVersionCategory,
			Size:  r.PayloadMassKg,
			Hover: map[string]float64{FieldPayloadMass: r.PayloadMassKg},
		}
	})

	return Spec{
		Kind:        KindScatter,
		Title:       correlationTitle(sel.Site),
		XField:      FieldPayloadMass,
		YField:      FieldOutcome,
		ColorField:  FieldBoosterCategory,
		SizeField:   FieldPayloadMass,
		HoverFields: []string{FieldPayloadMass},
		Groups:      lo.Uniq(lo.Map(points, func(p Point, _ int) string { return p.Group })),
		Points:      points,
	}
}

func correlationTitle(site string) string {
	if site == view.AllSites {
		return "Correlation between Payload and Success for all Sites"
	}
	return "Correlation between Payload and Success for site " + site
}
