// Package presenter derives renderer-agnostic chart specifications from a
// record subset.
package presenter

import "github.com/samber/lo"

// Kind identifies how a Spec is drawn.
type Kind string

const (
	KindPie     Kind = "pie"
	KindScatter Kind = "scatter"
)

// Field names as they appear in the source file; used for axis and legend labels.
const (
	FieldLaunchSite      = "Launch Site"
	FieldPayloadMass     = "Payload Mass (kg)"
	FieldBoosterCategory = "Booster Version Category"
	FieldOutcome         = "class"
)

// Segment is one slice of a proportion chart.
type Segment struct {
	Label string `json:"label"`
	Count int    `json:"count"`
}

// Point is one marker of a correlation chart.
type Point struct {
	X     float64            `json:"x"`
	Y     int                `json:"y"`
	Group string             `json:"group"`
	Size  float64            `json:"size"`
	Hover map[string]float64 `json:"hover,omitempty"`
}

// Spec describes a chart without drawing it.
type Spec struct {
	Kind  Kind   `json:"kind"`
	Title string `json:"title"`

	// pie
	GroupField string    `json:"group_field,omitempty"`
	Segments   []Segment `json:"segments,omitempty"`

	// scatter
	XField      string   `json:"x_field,omitempty"`
	YField      string   `json:"y_field,omitempty"`
	ColorField  string   `json:"color_field,omitempty"`
	SizeField   string   `json:"size_field,omitempty"`
	HoverFields []string `json:"hover_fields,omitempty"`
	Groups      []string `json:"groups,omitempty"`
	Points      []Point  `json:"points,omitempty"`
}

// Total is the sum of segment counts for a pie, or the point count for a scatter.
func (s Spec) Total() int {
	if s.Kind == KindScatter {
		return len(s.Points)
	}
	return lo.SumBy(s.Segments, func(seg Segment) int { return seg.Count })
}

// Empty reports whether the chart has nothing to draw.
func (s Spec) Empty() bool {
	return len(s.Segments) == 0 && len(s.Points) == 0
}

// countInOrder groups keys and counts them, keeping first-appearance order
func countInOrder(keys []string) []Segment {
	counts := lo.CountValues(keys)
	return lo.Map(lo.Uniq(keys), func(key string, _ int) Segment {
		return Segment{Label: key, Count: counts[key]}
	})
}
