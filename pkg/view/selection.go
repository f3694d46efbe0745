// Package view maps the dashboard control state to the subset of records the
// charts should show.
package view

import (
	"math"
	"strconv"
	"strings"

	"github.com/raykavin/launchboard/pkg/dataset"
)

// AllSites is the site selector value meaning "do not filter by site".
const AllSites = "ALL"

// Range is a payload window in kilograms. Filtering treats both bounds as exclusive.
type Range struct {
	Low  float64 `json:"low"`
	High float64 `json:"high"`
}

// Empty reports whether no payload can fall strictly inside the window.
func (r Range) Empty() bool {
	return r.Low >= r.High
}

// Contains reports whether Low < mass < High.
func (r Range) Contains(mass float64) bool {
	return mass > r.Low && mass < r.High
}

// Selection is the value of both dashboard controls at one moment.
type Selection struct {
	Site  string `json:"site"`
	Range Range  `json:"range"`
}

// AllSelected reports whether the site selector is on the all-sites sentinel.
func (s Selection) AllSelected() bool {
	return s.Site == AllSites
}

// Default is the initial control state: every site and the dataset's full payload extent.
func Default(summary dataset.Summary) Selection {
	return Selection{
		Site:  AllSites,
		Range: Range{Low: summary.MinPayload, High: summary.MaxPayload},
	}
}

// Domain returns the span a range control may cover: the slider span widened
// to include the dataset extremes.
func Domain(sliderMin, sliderMax float64, summary dataset.Summary) Range {
	domain := Range{Low: sliderMin, High: sliderMax}
	if summary.Total > 0 {
		domain.Low = math.Min(domain.Low, summary.MinPayload)
		domain.High = math.Max(domain.High, summary.MaxPayload)
	}
	return domain
}

// Normalize fixes caller mistakes: an empty site becomes AllSites, an inverted
// range is swapped and both bounds are clamped into domain. NaN bounds fall back
// to the matching domain edge.
func (s Selection) Normalize(domain Range) Selection {
	s.Site = strings.TrimSpace(s.Site)
	if s.Site == "" {
		s.Site = AllSites
	}

	low, high := s.Range.Low, s.Range.High
	if math.IsNaN(low) {
		low = domain.Low
	}
	if math.IsNaN(high) {
		high = domain.High
	}
	if low > high {
		low, high = high, low
	}

	s.Range = Range{
		Low:  clamp(low, domain.Low, domain.High),
		High: clamp(high, domain.Low, domain.High),
	}

	return s
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(v, hi))
}

// ParseSelection decodes textual control values, typically from a query
// string. Missing or unparsable values keep the fallback's value.
func ParseSelection(site, low, high string, fallback Selection) Selection {
	sel := fallback

	if site = strings.TrimSpace(site); site != "" {
		sel.Site = site
	}
	if v, err := strconv.ParseFloat(strings.TrimSpace(low), 64); err == nil {
		sel.Range.Low = v
	}
	if v, err := strconv.ParseFloat(strings.TrimSpace(high), 64); err == nil {
		sel.Range.High = v
	}

	return sel
}
