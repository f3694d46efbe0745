package plot

import (
	"fmt"
	"math"

	"github.com/raykavin/launchboard/pkg/dataset"
	"github.com/raykavin/launchboard/pkg/view"
	"github.com/samber/lo"
)

const allSitesLabel = "All Sites"

// SiteOption is one entry of the site dropdown
type SiteOption struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// Mark is a labelled tick on the payload slider
type Mark struct {
	Value float64 `json:"value"`
	Label string  `json:"label"`
}

// Slider describes the payload range control
type Slider struct {
	Min   float64 `json:"min"`
	Max   float64 `json:"max"`
	Step  float64 `json:"step"`
	Marks []Mark  `json:"marks"`
}

// NewSlider builds a slider with a mark on every step
func NewSlider(min, max, step float64) Slider {
	slider := Slider{Min: min, Max: max, Step: step}
	if step <= 0 || max <= min {
		return slider
	}

	steps := int(math.Floor((max-min)/step + 1e-9))
	slider.Marks = lo.Times(steps+1, func(i int) Mark {
		value := min + float64(i)*step
		return Mark{Value: value, Label: fmt.Sprintf("%.0f kg", value)}
	})

	return slider
}

// Controls is everything the page needs to draw its selectors
type Controls struct {
	Title   string         `json:"title"`
	Sites   []SiteOption   `json:"sites"`
	Slider  Slider         `json:"slider"`
	Domain  view.Range     `json:"domain"`
	Default view.Selection `json:"default"`
}

func newControls(title string, summary dataset.Summary, slider Slider, domain view.Range) Controls {
	sites := make([]SiteOption, 0, len(summary.DistinctSites)+1)
	sites = append(sites, SiteOption{Label: allSitesLabel, Value: view.AllSites})
	for _, site := range summary.DistinctSites {
		sites = append(sites, SiteOption{Label: site, Value: site})
	}

	// the slider itself must be able to reach the dataset extremes
	slider.Min = domain.Low
	slider.Max = domain.High

	return Controls{
		Title:   title,
		Sites:   sites,
		Slider:  slider,
		Domain:  domain,
		Default: view.Default(summary),
	}
}
