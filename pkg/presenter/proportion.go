package presenter

import (
	"fmt"

	"github.com/raykavin/launchboard/pkg/dataset"
	"github.com/raykavin/launchboard/pkg/view"
	"github.com/samber/lo"
)

const (
	TitleAllSites = "Successful Launches"

	LabelSuccess = "Success"
	LabelFailure = "Failure"
)

// Proportion builds the pie chart driven by the site selector only.
//
// For view.AllSites it counts successful launches per site; sites without a
// success get no segment. For a specific site it splits that site's launches
// into successes and failures. An empty restriction yields a spec with no segments.
func Proportion(records []dataset.Record, site string) Spec {
	if site == view.AllSites {
		successes := lo.Filter(records, func(r dataset.Record, _ int) bool { return r.Outcome })
		return Spec{
			Kind:       KindPie,
			Title:      TitleAllSites,
			GroupField: FieldLaunchSite,
			Segments: countInOrder(lo.Map(successes, func(r dataset.Record, _ int) string {
				return r.LaunchSite
			})),
		}
	}

	launches := view.BySite(records, site)
	return Spec{
		Kind:       KindPie,
		Title:      SiteTitle(site),
		GroupField: FieldOutcome,
		Segments: countInOrder(lo.Map(launches, func(r dataset.Record, _ int) string {
			return outcomeLabel(r.Outcome)
		})),
	}
}

// SiteTitle is the proportion chart title for a single site.
func SiteTitle(site string) string {
	return fmt.Sprintf("Total Success Launches for site %s", site)
}

func outcomeLabel(success bool) string {
	if success {
		return LabelSuccess
	}
	return LabelFailure
}
