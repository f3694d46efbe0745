// Package report prints a text summary of a launch dataset for the CLI.
package report

import (
	"fmt"
	"io"
	"strconv"

	"github.com/aybabtme/uniplot/histogram"
	"github.com/olekukonko/tablewriter"
	"github.com/raykavin/launchboard/pkg/dataset"
	"github.com/raykavin/launchboard/pkg/view"
	"github.com/samber/lo"
	"gonum.org/v1/gonum/stat"
)

const histogramBins = 10

// SiteStats aggregates the launches of one site.
type SiteStats struct {
	Site        string
	Launches    int
	Successes   int
	MeanPayload float64
}

// Failures is the number of unsuccessful launches.
func (s SiteStats) Failures() int {
	return s.Launches - s.Successes
}

// SuccessRate is the fraction of successful launches, 0 for an empty site.
func (s SiteStats) SuccessRate() float64 {
	if s.Launches == 0 {
		return 0
	}
	return float64(s.Successes) / float64(s.Launches)
}

// BySite computes per-site statistics in the dataset's site order.
func BySite(records []dataset.Record, sites []string) []SiteStats {
	grouped := lo.GroupBy(records, func(r dataset.Record) string { return r.LaunchSite })

	return lo.Map(sites, func(site string, _ int) SiteStats {
		launches := grouped[site]
		stats := SiteStats{
			Site:      site,
			Launches:  len(launches),
			Successes: lo.CountBy(launches, func(r dataset.Record) bool { return r.Outcome }),
		}
		if len(launches) > 0 {
			stats.MeanPayload = stat.Mean(lo.Map(launches, func(r dataset.Record, _ int) float64 {
				return r.PayloadMassKg
			}), nil)
		}
		return stats
	})
}

// Write prints the per-site table for the whole dataset followed by a payload
// histogram of the records matched by sel.
func Write(w io.Writer, ds *dataset.Dataset, sel view.Selection) error {
	summary := ds.Summary()

	fmt.Fprintf(w, "%d launches, %d successful, payload %.0f-%.0f kg\n\n",
		summary.Total, summary.Successes, summary.MinPayload, summary.MaxPayload)

	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Site", "Launches", "Success", "Failure", "% Success", "Mean Payload (kg)"})
	table.SetFooterAlignment(tablewriter.ALIGN_RIGHT)

	for _, s := range BySite(ds.Records(), summary.DistinctSites) {
		table.Append([]string{
			s.Site,
			strconv.Itoa(s.Launches),
			strconv.Itoa(s.Successes),
			strconv.Itoa(s.Failures()),
			fmt.Sprintf("%.1f %%", s.SuccessRate()*100),
			fmt.Sprintf("%.0f", s.MeanPayload),
		})
	}
	table.SetFooter([]string{
		"TOTAL",
		strconv.Itoa(summary.Total),
		strconv.Itoa(summary.Successes),
		strconv.Itoa(summary.Total - summary.Successes),
		"",
		fmt.Sprintf("%.0f", summary.MeanPayload),
	})
	table.Render()

	selected := view.Select(ds.Records(), sel)
	fmt.Fprintf(w, "\n-- PAYLOAD HISTOGRAM (site %s, %.0f < kg < %.0f, %d launches) --\n",
		sel.Site, sel.Range.Low, sel.Range.High, len(selected))

	if len(selected) == 0 {
		_, err := fmt.Fprintln(w, "no launches in selection")
		return err
	}

	payloads := lo.Map(selected, func(r dataset.Record, _ int) float64 { return r.PayloadMassKg })
	if lo.Min(payloads) == lo.Max(payloads) {
		// a zero-width histogram cannot be binned
		_, err := fmt.Fprintf(w, "all %d launches at %.0f kg\n", len(payloads), payloads[0])
		return err
	}

	hist := histogram.Hist(histogramBins, payloads)
	histogram.Fprint(w, hist, histogram.Linear(40))

	return nil
}
