package view

import (
	"github.com/raykavin/launchboard/pkg/dataset"
	"github.com/samber/lo"
)

// BySite returns the records launched from site, or all records for AllSites.
// Order is preserved.
func BySite(records []dataset.Record, site string) []dataset.Record {
	if site == AllSites {
		return lo.Filter(records, func(dataset.Record, int) bool { return true })
	}

	return lo.Filter(records, func(r dataset.Record, _ int) bool {
		return r.LaunchSite == site
	})
}

// Select returns the records matching the site filter whose payload lies
// strictly between the range bounds, in source order. It never fails: an
// unknown site or an empty window yields an empty slice.
func Select(records []dataset.Record, sel Selection) []dataset.Record {
	if sel.Range.Empty() {
		return []dataset.Record{}
	}

	return lo.Filter(BySite(records, sel.Site), func(r dataset.Record, _ int) bool {
		return sel.Range.Contains(r.PayloadMassKg)
	})
}
