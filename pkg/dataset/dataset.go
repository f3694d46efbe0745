// Package dataset holds the immutable launch record set and its summary.
package dataset

import (
	"slices"

	"github.com/StudioSol/set"
	"github.com/samber/lo"
	"gonum.org/v1/gonum/stat"
)

// Dataset is a frozen, in-memory record set. It is safe for concurrent reads.
type Dataset struct {
	records []Record
	sites   *set.LinkedHashSetString
	summary Summary
}

// New builds a dataset from records, keeping their order.
func New(records []Record) *Dataset {
	ds := &Dataset{
		records: slices.Clone(records),
		sites:   set.NewLinkedHashSetString(),
	}

	for _, r := range ds.records {
		ds.sites.Add(r.LaunchSite)
	}

	ds.summary = summarize(ds.records, ds.sites)
	return ds
}

func summarize(records []Record, sites *set.LinkedHashSetString) Summary {
	summary := Summary{
		DistinctSites: make([]string, 0, sites.Length()),
		Total:         len(records),
		Successes:     lo.CountBy(records, func(r Record) bool { return r.Outcome }),
	}

	for site := range sites.Iter() {
		summary.DistinctSites = append(summary.DistinctSites, site)
	}

	if len(records) == 0 {
		return summary
	}

	payloads := lo.Map(records, func(r Record, _ int) float64 { return r.PayloadMassKg })
	summary.MinPayload = lo.Min(payloads)
	summary.MaxPayload = lo.Max(payloads)
	summary.MeanPayload = stat.Mean(payloads, nil)

	return summary
}

// Records returns a copy of all records in source order.
func (d *Dataset) Records() []Record {
	return slices.Clone(d.records)
}

// Len returns the number of records.
func (d *Dataset) Len() int {
	return len(d.records)
}

// Summary returns the derived summary values.
func (d *Dataset) Summary() Summary {
	s := d.summary
	s.DistinctSites = slices.Clone(s.DistinctSites)
	return s
}

// Sites returns the distinct launch sites in first-appearance order.
func (d *Dataset) Sites() []string {
	return slices.Clone(d.summary.DistinctSites)
}

// HasSite reports whether site occurs in the dataset.
func (d *Dataset) HasSite(site string) bool {
	return d.sites.InArray(site)
}
