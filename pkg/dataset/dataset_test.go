package dataset

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_Summary(t *testing.T) {
	ds := New([]Record{
		{LaunchSite: "A", PayloadMassKg: 500, Outcome: true},
		{LaunchSite: "B", PayloadMassKg: 1000},
		{LaunchSite: "A", PayloadMassKg: 1500},
		{LaunchSite: "A", PayloadMassKg: 2500, Outcome: true},
	})

	summary := ds.Summary()
	assert.Equal(t, []string{"A", "B"}, summary.DistinctSites)
	assert.Equal(t, 500.0, summary.MinPayload)
	assert.Equal(t, 2500.0, summary.MaxPayload)
	assert.Equal(t, 1375.0, summary.MeanPayload)
	assert.Equal(t, 4, summary.Total)
	assert.Equal(t, 2, summary.Successes)
	assert.LessOrEqual(t, summary.MinPayload, summary.MaxPayload)

	assert.True(t, ds.HasSite("B"))
	assert.False(t, ds.HasSite("C"))
}

func TestNew_Empty(t *testing.T) {
	ds := New(nil)
	require.Equal(t, 0, ds.Len())
	assert.Empty(t, ds.Sites())
	assert.Zero(t, ds.Summary().MinPayload)
	assert.Zero(t, ds.Summary().MaxPayload)
}

func TestDataset_IsImmutable(t *testing.T) {
	source := []Record{{LaunchSite: "A", PayloadMassKg: 1}}
	ds := New(source)

	source[0].LaunchSite = "changed"
	records := ds.Records()
	records[0].PayloadMassKg = 42
	sites := ds.Sites()
	sites[0] = "changed"

	assert.Equal(t, "A", ds.Records()[0].LaunchSite)
	assert.Equal(t, 1.0, ds.Records()[0].PayloadMassKg)
	assert.Equal(t, []string{"A"}, ds.Sites())
}

func TestRecord_Class(t *testing.T) {
	assert.Equal(t, 1, Record{Outcome: true}.Class())
	assert.Equal(t, 0, Record{}.Class())
}
