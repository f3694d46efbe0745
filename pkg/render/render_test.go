package render

import (
	"bytes"
	"testing"

	"github.com/raykavin/launchboard/pkg/dataset"
	"github.com/raykavin/launchboard/pkg/presenter"
	"github.com/raykavin/launchboard/pkg/view"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func records() []dataset.Record {
	return []dataset.Record{
		{LaunchSite: "A", PayloadMassKg: 500, BoosterVersionCategory: "v1.0", Outcome: true},
		{LaunchSite: "A", PayloadMassKg: 1500, BoosterVersionCategory: "FT", Outcome: false},
		{LaunchSite: "B", PayloadMassKg: 2500, BoosterVersionCategory: "FT", Outcome: true},
	}
}

func TestSVG_Pie(t *testing.T) {
	var buf bytes.Buffer
	err := SVG(&buf, presenter.Proportion(records(), view.AllSites), WithSize(400, 300))
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "<svg")
	assert.Contains(t, out, "Successful Launches")
	assert.Contains(t, out, "A 50.0%")
}

func TestSVG_Scatter(t *testing.T) {
	spec := presenter.Correlation(records(), view.Selection{Site: view.AllSites, Range: view.Range{Low: 0, High: 10000}})

	var buf bytes.Buffer
	require.NoError(t, SVG(&buf, spec, WithPayloadDomain(0, 10000)))

	out := buf.String()
	assert.Contains(t, out, "<svg")
	assert.Contains(t, out, "v1.0")
	assert.Contains(t, out, "FT")
}

func TestSVG_SinglePointScatter(t *testing.T) {
	spec := presenter.Correlation(records(), view.Selection{Site: "B", Range: view.Range{Low: 0, High: 10000}})
	require.Len(t, spec.Points, 1)

	var buf bytes.Buffer
	require.NoError(t, SVG(&buf, spec))
	assert.Contains(t, buf.String(), "<svg")
}

func TestSVG_EmptySpecsRenderPlaceholder(t *testing.T) {
	specs := []presenter.Spec{
		presenter.Proportion(records(), "nowhere"),
		presenter.Correlation(records(), view.Selection{Site: "A", Range: view.Range{Low: 1000, High: 1000}}),
	}

	for _, spec := range specs {
		var buf bytes.Buffer
		require.NoError(t, SVG(&buf, spec))
		assert.Contains(t, buf.String(), "No data")
	}
}

func TestSVG_UnknownKind(t *testing.T) {
	err := SVG(&bytes.Buffer{}, presenter.Spec{Kind: "bar", Segments: []presenter.Segment{{Label: "x", Count: 1}}})
	require.ErrorIs(t, err, ErrUnknownKind)
}

func TestDotWidth(t *testing.T) {
	assert.Equal(t, minDotWidth, dotWidth(0, 100))
	assert.Equal(t, maxDotWidth, dotWidth(100, 100))
	assert.Less(t, dotWidth(25, 100), dotWidth(50, 100))
}
