package view

import (
	"math"
	"testing"

	"github.com/raykavin/launchboard/pkg/dataset"
	"github.com/stretchr/testify/assert"
)

func TestDefault(t *testing.T) {
	summary := dataset.Summary{MinPayload: 0, MaxPayload: 9600, Total: 3}
	assert.Equal(t, Selection{Site: AllSites, Range: Range{Low: 0, High: 9600}}, Default(summary))
}

func TestDomain(t *testing.T) {
	inside := dataset.Summary{MinPayload: 350, MaxPayload: 9600, Total: 10}
	assert.Equal(t, Range{Low: 0, High: 10000}, Domain(0, 10000, inside))

	outside := dataset.Summary{MinPayload: -5, MaxPayload: 15600, Total: 10}
	assert.Equal(t, Range{Low: -5, High: 15600}, Domain(0, 10000, outside))

	assert.Equal(t, Range{Low: 0, High: 10000}, Domain(0, 10000, dataset.Summary{}))
}

func TestNormalize(t *testing.T) {
	domain := Range{Low: 0, High: 10000}

	tests := []struct {
		name string
		in   Selection
		want Selection
	}{
		{
			name: "valid selection untouched",
			in:   Selection{Site: "A", Range: Range{Low: 400, High: 2000}},
			want: Selection{Site: "A", Range: Range{Low: 400, High: 2000}},
		},
		{
			name: "inverted range swapped",
			in:   Selection{Site: "A", Range: Range{Low: 2000, High: 400}},
			want: Selection{Site: "A", Range: Range{Low: 400, High: 2000}},
		},
		{
			name: "out of domain clamped",
			in:   Selection{Site: AllSites, Range: Range{Low: -100, High: 20000}},
			want: Selection{Site: AllSites, Range: Range{Low: 0, High: 10000}},
		},
		{
			name: "blank site becomes all",
			in:   Selection{Site: "  ", Range: Range{Low: 1, High: 2}},
			want: Selection{Site: AllSites, Range: Range{Low: 1, High: 2}},
		},
		{
			name: "NaN bounds use domain",
			in:   Selection{Site: "B", Range: Range{Low: math.NaN(), High: math.NaN()}},
			want: Selection{Site: "B", Range: Range{Low: 0, High: 10000}},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.in.Normalize(domain))
		})
	}
}

func TestParseSelection(t *testing.T) {
	fallback := Selection{Site: AllSites, Range: Range{Low: 0, High: 9600}}

	assert.Equal(t, fallback, ParseSelection("", "", "", fallback))
	assert.Equal(t,
		Selection{Site: "KSC LC-39A", Range: Range{Low: 1000, High: 5000}},
		ParseSelection("KSC LC-39A", "1000", "5000", fallback))
	assert.Equal(t,
		Selection{Site: AllSites, Range: Range{Low: 0, High: 2500.5}},
		ParseSelection("", "abc", " 2500.5 ", fallback))
}

func TestRange(t *testing.T) {
	r := Range{Low: 1000, High: 1000}
	assert.True(t, r.Empty())
	assert.False(t, r.Contains(1000))

	r = Range{Low: 0, High: 10}
	assert.False(t, r.Empty())
	assert.True(t, r.Contains(5))
	assert.False(t, r.Contains(0))
	assert.False(t, r.Contains(10))
}
