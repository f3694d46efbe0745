package dataset

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad_SampleFile(t *testing.T) {
	ds, err := Load("testdata/spacex_launch_dash.csv")
	require.NoError(t, err)

	require.Equal(t, 18, ds.Len())

	first := ds.Records()[0]
	assert.Equal(t, "CCAFS LC-40", first.LaunchSite)
	assert.Equal(t, 1, first.FlightNumber)
	assert.Equal(t, "F9 v1.0  B0003", first.BoosterVersion)
	assert.Equal(t, "v1.0", first.BoosterVersionCategory)
	assert.False(t, first.Outcome)

	summary := ds.Summary()
	assert.Equal(t, []string{"CCAFS LC-40", "VAFB SLC-4E", "KSC LC-39A", "CCAFS SLC-40"}, summary.DistinctSites)
	assert.Equal(t, 0.0, summary.MinPayload)
	assert.Equal(t, 9600.0, summary.MaxPayload)
	assert.Equal(t, 18, summary.Total)
	assert.Equal(t, 7, summary.Successes)
}

func TestLoad_HeadersAreCaseInsensitiveAndReordered(t *testing.T) {
	path := writeFile(t, "launches.csv",
		"CLASS, booster version category ,PAYLOAD MASS (KG),launch site\n"+
			"1,FT,1500,Site A\n"+
			",,,\n"+
			"false,B4,2500.5,Site B\n")

	ds, err := Load(path)
	require.NoError(t, err)

	require.Equal(t, []Record{
		{LaunchSite: "Site A", PayloadMassKg: 1500, BoosterVersionCategory: "FT", Outcome: true},
		{LaunchSite: "Site B", PayloadMassKg: 2500.5, BoosterVersionCategory: "B4", Outcome: false},
	}, ds.Records())
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name    string
		path    func(t *testing.T) string
		wantErr error
	}{
		{
			name:    "missing file",
			path:    func(t *testing.T) string { return filepath.Join(t.TempDir(), "nope.csv") },
			wantErr: fs.ErrNotExist,
		},
		{
			name:    "empty file",
			path:    func(t *testing.T) string { return writeFile(t, "empty.csv", "") },
			wantErr: ErrEmptySource,
		},
		{
			name: "missing column",
			path: func(t *testing.T) string {
				return writeFile(t, "cols.csv", "Launch Site,Payload Mass (kg),class\nA,1,1\n")
			},
			wantErr: ErrMissingColumn,
		},
		{
			name: "bad payload",
			path: func(t *testing.T) string {
				return writeFile(t, "payload.csv", "Launch Site,Payload Mass (kg),Booster Version Category,class\nA,heavy,FT,1\n")
			},
			wantErr: ErrMalformedRow,
		},
		{
			name: "bad outcome",
			path: func(t *testing.T) string {
				return writeFile(t, "class.csv", "Launch Site,Payload Mass (kg),Booster Version Category,class\nA,100,FT,2\n")
			},
			wantErr: ErrMalformedRow,
		},
		{
			name: "ragged csv",
			path: func(t *testing.T) string {
				return writeFile(t, "ragged.csv", "Launch Site,Payload Mass (kg),Booster Version Category,class\nA,100\n")
			},
			wantErr: ErrMalformedRow,
		},
		{
			name:    "unsupported extension",
			path:    func(t *testing.T) string { return writeFile(t, "launches.json", "[]") },
			wantErr: ErrUnsupportedFormat,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			path := tc.path(t)
			ds, err := Load(path)
			require.Nil(t, ds)
			require.Error(t, err)

			var loadErr *LoadError
			require.True(t, errors.As(err, &loadErr))
			assert.Equal(t, path, loadErr.Path)
			assert.ErrorIs(t, err, tc.wantErr)
		})
	}
}

func TestLoad_Excel(t *testing.T) {
	f := excelize.NewFile()
	sheet := f.GetSheetName(0)
	require.NoError(t, f.SetSheetRow(sheet, "A1", &[]any{"Launch Site", "class", "Payload Mass (kg)", "Booster Version Category"}))
	require.NoError(t, f.SetSheetRow(sheet, "A2", &[]any{"KSC LC-39A", 1, 5300.0, "FT"}))
	require.NoError(t, f.SetSheetRow(sheet, "A3", &[]any{"KSC LC-39A", 0, 5600.0, "FT"}))

	path := filepath.Join(t.TempDir(), "launches.xlsx")
	require.NoError(t, f.SaveAs(path))
	require.NoError(t, f.Close())

	ds, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, 2, ds.Len())
	assert.Equal(t, []string{"KSC LC-39A"}, ds.Sites())
	assert.Equal(t, 1, ds.Summary().Successes)
	assert.Equal(t, 5300.0, ds.Summary().MinPayload)
}
