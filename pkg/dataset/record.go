package dataset

// Column names recognised in the source file. Matching is case-insensitive.
const (
	ColumnLaunchSite      = "Launch Site"
	ColumnPayloadMass     = "Payload Mass (kg)"
	ColumnBoosterCategory = "Booster Version Category"
	ColumnOutcome         = "class"

	// Optional passthrough columns.
	ColumnFlightNumber   = "Flight Number"
	ColumnBoosterVersion = "Booster Version"
)

// RequiredColumns lists the columns every source must provide.
var RequiredColumns = []string{
	ColumnLaunchSite,
	ColumnPayloadMass,
	ColumnBoosterCategory,
	ColumnOutcome,
}

// Record is a single launch event.
type Record struct {
	LaunchSite             string  `json:"launch_site"`
	PayloadMassKg          float64 `json:"payload_mass_kg"`
	BoosterVersionCategory string  `json:"booster_version_category"`
	Outcome                bool    `json:"outcome"`

	FlightNumber   int    `json:"flight_number,omitempty"`
	BoosterVersion string `json:"booster_version,omitempty"`
}

// Class returns the outcome as the 0/1 flag used by the source file.
func (r Record) Class() int {
	if r.Outcome {
		return 1
	}
	return 0
}

// Summary holds values derived once from the full record set.
type Summary struct {
	DistinctSites []string `json:"distinct_sites"`
	MinPayload    float64  `json:"min_payload"`
	MaxPayload    float64  `json:"max_payload"`
	MeanPayload   float64  `json:"mean_payload"`
	Total         int      `json:"total"`
	Successes     int      `json:"successes"`
}
