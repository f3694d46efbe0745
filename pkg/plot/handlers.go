package plot

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/raykavin/launchboard/pkg/dataset"
	"github.com/raykavin/launchboard/pkg/presenter"
	"github.com/raykavin/launchboard/pkg/render"
	"github.com/raykavin/launchboard/pkg/view"
)

// selection decodes and normalizes the control state carried by a request
func (d *Dashboard) selection(r *http.Request) view.Selection {
	q := r.URL.Query()
	return view.ParseSelection(q.Get("site"), q.Get("low"), q.Get("high"), d.controls.Default).
		Normalize(d.domain)
}

// writeJSON encodes v as the response body
func (d *Dashboard) writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		d.log.WithError(err).Error("JSON encoding failed")
		http.Error(w, "Internal server error", http.StatusInternalServerError)
	}
}

// handleScript serves the transpiled dashboard script
func (d *Dashboard) handleScript(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/javascript")
	fmt.Fprint(w, d.scriptContent)
}

// handleHealth reports the number of loaded records
func (d *Dashboard) handleHealth(w http.ResponseWriter, _ *http.Request) {
	d.writeJSON(w, map[string]any{
		"status":  "ok",
		"records": len(d.records),
	})
}

// handleIndex renders the dashboard page
func (d *Dashboard) handleIndex(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/html")
	if err := d.indexHTML.Execute(w, d.controls); err != nil {
		d.log.WithError(err).Error("Template execution failed")
		http.Error(w, "Internal server error", http.StatusInternalServerError)
	}
}

// handleControls returns the selector definitions and the initial selection
func (d *Dashboard) handleControls(w http.ResponseWriter, _ *http.Request) {
	d.writeJSON(w, d.controls)
}

// handleProportion returns the pie spec for the site selector
func (d *Dashboard) handleProportion(w http.ResponseWriter, r *http.Request) {
	d.writeJSON(w, presenter.Proportion(d.records, d.selection(r).Site))
}

// handleCorrelation returns the scatter spec for both selectors
func (d *Dashboard) handleCorrelation(w http.ResponseWriter, r *http.Request) {
	d.writeJSON(w, presenter.Correlation(d.records, d.selection(r)))
}

func (d *Dashboard) handleProportionSVG(w http.ResponseWriter, r *http.Request) {
	d.writeSVG(w, r, presenter.Proportion(d.records, d.selection(r).Site))
}

func (d *Dashboard) handleCorrelationSVG(w http.ResponseWriter, r *http.Request) {
	d.writeSVG(w, r, presenter.Correlation(d.records, d.selection(r)),
		render.WithPayloadDomain(d.domain.Low, d.domain.High))
}

// writeSVG renders spec into a buffer first so a failed render can still answer 500
func (d *Dashboard) writeSVG(w http.ResponseWriter, r *http.Request, spec presenter.Spec, opts ...render.Option) {
	q := r.URL.Query()
	width, _ := strconv.Atoi(q.Get("width"))
	height, _ := strconv.Atoi(q.Get("height"))
	opts = append(opts, render.WithSize(width, height))

	buf := bytes.NewBuffer(nil)
	if err := render.SVG(buf, spec, opts...); err != nil {
		d.log.WithError(err).WithField("kind", spec.Kind).Error("Chart rendering failed")
		http.Error(w, "Failed to render chart", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "image/svg+xml")
	w.Header().Set("Cache-Control", "no-store")
	if _, err := w.Write(buf.Bytes()); err != nil {
		d.log.WithError(err).Error("Failed writing chart response")
	}
}

// handleExport downloads the records matching the current selection as CSV
func (d *Dashboard) handleExport(w http.ResponseWriter, r *http.Request) {
	records := view.Select(d.records, d.selection(r))

	buffer := bytes.NewBuffer(nil)
	csvWriter := csv.NewWriter(buffer)

	if err := csvWriter.Write([]string{
		dataset.ColumnFlightNumber,
		dataset.ColumnLaunchSite,
		dataset.ColumnOutcome,
		dataset.ColumnPayloadMass,
		dataset.ColumnBoosterVersion,
		dataset.ColumnBoosterCategory,
	}); err != nil {
		d.log.WithError(err).Error("Failed writing CSV header")
		http.Error(w, "Failed to generate CSV", http.StatusInternalServerError)
		return
	}

	for _, rec := range records {
		row := []string{
			strconv.Itoa(rec.FlightNumber),
			rec.LaunchSite,
			strconv.Itoa(rec.Class()),
			strconv.FormatFloat(rec.PayloadMassKg, 'f', -1, 64),
			rec.BoosterVersion,
			rec.BoosterVersionCategory,
		}
		if err := csvWriter.Write(row); err != nil {
			d.log.WithError(err).Error("Failed writing CSV data")
			http.Error(w, "Failed to generate CSV", http.StatusInternalServerError)
			return
		}
	}

	csvWriter.Flush()
	if err := csvWriter.Error(); err != nil {
		d.log.WithError(err).Error("Failed flushing CSV data")
		http.Error(w, "Failed to generate CSV", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", "attachment;filename=launches.csv")
	if _, err := w.Write(buffer.Bytes()); err != nil {
		d.log.WithError(err).Error("Failed writing CSV response")
	}
}
