// Package launchboard is an interactive dashboard over historical launch
// records: a site selector and a payload range selector drive a success
// proportion chart and a payload/outcome correlation chart.
//
// The building blocks live under pkg/: dataset loads the records, view
// filters them for a selection, presenter turns a filtered set into chart
// models, render draws those as SVG and plot serves the dashboard.
package launchboard

// Version is reported by the CLI.
const Version = "1.0.0"
