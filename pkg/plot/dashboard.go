// Package plot serves the interactive launch dashboard over HTTP.
package plot

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"html/template"
	"net/http"
	"time"

	"github.com/evanw/esbuild/pkg/api"
	"github.com/gorilla/websocket"
	"github.com/raykavin/launchboard/pkg/dataset"
	"github.com/raykavin/launchboard/pkg/logger"
	"github.com/raykavin/launchboard/pkg/view"
)

// Static assets embedded in the binary
var (
	//go:embed assets
	staticFiles embed.FS
)

const (
	DefaultTitle = "SpaceX Launch Records Dashboard"
	DefaultPort  = 8050
)

// Dashboard renders the launch dataset behind a site selector and a payload
// range selector. It holds no per-request state; every handler recomputes its
// output from the immutable dataset and the request's selection.
type Dashboard struct {
	records  []dataset.Record
	summary  dataset.Summary
	controls Controls
	domain   view.Range

	port            int
	debug           bool
	title           string
	slider          Slider
	readTimeout     time.Duration
	writeTimeout    time.Duration
	shutdownTimeout time.Duration

	scriptContent string
	indexHTML     *template.Template
	upgrader      websocket.Upgrader
	log           logger.Logger
}

// Option defines a function type for configuring a Dashboard instance
type Option func(*Dashboard)

// WithPort sets the HTTP server port
func WithPort(port int) Option {
	return func(d *Dashboard) {
		d.port = port
	}
}

// WithDebug enables debug mode (disables minification)
func WithDebug() Option {
	return func(d *Dashboard) {
		d.debug = true
	}
}

// WithTitle sets the page heading
func WithTitle(title string) Option {
	return func(d *Dashboard) {
		d.title = title
	}
}

// WithRangeControl sets the payload slider span and step
func WithRangeControl(min, max, step float64) Option {
	return func(d *Dashboard) {
		d.slider = NewSlider(min, max, step)
	}
}

// WithTimeouts sets the HTTP read, write and graceful shutdown timeouts
func WithTimeouts(read, write, shutdown time.Duration) Option {
	return func(d *Dashboard) {
		d.readTimeout = read
		d.writeTimeout = write
		d.shutdownTimeout = shutdown
	}
}

// NewDashboard creates a dashboard over ds with the provided options
func NewDashboard(ds *dataset.Dataset, log logger.Logger, options ...Option) (*Dashboard, error) {
	d := &Dashboard{
		records:         ds.Records(),
		summary:         ds.Summary(),
		port:            DefaultPort,
		title:           DefaultTitle,
		slider:          NewSlider(0, 10000, 1000),
		readTimeout:     15 * time.Second,
		writeTimeout:    30 * time.Second,
		shutdownTimeout: 10 * time.Second,
		log:             log,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
		},
	}

	// Apply all options
	for _, option := range options {
		option(d)
	}

	d.domain = view.Domain(d.slider.Min, d.slider.Max, d.summary)
	d.controls = newControls(d.title, d.summary, d.slider, d.domain)

	// Parse dashboard HTML template
	var err error
	d.indexHTML, err = template.ParseFS(staticFiles, "assets/dashboard.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse dashboard template: %w", err)
	}

	// Read and transpile dashboard JavaScript
	script, err := staticFiles.ReadFile("assets/dashboard.js")
	if err != nil {
		return nil, fmt.Errorf("failed to read dashboard.js: %w", err)
	}

	result := api.Transform(string(script), api.TransformOptions{
		Loader:            api.LoaderJS,
		Target:            api.ES2015,
		MinifySyntax:      !d.debug,
		MinifyIdentifiers: !d.debug,
		MinifyWhitespace:  !d.debug,
	})
	if len(result.Errors) > 0 {
		return nil, fmt.Errorf("dashboard script failed with: %v", result.Errors)
	}
	d.scriptContent = string(result.Code)

	return d, nil
}

// Controls returns the control definitions rendered on the page
func (d *Dashboard) Controls() Controls {
	return d.controls
}

// Port returns the configured HTTP port
func (d *Dashboard) Port() int {
	return d.port
}

// RegisterHandlers registers all dashboard routes on server
func (d *Dashboard) RegisterHandlers(server HTTPServer) {
	server.HandleStatic("/assets/", http.FS(staticFiles))
	server.Handle(http.MethodGet, "/assets/dashboard.js", d.handleScript)

	server.Handle(http.MethodGet, "/health", d.handleHealth)
	server.Handle(http.MethodGet, "/api/controls", d.handleControls)
	server.Handle(http.MethodGet, "/api/proportion", d.handleProportion)
	server.Handle(http.MethodGet, "/api/correlation", d.handleCorrelation)
	server.Handle(http.MethodGet, "/chart/proportion.svg", d.handleProportionSVG)
	server.Handle(http.MethodGet, "/chart/correlation.svg", d.handleCorrelationSVG)
	server.Handle(http.MethodGet, "/export.csv", d.handleExport)
	server.Handle(http.MethodGet, "/ws", d.handleWebSocket)
	server.Handle(http.MethodGet, "/", d.handleIndex)
}

// Handler returns the dashboard routes mounted on a fresh chi router
func (d *Dashboard) Handler() http.Handler {
	server := NewChiServer(d.log)
	d.RegisterHandlers(server)
	return server.Handler()
}

// Start serves the dashboard until ctx is cancelled, then shuts down gracefully
func (d *Dashboard) Start(ctx context.Context) error {
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", d.port),
		Handler:      d.Handler(),
		ReadTimeout:  d.readTimeout,
		WriteTimeout: d.writeTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		d.log.Infof("Dashboard available at http://localhost:%d", d.port)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	d.log.Info("Shutting down dashboard")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), d.shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
