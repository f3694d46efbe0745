// Package render draws presenter specs as SVG using go-chart.
package render

import (
	"errors"
	"fmt"
	"io"

	"github.com/raykavin/launchboard/pkg/presenter"
	"github.com/wcharczuk/go-chart/v2"
)

var ErrUnknownKind = errors.New("unknown chart kind")

const (
	defaultWidth  = 800
	defaultHeight = 480
)

type options struct {
	width, height int
	payloadMin    float64
	payloadMax    float64
}

// Option customises rendering.
type Option func(*options)

// WithSize sets the canvas size in pixels.
func WithSize(width, height int) Option {
	return func(o *options) {
		if width > 0 {
			o.width = width
		}
		if height > 0 {
			o.height = height
		}
	}
}

// WithPayloadDomain fixes the scatter x axis to [min, max] so the axis does not
// jump as the range control moves.
func WithPayloadDomain(min, max float64) Option {
	return func(o *options) {
		if min < max {
			o.payloadMin, o.payloadMax = min, max
		}
	}
}

// SVG writes spec to w. Specs without data produce a titled placeholder.
func SVG(w io.Writer, spec presenter.Spec, opts ...Option) error {
	o := options{width: defaultWidth, height: defaultHeight}
	for _, opt := range opts {
		opt(&o)
	}

	if spec.Empty() {
		return placeholder(w, spec.Title, o)
	}

	switch spec.Kind {
	case presenter.KindPie:
		return pie(w, spec, o)
	case presenter.KindScatter:
		return scatter(w, spec, o)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownKind, spec.Kind)
	}
}

// placeholder draws the title and a "No data" notice
func placeholder(w io.Writer, title string, o options) error {
	r, err := chart.SVG(o.width, o.height)
	if err != nil {
		return err
	}

	font, err := chart.GetDefaultFont()
	if err != nil {
		return fmt.Errorf("load font: %w", err)
	}

	r.SetFont(font)
	r.SetFontColor(chart.ColorBlack)

	r.SetFontSize(chart.DefaultTitleFontSize)
	tb := r.MeasureText(title)
	r.Text(title, (o.width-tb.Width())/2, chart.DefaultTitleTop+tb.Height())

	const notice = "No data"
	r.SetFontSize(chart.DefaultFontSize)
	nb := r.MeasureText(notice)
	r.Text(notice, (o.width-nb.Width())/2, o.height/2)

	return r.Save(w)
}
