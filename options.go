package airportfta

import (
	"fmt"

	"github.com/brunoga/deep"

	"github.com/comalice/airportfta/internal/log"
)

// Option configures a Registry.
type Option func(r *Registry)

// WithLogger sets the logger used while building airports.
func WithLogger(lg *log.Logger) Option {
	return func(r *Registry) {
		r.lg = lg
	}
}

// WithLayout replaces the built-in layout of t. The layout is copied, so
// the caller may keep modifying its own value.
func WithLayout(t AirportType, l Layout) Option {
	return func(r *Registry) {
		if int(t) >= NumAirportTypes {
			r.optErr = fmt.Errorf("%s: unknown airport type", t)
			return
		}
		c, err := deep.Copy(l)
		if err != nil {
			r.optErr = fmt.Errorf("%s: copy layout: %w", t, err)
			return
		}
		r.overrides[t] = c
	}
}

// WithNeverExpire keeps airports available once they have been introduced.
func WithNeverExpire(b bool) Option {
	return func(r *Registry) {
		r.neverExpire = b
	}
}

// WithSpec replaces the building rules of t.
func WithSpec(t AirportType, s AirportSpec) Option {
	return func(r *Registry) {
		if int(t) >= NumAirportTypes {
			r.optErr = fmt.Errorf("%s: unknown airport type", t)
			return
		}
		r.specs[t] = s
	}
}
