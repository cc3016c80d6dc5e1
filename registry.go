package airportfta

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/brunoga/deep"

	"github.com/comalice/airportfta/internal/layouts"
	"github.com/comalice/airportfta/internal/log"
	"github.com/comalice/airportfta/internal/util"
)

// AirportType enumerates the built-in airports.
type AirportType uint8

const (
	Country AirportType = iota
	City
	Heliport
	Metropolitan
	International
	Commuter
	Helidepot
	Intercontinental
	Helistation
	Oilrig
	Dummy

	NumAirportTypes = int(Dummy) + 1
)

// AllAirportTypes lists every airport type in enumeration order.
var AllAirportTypes = []AirportType{
	Country, City, Heliport, Metropolitan, International, Commuter,
	Helidepot, Intercontinental, Helistation, Oilrig, Dummy,
}

// String returns the name of the type's layout.
func (t AirportType) String() string {
	if int(t) >= NumAirportTypes {
		return fmt.Sprintf("AirportType(%d)", uint8(t))
	}
	return defaultSpecs[t].Name
}

// ParseAirportType is the inverse of AirportType.String.
func ParseAirportType(s string) (AirportType, error) {
	for _, t := range AllAirportTypes {
		if t.String() == s {
			return t, nil
		}
	}
	return 0, fmt.Errorf("%s: unknown airport type", s)
}

// Registry owns one Automaton per airport type. Initialize builds them all
// up front; afterwards lookups only read and may run concurrently.
// Initialize and Teardown must not overlap with lookups.
type Registry struct {
	lg          *log.Logger
	overrides   map[AirportType]Layout
	neverExpire bool
	optErr      error

	specs       [NumAirportTypes]AirportSpec
	automata    [NumAirportTypes]*Automaton
	initialized bool
}

// NewRegistry returns an empty registry; call Initialize before use.
func NewRegistry(opts ...Option) *Registry {
	r := &Registry{
		overrides: make(map[AirportType]Layout),
		specs:     defaultSpecs,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// MustInitialize creates and initializes a registry, logging and
// panicking if any layout is broken. Built-in layouts are part of the
// program, so there is nothing to recover from.
func MustInitialize(opts ...Option) *Registry {
	r := NewRegistry(opts...)
	if err := r.Initialize(); err != nil {
		r.lg.Errorf("airport initialization: %v", err)
		panic(err)
	}
	return r
}

// Layout returns a copy of the layout t is built from: an override given
// with WithLayout, or else the built-in one.
func (r *Registry) Layout(t AirportType) (Layout, error) {
	if l, ok := r.overrides[t]; ok {
		c, err := deep.Copy(l)
		if err != nil {
			return Layout{}, fmt.Errorf("%s: copy layout: %w", t, err)
		}
		return c, nil
	}
	l, ok := layouts.Get(t.String())
	if !ok {
		return Layout{}, fmt.Errorf("%s: no layout", t)
	}
	return l, nil
}

// Initialize builds and validates the automaton of every airport type.
// On error the registry stays uninitialized.
func (r *Registry) Initialize() error {
	if r.initialized {
		return ErrAlreadyInitialized
	}
	if r.optErr != nil {
		return r.optErr
	}

	var built [NumAirportTypes]*Automaton
	for _, t := range AllAirportTypes {
		a, err := r.build(t)
		if err != nil {
			return err
		}
		built[t] = a
	}

	r.automata = built
	r.initialized = true
	r.lg.Info("airports initialized", slog.Int("types", NumAirportTypes))
	return nil
}

func (r *Registry) build(t AirportType) (*Automaton, error) {
	l, err := r.Layout(t)
	if err != nil {
		return nil, err
	}
	a, err := NewAutomaton(l)
	if err != nil {
		var verr *ValidationError
		if errors.As(err, &verr) {
			r.lg.Error("airport validation failed",
				slog.String("airport", t.String()),
				slog.Int("element", verr.Index))
		} else {
			r.lg.Error("airport construction failed",
				slog.String("airport", t.String()),
				slog.Any("error", err))
		}
		return nil, err
	}
	ep := a.EntryPoints()
	r.lg.Debug("built airport",
		slog.String("airport", t.String()),
		slog.Int("states", a.NumStates()),
		slog.Int("transitions", a.NumTransitions()),
		slog.Int("terminals", a.NumTerminals()),
		slog.Int("terminal_groups", a.NumTerminalGroups()),
		slog.Int("helipads", a.NumHelipads()),
		slog.Int("helipad_groups", a.NumHelipadGroups()),
		slog.Any("entries", ep[:]))
	return a, nil
}

// Teardown releases every automaton. Lookups must have stopped.
func (r *Registry) Teardown() error {
	if !r.initialized {
		return ErrNotInitialized
	}
	r.automata = [NumAirportTypes]*Automaton{}
	r.initialized = false
	r.lg.Debug("airports torn down")
	return nil
}

// Initialized reports whether Initialize has succeeded since the last
// Teardown.
func (r *Registry) Initialized() bool { return r.initialized }

// Get returns the automaton of t.
func (r *Registry) Get(t AirportType) (*Automaton, error) {
	if !r.initialized {
		return nil, ErrNotInitialized
	}
	if int(t) >= NumAirportTypes {
		return nil, fmt.Errorf("%s: unknown airport type", t)
	}
	return r.automata[t], nil
}

// Lookup returns the automaton of t. The set of types is closed, so an
// unknown type or a lookup before Initialize is a programming error and
// panics.
func (r *Registry) Lookup(t AirportType) *Automaton {
	a, err := r.Get(t)
	if err != nil {
		panic(fmt.Sprintf("airportfta: lookup %s: %v", t, err))
	}
	return a
}

// Spec returns the building rules of t.
func (r *Registry) Spec(t AirportType) (AirportSpec, bool) {
	if int(t) >= NumAirportTypes {
		return AirportSpec{}, false
	}
	return r.specs[t], true
}

// Available returns the types that can be built in year.
func (r *Registry) Available(year int) []AirportType {
	var types []AirportType
	for _, t := range AllAirportTypes {
		if r.specs[t].IsAvailable(year, r.neverExpire) {
			types = append(types, t)
		}
	}
	return types
}

// Lint builds every airport independently and records each failure in e,
// so that all broken layouts are reported at once. The registry itself is
// not changed.
func (r *Registry) Lint(e *util.ErrorLogger) {
	if r.optErr != nil {
		e.Error(r.optErr)
	}
	for _, t := range AllAirportTypes {
		e.Push(t.String())
		r.lintType(t, e)
		e.Pop()
	}
}

func (r *Registry) lintType(t AirportType, e *util.ErrorLogger) {
	spec := r.specs[t]
	if spec.MinYear > spec.MaxYear {
		e.ErrorString("min year %d after max year %d", spec.MinYear, spec.MaxYear)
	}

	l, err := r.Layout(t)
	if err != nil {
		e.Error(err)
		return
	}
	a, err := NewAutomaton(l)
	if err != nil {
		e.Error(err)
		return
	}

	if len(l.MovingData) == 0 {
		e.ErrorString("no moving data")
	}
	for _, s := range a.States() {
		for _, c := range s.Choices {
			if n := c.Heading.TerminalNumber(); n > a.NumTerminals() {
				e.ErrorString("position %d: %s but only %d terminals", s.Position, c.Heading, a.NumTerminals())
			}
			if n := c.Heading.HelipadNumber(); n > a.NumHelipads() {
				e.ErrorString("position %d: %s but only %d helipads", s.Position, c.Heading, a.NumHelipads())
			}
		}
	}
}
