// Package layouts holds the compiled-in airport layouts: element tables,
// movement hints, terminal and helipad groups and entry points of every
// built-in airport type.
package layouts

import (
	"slices"

	"github.com/comalice/airportfta/internal/primitives"
)

var builtin = map[string]func() primitives.Layout{
	"dummy":            dummy,
	"country":          country,
	"commuter":         commuter,
	"city":             city,
	"metropolitan":     metropolitan,
	"international":    international,
	"intercontinental": intercontinental,
	"heliport":         heliport,
	"oilrig":           oilrig,
	"helidepot":        helidepot,
	"helistation":      helistation,
}

// Get returns a copy of the built-in layout with the given name; callers
// may modify it freely.
func Get(name string) (primitives.Layout, bool) {
	f, ok := builtin[name]
	if !ok {
		return primitives.Layout{}, false
	}
	l := f()
	l.Rows = slices.Clone(l.Rows)
	l.MovingData = slices.Clone(l.MovingData)
	l.Terminals = slices.Clone(l.Terminals)
	l.Helipads = slices.Clone(l.Helipads)
	l.EntryPoints = slices.Clone(l.EntryPoints)
	return l, true
}

// Names returns the names of all built-in layouts, sorted.
func Names() []string {
	names := make([]string, 0, len(builtin))
	for n := range builtin {
		names = append(names, n)
	}
	slices.Sort(names)
	return names
}
