// Package benchmarks provides performance benchmarks for automaton construction.
package benchmarks

import (
	"fmt"
	"testing"

	"github.com/comalice/airportfta"
	"github.com/comalice/airportfta/internal/layouts"
)

func BenchmarkNewAutomatonBuiltin(b *testing.B) {
	for _, name := range layouts.Names() {
		l, _ := layouts.Get(name)
		b.Run(name, func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				if _, err := airportfta.NewAutomaton(l); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

func BenchmarkNewAutomatonRing(b *testing.B) {
	for _, n := range []int{10, 50, 200} {
		b.Run(fmt.Sprintf("positions=%d", n), func(b *testing.B) {
			l := GenRingLayout(n)
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				if _, err := airportfta.NewAutomaton(l); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

func BenchmarkCountDistinctPositions(b *testing.B) {
	l := GenRingLayout(200)
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if _, err := airportfta.CountDistinctPositions(l.Rows); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkValidateStates(b *testing.B) {
	for _, gen := range []struct {
		name string
		fn   func(int) airportfta.Layout
	}{
		{"ring", GenRingLayout},
		{"wide", GenWideLayout},
	} {
		b.Run(gen.name, func(b *testing.B) {
			l := gen.fn(200)
			n, err := airportfta.CountDistinctPositions(l.Rows)
			if err != nil {
				b.Fatal(err)
			}
			states, err := airportfta.BuildStates(l.Rows, n)
			if err != nil {
				b.Fatal(err)
			}
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				if got := airportfta.ValidateStates(states, nil); got != airportfta.MaxElements {
					b.Fatalf("validation failed at %d", got)
				}
			}
		})
	}
}

func BenchmarkRegistryInitialize(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		r := airportfta.NewRegistry()
		if err := r.Initialize(); err != nil {
			b.Fatal(err)
		}
	}
}
