// Package benchmarks provides memory footprint benchmarks.
package benchmarks

import (
	"fmt"
	"runtime"
	"testing"

	"github.com/comalice/airportfta"
	"gopkg.in/yaml.v3"
)

func BenchmarkMemoryFootprint(b *testing.B) {
	for _, n := range []int{10, 100, 200} {
		b.Run(fmt.Sprintf("positions=%d", n), func(b *testing.B) {
			l := GenRingLayout(n)
			numAutomata := 100
			var before runtime.MemStats
			runtime.ReadMemStats(&before)
			automata := make([]*airportfta.Automaton, numAutomata)
			for i := range automata {
				a, err := airportfta.NewAutomaton(l)
				if err != nil {
					b.Fatal(err)
				}
				automata[i] = a
			}
			runtime.GC()
			var after runtime.MemStats
			runtime.ReadMemStats(&after)
			perAutomaton := (after.TotalAlloc - before.TotalAlloc) / uint64(numAutomata)
			b.ReportMetric(float64(perAutomaton)/1024, "KB/automaton")
			runtime.KeepAlive(automata)
		})
	}
}

func BenchmarkLayoutUnmarshalYAML(b *testing.B) {
	data := GenLayoutYAML(200)
	b.SetBytes(int64(len(data)))
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		var l airportfta.Layout
		if err := yaml.Unmarshal(data, &l); err != nil {
			b.Fatal(err)
		}
	}
}
