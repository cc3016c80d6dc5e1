// Package benchmarks provides shared helpers for benchmark tests.
package benchmarks

import (
	"fmt"

	"github.com/comalice/airportfta/internal/primitives"
	"gopkg.in/yaml.v3"
)

// GenRingLayout creates a layout of n positions, each moving
// unconditionally to the next and the last one back to 0.
func GenRingLayout(n int) primitives.Layout {
	n = clamp(n)
	b := primitives.NewLayoutBuilder(fmt.Sprintf("ring_%d", n))
	for i := 0; i < n; i++ {
		b.At(primitives.Position(i)).Go(primitives.ToAll, primitives.Block(1)<<(i%32), primitives.Position((i+1)%n))
	}
	return b.Build()
}

// GenWideLayout creates a layout whose first position chooses between n-1
// alternatives, one per remaining position, all of which lead back to 0.
// The table has two rows per position, so n is capped at 120.
func GenWideLayout(n int) primitives.Layout {
	n = min(clamp(n), 120)
	b := primitives.NewLayoutBuilder(fmt.Sprintf("wide_%d", n))
	b.At(0).Choose(primitives.TaxiwayBusyBlock)
	for i := 1; i < n; i++ {
		h := primitives.Heading(1 + (i-1)%int(primitives.MaxHeadings))
		b.Go(h, primitives.TaxiwayBusyBlock, primitives.Position(i))
	}
	b.Then(0)
	for i := 1; i < n; i++ {
		b.At(primitives.Position(i)).Go(primitives.ToAll, 0, 0)
	}
	return b.Build()
}

// GenLayoutYAML generates YAML bytes for a ring layout of the given size.
func GenLayoutYAML(n int) []byte {
	data, err := yaml.Marshal(GenRingLayout(n))
	if err != nil {
		panic(err)
	}
	return data
}

func clamp(n int) int {
	if n < 2 {
		return 2
	}
	if n > 200 {
		return 200
	}
	return n
}
