// Package primitives includes builder helpers for Layout.
package primitives

// LayoutBuilder builds a Layout fluently, one position at a time:
//
//	NewLayoutBuilder("loop").
//		At(0).Go(ToAll, RunwayInOutBlock, 1).
//		At(1).Choose(TaxiwayBusyBlock).Go(Term1, Term1Block, 0).Then(0).
//		Build()
//
// Rows are emitted in call order; the end marker is appended by Build.
type LayoutBuilder struct {
	layout Layout
	cur    Position
}

// NewLayoutBuilder creates a builder for an airplane and helicopter
// capable layout whose entry points all start at position 0.
func NewLayoutBuilder(name string) *LayoutBuilder {
	return &LayoutBuilder{
		layout: Layout{
			Name:        name,
			EntryPoints: make([]Position, NumDiagDirections),
			Flags:       AllAircraft,
		},
	}
}

// At selects the position the following rows leave from.
func (b *LayoutBuilder) At(p Position) *LayoutBuilder {
	b.cur = p
	return b
}

// Go adds a transition to next taken with heading h while occupying blk.
func (b *LayoutBuilder) Go(h Heading, blk Block, next Position) *LayoutBuilder {
	b.layout.Rows = append(b.layout.Rows, ElementRow{Position: b.cur, Heading: h, Block: blk, Next: next})
	return b
}

// Choose adds the head of a multiple choice list: the aircraft claims blk
// on arrival and then picks one of the rows that follow.
func (b *LayoutBuilder) Choose(blk Block) *LayoutBuilder {
	return b.Go(TermGroup, blk, 0)
}

// Group adds a terminal group choice for the 0-based group, available
// while blk is free.
func (b *LayoutBuilder) Group(blk Block, group int) *LayoutBuilder {
	return b.Go(TermGroup, blk, Position(group))
}

// Then adds the unconditional fallback transition to next.
func (b *LayoutBuilder) Then(next Position) *LayoutBuilder {
	return b.Go(ToAll, 0, next)
}

// Terminals sets the terminal groups, one count per group.
func (b *LayoutBuilder) Terminals(counts ...int) *LayoutBuilder {
	b.layout.Terminals = groupEncoding(counts)
	return b
}

// Helipads sets the helipad groups, one count per group.
func (b *LayoutBuilder) Helipads(counts ...int) *LayoutBuilder {
	b.layout.Helipads = groupEncoding(counts)
	return b
}

// Entries sets the entry points for aircraft arriving from each side.
func (b *LayoutBuilder) Entries(ne, se, sw, nw Position) *LayoutBuilder {
	b.layout.EntryPoints = []Position{ne, se, sw, nw}
	return b
}

// Flags sets the supported aircraft.
func (b *LayoutBuilder) Flags(f Flags) *LayoutBuilder {
	b.layout.Flags = f
	return b
}

// DeltaZ sets the height offset of the airport.
func (b *LayoutBuilder) DeltaZ(z int8) *LayoutBuilder {
	b.layout.DeltaZ = z
	return b
}

// MovingData sets the movement hints, one per position.
func (b *LayoutBuilder) MovingData(md ...MovingData) *LayoutBuilder {
	b.layout.MovingData = md
	return b
}

// Build terminates the element table and returns the layout. The builder
// may keep being used; later calls do not affect returned layouts.
func (b *LayoutBuilder) Build() Layout {
	l := b.layout
	l.Rows = append(append([]ElementRow(nil), b.layout.Rows...), EndMarker)
	l.EntryPoints = append([]Position(nil), b.layout.EntryPoints...)
	return l
}

func groupEncoding(counts []int) []int {
	if len(counts) == 0 {
		return nil
	}
	return append([]int{len(counts)}, counts...)
}
