package primitives

import (
	"fmt"
	"strconv"
	"strings"
)

// Position names one slot (hangar, apron, taxiway, runway segment, holding
// point in the air) of an airport layout.
type Position uint8

// MarshalJSON writes p as a number; without it encoding/json would turn
// []Position into a base64 string.
func (p Position) MarshalJSON() ([]byte, error) {
	return strconv.AppendUint(nil, uint64(p), 10), nil
}

// Heading is the meaning of a transition out of a position: the target the
// aircraft must have for the transition to apply, or an action it performs.
type Heading uint8

const (
	ToAll Heading = iota // no choice, always taken
	Hangar
	Term1
	Term2
	Term3
	Term4
	Term5
	Term6
	Helipad1
	Helipad2
	Takeoff
	StartTakeoff
	EndTakeoff
	HeliTakeoff
	Flying
	Landing
	EndLanding
	HeliLanding
	HeliEndLanding
	Term7
	Term8
	Helipad3

	MaxHeadings = Helipad3

	// TermGroup marks either the head of a multiple choice list (first row
	// of a position) or a terminal group choice (any later row, with the
	// group number stored in the row's next position).
	TermGroup Heading = 255
)

const (
	// MaxElements bounds the number of positions of one airport. A row with
	// this Position terminates an element table.
	MaxElements = 255
	// MaxTerminals is the largest number of terminals an airport may have.
	MaxTerminals = 8
	// MaxHelipads is the largest number of helipads an airport may have.
	MaxHelipads = 3
)

var headingNames = [...]string{
	ToAll:          "to-all",
	Hangar:         "hangar",
	Term1:          "term1",
	Term2:          "term2",
	Term3:          "term3",
	Term4:          "term4",
	Term5:          "term5",
	Term6:          "term6",
	Helipad1:       "helipad1",
	Helipad2:       "helipad2",
	Takeoff:        "takeoff",
	StartTakeoff:   "start-takeoff",
	EndTakeoff:     "end-takeoff",
	HeliTakeoff:    "heli-takeoff",
	Flying:         "flying",
	Landing:        "landing",
	EndLanding:     "end-landing",
	HeliLanding:    "heli-landing",
	HeliEndLanding: "heli-end-landing",
	Term7:          "term7",
	Term8:          "term8",
	Helipad3:       "helipad3",
}

func (h Heading) String() string {
	if h <= MaxHeadings {
		return headingNames[h]
	}
	if h == TermGroup {
		return "term-group"
	}
	return fmt.Sprintf("heading(%d)", uint8(h))
}

// IsTerminal reports whether h asks for one of the terminals.
func (h Heading) IsTerminal() bool {
	return (h >= Term1 && h <= Term6) || h == Term7 || h == Term8
}

// IsHelipad reports whether h asks for one of the helipads.
func (h Heading) IsHelipad() bool {
	return h == Helipad1 || h == Helipad2 || h == Helipad3
}

// TerminalNumber returns the 1-based terminal h asks for, or 0.
func (h Heading) TerminalNumber() int {
	switch {
	case h >= Term1 && h <= Term6:
		return int(h-Term1) + 1
	case h == Term7:
		return 7
	case h == Term8:
		return 8
	}
	return 0
}

// HelipadNumber returns the 1-based helipad h asks for, or 0.
func (h Heading) HelipadNumber() int {
	switch h {
	case Helipad1:
		return 1
	case Helipad2:
		return 2
	case Helipad3:
		return 3
	}
	return 0
}

// Block is a set of shared airport resources (taxiway and runway segments,
// terminals) occupied by an aircraft while it takes a transition.
type Block uint64

const (
	Term1Block Block = 1 << iota
	Term2Block
	Term3Block
	Term4Block
	Term5Block
	Term6Block
	Helipad1Block
	Helipad2Block
	RunwayInOutBlock
	RunwayOutBlock
	TaxiwayBusyBlock
	OutWayBlock
	InWayBlock
	AirportEntranceBlock
	TermGroup1Block
	TermGroup2Block
	Hangar2AreaBlock
	TermGroup2Enter1Block
	TermGroup2Enter2Block
	TermGroup2Exit1Block
	TermGroup2Exit2Block
	PreHelipadBlock
	CheckpointBlock
	RunwayOut2Block
	Helipad3Block
	HelipadGroupBlock
	OutWay2Block
	InWay2Block
	RunwayIn2Block
	Term7Block
	Term8Block
	NothingBlock

	// AirportBusyBlock is the single runway of the small layouts, used both
	// for landing and departing.
	AirportBusyBlock = RunwayInOutBlock
	RunwayInBlock    = RunwayInOutBlock

	AirportClosedBlock Block = 1 << 63
)

var blockNames = map[Block]string{
	Term1Block:            "term1",
	Term2Block:            "term2",
	Term3Block:            "term3",
	Term4Block:            "term4",
	Term5Block:            "term5",
	Term6Block:            "term6",
	Helipad1Block:         "helipad1",
	Helipad2Block:         "helipad2",
	RunwayInOutBlock:      "runway-in-out",
	RunwayOutBlock:        "runway-out",
	TaxiwayBusyBlock:      "taxiway-busy",
	OutWayBlock:           "out-way",
	InWayBlock:            "in-way",
	AirportEntranceBlock:  "airport-entrance",
	TermGroup1Block:       "term-group1",
	TermGroup2Block:       "term-group2",
	Hangar2AreaBlock:      "hangar2-area",
	TermGroup2Enter1Block: "term-group2-enter1",
	TermGroup2Enter2Block: "term-group2-enter2",
	TermGroup2Exit1Block:  "term-group2-exit1",
	TermGroup2Exit2Block:  "term-group2-exit2",
	PreHelipadBlock:       "pre-helipad",
	CheckpointBlock:       "checkpoint",
	RunwayOut2Block:       "runway-out2",
	Helipad3Block:         "helipad3",
	HelipadGroupBlock:     "helipad-group",
	OutWay2Block:          "out-way2",
	InWay2Block:           "in-way2",
	RunwayIn2Block:        "runway-in2",
	Term7Block:            "term7",
	Term8Block:            "term8",
	NothingBlock:          "nothing",
	AirportClosedBlock:    "airport-closed",
}

// Overlaps reports whether b and o share at least one resource.
// NothingBlock never overlaps anything, itself included.
func (b Block) Overlaps(o Block) bool {
	return (b&^NothingBlock)&(o&^NothingBlock) != 0
}

// Has reports whether all resources of o are in b.
func (b Block) Has(o Block) bool {
	return b&o == o
}

func (b Block) String() string {
	if b == 0 {
		return "none"
	}
	var parts []string
	for bit := 0; bit < 64; bit++ {
		m := Block(1) << bit
		if b&m == 0 {
			continue
		}
		if n, ok := blockNames[m]; ok {
			parts = append(parts, n)
		} else {
			parts = append(parts, fmt.Sprintf("bit%d", bit))
		}
	}
	return strings.Join(parts, "|")
}

// ElementRow is one row of an airport element table: from Position, with
// Heading, occupying Block, go to Next. Several rows for one position are
// alternative transitions and must be adjacent.
type ElementRow struct {
	Position Position `json:"position" yaml:"position" msgpack:"p"`
	Heading  Heading  `json:"heading" yaml:"heading" msgpack:"h"`
	Block    Block    `json:"block" yaml:"block" msgpack:"b"`
	Next     Position `json:"next" yaml:"next" msgpack:"n"`
}

// EndMarker terminates every element table.
var EndMarker = ElementRow{Position: MaxElements}

// IsEndMarker reports whether r terminates a table.
func (r ElementRow) IsEndMarker() bool {
	return r.Position == MaxElements
}
