package production

import (
	"bytes"
	"encoding/json"
	"fmt"
	"slices"

	"github.com/comalice/airportfta"
	"github.com/comalice/airportfta/internal/primitives"
)

// DefaultVisualizer renders built automata.
type DefaultVisualizer struct{}

// ExportDOT generates Graphviz DOT source for the automaton. Highlighted
// positions are filled.
func (v *DefaultVisualizer) ExportDOT(a *airportfta.Automaton, highlight ...primitives.Position) string {
	var buf bytes.Buffer
	fmt.Fprintf(&buf, `digraph %q {
  rankdir=LR;
  node [shape=box, fontsize=10, style=rounded];
  edge [fontsize=9];
`, a.Name())

	for _, s := range a.States() {
		renderState(&buf, a, s, slices.Contains(highlight, s.Position))
	}

	for _, e := range collectEdges(a) {
		fmt.Fprintf(&buf, "  %q -> %q [label=%q%s];\n", e.From, e.To, e.Label, e.Style)
	}

	eps := a.EntryPoints()
	for dir, p := range eps {
		name := "entry_" + primitives.DiagDirection(dir).String()
		fmt.Fprintf(&buf, "  %q [shape=point];\n", name)
		fmt.Fprintf(&buf, "  %q -> %q [style=dashed];\n", name, nodeID(p))
	}

	buf.WriteString("}\n")
	return buf.String()
}

// Edge is a transition between two nodes of the DOT graph.
type Edge struct {
	From  string
	To    string
	Label string
	Style string
}

func nodeID(p primitives.Position) string {
	return fmt.Sprintf("%d", p)
}

// collectEdges returns one edge per transition. Terminal group choices
// lead to a node per group instead of a position.
func collectEdges(a *airportfta.Automaton) []Edge {
	var edges []Edge
	for _, s := range a.States() {
		for _, c := range s.Choices {
			switch c.Kind {
			case airportfta.KindMultipleChoices:
				// Drawn as part of the node label.
			case airportfta.KindTerminalGroup:
				g, _ := c.Group()
				edges = append(edges, Edge{
					From:  nodeID(s.Position),
					To:    fmt.Sprintf("group_%d", g),
					Label: c.Block.String(),
					Style: " style=dotted",
				})
			default:
				edges = append(edges, Edge{
					From:  nodeID(s.Position),
					To:    nodeID(c.Next),
					Label: c.Heading.String() + "\n" + c.Block.String(),
				})
			}
		}
	}
	return edges
}

func renderState(buf *bytes.Buffer, a *airportfta.Automaton, s airportfta.State, active bool) {
	label := nodeID(s.Position)
	if md, ok := a.MovingData(s.Position); ok {
		label += fmt.Sprintf("\n(%d,%d)", md.X, md.Y)
	}
	if first := s.First(); first.Kind == airportfta.KindMultipleChoices {
		label += "\nchoose " + first.Block.String()
	}
	style := ""
	if active {
		style = ` style="rounded,filled" fillcolor=lightgreen`
	}
	fmt.Fprintf(buf, "  %q [label=%q%s];\n", nodeID(s.Position), label, style)
}

type choiceJSON struct {
	Heading string `json:"heading"`
	Kind    string `json:"kind"`
	Block   string `json:"block"`
	Next    int    `json:"next"`
}

type stateJSON struct {
	Position   int                    `json:"position"`
	MovingData *primitives.MovingData `json:"moving_data,omitempty"`
	Choices    []choiceJSON           `json:"choices"`
}

type automatonJSON struct {
	Name        string         `json:"name"`
	Flags       string         `json:"flags"`
	DeltaZ      int8           `json:"delta_z"`
	Terminals   []int          `json:"terminals,omitempty"`
	Helipads    []int          `json:"helipads,omitempty"`
	EntryPoints map[string]int `json:"entry_points"`
	States      []stateJSON    `json:"states"`
}

// ExportJSON describes the automaton with readable headings, kinds and
// blocks.
func (v *DefaultVisualizer) ExportJSON(a *airportfta.Automaton) ([]byte, error) {
	out := automatonJSON{
		Name:        a.Name(),
		Flags:       a.Flags().String(),
		DeltaZ:      a.DeltaZ(),
		Terminals:   a.Terminals(),
		Helipads:    a.Helipads(),
		EntryPoints: make(map[string]int),
	}
	for dir, p := range a.EntryPoints() {
		out.EntryPoints[primitives.DiagDirection(dir).String()] = int(p)
	}
	for _, s := range a.States() {
		sj := stateJSON{Position: int(s.Position)}
		if md, ok := a.MovingData(s.Position); ok {
			sj.MovingData = &md
		}
		for _, c := range s.Choices {
			sj.Choices = append(sj.Choices, choiceJSON{
				Heading: c.Heading.String(),
				Kind:    c.Kind.String(),
				Block:   c.Block.String(),
				Next:    int(c.Next),
			})
		}
		out.States = append(out.States, sj)
	}
	return json.MarshalIndent(out, "", "  ")
}
