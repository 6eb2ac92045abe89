// SPDX-License-Identifier: MIT

package electrode

import (
	"fmt"
)

// Electrode is one boundary condition placed on the grid.
// A Point electrode pins (X,Y). A Row electrode pins every node of row Y
// and ignores X; a Column electrode pins every node of column X and
// ignores Y.
type Electrode struct {
	Kind  Kind    `yaml:"kind"`
	X     int     `yaml:"x"`
	Y     int     `yaml:"y"`
	Value float64 `yaml:"value"`
}

// Node is a grid coordinate pinned by an electrode.
type Node struct {
	X, Y int
}

// Pinner is the mutation surface an electrode needs from a field.
// *potential.Field satisfies it.
type Pinner interface {
	Width() int
	Height() int
	SetFixedPoint(x, y int, value float64) error
}

// String implements fmt.Stringer.
func (e Electrode) String() string {
	switch e.Kind {
	case Row:
		return fmt.Sprintf("row y=%d @ %g", e.Y, e.Value)
	case Column:
		return fmt.Sprintf("column x=%d @ %g", e.X, e.Value)
	default:
		return fmt.Sprintf("point (%d,%d) @ %g", e.X, e.Y, e.Value)
	}
}

// Nodes lists the nodes e pins on a grid whose largest indices are w and h.
// Row electrodes span x = 0..w, column electrodes span y = 0..h. The
// coordinates are not validated here; see Validate.
// Complexity: O(w) or O(h).
func (e Electrode) Nodes(w, h int) []Node {
	switch e.Kind {
	case Row:
		out := make([]Node, 0, w+1)
		for x := 0; x <= w; x++ {
			out = append(out, Node{X: x, Y: e.Y})
		}
		return out
	case Column:
		out := make([]Node, 0, h+1)
		for y := 0; y <= h; y++ {
			out = append(out, Node{X: e.X, Y: y})
		}
		return out
	default:
		return []Node{{X: e.X, Y: e.Y}}
	}
}

// Validate reports ErrOutOfGrid when the coordinates e uses fall outside
// [0,w]×[0,h], and ErrUnknownKind for an invalid Kind.
// Complexity: O(1).
func (e Electrode) Validate(w, h int) error {
	if !e.Kind.valid() {
		return fmt.Errorf("%w: %d", ErrUnknownKind, int(e.Kind))
	}
	xOK := e.X >= 0 && e.X <= w
	yOK := e.Y >= 0 && e.Y <= h
	switch e.Kind {
	case Row:
		xOK = true
	case Column:
		yOK = true
	}
	if !xOK || !yOK {
		return fmt.Errorf("%s on %dx%d grid: %w", e, w, h, ErrOutOfGrid)
	}

	return nil
}

// Clamp returns e with its coordinates moved into [0,w]×[0,h]. This is what
// happens to electrodes when the board is shrunk under them.
// Complexity: O(1).
func (e Electrode) Clamp(w, h int) Electrode {
	e.X = clampInt(e.X, 0, w)
	e.Y = clampInt(e.Y, 0, h)

	return e
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}

	return v
}

// Place pins every node of every electrode on p, in declaration order, so
// later electrodes win where they overlap earlier ones.
// Stage 1 (Validate): each electrode must fit p's grid.
// Stage 2 (Execute): one SetFixedPoint call per node.
// Returns the first error wrapped with the electrode index; p may already
// hold the pins of earlier electrodes.
// Complexity: O(Σ nodes).
func Place(p Pinner, electrodes ...Electrode) error {
	w, h := p.Width(), p.Height()
	for i, e := range electrodes {
		if err := e.Validate(w, h); err != nil {
			return fmt.Errorf("electrode[%d]: %w", i, err)
		}
		for _, n := range e.Nodes(w, h) {
			if err := p.SetFixedPoint(n.X, n.Y, e.Value); err != nil {
				return fmt.Errorf("electrode[%d] %s: %w", i, e, err)
			}
		}
	}

	return nil
}
