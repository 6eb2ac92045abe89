// SPDX-License-Identifier: MIT

package probe

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/google/uuid"
)

// Querier reads the potential at a continuous point.
// *potential.Field satisfies it.
type Querier interface {
	GetPotential(x, y float64) float64
}

// Entry is one measurement row.
type Entry struct {
	ID   uuid.UUID // stable identity for Delete, independent of row order
	X, Y float64   // field-space coordinates
	V    float64   // potential measured at (X, Y)
}

// Table is an ordered list of measurements taken from a field.
// The zero value is an empty table ready to use. Not safe for concurrent
// mutation.
type Table struct {
	entries []Entry
}

// Add measures q at (x,y), appends the row and returns it.
// Complexity: O(1) amortized plus one query.
func (t *Table) Add(q Querier, x, y float64) Entry {
	e := Entry{
		ID: uuid.New(),
		X:  x,
		Y:  y,
		V:  q.GetPotential(x, y),
	}
	t.entries = append(t.entries, e)

	return e
}

// AddNormalized measures at texture coordinates (u,v) ∈ [0,1]² on a board
// of extent w×h, i.e. at field point (u·w, v·h).
func (t *Table) AddNormalized(q Querier, u, v, w, h float64) Entry {
	return t.Add(q, u*w, v*h)
}

// Delete removes the row with the given id, keeping the order of the rest.
// Returns ErrUnknownEntry if no row matches.
// Complexity: O(n).
func (t *Table) Delete(id uuid.UUID) error {
	for i, e := range t.entries {
		if e.ID == id {
			t.entries = append(t.entries[:i], t.entries[i+1:]...)
			return nil
		}
	}

	return fmt.Errorf("%w: %s", ErrUnknownEntry, id)
}

// Clear drops every row.
func (t *Table) Clear() {
	t.entries = nil
}

// Len returns the number of rows.
func (t *Table) Len() int { return len(t.entries) }

// Entries returns a copy of the rows in insertion order.
func (t *Table) Entries() []Entry {
	out := make([]Entry, len(t.entries))
	copy(out, t.entries)

	return out
}

// Refresh re-measures every row against q, typically after a new solve.
// Complexity: O(n) queries.
func (t *Table) Refresh(q Querier) {
	for i := range t.entries {
		e := &t.entries[i]
		e.V = q.GetPotential(e.X, e.Y)
	}
}

// WriteTo prints the table with two decimals per column.
// Implements io.WriterTo.
func (t *Table) WriteTo(w io.Writer) (int64, error) {
	cw := &countingWriter{w: w}
	tw := tabwriter.NewWriter(cw, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "#\tx\ty\tV")
	for i, e := range t.entries {
		fmt.Fprintf(tw, "%d\t%.2f\t%.2f\t%.2f\n", i+1, e.X, e.Y, e.V)
	}
	err := tw.Flush()

	return cw.n, err
}

type countingWriter struct {
	w io.Writer
	n int64
}

func (c *countingWriter) Write(p []byte) (int, error) {
	n, err := c.w.Write(p)
	c.n += int64(n)

	return n, err
}
