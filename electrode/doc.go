// Package electrode places boundary conditions on a potential field.
//
// An Electrode is either a single pinned node (Point) or a flat electrode
// that pins a whole row (Row) or column (Column) of nodes. Place turns a
// list of electrodes into SetFixedPoint calls against any Pinner, for
// example a *potential.Field.
//
// Overlaps resolve by declaration order: the later electrode wins.
//
// Kinds read from and write to YAML and text as "point", "row", "column".
package electrode
