// Package grid implements the pure interaction model for datasheet.
//
// Coordinates are 0-based (Row, Col) cell positions. Selections keep their
// corners in drag order; use Normalize before enumerating member cells.
// Nothing in this package renders or performs I/O.
package grid
