// Copyright © 2026 Phosphor contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: esctest/types.go
// Summary: Coordinate types for the compliance tests (1-indexed, matching
//          VT conventions).

package esctest

// Point is a cursor position or coordinate, 1-indexed.
type Point struct {
	X int
	Y int
}

// NewPoint creates a Point with the given coordinates.
func NewPoint(x, y int) Point {
	return Point{X: x, Y: y}
}

// Rect is a rectangular screen region, 1-indexed and inclusive.
type Rect struct {
	Left   int
	Top    int
	Right  int
	Bottom int
}

// NewRect creates a Rect with the given bounds.
func NewRect(left, top, right, bottom int) Rect {
	return Rect{Left: left, Top: top, Right: right, Bottom: bottom}
}

// Width returns the width of the rectangle.
func (r Rect) Width() int {
	return r.Right - r.Left + 1
}

// Height returns the height of the rectangle.
func (r Rect) Height() int {
	return r.Bottom - r.Top + 1
}

// Size is a dimension in cells.
type Size struct {
	Width  int
	Height int
}

// NewSize creates a Size with the given dimensions.
func NewSize(width, height int) Size {
	return Size{Width: width, Height: height}
}
