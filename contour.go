// seehuhn.de/go/sdf - a signed-distance-field glyph rasterizer
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package sdf

// ContourMode classifies a Contour for the non-zero winding rule: Additive
// contours contribute +1 per ray crossing, Subtractive contours -1. A
// pixel is inside the glyph iff the sum over all contours is > 0.
//
// Earlier revisions of this rasterizer used an even-odd fill rule with
// unsigned hit counts; that path is gone for good, since even-odd
// mishandles overlapping contours (accents, the two holes in "B").
type ContourMode int

const (
	// Additive contours contribute +1 per ray crossing.
	Additive ContourMode = iota
	// Subtractive contours contribute -1 per ray crossing.
	Subtractive
)

// Contour is one closed path: one move_to...close run of outline events.
type Contour struct {
	aabb  BoundingBox
	lines []Line
	mode  ContourMode
}

// AABB returns the union of all of the contour's flattened lines'
// bounding boxes.
func (c *Contour) AABB() BoundingBox {
	return c.aabb
}

// Lines returns the contour's flattened line segments, in outline order.
func (c *Contour) Lines() []Line {
	return c.lines
}

// Mode returns the contour's winding classification.
func (c *Contour) Mode() ContourMode {
	return c.mode
}

// windingAccumulator tracks the signed-area sum used to classify a
// contour's winding direction, following the control points of the
// contour's primitives in input order (before flattening). Walking
// control points in order and accumulating
// Σ(xᵢ₊₁-xᵢ)·(yᵢ₊₁+yᵢ), with wrap-around back to the first control point,
// is the shoelace formula; its sign is the contour's orientation.
type windingAccumulator struct {
	sum       float32
	first     Point
	haveFirst bool
	prev      Point
}

// add feeds the ordered control points of one primitive (including its
// `from` and `to`) into the accumulator. Only the first control point ever
// seen becomes the seed; every later point contributes a term relative to
// the previous one.
func (w *windingAccumulator) add(points []Point) {
	for _, p := range points {
		if !w.haveFirst {
			w.first = p
			w.prev = p
			w.haveFirst = true
			continue
		}
		w.sum += (p.X - w.prev.X) * (p.Y + w.prev.Y)
		w.prev = p
	}
}

// finish adds the wrap-around term (first control point vs. last previous)
// and returns the resulting mode: Additive iff the sum is >= 0.
func (w *windingAccumulator) finish() ContourMode {
	if w.haveFirst {
		w.sum += (w.first.X - w.prev.X) * (w.first.Y + w.prev.Y)
	}
	if w.sum >= 0 {
		return Additive
	}
	return Subtractive
}
