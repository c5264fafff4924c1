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

import "math"

// OutlineSink is the contract a glyph-outline source (e.g. a TrueType or
// CFF table parser, out of scope for this package) drives to describe one
// glyph's outline, in standard glyph-outline order. Coordinates are
// font-em-space floats.
type OutlineSink interface {
	MoveTo(x, y float32)
	LineTo(x, y float32)
	QuadTo(x1, y1, x, y float32)
	CurveTo(x1, y1, x2, y2, x, y float32)
	Close()
}

// Geometry accumulates one glyph's outline as an immutable list of
// Contours, ready for winding and distance queries. The zero value, or the
// result of NewGeometry, is ready to be driven through OutlineSink.
//
// Geometry is built by a single goroutine; once built (after the matching
// sequence of Close calls) it is read-only and safe for concurrent queries
// from multiple goroutines, including via RasterizeSDF.
type Geometry struct {
	current Point
	minX    float32

	contours []Contour

	currentContour Contour
	accum          windingAccumulator
}

// NewGeometry returns an empty Geometry, ready to be driven via
// OutlineSink.
func NewGeometry() *Geometry {
	return &Geometry{minX: math.MaxFloat32}
}

// MoveTo starts a new subpath at (x, y). It does not emit a Line; callers
// must follow it with at least one LineTo/QuadTo/CurveTo and a Close.
func (g *Geometry) MoveTo(x, y float32) {
	to := Point{x, y}.Round()
	g.current = to
	g.trackMinX(to.X)
}

// LineTo draws a straight line from the current point to (x, y).
func (g *Geometry) LineTo(x, y float32) {
	to := Point{x, y}.Round()
	g.addSegment(Line{From: g.current, To: to})
	g.current = to
	g.trackMinX(to.X)
}

// QuadTo draws a quadratic Bézier from the current point through control
// point (x1, y1) to (x, y).
func (g *Geometry) QuadTo(x1, y1, x, y float32) {
	by := Point{x1, y1}.Round()
	to := Point{x, y}.Round()
	g.addSegment(Quad{From: g.current, By: by, To: to})
	g.current = to
	g.trackMinX(by.X)
	g.trackMinX(to.X)
}

// CurveTo draws a cubic Bézier from the current point through control
// points (x1, y1) and (x2, y2) to (x, y).
func (g *Geometry) CurveTo(x1, y1, x2, y2, x, y float32) {
	byA := Point{x1, y1}.Round()
	byB := Point{x2, y2}.Round()
	to := Point{x, y}.Round()
	g.addSegment(Curve{From: g.current, ByA: byA, ByB: byB, To: to})
	g.current = to
	g.trackMinX(byA.X)
	g.trackMinX(byB.X)
	g.trackMinX(to.X)
}

// Close finishes the current contour: classifies its winding mode and
// pushes it into the finalized list. Exactly one Close is expected per
// MoveTo/...Close run; a dangling in-progress contour at end-of-outline
// (no matching Close) is discarded.
func (g *Geometry) Close() {
	g.currentContour.mode = g.accum.finish()
	g.contours = append(g.contours, g.currentContour)
	g.currentContour = Contour{}
	g.accum = windingAccumulator{}
}

// addSegment flattens shape, extends the in-progress contour's line list
// and bounding box, and feeds the primitive's control points into the
// winding accumulator.
func (g *Geometry) addSegment(shape Segment) {
	for _, l := range shape.flatten() {
		if len(g.currentContour.lines) == 0 {
			g.currentContour.aabb = l.aabb()
		} else {
			g.currentContour.aabb = g.currentContour.aabb.Union(l.aabb())
		}
		g.currentContour.lines = append(g.currentContour.lines, l)
	}
	g.accum.add(shape.controlPoints())
}

func (g *Geometry) trackMinX(x float32) {
	if x < g.minX {
		g.minX = x
	}
}

// Contours returns the glyph's finalized, flattened contours.
func (g *Geometry) Contours() []*Contour {
	out := make([]*Contour, len(g.contours))
	for i := range g.contours {
		out[i] = &g.contours[i]
	}
	return out
}
