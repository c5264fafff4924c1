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

// Synthetic glyph outlines for the scenario tests in spec.md §8. These
// play the role the teacher's testcases package plays for PDF fill/stroke
// cases (named shape-builder helpers over a small geometric DSL), adapted
// here to outline events instead of path commands.

// rectOuter draws a single closed rectangle contour in the vertex order
// (x0,y0)->(x0,y1)->(x1,y1)->(x1,y0), which the shoelace rule classifies
// Additive: it stands in for an outer, solid contour.
func rectOuter(g *Geometry, x0, y0, x1, y1 float32) {
	g.MoveTo(x0, y0)
	g.LineTo(x0, y1)
	g.LineTo(x1, y1)
	g.LineTo(x1, y0)
	g.LineTo(x0, y0)
	g.Close()
}

// rectHole draws a single closed rectangle contour in the vertex order
// (x0,y0)->(x1,y0)->(x1,y1)->(x0,y1), the reverse of rectOuter, which the
// shoelace rule classifies Subtractive: it stands in for a counter (hole).
func rectHole(g *Geometry, x0, y0, x1, y1 float32) {
	g.MoveTo(x0, y0)
	g.LineTo(x1, y0)
	g.LineTo(x1, y1)
	g.LineTo(x0, y1)
	g.LineTo(x0, y0)
	g.Close()
}

// emptyGlyph builds a geometry with no contours at all, standing in for a
// space character.
func emptyGlyph() *Geometry {
	return NewGeometry()
}

// letterIGlyph builds a single solid rectangle, standing in for a capital
// "I": a narrow vertical bar on a wide em-box.
func letterIGlyph() *Geometry {
	g := NewGeometry()
	rectOuter(g, 400, 0, 600, 1000)
	return g
}

// letterOGlyph builds an outer Additive square with an inner Subtractive
// square hole, standing in for a lowercase "o".
func letterOGlyph() *Geometry {
	g := NewGeometry()
	rectOuter(g, 100, 100, 900, 900)
	rectHole(g, 300, 300, 700, 700)
	return g
}

// letterBGlyph builds an outer Additive rectangle with two Subtractive
// rectangular holes stacked vertically, standing in for a capital "B".
func letterBGlyph() *Geometry {
	g := NewGeometry()
	rectOuter(g, 100, 0, 700, 1000)
	rectHole(g, 250, 550, 550, 900)
	rectHole(g, 250, 100, 550, 450)
	return g
}
