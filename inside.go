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

// insideLeftMargin is subtracted from the geometry's leftmost control
// point to build a ray origin guaranteed to lie outside every contour,
// regardless of rounding.
const insideLeftMargin = 100

// isInside casts a horizontal ray leftward from each of the four pixel
// centers (xs, ys) and sums the signed winding contribution of every
// contour; a pixel is inside iff that sum is strictly positive (the
// non-zero winding rule).
func (g *Geometry) isInside(xs, ys lane4) mask4 {
	half := splat4(0.5)
	fromX := xs.round().add(half)
	fromY := ys.round().add(half)

	ray := ray4{
		FromX: fromX,
		FromY: fromY,
		ToX:   splat4(g.minX - insideLeftMargin + 0.5),
		ToY:   fromY,
	}

	hits := zero4
	for i := range g.contours {
		hits = hits.add(ray.hitCount(&g.contours[i]))
	}
	return hits.gt(zero4)
}
