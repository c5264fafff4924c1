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

// ray4 packs four horizontal rays, one per lane. In normal use FromY ==
// ToY (a horizontal ray) and ToX sits well to the left of the glyph.
type ray4 struct {
	FromX, FromY lane4
	ToX, ToY     lane4
}

// hitCount returns, per lane, the signed winding contribution of contour's
// lines against the ray: every line the ray crosses contributes minus the
// sign of the ray origin's side of that line, so the sum is +1 for an origin
// inside an Additive contour, -1 inside a Subtractive one, and 0 outside.
// If the contour's bounding box does not collide with the ray's joint
// bounding box in any lane, it returns zero without testing the lines.
func (r ray4) hitCount(c *Contour) lane4 {
	bbMinX := r.FromX.min(r.ToX)
	bbMinY := r.FromY.min(r.ToY)
	bbMaxX := r.FromX.max(r.ToX)
	bbMaxY := r.FromY.max(r.ToY)

	other := c.aabb
	collide := bbMinX.le(splat4(other.Max.X)).
		and(bbMaxX.ge(splat4(other.Min.X))).
		and(bbMinY.le(splat4(other.Max.Y))).
		and(bbMaxY.ge(splat4(other.Min.Y)))
	if !collide.any() {
		return zero4
	}

	result := zero4
	for _, line := range c.lines {
		side := line.side(r.FromX, r.FromY)
		intersects := line.rayIntersects(r).toLane()
		result = result.sub(side.mul(intersects))
	}
	return result
}

// rayIntersects solves the standard parametric line-line intersection
// (https://gamedev.stackexchange.com/a/26022) and reports, per lane,
// whether both intersection parameters lie in [0,1].
//
// Parallel lines make the denominator zero. The parameters then come out as
// +-Inf, which fall outside [0,1], or, for a collinear segment, as NaN (0/0),
// for which every <= comparison is false in IEEE-754 (and in Go), so
// parallel lines are reported as non-intersecting without a special case. This is required behavior, not
// an oversight: see spec.md §9's open question.
func (l Line) rayIntersects(r ray4) mask4 {
	a1x, a1y := splat4(l.From.X), splat4(l.From.Y)
	a2x, a2y := splat4(l.To.X), splat4(l.To.Y)
	b1x, b1y := r.FromX, r.FromY
	b2x, b2y := r.ToX, r.ToY

	a1a2x, a1a2y := a2x.sub(a1x), a2y.sub(a1y)
	b1b2x, b1b2y := b2x.sub(b1x), b2y.sub(b1y)
	b1a1x, b1a1y := a1x.sub(b1x), a1y.sub(b1y)

	denominator := a1a2x.mul(b1b2y).sub(a1a2y.mul(b1b2x))
	numerator1 := b1a1y.mul(b1b2x).sub(b1a1x.mul(b1b2y))
	numerator2 := b1a1y.mul(a1a2x).sub(b1a1x.mul(a1a2y))

	s := numerator1.div(denominator)
	t := numerator2.div(denominator)

	return zero4.le(s).and(s.le(splat4(1))).and(zero4.le(t)).and(t.le(splat4(1)))
}
