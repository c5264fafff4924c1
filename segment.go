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

// curveResolution is the number of line segments a Quad or Curve flattens
// into. It is a core constant, not a tuning knob exposed to callers:
// changing it changes every output byte (spec.md §9).
const curveResolution = 8

// Segment is the capability shared by Line, Quad, and Curve: an
// axis-aligned bounding box, a flattening into a bounded number of Lines,
// and the ordered control points used by the contour-sign accumulator.
type Segment interface {
	aabb() BoundingBox
	flatten() []Line
	controlPoints() []Point
}

// Line is a directed line segment. Direction participates in the winding
// computation (see Line.side).
type Line struct {
	From, To Point
}

// Quad is a quadratic Bézier curve with one control point.
type Quad struct {
	From, By, To Point
}

// Curve is a cubic Bézier curve with two control points.
type Curve struct {
	From, ByA, ByB, To Point
}

func (l Line) aabb() BoundingBox {
	return BoundingBox{Min: l.From.Min(l.To), Max: l.From.Max(l.To)}
}

// flatten returns the Line itself: a Line is already flat.
func (l Line) flatten() []Line {
	return []Line{l}
}

func (l Line) controlPoints() []Point {
	return []Point{l.From, l.To}
}

func (q Quad) aabb() BoundingBox {
	return BoundingBox{
		Min: q.From.Min(q.By).Min(q.To),
		Max: q.From.Max(q.By).Max(q.To),
	}
}

// flatten samples the curve at t = 1/R, 2/R, ..., 1 and connects successive
// samples, starting from From. Every sample is rounded to an integer before
// it becomes a Line endpoint, so adjacent flattened lines share exact
// integer endpoints.
func (q Quad) flatten() []Line {
	lines := make([]Line, 0, curveResolution)
	prev := q.From.Round()
	const step = float32(1) / curveResolution
	t := step
	for i := 0; i < curveResolution; i++ {
		fromBy := q.From.Lerp(q.By, t)
		byTo := q.By.Lerp(q.To, t)
		next := fromBy.Lerp(byTo, t).Round()
		lines = append(lines, Line{From: prev, To: next})
		prev = next
		t += step
	}
	return lines
}

func (q Quad) controlPoints() []Point {
	return []Point{q.From, q.By, q.To}
}

func (c Curve) aabb() BoundingBox {
	return BoundingBox{
		Min: c.From.Min(c.ByA).Min(c.ByB).Min(c.To),
		Max: c.From.Max(c.ByA).Max(c.ByB).Max(c.To),
	}
}

// flatten samples the curve at t = 1/R, 2/R, ..., 1 via a chain of lerps
// (the de Casteljau construction for a cubic), rounding each sample to an
// integer.
func (c Curve) flatten() []Line {
	lines := make([]Line, 0, curveResolution)
	prev := c.From.Round()
	const step = float32(1) / curveResolution
	t := step
	for i := 0; i < curveResolution; i++ {
		fromByA := c.From.Lerp(c.ByA, t)
		byAByB := c.ByA.Lerp(c.ByB, t)
		byBTo := c.ByB.Lerp(c.To, t)

		fromByAByAByB := fromByA.Lerp(byAByB, t)
		byAByBByBTo := byAByB.Lerp(byBTo, t)

		next := fromByAByAByB.Lerp(byAByBByBTo, t).Round()
		lines = append(lines, Line{From: prev, To: next})
		prev = next
		t += step
	}
	return lines
}

func (c Curve) controlPoints() []Point {
	return []Point{c.From, c.ByA, c.ByB, c.To}
}

// pointDistanceSquared returns, per lane, the squared distance from (xs,
// ys) to the closest point of l, found by projecting onto the infinite
// line and clamping the projection parameter to [0,1].
func (l Line) pointDistanceSquared(xs, ys lane4) lane4 {
	ax, ay := splat4(l.From.X), splat4(l.From.Y)
	bx, by := splat4(l.To.X), splat4(l.To.Y)

	apx, apy := xs.sub(ax), ys.sub(ay)
	abx, aby := bx.sub(ax), by.sub(ay)

	num := apx.mul(abx).add(apy.mul(aby))
	den := abx.mul(abx).add(aby.mul(aby))
	t := num.div(den).min(splat4(1)).max(zero4)

	cx := ax.add(abx.mul(t))
	cy := ay.add(aby.mul(t))

	dx := cx.sub(xs)
	dy := cy.sub(ys)
	return dx.mul(dx).add(dy.mul(dy))
}

// side returns, per lane, the sign of the 2-D cross product
// (to-from) × (p-from): which side of the directed line the point falls
// on. This is how the winding rule turns an unsigned ray-segment
// intersection into a signed ±1 contribution.
func (l Line) side(fromX, fromY lane4) lane4 {
	ax, ay := splat4(l.From.X), splat4(l.From.Y)
	bx, by := splat4(l.To.X), splat4(l.To.Y)

	cross := bx.sub(ax).mul(fromY.sub(ay)).sub(fromX.sub(ax).mul(by.sub(ay)))
	return cross.sign()
}

// distanceFinalize turns a squared distance into a Euclidean one.
func distanceFinalize(d lane4) lane4 {
	return d.sqrt()
}
