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

// BoundingBox is an axis-aligned rectangle, min <= max componentwise.
type BoundingBox struct {
	Min, Max Point
}

// Union returns the smallest BoundingBox enclosing both b and other.
func (b BoundingBox) Union(other BoundingBox) BoundingBox {
	return BoundingBox{
		Min: b.Min.Min(other.Min),
		Max: b.Max.Max(other.Max),
	}
}

// Overlaps reports whether b and other share any area. The test is
// deliberately asymmetric (strict on the min/max comparison, inclusive on
// the max/min one) — this is the contract spec.md §3 specifies, not an
// accident of implementation.
func (b BoundingBox) Overlaps(other BoundingBox) bool {
	return b.Min.X < other.Max.X && b.Min.Y < other.Max.Y &&
		b.Max.X >= other.Min.X && b.Max.Y >= other.Min.Y
}

// minDistanceSquared returns, per lane, the squared distance from (xs, ys)
// to the nearest point of b. Points inside b have distance zero.
//
// Adapted from https://stackoverflow.com/a/18157551 (credited likewise in
// the Rust original this core is based on).
func (b BoundingBox) minDistanceSquared(xs, ys lane4) lane4 {
	dx := xs.sub(splat4(b.Min.X)).neg().max(zero4).max(xs.sub(splat4(b.Max.X)))
	dy := ys.sub(splat4(b.Min.Y)).neg().max(zero4).max(ys.sub(splat4(b.Max.Y)))
	return dx.mul(dx).add(dy.mul(dy))
}

// maxDistanceSquared returns, per lane, the squared distance from (xs, ys)
// to the farthest point of b.
func (b BoundingBox) maxDistanceSquared(xs, ys lane4) lane4 {
	midX := (b.Min.X + b.Max.X) * 0.5
	midY := (b.Min.Y + b.Max.Y) * 0.5

	farX := xs.lt(splat4(midX)).choose(splat4(b.Max.X), splat4(b.Min.X))
	farY := ys.lt(splat4(midY)).choose(splat4(b.Max.Y), splat4(b.Min.Y))

	dx := xs.sub(farX)
	dy := ys.sub(farY)
	return dx.mul(dx).add(dy.mul(dy))
}
