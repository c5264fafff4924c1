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

import "github.com/chewxy/math32"

// Point is a location in font em-space, or a device-space sample point.
// Coordinates are 32-bit floats, matching the precision of glyph outline
// data in font files.
type Point struct {
	X, Y float32
}

// Add returns p+q.
func (p Point) Add(q Point) Point {
	return Point{p.X + q.X, p.Y + q.Y}
}

// Sub returns p-q.
func (p Point) Sub(q Point) Point {
	return Point{p.X - q.X, p.Y - q.Y}
}

// Mul returns p scaled by s.
func (p Point) Mul(s float32) Point {
	return Point{p.X * s, p.Y * s}
}

// Min returns the componentwise minimum of p and q.
func (p Point) Min(q Point) Point {
	return Point{math32.Min(p.X, q.X), math32.Min(p.Y, q.Y)}
}

// Max returns the componentwise maximum of p and q.
func (p Point) Max(q Point) Point {
	return Point{math32.Max(p.X, q.X), math32.Max(p.Y, q.Y)}
}

// Lerp returns the point t of the way from p to q.
func (p Point) Lerp(q Point, t float32) Point {
	return Point{
		X: p.X + (q.X-p.X)*t,
		Y: p.Y + (q.Y-p.Y)*t,
	}
}

// Round snaps both coordinates to the nearest integer. This is applied to
// every control point and every flattened line endpoint at outline-build
// time (spec §3, §9): it keeps ray-line intersection results stable across
// machines and avoids just-touching ambiguity at pixel centers, which are
// always sampled at half-integers.
func (p Point) Round() Point {
	return Point{math32.Round(p.X), math32.Round(p.Y)}
}

// Cross returns the 2-D cross product p × q (a scalar: the z-component of
// the 3-D cross product of the two vectors extended into the xy-plane).
func (p Point) Cross(q Point) float32 {
	return p.X*q.Y - p.Y*q.X
}
