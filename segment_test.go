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

import "testing"

func TestLineFlattenIsIdentity(t *testing.T) {
	l := Line{From: Point{0, 0}, To: Point{10, 10}}
	got := l.flatten()
	if len(got) != 1 || got[0] != l {
		t.Errorf("Line.flatten(): got %v, want [%v]", got, l)
	}
}

func TestLineControlPoints(t *testing.T) {
	l := Line{From: Point{1, 2}, To: Point{3, 4}}
	got := l.controlPoints()
	want := []Point{{1, 2}, {3, 4}}
	if len(got) != 2 || got[0] != want[0] || got[1] != want[1] {
		t.Errorf("Line.controlPoints(): got %v, want %v", got, want)
	}
}

func TestQuadFlattenResolutionAndEndpoints(t *testing.T) {
	q := Quad{From: Point{0, 0}, By: Point{50, 100}, To: Point{100, 0}}
	lines := q.flatten()

	if len(lines) != curveResolution {
		t.Fatalf("Quad.flatten(): got %d lines, want %d", len(lines), curveResolution)
	}
	if lines[0].From != q.From.Round() {
		t.Errorf("first flattened line should start at From: got %v, want %v", lines[0].From, q.From.Round())
	}
	if lines[len(lines)-1].To != q.To.Round() {
		t.Errorf("last flattened line should end at To: got %v, want %v", lines[len(lines)-1].To, q.To.Round())
	}
	// Every consecutive pair shares an exact endpoint.
	for i := 1; i < len(lines); i++ {
		if lines[i-1].To != lines[i].From {
			t.Errorf("flattened lines %d/%d not joined: %v != %v", i-1, i, lines[i-1].To, lines[i].From)
		}
	}
}

func TestCurveFlattenResolutionAndEndpoints(t *testing.T) {
	c := Curve{From: Point{0, 0}, ByA: Point{0, 100}, ByB: Point{100, 100}, To: Point{100, 0}}
	lines := c.flatten()

	if len(lines) != curveResolution {
		t.Fatalf("Curve.flatten(): got %d lines, want %d", len(lines), curveResolution)
	}
	if lines[0].From != c.From.Round() {
		t.Errorf("first flattened line should start at From: got %v, want %v", lines[0].From, c.From.Round())
	}
	if lines[len(lines)-1].To != c.To.Round() {
		t.Errorf("last flattened line should end at To: got %v, want %v", lines[len(lines)-1].To, c.To.Round())
	}
	for i := 1; i < len(lines); i++ {
		if lines[i-1].To != lines[i].From {
			t.Errorf("flattened lines %d/%d not joined: %v != %v", i-1, i, lines[i-1].To, lines[i].From)
		}
	}
}

func TestLinePointDistanceSquared(t *testing.T) {
	l := Line{From: Point{0, 0}, To: Point{10, 0}}

	xs := lane4{5, -5, 15, 5}
	ys := lane4{3, 0, 0, 0}
	got := l.pointDistanceSquared(xs, ys)
	want := lane4{9, 25, 25, 0}
	if got != want {
		t.Errorf("pointDistanceSquared: got %v, want %v", got, want)
	}
}

func TestLineSide(t *testing.T) {
	// Directed line from (0,0) to (0,10): straight up. Points to the right
	// (+x) and to the left (-x) of it must have opposite sign.
	l := Line{From: Point{0, 0}, To: Point{0, 10}}

	right := l.side(splat4(5), splat4(5))
	left := l.side(splat4(-5), splat4(5))

	if right[0] == left[0] {
		t.Errorf("side(): points on opposite sides of the line got the same sign %v", right[0])
	}
	if right[0] != 1 && right[0] != -1 {
		t.Errorf("side(): got %v, want +-1", right[0])
	}
}

func TestAABBEnclosesControlPoints(t *testing.T) {
	q := Quad{From: Point{0, 0}, By: Point{50, 100}, To: Point{100, 10}}
	bb := q.aabb()
	if bb.Min != (Point{0, 0}) || bb.Max != (Point{100, 100}) {
		t.Errorf("Quad.aabb(): got %v, want Min {0 0} Max {100 100}", bb)
	}

	c := Curve{From: Point{0, 0}, ByA: Point{-10, 5}, ByB: Point{110, 5}, To: Point{100, 0}}
	bb = c.aabb()
	if bb.Min != (Point{-10, 0}) || bb.Max != (Point{110, 5}) {
		t.Errorf("Curve.aabb(): got %v, want Min {-10 0} Max {110 5}", bb)
	}
}
