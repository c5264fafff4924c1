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

// lane4 packs four float32 values processed as a unit, mirroring the
// four-lane SIMD width the spec's per-pixel evaluator is defined in terms
// of (spec.md §9, "SIMD is semantic"). The Rust original this core is
// based on packs the same four values into a single glam.Vec4; no library
// in the retrieval pack (or the wider ecosystem) offers an equivalent
// float32x4 type with the lane-wise compare/select operations this code
// needs, so lane4 is a plain value type with one method per operation, in
// the style of seehuhn.de/go/geom/vec.Vec2.
type lane4 [4]float32

var zero4 lane4

// splat4 returns a lane4 with all four lanes set to v.
func splat4(v float32) lane4 {
	return lane4{v, v, v, v}
}

func (a lane4) add(b lane4) lane4 {
	return lane4{a[0] + b[0], a[1] + b[1], a[2] + b[2], a[3] + b[3]}
}

func (a lane4) sub(b lane4) lane4 {
	return lane4{a[0] - b[0], a[1] - b[1], a[2] - b[2], a[3] - b[3]}
}

func (a lane4) mul(b lane4) lane4 {
	return lane4{a[0] * b[0], a[1] * b[1], a[2] * b[2], a[3] * b[3]}
}

func (a lane4) div(b lane4) lane4 {
	return lane4{a[0] / b[0], a[1] / b[1], a[2] / b[2], a[3] / b[3]}
}

func (a lane4) neg() lane4 {
	return lane4{-a[0], -a[1], -a[2], -a[3]}
}

func (a lane4) min(b lane4) lane4 {
	return lane4{math32.Min(a[0], b[0]), math32.Min(a[1], b[1]), math32.Min(a[2], b[2]), math32.Min(a[3], b[3])}
}

func (a lane4) max(b lane4) lane4 {
	return lane4{math32.Max(a[0], b[0]), math32.Max(a[1], b[1]), math32.Max(a[2], b[2]), math32.Max(a[3], b[3])}
}

func (a lane4) round() lane4 {
	return lane4{math32.Round(a[0]), math32.Round(a[1]), math32.Round(a[2]), math32.Round(a[3])}
}

func (a lane4) sqrt() lane4 {
	return lane4{math32.Sqrt(a[0]), math32.Sqrt(a[1]), math32.Sqrt(a[2]), math32.Sqrt(a[3])}
}

// sign mirrors Rust's f32::signum: +1 for non-negative values (including
// +0), -1 for negative values (including -0), NaN propagates.
func (a lane4) sign() lane4 {
	var out lane4
	for i, v := range a {
		switch {
		case math32.IsNaN(v):
			out[i] = v
		case math32.Signbit(v):
			out[i] = -1
		default:
			out[i] = 1
		}
	}
	return out
}

// mask4 is a per-lane boolean, the result of a lane4 comparison.
type mask4 [4]bool

func (a lane4) lt(b lane4) mask4 {
	return mask4{a[0] < b[0], a[1] < b[1], a[2] < b[2], a[3] < b[3]}
}

func (a lane4) le(b lane4) mask4 {
	return mask4{a[0] <= b[0], a[1] <= b[1], a[2] <= b[2], a[3] <= b[3]}
}

func (a lane4) ge(b lane4) mask4 {
	return mask4{a[0] >= b[0], a[1] >= b[1], a[2] >= b[2], a[3] >= b[3]}
}

func (a lane4) gt(b lane4) mask4 {
	return mask4{a[0] > b[0], a[1] > b[1], a[2] > b[2], a[3] > b[3]}
}

func (m mask4) and(n mask4) mask4 {
	return mask4{m[0] && n[0], m[1] && n[1], m[2] && n[2], m[3] && n[3]}
}

// any reports whether any lane of m is true.
func (m mask4) any() bool {
	return m[0] || m[1] || m[2] || m[3]
}

// toLane converts the mask to 1.0/0.0 per lane, the float equivalent of
// bvec4_to_uvec4 in the Rust original.
func (m mask4) toLane() lane4 {
	var out lane4
	for i, v := range m {
		if v {
			out[i] = 1
		}
	}
	return out
}

// choose returns, per lane, ifTrue where m is true and ifFalse otherwise.
func (m mask4) choose(ifTrue, ifFalse lane4) lane4 {
	var out lane4
	for i, v := range m {
		if v {
			out[i] = ifTrue[i]
		} else {
			out[i] = ifFalse[i]
		}
	}
	return out
}
