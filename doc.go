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

// Package sdf rasterizes decoded glyph outlines into signed-distance-field
// byte images.
//
// Callers drive a [Geometry] through the [OutlineSink] contract (the
// move/line/quad/curve/close events a font parser would produce), then pass
// the resulting geometry and a pixel size to [RasterizeSDF]. The output is a
// dense 8-bit-per-pixel raster: values above 128 are inside the glyph, below
// 128 are outside, and 128 sits on the outline itself.
//
// The package does no font-file decoding, hinting, or image I/O; it starts
// from an already-decoded outline and ends at a byte buffer.
package sdf
