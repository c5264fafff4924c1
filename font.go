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

// glyphEntry pairs a built Geometry with the em-space bounds a
// glyph-table parser reported for it.
type glyphEntry struct {
	geom *Geometry
	bb   GlyphBounds
}

// Font is a per-codepoint registry of glyph geometries, the seam where an
// external glyph-table parser (out of scope for this package) plugs in.
// Once populated, a Font is read-only and safe for concurrent use from
// multiple goroutines.
type Font struct {
	unitsPerEm float32
	glyphs     map[rune]glyphEntry
}

// NewFont returns an empty Font for a typeface with the given
// units-per-em.
func NewFont(unitsPerEm float32) *Font {
	return &Font{
		unitsPerEm: unitsPerEm,
		glyphs:     make(map[rune]glyphEntry),
	}
}

// AddGlyph registers the geometry and em-space bounds for codepoint r.
// geom is typically built by driving a fresh *Geometry through
// OutlineSink from the caller's glyph-table parser.
func (f *Font) AddGlyph(r rune, geom *Geometry, bb GlyphBounds) {
	f.glyphs[r] = glyphEntry{geom: geom, bb: bb}
}

// RasterizeSDF rasterizes the glyph registered for r at pixel size px. If
// r has no registered glyph, it returns the zero Metrics and a nil byte
// slice rather than failing the call (spec.md §7's "unknown glyph index"
// contract).
func (f *Font) RasterizeSDF(r rune, px float32) (Metrics, []byte) {
	entry, ok := f.glyphs[r]
	if !ok {
		return Metrics{}, nil
	}
	bytes, metrics := RasterizeSDF(entry.geom, entry.bb, f.unitsPerEm, px)
	return metrics, bytes
}

// MetricsSDF returns the Metrics RasterizeSDF would produce for r at pixel
// size px, without rasterizing. An unregistered r yields the zero
// Metrics.
func (f *Font) MetricsSDF(r rune, px float32) Metrics {
	entry, ok := f.glyphs[r]
	if !ok {
		return Metrics{}
	}
	return MetricsSDF(entry.bb, f.unitsPerEm, px)
}
