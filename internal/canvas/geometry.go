/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package canvas

// Rectangle math over domain.Position. These helpers are total over
// well-formed rectangles and UI-agnostic so every frontend shares the same
// geometry semantics.

import "reportcanvas/internal/domain"

// Bounds are the derived edges and center of a rectangle.
type Bounds struct {
	Left    float64
	Right   float64
	Top     float64
	Bottom  float64
	CenterX float64
	CenterY float64
}

// BoundsOf computes edges and center points for a position.
func BoundsOf(p domain.Position) Bounds {
	return Bounds{
		Left:    p.X,
		Right:   p.X + p.Width,
		Top:     p.Y,
		Bottom:  p.Y + p.Height,
		CenterX: p.X + p.Width/2,
		CenterY: p.Y + p.Height/2,
	}
}

// UnionBounds returns the minimal rectangle containing all given rectangles.
// An empty input yields the zero rectangle.
func UnionBounds(rects []domain.Position) domain.Position {
	if len(rects) == 0 {
		return domain.Position{}
	}
	minX, minY := rects[0].X, rects[0].Y
	maxX, maxY := rects[0].X+rects[0].Width, rects[0].Y+rects[0].Height
	for _, r := range rects[1:] {
		if r.X < minX {
			minX = r.X
		}
		if r.Y < minY {
			minY = r.Y
		}
		if r.X+r.Width > maxX {
			maxX = r.X + r.Width
		}
		if r.Y+r.Height > maxY {
			maxY = r.Y + r.Height
		}
	}
	return domain.Position{X: minX, Y: minY, Width: maxX - minX, Height: maxY - minY}
}

// PointInRect reports whether the point lies inside the rectangle. Edges are
// inclusive so a click on a border still targets the component.
func PointInRect(x, y float64, r domain.Position) bool {
	return x >= r.X && x <= r.X+r.Width && y >= r.Y && y <= r.Y+r.Height
}

// RectContains reports whether inner lies fully inside outer: all four inner
// edges within outer's edges. This is exact containment, not overlap.
func RectContains(outer, inner domain.Position) bool {
	return inner.X >= outer.X &&
		inner.Y >= outer.Y &&
		inner.X+inner.Width <= outer.X+outer.Width &&
		inner.Y+inner.Height <= outer.Y+outer.Height
}
