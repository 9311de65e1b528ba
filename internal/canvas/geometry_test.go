/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package canvas

import (
	"testing"

	"reportcanvas/internal/domain"
)

func TestBoundsOf(t *testing.T) {
	b := BoundsOf(domain.Position{X: 10, Y: 20, Width: 100, Height: 50})
	if b.Left != 10 || b.Right != 110 || b.Top != 20 || b.Bottom != 70 {
		t.Fatalf("wrong edges: %+v", b)
	}
	if b.CenterX != 60 || b.CenterY != 45 {
		t.Fatalf("wrong centers: %+v", b)
	}
}

func TestUnionBounds(t *testing.T) {
	got := UnionBounds([]domain.Position{
		{X: 10, Y: 40, Width: 100, Height: 60},
		{X: 200, Y: 10, Width: 50, Height: 20},
		{X: 60, Y: 90, Width: 30, Height: 30},
	})
	want := domain.Position{X: 10, Y: 10, Width: 240, Height: 110}
	if got != want {
		t.Fatalf("union = %+v, want %+v", got, want)
	}
}

func TestUnionBoundsEmpty(t *testing.T) {
	if got := UnionBounds(nil); got != (domain.Position{}) {
		t.Fatalf("empty union should be zero rect, got %+v", got)
	}
}

func TestPointInRectInclusiveEdges(t *testing.T) {
	r := domain.Position{X: 0, Y: 0, Width: 10, Height: 10}
	for _, p := range [][2]float64{{0, 0}, {10, 10}, {5, 5}, {0, 10}} {
		if !PointInRect(p[0], p[1], r) {
			t.Fatalf("point %v should be inside", p)
		}
	}
	if PointInRect(10.01, 5, r) {
		t.Fatalf("point just outside right edge should be excluded")
	}
}

func TestRectContainsIsExactContainment(t *testing.T) {
	outer := domain.Position{X: 0, Y: 0, Width: 100, Height: 100}
	inside := domain.Position{X: 10, Y: 10, Width: 50, Height: 50}
	straddling := domain.Position{X: 80, Y: 10, Width: 50, Height: 20}
	if !RectContains(outer, inside) {
		t.Fatalf("fully inside rect should be contained")
	}
	if RectContains(outer, straddling) {
		t.Fatalf("overlapping rect must not count as contained")
	}
	// Touching edges still counts.
	flush := domain.Position{X: 0, Y: 0, Width: 100, Height: 100}
	if !RectContains(outer, flush) {
		t.Fatalf("identical rect should be contained")
	}
}
