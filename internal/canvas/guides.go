/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package canvas

// Alignment guides and snapping for interactive dragging. Deterministic and
// UI-agnostic: the host feeds the candidate drag position plus the sibling
// list on every pointer-move and renders whatever comes back.

import (
	"math"

	"reportcanvas/internal/domain"
)

const (
	// SnapThreshold is the maximum distance at which a feature pair aligns.
	SnapThreshold = 8.0
	// GuideMargin extends guide lines past the union of the two rects.
	GuideMargin = 20.0
)

// Guide is a transient alignment line to render while dragging.
// Orientation is "vertical" or "horizontal"; Kind is "edge" or "center".
// Position is the x (vertical) or y (horizontal) coordinate; From/To are the
// rendered extents along the other axis.
type Guide struct {
	Orientation string  `json:"orientation"`
	Kind        string  `json:"kind"`
	Position    float64 `json:"position"`
	From        float64 `json:"from"`
	To          float64 `json:"to"`
}

// SnapResult carries the active guides and the per-axis snap values.
// A nil axis means the raw drag value stands. Apply resolves the final
// position.
type SnapResult struct {
	Guides []Guide
	SnapX  *float64
	SnapY  *float64
}

// Apply overlays the snapped axes onto the intended drag position.
func (r SnapResult) Apply(intended domain.Position) domain.Position {
	out := intended
	if r.SnapX != nil {
		out.X = *r.SnapX
	}
	if r.SnapY != nil {
		out.Y = *r.SnapY
	}
	return out
}

// ComputeAlignmentGuides tests the moving rectangle against every sibling and
// then the canvas anchors. Per sibling there are three vertical candidates
// (left-left, right-right, center-center) and three horizontal ones
// (top-top, bottom-bottom, center-center). Matches within SnapThreshold emit
// a guide and record a snap value for that axis; later matches overwrite
// earlier ones, so canvas anchors take precedence over siblings and the last
// matching sibling wins among siblings.
func ComputeAlignmentGuides(moving domain.Position, siblings []domain.Position) SnapResult {
	var res SnapResult
	mb := BoundsOf(moving)

	for _, sib := range siblings {
		sb := BoundsOf(sib)
		vFrom, vTo := guideSpan(mb.Top, mb.Bottom, sb.Top, sb.Bottom)
		hFrom, hTo := guideSpan(mb.Left, mb.Right, sb.Left, sb.Right)

		// Vertical candidates (x axis).
		if within(mb.Left, sb.Left) {
			res.addVertical(sb.Left, "edge", vFrom, vTo)
			res.snapX(sb.Left)
		}
		if within(mb.Right, sb.Right) {
			res.addVertical(sb.Right, "edge", vFrom, vTo)
			res.snapX(sb.Right - moving.Width)
		}
		if within(mb.CenterX, sb.CenterX) {
			res.addVertical(sb.CenterX, "center", vFrom, vTo)
			res.snapX(sb.CenterX - moving.Width/2)
		}

		// Horizontal candidates (y axis).
		if within(mb.Top, sb.Top) {
			res.addHorizontal(sb.Top, "edge", hFrom, hTo)
			res.snapY(sb.Top)
		}
		if within(mb.Bottom, sb.Bottom) {
			res.addHorizontal(sb.Bottom, "edge", hFrom, hTo)
			res.snapY(sb.Bottom - moving.Height)
		}
		if within(mb.CenterY, sb.CenterY) {
			res.addHorizontal(sb.CenterY, "center", hFrom, hTo)
			res.snapY(sb.CenterY - moving.Height/2)
		}
	}

	// Canvas anchors come last so they override sibling snaps per axis.
	if within(mb.Left, 0) {
		res.addVertical(0, "edge", 0, domain.CanvasHeight)
		res.snapX(0)
	}
	if within(mb.Right, domain.CanvasWidth) {
		res.addVertical(domain.CanvasWidth, "edge", 0, domain.CanvasHeight)
		res.snapX(domain.CanvasWidth - moving.Width)
	}
	if within(mb.CenterX, domain.CanvasWidth/2) {
		res.addVertical(domain.CanvasWidth/2, "center", 0, domain.CanvasHeight)
		res.snapX(domain.CanvasWidth/2 - moving.Width/2)
	}
	if within(mb.Top, 0) {
		res.addHorizontal(0, "edge", 0, domain.CanvasWidth)
		res.snapY(0)
	}
	if within(mb.Bottom, domain.CanvasHeight) {
		res.addHorizontal(domain.CanvasHeight, "edge", 0, domain.CanvasWidth)
		res.snapY(domain.CanvasHeight - moving.Height)
	}
	if within(mb.CenterY, domain.CanvasHeight/2) {
		res.addHorizontal(domain.CanvasHeight/2, "center", 0, domain.CanvasWidth)
		res.snapY(domain.CanvasHeight/2 - moving.Height/2)
	}

	return res
}

func within(a, b float64) bool {
	return math.Abs(a-b) <= SnapThreshold
}

// guideSpan is the union of both rects' extents plus the render margin.
func guideSpan(aMin, aMax, bMin, bMax float64) (float64, float64) {
	from := math.Min(aMin, bMin) - GuideMargin
	to := math.Max(aMax, bMax) + GuideMargin
	return from, to
}

func (r *SnapResult) addVertical(x float64, kind string, from, to float64) {
	r.Guides = append(r.Guides, Guide{Orientation: "vertical", Kind: kind, Position: x, From: from, To: to})
}

func (r *SnapResult) addHorizontal(y float64, kind string, from, to float64) {
	r.Guides = append(r.Guides, Guide{Orientation: "horizontal", Kind: kind, Position: y, From: from, To: to})
}

// snapX/snapY keep only the most recent match per axis (last write wins).
func (r *SnapResult) snapX(v float64) { r.SnapX = &v }
func (r *SnapResult) snapY(v float64) { r.SnapY = &v }
