/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the
 *  specific language governing permissions and limitations under the License.
 */

package template

// Pixel geometry for generated layouts. These are lookup tables, not derived
// values: each template variant pins its component positions so regeneration
// is deterministic and ids land in the same slots every time.

import "reportcanvas/internal/domain"

const (
	marginX      = 40.0
	contentWidth = domain.CanvasWidth - 2*marginX // 944

	titleY      = 24.0
	titleHeight = 56.0

	heroRowY      = 100.0
	heroRowHeight = 140.0
	// Card count drives hero geometry, not the reverse: a two-card row uses
	// width 319 / spacing 41, a three-card row (cost card present) uses
	// width 200 / spacing 40.
	heroWidthTwo     = 319.0
	heroSpacingTwo   = 41.0
	heroWidthThree   = 200.0
	heroSpacingThree = 40.0

	secondaryRowY      = 256.0
	secondaryRowHeight = 96.0
	secondarySpacing   = 24.0

	bottomRowY      = 368.0
	bottomRowHeight = 184.0

	logoX      = 872.0
	logoY      = 24.0
	logoWidth  = 112.0
	logoHeight = 48.0
)

var titleSlot = domain.Position{X: marginX, Y: titleY, Width: contentWidth, Height: titleHeight}

var logoSlot = domain.Position{X: logoX, Y: logoY, Width: logoWidth, Height: logoHeight}

// heroSlot returns the i-th card rect of a hero row with n cards.
func heroSlot(i, n int) domain.Position {
	w, sp := heroWidthTwo, heroSpacingTwo
	if n >= 3 {
		w, sp = heroWidthThree, heroSpacingThree
	}
	return domain.Position{
		X:      marginX + float64(i)*(w+sp),
		Y:      heroRowY,
		Width:  w,
		Height: heroRowHeight,
	}
}

// secondarySlot distributes n cards evenly across the content width.
func secondarySlot(i, n int) domain.Position {
	w := (contentWidth - float64(n-1)*secondarySpacing) / float64(n)
	return domain.Position{
		X:      marginX + float64(i)*(w+secondarySpacing),
		Y:      secondaryRowY,
		Width:  w,
		Height: secondaryRowHeight,
	}
}

// bottomLayouts pins the breakdown strip and extra tables per table count.
// Single- and multi-campaign variants share the same geometry.
var bottomLayouts = map[int]struct {
	breakdown domain.Position
	tables    []domain.Position
}{
	0: {
		breakdown: domain.Position{X: marginX, Y: bottomRowY, Width: contentWidth, Height: bottomRowHeight},
	},
	1: {
		breakdown: domain.Position{X: marginX, Y: bottomRowY, Width: 560, Height: bottomRowHeight},
		tables: []domain.Position{
			{X: 624, Y: bottomRowY, Width: 360, Height: bottomRowHeight},
		},
	},
	2: {
		breakdown: domain.Position{X: marginX, Y: bottomRowY, Width: 448, Height: bottomRowHeight},
		tables: []domain.Position{
			{X: 512, Y: bottomRowY, Width: 228, Height: bottomRowHeight},
			{X: 756, Y: bottomRowY, Width: 228, Height: bottomRowHeight},
		},
	},
	3: {
		breakdown: domain.Position{X: marginX, Y: bottomRowY, Width: 316, Height: bottomRowHeight},
		tables: []domain.Position{
			{X: 372, Y: bottomRowY, Width: 196, Height: bottomRowHeight},
			{X: 584, Y: bottomRowY, Width: 196, Height: bottomRowHeight},
			{X: 796, Y: bottomRowY, Width: 188, Height: bottomRowHeight},
		},
	},
}
