/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package canvas

import "reportcanvas/internal/domain"

// ComponentsInRect returns every component fully contained in the selection
// rectangle. Containment, not intersection: a component straddling the
// rectangle's edge is excluded.
func ComponentsInRect(selection domain.Position, components []domain.Component) []domain.Component {
	var out []domain.Component
	for _, c := range components {
		if RectContains(selection, c.Position) {
			out = append(out, c)
		}
	}
	return out
}

// PointInComponent is the click hit-test: an inclusive bounding-box check.
func PointInComponent(x, y float64, c domain.Component) bool {
	return PointInRect(x, y, c.Position)
}

// ComponentAt returns the topmost component under the point, scanning the
// list back-to-front (later entries render on top). Second return is false
// when the click hits empty canvas.
func ComponentAt(x, y float64, components []domain.Component) (domain.Component, bool) {
	for i := len(components) - 1; i >= 0; i-- {
		if PointInComponent(x, y, components[i]) {
			return components[i], true
		}
	}
	return domain.Component{}, false
}
