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

func TestComponentsInRectExcludesStraddlers(t *testing.T) {
	comps := []domain.Component{
		{ID: "inside", Position: domain.Position{X: 20, Y: 20, Width: 40, Height: 40}},
		{ID: "straddling", Position: domain.Position{X: 90, Y: 20, Width: 40, Height: 40}},
		{ID: "outside", Position: domain.Position{X: 300, Y: 300, Width: 40, Height: 40}},
	}
	selection := domain.Position{X: 0, Y: 0, Width: 100, Height: 100}

	got := ComponentsInRect(selection, comps)
	if len(got) != 1 || got[0].ID != "inside" {
		t.Fatalf("expected only fully-contained component, got %+v", got)
	}
}

func TestComponentsInRectEmptySelection(t *testing.T) {
	comps := []domain.Component{
		{ID: "a", Position: domain.Position{X: 10, Y: 10, Width: 40, Height: 40}},
	}
	got := ComponentsInRect(domain.Position{X: 500, Y: 500, Width: 10, Height: 10}, comps)
	if len(got) != 0 {
		t.Fatalf("expected no matches, got %+v", got)
	}
}

func TestComponentAtPrefersTopmost(t *testing.T) {
	comps := []domain.Component{
		{ID: "bottom", Position: domain.Position{X: 0, Y: 0, Width: 100, Height: 100}},
		{ID: "top", Position: domain.Position{X: 50, Y: 50, Width: 100, Height: 100}},
	}
	c, ok := ComponentAt(75, 75, comps)
	if !ok || c.ID != "top" {
		t.Fatalf("expected topmost hit, got %+v ok=%v", c, ok)
	}
	c, ok = ComponentAt(10, 10, comps)
	if !ok || c.ID != "bottom" {
		t.Fatalf("expected bottom hit, got %+v ok=%v", c, ok)
	}
	if _, ok := ComponentAt(400, 400, comps); ok {
		t.Fatalf("expected miss on empty canvas")
	}
}
