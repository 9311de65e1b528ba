/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the
 *  specific language governing permissions and limitations under the License.
 */

// Package reconcile merges freshly generated template output with the user's
// prior work on a dashboard. Regeneration never throws edits away: manual
// text and cell overrides are re-applied by component id, user-created cards
// are carried forward (restyled to the active theme, nothing else touched),
// deletions stay deleted, and on a cosmetic
// regeneration dragged positions survive too.
package reconcile

import (
	"strings"

	"reportcanvas/internal/domain"
)

// Input is one reconciliation run.
type Input struct {
	// Previous is the dashboard's current card list.
	Previous []domain.Component
	// Generated is the fresh template output for the new settings.
	Generated []domain.Component
	// Edits are the user's manual overrides, keyed by component id.
	Edits map[string]domain.EditRecord
	// DeletedIDs lists template components the user removed; they stay
	// removed across regenerations.
	DeletedIDs []string
	// Structural selects fresh positions over carried ones (see Structural).
	Structural bool
	// ThemeStyle holds the active theme's card colors. Custom cards keep
	// their content and position but take these colors, so a theme switch
	// restyles the whole canvas, not just the template cards.
	ThemeStyle domain.Style
}

// Reconcile produces the new card list: generated template components with
// edits and carried positions applied, followed by the user's own cards in
// their previous order.
func Reconcile(in Input) []domain.Component {
	deleted := make(map[string]bool, len(in.DeletedIDs))
	for _, id := range in.DeletedIDs {
		deleted[id] = true
	}
	prior := make(map[string]domain.Component, len(in.Previous))
	for _, c := range in.Previous {
		prior[c.ID] = c
	}

	out := make([]domain.Component, 0, len(in.Generated))
	for _, gen := range in.Generated {
		if deleted[gen.ID] {
			continue
		}
		c := gen.Clone()
		if prev, ok := prior[c.ID]; ok && !in.Structural {
			c.Position = prev.Position
			c.Style = carryStyle(c.Style, prev.Style)
		}
		if edit, ok := in.Edits[c.ID]; ok {
			applyEdit(&c, edit)
		}
		out = append(out, c)
	}

	for _, c := range in.Previous {
		if !isCustom(c) || deleted[c.ID] {
			continue
		}
		kept := c.Clone()
		kept.Style = retheme(kept.Style, in.ThemeStyle)
		if edit, ok := in.Edits[kept.ID]; ok {
			applyEdit(&kept, edit)
		}
		out = append(out, kept)
	}
	return out
}

// applyEdit overlays an edit record onto a component. Nil pointers leave the
// generated value alone; table overrides replace the cell data wholesale.
func applyEdit(c *domain.Component, e domain.EditRecord) {
	if e.Title != nil {
		c.Title = *e.Title
	}
	if e.Value != nil {
		c.Value = *e.Value
	}
	if e.Subtitle != nil {
		c.Subtitle = *e.Subtitle
	}
	if cells := e.CellData(); cells != nil {
		if c.Config == nil {
			c.Config = &domain.TableConfig{}
		}
		c.Config.CustomData = cells
	}
}

// themeKeys are the style keys a theme writes; every other key belongs to
// the user.
var themeKeys = []string{"background", "color", "border"}

// retheme overwrites the theme keys on a carried custom card with the active
// theme's colors, leaving user-set keys alone.
func retheme(style, theme domain.Style) domain.Style {
	if theme == nil {
		return style
	}
	if style == nil {
		style = make(domain.Style, len(theme))
	}
	for _, k := range themeKeys {
		if v, ok := theme[k]; ok {
			style[k] = v
		}
	}
	return style
}

// carryStyle keeps the generated theme keys but carries forward any extra
// keys the user set on the previous card (the theme only ever writes
// background, color and border).
func carryStyle(generated, previous domain.Style) domain.Style {
	if previous == nil {
		return generated
	}
	if generated == nil {
		generated = make(domain.Style, len(previous))
	}
	for k, v := range previous {
		if _, ok := generated[k]; !ok {
			generated[k] = v
		}
	}
	return generated
}

// legacyCustomPrefixes identifies user-created cards in documents written
// before the origin field existed.
var legacyCustomPrefixes = []string{
	"table-", "chart-", "custom-", "image-", "authority-", "geographic-",
}

// isCustom reports whether a card is user-owned and must survive
// regeneration. The origin field is authoritative; for legacy documents
// without one, the id prefix convention decides.
func isCustom(c domain.Component) bool {
	switch c.Origin {
	case domain.OriginCustom, domain.OriginGroup:
		return true
	case domain.OriginTemplate:
		return false
	}
	if strings.HasPrefix(c.ID, "group-") {
		return true
	}
	for _, p := range legacyCustomPrefixes {
		if strings.HasPrefix(c.ID, p) {
			return true
		}
	}
	return false
}
