/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package canvas

// Group transforms: combine a selection into one movable entity and back.
// Children store offsets relative to the group origin; those offsets are the
// single source of truth for placement while grouped.

import (
	"fmt"

	"github.com/google/uuid"

	"reportcanvas/internal/domain"
)

// CreateGroup combines the selected components into a single group whose
// position is their union bounding box. Children are deep copies carrying
// RelativePosition = child.position - group.position. Returns nil for fewer
// than two components (no-op, not an error). The caller replaces the
// originals with the returned group in its flat list.
func CreateGroup(selected []domain.Component) *domain.Component {
	if len(selected) < 2 {
		return nil
	}
	rects := make([]domain.Position, len(selected))
	for i, c := range selected {
		rects[i] = c.Position
	}
	bounds := UnionBounds(rects)

	children := make([]domain.Child, len(selected))
	for i, c := range selected {
		children[i] = domain.Child{
			Component: c.Clone(),
			RelativePosition: domain.Position{
				X:      c.Position.X - bounds.X,
				Y:      c.Position.Y - bounds.Y,
				Width:  c.Position.Width,
				Height: c.Position.Height,
			},
		}
	}
	return &domain.Component{
		ID:       "group-" + uuid.NewString(),
		Type:     domain.TypeGroup,
		Origin:   domain.OriginGroup,
		Position: bounds,
		Children: children,
	}
}

// Ungroup dissolves a group back into standalone components at absolute
// positions. Non-group input yields an empty slice. Each component gets a
// fresh suffixed id so repeated ungroups of copied groups never collide.
func Ungroup(group domain.Component) []domain.Component {
	if group.Type != domain.TypeGroup {
		return []domain.Component{}
	}
	out := make([]domain.Component, 0, len(group.Children))
	for _, ch := range group.Children {
		c := ch.Component.Clone()
		c.ID = fmt.Sprintf("%s-%s", ch.ID, uuid.NewString()[:8])
		c.Position = domain.Position{
			X:      group.Position.X + ch.RelativePosition.X,
			Y:      group.Position.Y + ch.RelativePosition.Y,
			Width:  ch.RelativePosition.Width,
			Height: ch.RelativePosition.Height,
		}
		out = append(out, c)
	}
	return out
}

// ResizeGroup scales the group to the new size, scaling every child's
// relative offset and size proportionally. A zero-size axis scales by 1 to
// avoid dividing by zero.
func ResizeGroup(group domain.Component, width, height float64) domain.Component {
	out := group.Clone()
	if group.Type != domain.TypeGroup {
		return out
	}
	scaleX, scaleY := 1.0, 1.0
	if group.Position.Width != 0 {
		scaleX = width / group.Position.Width
	}
	if group.Position.Height != 0 {
		scaleY = height / group.Position.Height
	}
	out.Position.Width = group.Position.Width * scaleX
	out.Position.Height = group.Position.Height * scaleY
	for i := range out.Children {
		rp := &out.Children[i].RelativePosition
		rp.X *= scaleX
		rp.Y *= scaleY
		rp.Width *= scaleX
		rp.Height *= scaleY
	}
	return out
}

// MoveGroup translates the group. Children keep their relative offsets, so
// nothing else needs recomputation.
func MoveGroup(group domain.Component, x, y float64) domain.Component {
	out := group.Clone()
	out.Position.X = x
	out.Position.Y = y
	return out
}
