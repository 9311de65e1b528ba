/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the
 *  specific language governing permissions and limitations under the License.
 */

// Package export renders a dashboard to shareable artifacts. Card styles use
// CSS hex colors; both pipelines share the parsing here.
package export

import (
	"image/color"
	"strconv"
	"strings"

	"reportcanvas/internal/domain"
)

type rgb struct {
	R, G, B uint8
}

var (
	colorWhite  = rgb{255, 255, 255}
	colorInk    = rgb{26, 26, 46}
	colorBorder = rgb{226, 228, 238}
)

// styleColor resolves a style key to a color, falling back when the key is
// missing or unparsable.
func styleColor(s domain.Style, key string, fallback rgb) rgb {
	if s == nil {
		return fallback
	}
	c, ok := parseHexColor(s[key])
	if !ok {
		return fallback
	}
	return c
}

// parseHexColor accepts "#rgb" and "#rrggbb".
func parseHexColor(s string) (rgb, bool) {
	s = strings.TrimPrefix(strings.TrimSpace(s), "#")
	switch len(s) {
	case 3:
		s = string([]byte{s[0], s[0], s[1], s[1], s[2], s[2]})
	case 6:
	default:
		return rgb{}, false
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return rgb{}, false
	}
	return rgb{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v)}, true
}

func (c rgb) rgba() color.RGBA {
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: 255}
}
