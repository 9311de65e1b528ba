/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the
 *  specific language governing permissions and limitations under the License.
 */

package export

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"math"
	"os"
	"path/filepath"

	"reportcanvas/internal/domain"
	"reportcanvas/internal/storage"
)

// PNGOptions controls PNG export behavior.
// Scale multiplies the logical 1024x576 canvas into output pixels; 2 renders
// 2048x1152. Zero means 1.
type PNGOptions struct {
	Scale float64
}

// ExportPNG rasterizes the dashboard card geometry to a PNG at outPath. A
// relative outPath lands in the dashboard's exports folder. Card fills and
// borders render exactly; text is left to the vector (PDF) pipeline.
func ExportPNG(h *storage.Handle, outPath string, opt PNGOptions) error {
	if h == nil {
		return fmt.Errorf("dashboard handle is nil")
	}
	if outPath == "" {
		outPath = h.Dashboard.Name + ".png"
	}
	if !filepath.IsAbs(outPath) {
		outPath = filepath.Join(h.Root, "exports", outPath)
	}
	if err := os.MkdirAll(filepath.Dir(outPath), 0o755); err != nil {
		return fmt.Errorf("ensure out dir: %w", err)
	}

	scale := opt.Scale
	if scale <= 0 {
		scale = 1
	}
	pixW := int(math.Round(domain.CanvasWidth * scale))
	pixH := int(math.Round(domain.CanvasHeight * scale))

	img := image.NewRGBA(image.Rect(0, 0, pixW, pixH))
	draw.Draw(img, img.Bounds(), &image.Uniform{C: color.RGBA{245, 246, 250, 255}}, image.Point{}, draw.Src)

	for _, c := range h.Dashboard.Cards {
		drawComponentPNG(img, c, c.Position, scale)
	}

	f, err := os.Create(outPath)
	if err != nil {
		return fmt.Errorf("create png: %w", err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		return fmt.Errorf("encode png: %w", err)
	}
	return nil
}

func drawComponentPNG(img *image.RGBA, c domain.Component, pos domain.Position, scale float64) {
	if c.Type == domain.TypeGroup {
		for _, ch := range c.Children {
			abs := domain.Position{
				X:      pos.X + ch.RelativePosition.X,
				Y:      pos.Y + ch.RelativePosition.Y,
				Width:  ch.RelativePosition.Width,
				Height: ch.RelativePosition.Height,
			}
			drawComponentPNG(img, ch.Component, abs, scale)
		}
		return
	}

	x0 := int(math.Round(pos.X * scale))
	y0 := int(math.Round(pos.Y * scale))
	x1 := int(math.Round((pos.X + pos.Width) * scale))
	y1 := int(math.Round((pos.Y + pos.Height) * scale))

	bg := styleColor(c.Style, "background", colorWhite).rgba()
	border := styleColor(c.Style, "border", colorBorder).rgba()

	fillRect(img, x0, y0, x1, y1, bg)
	strokeRect(img, x0, y0, x1-1, y1-1, border)
}

func fillRect(img *image.RGBA, x0, y0, x1, y1 int, c color.RGBA) {
	r := image.Rect(x0, y0, x1, y1).Intersect(img.Bounds())
	draw.Draw(img, r, &image.Uniform{C: c}, image.Point{}, draw.Src)
}

// strokeRect draws a 1px rectangle outline with inclusive corners.
func strokeRect(img *image.RGBA, x0, y0, x1, y1 int, c color.RGBA) {
	for x := x0; x <= x1; x++ {
		setPx(img, x, y0, c)
		setPx(img, x, y1, c)
	}
	for y := y0; y <= y1; y++ {
		setPx(img, x0, y, c)
		setPx(img, x1, y, c)
	}
}

func setPx(img *image.RGBA, x, y int, c color.RGBA) {
	if image.Pt(x, y).In(img.Bounds()) {
		img.SetRGBA(x, y, c)
	}
}
