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
	"os"
	"path/filepath"

	"github.com/jung-kurt/gofpdf"

	"reportcanvas/internal/domain"
	"reportcanvas/internal/storage"
)

// PDFOptions controls PDF export behavior.
// Units are points (pt); the canvas maps 1:1 onto a custom 1024x576pt page.
// Vector text is used throughout; we rely on built-in Helvetica for
// portability.
type PDFOptions struct {
	// IncludeGrid draws a faint card-boundary grid for proofing.
	IncludeGrid bool
}

// ExportPDF renders the dashboard to a single-page PDF at outPath. A
// relative outPath lands in the dashboard's exports folder.
func ExportPDF(h *storage.Handle, outPath string, opt PDFOptions) error {
	if h == nil {
		return fmt.Errorf("dashboard handle is nil")
	}
	if outPath == "" {
		outPath = h.Dashboard.Name + ".pdf"
	}
	if !filepath.IsAbs(outPath) {
		outPath = filepath.Join(h.Root, "exports", outPath)
	}
	if err := os.MkdirAll(filepath.Dir(outPath), 0o755); err != nil {
		return fmt.Errorf("ensure out dir: %w", err)
	}

	pdf := gofpdf.NewCustom(&gofpdf.InitType{
		UnitStr:        "pt",
		Size:           gofpdf.SizeType{Wd: domain.CanvasWidth, Ht: domain.CanvasHeight},
		OrientationStr: "",
	})
	pdf.SetTitle(h.Dashboard.Name, false)
	pdf.SetAuthor("Report Canvas", false)
	pdf.SetFont("Helvetica", "", 12)
	pdf.AddPageFormat("", gofpdf.SizeType{Wd: domain.CanvasWidth, Ht: domain.CanvasHeight})

	for _, c := range h.Dashboard.Cards {
		drawComponentPDF(pdf, c, c.Position, opt)
	}

	if err := pdf.OutputFileAndClose(outPath); err != nil {
		return fmt.Errorf("write pdf: %w", err)
	}
	return nil
}

func drawComponentPDF(pdf *gofpdf.Fpdf, c domain.Component, pos domain.Position, opt PDFOptions) {
	if c.Type == domain.TypeGroup {
		// Groups have no chrome of their own; children render at absolute
		// positions.
		for _, ch := range c.Children {
			abs := domain.Position{
				X:      pos.X + ch.RelativePosition.X,
				Y:      pos.Y + ch.RelativePosition.Y,
				Width:  ch.RelativePosition.Width,
				Height: ch.RelativePosition.Height,
			}
			drawComponentPDF(pdf, ch.Component, abs, opt)
		}
		return
	}

	bg := styleColor(c.Style, "background", colorWhite)
	fg := styleColor(c.Style, "color", colorInk)
	border := styleColor(c.Style, "border", colorBorder)

	pdf.SetFillColor(int(bg.R), int(bg.G), int(bg.B))
	pdf.SetDrawColor(int(border.R), int(border.G), int(border.B))
	pdf.SetLineWidth(1)
	pdf.Rect(pos.X, pos.Y, pos.Width, pos.Height, "FD")
	if opt.IncludeGrid {
		pdf.SetDrawColor(255, 0, 0)
		pdf.SetLineWidth(0.2)
		pdf.Rect(pos.X, pos.Y, pos.Width, pos.Height, "D")
	}

	pdf.SetTextColor(int(fg.R), int(fg.G), int(fg.B))
	switch c.Type {
	case domain.TypeTable:
		drawTablePDF(pdf, c, pos)
	case domain.TypeSpecialtyStrips:
		drawStripsPDF(pdf, c, pos)
	case domain.TypeImage:
		// Placeholder frame with the source path; raster assets embed in the
		// PNG pipeline.
		pdf.SetFont("Helvetica", "I", 8)
		pdf.Text(pos.X+6, pos.Y+pos.Height/2, c.Src)
	default:
		drawMetricPDF(pdf, c, pos)
	}
}

func drawMetricPDF(pdf *gofpdf.Fpdf, c domain.Component, pos domain.Position) {
	y := pos.Y + 18
	if c.Title != "" {
		pdf.SetFont("Helvetica", "B", 11)
		pdf.Text(pos.X+10, y, c.Title)
		y += 26
	}
	if c.Value != "" {
		pdf.SetFont("Helvetica", "B", 22)
		pdf.Text(pos.X+10, y, c.Value)
		y += 20
	}
	if c.Subtitle != "" {
		pdf.SetFont("Helvetica", "", 9)
		pdf.Text(pos.X+10, y, c.Subtitle)
	}
}

func drawTablePDF(pdf *gofpdf.Fpdf, c domain.Component, pos domain.Position) {
	y := pos.Y + 16
	if c.Title != "" {
		pdf.SetFont("Helvetica", "B", 10)
		pdf.Text(pos.X+8, y, c.Title)
		y += 10
	}
	if c.Config == nil || len(c.Config.CustomData) == 0 {
		return
	}
	rows := c.Config.CustomData
	cols := len(rows[0])
	if cols == 0 {
		return
	}
	cellW := (pos.Width - 16) / float64(cols)
	cellH := 14.0
	for ri, row := range rows {
		if y+cellH > pos.Y+pos.Height {
			break
		}
		if ri == 0 {
			pdf.SetFont("Helvetica", "B", 8)
		} else {
			pdf.SetFont("Helvetica", "", 8)
		}
		for ci, cell := range row {
			x := pos.X + 8 + float64(ci)*cellW
			pdf.Rect(x, y, cellW, cellH, "D")
			pdf.Text(x+3, y+10, cell)
		}
		y += cellH
	}
}

func drawStripsPDF(pdf *gofpdf.Fpdf, c domain.Component, pos domain.Position) {
	y := pos.Y + 16
	if c.Title != "" {
		pdf.SetFont("Helvetica", "B", 10)
		pdf.Text(pos.X+8, y, c.Title)
		y += 12
	}
	stripH := 24.0
	for _, s := range c.Specialties {
		if y+stripH > pos.Y+pos.Height {
			break
		}
		pdf.Rect(pos.X+8, y, pos.Width-16, stripH, "D")
		pdf.SetFont("Helvetica", "B", 9)
		pdf.Text(pos.X+14, y+15, s.Name)
		pdf.SetFont("Helvetica", "", 9)
		line := fmt.Sprintf("%.1f%% of audience, %.1f%% open rate", s.Stats.AudiencePercentage, s.Stats.UniqueOpenRate)
		pdf.Text(pos.X+pos.Width/2, y+15, line)
		y += stripH + 4
	}
}
