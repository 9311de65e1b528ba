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
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"reportcanvas/internal/domain"
	"reportcanvas/internal/storage"
)

func testHandle(t *testing.T) *storage.Handle {
	t.Helper()
	d := domain.Dashboard{
		Name: "Export Check",
		Cards: []domain.Component{
			{
				ID:       "report-title",
				Type:     domain.TypeTitle,
				Position: domain.Position{X: 40, Y: 24, Width: 944, Height: 56},
				Style:    domain.Style{"background": "#ffffff", "color": "#1a1a2e", "border": "#e2e4ee"},
				Title:    "Export Check",
			},
			{
				ID:       "hero-unique-engagement",
				Type:     domain.TypeHero,
				Position: domain.Position{X: 40, Y: 100, Width: 319, Height: 140},
				Title:    "Unique Engagement",
				Value:    "25.0%",
				Subtitle: "200 unique opens",
			},
			{
				ID:       "additional-table-1",
				Type:     domain.TypeTable,
				Position: domain.Position{X: 624, Y: 368, Width: 360, Height: 184},
				Title:    "Geographic Distribution",
				Config:   &domain.TableConfig{CustomData: [][]string{{"Region", "Share"}, {"Northeast", "38.0%"}}},
			},
			{
				ID:       "group-1",
				Type:     domain.TypeGroup,
				Position: domain.Position{X: 100, Y: 400, Width: 200, Height: 100},
				Children: []domain.Child{
					{
						Component:        domain.Component{ID: "custom-note-1", Type: domain.TypeMetric, Title: "Note"},
						RelativePosition: domain.Position{X: 10, Y: 10, Width: 80, Height: 40},
					},
				},
			},
		},
	}
	h, err := storage.Init(t.TempDir(), d)
	if err != nil {
		t.Fatalf("Init error: %v", err)
	}
	return h
}

func TestExportPDFWritesFile(t *testing.T) {
	h := testHandle(t)
	if err := ExportPDF(h, "out.pdf", PDFOptions{}); err != nil {
		t.Fatalf("ExportPDF error: %v", err)
	}
	path := filepath.Join(h.Root, "exports", "out.pdf")
	fi, err := os.Stat(path)
	if err != nil {
		t.Fatalf("pdf missing: %v", err)
	}
	if fi.Size() == 0 {
		t.Fatalf("pdf is empty")
	}
}

func TestExportPNGDimensions(t *testing.T) {
	h := testHandle(t)
	if err := ExportPNG(h, "out.png", PNGOptions{Scale: 2}); err != nil {
		t.Fatalf("ExportPNG error: %v", err)
	}
	f, err := os.Open(filepath.Join(h.Root, "exports", "out.png"))
	if err != nil {
		t.Fatalf("png missing: %v", err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		t.Fatalf("decode png: %v", err)
	}
	b := img.Bounds()
	if b.Dx() != 2048 || b.Dy() != 1152 {
		t.Fatalf("png size = %dx%d, want 2048x1152", b.Dx(), b.Dy())
	}
}

func TestExportRejectsNilHandle(t *testing.T) {
	if err := ExportPDF(nil, "x.pdf", PDFOptions{}); err == nil {
		t.Fatalf("expected error for nil handle")
	}
	if err := ExportPNG(nil, "x.png", PNGOptions{}); err == nil {
		t.Fatalf("expected error for nil handle")
	}
}

func TestParseHexColor(t *testing.T) {
	c, ok := parseHexColor("#10182b")
	if !ok || c.R != 0x10 || c.G != 0x18 || c.B != 0x2b {
		t.Fatalf("parseHexColor long form = %+v, %v", c, ok)
	}
	c, ok = parseHexColor("#fff")
	if !ok || c != (rgb{255, 255, 255}) {
		t.Fatalf("parseHexColor short form = %+v, %v", c, ok)
	}
	if _, ok := parseHexColor("blue"); ok {
		t.Fatalf("named colors are not supported")
	}
}
