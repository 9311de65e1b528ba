/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the
 *  specific language governing permissions and limitations under the License.
 */

package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"reportcanvas/internal/backend"
	"reportcanvas/internal/config"
	"reportcanvas/internal/crash"
	"reportcanvas/internal/domain"
	"reportcanvas/internal/export"
	applog "reportcanvas/internal/log"
	"reportcanvas/internal/reconcile"
	"reportcanvas/internal/storage"
	"reportcanvas/internal/telemetry"
	"reportcanvas/internal/template"
	"reportcanvas/internal/version"
)

func usage() {
	fmt.Println("Report Canvas — campaign dashboard builder")
	fmt.Printf("Version: %s\n", version.String())
	fmt.Println()
	fmt.Println("Usage:")
	fmt.Println("  reportcanvas version|-v|--version                 Show version")
	fmt.Println("  reportcanvas init <dir> <name>                    Create a new dashboard at <dir>")
	fmt.Println("  reportcanvas open <dir>                           Open dashboard at <dir> and print summary")
	fmt.Println("  reportcanvas templates                            List template ids")
	fmt.Println("  reportcanvas generate <dir> <template> <data>     Generate from campaign data (JSON array) and reconcile")
	fmt.Println("  reportcanvas export pdf|png <dir> [out]           Export the dashboard")
	fmt.Println("  reportcanvas campaigns                            List campaigns from the configured backend")
	fmt.Println("  reportcanvas campaigns sync                       Refresh the local campaign cache from the backend")
}

func main() {
	// initialize structured logging using environment defaults
	applog.Init(applog.FromEnv())
	l := applog.WithComponent("cli")
	var h *storage.Handle
	defer func() { crash.Recover(h) }()

	args := os.Args
	l.Debug("start", slog.Int("args", len(args)))
	if len(args) < 2 {
		usage()
		return
	}
	switch args[1] {
	case "version", "--version", "-v":
		fmt.Println("Report Canvas — campaign dashboard builder")
		fmt.Println(version.String())
	case "init":
		if len(args) < 4 {
			fmt.Println("init requires <dir> and <name>")
			usage()
			os.Exit(2)
		}
		abs, _ := filepath.Abs(args[2])
		name := args[3]
		l.Info("init dashboard", slog.String("root", abs), slog.String("name", name))
		d := domain.Dashboard{Name: name, Cards: []domain.Component{}, Theme: domain.ThemeDefault}
		created, err := storage.Init(abs, d)
		if err != nil {
			fail(l, "init failed", err)
		}
		h = created
		fmt.Println("Created dashboard at", abs)
	case "open":
		if len(args) < 3 {
			fmt.Println("open requires <dir>")
			usage()
			os.Exit(2)
		}
		abs, _ := filepath.Abs(args[2])
		l.Info("open dashboard", slog.String("root", abs))
		opened, err := storage.Open(abs)
		if err != nil {
			fail(l, "open failed", err)
		}
		h = opened
		fmt.Printf("Opened dashboard: %s\n", h.Dashboard.Name)
		fmt.Printf("Cards: %d\n", len(h.Dashboard.Cards))
		fmt.Printf("Template: %s\n", h.Dashboard.SelectedTemplate)
		fmt.Println("Root:", h.Root)
	case "templates":
		for _, id := range template.IDs() {
			fmt.Println(id)
		}
	case "generate":
		if len(args) < 5 {
			fmt.Println("generate requires <dir>, <template> and <data>")
			usage()
			os.Exit(2)
		}
		h = runGenerate(l, args[2], args[3], args[4])
	case "export":
		if len(args) < 4 {
			fmt.Println("export requires pdf|png and <dir>")
			usage()
			os.Exit(2)
		}
		h = runExport(l, args[2], args[3], args[4:])
	case "campaigns":
		if len(args) > 2 && args[2] == "sync" {
			runCampaignSync(l)
		} else {
			runCampaigns(l)
		}
	default:
		usage()
		os.Exit(2)
	}
}

func fail(l *slog.Logger, msg string, err error) {
	l.Error(msg, slog.Any("err", err))
	fmt.Println("Error:", err)
	os.Exit(1)
}

// runGenerate loads campaign records from a JSON file, regenerates the
// dashboard's template output, reconciles it against the user's current
// state, and saves.
func runGenerate(l *slog.Logger, dir, templateID, dataPath string) *storage.Handle {
	abs, _ := filepath.Abs(dir)
	h, err := storage.Open(abs)
	if err != nil {
		fail(l, "open failed", err)
	}

	raw, err := os.ReadFile(dataPath)
	if err != nil {
		fail(l, "read campaign data failed", err)
	}
	var campaigns []domain.Campaign
	if err := json.Unmarshal(raw, &campaigns); err != nil {
		fail(l, "parse campaign data failed", err)
	}

	d := &h.Dashboard
	d.SelectedTemplate = templateID
	next := reconcile.SignatureOf(*d)
	if !reconcile.ShouldRegenerate(*d, next) {
		l.Info("trigger unchanged, skipping regeneration", slog.String("template", templateID))
		fmt.Printf("Dashboard is up to date (%s)\n", templateID)
		return h
	}
	generated, err := template.Generate(template.Params{
		TemplateID:          templateID,
		Campaigns:           campaigns,
		Theme:               d.Theme,
		MergeSubspecialties: d.MergeSubspecialties,
		CostComparisonMode:  d.CostComparisonMode,
		ShowPatientImpact:   d.ShowPatientImpact,
		ShowTotalSends:      d.ShowTotalSends,
		SelectedTableTypes:  d.SelectedTableTypes,
	})
	if err != nil {
		fail(l, "generate failed", err)
	}

	prev := reconcile.ParseSignature(d.LastTrigger)
	structural := d.LastTrigger == "" || reconcile.Structural(prev, next)
	d.Cards = reconcile.Reconcile(reconcile.Input{
		Previous:   d.Cards,
		Generated:  generated,
		Edits:      d.UserEdits,
		DeletedIDs: d.DeletedCardIDs,
		Structural: structural,
		ThemeStyle: template.ThemeStyle(d.Theme),
	})
	d.LastTrigger = next.String()

	if err := storage.Save(h); err != nil {
		fail(l, "save failed", err)
	}
	if db, err := storage.InitOrOpenIndex(h.Root); err != nil {
		l.Warn("index unavailable", slog.Any("err", err))
	} else {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		if err := storage.Reindex(ctx, db, *d); err != nil {
			l.Warn("reindex failed", slog.Any("err", err))
		}
		cancel()
		_ = db.Close()
	}
	telemetry.Event("template_generated", map[string]any{"template": templateID, "structural": structural})
	fmt.Printf("Generated %d cards (%s)\n", len(d.Cards), templateID)
	return h
}

func runExport(l *slog.Logger, format, dir string, rest []string) *storage.Handle {
	abs, _ := filepath.Abs(dir)
	h, err := storage.Open(abs)
	if err != nil {
		fail(l, "open failed", err)
	}
	out := ""
	if len(rest) > 0 {
		out = rest[0]
	}
	switch format {
	case "pdf":
		if err := export.ExportPDF(h, out, export.PDFOptions{}); err != nil {
			fail(l, "pdf export failed", err)
		}
	case "png":
		if err := export.ExportPNG(h, out, export.PNGOptions{}); err != nil {
			fail(l, "png export failed", err)
		}
	default:
		fmt.Println("export format must be pdf or png")
		os.Exit(2)
	}
	fmt.Println("Exported", format)
	return h
}

// backendClient builds the analytics client from the user config and keyring
// token.
func backendClient(l *slog.Logger) (*backend.Client, config.AppConfig) {
	cfg, token, err := config.Load()
	if err != nil {
		fail(l, "load config failed", err)
	}
	if cfg.Backend.BaseURL == "" {
		fmt.Println("No backend configured; set backend.base_url in the config file.")
		os.Exit(2)
	}
	c := backend.NewClient(cfg.Backend.BaseURL, token)
	if cfg.Backend.TimeoutMs > 0 {
		c.SetTimeout(time.Duration(cfg.Backend.TimeoutMs) * time.Millisecond)
	}
	return c, cfg
}

func runCampaigns(l *slog.Logger) {
	c, _ := backendClient(l)
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	list, err := c.ListCampaigns(ctx)
	if err != nil {
		fail(l, "list campaigns failed", err)
	}
	for _, cs := range list {
		fmt.Printf("%s\t%s\t%s\n", cs.ID, cs.Name, cs.UpdatedAt.Format(time.RFC3339))
	}
}

// runCampaignSync pulls all campaign records from the backend into the
// configured Postgres cache.
func runCampaignSync(l *slog.Logger) {
	c, cfg := backendClient(l)
	if cfg.Backend.CacheDSN == "" {
		fmt.Println("No campaign cache configured; set backend.cache_dsn in the config file.")
		os.Exit(2)
	}
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()
	store, err := backend.OpenStore(ctx, cfg.Backend.CacheDSN)
	if err != nil {
		fail(l, "open campaign cache failed", err)
	}
	defer store.Close()
	n, err := backend.SyncCampaigns(ctx, c, store)
	if err != nil {
		fail(l, "campaign sync failed", err)
	}
	l.Info("campaign cache refreshed", slog.Int("campaigns", n))
	fmt.Printf("Synced %d campaigns\n", n)
}
