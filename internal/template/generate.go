/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the
 *  specific language governing permissions and limitations under the License.
 */

// Package template turns campaign data plus display options into a
// deterministic, ordered list of positioned components. Component ids are
// fixed per slot (e.g. "hero-unique-engagement") and stable across
// regenerations of the same variant, which is what lets the reconciler carry
// user edits forward.
package template

import (
	"errors"
	"fmt"
	"sort"

	"reportcanvas/internal/domain"
)

// Params is the full input of a generation run: which template, which
// campaigns, and every toggle that shapes the output.
type Params struct {
	TemplateID          string
	Campaigns           []domain.Campaign
	Theme               string
	MergeSubspecialties bool
	CostComparisonMode  string
	ShowPatientImpact   bool
	ShowTotalSends      bool
	SelectedTableTypes  domain.TableTypes
}

// Template ids: single/multi campaign × zero to three extra tables.
const (
	SingleCampaign            = "single-campaign"
	SingleCampaignOneTable    = "single-campaign-1-table"
	SingleCampaignTwoTables   = "single-campaign-2-tables"
	SingleCampaignThreeTables = "single-campaign-3-tables"
	MultiCampaign             = "multi-campaign"
	MultiCampaignOneTable     = "multi-campaign-1-table"
	MultiCampaignTwoTables    = "multi-campaign-2-tables"
	MultiCampaignThreeTables  = "multi-campaign-3-tables"
)

type variant struct {
	multi  bool
	tables int
}

var variants = map[string]variant{
	SingleCampaign:            {multi: false, tables: 0},
	SingleCampaignOneTable:    {multi: false, tables: 1},
	SingleCampaignTwoTables:   {multi: false, tables: 2},
	SingleCampaignThreeTables: {multi: false, tables: 3},
	MultiCampaign:             {multi: true, tables: 0},
	MultiCampaignOneTable:     {multi: true, tables: 1},
	MultiCampaignTwoTables:    {multi: true, tables: 2},
	MultiCampaignThreeTables:  {multi: true, tables: 3},
}

// ErrUnknownTemplate is returned for a template id outside the registry.
var ErrUnknownTemplate = errors.New("unknown template id")

// IDs lists all registered template ids, sorted.
func IDs() []string {
	out := make([]string, 0, len(variants))
	for id := range variants {
		out = append(out, id)
	}
	sort.Strings(out)
	return out
}

// patientsPerProvider scales engaged providers to an estimated patient
// reach for the patient-impact card.
const patientsPerProvider = 150

// Generate produces the full component list for a template variant. It is a
// pure function: same params, same output, in the same order (title, hero
// row, secondary row, breakdown/tables, logo).
func Generate(p Params) ([]domain.Component, error) {
	v, ok := variants[p.TemplateID]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownTemplate, p.TemplateID)
	}
	if len(p.Campaigns) == 0 {
		return nil, errors.New("at least one campaign is required")
	}

	c := p.Campaigns[0]
	if v.multi {
		c = Aggregate(p.Campaigns)
	}

	var comps []domain.Component
	comps = append(comps, titleCard(c, p.Theme))
	comps = append(comps, heroRow(c, p)...)
	comps = append(comps, secondaryRow(c, p)...)
	comps = append(comps, breakdownAndTables(c, p, v.tables)...)
	if p.Theme != "" && p.Theme != domain.ThemeDefault {
		comps = append(comps, logoCard(p.Theme))
	}
	return comps, nil
}

func titleCard(c domain.Campaign, theme string) domain.Component {
	return domain.Component{
		ID:       "report-title",
		Type:     domain.TypeTitle,
		Origin:   domain.OriginTemplate,
		Position: titleSlot,
		Style:    cardStyle(theme),
		Title:    c.Name,
		Subtitle: "Email Campaign Performance",
	}
}

// heroRow builds the top metric cards. The cost-comparison card joins the
// row only when a cost mode is active, and the card count decides the row
// geometry (two wide cards, or three narrow ones).
func heroRow(c domain.Campaign, p Params) []domain.Component {
	vm := c.VolumeMetrics
	cards := []domain.Component{
		{
			ID:       "hero-unique-engagement",
			Type:     domain.TypeHero,
			Title:    "Unique Engagement",
			Value:    formatPercent(c.CoreMetrics.UniqueOpenRate),
			Subtitle: formatCount(vm.UniqueOpens) + " unique opens",
		},
		{
			ID:       "healthcare-professionals-reached",
			Type:     domain.TypeHero,
			Title:    "Healthcare Professionals Reached",
			Value:    formatCount(vm.Delivered),
			Subtitle: formatPercent(rate(vm.Delivered, vm.Sent)) + " delivery rate",
		},
	}
	if p.CostComparisonMode != "" && p.CostComparisonMode != domain.CostModeNone {
		cost := domain.Component{
			ID:       "cost-comparison",
			Type:     domain.TypeCostComparison,
			Title:    "Cost Efficiency",
			Value:    formatMoney(c.CostMetrics.CostPerEngagement),
			Subtitle: "vs " + formatMoney(c.CostMetrics.IndustryBenchmark) + " industry benchmark",
		}
		cards = append(cards, cost)
	}
	n := len(cards)
	for i := range cards {
		cards[i].Origin = domain.OriginTemplate
		cards[i].Position = heroSlot(i, n)
		cards[i].Style = cardStyle(p.Theme)
		if cards[i].ID == "cost-comparison" {
			cards[i].Style["variant"] = p.CostComparisonMode
		}
	}
	return cards
}

func secondaryRow(c domain.Campaign, p Params) []domain.Component {
	vm := c.VolumeMetrics
	cards := []domain.Component{
		{
			ID:       "total-engagement",
			Type:     domain.TypeSecondary,
			Title:    "Total Opens",
			Value:    formatCount(vm.TotalOpens),
			Subtitle: formatPercent(rate(vm.TotalOpens, vm.Delivered)) + " total open rate",
		},
		{
			ID:       "unique-click-rate",
			Type:     domain.TypeSecondary,
			Title:    "Unique Click Rate",
			Value:    formatPercent(c.CoreMetrics.UniqueClickRate),
			Subtitle: "of delivered emails",
		},
	}
	if p.ShowTotalSends {
		cards = append(cards, domain.Component{
			ID:       "total-sends",
			Type:     domain.TypeSecondary,
			Title:    "Total Sends",
			Value:    formatCount(vm.Sent),
			Subtitle: "across all audiences",
		})
	}
	if p.ShowPatientImpact {
		cards = append(cards, domain.Component{
			ID:       "patient-impact",
			Type:     domain.TypeSecondary,
			Title:    "Estimated Patient Impact",
			Value:    formatCount(vm.UniqueOpens * patientsPerProvider),
			Subtitle: formatCount(vm.UniqueOpens) + " engaged providers",
		})
	}
	n := len(cards)
	for i := range cards {
		cards[i].Origin = domain.OriginTemplate
		cards[i].Position = secondarySlot(i, n)
		cards[i].Style = cardStyle(p.Theme)
	}
	return cards
}

func breakdownAndTables(c domain.Campaign, p Params, tables int) []domain.Component {
	layout := bottomLayouts[tables]
	out := []domain.Component{{
		ID:          "audience-breakdown",
		Type:        domain.TypeSpecialtyStrips,
		Origin:      domain.OriginTemplate,
		Position:    layout.breakdown,
		Style:       cardStyle(p.Theme),
		Title:       "Audience Breakdown",
		Specialties: TopSpecialties(c.SpecialtyPerformance, p.MergeSubspecialties),
	}}
	types := []string{p.SelectedTableTypes.Table1, p.SelectedTableTypes.Table2, p.SelectedTableTypes.Table3}
	for i := 0; i < tables && i < len(layout.tables); i++ {
		out = append(out, domain.Component{
			ID:       fmt.Sprintf("additional-table-%d", i+1),
			Type:     domain.TypeTable,
			Origin:   domain.OriginTemplate,
			Position: layout.tables[i],
			Style:    cardStyle(p.Theme),
			Title:    tableTitle(types[i]),
			Config:   &domain.TableConfig{CustomData: buildTableData(types[i], c)},
		})
	}
	return out
}

func logoCard(theme string) domain.Component {
	return domain.Component{
		ID:       "theme-logo",
		Type:     domain.TypeImage,
		Origin:   domain.OriginTemplate,
		Position: logoSlot,
		Src:      "assets/logos/" + theme + ".png",
	}
}

func tableTitle(tableType string) string {
	switch tableType {
	case TableGeographic:
		return "Geographic Distribution"
	case TableAuthority:
		return "Authority Reach"
	case TableSpecialty:
		return "Specialty Performance"
	case TableCost:
		return "Cost Breakdown"
	default:
		return "Campaign Metrics"
	}
}

// ThemeStyle returns the card colors of a theme. The reconciler uses it to
// restyle user-created cards when the dashboard theme changes.
func ThemeStyle(theme string) domain.Style {
	return cardStyle(theme)
}

// cardStyle returns a fresh style map for the theme; callers may mutate it.
func cardStyle(theme string) domain.Style {
	switch theme {
	case "midnight":
		return domain.Style{"background": "#10182b", "color": "#f4f7ff", "border": "#2c3a5c"}
	case "clinical":
		return domain.Style{"background": "#f6fbf9", "color": "#10312b", "border": "#b7d9cf"}
	default:
		return domain.Style{"background": "#ffffff", "color": "#1a1a2e", "border": "#e2e4ee"}
	}
}
