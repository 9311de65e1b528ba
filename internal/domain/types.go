/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the
 *  specific language governing permissions and limitations under the License.
 */

package domain

// This file defines the core data model for the report canvas: positioned
// visual components on a fixed-size logical surface, the campaign records
// they are generated from, and the dashboard document that ties both
// together. Everything serializes to human-readable JSON.

import "time"

// Canvas logical surface size in pixel units. Positions are expressed in
// this coordinate space regardless of the output resolution.
const (
	CanvasWidth  = 1024.0
	CanvasHeight = 576.0
)

// ThemeDefault is the built-in theme. Non-default themes get a logo
// component appended during template generation.
const ThemeDefault = "default"

// Position is an axis-aligned rectangle in canvas pixel units.
type Position struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// ComponentType discriminates the component union.
type ComponentType string

const (
	TypeMetric          ComponentType = "metric"
	TypeHero            ComponentType = "hero"
	TypeSecondary       ComponentType = "secondary"
	TypeTable           ComponentType = "table"
	TypeTitle           ComponentType = "title"
	TypeImage           ComponentType = "image"
	TypeCostComparison  ComponentType = "cost-comparison"
	TypeSpecialtyStrips ComponentType = "specialty-strips"
	TypeGroup           ComponentType = "group"
)

// Origin records who created a component. Template components are owned by
// the generator and may be replaced on regeneration; custom components are
// user-added and always carried forward.
type Origin string

const (
	OriginTemplate Origin = "template"
	OriginCustom   Origin = "custom"
	OriginGroup    Origin = "group"
)

// Style is a free-form visual override map (background, color, border, ...).
type Style map[string]string

// TableConfig holds table cell data. CustomData is a 2-D array of cell
// strings; by convention the first row is the header.
type TableConfig struct {
	CustomData [][]string `json:"customData,omitempty"`
}

// SpecialtyEntry pairs a specialty name with its stats. Order matters: the
// strip renders entries in ranking order.
type SpecialtyEntry struct {
	Name  string         `json:"name"`
	Stats SpecialtyStats `json:"stats"`
}

// Component is one positioned, typed visual entity on the canvas.
// Variant-specific fields are optional and empty for other variants.
type Component struct {
	ID       string        `json:"id"`
	Type     ComponentType `json:"type"`
	Position Position      `json:"position"`
	Style    Style         `json:"style,omitempty"`
	Origin   Origin        `json:"origin,omitempty"`

	// Metric-like variants.
	Title    string `json:"title,omitempty"`
	Value    string `json:"value,omitempty"`
	Subtitle string `json:"subtitle,omitempty"`

	// Image variant.
	Src string `json:"src,omitempty"`

	// Table variant.
	Config *TableConfig `json:"config,omitempty"`

	// Group variant.
	Children []Child `json:"children,omitempty"`

	// Specialty-strips variant.
	Specialties []SpecialtyEntry `json:"specialties,omitempty"`
}

// Child is a grouped component plus its offset from the group origin.
// RelativePosition is the single source of truth for placement while the
// child stays grouped.
type Child struct {
	Component
	RelativePosition Position `json:"relativePosition"`
}

// Clone returns a deep copy. Engines hand out clones so callers can never
// alias internal slices or maps across engine calls.
func (c Component) Clone() Component {
	out := c
	if c.Style != nil {
		out.Style = make(Style, len(c.Style))
		for k, v := range c.Style {
			out.Style[k] = v
		}
	}
	if c.Config != nil {
		cfg := TableConfig{CustomData: cloneCells(c.Config.CustomData)}
		out.Config = &cfg
	}
	if c.Children != nil {
		out.Children = make([]Child, len(c.Children))
		for i, ch := range c.Children {
			out.Children[i] = Child{Component: ch.Component.Clone(), RelativePosition: ch.RelativePosition}
		}
	}
	if c.Specialties != nil {
		out.Specialties = append([]SpecialtyEntry(nil), c.Specialties...)
	}
	return out
}

func cloneCells(cells [][]string) [][]string {
	if cells == nil {
		return nil
	}
	out := make([][]string, len(cells))
	for i, row := range cells {
		out[i] = append([]string(nil), row...)
	}
	return out
}

// EditRecord stores the subset of fields a user manually changed on a
// component, keyed by component id in Dashboard.UserEdits. Nil pointers mean
// "not edited". Records are never deleted automatically so they survive full
// template regenerations.
type EditRecord struct {
	Title      *string    `json:"title,omitempty"`
	Value      *string    `json:"value,omitempty"`
	Subtitle   *string    `json:"subtitle,omitempty"`
	CustomData [][]string `json:"customData,omitempty"`
	// LegacyData mirrors the old "data" key some persisted documents still
	// carry; it is normalized into CustomData when applied.
	LegacyData [][]string `json:"data,omitempty"`
	UpdatedAt  time.Time  `json:"updatedAt"`
}

// CellData returns the effective table override, normalizing the legacy key.
func (e EditRecord) CellData() [][]string {
	if e.CustomData != nil {
		return e.CustomData
	}
	return e.LegacyData
}

// TableTypes names the extra tables a template variant includes.
type TableTypes struct {
	Table1 string `json:"table1,omitempty"`
	Table2 string `json:"table2,omitempty"`
	Table3 string `json:"table3,omitempty"`
}

// CostComparisonMode values. ModeNone removes the cost card; every other
// mode inserts it and reflows the hero row.
const (
	CostModeNone       = "none"
	CostModeSideBySide = "side-by-side"
	CostModeGauge      = "gauge"
	CostModeStacked    = "stacked"
	CostModePercentage = "percentage"
)

// Dashboard is the persisted host document: the canonical component list
// plus everything needed to regenerate and reconcile it.
type Dashboard struct {
	Name                string                `json:"name"`
	Cards               []Component           `json:"cards"`
	UploadedImages      []string              `json:"uploadedImages,omitempty"`
	SelectedCampaigns   []string              `json:"selectedCampaigns,omitempty"`
	SelectedTemplate    string                `json:"selectedTemplate,omitempty"`
	Theme               string                `json:"theme,omitempty"`
	CostComparisonMode  string                `json:"costComparisonMode,omitempty"`
	ShowPatientImpact   bool                  `json:"showPatientImpact,omitempty"`
	ShowTotalSends      bool                  `json:"showTotalSends,omitempty"`
	MergeSubspecialties bool                  `json:"mergeSubspecialties,omitempty"`
	SelectedTableTypes  TableTypes            `json:"selectedTableTypes,omitempty"`
	DeletedCardIDs      []string              `json:"deletedCardIds,omitempty"`
	UserEdits           map[string]EditRecord `json:"userEdits,omitempty"`
	LastTrigger         string                `json:"lastTrigger,omitempty"`
}

// Campaign is the read-only analytics record a template is generated from.
// The engines consume it as-is; missing fields default to zero.
type Campaign struct {
	ID                     string                    `json:"id"`
	Name                   string                    `json:"name"`
	CoreMetrics            CoreMetrics               `json:"core_metrics"`
	VolumeMetrics          VolumeMetrics             `json:"volume_metrics"`
	CostMetrics            CostMetrics               `json:"cost_metrics"`
	SpecialtyPerformance   map[string]SpecialtyStats `json:"specialty_performance,omitempty"`
	GeographicDistribution map[string]float64        `json:"geographic_distribution,omitempty"`
	AuthorityMetrics       map[string]float64        `json:"authority_metrics,omitempty"`
}

// CoreMetrics are rates pre-computed upstream, in percent.
type CoreMetrics struct {
	UniqueOpenRate  float64 `json:"unique_open_rate"`
	TotalOpenRate   float64 `json:"total_open_rate"`
	UniqueClickRate float64 `json:"unique_click_rate"`
	TotalClickRate  float64 `json:"total_click_rate"`
}

// VolumeMetrics are raw counts.
type VolumeMetrics struct {
	Sent        float64 `json:"sent"`
	Delivered   float64 `json:"delivered"`
	UniqueOpens float64 `json:"unique_opens"`
	TotalOpens  float64 `json:"total_opens"`
}

// CostMetrics describe campaign spend.
type CostMetrics struct {
	TotalCost         float64 `json:"total_cost"`
	CostPerSend       float64 `json:"cost_per_send"`
	CostPerEngagement float64 `json:"cost_per_engagement"`
	IndustryBenchmark float64 `json:"industry_benchmark"`
}

// SpecialtyStats describe one audience specialty's performance.
type SpecialtyStats struct {
	AudienceTotal      float64 `json:"audience_total"`
	AudiencePercentage float64 `json:"audience_percentage"`
	UniqueOpens        float64 `json:"unique_opens"`
	TotalOpens         float64 `json:"total_opens"`
	UniqueOpenRate     float64 `json:"unique_open_rate"`
	PerformanceDelta   float64 `json:"performance_delta"`
}
