/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the
 *  specific language governing permissions and limitations under the License.
 */

package template

// Builders for the additional-table components. Each selected table type
// projects a slice of the campaign record into header+rows cell data.

import (
	"sort"

	"reportcanvas/internal/domain"
)

// Table type names accepted in SelectedTableTypes.
const (
	TableGeographic = "geographic"
	TableAuthority  = "authority"
	TableSpecialty  = "specialty-performance"
	TableCost       = "cost-breakdown"
)

// maxTableRows caps data rows per table (header excluded).
const maxTableRows = 8

func buildTableData(tableType string, c domain.Campaign) [][]string {
	switch tableType {
	case TableGeographic:
		return keyValueRows("Region", "Share", c.GeographicDistribution, formatPercent)
	case TableAuthority:
		return keyValueRows("Authority Level", "Reach", c.AuthorityMetrics, formatCount)
	case TableSpecialty:
		return specialtyRows(c.SpecialtyPerformance)
	case TableCost:
		return [][]string{
			{"Cost Metric", "Value"},
			{"Total Cost", formatMoney(c.CostMetrics.TotalCost)},
			{"Cost per Send", formatMoney(c.CostMetrics.CostPerSend)},
			{"Cost per Engagement", formatMoney(c.CostMetrics.CostPerEngagement)},
			{"Industry Benchmark", formatMoney(c.CostMetrics.IndustryBenchmark)},
		}
	default:
		// Unrecognized or unset type: core metrics summary keeps the slot
		// useful instead of rendering an empty table.
		return [][]string{
			{"Metric", "Value"},
			{"Unique Open Rate", formatPercent(c.CoreMetrics.UniqueOpenRate)},
			{"Total Open Rate", formatPercent(c.CoreMetrics.TotalOpenRate)},
			{"Unique Click Rate", formatPercent(c.CoreMetrics.UniqueClickRate)},
			{"Total Click Rate", formatPercent(c.CoreMetrics.TotalClickRate)},
		}
	}
}

// keyValueRows renders a name→number map sorted by value descending, name
// ascending on ties, capped at maxTableRows.
func keyValueRows(keyHeader, valueHeader string, m map[string]float64, format func(float64) string) [][]string {
	type kv struct {
		k string
		v float64
	}
	pairs := make([]kv, 0, len(m))
	for k, v := range m {
		pairs = append(pairs, kv{k, v})
	}
	sort.Slice(pairs, func(i, j int) bool {
		if pairs[i].v != pairs[j].v {
			return pairs[i].v > pairs[j].v
		}
		return pairs[i].k < pairs[j].k
	})
	if len(pairs) > maxTableRows {
		pairs = pairs[:maxTableRows]
	}
	rows := [][]string{{keyHeader, valueHeader}}
	for _, p := range pairs {
		rows = append(rows, []string{p.k, format(p.v)})
	}
	return rows
}

func specialtyRows(perf map[string]domain.SpecialtyStats) [][]string {
	names := make([]string, 0, len(perf))
	for name := range perf {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool {
		if perf[names[i]].AudienceTotal != perf[names[j]].AudienceTotal {
			return perf[names[i]].AudienceTotal > perf[names[j]].AudienceTotal
		}
		return names[i] < names[j]
	})
	if len(names) > maxTableRows {
		names = names[:maxTableRows]
	}
	rows := [][]string{{"Specialty", "Audience", "Unique Open Rate"}}
	for _, name := range names {
		s := perf[name]
		rows = append(rows, []string{name, formatCount(s.AudienceTotal), formatPercent(s.UniqueOpenRate)})
	}
	return rows
}
