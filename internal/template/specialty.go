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

// Specialty ranking for the audience-breakdown strip: optionally merge
// subspecialties into their parent specialty, filter noise, rank, take the
// top four.

import (
	"sort"
	"strings"

	"reportcanvas/internal/domain"
)

const (
	// minAudienceTotal excludes specialties too small to be meaningful.
	minAudienceTotal = 100
	// stripSlots is how many specialties the breakdown strip renders.
	stripSlots = 4
	// subspecialtyDelimiter splits "Cardiology - Interventional" into its
	// parent specialty and subspecialty.
	subspecialtyDelimiter = " - "
)

// TopSpecialties returns the strip entries for a campaign: merged (if
// requested), filtered, ranked by audience percentage, capped at four.
func TopSpecialties(perf map[string]domain.SpecialtyStats, mergeSubspecialties bool) []domain.SpecialtyEntry {
	entries := make([]domain.SpecialtyEntry, 0, len(perf))
	for name, stats := range perf {
		entries = append(entries, domain.SpecialtyEntry{Name: name, Stats: stats})
	}
	if mergeSubspecialties {
		entries = mergeByParent(entries)
	}
	entries = filterSpecialties(entries)
	// Rank by audience percentage, name as deterministic tie-break.
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Stats.AudiencePercentage != entries[j].Stats.AudiencePercentage {
			return entries[i].Stats.AudiencePercentage > entries[j].Stats.AudiencePercentage
		}
		return entries[i].Name < entries[j].Name
	})
	if len(entries) > stripSlots {
		entries = entries[:stripSlots]
	}
	return entries
}

// filterSpecialties drops entries below the audience floor, catch-all
// buckets ("unknown", "staff" — case-insensitive substring), and entries
// with a non-positive open rate.
func filterSpecialties(entries []domain.SpecialtyEntry) []domain.SpecialtyEntry {
	out := entries[:0:0]
	for _, e := range entries {
		lower := strings.ToLower(e.Name)
		if e.Stats.AudienceTotal < minAudienceTotal {
			continue
		}
		if strings.Contains(lower, "unknown") || strings.Contains(lower, "staff") {
			continue
		}
		if e.Stats.UniqueOpenRate <= 0 {
			continue
		}
		out = append(out, e)
	}
	return out
}

// mergeByParent groups entries by the substring before the first " - " and
// re-derives per-group metrics:
//   - unique_open_rate = sum(unique_opens) / sum(audience_total)
//   - performance_delta = arithmetic mean of constituent deltas
//   - audience_percentage = group audience over the original unmerged total
func mergeByParent(entries []domain.SpecialtyEntry) []domain.SpecialtyEntry {
	var totalAudience float64
	for _, e := range entries {
		totalAudience += e.Stats.AudienceTotal
	}

	type bucket struct {
		stats domain.SpecialtyStats
		delta float64
		n     int
	}
	buckets := make(map[string]*bucket)
	order := make([]string, 0, len(entries))
	for _, e := range entries {
		parent := e.Name
		if i := strings.Index(e.Name, subspecialtyDelimiter); i >= 0 {
			parent = e.Name[:i]
		}
		b, ok := buckets[parent]
		if !ok {
			b = &bucket{}
			buckets[parent] = b
			order = append(order, parent)
		}
		b.stats.AudienceTotal += e.Stats.AudienceTotal
		b.stats.UniqueOpens += e.Stats.UniqueOpens
		b.stats.TotalOpens += e.Stats.TotalOpens
		b.delta += e.Stats.PerformanceDelta
		b.n++
	}

	out := make([]domain.SpecialtyEntry, 0, len(buckets))
	for _, parent := range order {
		b := buckets[parent]
		b.stats.UniqueOpenRate = rate(b.stats.UniqueOpens, b.stats.AudienceTotal)
		b.stats.PerformanceDelta = b.delta / float64(b.n)
		b.stats.AudiencePercentage = rate(b.stats.AudienceTotal, totalAudience)
		out = append(out, domain.SpecialtyEntry{Name: parent, Stats: b.stats})
	}
	return out
}
