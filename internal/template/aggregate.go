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

// Multi-campaign aggregation. Volume counts sum directly and rates with raw
// counts are re-derived from the sums. Unique click rates have no raw counts
// in the volume block, so each campaign's rate is back-multiplied against its
// own delivered count and the reconstructed clicks are divided by aggregate
// delivered (a delivered-weighted average). Total open/click rates are plain
// arithmetic means across campaigns — the weighting asymmetry is historical
// display behavior and is kept for output compatibility (see the aggregate
// tests, which name it explicitly).

import (
	"strings"

	"reportcanvas/internal/domain"
)

// Aggregate combines N campaigns into one synthetic campaign record.
// A single campaign aggregates to itself (modulo derived rates).
func Aggregate(campaigns []domain.Campaign) domain.Campaign {
	if len(campaigns) == 0 {
		return domain.Campaign{}
	}

	var out domain.Campaign
	names := make([]string, 0, len(campaigns))
	var weightedUniqueClicks float64
	var totalOpenRateSum, totalClickRateSum float64

	for _, c := range campaigns {
		names = append(names, c.Name)
		out.VolumeMetrics.Sent += c.VolumeMetrics.Sent
		out.VolumeMetrics.Delivered += c.VolumeMetrics.Delivered
		out.VolumeMetrics.UniqueOpens += c.VolumeMetrics.UniqueOpens
		out.VolumeMetrics.TotalOpens += c.VolumeMetrics.TotalOpens

		weightedUniqueClicks += c.CoreMetrics.UniqueClickRate / 100 * c.VolumeMetrics.Delivered
		totalOpenRateSum += c.CoreMetrics.TotalOpenRate
		totalClickRateSum += c.CoreMetrics.TotalClickRate

		out.CostMetrics.TotalCost += c.CostMetrics.TotalCost
		out.CostMetrics.IndustryBenchmark += c.CostMetrics.IndustryBenchmark
	}

	n := float64(len(campaigns))
	out.ID = "aggregate"
	out.Name = strings.Join(names, " + ")

	// Open rates re-derived from summed volumes.
	out.CoreMetrics.UniqueOpenRate = rate(out.VolumeMetrics.UniqueOpens, out.VolumeMetrics.Delivered)
	// Unique click rate: delivered-weighted reconstruction.
	out.CoreMetrics.UniqueClickRate = rate(weightedUniqueClicks, out.VolumeMetrics.Delivered)
	// Total rates: unweighted means.
	out.CoreMetrics.TotalOpenRate = totalOpenRateSum / n
	out.CoreMetrics.TotalClickRate = totalClickRateSum / n

	out.CostMetrics.CostPerSend = safeDiv(out.CostMetrics.TotalCost, out.VolumeMetrics.Sent)
	out.CostMetrics.CostPerEngagement = safeDiv(out.CostMetrics.TotalCost, out.VolumeMetrics.UniqueOpens)
	out.CostMetrics.IndustryBenchmark /= n

	out.SpecialtyPerformance = aggregateSpecialties(campaigns)
	out.GeographicDistribution = aggregateMaps(campaigns, func(c domain.Campaign) map[string]float64 { return c.GeographicDistribution })
	out.AuthorityMetrics = aggregateMaps(campaigns, func(c domain.Campaign) map[string]float64 { return c.AuthorityMetrics })
	return out
}

func safeDiv(num, den float64) float64 {
	if den == 0 {
		return 0
	}
	return num / den
}

// aggregateSpecialties sums specialty volumes across campaigns, re-derives
// open rates from the sums, and averages deltas over the campaigns that
// actually report the specialty.
func aggregateSpecialties(campaigns []domain.Campaign) map[string]domain.SpecialtyStats {
	type acc struct {
		stats domain.SpecialtyStats
		delta float64
		n     int
	}
	accs := make(map[string]*acc)
	var totalAudience float64
	for _, c := range campaigns {
		for name, s := range c.SpecialtyPerformance {
			a, ok := accs[name]
			if !ok {
				a = &acc{}
				accs[name] = a
			}
			a.stats.AudienceTotal += s.AudienceTotal
			a.stats.UniqueOpens += s.UniqueOpens
			a.stats.TotalOpens += s.TotalOpens
			a.delta += s.PerformanceDelta
			a.n++
			totalAudience += s.AudienceTotal
		}
	}
	if len(accs) == 0 {
		return nil
	}
	out := make(map[string]domain.SpecialtyStats, len(accs))
	for name, a := range accs {
		a.stats.UniqueOpenRate = rate(a.stats.UniqueOpens, a.stats.AudienceTotal)
		a.stats.PerformanceDelta = a.delta / float64(a.n)
		a.stats.AudiencePercentage = rate(a.stats.AudienceTotal, totalAudience)
		out[name] = a.stats
	}
	return out
}

func aggregateMaps(campaigns []domain.Campaign, pick func(domain.Campaign) map[string]float64) map[string]float64 {
	var out map[string]float64
	for _, c := range campaigns {
		for k, v := range pick(c) {
			if out == nil {
				out = make(map[string]float64)
			}
			out[k] += v
		}
	}
	return out
}
