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

import (
	"math"
	"testing"

	"reportcanvas/internal/domain"
)

func aggregateFixture() []domain.Campaign {
	return []domain.Campaign{
		{
			ID:   "a",
			Name: "Spring Push",
			CoreMetrics: domain.CoreMetrics{
				UniqueOpenRate:  25,
				TotalOpenRate:   40,
				UniqueClickRate: 5,
				TotalClickRate:  8,
			},
			VolumeMetrics: domain.VolumeMetrics{Sent: 1200, Delivered: 1000, UniqueOpens: 250, TotalOpens: 400},
			CostMetrics:   domain.CostMetrics{TotalCost: 3000, IndustryBenchmark: 30},
			SpecialtyPerformance: map[string]domain.SpecialtyStats{
				"Cardiology": {AudienceTotal: 400, UniqueOpens: 100, PerformanceDelta: 6},
			},
			GeographicDistribution: map[string]float64{"Northeast": 40, "South": 60},
		},
		{
			ID:   "b",
			Name: "Summer Push",
			CoreMetrics: domain.CoreMetrics{
				UniqueOpenRate:  10,
				TotalOpenRate:   15,
				UniqueClickRate: 2,
				TotalClickRate:  4,
			},
			VolumeMetrics: domain.VolumeMetrics{Sent: 600, Delivered: 500, UniqueOpens: 50, TotalOpens: 75},
			CostMetrics:   domain.CostMetrics{TotalCost: 1200, IndustryBenchmark: 20},
			SpecialtyPerformance: map[string]domain.SpecialtyStats{
				"Cardiology": {AudienceTotal: 100, UniqueOpens: 10, PerformanceDelta: 2},
				"Oncology":   {AudienceTotal: 500, UniqueOpens: 75, PerformanceDelta: 1},
			},
			GeographicDistribution: map[string]float64{"Northeast": 25, "West": 75},
		},
	}
}

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestAggregateSumsVolumes(t *testing.T) {
	agg := Aggregate(aggregateFixture())
	vm := agg.VolumeMetrics
	if vm.Sent != 1800 || vm.Delivered != 1500 || vm.UniqueOpens != 300 || vm.TotalOpens != 475 {
		t.Fatalf("summed volumes wrong: %+v", vm)
	}
	if agg.Name != "Spring Push + Summer Push" {
		t.Fatalf("aggregate name = %q", agg.Name)
	}
}

func TestAggregateRederivesUniqueOpenRate(t *testing.T) {
	agg := Aggregate(aggregateFixture())
	// 300 unique opens over 1500 delivered, not the mean of 25 and 10.
	if !almostEqual(agg.CoreMetrics.UniqueOpenRate, 20) {
		t.Fatalf("unique open rate = %v, want 20", agg.CoreMetrics.UniqueOpenRate)
	}
}

func TestAggregateWeightsUniqueClickRateByDelivered(t *testing.T) {
	agg := Aggregate(aggregateFixture())
	// (5%·1000 + 2%·500) / 1500 = 4.0. The unweighted mean would be 3.5.
	if !almostEqual(agg.CoreMetrics.UniqueClickRate, 4) {
		t.Fatalf("unique click rate = %v, want delivered-weighted 4", agg.CoreMetrics.UniqueClickRate)
	}
}

func TestAggregateTotalRatesAreUnweightedMeans(t *testing.T) {
	// Total open/click rates are plain means while the unique rates are
	// volume-weighted. The asymmetry is deliberate output compatibility.
	agg := Aggregate(aggregateFixture())
	if !almostEqual(agg.CoreMetrics.TotalOpenRate, 27.5) {
		t.Fatalf("total open rate = %v, want mean 27.5", agg.CoreMetrics.TotalOpenRate)
	}
	if !almostEqual(agg.CoreMetrics.TotalClickRate, 6) {
		t.Fatalf("total click rate = %v, want mean 6", agg.CoreMetrics.TotalClickRate)
	}
}

func TestAggregateCostMetrics(t *testing.T) {
	agg := Aggregate(aggregateFixture())
	cm := agg.CostMetrics
	if cm.TotalCost != 4200 {
		t.Fatalf("total cost = %v", cm.TotalCost)
	}
	if !almostEqual(cm.CostPerSend, 4200.0/1800.0) {
		t.Fatalf("cost per send = %v", cm.CostPerSend)
	}
	if !almostEqual(cm.CostPerEngagement, 14) {
		t.Fatalf("cost per engagement = %v", cm.CostPerEngagement)
	}
	if !almostEqual(cm.IndustryBenchmark, 25) {
		t.Fatalf("benchmark = %v, want mean 25", cm.IndustryBenchmark)
	}
}

func TestAggregateSpecialtiesAndMaps(t *testing.T) {
	agg := Aggregate(aggregateFixture())
	card, ok := agg.SpecialtyPerformance["Cardiology"]
	if !ok {
		t.Fatalf("merged specialty missing: %+v", agg.SpecialtyPerformance)
	}
	if card.AudienceTotal != 500 || card.UniqueOpens != 110 {
		t.Fatalf("cardiology sums wrong: %+v", card)
	}
	if !almostEqual(card.UniqueOpenRate, 22) {
		t.Fatalf("cardiology open rate = %v, want 110/500", card.UniqueOpenRate)
	}
	if !almostEqual(card.PerformanceDelta, 4) {
		t.Fatalf("cardiology delta = %v, want mean over reporting campaigns", card.PerformanceDelta)
	}
	onc := agg.SpecialtyPerformance["Oncology"]
	if !almostEqual(onc.PerformanceDelta, 1) {
		t.Fatalf("oncology delta should average over one campaign, got %v", onc.PerformanceDelta)
	}
	// 400+100+500 audience across all specialties.
	if !almostEqual(card.AudiencePercentage, 50) {
		t.Fatalf("cardiology share = %v, want 50", card.AudiencePercentage)
	}
	if agg.GeographicDistribution["Northeast"] != 65 || agg.GeographicDistribution["West"] != 75 {
		t.Fatalf("geographic merge wrong: %+v", agg.GeographicDistribution)
	}
}

func TestAggregateEmpty(t *testing.T) {
	agg := Aggregate(nil)
	if agg.Name != "" || agg.VolumeMetrics.Sent != 0 {
		t.Fatalf("empty aggregate should be zero value, got %+v", agg)
	}
}
