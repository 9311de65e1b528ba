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

func TestSubspecialtyMergeDerivesGroupMetrics(t *testing.T) {
	perf := map[string]domain.SpecialtyStats{
		"Cardiology":                  {AudienceTotal: 150, UniqueOpens: 30, UniqueOpenRate: 20, PerformanceDelta: 4, AudiencePercentage: 30},
		"Cardiology - Interventional": {AudienceTotal: 50, UniqueOpens: 5, UniqueOpenRate: 10, PerformanceDelta: 2, AudiencePercentage: 10},
		"Oncology":                    {AudienceTotal: 300, UniqueOpens: 90, UniqueOpenRate: 30, PerformanceDelta: 1, AudiencePercentage: 60},
	}
	got := TopSpecialties(perf, true)
	if len(got) != 2 {
		t.Fatalf("expected 2 merged entries, got %+v", got)
	}
	if got[0].Name != "Oncology" || got[1].Name != "Cardiology" {
		t.Fatalf("unexpected ranking: %q, %q", got[0].Name, got[1].Name)
	}
	card := got[1].Stats
	if card.AudienceTotal != 200 || card.UniqueOpens != 35 {
		t.Fatalf("merged volumes wrong: %+v", card)
	}
	// Re-derived from sums: 35/200, not an average of 20% and 10%.
	if card.UniqueOpenRate != 17.5 {
		t.Fatalf("merged open rate = %v, want 17.5", card.UniqueOpenRate)
	}
	if card.PerformanceDelta != 3 {
		t.Fatalf("merged delta = %v, want mean 3", card.PerformanceDelta)
	}
	// Percentage over the unmerged total audience (500).
	if card.AudiencePercentage != 40 {
		t.Fatalf("merged percentage = %v, want 40", card.AudiencePercentage)
	}
}

func TestNoMergeKeepsSubspecialtiesSeparate(t *testing.T) {
	perf := map[string]domain.SpecialtyStats{
		"Cardiology":                  {AudienceTotal: 150, UniqueOpens: 30, UniqueOpenRate: 20, AudiencePercentage: 30},
		"Cardiology - Interventional": {AudienceTotal: 120, UniqueOpens: 12, UniqueOpenRate: 10, AudiencePercentage: 24},
	}
	got := TopSpecialties(perf, false)
	if len(got) != 2 {
		t.Fatalf("expected separate entries without merge, got %+v", got)
	}
	if got[1].Name != "Cardiology - Interventional" {
		t.Fatalf("subspecialty name must survive unmerged, got %q", got[1].Name)
	}
}

func TestSpecialtyFilters(t *testing.T) {
	perf := map[string]domain.SpecialtyStats{
		"Tiny Audience":  {AudienceTotal: 99, UniqueOpenRate: 50, AudiencePercentage: 5},
		"Unknown":        {AudienceTotal: 800, UniqueOpenRate: 20, AudiencePercentage: 40},
		"Support Staff":  {AudienceTotal: 600, UniqueOpenRate: 25, AudiencePercentage: 30},
		"Never Opened":   {AudienceTotal: 500, UniqueOpenRate: 0, AudiencePercentage: 25},
		"Endocrinology":  {AudienceTotal: 100, UniqueOpenRate: 12, AudiencePercentage: 5},
		"Rheumatology":   {AudienceTotal: 250, UniqueOpenRate: 18, AudiencePercentage: 12},
		"Pulmonology":    {AudienceTotal: 260, UniqueOpenRate: 18, AudiencePercentage: 13},
		"Nephrology":     {AudienceTotal: 270, UniqueOpenRate: 18, AudiencePercentage: 14},
		"Gastroenterolo": {AudienceTotal: 280, UniqueOpenRate: 18, AudiencePercentage: 15},
	}
	got := TopSpecialties(perf, false)
	if len(got) != stripSlots {
		t.Fatalf("strip must cap at %d entries, got %d", stripSlots, len(got))
	}
	for _, e := range got {
		switch e.Name {
		case "Tiny Audience", "Unknown", "Support Staff", "Never Opened":
			t.Fatalf("%q should have been filtered out", e.Name)
		}
	}
	// Endocrinology sits exactly at the audience floor and stays eligible,
	// but ranks below the four larger shares.
	if got[0].Name != "Gastroenterolo" || got[3].Name != "Rheumatology" {
		t.Fatalf("unexpected ranking: %+v", got)
	}
}

func TestTopSpecialtiesEmptyInput(t *testing.T) {
	if got := TopSpecialties(nil, true); len(got) != 0 {
		t.Fatalf("nil input should yield no entries, got %+v", got)
	}
}

func TestRateZeroDenominator(t *testing.T) {
	if got := rate(5, 0); got != 0 {
		t.Fatalf("rate with zero denominator = %v, want 0", got)
	}
	if got := rate(1, 3); math.Abs(got-33.333333) > 0.0001 {
		t.Fatalf("rate(1,3) = %v", got)
	}
}
