/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the
 *  specific language governing permissions and limitations under the License.
 */

package reconcile

import (
	"reflect"
	"testing"

	"reportcanvas/internal/domain"
)

func TestSignatureRoundTrip(t *testing.T) {
	s := Signature{
		TemplateID:    "multi-campaign-2-tables",
		Campaigns:     []string{"cmp-1", "cmp-2"},
		Theme:         "midnight",
		CostMode:      domain.CostModeGauge,
		PatientImpact: true,
		TotalSends:    false,
		Merge:         true,
		Tables:        domain.TableTypes{Table1: "geographic", Table2: "cost-breakdown"},
	}
	got := ParseSignature(s.String())
	if !reflect.DeepEqual(got, s) {
		t.Fatalf("round trip mismatch:\n got %+v\nwant %+v", got, s)
	}
}

func TestSignatureOfDashboard(t *testing.T) {
	d := domain.Dashboard{
		SelectedTemplate:   "single-campaign",
		SelectedCampaigns:  []string{"cmp-9"},
		Theme:              "clinical",
		CostComparisonMode: domain.CostModeNone,
		ShowTotalSends:     true,
	}
	s := SignatureOf(d)
	if s.TemplateID != "single-campaign" || !s.TotalSends || s.Theme != "clinical" {
		t.Fatalf("unexpected signature: %+v", s)
	}
	// The derived slice must not alias the dashboard's.
	s.Campaigns[0] = "mutated"
	if d.SelectedCampaigns[0] != "cmp-9" {
		t.Fatalf("signature aliases dashboard campaign list")
	}
}

func TestParseSignatureToleratesOldEncodings(t *testing.T) {
	s := ParseSignature("template=single-campaign|theme=default")
	if s.TemplateID != "single-campaign" || s.CostMode != "" || s.PatientImpact {
		t.Fatalf("partial encoding should zero-fill, got %+v", s)
	}
	if s = ParseSignature(""); !reflect.DeepEqual(s, Signature{}) {
		t.Fatalf("empty encoding should parse to zero signature, got %+v", s)
	}
}

func TestStructuralTriggers(t *testing.T) {
	base := Signature{CostMode: domain.CostModeNone, PatientImpact: false, Theme: "default"}

	next := base
	next.Theme = "midnight"
	next.Merge = true
	next.Tables.Table1 = "geographic"
	if Structural(base, next) {
		t.Fatalf("theme/merge/table changes are cosmetic")
	}

	next = base
	next.CostMode = domain.CostModeGauge
	if !Structural(base, next) {
		t.Fatalf("enabling the cost card is structural")
	}

	next = base
	next.PatientImpact = true
	if !Structural(base, next) {
		t.Fatalf("toggling patient impact is structural")
	}
}

func TestShouldRegenerate(t *testing.T) {
	d := domain.Dashboard{
		SelectedTemplate:  "single-campaign",
		SelectedCampaigns: []string{"cmp-1"},
		Theme:             "default",
		Cards:             []domain.Component{{ID: "report-title"}},
	}
	next := SignatureOf(d)
	d.LastTrigger = next.String()
	if ShouldRegenerate(d, next) {
		t.Fatalf("unchanged trigger with existing cards must not regenerate")
	}

	changed := next
	changed.Theme = "midnight"
	if !ShouldRegenerate(d, changed) {
		t.Fatalf("changed trigger must regenerate")
	}

	first := d
	first.Cards = nil
	if !ShouldRegenerate(first, next) {
		t.Fatalf("dashboard without cards must generate")
	}
	first = d
	first.LastTrigger = ""
	if !ShouldRegenerate(first, next) {
		t.Fatalf("dashboard without a recorded trigger must generate")
	}

	if ShouldRegenerate(d, Signature{}) {
		t.Fatalf("no template selected must never regenerate")
	}
}

func TestStructuralTreatsEmptyCostModeAsNone(t *testing.T) {
	prev := Signature{CostMode: ""}
	next := Signature{CostMode: domain.CostModeNone}
	if Structural(prev, next) {
		t.Fatalf("empty and %q are the same mode", domain.CostModeNone)
	}
}
