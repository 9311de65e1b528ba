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

// Trigger signatures. Every regeneration stores a compact encoding of the
// inputs that produced it; comparing the stored signature against the next
// one decides whether the regeneration is cosmetic (carry user positions
// forward) or structural (row geometry changed, fresh positions win).

import (
	"strconv"
	"strings"

	"reportcanvas/internal/domain"
)

// Signature captures every generation input that can change the output.
type Signature struct {
	TemplateID    string
	Campaigns     []string
	Theme         string
	CostMode      string
	PatientImpact bool
	TotalSends    bool
	Merge         bool
	Tables        domain.TableTypes
}

// SignatureOf derives the signature from a dashboard's current settings.
func SignatureOf(d domain.Dashboard) Signature {
	return Signature{
		TemplateID:    d.SelectedTemplate,
		Campaigns:     append([]string(nil), d.SelectedCampaigns...),
		Theme:         d.Theme,
		CostMode:      d.CostComparisonMode,
		PatientImpact: d.ShowPatientImpact,
		TotalSends:    d.ShowTotalSends,
		Merge:         d.MergeSubspecialties,
		Tables:        d.SelectedTableTypes,
	}
}

// String encodes the signature into the stable form stored in LastTrigger.
func (s Signature) String() string {
	fields := []string{
		"template=" + s.TemplateID,
		"campaigns=" + strings.Join(s.Campaigns, ","),
		"theme=" + s.Theme,
		"cost=" + s.CostMode,
		"impact=" + strconv.FormatBool(s.PatientImpact),
		"sends=" + strconv.FormatBool(s.TotalSends),
		"merge=" + strconv.FormatBool(s.Merge),
		"tables=" + s.Tables.Table1 + "," + s.Tables.Table2 + "," + s.Tables.Table3,
	}
	return strings.Join(fields, "|")
}

// ParseSignature decodes an encoded signature. Unknown or missing fields
// decode to their zero values, so signatures written by older versions still
// parse.
func ParseSignature(encoded string) Signature {
	var s Signature
	for _, field := range strings.Split(encoded, "|") {
		key, val, ok := strings.Cut(field, "=")
		if !ok {
			continue
		}
		switch key {
		case "template":
			s.TemplateID = val
		case "campaigns":
			if val != "" {
				s.Campaigns = strings.Split(val, ",")
			}
		case "theme":
			s.Theme = val
		case "cost":
			s.CostMode = val
		case "impact":
			s.PatientImpact = val == "true"
		case "sends":
			s.TotalSends = val == "true"
		case "merge":
			s.Merge = val == "true"
		case "tables":
			parts := strings.SplitN(val, ",", 3)
			if len(parts) > 0 {
				s.Tables.Table1 = parts[0]
			}
			if len(parts) > 1 {
				s.Tables.Table2 = parts[1]
			}
			if len(parts) > 2 {
				s.Tables.Table3 = parts[2]
			}
		}
	}
	return s
}

// ShouldRegenerate reports whether a generation run needs to execute at all.
// A dashboard with no template selected never generates; one with no cards
// or no recorded trigger always does. Otherwise generation runs only when
// the next signature differs from the recorded one, so re-running with
// unchanged settings leaves the canvas alone.
func ShouldRegenerate(d domain.Dashboard, next Signature) bool {
	if next.TemplateID == "" {
		return false
	}
	if len(d.Cards) == 0 || d.LastTrigger == "" {
		return true
	}
	return d.LastTrigger != next.String()
}

// Structural reports whether going from prev to next changes the row
// geometry of the generated layout. Only the cost-comparison mode and the
// patient-impact toggle insert or remove cards from existing rows; every
// other input change restyles or refills cards in place.
func Structural(prev, next Signature) bool {
	return normalizeCostMode(prev.CostMode) != normalizeCostMode(next.CostMode) ||
		prev.PatientImpact != next.PatientImpact
}

// normalizeCostMode treats the empty string and "none" as the same mode:
// both mean no cost card.
func normalizeCostMode(mode string) string {
	if mode == "" {
		return domain.CostModeNone
	}
	return mode
}
