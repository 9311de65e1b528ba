/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the
 *  specific language governing permissions and limitations under the License.
 */

package storage

import (
	"os"
	"testing"
)

func TestManifestConformsToSchema(t *testing.T) {
	root := t.TempDir()
	h, err := Init(root, minimalDashboard())
	if err != nil {
		t.Fatalf("Init error: %v", err)
	}
	data, err := os.ReadFile(h.ManifestPath)
	if err != nil {
		t.Fatalf("read manifest: %v", err)
	}
	if err := ValidateManifest(data); err != nil {
		t.Fatalf("saved manifest should validate: %v", err)
	}
}

func TestValidateManifestRejectsBadDocuments(t *testing.T) {
	cases := []struct {
		name string
		doc  string
	}{
		{"missing name", `{"cards": []}`},
		{"bad card type", `{"name": "x", "cards": [{"id": "a", "type": "widget", "position": {"x":0,"y":0,"width":1,"height":1}}]}`},
		{"negative size", `{"name": "x", "cards": [{"id": "a", "type": "hero", "position": {"x":0,"y":0,"width":-5,"height":1}}]}`},
		{"bad cost mode", `{"name": "x", "cards": [], "costComparisonMode": "pie"}`},
	}
	for _, c := range cases {
		if err := ValidateManifest([]byte(c.doc)); err == nil {
			t.Fatalf("%s: expected validation error", c.name)
		}
	}
}
