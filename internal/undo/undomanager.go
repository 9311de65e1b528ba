/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the
 *  specific language governing permissions and limitations under the License.
 */

package undo

import (
	"sync"
	"time"
)

// Snapshot represents a reversible state blob for a dashboard.
// Blob content is opaque to the manager; size is estimated as len(Blob).
// TS is when the snapshot was captured.
type Snapshot struct {
	Dashboard string
	Blob      []byte
	TS        time.Time
}

// Config controls memory and depth caps and coalescing behavior.
type Config struct {
	// MaxBytes is a soft cap; older entries are pruned when exceeded.
	MaxBytes int
	// MaxPerDashboard limits snapshots per dashboard kept in memory (0 means
	// unlimited).
	MaxPerDashboard int
	// MinInterval coalesces snapshots captured within the interval for the
	// same dashboard, replacing the previous one instead of pushing a new
	// entry. Drag interactions fire many small moves; coalescing keeps undo
	// steps at gesture granularity.
	MinInterval time.Duration
}

// Manager provides an in-memory undo/redo stack per dashboard with
// performance safeguards. It is safe for concurrent use.
type Manager struct {
	cfg Config
	mu  sync.Mutex
	// per-dashboard stacks
	undo map[string][]Snapshot
	redo map[string][]Snapshot
	// accounting
	totalBytes int
}

func NewManager(cfg Config) *Manager {
	// Set conservative defaults if not provided
	if cfg.MaxBytes <= 0 {
		cfg.MaxBytes = 16 * 1024 * 1024 // 16 MiB
	}
	if cfg.MinInterval <= 0 {
		cfg.MinInterval = 250 * time.Millisecond
	}
	return &Manager{cfg: cfg, undo: make(map[string][]Snapshot), redo: make(map[string][]Snapshot)}
}

// PushSnapshot records a snapshot for a dashboard. If within MinInterval
// from the last snapshot on the same dashboard, it replaces the last one.
// Clears the redo stack for that dashboard.
func (m *Manager) PushSnapshot(s Snapshot) {
	m.mu.Lock()
	defer m.mu.Unlock()
	stack := m.undo[s.Dashboard]
	if n := len(stack); n > 0 {
		last := stack[n-1]
		if s.TS.Sub(last.TS) < m.cfg.MinInterval {
			// Coalesce: adjust accounting and replace
			m.totalBytes -= len(last.Blob)
			m.totalBytes += len(s.Blob)
			stack[n-1] = s
			m.undo[s.Dashboard] = stack
			m.redo[s.Dashboard] = nil
			m.enforceCapsLocked(s.Dashboard)
			return
		}
	}
	// Push new
	stack = append(stack, s)
	m.undo[s.Dashboard] = stack
	m.totalBytes += len(s.Blob)
	// Any new change invalidates redo for the dashboard
	m.redo[s.Dashboard] = nil
	m.enforceCapsLocked(s.Dashboard)
}

// Undo pops from the dashboard undo stack and pushes to the redo stack,
// returning the snapshot.
func (m *Manager) Undo(dashboard string) (Snapshot, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	stack := m.undo[dashboard]
	if len(stack) == 0 {
		return Snapshot{}, false
	}
	s := stack[len(stack)-1]
	m.undo[dashboard] = stack[:len(stack)-1]
	m.totalBytes -= len(s.Blob)
	m.redo[dashboard] = append(m.redo[dashboard], s)
	return s, true
}

// Redo pops from redo and pushes back to undo.
func (m *Manager) Redo(dashboard string) (Snapshot, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	r := m.redo[dashboard]
	if len(r) == 0 {
		return Snapshot{}, false
	}
	s := r[len(r)-1]
	m.redo[dashboard] = r[:len(r)-1]
	m.undo[dashboard] = append(m.undo[dashboard], s)
	m.totalBytes += len(s.Blob)
	m.enforceCapsLocked(dashboard)
	return s, true
}

// Clear clears undo/redo stacks for a dashboard to free memory.
func (m *Manager) Clear(dashboard string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, s := range m.undo[dashboard] {
		m.totalBytes -= len(s.Blob)
	}
	delete(m.undo, dashboard)
	delete(m.redo, dashboard)
	if m.totalBytes < 0 {
		m.totalBytes = 0
	}
}

// Stats returns current sizes for diagnostics.
func (m *Manager) Stats() (totalBytes int, dashboards int, totalSnapshots int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	dashboards = len(m.undo)
	for _, v := range m.undo {
		totalSnapshots += len(v)
	}
	return m.totalBytes, dashboards, totalSnapshots
}

func (m *Manager) enforceCapsLocked(dashboard string) {
	// Per-dashboard depth cap
	if m.cfg.MaxPerDashboard > 0 {
		stack := m.undo[dashboard]
		if len(stack) > m.cfg.MaxPerDashboard {
			// drop the oldest extras
			toDrop := len(stack) - m.cfg.MaxPerDashboard
			for i := 0; i < toDrop; i++ {
				m.totalBytes -= len(stack[i].Blob)
			}
			m.undo[dashboard] = append([]Snapshot{}, stack[toDrop:]...)
		}
	}
	// Global memory cap: prune oldest across all dashboards
	for m.cfg.MaxBytes > 0 && m.totalBytes > m.cfg.MaxBytes {
		oldestKey := ""
		oldestIdx := -1
		var oldestTS time.Time
		for key, stack := range m.undo {
			if len(stack) == 0 {
				continue
			}
			if oldestIdx == -1 || stack[0].TS.Before(oldestTS) {
				oldestKey = key
				oldestIdx = 0
				oldestTS = stack[0].TS
			}
		}
		if oldestIdx == -1 {
			break
		}
		stack := m.undo[oldestKey]
		m.totalBytes -= len(stack[0].Blob)
		m.undo[oldestKey] = stack[1:]
		if len(m.undo[oldestKey]) == 0 {
			delete(m.undo, oldestKey)
		}
	}
}
