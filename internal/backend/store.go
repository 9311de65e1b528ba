/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the
 *  specific language governing permissions and limitations under the License.
 */

package backend

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"reportcanvas/internal/domain"

	_ "github.com/jackc/pgx/v5/stdlib"
)

// ErrNotFound is returned when a campaign id has no row.
var ErrNotFound = errors.New("campaign not found")

// Store caches campaign records in Postgres. The full record lives in a
// JSONB column; only the fields needed for listing are projected into
// columns.
type Store struct {
	db *sql.DB
}

// OpenStore connects to Postgres via the pgx stdlib driver and bootstraps
// the schema.
func OpenStore(ctx context.Context, dsn string) (*Store, error) {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}
	pingCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping db: %w", err)
	}
	s := &Store{db: db}
	if err := s.ensureSchema(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}
	return s, nil
}

// Close releases the connection pool.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) ensureSchema(ctx context.Context) error {
	ddl := `CREATE TABLE IF NOT EXISTS campaigns (
		id         TEXT PRIMARY KEY,
		name       TEXT NOT NULL,
		record     JSONB NOT NULL,
		updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
	);`
	if _, err := s.db.ExecContext(ctx, ddl); err != nil {
		return fmt.Errorf("ensure schema: %w", err)
	}
	return nil
}

// Upsert inserts or replaces a campaign record.
func (s *Store) Upsert(ctx context.Context, c domain.Campaign) error {
	if c.ID == "" {
		return errors.New("campaign id is required")
	}
	record, err := json.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshal campaign: %w", err)
	}
	_, err = s.db.ExecContext(ctx, `
		INSERT INTO campaigns (id, name, record, updated_at)
		VALUES ($1, $2, $3, now())
		ON CONFLICT (id) DO UPDATE SET name = EXCLUDED.name, record = EXCLUDED.record, updated_at = now()`,
		c.ID, c.Name, record)
	if err != nil {
		return fmt.Errorf("upsert campaign %s: %w", c.ID, err)
	}
	return nil
}

// Get loads one campaign record.
func (s *Store) Get(ctx context.Context, id string) (*domain.Campaign, error) {
	var record []byte
	err := s.db.QueryRowContext(ctx, `SELECT record FROM campaigns WHERE id = $1`, id).Scan(&record)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	if err != nil {
		return nil, fmt.Errorf("get campaign %s: %w", id, err)
	}
	var c domain.Campaign
	if err := json.Unmarshal(record, &c); err != nil {
		return nil, fmt.Errorf("decode campaign %s: %w", id, err)
	}
	return &c, nil
}

// List returns summaries of all cached campaigns, most recently updated
// first.
func (s *Store) List(ctx context.Context) ([]CampaignSummary, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT id, name, updated_at FROM campaigns ORDER BY updated_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("list campaigns: %w", err)
	}
	defer rows.Close()
	var list []CampaignSummary
	for rows.Next() {
		var cs CampaignSummary
		if err := rows.Scan(&cs.ID, &cs.Name, &cs.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan campaign: %w", err)
		}
		list = append(list, cs)
	}
	return list, rows.Err()
}
