/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the
 *  specific language governing permissions and limitations under the License.
 */

// Package backend talks to the hosted analytics API: a read-only HTTP client
// for campaign records, and a Postgres-backed store for deployments that
// cache campaigns locally.
package backend

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"reportcanvas/internal/domain"
)

// Client is a minimal HTTP client for the analytics API.
// It supports the read-only operations the canvas needs.
type Client struct {
	BaseURL string
	Token   string // bearer token
	client  *http.Client
}

// NewClient creates a new analytics client. baseURL may include a trailing
// slash; it will be normalized.
func NewClient(baseURL string, token string) *Client {
	b := strings.TrimRight(baseURL, "/")
	return &Client{
		BaseURL: b,
		Token:   token,
		client:  &http.Client{Timeout: 10 * time.Second},
	}
}

// SetTimeout overrides the default request timeout.
func (c *Client) SetTimeout(d time.Duration) {
	c.client.Timeout = d
}

func (c *Client) doJSON(ctx context.Context, method, path string, dest any) error {
	u, err := url.Parse(c.BaseURL + path)
	if err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, method, u.String(), nil)
	if err != nil {
		return err
	}
	if c.Token != "" {
		req.Header.Set("Authorization", "Bearer "+c.Token)
	}
	resp, err := c.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("server %s %s: %s", method, u.Path, resp.Status)
	}
	dec := json.NewDecoder(resp.Body)
	dec.UseNumber()
	return dec.Decode(dest)
}

// CampaignSummary is a minimal projection for listing.
type CampaignSummary struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ListCampaigns returns the campaigns visible to the token (read-only).
func (c *Client) ListCampaigns(ctx context.Context) ([]CampaignSummary, error) {
	var list []CampaignSummary
	if err := c.doJSON(ctx, http.MethodGet, "/api/campaigns", &list); err != nil {
		return nil, err
	}
	return list, nil
}

// GetCampaign fetches one full campaign record.
func (c *Client) GetCampaign(ctx context.Context, id string) (*domain.Campaign, error) {
	var camp domain.Campaign
	path := "/api/campaigns/" + url.PathEscape(id)
	if err := c.doJSON(ctx, http.MethodGet, path, &camp); err != nil {
		return nil, err
	}
	return &camp, nil
}

// GetCampaigns fetches several records, failing on the first error.
func (c *Client) GetCampaigns(ctx context.Context, ids []string) ([]domain.Campaign, error) {
	out := make([]domain.Campaign, 0, len(ids))
	for _, id := range ids {
		camp, err := c.GetCampaign(ctx, id)
		if err != nil {
			return nil, fmt.Errorf("campaign %s: %w", id, err)
		}
		out = append(out, *camp)
	}
	return out, nil
}
