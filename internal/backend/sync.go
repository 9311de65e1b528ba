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
	"fmt"

	"reportcanvas/internal/domain"
)

// CampaignWriter persists campaign records; *Store satisfies it.
type CampaignWriter interface {
	Upsert(ctx context.Context, c domain.Campaign) error
}

// SyncCampaigns pulls every campaign visible to the client and writes the
// full records into dst, refreshing the local cache. It returns the number
// of records written; the first failure aborts the sync.
func SyncCampaigns(ctx context.Context, c *Client, dst CampaignWriter) (int, error) {
	list, err := c.ListCampaigns(ctx)
	if err != nil {
		return 0, fmt.Errorf("list campaigns: %w", err)
	}
	for i, cs := range list {
		camp, err := c.GetCampaign(ctx, cs.ID)
		if err != nil {
			return i, fmt.Errorf("fetch campaign %s: %w", cs.ID, err)
		}
		if err := dst.Upsert(ctx, *camp); err != nil {
			return i, fmt.Errorf("cache campaign %s: %w", cs.ID, err)
		}
	}
	return len(list), nil
}
