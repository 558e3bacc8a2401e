/*
 *     Copyright 2025 The CNAI Authors
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *      http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package hub

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	retry "github.com/avast/retry-go/v4"

	"github.com/modelpack/trendctl/pkg/snapshot"
	"github.com/modelpack/trendctl/pkg/trending"
)

const (
	// DefaultBaseURL is the public HuggingFace hub endpoint.
	DefaultBaseURL = "https://huggingface.co"

	// defaultTimeout bounds each request; fail fast, the caller degrades to
	// an empty list.
	defaultTimeout = 30 * time.Second
)

var retryOpts = []retry.Option{
	retry.Attempts(3),
	retry.DelayType(retry.BackOffDelay),
	retry.Delay(1 * time.Second),
	retry.MaxDelay(5 * time.Second),
	retry.LastErrorOnly(true),
}

// Client is a read-only client for the hub's ranked model listings. The
// upstream is a best-effort collaborator: missing fields decode to defaults
// and unknown fields are ignored.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a hub client. An empty baseURL selects the public hub,
// a non-positive timeout selects the default.
func NewClient(baseURL string, timeout time.Duration) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: timeout},
	}
}

// trendingResponse is the payload of /api/trending.
type trendingResponse struct {
	RecentlyTrending []struct {
		RepoType string       `json:"repoType"`
		RepoData modelPayload `json:"repoData"`
	} `json:"recentlyTrending"`
}

// modelPayload is one model object as returned by the hub. The two ranked
// endpoints use slightly different field spellings; both are covered here.
type modelPayload struct {
	ID            string   `json:"id"`
	Author        string   `json:"author"`
	PipelineTag   string   `json:"pipeline_tag"`
	Downloads     int64    `json:"downloads"`
	Likes         int64    `json:"likes"`
	NumParameters *float64 `json:"numParameters"`
	Tags          []string `json:"tags"`
	LastModified  string   `json:"lastModified"`
	CreatedAt     string   `json:"createdAt"`
	Safetensors   *struct {
		Total *float64 `json:"total"`
	} `json:"safetensors"`
}

func (p modelPayload) toRecord() snapshot.ModelRecord {
	numParameters := p.NumParameters
	if numParameters == nil && p.Safetensors != nil {
		numParameters = p.Safetensors.Total
	}

	return snapshot.ModelRecord{
		ID:            p.ID,
		Author:        p.Author,
		PipelineTag:   p.PipelineTag,
		Downloads:     p.Downloads,
		Likes:         p.Likes,
		NumParameters: numParameters,
		Tags:          p.Tags,
		LastModified:  p.LastModified,
		CreatedAt:     p.CreatedAt,
	}
}

// FetchRanked fetches up to limit records ordered by the given sort key,
// one of trending, downloads or likes.
func (c *Client) FetchRanked(ctx context.Context, sortKey string, limit int) ([]snapshot.ModelRecord, error) {
	switch sortKey {
	case trending.SortTrending:
		return c.fetchTrending(ctx, limit)
	case trending.SortDownloads, trending.SortLikes:
		return c.fetchSorted(ctx, sortKey, limit)
	default:
		return nil, fmt.Errorf("unknown sort key: %s", sortKey)
	}
}

// fetchTrending queries /api/trending and keeps only model entries.
func (c *Client) fetchTrending(ctx context.Context, limit int) ([]snapshot.ModelRecord, error) {
	body, err := c.get(ctx, c.baseURL+"/api/trending?type=model")
	if err != nil {
		return nil, err
	}

	var payload trendingResponse
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, fmt.Errorf("failed to decode trending payload: %w", err)
	}

	records := make([]snapshot.ModelRecord, 0, limit)
	for _, item := range payload.RecentlyTrending {
		if item.RepoType != "" && item.RepoType != "model" {
			continue
		}
		records = append(records, item.RepoData.toRecord())
		if limit > 0 && len(records) >= limit {
			break
		}
	}

	return records, nil
}

// fetchSorted queries /api/models with a sort key.
func (c *Client) fetchSorted(ctx context.Context, sortKey string, limit int) ([]snapshot.ModelRecord, error) {
	query := url.Values{}
	query.Set("sort", sortKey)
	query.Set("direction", "-1")
	if limit > 0 {
		query.Set("limit", strconv.Itoa(limit))
	}

	body, err := c.get(ctx, c.baseURL+"/api/models?"+query.Encode())
	if err != nil {
		return nil, err
	}

	var payload []modelPayload
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, fmt.Errorf("failed to decode models payload: %w", err)
	}

	records := make([]snapshot.ModelRecord, 0, len(payload))
	for _, item := range payload {
		records = append(records, item.toRecord())
	}

	return records, nil
}

func (c *Client) get(ctx context.Context, rawURL string) ([]byte, error) {
	return retry.DoWithData(func() ([]byte, error) {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
		if err != nil {
			return nil, retry.Unrecoverable(fmt.Errorf("failed to create request: %w", err))
		}
		req.Header.Set("Accept", "application/json")

		resp, err := c.httpClient.Do(req)
		if err != nil {
			return nil, fmt.Errorf("request failed: %w", err)
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
		}

		body, err := io.ReadAll(resp.Body)
		if err != nil {
			return nil, fmt.Errorf("failed to read response body: %w", err)
		}

		return body, nil
	}, append(retryOpts, retry.Context(ctx))...)
}
