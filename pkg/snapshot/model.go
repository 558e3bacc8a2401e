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

package snapshot

import (
	"strings"
	"time"
)

// UnknownAuthor is the sentinel used when a record carries no author and
// none can be derived from its id. It is never counted as an organization.
const UnknownAuthor = "unknown"

// ModelRecord is one model entity fetched from the hub, normalized into the
// snapshot schema. Field names follow the persisted JSON files.
type ModelRecord struct {
	// ID is the globally unique identifier, "<author>/<name>" or "<name>".
	ID string `json:"id"`

	// Author is the owning user or organization.
	Author string `json:"author,omitempty"`

	// PipelineTag is the upstream task label, e.g. "text-generation".
	PipelineTag string `json:"pipeline_tag,omitempty"`

	// Downloads is the all-time download count.
	Downloads int64 `json:"downloads"`

	// Likes is the like count.
	Likes int64 `json:"likes"`

	// NumParameters is the reported parameter count, nil when unknown.
	NumParameters *float64 `json:"num_parameters,omitempty"`

	// Tags is the free-text tag list.
	Tags []string `json:"tags,omitempty"`

	// LastModified is the upstream modification timestamp (ISO-8601).
	LastModified string `json:"last_modified,omitempty"`

	// CreatedAt is the upstream creation timestamp (ISO-8601).
	CreatedAt string `json:"created_at,omitempty"`

	// TechCategory is derived from PipelineTag during classification.
	TechCategory string `json:"tech_category,omitempty"`

	// SizeCategory is derived from NumParameters during classification.
	SizeCategory string `json:"size_category,omitempty"`

	// Source records which ranked view first produced the record.
	Source string `json:"source,omitempty"`
}

// Name returns the bare model name, without the author prefix.
func (m ModelRecord) Name() string {
	if idx := strings.LastIndex(m.ID, "/"); idx >= 0 {
		return m.ID[idx+1:]
	}
	return m.ID
}

// Owner returns the author, deriving it from the id prefix when the source
// field is absent. Falls back to UnknownAuthor.
func (m ModelRecord) Owner() string {
	if m.Author != "" {
		return m.Author
	}
	if idx := strings.Index(m.ID, "/"); idx > 0 {
		return m.ID[:idx]
	}
	return UnknownAuthor
}

// OrgCount is one entry of the organization ranking. The ranking is an
// ordered array because count-descending order is part of the contract.
type OrgCount struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// Statistics holds the aggregate distributions of one collection run.
type Statistics struct {
	TechDistribution map[string]int `json:"tech_distribution"`
	TopOrganizations []OrgCount     `json:"top_organizations"`
	SizeDistribution map[string]int `json:"size_distribution"`
	TechKeywords     map[string]int `json:"tech_keywords"`
}

// Snapshot is the complete persisted result of one collection run. It is
// never mutated after being written, only superseded by a later run.
type Snapshot struct {
	// Date is the calendar date key, one snapshot per day.
	Date string `json:"date"`

	// Timestamp is the collection instant.
	Timestamp time.Time `json:"timestamp"`

	TrendingModels []ModelRecord `json:"trending_models"`
	MostDownloaded []ModelRecord `json:"most_downloaded"`
	MostLiked      []ModelRecord `json:"most_liked"`

	// ByCategory holds the top models per technology category.
	ByCategory map[string][]ModelRecord `json:"by_category,omitempty"`

	Statistics Statistics `json:"statistics"`
}

// TotalAnalyzed returns the number of samples across the three ranked lists.
func (s *Snapshot) TotalAnalyzed() int {
	return len(s.TrendingModels) + len(s.MostDownloaded) + len(s.MostLiked)
}
