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

package trending

import (
	"context"
	"sort"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/modelpack/trendctl/pkg/snapshot"
)

// Sort keys of the ranked hub views.
const (
	SortTrending  = "trending"
	SortDownloads = "downloads"
	SortLikes     = "likes"
)

// Fetcher fetches one ranked view of models from the hub.
type Fetcher interface {
	// FetchRanked fetches up to limit records ordered by the given sort key.
	FetchRanked(ctx context.Context, sortKey string, limit int) ([]snapshot.ModelRecord, error)
}

// CollectorOptions configures a collection run.
type CollectorOptions struct {
	// FetchLimit is the maximum number of records requested per ranked view.
	FetchLimit int

	// KeepLimit caps each ranked list kept in the snapshot.
	KeepLimit int

	// TopPerCategory caps the per-category model lists.
	TopPerCategory int

	// Now supplies the collection instant, defaulting to time.Now.
	Now func() time.Time
}

// Collector produces one snapshot from the three ranked hub views.
type Collector struct {
	fetcher    Fetcher
	classifier *Classifier
	aggregator *Aggregator
	opts       CollectorOptions
}

// NewCollector creates a collector. The classifier and extractor are the
// injected configuration of the classification pipeline.
func NewCollector(fetcher Fetcher, classifier *Classifier, extractor *KeywordExtractor, opts CollectorOptions) *Collector {
	if opts.Now == nil {
		opts.Now = time.Now
	}

	return &Collector{
		fetcher:    fetcher,
		classifier: classifier,
		aggregator: NewAggregator(classifier, extractor),
		opts:       opts,
	}
}

// Collect fetches the three ranked views, classifies, merges and aggregates
// them into a snapshot. Upstream failures are logged and degrade to empty
// lists; Collect always produces a snapshot, possibly sparse.
func (c *Collector) Collect(ctx context.Context) *snapshot.Snapshot {
	sortKeys := []string{SortTrending, SortDownloads, SortLikes}
	fetched := make([][]snapshot.ModelRecord, len(sortKeys))

	// The fetches run concurrently, but the merge below always applies the
	// fixed trending > downloads > likes precedence. A failed fetch never
	// cancels its siblings.
	var g errgroup.Group
	for i, sortKey := range sortKeys {
		i, sortKey := i, sortKey
		g.Go(func() error {
			records, err := c.fetcher.FetchRanked(ctx, sortKey, c.opts.FetchLimit)
			if err != nil {
				logrus.WithError(err).WithField("sort", sortKey).Warn("fetch failed, continuing with empty list")
				return nil
			}
			fetched[i] = c.classifyAll(records, sortKey)
			return nil
		})
	}
	_ = g.Wait()

	merged := Merge(fetched...)

	now := c.opts.Now()
	snap := &snapshot.Snapshot{
		Date:           now.Format("2006-01-02"),
		Timestamp:      now,
		TrendingModels: capList(fetched[0], c.opts.KeepLimit),
		MostDownloaded: capList(fetched[1], c.opts.KeepLimit),
		MostLiked:      capList(fetched[2], c.opts.KeepLimit),
		ByCategory:     c.topByCategory(merged),
		Statistics:     c.aggregator.Aggregate(merged),
	}

	logrus.WithFields(logrus.Fields{
		"date":     snap.Date,
		"merged":   len(merged),
		"trending": len(snap.TrendingModels),
	}).Info("collection complete")

	return snap
}

func (c *Collector) classifyAll(records []snapshot.ModelRecord, sortKey string) []snapshot.ModelRecord {
	classified := make([]snapshot.ModelRecord, 0, len(records))
	for _, record := range records {
		record = c.classifier.Classify(record)
		if record.Source == "" {
			record.Source = sortKey
		}
		classified = append(classified, record)
	}

	return classified
}

// topByCategory groups the merged records by category and keeps the top
// models per category by likes.
func (c *Collector) topByCategory(records []snapshot.ModelRecord) map[string][]snapshot.ModelRecord {
	if len(records) == 0 || c.opts.TopPerCategory <= 0 {
		return nil
	}

	grouped := make(map[string][]snapshot.ModelRecord)
	for _, record := range records {
		grouped[record.TechCategory] = append(grouped[record.TechCategory], record)
	}

	for category, list := range grouped {
		sort.SliceStable(list, func(i, j int) bool {
			return list[i].Likes > list[j].Likes
		})
		if len(list) > c.opts.TopPerCategory {
			list = list[:c.opts.TopPerCategory]
		}
		grouped[category] = list
	}

	return grouped
}

func capList(records []snapshot.ModelRecord, limit int) []snapshot.ModelRecord {
	if limit > 0 && len(records) > limit {
		return records[:limit]
	}
	return records
}
