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
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/modelpack/trendctl/pkg/snapshot"
)

// stubFetcher serves canned ranked views keyed by sort key.
type stubFetcher struct {
	views map[string][]snapshot.ModelRecord
	errs  map[string]error
}

func (f *stubFetcher) FetchRanked(ctx context.Context, sortKey string, limit int) ([]snapshot.ModelRecord, error) {
	if err := f.errs[sortKey]; err != nil {
		return nil, err
	}
	return f.views[sortKey], nil
}

func fixedNow() time.Time {
	return time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC)
}

func newTestCollector(fetcher Fetcher, opts CollectorOptions) *Collector {
	if opts.Now == nil {
		opts.Now = fixedNow
	}
	return NewCollector(
		fetcher,
		NewClassifier(DefaultCategories(), DefaultSizeBuckets()),
		NewKeywordExtractor(DefaultVocabulary()),
		opts,
	)
}

func TestCollector_Collect(t *testing.T) {
	fetcher := &stubFetcher{
		views: map[string][]snapshot.ModelRecord{
			SortTrending: {
				{ID: "acme/llama-7b", PipelineTag: "text-generation", Downloads: 100, Likes: 10},
				{ID: "beta/sdxl", PipelineTag: "text-to-image", Downloads: 50, Likes: 20},
			},
			SortDownloads: {
				{ID: "acme/llama-7b", PipelineTag: "text-generation", Downloads: 100, Likes: 10},
				{ID: "gamma/bert", PipelineTag: "fill-mask", Downloads: 900, Likes: 1},
			},
			SortLikes: {
				{ID: "delta/whisper", PipelineTag: "automatic-speech-recognition", Likes: 99},
			},
		},
	}

	snap := newTestCollector(fetcher, CollectorOptions{
		FetchLimit:     500,
		KeepLimit:      20,
		TopPerCategory: 10,
	}).Collect(context.Background())

	assert.Equal(t, "2026-08-31", snap.Date)
	assert.Equal(t, fixedNow(), snap.Timestamp)

	assert.Len(t, snap.TrendingModels, 2)
	assert.Len(t, snap.MostDownloaded, 2)
	assert.Len(t, snap.MostLiked, 1)

	// Each kept record carries its derived fields and source.
	assert.Equal(t, "Language Models", snap.TrendingModels[0].TechCategory)
	assert.Equal(t, SortTrending, snap.TrendingModels[0].Source)
	assert.Equal(t, SortLikes, snap.MostLiked[0].Source)

	assert.Equal(t, 5, snap.TotalAnalyzed())

	// Statistics cover the deduplicated union of all three views.
	total := 0
	for _, count := range snap.Statistics.TechDistribution {
		total += count
	}
	assert.Equal(t, 4, total)
	assert.Equal(t, 1, snap.Statistics.TechDistribution["Image Generation"])
	assert.Equal(t, 1, snap.Statistics.TechDistribution["Speech Recognition"])

	langModels := snap.ByCategory["Language Models"]
	assert.Len(t, langModels, 1)
	assert.Equal(t, "acme/llama-7b", langModels[0].ID)
}

func TestCollector_Collect_KeepLimit(t *testing.T) {
	var many []snapshot.ModelRecord
	for i := 0; i < 30; i++ {
		many = append(many, snapshot.ModelRecord{ID: "acme/model-" + string(rune('a'+i))})
	}

	fetcher := &stubFetcher{views: map[string][]snapshot.ModelRecord{SortTrending: many}}

	snap := newTestCollector(fetcher, CollectorOptions{KeepLimit: 20, TopPerCategory: 10}).Collect(context.Background())

	assert.Len(t, snap.TrendingModels, 20)

	// The statistics still span the full fetched view.
	total := 0
	for _, count := range snap.Statistics.TechDistribution {
		total += count
	}
	assert.Equal(t, 30, total)
}

func TestCollector_Collect_FailedFetchDegrades(t *testing.T) {
	fetcher := &stubFetcher{
		views: map[string][]snapshot.ModelRecord{
			SortTrending: {{ID: "acme/foo", PipelineTag: "text-generation"}},
		},
		errs: map[string]error{
			SortDownloads: errors.New("boom"),
			SortLikes:     errors.New("boom"),
		},
	}

	snap := newTestCollector(fetcher, CollectorOptions{KeepLimit: 20, TopPerCategory: 10}).Collect(context.Background())

	assert.Len(t, snap.TrendingModels, 1)
	assert.Empty(t, snap.MostDownloaded)
	assert.Empty(t, snap.MostLiked)
	assert.Equal(t, 1, snap.TotalAnalyzed())
}

func TestCollector_Collect_AllFetchesFail(t *testing.T) {
	fetcher := &stubFetcher{
		errs: map[string]error{
			SortTrending:  errors.New("boom"),
			SortDownloads: errors.New("boom"),
			SortLikes:     errors.New("boom"),
		},
	}

	snap := newTestCollector(fetcher, CollectorOptions{KeepLimit: 20, TopPerCategory: 10}).Collect(context.Background())

	assert.NotNil(t, snap)
	assert.Equal(t, "2026-08-31", snap.Date)
	assert.Empty(t, snap.TrendingModels)
	assert.Equal(t, 0, snap.TotalAnalyzed())
	assert.NotNil(t, snap.Statistics.TechDistribution)
}

func TestCollector_Collect_TopPerCategoryByLikes(t *testing.T) {
	fetcher := &stubFetcher{
		views: map[string][]snapshot.ModelRecord{
			SortTrending: {
				{ID: "a/one", PipelineTag: "text-generation", Likes: 5},
				{ID: "a/two", PipelineTag: "text-generation", Likes: 50},
				{ID: "a/three", PipelineTag: "text-generation", Likes: 20},
			},
		},
	}

	snap := newTestCollector(fetcher, CollectorOptions{KeepLimit: 20, TopPerCategory: 2}).Collect(context.Background())

	langModels := snap.ByCategory["Language Models"]
	assert.Len(t, langModels, 2)
	assert.Equal(t, "a/two", langModels[0].ID)
	assert.Equal(t, "a/three", langModels[1].ID)
}
