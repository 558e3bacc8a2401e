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

package charts

import (
	"image/png"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/modelpack/trendctl/pkg/snapshot"
)

func chartSnapshot() *snapshot.Snapshot {
	return &snapshot.Snapshot{
		Date:      "2026-08-31",
		Timestamp: time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC),
		TrendingModels: []snapshot.ModelRecord{
			{ID: "acme/llama-7b", TechCategory: "Language Models", Downloads: 5000, Likes: 120},
			{ID: "beta/sdxl", TechCategory: "Image Generation", Downloads: 3000, Likes: 80},
			{ID: "gamma/whisper", TechCategory: "Speech Recognition", Downloads: 1000, Likes: 40},
		},
		MostDownloaded: []snapshot.ModelRecord{
			{ID: "delta/bert", TechCategory: "Language Models", Downloads: 9000, Likes: 10},
		},
		MostLiked: []snapshot.ModelRecord{
			{ID: "acme/llama-7b", TechCategory: "Language Models", Downloads: 5000, Likes: 120},
		},
		Statistics: snapshot.Statistics{
			TechDistribution: map[string]int{
				"Language Models":    2,
				"Image Generation":   1,
				"Speech Recognition": 1,
			},
			TopOrganizations: []snapshot.OrgCount{
				{Name: "acme", Count: 2},
				{Name: "beta", Count: 1},
			},
			SizeDistribution: map[string]int{"unknown": 4},
			TechKeywords:     map[string]int{"llama": 3, "whisper": 2},
		},
	}
}

func assertPNG(t *testing.T, path string) {
	t.Helper()

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	_, err = png.Decode(f)
	require.NoError(t, err)
}

func TestRenderer_RenderLeaderboard(t *testing.T) {
	dir := t.TempDir()
	renderer, err := NewRenderer(dir, Options{})
	require.NoError(t, err)

	path, err := renderer.RenderLeaderboard(chartSnapshot())
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(dir, "leaderboard_2026-08-31.png"), path)
	assertPNG(t, path)
}

func TestRenderer_RenderLeaderboard_Empty(t *testing.T) {
	renderer, err := NewRenderer(t.TempDir(), Options{})
	require.NoError(t, err)

	path, err := renderer.RenderLeaderboard(&snapshot.Snapshot{Date: "2026-08-31"})
	require.NoError(t, err)
	assert.Empty(t, path)
}

func TestRenderer_RenderTechDistribution(t *testing.T) {
	dir := t.TempDir()
	renderer, err := NewRenderer(dir, Options{})
	require.NoError(t, err)

	path, err := renderer.RenderTechDistribution(chartSnapshot())
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(dir, "tech_distribution_2026-08-31.png"), path)
	assertPNG(t, path)
}

func TestRenderer_RenderOrgRanking(t *testing.T) {
	dir := t.TempDir()
	renderer, err := NewRenderer(dir, Options{})
	require.NoError(t, err)

	path, err := renderer.RenderOrgRanking(chartSnapshot())
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(dir, "org_ranking_2026-08-31.png"), path)
	assertPNG(t, path)
}

func TestRenderer_RenderBubbleChart(t *testing.T) {
	dir := t.TempDir()
	renderer, err := NewRenderer(dir, Options{})
	require.NoError(t, err)

	path, err := renderer.RenderBubbleChart(chartSnapshot())
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(dir, "bubble_chart_2026-08-31.png"), path)
	assertPNG(t, path)
}

func TestRenderer_RenderBubbleChart_TooFewModels(t *testing.T) {
	renderer, err := NewRenderer(t.TempDir(), Options{})
	require.NoError(t, err)

	path, err := renderer.RenderBubbleChart(&snapshot.Snapshot{
		Date: "2026-08-31",
		TrendingModels: []snapshot.ModelRecord{
			{ID: "a/one", Downloads: 10},
			{ID: "a/two", Downloads: 20},
		},
	})
	require.NoError(t, err)
	assert.Empty(t, path)
}

func TestRenderer_RenderBubbleChart_DegenerateRange(t *testing.T) {
	renderer, err := NewRenderer(t.TempDir(), Options{})
	require.NoError(t, err)

	path, err := renderer.RenderBubbleChart(&snapshot.Snapshot{
		Date: "2026-08-31",
		TrendingModels: []snapshot.ModelRecord{
			{ID: "a/one", Downloads: 10},
			{ID: "a/two", Downloads: 10},
			{ID: "a/three", Downloads: 10},
		},
	})
	require.NoError(t, err)
	assert.Empty(t, path)
}

func TestRenderer_RenderWordCloud_NoKeywords(t *testing.T) {
	renderer, err := NewRenderer(t.TempDir(), Options{})
	require.NoError(t, err)

	path, err := renderer.RenderWordCloud(&snapshot.Snapshot{Date: "2026-08-31"})
	require.NoError(t, err)
	assert.Empty(t, path)
}

func TestRenderer_RenderTrend(t *testing.T) {
	dir := t.TempDir()
	renderer, err := NewRenderer(dir, Options{})
	require.NoError(t, err)

	history := []*snapshot.Snapshot{
		historySnapshot("2026-08-29", map[string]int{"Language Models": 5}),
		historySnapshot("2026-08-30", map[string]int{"Language Models": 7, "Image Generation": 2}),
		historySnapshot("2026-08-31", map[string]int{"Language Models": 6, "Image Generation": 3}),
	}

	path, err := renderer.RenderTrend(history)
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(dir, "trend_chart_2026-08-31.png"), path)
	assertPNG(t, path)
}

func TestRenderer_RenderAll(t *testing.T) {
	dir := t.TempDir()
	renderer, err := NewRenderer(dir, Options{})
	require.NoError(t, err)

	history := []*snapshot.Snapshot{
		historySnapshot("2026-08-30", map[string]int{"Language Models": 5}),
		historySnapshot("2026-08-31", map[string]int{"Language Models": 6}),
	}

	paths, err := renderer.RenderAll(chartSnapshot(), history)
	require.NoError(t, err)

	// Leaderboard, distribution, bubble, org ranking and trend always
	// render; the word cloud depends on a system font being present.
	assert.GreaterOrEqual(t, len(paths), 5)
	for _, path := range paths {
		assertPNG(t, path)
	}
}

func TestRenderer_RenderAll_EmptySnapshot(t *testing.T) {
	renderer, err := NewRenderer(t.TempDir(), Options{})
	require.NoError(t, err)

	paths, err := renderer.RenderAll(&snapshot.Snapshot{Date: "2026-08-31"}, nil)
	require.NoError(t, err)
	assert.Empty(t, paths)
}

func TestTruncateName(t *testing.T) {
	tests := []struct {
		name string
		in   string
		max  int
		want string
	}{
		{name: "short name unchanged", in: "llama", max: 10, want: "llama"},
		{name: "long name cut", in: "a-very-long-model-name", max: 10, want: "a-very-lon"},
		{name: "exact length unchanged", in: "0123456789", max: 10, want: "0123456789"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := truncateName(tt.in, tt.max); got != tt.want {
				t.Errorf("truncateName(%q, %d) = %q, want %q", tt.in, tt.max, got, tt.want)
			}
		})
	}
}

func TestBubbleWidth(t *testing.T) {
	tests := []struct {
		name  string
		likes int64
		want  float64
	}{
		{name: "clamped to minimum", likes: 0, want: 5},
		{name: "scaled", likes: 900, want: 15},
		{name: "clamped to maximum", likes: 1_000_000, want: 25},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := bubbleWidth(tt.likes); got != tt.want {
				t.Errorf("bubbleWidth(%d) = %v, want %v", tt.likes, got, tt.want)
			}
		})
	}
}

func TestCountFormatter(t *testing.T) {
	tests := []struct {
		name string
		v    interface{}
		want string
	}{
		{name: "thousands", v: float64(5000), want: "5K"},
		{name: "millions", v: float64(2_300_000), want: "2.3M"},
		{name: "non float", v: "x", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := countFormatter(tt.v); got != tt.want {
				t.Errorf("countFormatter(%v) = %q, want %q", tt.v, got, tt.want)
			}
		})
	}
}
