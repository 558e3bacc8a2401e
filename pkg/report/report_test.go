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

package report

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/modelpack/trendctl/pkg/snapshot"
)

func testReportSnapshot() *snapshot.Snapshot {
	return &snapshot.Snapshot{
		Date:      "2026-08-31",
		Timestamp: time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC),
		TrendingModels: []snapshot.ModelRecord{
			{
				ID:           "acme/foo-7b",
				PipelineTag:  "text-generation",
				Downloads:    1500,
				Likes:        42,
				TechCategory: "Language Models",
				SizeCategory: "medium (7B-32B)",
			},
			{
				ID:           "beta/sdxl",
				PipelineTag:  "text-to-image",
				Downloads:    2_300_000,
				Likes:        7,
				TechCategory: "Image Generation",
			},
		},
		Statistics: snapshot.Statistics{
			TechDistribution: map[string]int{
				"Language Models":  3,
				"Image Generation": 1,
			},
			TopOrganizations: []snapshot.OrgCount{{Name: "acme", Count: 2}},
			SizeDistribution: map[string]int{"unknown": 4},
			TechKeywords: map[string]int{
				"llama": 10,
				"gpt":   5,
				"lora":  2,
			},
		},
	}
}

func TestRenderer_Render(t *testing.T) {
	renderer, err := NewRenderer(Options{})
	require.NoError(t, err)

	html, err := renderer.Render(testReportSnapshot(), []string{"2026-08-30", "2026-08-31"})
	require.NoError(t, err)

	assert.Contains(t, html, "2026-08-31")
	assert.Contains(t, html, "foo-7b")
	assert.Contains(t, html, "https://huggingface.co/acme/foo-7b")
	assert.Contains(t, html, "1.5K")
	assert.Contains(t, html, "2.3M")
	assert.Contains(t, html, "🥇")
	assert.Contains(t, html, "acme")

	// Keyword heat classes relative to the hottest keyword.
	assert.Contains(t, html, `class="kw-hot"`)
	assert.Contains(t, html, "llama")

	// 3 of 4 categorized models are language models.
	assert.Contains(t, html, "75%")

	// All six chart images are referenced.
	for _, image := range []string{
		"leaderboard_2026-08-31.png",
		"tech_distribution_2026-08-31.png",
		"bubble_chart_2026-08-31.png",
		"org_ranking_2026-08-31.png",
		"wordcloud_2026-08-31.png",
		"trend_chart_2026-08-31.png",
	} {
		assert.Contains(t, html, image)
	}

	// Archive links.
	assert.Contains(t, html, "?date=2026-08-30")
}

func TestRenderer_Render_Deterministic(t *testing.T) {
	renderer, err := NewRenderer(Options{})
	require.NoError(t, err)

	snap := testReportSnapshot()
	archives := []string{"2026-08-29", "2026-08-30", "2026-08-31"}

	first, err := renderer.Render(snap, archives)
	require.NoError(t, err)
	second, err := renderer.Render(snap, archives)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestRenderer_Render_EmptySnapshot(t *testing.T) {
	renderer, err := NewRenderer(Options{})
	require.NoError(t, err)

	html, err := renderer.Render(&snapshot.Snapshot{Date: "2026-08-31"}, nil)
	require.NoError(t, err)

	assert.Contains(t, html, "No keyword data available yet")
	assert.Contains(t, html, "No archived data yet")
	assert.NotContains(t, html, "🥇")
}

func TestRenderer_Render_TopN(t *testing.T) {
	renderer, err := NewRenderer(Options{TopN: 1})
	require.NoError(t, err)

	html, err := renderer.Render(testReportSnapshot(), nil)
	require.NoError(t, err)

	assert.Contains(t, html, "foo-7b")
	assert.NotContains(t, html, "sdxl")
}

func TestRenderer_Render_ArchiveLimit(t *testing.T) {
	renderer, err := NewRenderer(Options{ArchiveLimit: 7})
	require.NoError(t, err)

	archives := []string{
		"2026-08-22", "2026-08-23", "2026-08-24", "2026-08-25",
		"2026-08-26", "2026-08-27", "2026-08-28", "2026-08-29",
		"2026-08-30", "2026-08-31",
	}

	html, err := renderer.Render(testReportSnapshot(), archives)
	require.NoError(t, err)

	// Only the newest seven dates are linked.
	assert.NotContains(t, html, "2026-08-24")
	assert.Contains(t, html, "2026-08-25")
	assert.Contains(t, html, "2026-08-30")
}

func TestRenderer_Write(t *testing.T) {
	renderer, err := NewRenderer(Options{})
	require.NoError(t, err)

	dir := t.TempDir()
	path, err := renderer.Write(dir, testReportSnapshot(), nil, true)
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(dir, IndexFile), path)
	assert.FileExists(t, filepath.Join(dir, IndexFile))
	assert.FileExists(t, filepath.Join(dir, "report_2026-08-31.html"))

	index, err := os.ReadFile(filepath.Join(dir, IndexFile))
	require.NoError(t, err)
	archived, err := os.ReadFile(filepath.Join(dir, "report_2026-08-31.html"))
	require.NoError(t, err)
	assert.Equal(t, index, archived)
}

func TestRenderer_Render_KeywordOrder(t *testing.T) {
	renderer, err := NewRenderer(Options{})
	require.NoError(t, err)

	html, err := renderer.Render(testReportSnapshot(), nil)
	require.NoError(t, err)

	// Keywords appear by descending frequency.
	assert.Less(t, strings.Index(html, ">llama<"), strings.Index(html, ">gpt<"))
	assert.Less(t, strings.Index(html, ">gpt<"), strings.Index(html, ">lora<"))
}

func TestLinks(t *testing.T) {
	assert.Equal(t, "https://huggingface.co/acme/foo", ModelURL("acme/foo"))
	assert.Equal(t, "https://huggingface.co/acme", AuthorURL("acme"))
	assert.Equal(t, "https://huggingface.co/models?pipeline_tag=text-generation", CategoryURL("text-generation"))
	assert.Equal(t, "#", CategoryURL(""))
	assert.Equal(t, "https://huggingface.co/models?search=llama", KeywordURL("llama"))
}
