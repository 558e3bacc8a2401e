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
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"os"
	"path/filepath"
	"sort"
	"strconv"

	"github.com/sirupsen/logrus"

	"github.com/modelpack/trendctl/pkg/snapshot"
)

//go:embed templates/index.html.tmpl
var templateFS embed.FS

const (
	// IndexFile is the report written at the site root.
	IndexFile = "index.html"

	// archiveReportPrefix names date-stamped report copies.
	archiveReportPrefix = "report_"

	// maxCloudKeywords caps the interactive keyword cloud.
	maxCloudKeywords = 30
)

// Options configures a report renderer. Zero values select the defaults.
type Options struct {
	// TopN is the number of rows in the trending table.
	TopN int

	// ArchiveLimit is the number of archived dates linked from the report.
	ArchiveLimit int

	// TagMap maps categories to external search tags; nil selects
	// DefaultTagMap.
	TagMap map[string]string

	// Colors maps categories to tag colors; nil selects DefaultColorMap.
	Colors map[string]string
}

// Renderer formats snapshots into the static HTML report. Rendering is a
// pure transform: the same snapshot and archive listing always produce
// byte-identical output.
type Renderer struct {
	topN         int
	archiveLimit int
	tagMap       map[string]string
	colors       map[string]string
	tmpl         *template.Template
}

// NewRenderer creates a report renderer.
func NewRenderer(opts Options) (*Renderer, error) {
	if opts.TopN <= 0 {
		opts.TopN = 10
	}
	if opts.ArchiveLimit <= 0 {
		opts.ArchiveLimit = 7
	}
	if opts.TagMap == nil {
		opts.TagMap = DefaultTagMap()
	}
	if opts.Colors == nil {
		opts.Colors = DefaultColorMap()
	}

	tmpl, err := template.ParseFS(templateFS, "templates/index.html.tmpl")
	if err != nil {
		return nil, fmt.Errorf("failed to parse report template: %w", err)
	}

	return &Renderer{
		topN:         opts.TopN,
		archiveLimit: opts.ArchiveLimit,
		tagMap:       opts.TagMap,
		colors:       opts.Colors,
		tmpl:         tmpl,
	}, nil
}

type tableRow struct {
	Rank          string
	Name          string
	ModelURL      string
	Category      string
	CategoryURL   string
	CategoryColor template.CSS
	Downloads     string
	Likes         int64
	Author        string
	AuthorURL     string
}

type cloudKeyword struct {
	Word  string
	URL   string
	Class string
}

type categoryTag struct {
	Name     string
	URL      string
	FontSize template.CSS
}

type page struct {
	Date          string
	TrendingCount int
	TechCount     int
	TotalAnalyzed int
	LLMPercent    string
	Rows          []tableRow
	Keywords      []cloudKeyword
	TagCloud      []categoryTag
	Archives      []string
	Images        map[string]string
}

// Render produces the report HTML for a snapshot and an ascending archive
// date listing.
func (r *Renderer) Render(snap *snapshot.Snapshot, archives []string) (string, error) {
	data := r.buildPage(snap, archives)

	var buf bytes.Buffer
	if err := r.tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to execute report template: %w", err)
	}

	return buf.String(), nil
}

// Write renders the report and writes it as the site index. When
// archiveCopy is set a date-stamped duplicate is written as well. Returns
// the index path.
func (r *Renderer) Write(outputDir string, snap *snapshot.Snapshot, archives []string, archiveCopy bool) (string, error) {
	html, err := r.Render(snap, archives)
	if err != nil {
		return "", err
	}

	indexPath := filepath.Join(outputDir, IndexFile)
	if err := os.WriteFile(indexPath, []byte(html), 0644); err != nil {
		return "", fmt.Errorf("failed to write report: %w", err)
	}

	if archiveCopy {
		archivePath := filepath.Join(outputDir, archiveReportPrefix+snap.Date+".html")
		if err := os.WriteFile(archivePath, []byte(html), 0644); err != nil {
			return "", fmt.Errorf("failed to write report archive copy: %w", err)
		}
		logrus.WithField("path", archivePath).Info("report archive copy written")
	}

	logrus.WithField("path", indexPath).Info("report written")
	return indexPath, nil
}

func (r *Renderer) buildPage(snap *snapshot.Snapshot, archives []string) page {
	dist := snap.Statistics.TechDistribution

	data := page{
		Date:          snap.Date,
		TrendingCount: len(snap.TrendingModels),
		TechCount:     len(dist),
		TotalAnalyzed: snap.TotalAnalyzed(),
		LLMPercent:    llmPercent(dist),
		Rows:          r.buildRows(snap),
		Keywords:      r.buildKeywords(snap.Statistics.TechKeywords),
		TagCloud:      r.buildTagCloud(dist),
		Archives:      tail(archives, r.archiveLimit),
		Images: map[string]string{
			"Leaderboard":  "leaderboard_" + snap.Date + ".png",
			"Distribution": "tech_distribution_" + snap.Date + ".png",
			"Bubble":       "bubble_chart_" + snap.Date + ".png",
			"OrgRanking":   "org_ranking_" + snap.Date + ".png",
			"WordCloud":    "wordcloud_" + snap.Date + ".png",
			"Trend":        "trend_chart_" + snap.Date + ".png",
		},
	}

	return data
}

func (r *Renderer) buildRows(snap *snapshot.Snapshot) []tableRow {
	top := snap.TrendingModels
	if len(top) > r.topN {
		top = top[:r.topN]
	}

	rows := make([]tableRow, 0, len(top))
	for i, model := range top {
		category := model.TechCategory
		if category == "" {
			category = "Other"
		}

		color, ok := r.colors[category]
		if !ok {
			color = r.colors["Other"]
		}

		author := model.Owner()
		rows = append(rows, tableRow{
			Rank:          rankLabel(i + 1),
			Name:          model.Name(),
			ModelURL:      ModelURL(model.ID),
			Category:      category,
			CategoryURL:   CategoryURL(r.tagMap[category]),
			CategoryColor: template.CSS(color),
			Downloads:     FormatCount(model.Downloads),
			Likes:         model.Likes,
			Author:        author,
			AuthorURL:     AuthorURL(author),
		})
	}

	return rows
}

// buildKeywords orders keywords by frequency and assigns one of four heat
// classes relative to the hottest keyword.
func (r *Renderer) buildKeywords(keywords map[string]int) []cloudKeyword {
	if len(keywords) == 0 {
		return nil
	}

	type entry struct {
		word  string
		count int
	}
	entries := make([]entry, 0, len(keywords))
	max := 0
	for word, count := range keywords {
		entries = append(entries, entry{word: word, count: count})
		if count > max {
			max = count
		}
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].count != entries[j].count {
			return entries[i].count > entries[j].count
		}
		return entries[i].word < entries[j].word
	})

	if len(entries) > maxCloudKeywords {
		entries = entries[:maxCloudKeywords]
	}

	cloud := make([]cloudKeyword, 0, len(entries))
	for _, e := range entries {
		cloud = append(cloud, cloudKeyword{
			Word:  e.word,
			URL:   KeywordURL(e.word),
			Class: heatClass(e.count, max),
		})
	}

	return cloud
}

func heatClass(count, max int) string {
	switch c := float64(count); {
	case c >= float64(max)*0.7:
		return "kw-hot"
	case c >= float64(max)*0.4:
		return "kw-warm"
	case c >= float64(max)*0.2:
		return "kw-medium"
	default:
		return "kw-normal"
	}
}

// buildTagCloud renders the category distribution as frequency-scaled
// links, largest first.
func (r *Renderer) buildTagCloud(dist map[string]int) []categoryTag {
	if len(dist) == 0 {
		return nil
	}

	categories := make([]string, 0, len(dist))
	max := 0
	for category, count := range dist {
		categories = append(categories, category)
		if count > max {
			max = count
		}
	}
	sort.Slice(categories, func(i, j int) bool {
		if dist[categories[i]] != dist[categories[j]] {
			return dist[categories[i]] > dist[categories[j]]
		}
		return categories[i] < categories[j]
	})

	cloud := make([]categoryTag, 0, len(categories))
	for _, category := range categories {
		size := 0.8 + float64(dist[category])/float64(max)
		cloud = append(cloud, categoryTag{
			Name:     category,
			URL:      CategoryURL(r.tagMap[category]),
			FontSize: template.CSS(fmt.Sprintf("%.2frem", size)),
		})
	}

	return cloud
}

func llmPercent(dist map[string]int) string {
	total := 0
	for _, count := range dist {
		total += count
	}
	if total == 0 {
		return "0"
	}

	return fmt.Sprintf("%.0f", float64(dist["Language Models"])/float64(total)*100)
}

func rankLabel(rank int) string {
	switch rank {
	case 1:
		return "🥇"
	case 2:
		return "🥈"
	case 3:
		return "🥉"
	default:
		return strconv.Itoa(rank)
	}
}

func tail(items []string, n int) []string {
	if n > 0 && len(items) > n {
		return items[len(items)-n:]
	}
	return items
}
