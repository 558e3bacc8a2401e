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
	"io"
	"sort"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/wcharczuk/go-chart/v2"

	"github.com/modelpack/trendctl/pkg/snapshot"
)

// PivotCategoryCounts pivots the category distributions of a snapshot
// history into a date-by-category table. One row per snapshot date, columns
// are the union of all categories observed, zero-filled where a category is
// absent on a given date. Categories are sorted alphabetically.
func PivotCategoryCounts(history []*snapshot.Snapshot) (dates []string, categories []string, counts [][]float64) {
	seen := make(map[string]struct{})
	for _, snap := range history {
		for category := range snap.Statistics.TechDistribution {
			seen[category] = struct{}{}
		}
	}

	categories = make([]string, 0, len(seen))
	for category := range seen {
		categories = append(categories, category)
	}
	sort.Strings(categories)

	dates = make([]string, 0, len(history))
	counts = make([][]float64, 0, len(history))
	for _, snap := range history {
		dates = append(dates, snap.Date)
		row := make([]float64, len(categories))
		for i, category := range categories {
			row[i] = float64(snap.Statistics.TechDistribution[category])
		}
		counts = append(counts, row)
	}

	return dates, categories, counts
}

// RenderTrend renders category counts over the archived snapshot history as
// one line series per category. Needs at least two dated snapshots.
func (r *Renderer) RenderTrend(history []*snapshot.Snapshot) (string, error) {
	dates, categories, counts := PivotCategoryCounts(history)

	xValues := make([]time.Time, 0, len(dates))
	rows := make([][]float64, 0, len(dates))
	for i, date := range dates {
		t, err := time.Parse("2006-01-02", date)
		if err != nil {
			logrus.WithField("date", date).Warn("skipping snapshot with unparsable date")
			continue
		}
		xValues = append(xValues, t)
		rows = append(rows, counts[i])
	}

	if len(xValues) < 2 || len(categories) == 0 {
		logrus.Info("not enough history, skipping trend chart")
		return "", nil
	}

	series := make([]chart.Series, 0, len(categories))
	for i, category := range categories {
		yValues := make([]float64, len(rows))
		for j, row := range rows {
			yValues[j] = row[i]
		}
		series = append(series, chart.TimeSeries{
			Name:    category,
			XValues: xValues,
			YValues: yValues,
			Style: chart.Style{
				StrokeColor: r.palette.Color(category),
				StrokeWidth: 2,
			},
		})
	}

	graph := chart.Chart{
		Title:  "Tech Category Trends",
		Width:  1200,
		Height: 600,
		XAxis: chart.XAxis{
			ValueFormatter: chart.TimeDateValueFormatter,
		},
		Series: series,
	}
	graph.Elements = []chart.Renderable{chart.Legend(&graph)}

	latest := dates[len(dates)-1]
	return r.save("trend_chart_"+latest+".png", func(w io.Writer) error {
		return graph.Render(chart.PNG, w)
	})
}
