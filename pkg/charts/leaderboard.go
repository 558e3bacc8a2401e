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
	"fmt"
	"io"

	"github.com/sirupsen/logrus"
	"github.com/wcharczuk/go-chart/v2"

	"github.com/modelpack/trendctl/pkg/snapshot"
)

// countFormatter abbreviates axis tick values the same way the report
// abbreviates download counts.
func countFormatter(v interface{}) string {
	f, ok := v.(float64)
	if !ok {
		return ""
	}
	if f < 1e6 {
		return fmt.Sprintf("%.0fK", f/1000)
	}
	return fmt.Sprintf("%.1fM", f/1e6)
}

// RenderLeaderboard renders the top trending models as two bar panels,
// downloads and likes, color-coded by category.
func (r *Renderer) RenderLeaderboard(snap *snapshot.Snapshot) (string, error) {
	top := snap.TrendingModels
	if len(top) > r.topModels {
		top = top[:r.topModels]
	}
	if len(top) == 0 {
		logrus.Info("no trending models, skipping leaderboard chart")
		return "", nil
	}

	downloads := make([]chart.Value, 0, len(top))
	likes := make([]chart.Value, 0, len(top))
	for _, model := range top {
		style := chart.Style{FillColor: r.palette.Color(model.TechCategory), StrokeWidth: chart.Disabled}
		label := truncateName(model.Name(), 18)
		downloads = append(downloads, chart.Value{Value: float64(model.Downloads), Label: label, Style: style})
		likes = append(likes, chart.Value{Value: float64(model.Likes), Label: label, Style: style})
	}

	left := r.barChart("Top Models by Downloads", downloads)
	left.YAxis.ValueFormatter = countFormatter
	right := r.barChart("Top Models by Likes", likes)

	return r.save("leaderboard_"+snap.Date+".png", func(w io.Writer) error {
		return r.composePanels(w, left, right)
	})
}

func (r *Renderer) barChart(title string, values []chart.Value) chart.BarChart {
	return chart.BarChart{
		Title:    title,
		Width:    700,
		Height:   500,
		BarWidth: 36,
		XAxis:    chart.Style{TextRotationDegrees: 45},
		Bars:     values,
	}
}

