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
	"math"

	"github.com/sirupsen/logrus"
	"github.com/wcharczuk/go-chart/v2"

	"github.com/modelpack/trendctl/pkg/snapshot"
	"github.com/modelpack/trendctl/pkg/trending"
)

const (
	// minBubbleModels is the minimum sample for a meaningful scatter.
	minBubbleModels = 3

	// maxBubbleModels caps the scatter to keep it readable.
	maxBubbleModels = 20
)

// RenderBubbleChart renders model popularity as downloads vs likes, bubble
// size scaled by likes and color by category. Input is the union of the
// trending list and the heads of the downloaded/liked lists, deduplicated.
func (r *Renderer) RenderBubbleChart(snap *snapshot.Snapshot) (string, error) {
	models := trending.Merge(
		snap.TrendingModels,
		head(snap.MostDownloaded, r.topModels),
		head(snap.MostLiked, r.topModels),
	)
	if len(models) > maxBubbleModels {
		models = models[:maxBubbleModels]
	}
	if len(models) < minBubbleModels {
		logrus.Info("not enough models, skipping bubble chart")
		return "", nil
	}

	// A scatter needs x-axis spread; identical download counts across the
	// board would make the range degenerate.
	if degenerate(models) {
		logrus.Info("degenerate download range, skipping bubble chart")
		return "", nil
	}

	series := make([]chart.Series, 0, len(models))
	for _, model := range models {
		series = append(series, chart.ContinuousSeries{
			Name:    truncateName(model.Name(), 20),
			XValues: []float64{float64(model.Downloads)},
			YValues: []float64{float64(model.Likes)},
			Style: chart.Style{
				StrokeWidth: chart.Disabled,
				DotWidth:    bubbleWidth(model.Likes),
				DotColor:    r.palette.Color(model.TechCategory),
			},
		})
	}

	graph := chart.Chart{
		Title:  "Model Popularity - " + snap.Date,
		Width:  1200,
		Height: 800,
		XAxis: chart.XAxis{
			Name:           "Downloads",
			ValueFormatter: countFormatter,
		},
		YAxis: chart.YAxis{
			Name: "Likes",
		},
		Series: series,
	}

	return r.save("bubble_chart_"+snap.Date+".png", func(w io.Writer) error {
		return graph.Render(chart.PNG, w)
	})
}

// bubbleWidth scales likes into a dot radius between 5 and 25 pixels.
func bubbleWidth(likes int64) float64 {
	width := math.Sqrt(float64(likes)) / 2
	if width < 5 {
		return 5
	}
	if width > 25 {
		return 25
	}
	return width
}

func degenerate(models []snapshot.ModelRecord) bool {
	first := models[0].Downloads
	for _, model := range models[1:] {
		if model.Downloads != first {
			return false
		}
	}
	return true
}

func head(records []snapshot.ModelRecord, n int) []snapshot.ModelRecord {
	if len(records) > n {
		return records[:n]
	}
	return records
}
