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

	"github.com/sirupsen/logrus"
	"github.com/wcharczuk/go-chart/v2"

	"github.com/modelpack/trendctl/pkg/snapshot"
)

// RenderTechDistribution renders the category distribution as a pie and a
// bar panel.
func (r *Renderer) RenderTechDistribution(snap *snapshot.Snapshot) (string, error) {
	dist := snap.Statistics.TechDistribution
	if len(dist) == 0 {
		logrus.Info("no tech distribution data, skipping distribution chart")
		return "", nil
	}

	categories := make([]string, 0, len(dist))
	for category := range dist {
		categories = append(categories, category)
	}
	sort.Slice(categories, func(i, j int) bool {
		if dist[categories[i]] != dist[categories[j]] {
			return dist[categories[i]] > dist[categories[j]]
		}
		return categories[i] < categories[j]
	})

	values := make([]chart.Value, 0, len(categories))
	for _, category := range categories {
		values = append(values, chart.Value{
			Value: float64(dist[category]),
			Label: category,
			Style: chart.Style{FillColor: r.palette.Color(category), StrokeWidth: chart.Disabled},
		})
	}

	pie := chart.PieChart{
		Title:  "Tech Distribution (Pie)",
		Width:  600,
		Height: 500,
		Values: values,
	}
	bars := r.barChart("Tech Distribution (Bar)", values)

	return r.save("tech_distribution_"+snap.Date+".png", func(w io.Writer) error {
		return r.composePanels(w, pie, bars)
	})
}
