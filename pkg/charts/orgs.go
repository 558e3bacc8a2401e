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

	"github.com/sirupsen/logrus"
	"github.com/wcharczuk/go-chart/v2"

	"github.com/modelpack/trendctl/pkg/snapshot"
)

// maxRankedOrgs caps the organization ranking chart.
const maxRankedOrgs = 15

// RenderOrgRanking renders the most active organizations by model count.
// The ranking in the snapshot is already count-descending with the unknown
// sentinel excluded.
func (r *Renderer) RenderOrgRanking(snap *snapshot.Snapshot) (string, error) {
	orgs := snap.Statistics.TopOrganizations
	if len(orgs) == 0 {
		logrus.Info("no organization data, skipping organization ranking chart")
		return "", nil
	}
	if len(orgs) > maxRankedOrgs {
		orgs = orgs[:maxRankedOrgs]
	}

	values := make([]chart.Value, 0, len(orgs))
	for i, org := range orgs {
		values = append(values, chart.Value{
			Value: float64(org.Count),
			Label: truncateName(org.Name, 16),
			Style: chart.Style{FillColor: seriesColor(i), StrokeWidth: chart.Disabled},
		})
	}

	graph := chart.BarChart{
		Title:    "Active Organizations - " + snap.Date,
		Width:    1200,
		Height:   600,
		BarWidth: 48,
		XAxis:    chart.Style{TextRotationDegrees: 45},
		Bars:     values,
	}

	return r.save("org_ranking_"+snap.Date+".png", func(w io.Writer) error {
		return graph.Render(chart.PNG, w)
	})
}
