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

package config

import "fmt"

const (
	// defaultHistoryLimit is the number of archived snapshots scanned for
	// the trend chart.
	defaultHistoryLimit = 30

	// defaultTopModels is the number of models shown on the leaderboard and
	// bubble charts.
	defaultTopModels = 10
)

type Charts struct {
	// Date selects a historical snapshot; empty renders the latest.
	Date string

	HistoryLimit int
	TopModels    int

	// FontFile is the TTF font used for the word cloud. When empty, a set
	// of common system font locations is probed; without a font the word
	// cloud is skipped.
	FontFile string
}

func NewCharts() *Charts {
	return &Charts{
		Date:         "",
		HistoryLimit: defaultHistoryLimit,
		TopModels:    defaultTopModels,
		FontFile:     "",
	}
}

func (c *Charts) Validate() error {
	if c.HistoryLimit < 0 {
		return fmt.Errorf("invalid history limit: %d", c.HistoryLimit)
	}

	if c.TopModels < 1 {
		return fmt.Errorf("invalid top models limit: %d", c.TopModels)
	}

	return nil
}
