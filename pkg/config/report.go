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
	// defaultTopN is the number of rows in the trending table.
	defaultTopN = 10

	// defaultArchiveLimit is the number of archived dates linked from the
	// report.
	defaultArchiveLimit = 7
)

type Report struct {
	TopN         int
	ArchiveLimit int

	// Archive additionally writes a date-stamped copy of the report.
	Archive bool
}

func NewReport() *Report {
	return &Report{
		TopN:         defaultTopN,
		ArchiveLimit: defaultArchiveLimit,
		Archive:      false,
	}
}

func (r *Report) Validate() error {
	if r.TopN < 1 {
		return fmt.Errorf("invalid top-n: %d", r.TopN)
	}

	if r.ArchiveLimit < 0 {
		return fmt.Errorf("invalid archive limit: %d", r.ArchiveLimit)
	}

	return nil
}
