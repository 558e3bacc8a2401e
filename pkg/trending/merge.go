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

package trending

import "github.com/modelpack/trendctl/pkg/snapshot"

// Merge concatenates the input lists and deduplicates by record id.
// First-seen wins: when the same id appears in several lists, the record
// from the earliest list survives and later fields never overwrite it.
// First-seen relative order is preserved. Records without an id are dropped.
func Merge(lists ...[]snapshot.ModelRecord) []snapshot.ModelRecord {
	seen := make(map[string]struct{})

	var merged []snapshot.ModelRecord
	for _, list := range lists {
		for _, record := range list {
			if record.ID == "" {
				continue
			}
			if _, ok := seen[record.ID]; ok {
				continue
			}
			seen[record.ID] = struct{}{}
			merged = append(merged, record)
		}
	}

	return merged
}
