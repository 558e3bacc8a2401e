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

import (
	"sort"

	"github.com/modelpack/trendctl/pkg/snapshot"
)

const (
	// maxOrganizations caps the organization ranking.
	maxOrganizations = 20

	// maxKeywords caps the aggregated keyword frequencies.
	maxKeywords = 50

	// minKeywordCount filters out keywords seen only once.
	minKeywordCount = 2
)

// Aggregator computes the snapshot statistics over a deduplicated record
// set.
type Aggregator struct {
	classifier *Classifier
	extractor  *KeywordExtractor
}

// NewAggregator creates an aggregator from the classification and keyword
// configuration.
func NewAggregator(classifier *Classifier, extractor *KeywordExtractor) *Aggregator {
	return &Aggregator{
		classifier: classifier,
		extractor:  extractor,
	}
}

// Aggregate computes the four distributions over the given records. The
// records are expected to be deduplicated; classification is applied on the
// fly for records missing derived fields. An empty input yields all-empty
// mappings, never an error.
func (a *Aggregator) Aggregate(records []snapshot.ModelRecord) snapshot.Statistics {
	stats := snapshot.Statistics{
		TechDistribution: make(map[string]int),
		TopOrganizations: []snapshot.OrgCount{},
		SizeDistribution: make(map[string]int),
		TechKeywords:     make(map[string]int),
	}

	orgCounts := make(map[string]int)
	var orgOrder []string
	keywordCounts := make(map[string]int)

	for _, record := range records {
		if record.TechCategory == "" || record.SizeCategory == "" {
			record = a.classifier.Classify(record)
		}

		stats.TechDistribution[record.TechCategory]++
		stats.SizeDistribution[record.SizeCategory]++

		// The unknown-author sentinel is counted as absent, not as an
		// organization.
		if owner := record.Owner(); owner != snapshot.UnknownAuthor {
			if _, ok := orgCounts[owner]; !ok {
				orgOrder = append(orgOrder, owner)
			}
			orgCounts[owner]++
		}

		for _, keyword := range a.extractor.Extract(record) {
			keywordCounts[keyword]++
		}
	}

	stats.TopOrganizations = rankOrganizations(orgCounts, orgOrder)
	stats.TechKeywords = capKeywords(keywordCounts)

	return stats
}

// rankOrganizations sorts organizations by count descending, ties broken by
// first-seen order, capped at maxOrganizations.
func rankOrganizations(counts map[string]int, order []string) []snapshot.OrgCount {
	ranked := make([]snapshot.OrgCount, 0, len(order))
	for _, name := range order {
		ranked = append(ranked, snapshot.OrgCount{Name: name, Count: counts[name]})
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Count > ranked[j].Count
	})

	if len(ranked) > maxOrganizations {
		ranked = ranked[:maxOrganizations]
	}

	return ranked
}

// capKeywords drops keywords below minKeywordCount and keeps the top
// maxKeywords by count, ties broken alphabetically.
func capKeywords(counts map[string]int) map[string]int {
	type entry struct {
		keyword string
		count   int
	}

	entries := make([]entry, 0, len(counts))
	for keyword, count := range counts {
		if count >= minKeywordCount {
			entries = append(entries, entry{keyword: keyword, count: count})
		}
	}

	sort.Slice(entries, func(i, j int) bool {
		if entries[i].count != entries[j].count {
			return entries[i].count > entries[j].count
		}
		return entries[i].keyword < entries[j].keyword
	})

	if len(entries) > maxKeywords {
		entries = entries[:maxKeywords]
	}

	capped := make(map[string]int, len(entries))
	for _, e := range entries {
		capped[e.keyword] = e.count
	}

	return capped
}
