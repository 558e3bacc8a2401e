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
	"math"

	"github.com/modelpack/trendctl/pkg/snapshot"
)

const (
	// OtherCategory is the fallback technology category for pipeline tags
	// that match no configured category.
	OtherCategory = "Other"

	// UnknownSize is the size bucket for records without a parameter count.
	UnknownSize = "unknown"
)

// Category maps a technology category name to the upstream pipeline tags it
// covers. A pipeline tag matches at most one category, first match wins in
// enumeration order.
type Category struct {
	Name string
	Tags []string
}

// SizeBucket is one bucket of the parameter-size classification. Buckets are
// contiguous: a record falls into the first bucket whose UpperBound exceeds
// its parameter count.
type SizeBucket struct {
	UpperBound float64
	Label      string
}

// DefaultCategories returns the fixed category enumeration.
func DefaultCategories() []Category {
	return []Category{
		{Name: "Language Models", Tags: []string{"text-generation", "text2text-generation", "conversational"}},
		{Name: "Multimodal", Tags: []string{"image-text-to-text", "any-to-any", "visual-question-answering"}},
		{Name: "Image Generation", Tags: []string{"text-to-image", "image-to-image", "unconditional-image-generation"}},
		{Name: "Video Generation", Tags: []string{"text-to-video", "image-to-video", "video-to-video"}},
		{Name: "Speech Synthesis", Tags: []string{"text-to-speech", "text-to-audio"}},
		{Name: "Speech Recognition", Tags: []string{"automatic-speech-recognition", "audio-to-audio"}},
		{Name: "Document Understanding", Tags: []string{"image-to-text", "document-question-answering"}},
		{Name: "Embedding Models", Tags: []string{"feature-extraction", "sentence-similarity"}},
		{Name: "Image Understanding", Tags: []string{"image-classification", "object-detection", "image-segmentation"}},
	}
}

// DefaultSizeBuckets returns the fixed parameter-size buckets.
func DefaultSizeBuckets() []SizeBucket {
	return []SizeBucket{
		{UpperBound: 1e9, Label: "tiny (<1B)"},
		{UpperBound: 7e9, Label: "small (1B-7B)"},
		{UpperBound: 32e9, Label: "medium (7B-32B)"},
		{UpperBound: 128e9, Label: "large (32B-128B)"},
		{UpperBound: math.Inf(1), Label: "huge (>128B)"},
	}
}

// Classifier derives the technology category and size bucket of a model
// record from immutable configuration data.
type Classifier struct {
	categories []Category
	byTag      map[string]string
	buckets    []SizeBucket
}

// NewClassifier creates a classifier from a category enumeration and size
// buckets. The inputs are treated as immutable configuration.
func NewClassifier(categories []Category, buckets []SizeBucket) *Classifier {
	byTag := make(map[string]string)
	for _, category := range categories {
		for _, tag := range category.Tags {
			// First match wins in enumeration order.
			if _, ok := byTag[tag]; !ok {
				byTag[tag] = category.Name
			}
		}
	}

	return &Classifier{
		categories: categories,
		byTag:      byTag,
		buckets:    buckets,
	}
}

// TechCategory returns the category of a pipeline tag, OtherCategory when
// the tag is absent or unmapped.
func (c *Classifier) TechCategory(pipelineTag string) string {
	if category, ok := c.byTag[pipelineTag]; ok {
		return category
	}
	return OtherCategory
}

// SizeCategory returns the size bucket label of a parameter count,
// UnknownSize when the count is absent.
func (c *Classifier) SizeCategory(numParameters *float64) string {
	if numParameters == nil {
		return UnknownSize
	}

	for _, bucket := range c.buckets {
		if *numParameters < bucket.UpperBound {
			return bucket.Label
		}
	}

	// Unreachable with the default buckets, whose last bound is +Inf.
	return UnknownSize
}

// Classify returns a copy of the record with its derived fields populated.
func (c *Classifier) Classify(record snapshot.ModelRecord) snapshot.ModelRecord {
	record.TechCategory = c.TechCategory(record.PipelineTag)
	record.SizeCategory = c.SizeCategory(record.NumParameters)
	return record
}

// CategoryNames returns the category names in enumeration order, with the
// fallback category last.
func (c *Classifier) CategoryNames() []string {
	names := make([]string, 0, len(c.categories)+1)
	for _, category := range c.categories {
		names = append(names, category.Name)
	}
	return append(names, OtherCategory)
}
