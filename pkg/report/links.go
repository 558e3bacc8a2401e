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

package report

import "net/url"

// hubBaseURL is the external site all report links point at.
const hubBaseURL = "https://huggingface.co"

// DefaultTagMap returns the fixed category-to-search-tag table used to
// build external category links.
func DefaultTagMap() map[string]string {
	return map[string]string{
		"Language Models":        "text-generation",
		"Multimodal":             "multimodal",
		"Image Generation":       "text-to-image",
		"Video Generation":       "text-to-video",
		"Speech Synthesis":       "text-to-speech",
		"Speech Recognition":     "automatic-speech-recognition",
		"Document Understanding": "document-question-answering",
		"Embedding Models":       "feature-extraction",
		"Image Understanding":    "image-classification",
	}
}

// DefaultColorMap returns the category colors used for the table tags.
func DefaultColorMap() map[string]string {
	return map[string]string{
		"Language Models":        "#6366f1",
		"Multimodal":             "#14b8a6",
		"Image Generation":       "#3b82f6",
		"Video Generation":       "#22c55e",
		"Speech Synthesis":       "#f59e0b",
		"Speech Recognition":     "#a855f7",
		"Document Understanding": "#0ea5e9",
		"Embedding Models":       "#eab308",
		"Image Understanding":    "#8b5cf6",
		"Other":                  "#6b7280",
	}
}

// ModelURL links a model id to its hub page.
func ModelURL(id string) string {
	return hubBaseURL + "/" + id
}

// AuthorURL links an author to their hub page.
func AuthorURL(author string) string {
	return hubBaseURL + "/" + author
}

// CategoryURL links a search tag to the hub's filtered model listing. An
// empty tag yields an inert link.
func CategoryURL(tag string) string {
	if tag == "" {
		return "#"
	}
	return hubBaseURL + "/models?pipeline_tag=" + url.QueryEscape(tag)
}

// KeywordURL links a keyword to the hub's model search.
func KeywordURL(keyword string) string {
	return hubBaseURL + "/models?search=" + url.QueryEscape(keyword)
}
