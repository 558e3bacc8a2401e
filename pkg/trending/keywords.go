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
	"regexp"
	"sort"
	"strings"

	"github.com/modelpack/trendctl/pkg/snapshot"
)

// tokenPattern matches letter runs and parameter-count shorthands like "7b".
var tokenPattern = regexp.MustCompile(`[a-zA-Z]+|\d+[bB]`)

// DefaultVocabulary returns the fixed keyword vocabulary matched against
// model names and tags. Matching is heuristic, no guarantee stronger than
// "matches this list" is given.
func DefaultVocabulary() []string {
	return []string{
		"llm", "gpt", "bert", "transformer", "diffusion", "stable", "flux",
		"whisper", "llama", "mistral", "qwen", "gemma", "phi", "deepseek",
		"vision", "audio", "speech", "text", "image", "video", "multimodal",
		"ocr", "tts", "asr", "embedding", "rag", "agent", "chat", "instruct",
		"finetune", "lora", "gguf", "quantized", "7b", "8b", "13b", "70b",
		"flash", "turbo", "ultra", "pro", "base", "large", "small", "mini",
	}
}

// KeywordExtractor matches a fixed vocabulary against tokens parsed from a
// model name and its tag list, case-insensitively.
type KeywordExtractor struct {
	vocabulary map[string]struct{}
}

// NewKeywordExtractor creates an extractor for the given vocabulary.
func NewKeywordExtractor(vocabulary []string) *KeywordExtractor {
	vocab := make(map[string]struct{}, len(vocabulary))
	for _, term := range vocabulary {
		vocab[strings.ToLower(term)] = struct{}{}
	}

	return &KeywordExtractor{vocabulary: vocab}
}

// Extract returns the vocabulary keywords found in the record's name and
// tags, each at most once, sorted for determinism.
func (e *KeywordExtractor) Extract(record snapshot.ModelRecord) []string {
	seen := make(map[string]struct{})

	collect := func(text string) {
		for _, token := range tokenPattern.FindAllString(strings.ToLower(text), -1) {
			if len(token) < 2 {
				continue
			}
			if _, ok := e.vocabulary[token]; ok {
				seen[token] = struct{}{}
			}
		}
	}

	collect(record.Name())
	for _, tag := range record.Tags {
		collect(tag)
	}

	keywords := make([]string, 0, len(seen))
	for keyword := range seen {
		keywords = append(keywords, keyword)
	}

	sort.Strings(keywords)
	return keywords
}
