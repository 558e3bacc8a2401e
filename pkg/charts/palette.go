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

import "github.com/wcharczuk/go-chart/v2/drawing"

// fallbackColor is used for categories missing from the palette.
const fallbackColor = "AEB6BF"

// Palette maps technology categories to hex colors (without '#').
type Palette map[string]string

// DefaultPalette returns the fixed category color scheme shared with the
// report.
func DefaultPalette() Palette {
	return Palette{
		"Language Models":        "FF6B6B",
		"Multimodal":             "4ECDC4",
		"Image Generation":       "45B7D1",
		"Video Generation":       "96CEB4",
		"Speech Synthesis":       "FFEAA7",
		"Speech Recognition":     "DDA0DD",
		"Document Understanding": "98D8C8",
		"Embedding Models":       "F7DC6F",
		"Image Understanding":    "BB8FCE",
		"Other":                  fallbackColor,
	}
}

// Color returns the drawing color of a category.
func (p Palette) Color(category string) drawing.Color {
	if hex, ok := p[category]; ok {
		return drawing.ColorFromHex(hex)
	}
	return drawing.ColorFromHex(fallbackColor)
}

// seriesColors is the rotation used where bars are not category-keyed, e.g.
// the organization ranking.
var seriesColors = []string{
	"667EEA", "764BA2", "00A896", "FF6B35", "004E89",
	"45B7D1", "96CEB4", "F7DC6F", "DDA0DD", "4ECDC4",
}

func seriesColor(i int) drawing.Color {
	return drawing.ColorFromHex(seriesColors[i%len(seriesColors)])
}
