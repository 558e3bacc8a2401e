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
	"image/color"
	"io"
	"os"

	"github.com/psykhi/wordclouds"
	"github.com/sirupsen/logrus"

	"github.com/modelpack/trendctl/pkg/snapshot"
)

// defaultFontPaths are probed when no font file is configured.
var defaultFontPaths = []string{
	"/usr/share/fonts/truetype/dejavu/DejaVuSans.ttf",
	"/usr/share/fonts/dejavu/DejaVuSans.ttf",
	"/usr/share/fonts/TTF/DejaVuSans.ttf",
	"/System/Library/Fonts/Supplemental/Arial.ttf",
	"/Library/Fonts/Arial.ttf",
}

var cloudColors = []color.Color{
	color.RGBA{R: 0x66, G: 0x7E, B: 0xEA, A: 0xFF},
	color.RGBA{R: 0x76, G: 0x4B, B: 0xA2, A: 0xFF},
	color.RGBA{R: 0x00, G: 0xA8, B: 0x96, A: 0xFF},
	color.RGBA{R: 0xFF, G: 0x6B, B: 0x35, A: 0xFF},
	color.RGBA{R: 0x00, G: 0x4E, B: 0x89, A: 0xFF},
}

// RenderWordCloud renders the aggregated keyword frequencies as a word
// cloud. Skipped when there are no keywords or no usable TTF font.
func (r *Renderer) RenderWordCloud(snap *snapshot.Snapshot) (string, error) {
	keywords := snap.Statistics.TechKeywords
	if len(keywords) == 0 {
		logrus.Info("no keyword data, skipping word cloud")
		return "", nil
	}

	fontFile := r.resolveFont()
	if fontFile == "" {
		logrus.Warn("no TTF font found, skipping word cloud")
		return "", nil
	}

	cloud := wordclouds.NewWordcloud(
		keywords,
		wordclouds.FontFile(fontFile),
		wordclouds.Width(1200),
		wordclouds.Height(600),
		wordclouds.FontMinSize(10),
		wordclouds.FontMaxSize(120),
		wordclouds.Colors(cloudColors),
		wordclouds.BackgroundColor(color.White),
	)

	return r.save("wordcloud_"+snap.Date+".png", func(w io.Writer) error {
		return encodePNG(w, cloud.Draw())
	})
}

func (r *Renderer) resolveFont() string {
	if r.fontFile != "" {
		if _, err := os.Stat(r.fontFile); err == nil {
			return r.fontFile
		}
		logrus.WithField("font", r.fontFile).Warn("configured font not found, probing defaults")
	}

	for _, path := range defaultFontPaths {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}

	return ""
}
