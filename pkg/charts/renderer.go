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
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
	"github.com/wcharczuk/go-chart/v2"

	"github.com/modelpack/trendctl/pkg/snapshot"
)

// Options configures a chart renderer.
type Options struct {
	// FontFile is the TTF font for the word cloud; empty probes common
	// system locations.
	FontFile string

	// TopModels is the number of models on the leaderboard and bubble
	// charts.
	TopModels int

	// Palette maps categories to colors; nil selects DefaultPalette.
	Palette Palette
}

// Renderer turns snapshots into PNG chart files in an output directory.
//
// Every render operation shares one contract: when the required input
// series is empty the operation logs, writes nothing and returns an empty
// path; only a local filesystem failure returns an error.
type Renderer struct {
	outputDir string
	fontFile  string
	topModels int
	palette   Palette
}

// NewRenderer creates a renderer writing into outputDir.
func NewRenderer(outputDir string, opts Options) (*Renderer, error) {
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create output directory: %w", err)
	}

	if opts.TopModels <= 0 {
		opts.TopModels = 10
	}
	if opts.Palette == nil {
		opts.Palette = DefaultPalette()
	}

	return &Renderer{
		outputDir: outputDir,
		fontFile:  opts.FontFile,
		topModels: opts.TopModels,
		palette:   opts.Palette,
	}, nil
}

// RenderAll renders every chart for the snapshot and its history. It
// returns the paths of the charts actually produced. Empty-input skips are
// not errors; a filesystem failure is.
func (r *Renderer) RenderAll(snap *snapshot.Snapshot, history []*snapshot.Snapshot) ([]string, error) {
	renders := []func() (string, error){
		func() (string, error) { return r.RenderLeaderboard(snap) },
		func() (string, error) { return r.RenderTechDistribution(snap) },
		func() (string, error) { return r.RenderBubbleChart(snap) },
		func() (string, error) { return r.RenderOrgRanking(snap) },
		func() (string, error) { return r.RenderWordCloud(snap) },
		func() (string, error) { return r.RenderTrend(history) },
	}

	var paths []string
	for _, render := range renders {
		path, err := render()
		if err != nil {
			return paths, err
		}
		if path != "" {
			paths = append(paths, path)
		}
	}

	return paths, nil
}

// save writes a chart through render into a named file in the output
// directory and returns the full path.
func (r *Renderer) save(name string, render func(io.Writer) error) (string, error) {
	path := filepath.Join(r.outputDir, name)

	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("failed to create chart file: %w", err)
	}

	if err := render(f); err != nil {
		f.Close()
		os.Remove(path)
		return "", fmt.Errorf("failed to render %s: %w", name, err)
	}

	if err := f.Close(); err != nil {
		return "", fmt.Errorf("failed to close chart file: %w", err)
	}

	logrus.WithField("path", path).Info("chart rendered")
	return path, nil
}

// composeHorizontal lays out panel images side by side on a white canvas.
func composeHorizontal(panels ...image.Image) image.Image {
	var width, height int
	for _, panel := range panels {
		bounds := panel.Bounds()
		width += bounds.Dx()
		if bounds.Dy() > height {
			height = bounds.Dy()
		}
	}

	canvas := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(canvas, canvas.Bounds(), image.NewUniform(color.White), image.Point{}, draw.Src)

	offset := 0
	for _, panel := range panels {
		bounds := panel.Bounds()
		target := image.Rect(offset, 0, offset+bounds.Dx(), bounds.Dy())
		draw.Draw(canvas, target, panel, bounds.Min, draw.Over)
		offset += bounds.Dx()
	}

	return canvas
}

func encodePNG(w io.Writer, img image.Image) error {
	return png.Encode(w, img)
}

// panel is any go-chart chart type renderable to PNG.
type panel interface {
	Render(rp chart.RendererProvider, w io.Writer) error
}

// renderPanel renders a single chart into a decoded image.
func renderPanel(p panel) (image.Image, error) {
	var buf bytes.Buffer
	if err := p.Render(chart.PNG, &buf); err != nil {
		return nil, err
	}
	return png.Decode(&buf)
}

// composePanels renders each chart to a panel and writes them side by side
// as one PNG.
func (r *Renderer) composePanels(w io.Writer, panels ...panel) error {
	images := make([]image.Image, 0, len(panels))
	for _, p := range panels {
		img, err := renderPanel(p)
		if err != nil {
			return err
		}
		images = append(images, img)
	}

	return encodePNG(w, composeHorizontal(images...))
}

// truncateName shortens a model name for axis labels.
func truncateName(name string, max int) string {
	if len(name) <= max {
		return name
	}
	return name[:max]
}
