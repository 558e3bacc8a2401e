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

package cmd

import (
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/modelpack/trendctl/pkg/charts"
	"github.com/modelpack/trendctl/pkg/config"
	"github.com/modelpack/trendctl/pkg/snapshot"
)

var chartsConfig = config.NewCharts()

// renderChartsCmd represents the trendctl command for render-charts.
var renderChartsCmd = &cobra.Command{
	Use:                "render-charts",
	Short:              "Render the snapshot charts as PNG images",
	Args:               cobra.NoArgs,
	DisableAutoGenTag:  true,
	SilenceUsage:       true,
	FParseErrWhitelist: cobra.FParseErrWhitelist{UnknownFlags: true},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runRenderCharts()
	},
}

// init initializes render-charts command.
func init() {
	flags := renderChartsCmd.Flags()
	flags.StringVar(&chartsConfig.Date, "date", chartsConfig.Date, "specify a historical snapshot date to render")
	flags.IntVar(&chartsConfig.HistoryLimit, "history", chartsConfig.HistoryLimit, "specify the number of archived snapshots scanned for the trend chart")
	flags.IntVar(&chartsConfig.TopModels, "top-models", chartsConfig.TopModels, "specify the number of models on the leaderboard")
	flags.StringVar(&chartsConfig.FontFile, "font", chartsConfig.FontFile, "specify the TTF font used for the word cloud")

	if err := viper.BindPFlags(flags); err != nil {
		panic(fmt.Errorf("bind render-charts flags to viper: %w", err))
	}
}

// runRenderCharts runs the render-charts trendctl.
func runRenderCharts() error {
	if err := chartsConfig.Validate(); err != nil {
		return err
	}

	store, err := snapshot.NewStore(rootConfig.DataDir)
	if err != nil {
		return err
	}

	var snap *snapshot.Snapshot
	if chartsConfig.Date != "" {
		snap, err = store.LoadDate(chartsConfig.Date)
	} else {
		snap, err = store.LoadLatest()
	}
	if errors.Is(err, snapshot.ErrNotFound) {
		logrus.Warn("no snapshot available, nothing to render")
		return nil
	}
	if err != nil {
		return err
	}

	history, err := store.LoadHistory(chartsConfig.HistoryLimit)
	if err != nil {
		return err
	}

	renderer, err := charts.NewRenderer(rootConfig.OutputDir, charts.Options{
		FontFile:  chartsConfig.FontFile,
		TopModels: chartsConfig.TopModels,
	})
	if err != nil {
		return err
	}

	paths, err := renderer.RenderAll(snap, history)
	if err != nil {
		return err
	}

	logrus.WithField("charts", len(paths)).Info("chart rendering complete")
	return nil
}
