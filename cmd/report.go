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

	"github.com/modelpack/trendctl/pkg/config"
	"github.com/modelpack/trendctl/pkg/report"
	"github.com/modelpack/trendctl/pkg/snapshot"
)

var reportConfig = config.NewReport()

// renderReportCmd represents the trendctl command for render-report.
var renderReportCmd = &cobra.Command{
	Use:                "render-report",
	Short:              "Render the snapshot as the static HTML report",
	Args:               cobra.NoArgs,
	DisableAutoGenTag:  true,
	SilenceUsage:       true,
	FParseErrWhitelist: cobra.FParseErrWhitelist{UnknownFlags: true},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runRenderReport()
	},
}

// init initializes render-report command.
func init() {
	flags := renderReportCmd.Flags()
	flags.IntVar(&reportConfig.TopN, "top-n", reportConfig.TopN, "specify the number of rows in the trending table")
	flags.IntVar(&reportConfig.ArchiveLimit, "archive-limit", reportConfig.ArchiveLimit, "specify the number of archived dates linked from the report")
	flags.BoolVar(&reportConfig.Archive, "archive", reportConfig.Archive, "additionally write a date-stamped report copy")

	if err := viper.BindPFlags(flags); err != nil {
		panic(fmt.Errorf("bind render-report flags to viper: %w", err))
	}
}

// runRenderReport runs the render-report trendctl.
func runRenderReport() error {
	if err := reportConfig.Validate(); err != nil {
		return err
	}

	store, err := snapshot.NewStore(rootConfig.DataDir)
	if err != nil {
		return err
	}

	snap, err := store.LoadLatest()
	if errors.Is(err, snapshot.ErrNotFound) {
		logrus.Warn("no snapshot available, nothing to render")
		return nil
	}
	if err != nil {
		return err
	}

	archives, err := store.ListArchives()
	if err != nil {
		return err
	}

	renderer, err := report.NewRenderer(report.Options{
		TopN:         reportConfig.TopN,
		ArchiveLimit: reportConfig.ArchiveLimit,
	})
	if err != nil {
		return err
	}

	if _, err := renderer.Write(rootConfig.OutputDir, snap, archives, reportConfig.Archive); err != nil {
		return err
	}

	return nil
}
